package json

import (
	"bytes"
	"strconv"
	"testing"
)

// generateDocument returns an object with width members per object, nested
// depth levels deep. Member values cycle through every kind, and keys are
// unique within each object.
func generateDocument(depth, width int) []byte {
	var buf bytes.Buffer

	writeObject(&buf, depth, width)

	return buf.Bytes()
}

func writeObject(buf *bytes.Buffer, depth, width int) {
	buf.WriteByte('{')

	for i := range width {
		if i > 0 {
			buf.WriteString(", ")
		}

		buf.WriteString(`"k` + strconv.Itoa(i) + `": `)
		writeValue(buf, i, depth, width)
	}

	buf.WriteByte('}')
}

func writeValue(buf *bytes.Buffer, i, depth, width int) {
	switch i % 6 {
	case 0:
		buf.WriteString(`"value ` + strconv.Itoa(i) + `"`)
	case 1:
		buf.WriteString(strconv.Itoa(i*7-20) + ".25e" + strconv.Itoa(i%4))
	case 2:
		buf.WriteString(strconv.FormatBool(i%4 == 2))
	case 3:
		buf.WriteString("null")
	case 4:
		buf.WriteByte('[')

		for j := range width {
			if j > 0 {
				buf.WriteByte(',')
			}

			if depth > 0 && j%5 == 4 {
				writeObject(buf, depth-1, width)
			} else {
				buf.WriteString(strconv.Itoa(j))
			}
		}

		buf.WriteByte(']')
	default:
		if depth > 0 {
			writeObject(buf, depth-1, width)
		} else {
			buf.WriteString("{}")
		}
	}
}

func BenchmarkParse(b *testing.B) {
	for _, bb := range []struct {
		name         string
		depth, width int
	}{
		{"tiny", 0, 4},
		{"small", 1, 8},
		{"medium", 3, 8},
		{"large", 4, 12},
	} {
		doc := generateDocument(bb.depth, bb.width)

		b.Run(bb.name, func(b *testing.B) {
			b.SetBytes(int64(len(doc)))
			b.ReportAllocs()

			for b.Loop() {
				if _, err := ParseBytes(doc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLexer(b *testing.B) {
	doc := string(generateDocument(3, 8))

	b.SetBytes(int64(len(doc)))

	for b.Loop() {
		l := NewLexer(doc)

		for {
			tok, err := l.Token()
			if err != nil {
				b.Fatal(err)
			}

			if tok.Type == TokenNone {
				break
			}
		}
	}
}

func BenchmarkFind(b *testing.B) {
	root, err := ParseBytes(generateDocument(3, 8))
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		if root.Find("missing") != nil {
			b.Fatal("found missing key")
		}
	}
}
