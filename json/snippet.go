package json

import (
	"strconv"
	"strings"
)

// FormatSnippet renders the source line containing pos, prefixed with its
// line number, followed by a caret under pos.Column:
//
//	  3 |   "size": 12 345,
//	                   ^
//
// It returns an empty string if pos.Line is not a line of source.
func FormatSnippet(source string, pos Position) string {
	lines := strings.Split(source, "\n")

	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}

	line := strings.TrimRight(lines[pos.Line-1], "\r")
	number := strconv.Itoa(pos.Line)

	var sb strings.Builder

	sb.WriteString("  ")
	sb.WriteString(number)
	sb.WriteString(" | ")
	sb.WriteString(expandTabs(line))
	sb.WriteByte('\n')

	// 2 leading spaces + " | "
	padding := len(number) + 5
	if pos.Column > 1 {
		padding += caretOffset(line, pos.Column-1)
	}

	sb.WriteString(strings.Repeat(" ", padding))
	sb.WriteString("^\n")

	return sb.String()
}

// expandTabs replaces tabs with single spaces so the caret stays aligned.
func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", " ")
}

// caretOffset returns the display width of the first n bytes of line,
// counting each UTF-8 sequence as one column.
func caretOffset(line string, n int) int {
	if n > len(line) {
		n = len(line)
	}

	width := 0

	for i := range n {
		if b := line[i]; b < 0x80 || b >= 0xC0 {
			width++
		}
	}

	return width
}
