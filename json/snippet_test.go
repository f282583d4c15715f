package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSnippet(t *testing.T) {
	tests := []struct {
		name   string
		source string
		pos    Position
		want   string
	}{
		{
			name:   "first column",
			source: "}",
			pos:    Position{Line: 1, Column: 1},
			want:   "  1 | }\n      ^\n",
		},
		{
			name:   "second line",
			source: "{\n  \"size\": 12 345\n}",
			pos:    Position{Line: 2, Column: 14},
			want:   "  2 |   \"size\": 12 345\n                   ^\n",
		},
		{
			name:   "tab expanded",
			source: "\t@",
			pos:    Position{Line: 1, Column: 2},
			want:   "  1 |  @\n       ^\n",
		},
		{
			name:   "multibyte prefix",
			source: `{"é": @}`,
			pos:    Position{Line: 1, Column: 8},
			want:   "  1 | {\"é\": @}\n            ^\n",
		},
		{
			name:   "end of input",
			source: "{",
			pos:    Position{Line: 1, Column: 2},
			want:   "  1 | {\n       ^\n",
		},
		{
			name:   "line out of range",
			source: "{}",
			pos:    Position{Line: 3, Column: 1},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSnippet(tt.source, tt.pos))
		})
	}
}

func TestFormatSnippet_FromError(t *testing.T) {
	source := "{\n  \"a\": tru\n}"

	_, err := Parse(source)
	require.Error(t, err)

	pos, ok := ErrorPosition(err)
	require.True(t, ok)
	assert.Equal(t, "  2 |   \"a\": tru\n                ^\n", FormatSnippet(source, pos))
}
