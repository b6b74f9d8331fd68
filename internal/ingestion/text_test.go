package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "CRLF normalized",
			input:    "line one\r\nline two\r\n",
			expected: "line one\nline two",
		},
		{
			name:     "Multiple spaces collapsed",
			input:    "Senior    Software     Engineer",
			expected: "Senior Software Engineer",
		},
		{
			name:     "Excessive blank lines collapsed",
			input:    "a\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "Bullets preserved",
			input:    "Skills:\n- Go\n- Postgres",
			expected: "Skills:\n- Go\n- Postgres",
		},
		{
			name:     "Trailing whitespace trimmed",
			input:    "text   \t\n",
			expected: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "abcdef", Truncate("abcdef", 0))
	assert.Equal(t, "", Truncate("", 5))
}
