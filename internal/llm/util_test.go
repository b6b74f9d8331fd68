package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain JSON untouched",
			input:    `{"title": "Engineer"}`,
			expected: `{"title": "Engineer"}`,
		},
		{
			name:     "json fenced block",
			input:    "```json\n{\"title\": \"Engineer\"}\n```",
			expected: `{"title": "Engineer"}`,
		},
		{
			name:     "Generic fenced block",
			input:    "```\n{\"skills\": []}\n```",
			expected: `{"skills": []}`,
		},
		{
			name:     "Fence with language identifier",
			input:    "```javascript\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "Surrounding whitespace",
			input:    "  \n```json\n[1, 2, 3]\n```\n ",
			expected: `[1, 2, 3]`,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestConfigGetModelFallback(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "gemini-2.5-flash-lite"},
	}

	// Unknown tier falls back to lite when standard is missing
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierAdvanced))

	cfg = cfg.WithModel(TierStandard, "gemini-2.5-flash")
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierAdvanced))

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierLite))
}
