package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "Absolute URL",
			text:     "See https://example.com/portfolio for details.",
			expected: []string{"https://example.com/portfolio"},
		},
		{
			name:     "Bare github link gets scheme",
			text:     "GitHub: github.com/janedoe",
			expected: []string{"https://github.com/janedoe"},
		},
		{
			name:     "Bare linkedin link gets scheme",
			text:     "linkedin.com/in/jane-doe-123",
			expected: []string{"https://linkedin.com/in/jane-doe-123"},
		},
		{
			name:     "Duplicates removed",
			text:     "github.com/janedoe and again github.com/janedoe",
			expected: []string{"https://github.com/janedoe"},
		},
		{
			name:     "No links",
			text:     "Plain resume text with no URLs at all.",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls := ExtractLinks(tt.text)
			assert.ElementsMatch(t, tt.expected, urls)
		})
	}
}

func TestExtractGitHubUsername(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://github.com/janedoe", "janedoe"},
		{"https://github.com/jane-doe/some-repo", "jane-doe"},
		{"https://gist.github.com/janedoe", "janedoe"},
		{"https://github.com/trending", ""},
		{"https://github.com/explore", ""},
		{"https://example.com/janedoe", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractGitHubUsername(tt.url))
		})
	}
}

func TestExtractLinkedInUsername(t *testing.T) {
	assert.Equal(t, "jane-doe-123", ExtractLinkedInUsername("https://www.linkedin.com/in/jane-doe-123"))
	assert.Equal(t, "jane-doe", ExtractLinkedInUsername("https://linkedin.com/pub/jane-doe/extra"))
	assert.Equal(t, "", ExtractLinkedInUsername("https://linkedin.com/company/acme"))
}

func TestExtractTwitterUsername(t *testing.T) {
	assert.Equal(t, "janedoe", ExtractTwitterUsername("https://twitter.com/janedoe"))
	assert.Equal(t, "janedoe", ExtractTwitterUsername("https://x.com/janedoe"))
	assert.Equal(t, "", ExtractTwitterUsername("https://twitter.com/search?q=foo"))
	assert.Equal(t, "", ExtractTwitterUsername("https://twitter.com/home"))
}
