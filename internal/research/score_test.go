package research

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testFingerprint() *Fingerprint {
	return &Fingerprint{
		Name:      "Jane Doe",
		Companies: []string{"Acme Corp"},
		Schools:   []string{"MIT"},
		Skills:    []string{"Go", "Kubernetes"},
		Identifiers: []Identifier{
			{Platform: "github", Username: "janedoe42"},
		},
	}
}

func TestRelevance(t *testing.T) {
	fp := testFingerprint()

	tests := []struct {
		name     string
		result   SearchResult
		expected int
	}{
		{
			name:     "Full name match",
			result:   SearchResult{Content: "jane doe is a developer"},
			expected: 5,
		},
		{
			name:     "Partial name match",
			result:   SearchResult{Content: "jane works on infrastructure"},
			expected: 2,
		},
		{
			name:     "Company adds to name",
			result:   SearchResult{Content: "Jane Doe, engineer at Acme Corp"},
			expected: 5 + 3,
		},
		{
			name:     "School adds to name",
			result:   SearchResult{Content: "Jane Doe graduated from MIT"},
			expected: 5 + 3,
		},
		{
			name:     "Identifier in URL dominates",
			result:   SearchResult{URL: "https://github.com/janedoe42", Content: "some repository"},
			expected: 10,
		},
		{
			name:     "No signal",
			result:   SearchResult{Content: "completely unrelated page"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Relevance(tt.result, fp))
		})
	}
}

func TestRelevanceNameOutsideWindow(t *testing.T) {
	fp := testFingerprint()

	// Name buried past the first 500 chars scores nothing
	padding := strings.Repeat("x ", 300)
	result := SearchResult{Content: padding + "jane doe"}
	assert.Equal(t, 0, Relevance(result, fp))
}

func TestRelevanceOrdering(t *testing.T) {
	fp := testFingerprint()

	identifierHit := Relevance(SearchResult{URL: "https://github.com/janedoe42"}, fp)
	nameHit := Relevance(SearchResult{Content: "jane doe"}, fp)
	companyHit := Relevance(SearchResult{Content: "works at acme corp"}, fp)

	assert.Greater(t, identifierHit, nameHit)
	assert.Greater(t, nameHit, companyHit)
	assert.GreaterOrEqual(t, companyHit, RelevanceThreshold)
}

func TestVerifyIdentity(t *testing.T) {
	fp := testFingerprint()

	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{
			name:     "Full name only",
			text:     "Jane Doe writes about distributed systems",
			expected: 0.3,
		},
		{
			name:     "Partial name only",
			text:     "doe's latest post",
			expected: 0.075, // (1/2)*1.5/10
		},
		{
			name: "GitHub identifier",
			// The username also carries both name parts as substrings,
			// so this scores name (3.0) plus identifier (4.0)
			text:     "see janedoe42 on github",
			expected: 0.7,
		},
		{
			name:     "Nothing matches",
			text:     "unrelated content",
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, VerifyIdentity(tt.text, fp), 0.001)
		})
	}
}

func TestVerifyIdentitySkillsNeverAlone(t *testing.T) {
	fp := testFingerprint()

	// Skills with no other signal contribute nothing
	assert.Equal(t, 0.0, VerifyIdentity("go kubernetes tutorial", fp))

	// Same skills on top of a name match do contribute
	withName := VerifyIdentity("jane doe go kubernetes", fp)
	nameOnly := VerifyIdentity("jane doe", fp)
	assert.Greater(t, withName, nameOnly)
}

func TestVerifyIdentityClipped(t *testing.T) {
	fp := testFingerprint()

	// Everything matches: name, identifier, company, school, skills
	text := "jane doe janedoe42 acme corp mit go kubernetes"
	score := VerifyIdentity(text, fp)
	assert.LessOrEqual(t, score, 1.0)
	assert.Greater(t, score, IdentityThreshold)
}

func TestVerifyIdentitySingleName(t *testing.T) {
	fp := &Fingerprint{Name: "Cher"}
	assert.InDelta(t, 0.1, VerifyIdentity("cher performed live", fp), 0.001)
}

func TestFilterByIdentity(t *testing.T) {
	fp := testFingerprint()

	results := []SearchResult{
		{Title: "Unrelated", Content: "nothing to see"},
		{Title: "Profile", Content: "jane doe at acme corp"},
		{Title: "Repo", Content: "janedoe42 jane doe acme corp mit"},
	}

	filtered := FilterByIdentity(results, fp, IdentityThreshold)
	assert.Len(t, filtered, 2)
	// Strongest evidence first
	assert.Equal(t, "Repo", filtered[0].Title)
	assert.Equal(t, "Profile", filtered[1].Title)
}
