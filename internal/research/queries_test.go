package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateQueriesWithIdentifiers(t *testing.T) {
	fp := &Fingerprint{
		Name:      "Jane Doe",
		Companies: []string{"Acme Corp"},
		Schools:   []string{"MIT"},
		Skills:    []string{"Go", "Kubernetes", "Terraform"},
		Identifiers: []Identifier{
			{Platform: "github", Username: "janedoe42"},
			{Platform: "linkedin", Username: "jane-doe"},
		},
	}

	queries := TemplateQueries(fp)

	assert.Contains(t, queries, "github.com/janedoe42")
	assert.Contains(t, queries, "linkedin.com/in/jane-doe")
	assert.Contains(t, queries, "Jane Doe Acme Corp blog post article")
	assert.Contains(t, queries, "Jane Doe Acme Corp conference talk presentation")
	assert.Contains(t, queries, "Jane Doe Acme Corp research paper publication")
	// Only the top two skills get project queries
	assert.Contains(t, queries, "Jane Doe Acme Corp Go project")
	assert.Contains(t, queries, "Jane Doe Acme Corp Kubernetes project")
	assert.NotContains(t, queries, "Jane Doe Acme Corp Terraform project")
}

func TestTemplateQueriesWithoutIdentifiers(t *testing.T) {
	fp := &Fingerprint{Name: "Jane Doe"}

	queries := TemplateQueries(fp)

	assert.Contains(t, queries, "Jane Doe github profile")
	assert.Contains(t, queries, "Jane Doe linkedin profile")
	assert.Contains(t, queries, "Jane Doe blog post article")
}

func TestTemplateQueriesDisambiguation(t *testing.T) {
	fp := &Fingerprint{
		Name:      "Jane Doe",
		Companies: []string{"Acme Corp"},
		Schools:   []string{"MIT"},
	}

	queries := TemplateQueries(fp)
	assert.Contains(t, queries, "Jane Doe Acme Corp MIT github")

	// Falls back to school when no company is known
	fp.Companies = nil
	queries = TemplateQueries(fp)
	assert.Contains(t, queries, "Jane Doe MIT blog post article")
}

func TestMergeQueries(t *testing.T) {
	merged := MergeQueries(
		[]string{"a", "b", ""},
		[]string{"b", "c"},
	)
	assert.Equal(t, []string{"a", "b", "c"}, merged)
}
