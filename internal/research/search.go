// Package research implements candidate web research: search query
// construction, identity-based relevance scoring, and evidence aggregation.
package research

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// SearchResult is a single hit returned by a search backend.
type SearchResult struct {
	Title   string
	URL     string
	Content string
}

// Searcher abstracts the web search backend.
type Searcher interface {
	Search(ctx context.Context, query string, num int64) ([]SearchResult, error)
}

// GoogleSearcher queries the Google Custom Search API.
type GoogleSearcher struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleSearcher creates a search client using an API key and a custom
// search engine ID.
func NewGoogleSearcher(ctx context.Context, apiKey string, cx string) (*GoogleSearcher, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleSearcher{
		svc: svc,
		cx:  cx,
	}, nil
}

// Search runs a single query and returns up to num results.
func (g *GoogleSearcher) Search(ctx context.Context, query string, num int64) ([]SearchResult, error) {
	resp, err := g.svc.Cse.List().Context(ctx).Cx(g.cx).Q(query).Num(num).Do()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, SearchResult{
			Title:   item.Title,
			URL:     item.Link,
			Content: item.Snippet,
		})
	}
	return results, nil
}
