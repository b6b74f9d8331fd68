package research

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sleebit/recruiter-agent/internal/fetch"
)

// Evidence source labels.
const (
	SourceDirectURL = "direct_url"
	SourceSearch    = "search"
)

// DirectURLRelevance is assigned to evidence seeded from resume links, which
// need no corroboration.
const DirectURLRelevance = 10

// snippetLimit caps per-result content recorded in the search context.
const snippetLimit = 300

// topFetchCount is how many high-relevance search results get a full page
// fetch after scoring.
const topFetchCount = 5

// fetchConcurrency bounds parallel page fetches.
const fetchConcurrency = 3

// Evidence is one corroborated finding about the candidate.
type Evidence struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Content   string `json:"content"`
	Relevance int    `json:"relevance"`
	Source    string `json:"source"`
}

// Aggregator collects evidence about a candidate from resume links and web
// searches.
type Aggregator struct {
	Searcher      Searcher
	FetchOptions  *fetch.Options
	UseBrowser    bool
	Verbose       bool
	ResultsPerQry int64
}

// NewAggregator creates an aggregator with default fetch settings.
func NewAggregator(searcher Searcher) *Aggregator {
	return &Aggregator{
		Searcher:      searcher,
		ResultsPerQry: 10,
	}
}

// Collect gathers evidence for the fingerprint. Resume URLs are fetched
// directly and always kept. Each query is searched, scored, and filtered;
// failures on individual queries are logged and skipped. The top search
// results then get a full page fetch. The returned context lines feed the LLM
// that structures the findings.
func (a *Aggregator) Collect(ctx context.Context, fp *Fingerprint, seedURLs []string, queries []string) ([]Evidence, []string) {
	var evidence []Evidence
	var searchContext []string
	seen := make(map[string]bool)

	for _, id := range fp.Identifiers {
		searchContext = append(searchContext, fmt.Sprintf("%s username found in resume: %s", id.Platform, id.Username))
	}

	// Resume links first: they are the candidate's own references
	for _, url := range seedURLs {
		if seen[url] {
			continue
		}
		seen[url] = true

		page, err := a.fetchPage(ctx, url)
		if err != nil {
			if a.Verbose {
				log.Printf("[RESEARCH] failed to fetch resume URL %s: %v", url, err)
			}
			continue
		}

		searchContext = append(searchContext, fmt.Sprintf("Extracted content from %s", url))
		evidence = append(evidence, Evidence{
			Title:     page.Title,
			URL:       url,
			Content:   page.Content,
			Relevance: DirectURLRelevance,
			Source:    SourceDirectURL,
		})
	}

	if a.Searcher == nil {
		queries = nil
	}

	for _, query := range queries {
		results, err := a.Searcher.Search(ctx, query, a.resultsPerQuery())
		if err != nil {
			log.Printf("[RESEARCH] search failed for %q: %v", query, err)
			continue
		}
		if len(results) == 0 {
			searchContext = append(searchContext, fmt.Sprintf("No results found for: %s", query))
			continue
		}

		searchContext = append(searchContext, fmt.Sprintf("SEARCH RESULTS FOR: '%s'", query))

		var filtered []Evidence
		for _, result := range results {
			if seen[result.URL] {
				continue
			}

			relevance := Relevance(result, fp)
			if relevance < RelevanceThreshold {
				continue
			}
			seen[result.URL] = true

			filtered = append(filtered, Evidence{
				Title:     result.Title,
				URL:       result.URL,
				Content:   truncate(result.Content, snippetLimit),
				Relevance: relevance,
				Source:    SourceSearch,
			})
		}

		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Relevance > filtered[j].Relevance
		})

		// Top hits per query go into the LLM context
		for i, ev := range filtered {
			if i >= 3 {
				break
			}
			searchContext = append(searchContext, fmt.Sprintf("[%d] %s: %s", ev.Relevance, ev.Title, ev.URL))
			searchContext = append(searchContext, fmt.Sprintf("EXCERPT: %s...", ev.Content))
		}

		evidence = append(evidence, filtered...)
	}

	sort.SliceStable(evidence, func(i, j int) bool {
		return evidence[i].Relevance > evidence[j].Relevance
	})

	a.fetchTopResults(ctx, evidence)

	return evidence, searchContext
}

// fetchTopResults replaces snippet content with full page text for the
// highest-relevance search-sourced evidence. Direct URLs already carry full
// content.
func (a *Aggregator) fetchTopResults(ctx context.Context, evidence []Evidence) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	fetched := 0
	for i := range evidence {
		if evidence[i].Source != SourceSearch {
			continue
		}
		if fetched >= topFetchCount {
			break
		}
		fetched++

		i := i
		g.Go(func() error {
			page, err := a.fetchPage(gctx, evidence[i].URL)
			if err != nil {
				if a.Verbose {
					log.Printf("[RESEARCH] failed to fetch %s: %v", evidence[i].URL, err)
				}
				return nil // keep the snippet
			}
			evidence[i].Content = page.Content
			return nil
		})
	}

	_ = g.Wait()
}

func (a *Aggregator) fetchPage(ctx context.Context, url string) (*fetch.Page, error) {
	result, err := fetch.URL(ctx, url, a.FetchOptions)
	if err != nil {
		return nil, err
	}

	page, err := fetch.ExtractPage(result, fetch.DefaultTextSelectors())
	if err != nil {
		return nil, err
	}

	if a.UseBrowser && fetch.ShouldUseBrowser(page.Content) {
		html, browserErr := fetch.WithBrowser(ctx, url, 30*time.Second, a.Verbose)
		if browserErr == nil {
			rendered, extractErr := fetch.ExtractPage(&fetch.Result{URL: url, HTML: html}, fetch.DefaultTextSelectors())
			if extractErr == nil {
				return rendered, nil
			}
		} else if a.Verbose {
			log.Printf("[RESEARCH] browser fallback failed for %s: %v", url, browserErr)
		}
	}

	return page, nil
}

func (a *Aggregator) resultsPerQuery() int64 {
	if a.ResultsPerQry <= 0 {
		return 10
	}
	return a.ResultsPerQry
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
