package research

import (
	"sort"
	"strings"
)

// RelevanceThreshold is the minimum relevance score for a search result to be
// kept as evidence.
const RelevanceThreshold = 3

// IdentityThreshold is the minimum identity confidence (0.0-1.0) for a result
// to be attributed to the candidate.
const IdentityThreshold = 0.3

// Relevance scores how likely a search result refers to the candidate.
// Signals are checked against truncated prefixes of the result content:
// name and identifiers near the top of the page, affiliations anywhere in
// the first stretch of text. Identifier hits dominate name hits, which in
// turn dominate affiliation hits.
func Relevance(result SearchResult, fp *Fingerprint) int {
	content := strings.ToLower(result.Content)
	url := strings.ToLower(result.URL)

	head := content
	if len(head) > 500 {
		head = head[:500]
	}
	body := content
	if len(body) > 1000 {
		body = body[:1000]
	}

	score := 0

	nameParts := strings.Fields(strings.ToLower(fp.Name))
	if len(nameParts) > 0 {
		all := true
		any := false
		for _, part := range nameParts {
			if strings.Contains(head, part) {
				any = true
			} else {
				all = false
			}
		}
		if all {
			score += 5
		} else if any {
			score += 2
		}
	}

	for _, company := range fp.Companies {
		if company != "" && strings.Contains(body, strings.ToLower(company)) {
			score += 3
		}
	}

	for _, school := range fp.Schools {
		if school != "" && strings.Contains(body, strings.ToLower(school)) {
			score += 3
		}
	}

	for _, id := range fp.Identifiers {
		username := strings.ToLower(id.Username)
		if username != "" && (strings.Contains(url, username) || strings.Contains(head, username)) {
			score += 10
		}
	}

	return score
}

// VerifyIdentity returns a confidence score in [0.0, 1.0] that the given text
// refers to the candidate. Unlike Relevance it scans the full text and weighs
// partial name matches, so it suits longer fetched documents rather than
// search snippets.
func VerifyIdentity(text string, fp *Fingerprint) float64 {
	content := strings.ToLower(text)
	name := strings.ToLower(fp.Name)

	score := 0.0
	const maxScore = 10.0

	nameParts := strings.Fields(name)
	if len(nameParts) >= 2 {
		all := true
		matching := 0
		for _, part := range nameParts {
			if strings.Contains(content, part) {
				matching++
			} else {
				all = false
			}
		}
		if all {
			score += 3.0
		} else if matching > 0 {
			score += (float64(matching) / float64(len(nameParts))) * 1.5
		}
	} else if name != "" && strings.Contains(content, name) {
		// Single name is too common to weigh heavily
		score += 1.0
	}

	for _, id := range fp.Identifiers {
		username := strings.ToLower(id.Username)
		if username == "" || !strings.Contains(content, username) {
			continue
		}
		switch id.Platform {
		case "github":
			score += 4.0
		case "linkedin":
			score += 3.5
		default:
			score += 3.0
		}
	}

	companyMatches := 0
	for _, company := range fp.Companies {
		if company != "" && strings.Contains(content, strings.ToLower(company)) {
			companyMatches++
		}
	}
	if companyMatches > 0 {
		score += minFloat(float64(companyMatches)*1.0, 2.0)
	}

	schoolMatches := 0
	for _, school := range fp.Schools {
		if school != "" && strings.Contains(content, strings.ToLower(school)) {
			schoolMatches++
		}
	}
	if schoolMatches > 0 {
		score += minFloat(float64(schoolMatches)*0.8, 1.6)
	}

	// Skills only count once a stronger signal is present
	if score > 1.0 {
		skillMatches := 0
		for _, skill := range fp.Skills {
			if skill != "" && strings.Contains(content, strings.ToLower(skill)) {
				skillMatches++
			}
		}
		if skillMatches > 0 {
			score += minFloat(float64(skillMatches)*0.2, 1.0)
		}
	}

	return minFloat(score/maxScore, 1.0)
}

// FilterByIdentity keeps results whose combined title and content pass the
// identity confidence threshold, ordered by confidence descending.
func FilterByIdentity(results []SearchResult, fp *Fingerprint, threshold float64) []SearchResult {
	type scored struct {
		result     SearchResult
		confidence float64
	}

	kept := make([]scored, 0, len(results))
	for _, r := range results {
		confidence := VerifyIdentity(r.Title+" "+r.Content, fp)
		if confidence >= threshold {
			kept = append(kept, scored{result: r, confidence: confidence})
		}
	}

	// Equal confidence keeps discovery order
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].confidence > kept[j].confidence
	})

	out := make([]SearchResult, 0, len(kept))
	for _, s := range kept {
		out = append(out, s.result)
	}
	return out
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
