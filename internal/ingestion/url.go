package ingestion

import (
	"regexp"
	"strings"
)

// urlPattern matches absolute URLs plus bare profile links on the platforms
// candidates commonly list without a scheme.
var urlPattern = regexp.MustCompile(`https?://[^\s<>"]+|www\.[^\s<>"]+|linkedin\.com/[^\s<>"]+|github\.com/[^\s<>"]+|twitter\.com/[^\s<>"]+|medium\.com/[^\s<>"]+|facebook\.com/[^\s<>"]+|gitlab\.com/[^\s<>"]+|stackoverflow\.com/[^\s<>"]+|dribbble\.com/[^\s<>"]+|behance\.net/[^\s<>"]+|instagram\.com/[^\s<>"]+|scholar\.google\.com/[^\s<>"]+|researchgate\.net/[^\s<>"]+|orcid\.org/[^\s<>"]+|kaggle\.com/[^\s<>"]+|dev\.to/[^\s<>"]+|[^\s<>"]+\.medium\.com`)

// ExtractLinks finds URLs in resume text. Matches without a scheme get an
// https:// prefix so they can be fetched directly.
func ExtractLinks(text string) []string {
	matches := urlPattern.FindAllString(text, -1)

	seen := make(map[string]bool, len(matches))
	urls := make([]string, 0, len(matches))
	for _, match := range matches {
		// Strip trailing punctuation picked up from prose
		match = strings.TrimRight(match, ".,;:)")
		if !strings.HasPrefix(match, "http://") && !strings.HasPrefix(match, "https://") {
			match = "https://" + match
		}
		if !seen[match] {
			seen[match] = true
			urls = append(urls, match)
		}
	}

	return urls
}

var githubPatterns = []*regexp.Regexp{
	regexp.MustCompile(`github\.com/([a-zA-Z0-9](?:-?[a-zA-Z0-9]){0,38})`),
	regexp.MustCompile(`github\.com/orgs/([^/?#]+)`),
	regexp.MustCompile(`gist\.github\.com/([^/?#]+)`),
}

// githubReserved filters common non-profile paths on github.com.
var githubReserved = map[string]bool{
	"search": true, "trending": true, "collections": true, "events": true,
	"topics": true, "marketplace": true, "pulls": true, "issues": true,
	"explore": true, "orgs": true,
}

// ExtractGitHubUsername pulls a username out of a GitHub profile, org, or
// gist URL. Returns "" when the URL points at a reserved path instead of a
// profile.
func ExtractGitHubUsername(url string) string {
	for _, pattern := range githubPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			username := match[1]
			if !githubReserved[strings.ToLower(username)] {
				return username
			}
		}
	}
	return ""
}

var linkedinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`linkedin\.com/in/([^/?#]+)`),
	regexp.MustCompile(`linkedin\.com/pub/([^/?#]+)`),
}

// ExtractLinkedInUsername pulls a username out of a LinkedIn profile URL.
func ExtractLinkedInUsername(url string) string {
	for _, pattern := range linkedinPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return ""
}

var twitterPattern = regexp.MustCompile(`(?:twitter|x)\.com/([^/?#]+)`)

// twitterReserved filters non-profile paths on twitter.com and x.com.
var twitterReserved = map[string]bool{
	"home": true, "search": true, "explore": true, "notifications": true,
	"messages": true, "i": true, "settings": true,
}

// ExtractTwitterUsername pulls a username out of a Twitter or X profile URL.
func ExtractTwitterUsername(url string) string {
	if match := twitterPattern.FindStringSubmatch(url); match != nil {
		if !twitterReserved[strings.ToLower(match[1])] {
			return match[1]
		}
	}
	return ""
}
