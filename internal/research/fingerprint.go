package research

import (
	"strings"

	"github.com/sleebit/recruiter-agent/internal/ingestion"
	"github.com/sleebit/recruiter-agent/internal/types"
)

// Identifier is a platform username found in the candidate's resume links.
type Identifier struct {
	Platform string // github, linkedin, twitter
	Username string
}

// Fingerprint is the disambiguation profile used to decide whether a search
// result refers to the candidate or to someone else with the same name.
type Fingerprint struct {
	Name        string
	Companies   []string
	Schools     []string
	Skills      []string
	Identifiers []Identifier
	JobTitle    string // most recent role
}

// BuildFingerprint derives a fingerprint from the structured resume and the
// URLs found in the raw resume text.
func BuildFingerprint(candidateName string, resume *types.Resume, urls []string) *Fingerprint {
	fp := &Fingerprint{
		Name: candidateName,
	}
	if fp.Name == "" && resume != nil {
		fp.Name = resume.Personal.Name
	}

	if resume != nil {
		for _, exp := range resume.Experience {
			if exp.Company != "" {
				fp.Companies = append(fp.Companies, exp.Company)
			}
			if fp.JobTitle == "" && exp.Title != "" {
				fp.JobTitle = exp.Title
			}
		}
		for _, edu := range resume.Education {
			if edu.Institution != "" {
				fp.Schools = append(fp.Schools, edu.Institution)
			}
		}
		fp.Skills = resume.Skills
	}

	for _, url := range urls {
		lower := strings.ToLower(url)
		switch {
		case strings.Contains(lower, "github.com"):
			if username := ingestion.ExtractGitHubUsername(url); username != "" {
				fp.addIdentifier("github", username)
			}
		case strings.Contains(lower, "linkedin.com"):
			if username := ingestion.ExtractLinkedInUsername(url); username != "" {
				fp.addIdentifier("linkedin", username)
			}
		case strings.Contains(lower, "twitter.com"), strings.Contains(lower, "x.com"):
			if username := ingestion.ExtractTwitterUsername(url); username != "" {
				fp.addIdentifier("twitter", username)
			}
		}
	}

	return fp
}

func (fp *Fingerprint) addIdentifier(platform, username string) {
	for _, id := range fp.Identifiers {
		if id.Platform == platform && id.Username == username {
			return
		}
	}
	fp.Identifiers = append(fp.Identifiers, Identifier{Platform: platform, Username: username})
}

// Identifier returns the username for a platform, or "" when none was found.
func (fp *Fingerprint) Identifier(platform string) string {
	for _, id := range fp.Identifiers {
		if id.Platform == platform {
			return id.Username
		}
	}
	return ""
}
