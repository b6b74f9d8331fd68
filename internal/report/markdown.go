// Package report renders fit assessments as human-readable markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/sleebit/recruiter-agent/internal/types"
)

// Markdown formats a fit assessment as a markdown report with the verdict,
// score breakdown, skill comparison table, and reasoning.
func Markdown(fit *types.FitAssessment) string {
	if fit == nil {
		return ""
	}

	var out []string

	out = append(out, fmt.Sprintf("# Candidate Assessment: %s\n", fit.FitScore))

	out = append(out, "## Score Details")
	out = append(out, fmt.Sprintf("- Skill match: %.1f%%", fit.ScoreDetails.SkillMatchPercentage))
	out = append(out, fmt.Sprintf("- Experience: %g years", fit.ScoreDetails.ExperienceYears))
	out = append(out, fmt.Sprintf("- Domain signal: %s\n", fit.ScoreDetails.DomainSignal))

	out = append(out, "## Skills Comparison Matrix")
	out = append(out, "| Skill | Required | Candidate Has |")
	out = append(out, "| ----- | -------- | ------------ |")
	for _, entry := range fit.ComparisonMatrix {
		out = append(out, fmt.Sprintf("| %s | %s | %s |", entry.Skill, checkmark(entry.Required), checkmark(entry.CandidateHas)))
	}

	out = append(out, "\n## Detailed Assessment")
	out = append(out, fit.Reasoning)

	return strings.Join(out, "\n")
}

func checkmark(v bool) string {
	if v {
		return "✅"
	}
	return "❌"
}
