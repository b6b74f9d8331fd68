package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/sleebit/recruiter-agent/internal/ingestion"
	"github.com/sleebit/recruiter-agent/internal/llm"
	"github.com/sleebit/recruiter-agent/internal/prompts"
	"github.com/sleebit/recruiter-agent/internal/research"
	"github.com/sleebit/recruiter-agent/internal/schemas"
	"github.com/sleebit/recruiter-agent/internal/types"
)

// llmQueryCount is how many search queries the LLM is asked to generate.
const llmQueryCount = 7

// parseJobDescription extracts structured job fields from the raw posting.
// Extraction failures fall back to a minimal structure so the pipeline can
// continue.
func (r *Runner) parseJobDescription(ctx context.Context, state *State) {
	template := prompts.MustGet("parsing.json", "parse-job-description")
	prompt := prompts.Format(template, map[string]string{
		"JobText": state.JobDescription,
	})

	var jd types.JobDescription
	if err := r.generateStructured(ctx, prompt, llm.TierStandard, schemas.JobDescription, &jd); err != nil {
		log.Printf("[PIPELINE] job description parsing failed, using fallback: %v", err)
		jd = types.JobDescription{
			Title:                  "Unknown Position",
			Responsibilities:       []string{},
			RequiredQualifications: []string{},
			TopSkills:              []string{},
		}
	}

	state.JDStructured = &jd
}

// parseResume extracts structured resume fields and collects the URLs found
// in the raw text. Extraction failures fall back to a minimal structure.
func (r *Runner) parseResume(ctx context.Context, state *State) {
	urls := ingestion.ExtractLinks(state.ResumeText)
	state.ExtractedURLs = urls

	template := prompts.MustGet("parsing.json", "parse-resume")
	prompt := prompts.Format(template, map[string]string{
		"CandidateName": state.CandidateName,
		"ResumeText":    state.ResumeText,
		"URLs":          strings.Join(urls, ", "),
	})

	var resume types.Resume
	if err := r.generateStructured(ctx, prompt, llm.TierStandard, schemas.Resume, &resume); err != nil {
		log.Printf("[PIPELINE] resume parsing failed, using fallback: %v", err)
		name := state.CandidateName
		if name == "" {
			name = "Unknown"
		}
		resume = types.Resume{
			Personal:   types.Personal{Name: name},
			Education:  []types.EducationEntry{},
			Experience: []types.ExperienceEntry{},
			Skills:     []string{},
		}
	}

	if state.CandidateName == "" && resume.Personal.Name != "" {
		state.CandidateName = resume.Personal.Name
	}

	state.ResumeStructured = &resume
}

// webResearch corroborates the candidate's public footprint. Evidence is
// collected from resume links and filtered searches, then an LLM structures
// the verified findings. Failures fall back to empty "No verified" findings.
func (r *Runner) webResearch(ctx context.Context, state *State) {
	fp := research.BuildFingerprint(state.CandidateName, state.ResumeStructured, state.ExtractedURLs)
	if state.JDStructured != nil && fp.JobTitle == "" {
		fp.JobTitle = state.JDStructured.Title
	}

	queries := research.MergeQueries(
		research.TemplateQueries(fp),
		r.generateQueries(ctx, fp),
	)

	evidence, searchContext := r.Aggregator.Collect(ctx, fp, state.ExtractedURLs, queries)
	if r.Verbose {
		log.Printf("[RESEARCH] collected %d evidence items across %d queries", len(evidence), len(queries))
	}

	template := prompts.MustGet("research.json", "structure-findings")
	prompt := prompts.Format(template, map[string]string{
		"CandidateName": state.CandidateName,
		"Education":     joinOr(fp.Schools, "Not specified"),
		"Companies":     joinOr(fp.Companies, "Not specified"),
		"SearchContext": strings.Join(searchContext, "\n"),
	})

	var web types.WebResearch
	if err := r.generateStructured(ctx, prompt, llm.TierAdvanced, schemas.WebResearch, &web); err != nil {
		log.Printf("[PIPELINE] web research analysis failed, using fallback: %v", err)
		web = types.WebResearch{
			GitHubRepos:     []string{"No verified repositories found"},
			Blogs:           []string{"No verified blog posts found"},
			ConferenceTalks: []string{"No verified conference talks found"},
			SocialMentions:  []string{"No verified social mentions found"},
		}
	}

	state.WebStructured = &web
}

// generateQueries asks the LLM for targeted search queries. An empty list is
// returned on failure; template queries still cover the basics.
func (r *Runner) generateQueries(ctx context.Context, fp *research.Fingerprint) []string {
	var identifiers []string
	for _, id := range fp.Identifiers {
		identifiers = append(identifiers, fmt.Sprintf("%s:%s", id.Platform, id.Username))
	}

	skills := fp.Skills
	if len(skills) > 5 {
		skills = skills[:5]
	}

	template := prompts.MustGet("research.json", "generate-queries")
	prompt := prompts.Format(template, map[string]string{
		"NumQueries":  fmt.Sprintf("%d", llmQueryCount),
		"Name":        fp.Name,
		"Companies":   joinOr(fp.Companies, "Unknown"),
		"Education":   joinOr(fp.Schools, "Unknown"),
		"Skills":      joinOr(skills, "Unknown"),
		"Identifiers": joinOr(identifiers, "None found"),
		"JobTitle":    orDefault(fp.JobTitle, "Unknown"),
	})

	response, err := r.LLM.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("[RESEARCH] query generation failed: %v", err)
		return nil
	}

	var queries []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, `"`)
		if line != "" {
			queries = append(queries, line)
		}
	}

	if r.Verbose {
		log.Printf("[RESEARCH] LLM generated %d search queries", len(queries))
	}
	return queries
}

// fitAssessment scores the candidate against the job. Unlike earlier stages
// this has no fallback: a run without a verdict is worthless, so errors here
// fail the run.
func (r *Runner) fitAssessment(ctx context.Context, state *State) error {
	jd := state.JDStructured
	resume := state.ResumeStructured
	web := state.WebStructured

	template := prompts.MustGet("scoring.json", "fit-assessment")
	prompt := prompts.Format(template, map[string]string{
		"JobTitle":                jd.Title,
		"JobLocation":             orDefault(jd.Location, "Not specified"),
		"RequiredQualifications":  bulletsOr(jd.RequiredQualifications, "None specified"),
		"PreferredQualifications": bulletsOr(jd.PreferredQualifications, "None specified"),
		"TopSkills":               bulletsOr(jd.TopSkills, "None specified"),
		"CandidateName":           orDefault(resume.Personal.Name, "Not specified"),
		"Education":               bulletsOr(formatEducation(resume.Education), "Not specified"),
		"Experience":              bulletsOr(formatExperience(resume.Experience), "Not specified"),
		"Skills":                  bulletsOr(resume.Skills, "Not specified"),
		"Projects":                bulletsOr(resume.Projects, "None specified in resume"),
		"GitHubRepos":             bulletsOr(web.GitHubRepos, "None found"),
		"Blogs":                   bulletsOr(web.Blogs, "None found"),
		"ConferenceTalks":         bulletsOr(web.ConferenceTalks, "None found"),
		"SocialMentions":          bulletsOr(web.SocialMentions, "None found"),
	})

	var fit types.FitAssessment
	if err := r.generateStructured(ctx, prompt, llm.TierAdvanced, schemas.FitAssessment, &fit); err != nil {
		return fmt.Errorf("fit assessment failed: %w", err)
	}

	state.FitAssessment = &fit
	return nil
}

// generateStructured runs a JSON-mode LLM call, validates the response
// against the named schema, and unmarshals it into out.
func (r *Runner) generateStructured(ctx context.Context, prompt string, tier llm.ModelTier, schema string, out any) error {
	response, err := r.LLM.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	cleaned := llm.CleanJSONBlock(response)
	if err := schemas.Validate(schema, cleaned); err != nil {
		return fmt.Errorf("response failed %s schema: %w", schema, err)
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func formatEducation(entries []types.EducationEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, edu := range entries {
		end := "Present"
		if edu.EndYear != 0 {
			end = fmt.Sprintf("%d", edu.EndYear)
		}
		start := ""
		if edu.StartYear != 0 {
			start = fmt.Sprintf("%d", edu.StartYear)
		}
		lines = append(lines, fmt.Sprintf("%s from %s (%s-%s)", edu.Degree, edu.Institution, start, end))
	}
	return lines
}

func formatExperience(entries []types.ExperienceEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, exp := range entries {
		entry := fmt.Sprintf("%s at %s", exp.Title, exp.Company)
		if exp.StartDate != "" {
			end := exp.EndDate
			if end == "" {
				end = "Present"
			}
			entry += fmt.Sprintf(" (%s to %s)", exp.StartDate, end)
		}
		if exp.Description != "" {
			entry += ": " + exp.Description
		}
		lines = append(lines, entry)
	}
	return lines
}

func bulletsOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(item)
	}
	return sb.String()
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
