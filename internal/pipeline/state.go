// Package pipeline runs the four-stage candidate evaluation: job description
// parsing, resume parsing, web research, and fit assessment. Each stage reads
// from and appends to a shared State; earlier outputs are never mutated.
package pipeline

import "github.com/sleebit/recruiter-agent/internal/types"

// Input is what the caller provides to start an evaluation.
type Input struct {
	CandidateName  string `json:"candidate_name"`
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`
}

// State accumulates stage outputs across the pipeline. Fields are filled in
// stage order and left untouched afterwards.
type State struct {
	CandidateName  string `json:"candidate_name"`
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`

	JDStructured     *types.JobDescription `json:"jd_structured,omitempty"`
	ResumeStructured *types.Resume         `json:"resume_structured,omitempty"`
	ExtractedURLs    []string              `json:"extracted_urls,omitempty"`
	WebStructured    *types.WebResearch    `json:"web_structured,omitempty"`
	FitAssessment    *types.FitAssessment  `json:"fit_assessment,omitempty"`
	FormattedOutput  string                `json:"formatted_output,omitempty"`
}

// Stage names reported through the progress callback.
const (
	StageJDParser      = "JDParser"
	StageResumeParser  = "ResumeParser"
	StageWebResearcher = "WebResearcher"
	StageFitScorer     = "FitScorer"
)
