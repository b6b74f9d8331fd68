package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/sleebit/recruiter-agent/internal/llm"
	"github.com/sleebit/recruiter-agent/internal/report"
	"github.com/sleebit/recruiter-agent/internal/research"
)

// ProgressFunc is called as each stage completes.
type ProgressFunc func(stage string)

// Runner executes the evaluation pipeline.
type Runner struct {
	LLM        llm.Client
	Aggregator *research.Aggregator
	Progress   ProgressFunc
	Verbose    bool
}

// NewRunner wires a pipeline runner from its two external dependencies.
func NewRunner(client llm.Client, aggregator *research.Aggregator) *Runner {
	return &Runner{
		LLM:        client,
		Aggregator: aggregator,
	}
}

// Run executes the four stages in order and returns the final state.
// The first three stages degrade to fallback structures on failure; only a
// failed fit assessment aborts the run.
func (r *Runner) Run(ctx context.Context, input Input) (*State, error) {
	if input.JobDescription == "" {
		return nil, fmt.Errorf("job description is required")
	}
	if input.ResumeText == "" {
		return nil, fmt.Errorf("resume text is required")
	}

	state := &State{
		CandidateName:  input.CandidateName,
		JobDescription: input.JobDescription,
		ResumeText:     input.ResumeText,
	}

	r.parseJobDescription(ctx, state)
	r.report(StageJDParser)

	r.parseResume(ctx, state)
	r.report(StageResumeParser)

	r.webResearch(ctx, state)
	r.report(StageWebResearcher)

	if err := r.fitAssessment(ctx, state); err != nil {
		return nil, err
	}
	state.FormattedOutput = report.Markdown(state.FitAssessment)
	r.report(StageFitScorer)

	return state, nil
}

func (r *Runner) report(stage string) {
	if r.Verbose {
		log.Printf("[PIPELINE] %s completed", stage)
	}
	if r.Progress != nil {
		r.Progress(stage)
	}
}
