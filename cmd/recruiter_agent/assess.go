package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/sleebit/recruiter-agent/internal/config"
	"github.com/sleebit/recruiter-agent/internal/ingestion"
	"github.com/sleebit/recruiter-agent/internal/pipeline"
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Evaluate a candidate against a job description",
	Long: `Run the full evaluation pipeline once: parse the job description and resume,
research the candidate on the web, and write a fit assessment report.`,
	RunE: runAssess,
}

var (
	assessConfigPath string
	assessName       string
	assessResume     string
	assessJob        string
	assessJobText    string
	assessOutput     string
	assessJSONOut    string
	assessAPIKey     string
	assessUseBrowser bool
	assessVerbose    bool
)

func init() {
	assessCmd.Flags().StringVar(&assessConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	assessCmd.Flags().StringVarP(&assessName, "name", "n", "", "Candidate name (required)")
	assessCmd.Flags().StringVarP(&assessResume, "resume", "r", "", "Path to resume file (.pdf, .docx, or .txt) (required)")
	assessCmd.Flags().StringVarP(&assessJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-text)")
	assessCmd.Flags().StringVar(&assessJobText, "job-text", "", "Job description text (mutually exclusive with --job)")
	assessCmd.Flags().StringVarP(&assessOutput, "output", "o", "", "Path to write the markdown report (default stdout)")
	assessCmd.Flags().StringVar(&assessJSONOut, "json-output", "", "Path to write the full pipeline state as JSON")
	assessCmd.Flags().StringVar(&assessAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	assessCmd.Flags().BoolVar(&assessUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	assessCmd.Flags().BoolVarP(&assessVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = assessCmd.MarkFlagRequired("name")
	_ = assessCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(assessConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = assessAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = assessUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = assessVerbose
	}

	if assessJob == "" && assessJobText == "" {
		return fmt.Errorf("either --job or --job-text is required")
	}
	if assessJob != "" && assessJobText != "" {
		return fmt.Errorf("--job and --job-text are mutually exclusive")
	}

	jobText := assessJobText
	if assessJob != "" {
		data, err := os.ReadFile(assessJob)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobText = string(data)
	}

	resumeText, err := ingestion.ExtractFile(assessResume)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}
	resumeText = ingestion.CleanText(resumeText)

	runner, cleanup, err := buildRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	runner.Progress = func(stage string) {
		log.Printf("[PIPELINE] completed stage: %s", stage)
	}

	state, err := runner.Run(ctx, pipeline.Input{
		CandidateName:  assessName,
		JobDescription: jobText,
		ResumeText:     resumeText,
	})
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if assessJSONOut != "" {
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal pipeline state: %w", err)
		}
		if err := os.WriteFile(assessJSONOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
	}

	if assessOutput == "" {
		fmt.Println(state.FormattedOutput)
		return nil
	}
	if err := os.WriteFile(assessOutput, []byte(state.FormattedOutput), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Printf("Report written to %s", assessOutput)
	return nil
}
