// Package main provides the entry point for the recruiter agent CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recruiter_agent",
	Short: "Candidate evaluation pipeline",
	Long:  "Recruiter Agent evaluates a candidate against a job description by parsing the resume, corroborating the candidate's background through web research, and producing a structured fit assessment.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
