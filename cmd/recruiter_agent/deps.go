package main

import (
	"context"
	"fmt"
	"log"

	"github.com/sleebit/recruiter-agent/internal/config"
	"github.com/sleebit/recruiter-agent/internal/llm"
	"github.com/sleebit/recruiter-agent/internal/pipeline"
	"github.com/sleebit/recruiter-agent/internal/research"
)

// buildRunner wires the LLM client, searcher, and aggregator into a pipeline
// runner. The returned cleanup closes the LLM client.
func buildRunner(ctx context.Context, cfg *config.Config) (*pipeline.Runner, func(), error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or api_key in the config file)")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	var searcher research.Searcher
	if cfg.SearchAPIKey != "" && cfg.SearchCX != "" {
		gs, err := research.NewGoogleSearcher(ctx, cfg.SearchAPIKey, cfg.SearchCX)
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create searcher: %w", err)
		}
		searcher = gs
	} else {
		log.Println("[RESEARCH] search API not configured, web research limited to resume links")
	}

	agg := research.NewAggregator(searcher)
	agg.UseBrowser = cfg.UseBrowser
	agg.Verbose = cfg.Verbose

	runner := pipeline.NewRunner(client, agg)
	runner.Verbose = cfg.Verbose

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}
	return runner, cleanup, nil
}
