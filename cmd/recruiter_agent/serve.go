package main

import (
	"context"
	"fmt"
	"log"

	"github.com/sleebit/recruiter-agent/internal/config"
	"github.com/sleebit/recruiter-agent/internal/db"
	"github.com/sleebit/recruiter-agent/internal/server"
	"github.com/sleebit/recruiter-agent/internal/task"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that accepts evaluation requests and tracks them as background tasks.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	runner, cleanup, err := buildRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var repo task.Repository = task.NewMemoryRepository()
	var recorder task.Recorder
	var runs server.RunLister

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		repo = db.NewTaskRepository(database)
		recorder = database
		runs = database
	} else {
		log.Println("DATABASE_URL not set, tasks are kept in memory and run history is disabled")
	}

	manager := task.NewManager(repo, runner, recorder)

	srv := server.New(server.Config{
		Port:      cfg.Port,
		JWTSecret: cfg.JWTSecret,
	}, manager, runs)

	return srv.Start()
}
