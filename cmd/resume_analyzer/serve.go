package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillbridge/resume-analyzer/internal/analyzer"
	"github.com/skillbridge/resume-analyzer/internal/config"
	"github.com/skillbridge/resume-analyzer/internal/db"
	"github.com/skillbridge/resume-analyzer/internal/knowledge"
	"github.com/skillbridge/resume-analyzer/internal/metrics"
	"github.com/skillbridge/resume-analyzer/internal/nlp"
	"github.com/skillbridge/resume-analyzer/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analysis, history, and dashboard endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	an := analyzer.New(knowledge.Default(), nlp.NewProseTagger())
	srv, err := server.New(cfg, database, database, an, metrics.New())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadServeConfig merges the config file, the environment, and the CLI
// flags, flags winning.
func loadServeConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if serveConfigPath != "" {
		cfg, err = config.LoadConfig(serveConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg, err = config.FromEnv()
		if err != nil {
			return nil, err
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
