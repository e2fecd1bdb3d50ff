package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillbridge/resume-analyzer/internal/dashboard"
	"github.com/skillbridge/resume-analyzer/internal/db"
	"github.com/skillbridge/resume-analyzer/internal/observability"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the analytics dashboard for a user",
	Long:  `Aggregate the stored analysis history for a user into longitudinal analytics and print them.`,
	RunE:  runDashboard,
}

var (
	dashboardUser  string
	dashboardLimit int
	dashboardJSON  bool
)

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardUser, "user", "u", "", "User identifier (required)")
	dashboardCmd.Flags().IntVar(&dashboardLimit, "limit", 50, "Maximum number of history records to aggregate")
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Print the dashboard as JSON")
	_ = dashboardCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	records, err := database.History(ctx, dashboardUser, dashboardLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	board, err := dashboard.Build(dashboardUser, records)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	if dashboardJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(board)
	}

	observability.NewPrinter(os.Stdout).PrintDashboard(board)
	return nil
}
