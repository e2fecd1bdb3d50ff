package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/skillbridge/resume-analyzer/internal/analyzer"
	"github.com/skillbridge/resume-analyzer/internal/db"
	"github.com/skillbridge/resume-analyzer/internal/extract"
	"github.com/skillbridge/resume-analyzer/internal/knowledge"
	"github.com/skillbridge/resume-analyzer/internal/nlp"
	"github.com/skillbridge/resume-analyzer/internal/observability"
	"github.com/skillbridge/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze resume documents from the command line",
	Long: `Run the full analysis pipeline over one or more local documents
(txt, pdf, docx, or html) and print the results. With --db-url the results
are also saved to the analysis history.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeJSON        string
	analyzeUser        string
	analyzeDatabaseURL string
	analyzeWorkers     int
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "Write full results as JSON to a file ('-' for stdout)")
	analyzeCmd.Flags().StringVarP(&analyzeUser, "user", "u", "", "User identifier for history storage (default: generated)")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 4, "Number of documents to analyze concurrently")
	rootCmd.AddCommand(analyzeCmd)
}

type fileResult struct {
	File           string                `json:"file"`
	Analysis       *types.AnalysisResult `json:"analysis"`
	ProcessingTime float64               `json:"processing_time_ms"`
}

func runAnalyze(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	an := analyzer.New(knowledge.Default(), nlp.NewProseTagger())

	var database *db.DB
	dbURL := analyzeDatabaseURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL != "" {
		var err error
		database, err = db.Connect(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.InitSchema(ctx); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	identifier := analyzeUser
	if identifier == "" {
		identifier = uuid.NewString()
	}

	results := make([]fileResult, len(args))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(analyzeWorkers)
	for i, path := range args {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			text, err := extract.ByExtension(path, data)
			if err != nil {
				return fmt.Errorf("failed to extract text from %s: %w", path, err)
			}

			start := time.Now()
			result, err := an.Analyze(text)
			if err != nil {
				return fmt.Errorf("failed to analyze %s: %w", path, err)
			}
			elapsed := float64(time.Since(start).Microseconds()) / 1000

			if database != nil {
				if _, err := database.SaveAnalysis(gctx, identifier, result, result.Summary, elapsed); err != nil {
					return fmt.Errorf("failed to save analysis for %s: %w", path, err)
				}
			}

			results[i] = fileResult{File: path, Analysis: result, ProcessingTime: elapsed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })

	printer := observability.NewPrinter(os.Stdout)
	for _, res := range results {
		fmt.Fprintf(os.Stdout, "\n%s\n", res.File)
		printer.PrintAnalysis(res.Analysis)
	}
	if database != nil {
		fmt.Fprintf(os.Stdout, "\nSaved %d analyses for user %s\n", len(results), identifier)
	}

	if analyzeJSON != "" {
		if err := writeJSON(analyzeJSON, results); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, results []fileResult) error {
	out := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to write JSON results: %w", err)
	}
	return nil
}
