package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skillbridge/resume-analyzer/internal/types"
)

// SaveAnalysis stores one completed analysis and returns its row ID.
func (db *DB) SaveAnalysis(ctx context.Context, userIdentifier string, analysis, summary any, processingTimeMs float64) (int64, error) {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal summary: %w", err)
	}

	var id int64
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analysis_history (user_identifier, analysis_data, analysis_summary, processing_time_ms)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userIdentifier, analysisJSON, summaryJSON, processingTimeMs,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// History returns a user's stored analyses oldest first, summaries only.
// The dashboard aggregator depends on this ordering.
func (db *DB) History(ctx context.Context, userIdentifier string, limit int) ([]types.HistoryRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_identifier, analysis_data, analysis_summary, processing_time_ms, created_at
		 FROM analysis_history
		 WHERE user_identifier = $1
		 ORDER BY created_at ASC
		 LIMIT $2`,
		userIdentifier, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanHistory(rows)
}

// Recent returns a user's stored analyses newest first.
func (db *DB) Recent(ctx context.Context, userIdentifier string, limit int) ([]types.HistoryRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_identifier, analysis_data, analysis_summary, processing_time_ms, created_at
		 FROM analysis_history
		 WHERE user_identifier = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userIdentifier, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanHistory(rows)
}

func scanHistory(rows pgx.Rows) ([]types.HistoryRecord, error) {
	var records []types.HistoryRecord
	for rows.Next() {
		var rec types.HistoryRecord
		if err := rows.Scan(&rec.ID, &rec.UserIdentifier, &rec.Analysis, &rec.Summary,
			&rec.ProcessingTimeMs, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	return records, nil
}

// UserStats aggregates the stored history for one identifier. A user with
// no history yields a nil result, not an error.
func (db *DB) UserStats(ctx context.Context, userIdentifier string) (*types.UserStats, error) {
	var stats types.UserStats
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(processing_time_ms), 0), MIN(created_at), MAX(created_at)
		 FROM analysis_history
		 WHERE user_identifier = $1
		 HAVING COUNT(*) > 0`,
		userIdentifier,
	).Scan(&stats.TotalAnalyses, &stats.AvgProcessingTime, &stats.FirstAnalysis, &stats.LastAnalysis)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return &stats, nil
}
