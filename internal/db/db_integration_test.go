package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	ctx := context.Background()
	database, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(database.Close)

	require.NoError(t, database.InitSchema(ctx))
	return database
}

func TestSaveAndReadHistory(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()
	user := fmt.Sprintf("it-user-%d", time.Now().UnixNano())

	analysis := map[string]any{
		"extracted_skills":         []string{"python"},
		"predicted_career_domains": []string{"Software Development"},
		"learning_gaps":            []any{},
	}
	summary := map[string]any{"total_skills_found": 1}

	id1, err := database.SaveAnalysis(ctx, user, analysis, summary, 12.5)
	require.NoError(t, err)
	assert.Positive(t, id1)

	id2, err := database.SaveAnalysis(ctx, user, analysis, summary, 20.0)
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	history, err := database.History(ctx, user, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, id1, history[0].ID, "history is oldest first")
	assert.JSONEq(t, `{"total_skills_found": 1}`, string(history[0].Summary))

	recent, err := database.Recent(ctx, user, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, id2, recent[0].ID, "recent is newest first")
}

func TestUserStats(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()
	user := fmt.Sprintf("it-stats-%d", time.Now().UnixNano())

	stats, err := database.UserStats(ctx, user)
	require.NoError(t, err)
	assert.Nil(t, stats, "no history yields nil stats")

	_, err = database.SaveAnalysis(ctx, user, map[string]any{}, map[string]any{}, 10)
	require.NoError(t, err)
	_, err = database.SaveAnalysis(ctx, user, map[string]any{}, map[string]any{}, 30)
	require.NoError(t, err)

	stats, err = database.UserStats(ctx, user)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.TotalAnalyses)
	assert.InDelta(t, 20.0, stats.AvgProcessingTime, 0.001)
	assert.False(t, stats.LastAnalysis.Before(stats.FirstAnalysis))
}

func TestUsers(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()
	suffix := time.Now().UnixNano()
	username := fmt.Sprintf("it-u-%d", suffix)
	email := fmt.Sprintf("it-%d@example.com", suffix)

	exists, err := database.UserExists(ctx, username, email)
	require.NoError(t, err)
	assert.False(t, exists)

	id, err := database.CreateUser(ctx, username, email, "$2a$10$hash")
	require.NoError(t, err)
	assert.Positive(t, id)

	u, err := database.GetUserByUsername(ctx, username)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, email, u.Email)

	u, err = database.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, username, u.Username)

	exists, err = database.UserExists(ctx, username, email)
	require.NoError(t, err)
	assert.True(t, exists)

	missing, err := database.GetUserByUsername(ctx, "no-such-user")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
