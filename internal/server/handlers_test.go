package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/resume-analyzer/internal/analyzer"
	"github.com/skillbridge/resume-analyzer/internal/config"
	"github.com/skillbridge/resume-analyzer/internal/db"
	"github.com/skillbridge/resume-analyzer/internal/knowledge"
	"github.com/skillbridge/resume-analyzer/internal/metrics"
	"github.com/skillbridge/resume-analyzer/internal/nlp"
	"github.com/skillbridge/resume-analyzer/internal/types"
)

type fakeStore struct {
	records []types.HistoryRecord
	stats   *types.UserStats
	saveErr error
	saves   int
}

func (f *fakeStore) SaveAnalysis(ctx context.Context, userIdentifier string, analysis, summary any, processingTimeMs float64) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.saves++
	return int64(f.saves), nil
}

func (f *fakeStore) History(ctx context.Context, userIdentifier string, limit int) ([]types.HistoryRecord, error) {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	return f.records[:limit], nil
}

func (f *fakeStore) Recent(ctx context.Context, userIdentifier string, limit int) ([]types.HistoryRecord, error) {
	out := make([]types.HistoryRecord, 0, limit)
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.records[i])
	}
	return out, nil
}

func (f *fakeStore) UserStats(ctx context.Context, userIdentifier string) (*types.UserStats, error) {
	return f.stats, nil
}

type fakeUsers struct {
	users  map[string]*db.User
	nextID int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]*db.User{}}
}

func (f *fakeUsers) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	f.nextID++
	f.users[username] = &db.User{
		ID:           f.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return f.nextID, nil
}

func (f *fakeUsers) GetUserByUsername(ctx context.Context, username string) (*db.User, error) {
	return f.users[username], nil
}

func (f *fakeUsers) UserExists(ctx context.Context, username, email string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func newTestServer(t *testing.T, store *fakeStore, users UserStore) *Server {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("BCRYPT_COST", "10")

	if users == nil {
		users = newFakeUsers()
	}
	cfg := &config.Config{
		Port:           5001,
		RateLimitRPS:   100,
		RateBurst:      200,
		MaxUploadBytes: 10 << 20,
		HistoryLimit:   10,
	}
	an := analyzer.New(knowledge.Default(), nlp.NewProseTagger())
	s, err := New(cfg, store, users, an, metrics.New())
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAnalyzeResumeJSON(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(t, store, nil)

	w := doJSON(t, s, "POST", "/analyze-resume", map[string]any{
		"text":            "Senior engineer with 5 years of experience in python and sql.",
		"user_identifier": "user-123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	skills, ok := body["extracted_skills"].([]any)
	require.True(t, ok)
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "sql")

	session, ok := body["user_session"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user-123", session["user_identifier"])
	assert.Equal(t, true, session["analysis_saved"])
	assert.Equal(t, 1, store.saves)
}

func TestAnalyzeResumeGeneratesIdentifier(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	w := doJSON(t, s, "POST", "/analyze-resume", map[string]any{
		"text": "worked with python for a decade",
	})

	require.Equal(t, http.StatusOK, w.Code)
	session := decodeBody(t, w)["user_session"].(map[string]any)
	assert.NotEmpty(t, session["user_identifier"])
}

func TestAnalyzeResumeSaveFailure(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("connection refused")}
	s := newTestServer(t, store, nil)

	w := doJSON(t, s, "POST", "/analyze-resume", map[string]any{
		"text":            "python developer",
		"user_identifier": "user-123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	session := decodeBody(t, w)["user_session"].(map[string]any)
	assert.Equal(t, false, session["analysis_saved"])
}

func TestAnalyzeResumeEmptyText(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	w := doJSON(t, s, "POST", "/analyze-resume", map[string]any{"text": "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "No text content provided")
}

func TestAnalyzeResumeMultipartUpload(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("user_identifier", "upload-user"))
	part, err := mw.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("Backend developer skilled in python and docker."))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/analyze-resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["extracted_skills"].([]any), "python")
	assert.Equal(t, "upload-user", body["user_session"].(map[string]any)["user_identifier"])
}

func TestSkillAnalysis(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	w := doJSON(t, s, "POST", "/skill-analysis", map[string]any{
		"text": "python javascript communication",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	dist, ok := body["skill_distribution"].(map[string]any)
	require.True(t, ok)
	assert.Greater(t, dist["total_skills"], float64(0))
	meta := body["analysis_metadata"].(map[string]any)
	assert.Greater(t, meta["text_length"], float64(0))
}

func TestSkillAnalysisEmptyText(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	w := doJSON(t, s, "POST", "/skill-analysis", map[string]any{"text": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryRequiresIdentifier(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	req := httptest.NewRequest("GET", "/history", nil)
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "X-User-Identifier")
}

func TestHistory(t *testing.T) {
	store := &fakeStore{
		records: []types.HistoryRecord{
			{ID: 1, UserIdentifier: "u1", Summary: json.RawMessage(`{}`), CreatedAt: time.Now().Add(-time.Hour)},
			{ID: 2, UserIdentifier: "u1", Summary: json.RawMessage(`{}`), CreatedAt: time.Now()},
		},
		stats: &types.UserStats{TotalAnalyses: 2, AvgProcessingTime: 12.5},
	}
	s := newTestServer(t, store, nil)

	req := httptest.NewRequest("GET", "/history", nil)
	req.Header.Set("X-User-Identifier", "u1")
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["total_analyses"])

	// most recent first
	history := body["history"].([]any)
	first := history[0].(map[string]any)
	assert.Equal(t, float64(2), first["id"])
}

func TestUserStatsNotFound(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	req := httptest.NewRequest("GET", "/user-stats?user_identifier=ghost", nil)
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
}

func TestUserStatsMissingParam(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	req := httptest.NewRequest("GET", "/user-stats", nil)
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateSession(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	w := doJSON(t, s, "POST", "/generate-session", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["session_id"])
}

func historyRecord(id int64, created time.Time) types.HistoryRecord {
	analysis := map[string]any{
		"extracted_skills":         []string{"python"},
		"predicted_career_domains": []string{"Software Development"},
		"learning_gaps":            []map[string]any{},
	}
	blob, _ := json.Marshal(analysis)
	summary, _ := json.Marshal(map[string]any{"total_skills_found": 1})
	return types.HistoryRecord{
		ID:             id,
		UserIdentifier: "u1",
		Analysis:       blob,
		Summary:        summary,
		CreatedAt:      created,
	}
}

func TestDashboard(t *testing.T) {
	now := time.Now()
	store := &fakeStore{records: []types.HistoryRecord{
		historyRecord(1, now.Add(-48*time.Hour)),
		historyRecord(2, now),
	}}
	s := newTestServer(t, store, nil)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("X-User-Identifier", "u1")
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	board := body["dashboard"].(map[string]any)
	overview := board["overview"].(map[string]any)
	assert.Equal(t, float64(2), overview["total_analyses"])
}

func TestDashboardNoHistory(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("X-User-Identifier", "ghost")
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	features := body["features"].(map[string]any)
	assert.Greater(t, features["career_domains"], float64(0))
	assert.Greater(t, features["total_skills"], float64(0))
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUsers()
	s := newTestServer(t, &fakeStore{}, users)

	w := doJSON(t, s, "POST", "/auth/register", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = doJSON(t, s, "POST", "/auth/login", map[string]any{
		"username": "alice",
		"password": "correct horse battery",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	token, _ := body["token"].(string)
	claims, err := s.authHandler.jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegisterDuplicate(t *testing.T) {
	users := newFakeUsers()
	s := newTestServer(t, &fakeStore{}, users)

	w := doJSON(t, s, "POST", "/auth/register", map[string]any{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, "POST", "/auth/register", map[string]any{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "hunter2hunter2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil)

	w := doJSON(t, s, "POST", "/auth/register", map[string]any{
		"username": "carol",
		"email":    "not-an-email",
		"password": "longenoughpw",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "Email")
}

func TestLoginBadPassword(t *testing.T) {
	users := newFakeUsers()
	s := newTestServer(t, &fakeStore{}, users)

	w := doJSON(t, s, "POST", "/auth/register", map[string]any{
		"username": "dave",
		"email":    "dave@example.com",
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, "POST", "/auth/login", map[string]any{
		"username": "dave",
		"password": "wrong password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitExceeded(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("BCRYPT_COST", "10")

	cfg := &config.Config{
		Port:           5001,
		RateLimitRPS:   1,
		RateBurst:      2,
		MaxUploadBytes: 10 << 20,
		HistoryLimit:   10,
	}
	an := analyzer.New(knowledge.Default(), nlp.NewProseTagger())
	s, err := New(cfg, &fakeStore{}, newFakeUsers(), an, metrics.New())
	require.NoError(t, err)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = doJSON(t, s, "POST", "/generate-session", nil)
	}
	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
}

func TestRateLimitSkipsHealth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("BCRYPT_COST", "10")

	cfg := &config.Config{
		Port:           5001,
		RateLimitRPS:   1,
		RateBurst:      1,
		MaxUploadBytes: 10 << 20,
		HistoryLimit:   10,
	}
	an := analyzer.New(knowledge.Default(), nlp.NewProseTagger())
	s, err := New(cfg, &fakeStore{}, newFakeUsers(), an, metrics.New())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		s.httpServer.Handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, fmt.Sprintf("request %d", i))
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		def  int
		max  int
		want int
	}{
		{"", 10, 50, 10},
		{"5", 10, 50, 5},
		{"999", 10, 50, 50},
		{"abc", 10, 50, 10},
		{"-3", 10, 50, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLimit(tt.raw, tt.def, tt.max), strings.TrimSpace(tt.raw))
	}
}
