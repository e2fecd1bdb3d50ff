package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillbridge/resume-analyzer/internal/analyzer"
	"github.com/skillbridge/resume-analyzer/internal/dashboard"
	"github.com/skillbridge/resume-analyzer/internal/extract"
	"github.com/skillbridge/resume-analyzer/internal/types"
)

const (
	maxHistoryLimit   = 50
	defaultDashLimit  = 50
	maxDashboardLimit = 100
)

type analyzeRequest struct {
	Text           string `json:"text"`
	UserIdentifier string `json:"user_identifier"`
}

type userSession struct {
	UserIdentifier string  `json:"user_identifier"`
	AnalysisSaved  bool    `json:"analysis_saved"`
	ProcessingTime float64 `json:"processing_time"`
}

type analyzeResponse struct {
	*types.AnalysisResult
	UserSession userSession `json:"user_session"`
}

// handleAnalyzeResume runs the full pipeline over the submitted document and
// persists the result. Accepts JSON {text, user_identifier} or multipart
// form data with a "file" part.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	text, identifier, err := s.readDocument(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if identifier == "" {
		identifier = uuid.NewString()
	}
	if strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusBadRequest,
			"No text content provided. Please provide text or upload a file.")
		return
	}

	result, err := s.analyzer.Analyze(text)
	if err != nil {
		s.metrics.ObserveAnalysis("error", msSince(start))
		if errors.Is(err, analyzer.ErrEmptyDocument) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Analysis failed for %s: %v", identifier, err)
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	processingTime := msSince(start)
	s.metrics.ObserveAnalysis("success", processingTime)

	saved := true
	if _, err := s.store.SaveAnalysis(r.Context(), identifier, result, result.Summary, processingTime); err != nil {
		log.Printf("Failed to save analysis for %s: %v", identifier, err)
		s.metrics.ObserveSaveFailure()
		saved = false
	}

	s.jsonResponse(w, http.StatusOK, analyzeResponse{
		AnalysisResult: result,
		UserSession: userSession{
			UserIdentifier: identifier,
			AnalysisSaved:  saved,
			ProcessingTime: processingTime,
		},
	})
}

// readDocument pulls the text and identifier out of either a JSON body or a
// multipart upload. Uploaded files are converted to plain text by extension.
func (s *Server) readDocument(r *http.Request) (text, identifier string, err error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var req analyzeRequest
		if decErr := json.NewDecoder(io.LimitReader(r.Body, s.maxUploadBytes)).Decode(&req); decErr != nil {
			return "", "", &ErrValidation{Field: "body", Message: "invalid JSON body"}
		}
		return req.Text, req.UserIdentifier, nil
	}

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		if parseErr := r.ParseForm(); parseErr != nil {
			return "", "", &ErrValidation{Field: "body", Message: "invalid form body"}
		}
	}
	text = r.FormValue("text")
	identifier = r.FormValue("user_identifier")

	if r.MultipartForm != nil {
		if file, header, fErr := r.FormFile("file"); fErr == nil {
			defer file.Close()
			data, readErr := io.ReadAll(io.LimitReader(file, s.maxUploadBytes))
			if readErr != nil {
				return "", "", &ErrValidation{Field: "file", Message: "failed to read uploaded file"}
			}
			extracted, exErr := extract.ByExtension(header.Filename, data)
			if exErr != nil {
				var unsupported *extract.UnsupportedTypeError
				if errors.As(exErr, &unsupported) {
					return "", "", &ErrUnsupportedDocument{ContentType: unsupported.ContentType}
				}
				return "", "", &ErrValidation{Field: "file", Message: exErr.Error()}
			}
			text = extracted
		}
	}
	return text, identifier, nil
}

type skillAnalysisRequest struct {
	Text string `json:"text"`
}

type analysisMetadata struct {
	ProcessingTime float64 `json:"processing_time"`
	TextLength     int     `json:"text_length"`
}

type skillAnalysisResponse struct {
	*types.SkillReport
	Metadata analysisMetadata `json:"analysis_metadata"`
}

// handleSkillAnalysis runs the skill-only report without touching history.
func (s *Server) handleSkillAnalysis(w http.ResponseWriter, r *http.Request) {
	var req skillAnalysisRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, s.maxUploadBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.errorResponse(w, http.StatusBadRequest, "No text content provided")
		return
	}

	start := time.Now()
	report, err := s.analyzer.SkillAnalysis(req.Text)
	if err != nil {
		log.Printf("Skill analysis failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Skill analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, skillAnalysisResponse{
		SkillReport: report,
		Metadata: analysisMetadata{
			ProcessingTime: msSince(start),
			TextLength:     len(req.Text),
		},
	})
}

// handleHistory returns the most recent analyses for one identifier along
// with their aggregate stats.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	identifier := r.Header.Get("X-User-Identifier")
	if identifier == "" {
		s.errorResponse(w, http.StatusBadRequest, "X-User-Identifier header is required")
		return
	}

	limit := parseLimit(r.URL.Query().Get("limit"), s.historyLimit, maxHistoryLimit)
	records, err := s.store.Recent(r.Context(), identifier, limit)
	if err != nil {
		log.Printf("Failed to load history for %s: %v", identifier, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to retrieve history")
		return
	}
	stats, err := s.store.UserStats(r.Context(), identifier)
	if err != nil {
		log.Printf("Failed to load stats for %s: %v", identifier, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to retrieve history")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":         true,
		"user_identifier": identifier,
		"history":         records,
		"user_stats":      stats,
		"total_analyses":  len(records),
	})
}

// handleUserStats returns aggregate stats for one identifier.
func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	identifier := r.URL.Query().Get("user_identifier")
	if identifier == "" {
		s.errorResponse(w, http.StatusBadRequest, "user_identifier parameter is required")
		return
	}

	stats, err := s.store.UserStats(r.Context(), identifier)
	if err != nil {
		log.Printf("Failed to load stats for %s: %v", identifier, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to retrieve user stats")
		return
	}
	if stats == nil {
		s.jsonResponse(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "No analysis history found for this user",
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":         true,
		"user_identifier": identifier,
		"stats":           stats,
	})
}

// handleGenerateSession issues a fresh identifier for anonymous users.
func (s *Server) handleGenerateSession(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":    true,
		"session_id": uuid.NewString(),
		"message":    "New session created successfully",
	})
}

// handleDashboard aggregates the stored history into dashboard analytics.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	identifier := r.Header.Get("X-User-Identifier")
	if identifier == "" {
		s.errorResponse(w, http.StatusBadRequest, "X-User-Identifier header is required")
		return
	}

	limit := parseLimit(r.URL.Query().Get("limit"), defaultDashLimit, maxDashboardLimit)
	records, err := s.store.History(r.Context(), identifier, limit)
	if err != nil {
		log.Printf("Failed to load history for %s: %v", identifier, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	board, err := dashboard.Build(identifier, records)
	if err != nil {
		if errors.Is(err, dashboard.ErrNoHistory) {
			s.errorResponse(w, HTTPStatus(&ErrNoHistory{UserIdentifier: identifier}),
				"No analysis history found for this user")
			return
		}
		log.Printf("Failed to build dashboard for %s: %v", identifier, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"dashboard": board,
	})
}

// handleHealth reports liveness and the knowledge base dimensions.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	kb := s.analyzer.KnowledgeBase()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"message":   "Resume Analyzer API is running",
		"timestamp": time.Now().Format(time.RFC3339),
		"features": map[string]any{
			"career_domains":     len(kb.Domains),
			"skill_categories":   len(kb.Taxonomy),
			"personality_traits": len(kb.Traits),
			"learning_resources": len(kb.Resources),
			"total_skills":       len(kb.CommonSkills()),
			"local_history":      true,
			"user_sessions":      true,
		},
	})
}

// parseLimit applies the default and the cap to a raw query value.
func parseLimit(raw string, def, max int) int {
	limit := def
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > max {
		limit = max
	}
	return limit
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
