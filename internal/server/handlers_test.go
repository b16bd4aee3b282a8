package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-checker/internal/server/ratelimit"
	"github.com/jonathan/resume-checker/internal/types"
)

// newTestServer builds a server with rate limiting off and logs discarded.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	limiter := ratelimit.NewLimiter(&ratelimit.Config{Enabled: false})
	t.Cleanup(limiter.Stop)
	return &Server{
		rateLimiter: limiter,
		validate:    validator.New(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func postJSON(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestHandleCheck_ReturnsReport(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(s.handleCheck, `{"resume": {
		"personalInfo": {"fullName": "Jane Smith", "email": "jane@acme.io"},
		"summary": "Led engineering teams for 8+ years in technology.",
		"experience": [],
		"education": [],
		"skills": ["Python", "SQL"]
	}}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var report types.CheckReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Len(t, report.Categories, 7)
	assert.NotEmpty(t, report.PassStatus)
}

func TestHandleCheck_EmptyResumeIsValid(t *testing.T) {
	s := newTestServer(t)

	// Emptiness is a scoring condition, not a request error.
	rr := postJSON(s.handleCheck, `{"resume": {}}`)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleCheck_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(s.handleCheck, `{not json`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Invalid request body")
}

func TestHandleEnhance_TextMode(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(s.handleEnhance, `{"text": "I was responsible for the team"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var result types.EnhancementResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Len(t, result.Replacements, 1)
	assert.Equal(t, "I led the team", result.EnhancedText)
}

func TestHandleEnhance_BulletsMode(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(s.handleEnhance, `{"text": "• worked on billing\n• Led releases", "mode": "bullets"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var result types.EnhancementResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Contains(t, result.EnhancedText, "• ")
}

func TestHandleEnhance_MissingText(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(s.handleEnhance, `{}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Text")
}

func TestHandleEnhance_BadMode(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(s.handleEnhance, `{"text": "anything", "mode": "paragraphs"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleGroupSkills(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(s.handleGroupSkills, `{"skills": ["Python", "React", "Leadership", "Mystery"]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var grouped types.GroupedSkills
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &grouped))
	assert.Len(t, grouped.Groups, 3)
	assert.Equal(t, []string{"Mystery"}, grouped.Ungrouped)
}

func TestHandleGroupSkills_MissingSkills(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(s.handleGroupSkills, `{}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleRecommendTemplates(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(s.handleRecommendTemplates, `{"resume": {
		"summary": "Software engineer with python, docker, kubernetes and aws experience."
	}}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var recs []types.TemplateRecommendation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &recs))
	require.NotEmpty(t, recs)
	assert.Equal(t, "tech-innovator", recs[0].Template.ID)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.handleHealth(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestNew_InvalidPort(t *testing.T) {
	_, err := New(Config{Port: 0})
	require.Error(t, err)

	_, err = New(Config{Port: 70000})
	require.Error(t, err)
}

func TestNew_RoutesRequests(t *testing.T) {
	s, err := New(Config{Port: 8080, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rr := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestNew_MethodNotAllowed(t *testing.T) {
	s, err := New(Config{Port: 8080, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rr := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
