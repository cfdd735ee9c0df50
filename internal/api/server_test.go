package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/khanhnv2901/confaudit-cli/internal/analyzer"
)

func newTestServer(cfg Config) *Server {
	if cfg.Engine == nil {
		cfg.Engine = analyzer.New()
	}
	return NewServer(cfg)
}

func postJSON(t *testing.T, srv *Server, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := newTestServer(Config{})

	rec := postJSON(t, srv, "/api/v1/analyze", AnalyzeRequest{
		Config:   "line vty 0 4\n password cisco\n transport input telnet\n!",
		Password: "cisco",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected a run ID")
	}
	if resp.Result == nil || resp.Result.Critical < 2 {
		t.Fatalf("expected critical findings, got %+v", resp.Result)
	}
	if resp.Result.PasswordAnalysis == nil {
		t.Error("expected password analysis in response")
	}
}

func TestAnalyzeEndpoint_EmptyConfigRejected(t *testing.T) {
	srv := newTestServer(Config{})

	rec := postJSON(t, srv, "/api/v1/analyze", AnalyzeRequest{Config: "   \n  "})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "config text is required") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestAnalyzeEndpoint_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestPasswordEndpoint(t *testing.T) {
	srv := newTestServer(Config{})

	rec := postJSON(t, srv, "/api/v1/password", PasswordRequest{Password: ""})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var analysis analyzer.PasswordAnalysis
	if err := json.Unmarshal(rec.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if analysis.Strength != analyzer.StrengthCritical || analysis.Score != 0 {
		t.Errorf("expected CRITICAL/0 for empty credential, got %s/%d", analysis.Strength, analysis.Score)
	}
}

func TestAuthToken(t *testing.T) {
	srv := newTestServer(Config{AuthToken: "sekrit"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Auth-Token", "sekrit")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(Config{RateLimit: 1, RateBurst: 1})

	var limited bool
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		req.RemoteAddr = "10.1.2.3:4444"
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
		}
	}
	if !limited {
		t.Error("expected at least one request to be rate limited")
	}
}

func TestMaxBodyBytes(t *testing.T) {
	srv := newTestServer(Config{MaxBodyBytes: 64})

	big := strings.Repeat("a", 256)
	rec := postJSON(t, srv, "/api/v1/analyze", AnalyzeRequest{Config: big})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized body, got %d", rec.Code)
	}
}
