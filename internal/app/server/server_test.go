package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"paycalc/internal/platform/config"
)

func testConfig() config.Config {
	return config.Config{
		Addr:               ":0",
		Environment:        "test",
		LogLevel:           "info",
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 1000,
		MaxRosterSize:      100,
		ReportTitle:        "Payroll Summary",
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitPerMinute = 0
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected config error")
	}
}

func TestHealthAndMetrics(t *testing.T) {
	app, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for _, path := range []string{"/healthz", "/metrics"} {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		if rec.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s: expected request id header", path)
		}
	}
}
