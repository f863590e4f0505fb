package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"paycalc/internal/app/server"
	"paycalc/internal/domain/auth"
	"paycalc/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

func TestPayrollReportJourney(t *testing.T) {
	cfg := config.Config{
		Addr:               ":0",
		Environment:        "test",
		LogLevel:           "info",
		JWTSecret:          "test-secret",
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 1000,
		MaxRosterSize:      50,
		ReportTitle:        "Payroll Summary",
	}

	app, err := server.New(cfg, nil)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}

	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	client := ts.Client()

	reportOnly := issueToken(t, cfg.JWTSecret, auth.PermPayrollReport)
	full := issueToken(t, cfg.JWTSecret, auth.DefaultPermissions...)

	roster := `{"employees":[
		{"kind":"hourly","name":"Ana","hourlyRate":20,"monthlyHours":160},
		{"kind":"salaried","name":"Luis","salary":5000},
		{"kind":"commissioned","name":"Eva","baseSalary":1000,"monthlySales":20000,"commissionRate":5}
	]}`

	status, body := post(t, client, ts.URL+"/api/v1/payroll/report", "", roster)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected anonymous report to be rejected, got %d", status)
	}

	status, body = post(t, client, ts.URL+"/api/v1/payroll/report", reportOnly, roster)
	if status != http.StatusOK {
		t.Fatalf("expected report, got %d: %s", status, body)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var summary struct {
		EmployeeCount       int    `json:"employeeCount"`
		GrandTotalFormatted string `json:"grandTotalFormatted"`
	}
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.EmployeeCount != 3 || summary.GrandTotalFormatted != "$166,000.00" {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	status, body = post(t, client, ts.URL+"/api/v1/payroll/report.txt", reportOnly, roster)
	if status != http.StatusOK || !strings.Contains(string(body), "TOTAL ANNUAL PAYROLL: $166,000.00") {
		t.Fatalf("unexpected text report %d: %s", status, body)
	}

	status, _ = post(t, client, ts.URL+"/api/v1/payroll/report.pdf", reportOnly, roster)
	if status != http.StatusForbidden {
		t.Fatalf("expected pdf export to require export permission, got %d", status)
	}

	status, body = post(t, client, ts.URL+"/api/v1/payroll/report.pdf", full, roster)
	if status != http.StatusOK || !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Fatalf("expected pdf, got %d", status)
	}

	resp, err := client.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	defer resp.Body.Close()
	var metricsEnv struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&metricsEnv); err != nil {
		t.Fatalf("decode metrics: %v", err)
	}
	if metricsEnv.Data["reportsRenderedTotal"].(float64) != 3 {
		t.Fatalf("expected 3 rendered reports, got %v", metricsEnv.Data["reportsRenderedTotal"])
	}
	if metricsEnv.Data["payrollReportedTotal"].(float64) != 3*166000 {
		t.Fatalf("unexpected payroll total: %v", metricsEnv.Data["payrollReportedTotal"])
	}
}

func issueToken(t *testing.T, secret string, perms ...string) string {
	t.Helper()
	token, err := auth.GenerateToken(secret, "journey", perms, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func post(t *testing.T, client *http.Client, url, token, body string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return resp.StatusCode, raw
}
