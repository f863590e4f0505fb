package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"paycalc/internal/domain/payroll"
)

func TestValidatorRoster(t *testing.T) {
	v := NewValidator()
	v.Roster("employees", []payroll.Record{
		{Kind: payroll.KindSalaried, Name: "Luis", Salary: 1},
		{Kind: payroll.KindHourly, Name: "", HourlyRate: -1, MonthlyHours: 2},
	}, 10)

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %+v", issues)
	}
	if issues[0].Field != "employees[1].hourlyRate" || issues[1].Field != "employees[1].name" {
		t.Fatalf("unexpected issue fields: %+v", issues)
	}
}

func TestValidatorRosterSize(t *testing.T) {
	v := NewValidator()
	v.Roster("employees", make([]payroll.Record, 3), 2)
	if issues := v.Issues(); len(issues) != 1 || issues[0].Field != "employees" {
		t.Fatalf("expected size issue only, got %+v", issues)
	}
}

func TestValidatorReject(t *testing.T) {
	v := NewValidator()
	rec := httptest.NewRecorder()
	if v.Reject(rec, "req-1") {
		t.Fatal("did not expect rejection without issues")
	}

	v.Required("name", " ", "is required")
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected rejection")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Fields []ValidationIssue `json:"fields"`
			} `json:"details"`
		} `json:"error"`
		RequestID string `json:"requestId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error.Code != "validation_error" || len(payload.Error.Details.Fields) != 1 || payload.RequestID != "req-1" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}
