package shared

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"paycalc/internal/domain/payroll"
	"paycalc/internal/transport/http/api"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{
		Field:  field,
		Reason: reason,
	})
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

// Record adds every issue of an employee record, prefixing fields with prefix.
func (v *Validator) Record(prefix string, record payroll.Record) {
	for _, issue := range record.Issues() {
		field := issue.Field
		if prefix != "" {
			field = prefix + "." + field
		}
		v.Add(field, issue.Reason)
	}
}

// Roster validates a list of records and its size.
func (v *Validator) Roster(field string, records []payroll.Record, maxSize int) {
	if maxSize > 0 && len(records) > maxSize {
		v.Add(field, fmt.Sprintf("must contain at most %d employees", maxSize))
		return
	}
	for i, record := range records {
		v.Record(fmt.Sprintf("%s[%d]", field, i), record)
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	FailValidation(w, requestID, v.Issues())
	return true
}

func FailValidation(w http.ResponseWriter, requestID string, issues []ValidationIssue) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}
