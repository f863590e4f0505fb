package payroll

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRecord = errors.New("invalid employee record")
	ErrUnknownKind   = errors.New("unknown employee kind")
)

type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every field that kept a Record from becoming an Employee.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+" "+issue.Reason)
	}
	return ErrInvalidRecord.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}
