package payroll

import (
	"fmt"
	"math"
	"strings"
)

// Record is the flat form of an employee used by roster files and the HTTP API.
// Only the amount fields of its Kind are read.
type Record struct {
	Kind           Kind    `json:"kind" yaml:"kind"`
	Name           string  `json:"name" yaml:"name"`
	HourlyRate     float64 `json:"hourlyRate,omitempty" yaml:"hourlyRate,omitempty"`
	MonthlyHours   float64 `json:"monthlyHours,omitempty" yaml:"monthlyHours,omitempty"`
	Salary         float64 `json:"salary,omitempty" yaml:"salary,omitempty"`
	BaseSalary     float64 `json:"baseSalary,omitempty" yaml:"baseSalary,omitempty"`
	MonthlySales   float64 `json:"monthlySales,omitempty" yaml:"monthlySales,omitempty"`
	CommissionRate float64 `json:"commissionRate,omitempty" yaml:"commissionRate,omitempty"`
}

// Fields names the amount fields each kind requires, in prompt order.
var Fields = map[Kind][]string{
	KindHourly:       {"hourlyRate", "monthlyHours"},
	KindSalaried:     {"salary"},
	KindCommissioned: {"baseSalary", "monthlySales", "commissionRate"},
}

func (r Record) amounts() map[string]float64 {
	return map[string]float64{
		"hourlyRate":     r.HourlyRate,
		"monthlyHours":   r.MonthlyHours,
		"salary":         r.Salary,
		"baseSalary":     r.BaseSalary,
		"monthlySales":   r.MonthlySales,
		"commissionRate": r.CommissionRate,
	}
}

// SetAmount assigns the named amount field and reports whether the name is known.
func (r *Record) SetAmount(field string, value float64) bool {
	switch field {
	case "hourlyRate":
		r.HourlyRate = value
	case "monthlyHours":
		r.MonthlyHours = value
	case "salary":
		r.Salary = value
	case "baseSalary":
		r.BaseSalary = value
	case "monthlySales":
		r.MonthlySales = value
	case "commissionRate":
		r.CommissionRate = value
	default:
		return false
	}
	return true
}

// Issues lists every field problem of the record; nil means it is valid.
func (r Record) Issues() []FieldIssue {
	var issues []FieldIssue
	kind := Kind(strings.ToLower(strings.TrimSpace(string(r.Kind))))
	if !kind.Valid() {
		issues = append(issues, FieldIssue{Field: "kind", Reason: "must be one of hourly, salaried, commissioned"})
	}
	if strings.TrimSpace(r.Name) == "" {
		issues = append(issues, FieldIssue{Field: "name", Reason: "is required"})
	}
	amounts := r.amounts()
	for _, field := range Fields[kind] {
		if reason := CheckAmount(amounts[field]); reason != "" {
			issues = append(issues, FieldIssue{Field: field, Reason: reason})
		}
	}
	return issues
}

func (r Record) Validate() error {
	if issues := r.Issues(); len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// Employee converts a valid record into its variant.
func (r Record) Employee() (Employee, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(r.Name)
	switch Kind(strings.ToLower(strings.TrimSpace(string(r.Kind)))) {
	case KindHourly:
		return NewHourly(name, r.HourlyRate, r.MonthlyHours), nil
	case KindSalaried:
		return NewSalaried(name, r.Salary), nil
	case KindCommissioned:
		return NewCommissioned(name, r.BaseSalary, r.MonthlySales, r.CommissionRate), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
}

func RecordOf(e Employee) Record {
	switch v := e.(type) {
	case Hourly:
		return Record{Kind: KindHourly, Name: v.FullName, HourlyRate: v.HourlyRate, MonthlyHours: v.Hours}
	case Salaried:
		return Record{Kind: KindSalaried, Name: v.FullName, Salary: v.Salary}
	case Commissioned:
		return Record{Kind: KindCommissioned, Name: v.FullName, BaseSalary: v.BaseSalary, MonthlySales: v.Sales, CommissionRate: v.CommissionRate}
	}
	return Record{}
}

// BuildRoster converts records in order, stopping at the first invalid one.
func BuildRoster(records []Record) (*Roster, error) {
	roster := NewRoster()
	for i, record := range records {
		e, err := record.Employee()
		if err != nil {
			return nil, fmt.Errorf("employee %d: %w", i, err)
		}
		roster.Add(e)
	}
	return roster, nil
}

// CheckAmount returns the reason an amount cannot be used, or "".
func CheckAmount(value float64) string {
	switch {
	case math.IsNaN(value) || math.IsInf(value, 0):
		return "must be a finite number"
	case value < 0:
		return "must be greater than or equal to 0"
	}
	return ""
}
