package reports

import (
	"paycalc/internal/domain/payroll"
	"paycalc/internal/platform/money"
)

// Line is one employee's breakdown with its amounts already formatted.
type Line struct {
	payroll.Breakdown
	Formatted FormattedAmounts `json:"formatted"`
}

type FormattedAmounts struct {
	Monthly string `json:"monthly"`
	Annual  string `json:"annual"`
	Bonus   string `json:"bonus"`
	Total   string `json:"total"`
}

type Summary struct {
	Employees           []Line  `json:"employees"`
	EmployeeCount       int     `json:"employeeCount"`
	GrandTotal          float64 `json:"grandTotal"`
	GrandTotalFormatted string  `json:"grandTotalFormatted"`
}

func LineOf(e payroll.Employee) Line {
	b := payroll.Compute(e)
	return Line{
		Breakdown: b,
		Formatted: FormattedAmounts{
			Monthly: money.Format(b.Monthly),
			Annual:  money.Format(b.Annual),
			Bonus:   money.Format(b.Bonus),
			Total:   money.Format(b.Total),
		},
	}
}

// Summarize folds the roster the same way RenderRoster does, returning data
// instead of text.
func Summarize(employees []payroll.Employee) Summary {
	summary := Summary{Employees: make([]Line, 0, len(employees))}
	for _, e := range employees {
		line := LineOf(e)
		summary.Employees = append(summary.Employees, line)
		summary.GrandTotal += line.Total
	}
	summary.EmployeeCount = len(summary.Employees)
	summary.GrandTotalFormatted = money.Format(summary.GrandTotal)
	return summary
}
