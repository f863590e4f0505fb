package reports

import (
	"fmt"
	"io"
	"strings"

	"paycalc/internal/domain/payroll"
	"paycalc/internal/platform/money"
)

const (
	rosterWidth = 60

	EmptyRosterMessage = "No employees registered."
)

// Reporter writes payroll reports to a single output sink.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// RenderIndividual writes one employee's salary summary.
func (r *Reporter) RenderIndividual(e payroll.Employee) error {
	return payroll.WriteSummary(r.out, e)
}

// RenderRoster writes the header, every employee in order and the grand total,
// and returns that total. An empty roster produces only EmptyRosterMessage.
func (r *Reporter) RenderRoster(employees []payroll.Employee) (float64, error) {
	if len(employees) == 0 {
		_, err := fmt.Fprintln(r.out, EmptyRosterMessage)
		return 0, err
	}

	rule := strings.Repeat("=", rosterWidth)
	if _, err := fmt.Fprintf(r.out, "\n%s\n                  PAYROLL SUMMARY\n%s\n", rule, rule); err != nil {
		return 0, err
	}

	total := 0.0
	for _, e := range employees {
		if err := r.RenderIndividual(e); err != nil {
			return total, err
		}
		total += payroll.TotalAnnualCompensation(e)
	}

	_, err := fmt.Fprintf(r.out, "\n%s\nTOTAL ANNUAL PAYROLL: %s\n%s\n", rule, money.Format(total), rule)
	return total, err
}
