package payroll

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"paycalc/internal/platform/money"
)

const summaryWidth = 50

// WriteSummary renders the per-employee salary summary. The only error it
// returns is the writer's.
func WriteSummary(w io.Writer, e Employee) error {
	b := Compute(e)
	heavy := strings.Repeat("=", summaryWidth)
	light := strings.Repeat("-", summaryWidth)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n%s\n", heavy)
	fmt.Fprintf(bw, "        SALARY SUMMARY - %s\n", strings.ToUpper(b.Category))
	fmt.Fprintln(bw, heavy)
	fmt.Fprintf(bw, "Name:             %s\n", b.Name)
	fmt.Fprintf(bw, "Type:             %s\n", b.Category)
	fmt.Fprintf(bw, "Monthly salary:   %s\n", money.Format(b.Monthly))
	fmt.Fprintf(bw, "Annual salary:    %s\n", money.Format(b.Annual))
	fmt.Fprintf(bw, "Bonus:            %s\n", money.Format(b.Bonus))
	fmt.Fprintln(bw, light)
	fmt.Fprintf(bw, "TOTAL ANNUAL:     %s\n", money.Format(b.Total))
	fmt.Fprintln(bw, heavy)
	return bw.Flush()
}
