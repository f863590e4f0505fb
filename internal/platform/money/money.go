// Package money renders amounts as dollar text with grouped thousands.
package money

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Format renders a finite non-negative amount as "$1,234,567.80". Cents are
// the exact binary value rounded half to even, as printf's %.2f does.
func Format(amount float64) string {
	fixed := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, cents, _ := strings.Cut(fixed, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return "$" + whole + "." + cents
	}
	return "$" + humanize.Comma(units) + "." + cents
}
