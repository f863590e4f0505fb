package payroll

// AnnualCompensation is twelve months of pay.
func AnnualCompensation(e Employee) float64 {
	return e.MonthlyCompensation() * MonthsPerYear
}

// Bonus is the half-month year-end payment paid on top of the annual salary.
func Bonus(e Employee) float64 {
	return e.MonthlyCompensation() * BonusFactor
}

func TotalAnnualCompensation(e Employee) float64 {
	return AnnualCompensation(e) + Bonus(e)
}

func Compute(e Employee) Breakdown {
	return Breakdown{
		Name:     e.Name(),
		Kind:     e.Kind(),
		Category: e.CategoryLabel(),
		Monthly:  e.MonthlyCompensation(),
		Annual:   AnnualCompensation(e),
		Bonus:    Bonus(e),
		Total:    TotalAnnualCompensation(e),
	}
}
