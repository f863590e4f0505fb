package payroll

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Abs(b))
}

func TestMonthlyCompensation(t *testing.T) {
	cases := []struct {
		name     string
		employee Employee
		want     float64
	}{
		{"hourly", NewHourly("Ana", 20, 160), 3200},
		{"hourly zero hours", NewHourly("Ana", 20, 0), 0},
		{"salaried", NewSalaried("Luis", 5000), 5000},
		{"commissioned", NewCommissioned("Eva", 1000, 20000, 5), 2000},
		{"commissioned fractional rate", NewCommissioned("Eva", 0, 1000, 2.5), 25},
	}
	for _, tc := range cases {
		if got := tc.employee.MonthlyCompensation(); got != tc.want {
			t.Fatalf("%s: expected monthly %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestDerivedCompensationIsUniform(t *testing.T) {
	employees := []Employee{
		NewHourly("Ana", 17.35, 143.5),
		NewSalaried("Luis", 4321.09),
		NewCommissioned("Eva", 1500.5, 98765.43, 3.75),
	}
	for _, e := range employees {
		monthly := e.MonthlyCompensation()
		if !near(AnnualCompensation(e), 12*monthly) {
			t.Fatalf("%s: expected annual %v, got %v", e.Name(), 12*monthly, AnnualCompensation(e))
		}
		if !near(Bonus(e), 0.5*monthly) {
			t.Fatalf("%s: expected bonus %v, got %v", e.Name(), 0.5*monthly, Bonus(e))
		}
		total := TotalAnnualCompensation(e)
		if !near(total, AnnualCompensation(e)+Bonus(e)) || !near(total, 12.5*monthly) {
			t.Fatalf("%s: expected total %v, got %v", e.Name(), 12.5*monthly, total)
		}
	}
}

func TestCompute(t *testing.T) {
	b := Compute(NewHourly("Ana", 20, 160))
	if b.Name != "Ana" || b.Kind != KindHourly || b.Category != LabelHourly {
		t.Fatalf("unexpected identity: %+v", b)
	}
	if b.Monthly != 3200 || b.Annual != 38400 || b.Bonus != 1600 || b.Total != 40000 {
		t.Fatalf("unexpected figures: %+v", b)
	}

	s := Compute(NewSalaried("Luis", 5000))
	if s.Monthly != 5000 || s.Total != 90000 {
		t.Fatalf("unexpected salaried figures: %+v", s)
	}
}

func TestCategoryLabels(t *testing.T) {
	employees := map[Employee]string{
		NewHourly("a", 1, 1):          "Hourly Employee",
		NewSalaried("b", 1):           "Salaried Employee",
		NewCommissioned("c", 1, 1, 1): "Commissioned Employee",
	}
	for e, want := range employees {
		if e.CategoryLabel() != want {
			t.Fatalf("expected label %q, got %q", want, e.CategoryLabel())
		}
		if e.Kind().Label() != want {
			t.Fatalf("expected kind label %q, got %q", want, e.Kind().Label())
		}
	}
}
