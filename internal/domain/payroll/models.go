package payroll

// Employee is the compensation contract every variant satisfies. Only the
// variants in this package implement it.
type Employee interface {
	MonthlyCompensation() float64
	Name() string
	CategoryLabel() string
	Kind() Kind
	employee()
}

type Hourly struct {
	FullName   string
	HourlyRate float64
	Hours      float64
}

type Salaried struct {
	FullName string
	Salary   float64
}

type Commissioned struct {
	FullName       string
	BaseSalary     float64
	Sales          float64
	CommissionRate float64
}

func NewHourly(name string, rate, hours float64) Hourly {
	return Hourly{FullName: name, HourlyRate: rate, Hours: hours}
}

func NewSalaried(name string, salary float64) Salaried {
	return Salaried{FullName: name, Salary: salary}
}

func NewCommissioned(name string, base, sales, commissionRate float64) Commissioned {
	return Commissioned{FullName: name, BaseSalary: base, Sales: sales, CommissionRate: commissionRate}
}

func (h Hourly) MonthlyCompensation() float64 { return h.HourlyRate * h.Hours }
func (h Hourly) Name() string                 { return h.FullName }
func (h Hourly) CategoryLabel() string        { return LabelHourly }
func (h Hourly) Kind() Kind                   { return KindHourly }
func (Hourly) employee()                      {}

func (s Salaried) MonthlyCompensation() float64 { return s.Salary }
func (s Salaried) Name() string                 { return s.FullName }
func (s Salaried) CategoryLabel() string        { return LabelSalaried }
func (s Salaried) Kind() Kind                   { return KindSalaried }
func (Salaried) employee()                      {}

// MonthlyCompensation adds the commission, a percentage of sales, to the base salary.
func (c Commissioned) MonthlyCompensation() float64 {
	return c.BaseSalary + (c.Sales * c.CommissionRate / 100)
}
func (c Commissioned) Name() string          { return c.FullName }
func (c Commissioned) CategoryLabel() string { return LabelCommissioned }
func (c Commissioned) Kind() Kind            { return KindCommissioned }
func (Commissioned) employee()               {}

// Breakdown holds the computed figures of one employee.
type Breakdown struct {
	Name     string  `json:"name"`
	Kind     Kind    `json:"kind"`
	Category string  `json:"category"`
	Monthly  float64 `json:"monthly"`
	Annual   float64 `json:"annual"`
	Bonus    float64 `json:"bonus"`
	Total    float64 `json:"total"`
}
