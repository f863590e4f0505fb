package payroll

type Kind string

const (
	KindHourly       Kind = "hourly"
	KindSalaried     Kind = "salaried"
	KindCommissioned Kind = "commissioned"

	LabelHourly       = "Hourly Employee"
	LabelSalaried     = "Salaried Employee"
	LabelCommissioned = "Commissioned Employee"

	MonthsPerYear = 12
	BonusFactor   = 0.5
)

// Kinds lists the supported compensation models in menu order.
var Kinds = []Kind{KindSalaried, KindHourly, KindCommissioned}

func (k Kind) Valid() bool {
	switch k {
	case KindHourly, KindSalaried, KindCommissioned:
		return true
	}
	return false
}

// Label returns the display tag shared by every employee of this kind.
func (k Kind) Label() string {
	switch k {
	case KindHourly:
		return LabelHourly
	case KindSalaried:
		return LabelSalaried
	case KindCommissioned:
		return LabelCommissioned
	}
	return ""
}
