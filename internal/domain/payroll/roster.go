package payroll

// Roster is the ordered set of employees reported on in one run. Employees are
// only ever appended.
type Roster struct {
	employees []Employee
}

func NewRoster(employees ...Employee) *Roster {
	r := &Roster{}
	for _, e := range employees {
		r.Add(e)
	}
	return r
}

func (r *Roster) Add(e Employee) {
	if e == nil {
		return
	}
	r.employees = append(r.employees, e)
}

func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.employees)
}

// Employees returns a copy of the roster in insertion order.
func (r *Roster) Employees() []Employee {
	if r == nil || len(r.employees) == 0 {
		return nil
	}
	out := make([]Employee, len(r.employees))
	copy(out, r.employees)
	return out
}
