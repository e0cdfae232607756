package employee

// Employee is the labor profile read from the employee directory. The core
// never creates or mutates employees.
type Employee struct {
	ID                   string
	FullName             string
	LaborAgreementCode   string
	MaxHoursPerMonth     float64
	PayrollCycleStartDay int
	PayrollCycleEndDay   int
}
