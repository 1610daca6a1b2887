package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft Status = "Draft"
	StatusFinal Status = "Final"
)

// Record is one employee's pay for one period. At most one record exists per
// (period, employee) pair; generation replaces the whole period.
type Record struct {
	ID           string
	Period       string
	EmployeeCode string
	BaseSalary   decimal.Decimal
	TotalBonus   decimal.Decimal
	TotalSalary  decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Filter struct {
	Period string
	Status *Status
}
