package tasklog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
)

// TaskLog records completed work units for a bonus-earning task.
// ComputedBonus is fixed at creation time (bonus_per_unit × units) and is not
// recomputed when the task's rate changes or on approval transitions.
type TaskLog struct {
	ID            string
	Date          time.Time
	Period        string
	EmployeeCode  string
	TaskCode      string
	Units         int
	ComputedBonus decimal.Decimal
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Filter struct {
	Period       string
	Status       *Status
	EmployeeCode string
}
