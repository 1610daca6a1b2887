package cost

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationalCost is a one-off expense. InvoiceRef, when set, attributes the
// cost to the sales invoice it was incurred for; nil means a general cost.
type OperationalCost struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	InvoiceRef  *string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FixedCost is a recurring monthly expense independent of sales volume.
type FixedCost struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter narrows operational-cost lists to a date range. Zero bounds mean
// unbounded.
type Filter struct {
	DateFrom time.Time
	DateTo   time.Time
}
