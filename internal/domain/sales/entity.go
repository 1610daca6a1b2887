package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one invoice line item. Several rows can share an invoice
// number; revenue per invoice is derived by summing TotalBilled.
type Transaction struct {
	ID            string
	Date          time.Time
	InvoiceNumber string
	ClientCode    string
	ProductCode   string
	ProductName   string
	ItemType      string
	Qty           int
	UnitPrice     decimal.Decimal
	Discount      decimal.Decimal
	TotalBilled   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter narrows List to a date range. Zero bounds mean unbounded.
type Filter struct {
	DateFrom time.Time
	DateTo   time.Time
}
