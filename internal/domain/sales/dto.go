package sales

import (
	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Date          string          `json:"date"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientCode    string          `json:"client_code"`
	ProductCode   string          `json:"product_code"`
	Qty           int             `json:"qty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Discount      decimal.Decimal `json:"discount"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.InvoiceNumber) {
		errs = append(errs, validator.ValidationError{Field: "invoice_number", Message: "is required"})
	}
	if validator.IsEmpty(r.ClientCode) {
		errs = append(errs, validator.ValidationError{Field: "client_code", Message: "is required"})
	}
	if validator.IsEmpty(r.ProductCode) {
		errs = append(errs, validator.ValidationError{Field: "product_code", Message: "is required"})
	}
	if r.Qty <= 0 {
		errs = append(errs, validator.ValidationError{Field: "qty", Message: "must be positive"})
	}
	if r.UnitPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "unit_price", Message: "must be non-negative"})
	}
	if r.Discount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "discount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTransactionRequest struct {
	ID        string           `json:"-"`
	Date      *string          `json:"date,omitempty"`
	Qty       *int             `json:"qty,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`

	// TotalBilled is recomputed by the service whenever qty, unit price or
	// discount change; it is never taken from the request body.
	TotalBilled *decimal.Decimal `json:"-"`
}

type TransactionResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientCode    string          `json:"client_code"`
	ProductCode   string          `json:"product_code"`
	ProductName   string          `json:"product_name"`
	ItemType      string          `json:"item_type"`
	Qty           int             `json:"qty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Discount      decimal.Decimal `json:"discount"`
	TotalBilled   decimal.Decimal `json:"total_billed"`
}
