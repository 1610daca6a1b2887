package cost

import (
	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateOperationalCostRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	InvoiceRef  *string         `json:"invoice_ref,omitempty"`
	Category    string          `json:"category"`
}

func (r *CreateOperationalCostRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOperationalCostRequest struct {
	ID          string           `json:"-"`
	Date        *string          `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	InvoiceRef  *string          `json:"invoice_ref,omitempty"`
	Category    *string          `json:"category,omitempty"`
}

type OperationalCostResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	InvoiceRef  *string         `json:"invoice_ref,omitempty"`
	Category    string          `json:"category"`
}

type CreateFixedCostRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Active *bool           `json:"active,omitempty"`
}

func (r *CreateFixedCostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateFixedCostRequest struct {
	ID     string           `json:"-"`
	Name   *string          `json:"name,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Active *bool            `json:"active,omitempty"`
}

type FixedCostResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Active bool            `json:"active"`
}
