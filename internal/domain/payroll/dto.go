package payroll

import (
	"github.com/kreastudio/finance-backend-go/internal/pkg/period"
	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayrollRequest struct {
	Period string `json:"period"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !period.IsValid(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be a period label like Jan-2025"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID           string          `json:"id"`
	Period       string          `json:"period"`
	EmployeeCode string          `json:"employee_code"`
	EmployeeName string          `json:"employee_name,omitempty"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	TotalBonus   decimal.Decimal `json:"total_bonus"`
	TotalSalary  decimal.Decimal `json:"total_salary"`
	Status       string          `json:"status"`
}
