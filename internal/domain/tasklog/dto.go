package tasklog

import (
	"github.com/kreastudio/finance-backend-go/internal/pkg/period"
	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateTaskLogRequest struct {
	Date         string `json:"date"`
	Period       string `json:"period"`
	EmployeeCode string `json:"employee_code"`
	TaskCode     string `json:"task_code"`
	Units        int    `json:"units"`
}

func (r *CreateTaskLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if !period.IsValid(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be a period label like Jan-2025"})
	}
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if validator.IsEmpty(r.TaskCode) {
		errs = append(errs, validator.ValidationError{Field: "task_code", Message: "is required"})
	}
	if r.Units <= 0 {
		errs = append(errs, validator.ValidationError{Field: "units", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskLogResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Period        string          `json:"period"`
	EmployeeCode  string          `json:"employee_code"`
	TaskCode      string          `json:"task_code"`
	Units         int             `json:"units"`
	ComputedBonus decimal.Decimal `json:"computed_bonus"`
	Status        string          `json:"status"`
}
