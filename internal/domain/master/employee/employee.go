package employee

import (
	"context"
	"errors"
	"time"

	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
	BaseSalary   decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, employeeCode string) (Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
}

type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code"`
	Name         string          `json:"name"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Active       *bool           `json:"active,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	} else if !validator.IsValidRecordCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must be uppercase letters, digits or dashes"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
	Active     *bool            `json:"active,omitempty"`
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	Name         string          `json:"name"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Active       bool            `json:"active"`
}
