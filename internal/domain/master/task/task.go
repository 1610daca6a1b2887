package task

import (
	"context"
	"errors"
	"time"

	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Task is a bonus-earning task type (editing, album layout, shooting assist).
// BonusPerUnit is read when a task log is created; later rate changes do not
// touch already-computed bonuses.
type Task struct {
	ID           string
	TaskCode     string
	Name         string
	BonusPerUnit decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrTaskCodeExists = errors.New("task code already exists")
)

type TaskRepository interface {
	Create(ctx context.Context, newTask Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	GetByCode(ctx context.Context, taskCode string) (Task, error)
	List(ctx context.Context, activeOnly bool) ([]Task, error)
	Update(ctx context.Context, req UpdateTaskRequest) error
	Delete(ctx context.Context, id string) error
}

type CreateTaskRequest struct {
	TaskCode     string          `json:"task_code"`
	Name         string          `json:"name"`
	BonusPerUnit decimal.Decimal `json:"bonus_per_unit"`
	Active       *bool           `json:"active,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaskCode) {
		errs = append(errs, validator.ValidationError{Field: "task_code", Message: "is required"})
	} else if !validator.IsValidRecordCode(r.TaskCode) {
		errs = append(errs, validator.ValidationError{Field: "task_code", Message: "must be uppercase letters, digits or dashes"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.BonusPerUnit.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus_per_unit", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	ID           string           `json:"-"`
	Name         *string          `json:"name,omitempty"`
	BonusPerUnit *decimal.Decimal `json:"bonus_per_unit,omitempty"`
	Active       *bool            `json:"active,omitempty"`
}

type TaskResponse struct {
	ID           string          `json:"id"`
	TaskCode     string          `json:"task_code"`
	Name         string          `json:"name"`
	BonusPerUnit decimal.Decimal `json:"bonus_per_unit"`
	Active       bool            `json:"active"`
}
