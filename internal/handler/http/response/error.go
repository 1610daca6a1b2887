package response

import (
	"errors"
	"net/http"

	"github.com/kreastudio/finance-backend-go/internal/domain/auth"
	"github.com/kreastudio/finance-backend-go/internal/domain/client"
	"github.com/kreastudio/finance-backend-go/internal/domain/cost"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/employee"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/product"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/task"
	"github.com/kreastudio/finance-backend-go/internal/domain/payroll"
	"github.com/kreastudio/finance-backend-go/internal/domain/sales"
	"github.com/kreastudio/finance-backend-go/internal/domain/tasklog"
	"github.com/kreastudio/finance-backend-go/internal/domain/user"
	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrOwnerAccessRequired):
		Forbidden(w, "Owner access required")

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientCodeExists):
		Conflict(w, "Client code already exists")

	// Master data errors
	case errors.Is(err, product.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, product.ErrProductCodeExists):
		Conflict(w, "Product code already exists")
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrTaskCodeExists):
		Conflict(w, "Task code already exists")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Sales domain errors
	case errors.Is(err, sales.ErrTransactionNotFound):
		NotFound(w, "Sales transaction not found")
	case errors.Is(err, sales.ErrUnknownClient):
		BadRequest(w, "Unknown client code", nil)
	case errors.Is(err, sales.ErrUnknownProduct):
		BadRequest(w, "Unknown product code", nil)

	// Task log domain errors
	case errors.Is(err, tasklog.ErrTaskLogNotFound):
		NotFound(w, "Task log not found")
	case errors.Is(err, tasklog.ErrNotPending):
		Conflict(w, "Task log is not pending")
	case errors.Is(err, tasklog.ErrNotApproved):
		Conflict(w, "Task log is not approved")
	case errors.Is(err, tasklog.ErrUnknownEmployee):
		BadRequest(w, "Unknown employee code", nil)
	case errors.Is(err, tasklog.ErrUnknownTaskCode):
		BadRequest(w, "Unknown task code", nil)
	case errors.Is(err, tasklog.ErrInactiveEmployee):
		BadRequest(w, "Employee is not active", nil)
	case errors.Is(err, tasklog.ErrInactiveTask):
		BadRequest(w, "Task is not active", nil)

	// Cost domain errors
	case errors.Is(err, cost.ErrOperationalCostNotFound):
		NotFound(w, "Operational cost not found")
	case errors.Is(err, cost.ErrFixedCostNotFound):
		NotFound(w, "Fixed cost not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrAlreadyFinalized):
		Conflict(w, "Payroll record already finalized")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
