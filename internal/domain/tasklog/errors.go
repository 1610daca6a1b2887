package tasklog

import "errors"

var (
	ErrTaskLogNotFound  = errors.New("task log not found")
	ErrNotPending       = errors.New("task log is not pending")
	ErrNotApproved      = errors.New("task log is not approved")
	ErrInactiveTask     = errors.New("task is not active")
	ErrInactiveEmployee = errors.New("employee is not active")
	ErrUnknownTaskCode  = errors.New("unknown task code")
	ErrUnknownEmployee  = errors.New("unknown employee code")
)
