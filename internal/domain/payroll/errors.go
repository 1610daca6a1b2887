package payroll

import "errors"

var (
	ErrRecordNotFound   = errors.New("payroll record not found")
	ErrAlreadyFinalized = errors.New("payroll record already finalized")
)
