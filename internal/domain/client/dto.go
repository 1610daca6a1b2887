package client

import (
	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
)

type CreateClientRequest struct {
	ClientCode string  `json:"client_code"`
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientCode) {
		errs = append(errs, validator.ValidationError{Field: "client_code", Message: "is required"})
	} else if !validator.IsValidRecordCode(r.ClientCode) {
		errs = append(errs, validator.ValidationError{Field: "client_code", Message: "must be uppercase letters, digits or dashes"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateClientRequest struct {
	ID      string  `json:"-"`
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type ClientResponse struct {
	ID         string  `json:"id"`
	ClientCode string  `json:"client_code"`
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
}
