package user

import "time"

type Role string

const (
	// RoleAdmin is the day-to-day data-entry role.
	RoleAdmin Role = "admin"
	// RoleOwner sees everything, including payroll and profitability.
	RoleOwner Role = "owner"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
