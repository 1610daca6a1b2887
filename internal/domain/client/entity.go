package client

import "time"

// Client is a studio customer record.
type Client struct {
	ID         string
	ClientCode string
	Name       string
	Email      *string
	Phone      *string
	Address    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
