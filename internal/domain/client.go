package domain

import "time"

// Client represents a customer of the field-service company.
type Client struct {
	ID         string
	Name       string
	Document   string // CNPJ, digits only
	Email      string
	Phone      string
	Street     string
	City       string
	State      string
	PostalCode string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
