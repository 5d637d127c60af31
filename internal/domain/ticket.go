package domain

import "time"

// TicketStatus enumerates support ticket states.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether the status is a known value.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// Ticket is a client-reported issue tracked by the support desk.
type Ticket struct {
	ID           string
	ClientID     string
	EquipmentID  *string
	TechnicianID *string
	Title        string
	Description  string
	Status       TicketStatus
	Priority     Priority
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
