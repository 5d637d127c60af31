package domain

import "time"

// OrderStatus enumerates service order lifecycle states.
type OrderStatus string

const (
	OrderStatusOpen       OrderStatus = "open"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is a known value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ServiceOrder is the aggregate for dispatched field work.
type ServiceOrder struct {
	ID            string
	Number        string // human-facing order key, e.g. OS-20250131-AB12
	ClientID      string
	EquipmentID   *string
	TechnicianID  *string
	Title         string
	Description   string
	Status        OrderStatus
	Priority      Priority
	ScheduledDate *time.Time
	CompletedAt   *time.Time
	TotalCents    int64 // labor + materials, gated by can_view_financials
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
