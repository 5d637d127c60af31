package domain

import "time"

// NotificationKind categorizes notifications for the dashboard bell.
type NotificationKind string

const (
	NotificationOrderAssigned        NotificationKind = "order_assigned"
	NotificationOrderStatusChanged   NotificationKind = "order_status_changed"
	NotificationTicketOpened         NotificationKind = "ticket_opened"
	NotificationQuoteDecided         NotificationKind = "quote_decided"
	NotificationAppointmentConverted NotificationKind = "appointment_converted"
	NotificationOvertimeReviewed     NotificationKind = "overtime_reviewed"
	NotificationMaintenanceDue       NotificationKind = "maintenance_due"
	NotificationAgendaChanged        NotificationKind = "agenda_changed"
)

// Notification is a per-user message delivered to the dashboard.
type Notification struct {
	ID        string
	UserID    string
	Kind      NotificationKind
	Title     string
	Body      string
	ReadAt    *time.Time
	CreatedAt time.Time
}
