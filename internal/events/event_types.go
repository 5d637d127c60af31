package events

import (
	"time"

	"github.com/eletroclima/fieldops-service/internal/agenda"
	"github.com/eletroclima/fieldops-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAgendaEntryCreated  EventType = "agenda_entry_created"
	EventAgendaEntryUpdated  EventType = "agenda_entry_updated"
	EventAgendaEntryDeleted  EventType = "agenda_entry_deleted"
	EventOrderStatusChanged  EventType = "order_status_changed"
	EventAppointmentDecided  EventType = "appointment_decided"
	EventMaintenanceDue      EventType = "maintenance_due"
	EventOvertimeSubmitted   EventType = "overtime_submitted"
	EventOvertimeReviewed    EventType = "overtime_reviewed"
	EventTicketStatusChanged EventType = "ticket_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AgendaEntryPayload describes a create/update/delete of any agenda-visible
// record. EntityType matches the unified agenda event type names.
type AgendaEntryPayload struct {
	EntityType agenda.EventType `json:"entity_type"`
	EntityID   string           `json:"entity_id"`
	ClientID   string           `json:"client_id,omitempty"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OrderID   string             `json:"order_id"`
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}

// AppointmentDecidedPayload payload.
type AppointmentDecidedPayload struct {
	AppointmentID string                   `json:"appointment_id"`
	Status        domain.AppointmentStatus `json:"status"`
	ContractID    *string                  `json:"contract_id,omitempty"`
}

// MaintenanceDuePayload payload.
type MaintenanceDuePayload struct {
	ContractID string `json:"contract_id"`
	ClientID   string `json:"client_id"`
	DueDate    string `json:"due_date"`
}

// OvertimeReviewedPayload payload.
type OvertimeReviewedPayload struct {
	EntryID      string                `json:"entry_id"`
	TechnicianID string                `json:"technician_id"`
	Status       domain.OvertimeStatus `json:"status"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  string              `json:"ticket_id"`
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}
