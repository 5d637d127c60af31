// Package agenda merges the six schedulable record types into one calendar
// view. Rows come from the read-only unified_agenda projection; writes always
// go to the underlying per-type tables.
package agenda

import (
	"fmt"
	"time"
)

// DateLayout is the zero-padded ISO form every resolved date is normalized
// to. Lexicographic order on this layout matches chronological order.
const DateLayout = "2006-01-02"

// EventType is the closed set of schedulable record types. Adding a type
// requires extending every switch below, which the compiler and the
// exhaustiveness test both enforce.
type EventType string

const (
	TypeAppointment  EventType = "appointment"
	TypeOrder        EventType = "order"
	TypeMaintenance  EventType = "maintenance"
	TypeInstallation EventType = "installation"
	TypeTicket       EventType = "ticket"
	TypeQuote        EventType = "quote"
)

// TypeOrderList fixes the per-type group order used when concatenating
// same-day events.
var TypeOrderList = []EventType{
	TypeAppointment,
	TypeOrder,
	TypeMaintenance,
	TypeInstallation,
	TypeTicket,
	TypeQuote,
}

// ParseEventType validates a wire value against the closed set.
func ParseEventType(raw string) (EventType, error) {
	t := EventType(raw)
	switch t {
	case TypeAppointment, TypeOrder, TypeMaintenance, TypeInstallation, TypeTicket, TypeQuote:
		return t, nil
	}
	return "", fmt.Errorf("unknown agenda event type %q", raw)
}

// TableFor maps an event type to the table that owns its rows. Deletes are
// issued against this table, never against the view.
func TableFor(t EventType) (string, error) {
	switch t {
	case TypeAppointment:
		return "appointment_requests", nil
	case TypeOrder:
		return "service_orders", nil
	case TypeMaintenance:
		return "maintenance_contracts", nil
	case TypeInstallation:
		return "installations", nil
	case TypeTicket:
		return "tickets", nil
	case TypeQuote:
		return "quotes", nil
	}
	return "", fmt.Errorf("unknown agenda event type %q", t)
}

// Row is the unified_agenda view projection. StartTime is the per-type
// schedule column and may be null (e.g. a quote without valid_until).
type Row struct {
	EventID        string
	EventType      EventType
	StartTime      *time.Time
	ClientID       string
	ClientName     string
	TechnicianID   *string
	TechnicianName *string
	Status         string
	Priority       string
	Title          string
	Description    string
	CreatedAt      time.Time
}

// ResolvedDate is the single calendar date a row occurs on. The per-type
// fallback chain lives here and nowhere else: the schedule column when set,
// otherwise the record's creation date.
func (r Row) ResolvedDate() string {
	switch r.EventType {
	case TypeAppointment, TypeOrder, TypeMaintenance, TypeInstallation:
		if r.StartTime != nil {
			return r.StartTime.Format(DateLayout)
		}
	case TypeTicket:
		// Tickets have no schedule column; they sit on their open date.
	case TypeQuote:
		// valid_until when present, else creation date.
		if r.StartTime != nil {
			return r.StartTime.Format(DateLayout)
		}
	}
	return r.CreatedAt.Format(DateLayout)
}

// CalendarEvent is the normalized shape the rendering layer consumes.
type CalendarEvent struct {
	ID             string    `json:"id"`
	Type           EventType `json:"type"`
	Title          string    `json:"title"`
	Date           string    `json:"date"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority,omitempty"`
	ClientID       string    `json:"client_id"`
	ClientName     string    `json:"client_name"`
	TechnicianID   *string   `json:"technician_id,omitempty"`
	TechnicianName *string   `json:"technician_name,omitempty"`
	Description    string    `json:"description,omitempty"`
}

func toEvent(r Row) CalendarEvent {
	return CalendarEvent{
		ID:             r.EventID,
		Type:           r.EventType,
		Title:          r.Title,
		Date:           r.ResolvedDate(),
		Status:         r.Status,
		Priority:       r.Priority,
		ClientID:       r.ClientID,
		ClientName:     r.ClientName,
		TechnicianID:   r.TechnicianID,
		TechnicianName: r.TechnicianName,
		Description:    r.Description,
	}
}
