package domain

import "time"

// AppointmentStatus enumerates appointment request states.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusConverted AppointmentStatus = "converted"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether the status is a known value.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusConverted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// AppointmentRequest is a client-originated visit request awaiting triage.
// Converting one into a maintenance contract happens through a single stored
// function so the multi-table effect stays atomic on the backend.
type AppointmentRequest struct {
	ID            string
	ClientID      string
	TechnicianID  *string
	Title         string
	Description   string
	RequestedDate time.Time
	Status        AppointmentStatus
	Priority      Priority
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
