package domain

import "time"

// OvertimeStatus enumerates approval states for overtime entries.
type OvertimeStatus string

const (
	OvertimeStatusPending  OvertimeStatus = "pending"
	OvertimeStatusApproved OvertimeStatus = "approved"
	OvertimeStatusRejected OvertimeStatus = "rejected"
)

// Valid reports whether the status is a known value.
func (s OvertimeStatus) Valid() bool {
	switch s {
	case OvertimeStatusPending, OvertimeStatusApproved, OvertimeStatusRejected:
		return true
	}
	return false
}

// OvertimeEntry records extra hours worked by a technician.
type OvertimeEntry struct {
	ID           string
	TechnicianID string
	WorkDate     time.Time
	Hours        float64
	Reason       string
	Status       OvertimeStatus
	ReviewedBy   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
