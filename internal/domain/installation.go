package domain

import "time"

// InstallationStatus enumerates installation project states.
type InstallationStatus string

const (
	InstallationStatusScheduled  InstallationStatus = "scheduled"
	InstallationStatusInProgress InstallationStatus = "in_progress"
	InstallationStatusCompleted  InstallationStatus = "completed"
	InstallationStatusCancelled  InstallationStatus = "cancelled"
)

// Valid reports whether the status is a known value.
func (s InstallationStatus) Valid() bool {
	switch s {
	case InstallationStatusScheduled, InstallationStatusInProgress, InstallationStatusCompleted, InstallationStatusCancelled:
		return true
	}
	return false
}

// Installation is a one-off install project at a client site.
type Installation struct {
	ID           string
	ClientID     string
	TechnicianID *string
	Title        string
	Description  string
	StartDate    time.Time
	Status       InstallationStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
