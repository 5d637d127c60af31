package domain

import "time"

// MaintenanceFrequency enumerates contract visit cadences.
type MaintenanceFrequency string

const (
	FrequencyMonthly    MaintenanceFrequency = "monthly"
	FrequencyQuarterly  MaintenanceFrequency = "quarterly"
	FrequencySemiannual MaintenanceFrequency = "semiannual"
	FrequencyAnnual     MaintenanceFrequency = "annual"
)

// Valid reports whether the frequency is a known value.
func (f MaintenanceFrequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual:
		return true
	}
	return false
}

// Months returns the cadence length in calendar months.
func (f MaintenanceFrequency) Months() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 3
	case FrequencySemiannual:
		return 6
	case FrequencyAnnual:
		return 12
	}
	return 0
}

// MaintenanceStatus enumerates contract states.
type MaintenanceStatus string

const (
	MaintenanceStatusActive MaintenanceStatus = "active"
	MaintenanceStatusPaused MaintenanceStatus = "paused"
	MaintenanceStatusEnded  MaintenanceStatus = "ended"
)

// Valid reports whether the status is a known value.
func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusActive, MaintenanceStatusPaused, MaintenanceStatusEnded:
		return true
	}
	return false
}

// MaintenanceContract schedules recurring preventive visits.
type MaintenanceContract struct {
	ID                  string
	ClientID            string
	EquipmentID         *string
	TechnicianID        *string
	Title               string
	Frequency           MaintenanceFrequency
	StartDate           time.Time
	NextMaintenanceDate time.Time
	Status              MaintenanceStatus
	MonthlyCents        int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
