package dto

import (
	"time"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// AppointmentRequestBody payload for create/update.
type AppointmentRequestBody struct {
	ClientID      string    `json:"client_id"`
	TechnicianID  *string   `json:"technician_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	RequestedDate time.Time `json:"requested_date"`
	Priority      string    `json:"priority"`
}

// ConvertAppointmentRequest promotes a confirmed request.
type ConvertAppointmentRequest struct {
	Frequency string `json:"frequency"`
}

// AppointmentResponse response.
type AppointmentResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	TechnicianID  *string         `json:"technician_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	RequestedDate time.Time       `json:"requested_date"`
	Status        string          `json:"status"`
	Priority      domain.Priority `json:"priority"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewAppointmentResponse maps a request.
func NewAppointmentResponse(appointment *domain.AppointmentRequest) AppointmentResponse {
	return AppointmentResponse{
		ID:            appointment.ID,
		ClientID:      appointment.ClientID,
		TechnicianID:  appointment.TechnicianID,
		Title:         appointment.Title,
		Description:   appointment.Description,
		RequestedDate: appointment.RequestedDate,
		Status:        string(appointment.Status),
		Priority:      appointment.Priority,
		CreatedAt:     appointment.CreatedAt,
		UpdatedAt:     appointment.UpdatedAt,
	}
}

// MaintenanceRequest payload.
type MaintenanceRequest struct {
	ClientID     string    `json:"client_id"`
	EquipmentID  *string   `json:"equipment_id"`
	TechnicianID *string   `json:"technician_id"`
	Title        string    `json:"title"`
	Frequency    string    `json:"frequency"`
	StartDate    time.Time `json:"start_date"`
	MonthlyCents int64     `json:"monthly_cents"`
}

// MaintenanceResponse response.
type MaintenanceResponse struct {
	ID                  string    `json:"id"`
	ClientID            string    `json:"client_id"`
	EquipmentID         *string   `json:"equipment_id"`
	TechnicianID        *string   `json:"technician_id"`
	Title               string    `json:"title"`
	Frequency           string    `json:"frequency"`
	StartDate           time.Time `json:"start_date"`
	NextMaintenanceDate time.Time `json:"next_maintenance_date"`
	Status              string    `json:"status"`
	MonthlyCents        *int64    `json:"monthly_cents,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewMaintenanceResponse maps a contract.
func NewMaintenanceResponse(contract *domain.MaintenanceContract, showFinancials bool) MaintenanceResponse {
	resp := MaintenanceResponse{
		ID:                  contract.ID,
		ClientID:            contract.ClientID,
		EquipmentID:         contract.EquipmentID,
		TechnicianID:        contract.TechnicianID,
		Title:               contract.Title,
		Frequency:           string(contract.Frequency),
		StartDate:           contract.StartDate,
		NextMaintenanceDate: contract.NextMaintenanceDate,
		Status:              string(contract.Status),
		CreatedAt:           contract.CreatedAt,
		UpdatedAt:           contract.UpdatedAt,
	}
	if showFinancials {
		monthly := contract.MonthlyCents
		resp.MonthlyCents = &monthly
	}
	return resp
}

// InstallationRequest payload.
type InstallationRequest struct {
	ClientID     string    `json:"client_id"`
	TechnicianID *string   `json:"technician_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date"`
}

// InstallationResponse response.
type InstallationResponse struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	TechnicianID *string   `json:"technician_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewInstallationResponse maps a project.
func NewInstallationResponse(installation *domain.Installation) InstallationResponse {
	return InstallationResponse{
		ID:           installation.ID,
		ClientID:     installation.ClientID,
		TechnicianID: installation.TechnicianID,
		Title:        installation.Title,
		Description:  installation.Description,
		StartDate:    installation.StartDate,
		Status:       string(installation.Status),
		CreatedAt:    installation.CreatedAt,
		UpdatedAt:    installation.UpdatedAt,
	}
}

// TicketRequestBody payload.
type TicketRequestBody struct {
	ClientID     string  `json:"client_id"`
	EquipmentID  *string `json:"equipment_id"`
	TechnicianID *string `json:"technician_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Priority     string  `json:"priority"`
}

// TicketResponse response.
type TicketResponse struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"client_id"`
	EquipmentID  *string         `json:"equipment_id"`
	TechnicianID *string         `json:"technician_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Status       string          `json:"status"`
	Priority     domain.Priority `json:"priority"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewTicketResponse maps a ticket.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:           ticket.ID,
		ClientID:     ticket.ClientID,
		EquipmentID:  ticket.EquipmentID,
		TechnicianID: ticket.TechnicianID,
		Title:        ticket.Title,
		Description:  ticket.Description,
		Status:       string(ticket.Status),
		Priority:     ticket.Priority,
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
	}
}

// OvertimeRequestBody payload.
type OvertimeRequestBody struct {
	WorkDate time.Time `json:"work_date"`
	Hours    float64   `json:"hours"`
	Reason   string    `json:"reason"`
}

// OvertimeResponse response.
type OvertimeResponse struct {
	ID           string    `json:"id"`
	TechnicianID string    `json:"technician_id"`
	WorkDate     time.Time `json:"work_date"`
	Hours        float64   `json:"hours"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	ReviewedBy   *string   `json:"reviewed_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewOvertimeResponse maps an entry.
func NewOvertimeResponse(entry *domain.OvertimeEntry) OvertimeResponse {
	return OvertimeResponse{
		ID:           entry.ID,
		TechnicianID: entry.TechnicianID,
		WorkDate:     entry.WorkDate,
		Hours:        entry.Hours,
		Reason:       entry.Reason,
		Status:       string(entry.Status),
		ReviewedBy:   entry.ReviewedBy,
		CreatedAt:    entry.CreatedAt,
	}
}

// NotificationResponse response.
type NotificationResponse struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewNotificationResponse maps a notification.
func NewNotificationResponse(notification *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		Kind:      string(notification.Kind),
		Title:     notification.Title,
		Body:      notification.Body,
		ReadAt:    notification.ReadAt,
		CreatedAt: notification.CreatedAt,
	}
}
