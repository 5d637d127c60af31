package dto

import (
	"time"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// ClientRequest payload for create/update.
type ClientRequest struct {
	Name       string `json:"name"`
	Document   string `json:"document"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// ClientResponse response.
type ClientResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Document   string    `json:"document"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewClientResponse maps a client.
func NewClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ID:         client.ID,
		Name:       client.Name,
		Document:   client.Document,
		Email:      client.Email,
		Phone:      client.Phone,
		Street:     client.Street,
		City:       client.City,
		State:      client.State,
		PostalCode: client.PostalCode,
		IsActive:   client.IsActive,
		CreatedAt:  client.CreatedAt,
		UpdatedAt:  client.UpdatedAt,
	}
}

// EquipmentRequest payload.
type EquipmentRequest struct {
	ClientID     string     `json:"client_id"`
	Name         string     `json:"name"`
	Kind         string     `json:"kind"`
	SerialNumber string     `json:"serial_number"`
	Location     string     `json:"location"`
	InstalledAt  *time.Time `json:"installed_at"`
	Notes        string     `json:"notes"`
}

// EquipmentResponse response.
type EquipmentResponse struct {
	ID           string     `json:"id"`
	ClientID     string     `json:"client_id"`
	Name         string     `json:"name"`
	Kind         string     `json:"kind"`
	SerialNumber string     `json:"serial_number"`
	Location     string     `json:"location"`
	InstalledAt  *time.Time `json:"installed_at"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewEquipmentResponse maps a unit.
func NewEquipmentResponse(equipment *domain.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:           equipment.ID,
		ClientID:     equipment.ClientID,
		Name:         equipment.Name,
		Kind:         string(equipment.Kind),
		SerialNumber: equipment.SerialNumber,
		Location:     equipment.Location,
		InstalledAt:  equipment.InstalledAt,
		Notes:        equipment.Notes,
		CreatedAt:    equipment.CreatedAt,
		UpdatedAt:    equipment.UpdatedAt,
	}
}
