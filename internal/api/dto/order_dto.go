package dto

import (
	"time"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// OrderRequest payload for create/update.
type OrderRequest struct {
	ClientID      string     `json:"client_id"`
	EquipmentID   *string    `json:"equipment_id"`
	TechnicianID  *string    `json:"technician_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	TotalCents    int64      `json:"total_cents"`
}

// ChangeStatusRequest is shared by the lifecycle endpoints.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse response. TotalCents is omitted for viewers without the
// financial flag.
type OrderResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	ClientID      string          `json:"client_id"`
	EquipmentID   *string         `json:"equipment_id"`
	TechnicianID  *string         `json:"technician_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	Priority      domain.Priority `json:"priority"`
	ScheduledDate *time.Time      `json:"scheduled_date"`
	CompletedAt   *time.Time      `json:"completed_at"`
	TotalCents    *int64          `json:"total_cents,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewOrderResponse maps an order, gating the total on showFinancials.
func NewOrderResponse(order *domain.ServiceOrder, showFinancials bool) OrderResponse {
	resp := OrderResponse{
		ID:            order.ID,
		Number:        order.Number,
		ClientID:      order.ClientID,
		EquipmentID:   order.EquipmentID,
		TechnicianID:  order.TechnicianID,
		Title:         order.Title,
		Description:   order.Description,
		Status:        string(order.Status),
		Priority:      order.Priority,
		ScheduledDate: order.ScheduledDate,
		CompletedAt:   order.CompletedAt,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	if showFinancials {
		total := order.TotalCents
		resp.TotalCents = &total
	}
	return resp
}

// QuoteRequest payload.
type QuoteRequest struct {
	ClientID     string     `json:"client_id"`
	TechnicianID *string    `json:"technician_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	TotalCents   int64      `json:"total_cents"`
	ValidUntil   *time.Time `json:"valid_until"`
}

// QuoteResponse response, financially gated like orders.
type QuoteResponse struct {
	ID           string     `json:"id"`
	ClientID     string     `json:"client_id"`
	TechnicianID *string    `json:"technician_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	TotalCents   *int64     `json:"total_cents,omitempty"`
	ValidUntil   *time.Time `json:"valid_until"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewQuoteResponse maps a quote.
func NewQuoteResponse(quote *domain.Quote, showFinancials bool) QuoteResponse {
	resp := QuoteResponse{
		ID:           quote.ID,
		ClientID:     quote.ClientID,
		TechnicianID: quote.TechnicianID,
		Title:        quote.Title,
		Description:  quote.Description,
		Status:       string(quote.Status),
		ValidUntil:   quote.ValidUntil,
		CreatedAt:    quote.CreatedAt,
		UpdatedAt:    quote.UpdatedAt,
	}
	if showFinancials {
		total := quote.TotalCents
		resp.TotalCents = &total
	}
	return resp
}
