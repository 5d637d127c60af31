package domain

import "time"

// QuoteStatus enumerates quote lifecycle states.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// Valid reports whether the status is a known value.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// Quote is a priced proposal for a client. Totals are flag-gated on read.
type Quote struct {
	ID           string
	ClientID     string
	TechnicianID *string
	Title        string
	Description  string
	Status       QuoteStatus
	TotalCents   int64
	ValidUntil   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
