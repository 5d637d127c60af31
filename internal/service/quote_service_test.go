package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

func TestQuoteCreateStartsAsDraft(t *testing.T) {
	svc := NewQuoteService(newStubQuoteRepo(), newStubClientRepo("client-1"), nil)

	quote, err := svc.Create(context.Background(), "actor-1", QuoteInput{
		ClientID:   "client-1",
		Title:      "Panel upgrade",
		TotalCents: 250_000,
	})
	require.NoError(t, err)
	require.Equal(t, domain.QuoteStatusDraft, quote.Status)
	require.Equal(t, int64(250_000), quote.TotalCents)
}

func TestQuoteCreateUnknownClient(t *testing.T) {
	svc := NewQuoteService(newStubQuoteRepo(), newStubClientRepo(), nil)

	_, err := svc.Create(context.Background(), "actor-1", QuoteInput{ClientID: "missing", Title: "x"})
	require.Error(t, err)
}

func TestQuoteStatusTransitions(t *testing.T) {
	cases := []struct {
		from    domain.QuoteStatus
		to      domain.QuoteStatus
		allowed bool
	}{
		{domain.QuoteStatusDraft, domain.QuoteStatusSent, true},
		{domain.QuoteStatusDraft, domain.QuoteStatusApproved, false},
		{domain.QuoteStatusSent, domain.QuoteStatusApproved, true},
		{domain.QuoteStatusSent, domain.QuoteStatusRejected, true},
		{domain.QuoteStatusSent, domain.QuoteStatusExpired, true},
		{domain.QuoteStatusApproved, domain.QuoteStatusExpired, false},
		{domain.QuoteStatusRejected, domain.QuoteStatusSent, false},
	}
	for _, tc := range cases {
		repo := newStubQuoteRepo(&domain.Quote{ID: "quote-1", ClientID: "client-1", Title: "x", Status: tc.from})
		svc := NewQuoteService(repo, newStubClientRepo("client-1"), nil)

		quote, err := svc.ChangeStatus(context.Background(), "actor-1", "quote-1", tc.to)
		if tc.allowed {
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			require.Equal(t, tc.to, quote.Status)
		} else {
			requireCode(t, err, "CONFLICT")
		}
	}
}

func TestQuoteUpdateDecidedIsReadOnly(t *testing.T) {
	repo := newStubQuoteRepo(&domain.Quote{ID: "quote-1", ClientID: "client-1", Title: "x", Status: domain.QuoteStatusApproved})
	svc := NewQuoteService(repo, newStubClientRepo("client-1"), nil)

	_, err := svc.Update(context.Background(), "actor-1", "quote-1", QuoteInput{Title: "y"})
	requireCode(t, err, "CONFLICT")
}
