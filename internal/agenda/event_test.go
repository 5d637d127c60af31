package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTableForCoversEveryType(t *testing.T) {
	want := map[EventType]string{
		TypeAppointment:  "appointment_requests",
		TypeOrder:        "service_orders",
		TypeMaintenance:  "maintenance_contracts",
		TypeInstallation: "installations",
		TypeTicket:       "tickets",
		TypeQuote:        "quotes",
	}
	require.Len(t, want, len(TypeOrderList))
	for _, eventType := range TypeOrderList {
		table, err := TableFor(eventType)
		require.NoError(t, err)
		require.Equal(t, want[eventType], table)
	}

	_, err := TableFor(EventType("survey"))
	require.Error(t, err)
}

func TestParseEventType(t *testing.T) {
	for _, eventType := range TypeOrderList {
		parsed, err := ParseEventType(string(eventType))
		require.NoError(t, err)
		require.Equal(t, eventType, parsed)
	}
	_, err := ParseEventType("ORDER")
	require.Error(t, err)
}

func TestResolvedDateUsesScheduleColumn(t *testing.T) {
	scheduled := time.Date(2025, 4, 10, 14, 30, 0, 0, time.UTC)
	created := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	row := Row{EventType: TypeOrder, StartTime: &scheduled, CreatedAt: created}
	require.Equal(t, "2025-04-10", row.ResolvedDate())
}

func TestResolvedDateFallsBackToCreation(t *testing.T) {
	created := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	// Quote without valid_until.
	quote := Row{EventType: TypeQuote, CreatedAt: created}
	require.Equal(t, "2025-04-01", quote.ResolvedDate())

	// Tickets always sit on their open date.
	ticket := Row{EventType: TypeTicket, CreatedAt: created}
	require.Equal(t, "2025-04-01", ticket.ResolvedDate())

	// Unscheduled order.
	order := Row{EventType: TypeOrder, CreatedAt: created}
	require.Equal(t, "2025-04-01", order.ResolvedDate())
}
