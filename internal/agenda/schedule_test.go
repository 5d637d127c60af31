package agenda

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func dateRow(t EventType, id string, day time.Time) Row {
	return Row{
		EventID:    id,
		EventType:  t,
		StartTime:  &day,
		ClientID:   "c1",
		ClientName: "Acme Cooling",
		Status:     "open",
		Title:      string(t) + " " + id,
		CreatedAt:  day,
	}
}

func TestEventsForDayFixedGroupOrder(t *testing.T) {
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	// Insert in scrambled order; output must still be grouped
	// appointment, order, maintenance, installation, ticket, quote.
	rows := []Row{
		dateRow(TypeQuote, "q1", day),
		dateRow(TypeTicket, "t1", day),
		dateRow(TypeAppointment, "a1", day),
		dateRow(TypeInstallation, "i1", day),
		dateRow(TypeMaintenance, "m1", day),
		dateRow(TypeOrder, "o1", day),
	}
	schedule := BuildSchedule(rows)

	events := schedule.EventsForDay("2025-01-15", TypeFilterAll)
	require.Len(t, events, 6)
	wantTypes := []EventType{TypeAppointment, TypeOrder, TypeMaintenance, TypeInstallation, TypeTicket, TypeQuote}
	for i, want := range wantTypes {
		require.Equal(t, want, events[i].Type)
	}
}

func TestEventsForDayTypeFilter(t *testing.T) {
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	schedule := BuildSchedule([]Row{
		dateRow(TypeOrder, "o1", day),
		dateRow(TypeQuote, "q1", day),
	})

	events := schedule.EventsForDay("2025-01-15", string(TypeOrder))
	require.Len(t, events, 1)
	require.Equal(t, TypeOrder, events[0].Type)

	require.Empty(t, schedule.EventsForDay("2025-01-16", TypeFilterAll))
}

func TestUpcomingExcludesPast(t *testing.T) {
	past := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	schedule := BuildSchedule([]Row{
		dateRow(TypeOrder, "past", past),
		dateRow(TypeOrder, "future", future),
	})

	upcoming := schedule.Upcoming("2025-01-15", 0)
	require.Len(t, upcoming, 1)
	require.Equal(t, "future", upcoming[0].ID)
}

func TestUpcomingIncludesToday(t *testing.T) {
	today := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	schedule := BuildSchedule([]Row{dateRow(TypeTicket, "t1", today)})
	require.Len(t, schedule.Upcoming("2025-01-15", 0), 1)
}

func TestUpcomingLimitAndSort(t *testing.T) {
	rows := make([]Row, 0, 15)
	for i := 0; i < 15; i++ {
		day := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -i)
		rows = append(rows, dateRow(TypeOrder, fmt.Sprintf("o%d", i), day))
	}
	schedule := BuildSchedule(rows)

	upcoming := schedule.Upcoming("2025-01-01", 10)
	require.Len(t, upcoming, 10)
	for i := 1; i < len(upcoming); i++ {
		require.LessOrEqual(t, upcoming[i-1].Date, upcoming[i].Date)
	}
}

func TestBuildSchedulePartitionsDisjointly(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := []Row{
		dateRow(TypeOrder, "o1", day),
		dateRow(TypeOrder, "o2", day),
		dateRow(TypeMaintenance, "m1", day),
	}
	schedule := BuildSchedule(rows)
	require.Len(t, schedule.Orders, 2)
	require.Len(t, schedule.Maintenance, 1)
	require.Empty(t, schedule.Appointments)
	require.Equal(t, 3, schedule.Total())
}
