package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeQueryComparesCalendarDays(t *testing.T) {
	query := rangeQuery(false)

	// Both branches must compare dates, not raw timestamps. The range bounds
	// are midnights, so a timestamp comparison would drop anything scheduled
	// after 00:00 on the last day of the month.
	require.Contains(t, query, "start_time::date BETWEEN $1::date AND $2::date")
	require.Contains(t, query, "created_at::date BETWEEN $1::date AND $2::date")
	require.NotContains(t, query, "start_time BETWEEN")
	require.NotContains(t, query, "technician_id")
}

func TestRangeQueryTechnicianFilterBindsBothBranches(t *testing.T) {
	query := rangeQuery(true)

	// The technician predicate must sit outside the timestamp/NULL
	// disjunction so it narrows dated and undated events alike.
	require.Contains(t, query, ")) AND technician_id=$3")
}
