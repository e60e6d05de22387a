package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseProjectStatus(t *testing.T) {
	for _, status := range ProjectStatuses {
		parsed, err := ParseProjectStatus(status.String())
		require.NoError(t, err)
		require.Equal(t, status, parsed)
	}

	// Unknown values are an error, never a default
	for _, invalid := range []string{"", "planned", "Done", "IN_PROGRESS", "2"} {
		_, err := ParseProjectStatus(invalid)
		require.Error(t, err, "expected %q to be rejected", invalid)
	}
}

func TestProjectJSONEncoding(t *testing.T) {
	project := Project{
		ID:        7,
		Name:      "Website Revamp",
		Owner:     "Alice",
		Status:    StatusInProgress,
		StartDate: NewDate(2024, time.January, 1),
		EndDate:   NewDate(2024, time.March, 1),
		Version:   3,
	}

	data, err := json.Marshal(project)
	require.NoError(t, err)

	// The status travels as its symbolic name and dates as bare days.
	require.Contains(t, string(data), `"status":"InProgress"`)
	require.Contains(t, string(data), `"startDate":"2024-01-01"`)
	require.Contains(t, string(data), `"endDate":"2024-03-01"`)
	require.NotContains(t, string(data), "created_at")

	var decoded Project
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, project.Status, decoded.Status)
	require.True(t, project.StartDate.Equal(decoded.StartDate))
}

func TestDateParsing(t *testing.T) {
	date, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	require.Equal(t, "2024-06-01", date.String())

	// Full timestamps are accepted with the time-of-day discarded.
	date, err = ParseDate("2024-06-01T15:04:05Z")
	require.NoError(t, err)
	require.Equal(t, "2024-06-01", date.String())

	_, err = ParseDate("01/06/2024")
	require.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var date Date

	require.NoError(t, date.Scan(time.Date(2024, time.May, 9, 13, 30, 0, 0, time.Local)))
	require.Equal(t, "2024-05-09", date.String())

	require.NoError(t, date.Scan("2024-05-09"))
	require.Equal(t, "2024-05-09", date.String())

	require.NoError(t, date.Scan([]byte("2024-05-09 00:00:00")))
	require.Equal(t, "2024-05-09", date.String())

	require.Error(t, date.Scan(42))
}
