package ical_test

import (
	"strings"
	"testing"
	"time"

	"github.com/seywell/daypack/internal/domain/schedule"
	"github.com/seywell/daypack/internal/ical"
	"github.com/stretchr/testify/require"
)

func testDays() []schedule.Day {
	return []schedule.Day{
		{DayNumber: 1, Sessions: []schedule.Session{
			{ID: "s1", Title: "Intro", DurationMinutes: 30, OrderIndex: 0},
			{ID: "s2", Title: "Setup", DurationMinutes: 15, OrderIndex: 1},
		}},
		{DayNumber: 2, Sessions: []schedule.Session{
			{ID: "s3", Title: "Basics, Part 1", DurationMinutes: 60, OrderIndex: 0},
		}},
	}
}

func TestRender_Structure(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	out := ical.Render("Go Course", testDays(), ical.Options{StartDate: start, StartHour: 9})

	require.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	require.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	require.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	require.Equal(t, 2, strings.Count(out, "END:VEVENT"))

	require.Contains(t, out, "SUMMARY:Go Course: Day 1")
	require.Contains(t, out, "SUMMARY:Go Course: Day 2")
	require.Contains(t, out, "DTSTART:20260302T090000Z")
	// Day 1 holds 45 minutes of sessions.
	require.Contains(t, out, "DTEND:20260302T094500Z")
	// Day 2 starts the next calendar day.
	require.Contains(t, out, "DTSTART:20260303T090000Z")
	require.Contains(t, out, "DTEND:20260303T100000Z")
}

func TestRender_DescribesSessions(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	out := ical.Render("Go Course", testDays(), ical.Options{StartDate: start})

	require.Contains(t, out, "1. Intro (30m)")
	require.Contains(t, out, "2. Setup (15m)")
	require.Contains(t, out, "Total: 45m")
	// Hour-long sessions use the compact hour form.
	require.Contains(t, out, "(1h)")
	require.Contains(t, out, "Total: 1h")
}

func TestRender_EscapesText(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	out := ical.Render("Go Course", testDays(), ical.Options{StartDate: start})

	require.Contains(t, out, "Basics\\, Part 1")
	require.Contains(t, out, "\\n")
}

func TestRender_SkipsEmptyDays(t *testing.T) {
	days := []schedule.Day{
		{DayNumber: 1},
		{DayNumber: 2, Sessions: []schedule.Session{
			{ID: "s1", Title: "Only", DurationMinutes: 20},
		}},
	}
	out := ical.Render("Course", days, ical.Options{StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)})

	require.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"))
	require.Contains(t, out, "SUMMARY:Course: Day 2")
}

func TestRender_FoldsLongLines(t *testing.T) {
	days := []schedule.Day{
		{DayNumber: 1, Sessions: []schedule.Session{
			{ID: "s1", Title: strings.Repeat("Very Long Session Title ", 10), DurationMinutes: 30},
		}},
	}
	out := ical.Render("Course", days, ical.Options{StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)})

	for _, line := range strings.Split(out, "\r\n") {
		require.LessOrEqual(t, len(line), 76)
	}
}
