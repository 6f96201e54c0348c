// Package ical renders a learning schedule as an RFC 5545 iCalendar feed,
// one event per study day.
package ical

import (
	"fmt"
	"strings"
	"time"

	"github.com/seywell/daypack/internal/domain/schedule"
	"github.com/seywell/daypack/internal/playlist"
)

const (
	prodID     = "-//daypack//learning schedule//EN"
	timeLayout = "20060102T150405Z"
	dateLayout = "20060102"
)

// Options controls where and when the exported events land.
type Options struct {
	// StartDate anchors day 1. Zero value means today.
	StartDate time.Time
	// StartHour is the daily start hour in UTC, 0 to 23.
	StartHour int
}

// Render produces the iCalendar document for the given course.
func Render(courseName string, days []schedule.Day, opts Options) string {
	start := opts.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), opts.StartHour, 0, 0, 0, time.UTC)

	now := time.Now().UTC().Format(timeLayout)

	var b strings.Builder
	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")

	for _, day := range days {
		if len(day.Sessions) == 0 {
			continue
		}

		dayStart := start.AddDate(0, 0, day.DayNumber-1)
		dayEnd := dayStart.Add(time.Duration(day.TotalMinutes()) * time.Minute)

		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, fmt.Sprintf("UID:day-%d-%s@daypack", day.DayNumber, dayStart.Format(dateLayout)))
		writeLine(&b, "DTSTAMP:"+now)
		writeLine(&b, "DTSTART:"+dayStart.Format(timeLayout))
		writeLine(&b, "DTEND:"+dayEnd.Format(timeLayout))
		writeLine(&b, "SUMMARY:"+escape(fmt.Sprintf("%s: Day %d", courseName, day.DayNumber)))
		writeLine(&b, "DESCRIPTION:"+escape(describeDay(day)))
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

func describeDay(day schedule.Day) string {
	lines := make([]string, 0, len(day.Sessions)+1)
	for i, s := range day.Sessions {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, s.Title, playlist.FormatDuration(s.DurationMinutes)))
	}
	lines = append(lines, fmt.Sprintf("Total: %s", playlist.FormatDuration(day.TotalMinutes())))
	return strings.Join(lines, "\n")
}

// escape applies RFC 5545 text escaping.
func escape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}

// writeLine folds content lines longer than 75 octets per RFC 5545 §3.1.
func writeLine(b *strings.Builder, line string) {
	const limit = 75
	for len(line) > limit {
		b.WriteString(line[:limit])
		b.WriteString("\r\n ")
		line = line[limit:]
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}
