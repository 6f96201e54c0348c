package schedule

import "time"

// TodayDayNumber derives which day number counts as "today" from the
// roadmap's start date: day 1 on the start date itself, day 2 the next
// calendar day, and so on. Dates before the start date map to day 1.
// The result is not clamped to the schedule length; callers decide what
// an out-of-range value means.
func TodayDayNumber(startDate, now time.Time) int {
	start := midnightUTC(startDate)
	current := midnightUTC(now)
	diff := int(current.Sub(start).Hours() / 24)
	if diff < 0 {
		return 1
	}
	return diff + 1
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeStats summarizes progress across the day sequence.
// currentDayNumber is the derived today value; when it falls outside
// the schedule the reported current day falls back to 1.
func ComputeStats(days []Day, currentDayNumber int) Stats {
	stats := Stats{
		TotalDays:        len(days),
		CurrentDayNumber: 1,
	}
	if currentDayNumber >= 1 && currentDayNumber <= len(days) {
		stats.CurrentDayNumber = currentDayNumber
	}

	for _, d := range days {
		if d.Completed {
			stats.CompletedDays++
		}
		stats.TotalSessions += len(d.Sessions)
		stats.TotalMinutes += d.TotalMinutes()
		for _, s := range d.Sessions {
			if s.Completed {
				stats.CompletedSessions++
			}
		}
	}
	return stats
}
