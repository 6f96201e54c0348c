package schedule

import "github.com/google/uuid"

// Partition distributes items into day buckets using greedy
// first-fit-in-order packing under dailyLimitMinutes. Input order is
// preserved; items are never reordered to improve packing. A single
// item longer than the limit still gets a day to itself: the overflow
// check only fires once the current day holds at least one session.
//
// Partition is pure and deterministic apart from the freshly assigned
// session IDs. An empty input yields an empty day sequence.
func Partition(items []ImportItem, dailyLimitMinutes int) ([]Day, error) {
	if dailyLimitMinutes <= 0 {
		return nil, ErrInvalidLimit
	}

	sessions := make([]Session, 0, len(items))
	for _, item := range items {
		sessions = append(sessions, Session{
			ID:              uuid.NewString(),
			Title:           item.Title,
			DurationMinutes: item.DurationMinutes,
			Completed:       false,
			SourceVideoID:   item.SourceID,
		})
	}

	return pack(sessions, dailyLimitMinutes), nil
}

// pack runs the packing loop over already-built sessions, carrying each
// session record forward unchanged except for its day assignment and
// order index. Shared by Partition and Rebalance.
func pack(sessions []Session, dailyLimitMinutes int) []Day {
	var days []Day
	dayNumber := 1
	minutes := 0
	var current []Session

	for _, s := range sessions {
		if len(current) > 0 && minutes+s.DurationMinutes > dailyLimitMinutes {
			days = append(days, closeDay(dayNumber, current))
			dayNumber++
			minutes = 0
			current = nil
		}
		s.OrderIndex = len(current)
		current = append(current, s)
		minutes += s.DurationMinutes
	}

	if len(current) > 0 {
		days = append(days, closeDay(dayNumber, current))
	}

	return days
}

func closeDay(dayNumber int, sessions []Session) Day {
	return Day{
		DayNumber: dayNumber,
		Sessions:  sessions,
		Completed: allCompleted(sessions),
	}
}

func allCompleted(sessions []Session) bool {
	if len(sessions) == 0 {
		return false
	}
	for _, s := range sessions {
		if !s.Completed {
			return false
		}
	}
	return true
}
