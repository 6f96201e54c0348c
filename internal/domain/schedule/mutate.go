package schedule

import (
	"strings"

	"github.com/google/uuid"
)

// The mutation operations below take a day sequence and return a new
// one, leaving the input untouched. They fail without side effects when
// a referenced session or day does not exist.

// MoveSession removes the session from its current day and inserts it
// at targetIndex in the day numbered targetDayNumber. The index is
// clamped to the target day's bounds. Order indexes of both affected
// days are renumbered contiguously from 0 and their completion flags
// recomputed. Moving a session onto its own position is a valid no-op.
func MoveSession(days []Day, sessionID string, targetDayNumber, targetIndex int) ([]Day, error) {
	out := CloneDays(days)

	di, si, ok := findSession(out, sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	ti, ok := findDay(out, targetDayNumber)
	if !ok {
		return nil, ErrDayNotFound
	}

	moved := out[di].Sessions[si]
	out[di].Sessions = append(out[di].Sessions[:si], out[di].Sessions[si+1:]...)

	target := out[ti].Sessions
	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(target) {
		targetIndex = len(target)
	}
	rest := append([]Session{moved}, target[targetIndex:]...)
	out[ti].Sessions = append(target[:targetIndex], rest...)

	reindex(&out[di])
	reindex(&out[ti])
	return out, nil
}

// ReorderSession moves a session to targetIndex within its own day,
// preserving the relative order of all other sessions in that day.
func ReorderSession(days []Day, sessionID string, targetIndex int) ([]Day, error) {
	di, _, ok := findSession(days, sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return MoveSession(days, sessionID, days[di].DayNumber, targetIndex)
}

// AddSession appends a new incomplete session to the end of the named
// day. Blank titles and non-positive durations are rejected before any
// change is made.
func AddSession(days []Day, dayNumber int, title string, durationMinutes int) ([]Day, error) {
	if strings.TrimSpace(title) == "" || durationMinutes <= 0 {
		return nil, ErrInvalidInput
	}

	out := CloneDays(days)
	di, ok := findDay(out, dayNumber)
	if !ok {
		return nil, ErrDayNotFound
	}

	out[di].Sessions = append(out[di].Sessions, Session{
		ID:              uuid.NewString(),
		Title:           title,
		DurationMinutes: durationMinutes,
	})
	reindex(&out[di])
	return out, nil
}

// DeleteSession removes the session from its day. A day emptied by the
// deletion remains in place and is never considered completed.
func DeleteSession(days []Day, sessionID string) ([]Day, error) {
	out := CloneDays(days)
	di, si, ok := findSession(out, sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	out[di].Sessions = append(out[di].Sessions[:si], out[di].Sessions[si+1:]...)
	reindex(&out[di])
	return out, nil
}

// ToggleSession flips the session's completed flag and recomputes the
// owning day's completion.
func ToggleSession(days []Day, sessionID string) ([]Day, error) {
	out := CloneDays(days)
	di, si, ok := findSession(out, sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	out[di].Sessions[si].Completed = !out[di].Sessions[si].Completed
	reindex(&out[di])
	return out, nil
}

// AddDay appends a new empty day numbered one past the current maximum.
func AddDay(days []Day) []Day {
	out := CloneDays(days)
	return append(out, Day{DayNumber: len(out) + 1})
}

// DeleteDay removes the named day and renumbers the remaining days
// contiguously from 1 in their existing relative order. Session
// contents are untouched; only day number labels change. The last
// remaining day cannot be deleted.
func DeleteDay(days []Day, dayNumber int) ([]Day, error) {
	out := CloneDays(days)
	di, ok := findDay(out, dayNumber)
	if !ok {
		return nil, ErrDayNotFound
	}
	if len(out) <= 1 {
		return nil, ErrLastDay
	}

	out = append(out[:di], out[di+1:]...)
	for i := range out {
		out[i].DayNumber = i + 1
	}
	return out, nil
}

func findSession(days []Day, sessionID string) (dayIdx, sessionIdx int, ok bool) {
	for di, d := range days {
		for si, s := range d.Sessions {
			if s.ID == sessionID {
				return di, si, true
			}
		}
	}
	return 0, 0, false
}

func findDay(days []Day, dayNumber int) (int, bool) {
	for i, d := range days {
		if d.DayNumber == dayNumber {
			return i, true
		}
	}
	return 0, false
}

// reindex renumbers a day's order indexes contiguously from 0 and
// recomputes its derived completion flag.
func reindex(d *Day) {
	for i := range d.Sessions {
		d.Sessions[i].OrderIndex = i
	}
	d.Completed = allCompleted(d.Sessions)
}
