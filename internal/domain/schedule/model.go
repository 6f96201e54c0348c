package schedule

// DefaultDailyLimit is the packing budget used when a roadmap is created
// without an explicit daily limit.
const DefaultDailyLimit = 60

// DailyLimitPresets are suggested daily budgets surfaced to clients.
// Any positive number of minutes is accepted by the packer.
var DailyLimitPresets = []int{60, 90, 120, 180}

// Session is a single timed unit of learning content.
type Session struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
	Completed       bool   `json:"completed"`
	OrderIndex      int    `json:"order_index"`
	SourceVideoID   string `json:"source_video_id,omitempty"`
}

// Day is an ordered bucket of sessions scheduled for one calendar slot.
// Completed is derived: true iff the day has at least one session and
// every session in it is completed.
type Day struct {
	DayNumber int       `json:"day_number"`
	Sessions  []Session `json:"sessions"`
	Completed bool      `json:"completed"`
	Today     bool      `json:"is_today,omitempty"`
}

// ImportItem is one timed item handed over by an import source, in
// watch order. SourceID is preserved verbatim on the created session.
type ImportItem struct {
	SourceID        string `json:"source_id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Stats summarizes progress across a day sequence.
type Stats struct {
	TotalDays         int `json:"total_days"`
	CompletedDays     int `json:"completed_days"`
	TotalSessions     int `json:"total_sessions"`
	CompletedSessions int `json:"completed_sessions"`
	CurrentDayNumber  int `json:"current_day_number"`
	TotalMinutes      int `json:"total_minutes"`
}

// TotalMinutes returns the summed duration of the day's sessions.
func (d Day) TotalMinutes() int {
	total := 0
	for _, s := range d.Sessions {
		total += s.DurationMinutes
	}
	return total
}

// CloneDays returns a deep copy of days. Mutation operations clone
// first so a failed operation never leaves the caller's snapshot
// partially changed.
func CloneDays(days []Day) []Day {
	if days == nil {
		return nil
	}
	out := make([]Day, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Sessions = append([]Session(nil), d.Sessions...)
	}
	return out
}
