package schedule

// Flatten concatenates all sessions in (dayNumber, orderIndex) order.
// Days are assumed to be sorted by day number, as loaded snapshots are.
func Flatten(days []Day) []Session {
	var out []Session
	for _, d := range days {
		out = append(out, d.Sessions...)
	}
	return out
}

// Rebalance re-packs an existing day sequence under a new daily limit.
// Unlike Partition it carries forward each session's identity, title,
// duration, and completed flag; only day assignment and order index
// change. Day completion is recomputed from the carried-forward flags.
//
// Rebalance never changes the session count or any session field other
// than OrderIndex, and packing the same flattened sequence twice with
// the same limit yields an identical partition.
func Rebalance(days []Day, dailyLimitMinutes int) ([]Day, error) {
	if dailyLimitMinutes <= 0 {
		return nil, ErrInvalidLimit
	}
	return pack(Flatten(CloneDays(days)), dailyLimitMinutes), nil
}
