package schedule_test

import (
	"fmt"
	"testing"

	"github.com/seywell/daypack/internal/domain/schedule"
	"github.com/stretchr/testify/require"
)

func items(durations ...int) []schedule.ImportItem {
	out := make([]schedule.ImportItem, len(durations))
	for i, d := range durations {
		out[i] = schedule.ImportItem{
			SourceID:        fmt.Sprintf("v%d", i+1),
			Title:           fmt.Sprintf("Video %d", i+1),
			DurationMinutes: d,
		}
	}
	return out
}

func TestPartition_EvenSplit(t *testing.T) {
	// 10 items of 30 minutes under a 90 minute budget: 3+3+3+1.
	days, err := schedule.Partition(items(30, 30, 30, 30, 30, 30, 30, 30, 30, 30), 90)
	require.NoError(t, err)
	require.Len(t, days, 4)

	counts := make([]int, 0, len(days))
	for _, d := range days {
		counts = append(counts, len(d.Sessions))
	}
	require.Equal(t, []int{3, 3, 3, 1}, counts)

	for i, d := range days {
		require.Equal(t, i+1, d.DayNumber)
		require.False(t, d.Completed)
	}
}

func TestPartition_OversizedSingleton(t *testing.T) {
	// An item longer than the limit still occupies a day alone.
	days, err := schedule.Partition(items(120), 60)
	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Len(t, days[0].Sessions, 1)
	require.Equal(t, 120, days[0].Sessions[0].DurationMinutes)
}

func TestPartition_OversizedMidStream(t *testing.T) {
	days, err := schedule.Partition(items(30, 200, 30), 60)
	require.NoError(t, err)
	require.Len(t, days, 3)
	require.Equal(t, 200, days[1].Sessions[0].DurationMinutes)
}

func TestPartition_EmptyInput(t *testing.T) {
	days, err := schedule.Partition(nil, 60)
	require.NoError(t, err)
	require.Empty(t, days)
}

func TestPartition_InvalidLimit(t *testing.T) {
	for _, limit := range []int{0, -10} {
		_, err := schedule.Partition(items(30), limit)
		require.ErrorIs(t, err, schedule.ErrInvalidLimit)
	}
}

func TestPartition_ConservesTimeAndOrder(t *testing.T) {
	src := items(12, 47, 5, 90, 33, 61, 8, 24, 24, 24, 119, 1)
	total := 0
	for _, it := range src {
		total += it.DurationMinutes
	}

	days, err := schedule.Partition(src, 75)
	require.NoError(t, err)

	flat := schedule.Flatten(days)
	require.Len(t, flat, len(src))

	got := 0
	for i, s := range flat {
		got += s.DurationMinutes
		// Input order survives packing.
		require.Equal(t, src[i].SourceID, s.SourceVideoID)
		require.Equal(t, src[i].Title, s.Title)
		require.False(t, s.Completed)
	}
	require.Equal(t, total, got)
}

func TestPartition_NoOverflowExceptSingletons(t *testing.T) {
	days, err := schedule.Partition(items(50, 50, 200, 10, 10, 10, 90, 45, 45), 100)
	require.NoError(t, err)

	for _, d := range days {
		if len(d.Sessions) > 1 {
			require.LessOrEqual(t, d.TotalMinutes(), 100, "day %d overflows", d.DayNumber)
		}
	}
}

func TestPartition_OrderIndexesContiguous(t *testing.T) {
	days, err := schedule.Partition(items(20, 20, 20, 20, 20), 60)
	require.NoError(t, err)
	for _, d := range days {
		for i, s := range d.Sessions {
			require.Equal(t, i, s.OrderIndex)
			require.NotEmpty(t, s.ID)
		}
	}
}
