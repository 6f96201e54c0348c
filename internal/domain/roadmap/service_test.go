package roadmap_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/seywell/daypack/internal/domain/roadmap"
	"github.com/seywell/daypack/internal/domain/schedule"
	"github.com/seywell/daypack/internal/repository"
	"github.com/seywell/daypack/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedRoadmap(userID string) *roadmap.Roadmap {
	start := time.Now()
	return &roadmap.Roadmap{
		ID:                "rm1",
		UserID:            userID,
		Title:             "Go Course",
		DailyLimitMinutes: 60,
		StartDate:         &start,
		CreatedAt:         start,
		Days: []schedule.Day{
			{DayNumber: 1, Sessions: []schedule.Session{
				{ID: "s1", Title: "Intro", DurationMinutes: 30, OrderIndex: 0},
				{ID: "s2", Title: "Setup", DurationMinutes: 30, OrderIndex: 1},
			}},
			{DayNumber: 2, Sessions: []schedule.Session{
				{ID: "s3", Title: "Basics", DurationMinutes: 45, OrderIndex: 0},
			}},
		},
	}
}

func TestService_Create_PartitionsItems(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RoadmapRepository{}
	repo.On("Create", ctx, "u1", mock.Anything).Return(nil)

	svc := roadmap.NewService(repo, nil)
	rm, err := svc.Create(ctx, "u1", roadmap.CreateRequest{
		Title:             "Go Course",
		DailyLimitMinutes: 60,
		Items: []schedule.ImportItem{
			{SourceID: "v1", Title: "Intro", DurationMinutes: 40},
			{SourceID: "v2", Title: "Setup", DurationMinutes: 40},
			{SourceID: "v3", Title: "Basics", DurationMinutes: 20},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, rm.ID)
	require.Len(t, rm.Days, 2)
	require.Len(t, rm.Days[0].Sessions, 1)
	require.Len(t, rm.Days[1].Sessions, 2)
	require.NotNil(t, rm.StartDate)
	require.True(t, rm.Days[0].Today)

	repo.AssertExpectations(t)
}

func TestService_Create_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RoadmapRepository{}
	repo.On("Create", ctx, "u1", mock.Anything).Return(nil)

	svc := roadmap.NewService(repo, nil)
	rm, err := svc.Create(ctx, "u1", roadmap.CreateRequest{
		Title: "Untimed",
		Items: []schedule.ImportItem{{SourceID: "v1", Title: "Only", DurationMinutes: 45}},
	})
	require.NoError(t, err)
	require.Equal(t, schedule.DefaultDailyLimit, rm.DailyLimitMinutes)
}

func TestService_Create_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := roadmap.NewService(&mocks.RoadmapRepository{}, nil)

	_, err := svc.Create(ctx, "u1", roadmap.CreateRequest{Title: "  "})
	require.ErrorIs(t, err, roadmap.ErrInvalidInput)

	_, err = svc.Create(ctx, "u1", roadmap.CreateRequest{
		Title: "Course",
		Items: []schedule.ImportItem{{SourceID: "v1", Title: "Bad", DurationMinutes: 0}},
	})
	require.ErrorIs(t, err, roadmap.ErrInvalidInput)

	_, err = svc.Create(ctx, "u1", roadmap.CreateRequest{
		Title:             "Course",
		DailyLimitMinutes: -5,
		Items:             []schedule.ImportItem{{SourceID: "v1", Title: "Ok", DurationMinutes: 10}},
	})
	require.ErrorIs(t, err, schedule.ErrInvalidLimit)
}

func TestService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RoadmapRepository{}
	repo.On("Get", ctx, "u1", "missing").Return(nil, repository.ErrNotFound)

	svc := roadmap.NewService(repo, nil)
	_, err := svc.Get(ctx, "u1", "missing")
	require.ErrorIs(t, err, roadmap.ErrRoadmapNotFound)
}

func TestService_MoveSession_Saves(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RoadmapRepository{}
	repo.On("Get", ctx, "u1", "rm1").Return(storedRoadmap("u1"), nil)
	repo.On("Save", ctx, "u1", mock.Anything).Return(nil)

	svc := roadmap.NewService(repo, nil)
	rm, err := svc.MoveSession(ctx, "u1", "rm1", "s3", 1, 1)
	require.NoError(t, err)
	require.Len(t, rm.Days[0].Sessions, 3)
	require.Equal(t, "s3", rm.Days[0].Sessions[1].ID)
	require.Empty(t, rm.Days[1].Sessions)

	repo.AssertExpectations(t)
}

func TestService_MoveSession_NotFoundDoesNotSave(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RoadmapRepository{}
	repo.On("Get", ctx, "u1", "rm1").Return(storedRoadmap("u1"), nil)

	svc := roadmap.NewService(repo, nil)
	_, err := svc.MoveSession(ctx, "u1", "rm1", "nope", 1, 0)
	require.ErrorIs(t, err, schedule.ErrSessionNotFound)

	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SaveFailurePropagates(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RoadmapRepository{}
	repo.On("Get", ctx, "u1", "rm1").Return(storedRoadmap("u1"), nil)
	repo.On("Save", ctx, "u1", mock.Anything).Return(errors.New("disk full"))

	svc := roadmap.NewService(repo, nil)
	_, err := svc.ToggleSession(ctx, "u1", "rm1", "s1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}

func TestService_Rebalance_UpdatesLimit(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RoadmapRepository{}
	repo.On("Get", ctx, "u1", "rm1").Return(storedRoadmap("u1"), nil)
	repo.On("Save", ctx, "u1", mock.Anything).Return(nil)

	svc := roadmap.NewService(repo, nil)
	rm, err := svc.Rebalance(ctx, "u1", "rm1", 120)
	require.NoError(t, err)
	require.Equal(t, 120, rm.DailyLimitMinutes)
	require.Len(t, rm.Days, 1)
	require.Len(t, rm.Days[0].Sessions, 3)
}

func TestService_Rebalance_InvalidLimit(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RoadmapRepository{}
	repo.On("Get", ctx, "u1", "rm1").Return(storedRoadmap("u1"), nil)

	svc := roadmap.NewService(repo, nil)
	_, err := svc.Rebalance(ctx, "u1", "rm1", 0)
	require.ErrorIs(t, err, schedule.ErrInvalidLimit)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	stored := storedRoadmap("u1")
	stored.Days[1].Sessions[0].Completed = true
	stored.Days[1].Completed = true

	repo := &mocks.RoadmapRepository{}
	repo.On("Get", ctx, "u1", "rm1").Return(stored, nil)

	svc := roadmap.NewService(repo, nil)
	stats, err := svc.Stats(ctx, "u1", "rm1")
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalDays)
	require.Equal(t, 1, stats.CompletedDays)
	require.Equal(t, 3, stats.TotalSessions)
	require.Equal(t, 1, stats.CompletedSessions)
	require.Equal(t, 1, stats.CurrentDayNumber)
}

func TestService_DeleteDay_LastDay(t *testing.T) {
	ctx := context.Background()
	stored := storedRoadmap("u1")
	stored.Days = stored.Days[:1]

	repo := &mocks.RoadmapRepository{}
	repo.On("Get", ctx, "u1", "rm1").Return(stored, nil)

	svc := roadmap.NewService(repo, nil)
	_, err := svc.DeleteDay(ctx, "u1", "rm1", 1)
	require.ErrorIs(t, err, schedule.ErrLastDay)
}

func TestService_Rename(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RoadmapRepository{}
	repo.On("Get", ctx, "u1", "rm1").Return(storedRoadmap("u1"), nil)
	repo.On("Save", ctx, "u1", mock.Anything).Return(nil)

	svc := roadmap.NewService(repo, nil)
	rm, err := svc.Rename(ctx, "u1", "rm1", "Renamed")
	require.NoError(t, err)
	require.Equal(t, "Renamed", rm.Title)

	_, err = svc.Rename(ctx, "u1", "rm1", " ")
	require.ErrorIs(t, err, roadmap.ErrInvalidInput)
}
