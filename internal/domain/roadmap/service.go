package roadmap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/seywell/daypack/internal/domain/schedule"
	"github.com/seywell/daypack/internal/repository"
)

// Service handles roadmap operations. Every mutation loads the stored
// snapshot, runs the pure scheduling engine on it, and persists the
// result wholesale; when persistence fails the stored snapshot is the
// one from before the operation.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new roadmap service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines roadmap creation inputs. Items are packed into
// days in the order given.
type CreateRequest struct {
	ID                string
	Title             string
	Description       string
	DailyLimitMinutes int
	SourceURL         string
	StartDate         *time.Time
	Items             []schedule.ImportItem
}

// Create builds a new roadmap by partitioning the import items under
// the daily limit and persisting the result. A zero limit falls back to
// the default; negative limits are rejected.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (*Roadmap, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.Title) == "" || item.DurationMinutes <= 0 {
			return nil, ErrInvalidInput
		}
	}

	limit := req.DailyLimitMinutes
	if limit == 0 {
		limit = schedule.DefaultDailyLimit
	}

	days, err := schedule.Partition(req.Items, limit)
	if err != nil {
		return nil, err
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	now := time.Now()
	start := req.StartDate
	if start == nil {
		start = &now
	}

	rm := &Roadmap{
		ID:                id,
		UserID:            userID,
		Title:             req.Title,
		Description:       req.Description,
		DailyLimitMinutes: limit,
		StartDate:         start,
		SourceURL:         req.SourceURL,
		CreatedAt:         now,
		Days:              days,
	}

	if err := s.repo.Create(ctx, userID, rm); err != nil {
		return nil, fmt.Errorf("creating roadmap: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("roadmap created",
			"roadmap_id", rm.ID,
			"sessions", len(req.Items),
			"days", len(days))
	}

	return s.withTodayFlags(rm), nil
}

// Get fetches a roadmap snapshot with its derived today flag applied.
func (s *Service) Get(ctx context.Context, userID, id string) (*Roadmap, error) {
	rm, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.withTodayFlags(rm), nil
}

// List returns roadmap summaries for the user.
func (s *Service) List(ctx context.Context, userID string) ([]Summary, error) {
	return s.repo.List(ctx, userID)
}

// Delete removes a roadmap and everything it owns.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoadmapNotFound
		}
		return fmt.Errorf("deleting roadmap: %w", err)
	}
	return nil
}

// Rename updates the roadmap title.
func (s *Service) Rename(ctx context.Context, userID, id, title string) (*Roadmap, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidInput
	}
	rm, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	rm.Title = title
	return s.save(ctx, userID, rm)
}

// MoveSession moves a session to targetIndex in the named day,
// renumbering both affected days.
func (s *Service) MoveSession(ctx context.Context, userID, roadmapID, sessionID string, targetDayNumber, targetIndex int) (*Roadmap, error) {
	return s.mutate(ctx, userID, roadmapID, func(days []schedule.Day) ([]schedule.Day, error) {
		return schedule.MoveSession(days, sessionID, targetDayNumber, targetIndex)
	})
}

// ReorderSession moves a session within its own day.
func (s *Service) ReorderSession(ctx context.Context, userID, roadmapID, sessionID string, targetIndex int) (*Roadmap, error) {
	return s.mutate(ctx, userID, roadmapID, func(days []schedule.Day) ([]schedule.Day, error) {
		return schedule.ReorderSession(days, sessionID, targetIndex)
	})
}

// AddSession appends a new session to the named day.
func (s *Service) AddSession(ctx context.Context, userID, roadmapID string, dayNumber int, title string, durationMinutes int) (*Roadmap, error) {
	return s.mutate(ctx, userID, roadmapID, func(days []schedule.Day) ([]schedule.Day, error) {
		return schedule.AddSession(days, dayNumber, title, durationMinutes)
	})
}

// DeleteSession removes a session from its day.
func (s *Service) DeleteSession(ctx context.Context, userID, roadmapID, sessionID string) (*Roadmap, error) {
	return s.mutate(ctx, userID, roadmapID, func(days []schedule.Day) ([]schedule.Day, error) {
		return schedule.DeleteSession(days, sessionID)
	})
}

// ToggleSession flips a session's completed flag.
func (s *Service) ToggleSession(ctx context.Context, userID, roadmapID, sessionID string) (*Roadmap, error) {
	return s.mutate(ctx, userID, roadmapID, func(days []schedule.Day) ([]schedule.Day, error) {
		return schedule.ToggleSession(days, sessionID)
	})
}

// AddDay appends a new empty day.
func (s *Service) AddDay(ctx context.Context, userID, roadmapID string) (*Roadmap, error) {
	return s.mutate(ctx, userID, roadmapID, func(days []schedule.Day) ([]schedule.Day, error) {
		return schedule.AddDay(days), nil
	})
}

// DeleteDay removes a day and renumbers the rest contiguously from 1.
func (s *Service) DeleteDay(ctx context.Context, userID, roadmapID string, dayNumber int) (*Roadmap, error) {
	return s.mutate(ctx, userID, roadmapID, func(days []schedule.Day) ([]schedule.Day, error) {
		return schedule.DeleteDay(days, dayNumber)
	})
}

// Rebalance re-packs the roadmap's sessions under a new daily limit,
// carrying forward session identity and completion state.
func (s *Service) Rebalance(ctx context.Context, userID, roadmapID string, newDailyLimitMinutes int) (*Roadmap, error) {
	rm, err := s.load(ctx, userID, roadmapID)
	if err != nil {
		return nil, err
	}

	days, err := schedule.Rebalance(rm.Days, newDailyLimitMinutes)
	if err != nil {
		return nil, err
	}
	rm.Days = days
	rm.DailyLimitMinutes = newDailyLimitMinutes

	saved, err := s.save(ctx, userID, rm)
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.Info("roadmap rebalanced",
			"roadmap_id", roadmapID,
			"daily_limit", newDailyLimitMinutes,
			"days", len(days))
	}
	return saved, nil
}

// Stats returns derived progress statistics for a roadmap.
func (s *Service) Stats(ctx context.Context, userID, roadmapID string) (schedule.Stats, error) {
	rm, err := s.load(ctx, userID, roadmapID)
	if err != nil {
		return schedule.Stats{}, err
	}
	return schedule.ComputeStats(rm.Days, s.todayNumber(rm)), nil
}

func (s *Service) mutate(ctx context.Context, userID, roadmapID string, op func([]schedule.Day) ([]schedule.Day, error)) (*Roadmap, error) {
	rm, err := s.load(ctx, userID, roadmapID)
	if err != nil {
		return nil, err
	}

	days, err := op(rm.Days)
	if err != nil {
		return nil, err
	}
	rm.Days = days

	return s.save(ctx, userID, rm)
}

func (s *Service) load(ctx context.Context, userID, id string) (*Roadmap, error) {
	rm, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoadmapNotFound
		}
		return nil, fmt.Errorf("loading roadmap: %w", err)
	}
	return rm, nil
}

func (s *Service) save(ctx context.Context, userID string, rm *Roadmap) (*Roadmap, error) {
	if err := s.repo.Save(ctx, userID, rm); err != nil {
		return nil, fmt.Errorf("saving roadmap: %w", err)
	}
	return s.withTodayFlags(rm), nil
}

func (s *Service) todayNumber(rm *Roadmap) int {
	if rm.StartDate == nil {
		return 1
	}
	return schedule.TodayDayNumber(*rm.StartDate, time.Now())
}

func (s *Service) withTodayFlags(rm *Roadmap) *Roadmap {
	today := s.todayNumber(rm)
	for i := range rm.Days {
		rm.Days[i].Today = rm.Days[i].DayNumber == today
	}
	return rm
}
