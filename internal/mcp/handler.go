package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/seywell/daypack/internal/domain/roadmap"
	"github.com/seywell/daypack/internal/domain/schedule"
	"github.com/seywell/daypack/internal/ical"
	"github.com/seywell/daypack/internal/playlist"
)

// RoadmapService defines roadmap operations needed by MCP.
type RoadmapService interface {
	Create(ctx context.Context, userID string, req roadmap.CreateRequest) (*roadmap.Roadmap, error)
	Get(ctx context.Context, userID, id string) (*roadmap.Roadmap, error)
	List(ctx context.Context, userID string) ([]roadmap.Summary, error)
	Delete(ctx context.Context, userID, id string) error
	Rename(ctx context.Context, userID, id, title string) (*roadmap.Roadmap, error)
	MoveSession(ctx context.Context, userID, roadmapID, sessionID string, targetDayNumber, targetIndex int) (*roadmap.Roadmap, error)
	ReorderSession(ctx context.Context, userID, roadmapID, sessionID string, targetIndex int) (*roadmap.Roadmap, error)
	AddSession(ctx context.Context, userID, roadmapID string, dayNumber int, title string, durationMinutes int) (*roadmap.Roadmap, error)
	DeleteSession(ctx context.Context, userID, roadmapID, sessionID string) (*roadmap.Roadmap, error)
	ToggleSession(ctx context.Context, userID, roadmapID, sessionID string) (*roadmap.Roadmap, error)
	AddDay(ctx context.Context, userID, roadmapID string) (*roadmap.Roadmap, error)
	DeleteDay(ctx context.Context, userID, roadmapID string, dayNumber int) (*roadmap.Roadmap, error)
	Rebalance(ctx context.Context, userID, roadmapID string, newDailyLimitMinutes int) (*roadmap.Roadmap, error)
	Stats(ctx context.Context, userID, roadmapID string) (schedule.Stats, error)
}

// PlaylistService defines playlist fetch operations needed by MCP.
type PlaylistService interface {
	FetchPlaylist(ctx context.Context, url string) (*playlist.Playlist, error)
}

// Handler dispatches MCP commands.
type Handler struct {
	roadmaps  RoadmapService
	playlists PlaylistService
}

// NewHandler creates a new MCP handler.
func NewHandler(roadmaps RoadmapService, playlists PlaylistService) *Handler {
	return &Handler{
		roadmaps:  roadmaps,
		playlists: playlists,
	}
}

// Handle dispatches MCP requests to domain services.
func (h *Handler) Handle(ctx context.Context, userID, method string, params json.RawMessage) (any, error) {
	switch method {
	case "create_roadmap":
		var req CreateRoadmapParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.createRoadmap(ctx, userID, req)
	case "import_playlist":
		var req ImportPlaylistParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.importPlaylist(ctx, userID, req)
	case "list_roadmaps":
		summaries, err := h.roadmaps.List(ctx, userID)
		if err != nil {
			return nil, mapError(err)
		}
		return summaryResponses(summaries), nil
	case "get_roadmap":
		var req GetRoadmapParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rm, err := h.roadmaps.Get(ctx, userID, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return rm, nil
	case "rename_roadmap":
		var req RenameRoadmapParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rm, err := h.roadmaps.Rename(ctx, userID, req.ID, req.Title)
		if err != nil {
			return nil, mapError(err)
		}
		return rm, nil
	case "delete_roadmap":
		var req DeleteRoadmapParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.roadmaps.Delete(ctx, userID, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "move_session":
		var req MoveSessionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rm, err := h.roadmaps.MoveSession(ctx, userID, req.RoadmapID, req.SessionID, req.TargetDay, req.TargetIndex)
		if err != nil {
			return nil, mapError(err)
		}
		return rm, nil
	case "reorder_session":
		var req ReorderSessionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rm, err := h.roadmaps.ReorderSession(ctx, userID, req.RoadmapID, req.SessionID, req.TargetIndex)
		if err != nil {
			return nil, mapError(err)
		}
		return rm, nil
	case "add_session":
		var req AddSessionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rm, err := h.roadmaps.AddSession(ctx, userID, req.RoadmapID, req.DayNumber, req.Title, req.DurationMinutes)
		if err != nil {
			return nil, mapError(err)
		}
		return rm, nil
	case "delete_session":
		var req DeleteSessionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rm, err := h.roadmaps.DeleteSession(ctx, userID, req.RoadmapID, req.SessionID)
		if err != nil {
			return nil, mapError(err)
		}
		return rm, nil
	case "toggle_session":
		var req ToggleSessionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rm, err := h.roadmaps.ToggleSession(ctx, userID, req.RoadmapID, req.SessionID)
		if err != nil {
			return nil, mapError(err)
		}
		return rm, nil
	case "add_day":
		var req AddDayParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rm, err := h.roadmaps.AddDay(ctx, userID, req.RoadmapID)
		if err != nil {
			return nil, mapError(err)
		}
		return rm, nil
	case "delete_day":
		var req DeleteDayParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rm, err := h.roadmaps.DeleteDay(ctx, userID, req.RoadmapID, req.DayNumber)
		if err != nil {
			return nil, mapError(err)
		}
		return rm, nil
	case "rebalance_roadmap":
		var req RebalanceRoadmapParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rm, err := h.roadmaps.Rebalance(ctx, userID, req.RoadmapID, req.DailyLimitMinutes)
		if err != nil {
			return nil, mapError(err)
		}
		return rm, nil
	case "get_stats":
		var req GetStatsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		stats, err := h.roadmaps.Stats(ctx, userID, req.RoadmapID)
		if err != nil {
			return nil, mapError(err)
		}
		return StatsResponse{
			TotalDays:         stats.TotalDays,
			CompletedDays:     stats.CompletedDays,
			TotalSessions:     stats.TotalSessions,
			CompletedSessions: stats.CompletedSessions,
			CurrentDayNumber:  stats.CurrentDayNumber,
			TotalMinutes:      stats.TotalMinutes,
		}, nil
	case "export_calendar":
		var req ExportCalendarParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.exportCalendar(ctx, userID, req)
	case "get_limit_presets":
		return PresetsResponse{
			Presets:        schedule.DailyLimitPresets,
			DefaultMinutes: schedule.DefaultDailyLimit,
		}, nil
	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

func (h *Handler) createRoadmap(ctx context.Context, userID string, req CreateRoadmapParams) (*roadmap.Roadmap, error) {
	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	items := make([]schedule.ImportItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, schedule.ImportItem{
			SourceID:        item.SourceID,
			Title:           item.Title,
			DurationMinutes: item.DurationMinutes,
		})
	}

	rm, err := h.roadmaps.Create(ctx, userID, roadmap.CreateRequest{
		Title:             req.Title,
		Description:       req.Description,
		DailyLimitMinutes: req.DailyLimitMinutes,
		StartDate:         startDate,
		Items:             items,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return rm, nil
}

func (h *Handler) importPlaylist(ctx context.Context, userID string, req ImportPlaylistParams) (*ImportPlaylistResponse, error) {
	pl, err := h.playlists.FetchPlaylist(ctx, req.URL)
	if err != nil {
		return nil, mapError(err)
	}

	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = pl.Title
	}

	items := make([]schedule.ImportItem, 0, len(pl.Videos))
	for _, v := range pl.Videos {
		items = append(items, schedule.ImportItem{
			SourceID:        v.ID,
			Title:           v.Title,
			DurationMinutes: v.DurationMinutes,
		})
	}

	rm, err := h.roadmaps.Create(ctx, userID, roadmap.CreateRequest{
		Title:             title,
		DailyLimitMinutes: req.DailyLimitMinutes,
		StartDate:         startDate,
		SourceURL:         req.URL,
		Items:             items,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &ImportPlaylistResponse{
		Roadmap:  rm,
		Playlist: playlistInfo(pl),
	}, nil
}

func (h *Handler) exportCalendar(ctx context.Context, userID string, req ExportCalendarParams) (*CalendarResponse, error) {
	rm, err := h.roadmaps.Get(ctx, userID, req.RoadmapID)
	if err != nil {
		return nil, mapError(err)
	}

	opts := ical.Options{StartHour: req.StartHour}
	if req.StartDate != "" {
		start, err := parseStartDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		opts.StartDate = *start
	} else if rm.StartDate != nil {
		opts.StartDate = *rm.StartDate
	}

	filename := strings.ToLower(strings.Join(strings.Fields(rm.Title), "-")) + "-schedule.ics"
	return &CalendarResponse{
		Filename: filename,
		Content:  ical.Render(rm.Title, rm.Days, opts),
	}, nil
}

func parseStartDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, &APIError{
			Code:         "INVALID_INPUT",
			Message:      fmt.Sprintf("invalid start_date %q, expected YYYY-MM-DD", value),
			RecoveryHint: "Use a date like 2026-03-01",
		}
	}
	return &parsed, nil
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
