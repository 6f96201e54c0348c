package mcp

import (
	"context"

	"github.com/seywell/daypack/internal/domain/roadmap"
	"github.com/seywell/daypack/internal/domain/schedule"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// handlerFor adapts a per-method function to the SDK tool handler shape,
// pulling the authenticated user out of the request context.
func handlerFor[In, Out any](fn func(ctx context.Context, userID string, in In) (Out, error)) sdkmcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, Out, error) {
		out, err := fn(ctx, getUserID(ctx), in)
		if err != nil {
			var zero Out
			return nil, zero, err
		}
		return nil, out, nil
	}
}

func registerTools(server *sdkmcp.Server, h *Handler) {
	// Roadmap lifecycle
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_roadmap",
		Description: "Create a learning roadmap from a list of study items, packed into days under a daily minute limit",
	}, handlerFor(func(ctx context.Context, userID string, in CreateRoadmapParams) (*roadmap.Roadmap, error) {
		return h.createRoadmap(ctx, userID, in)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_playlist",
		Description: "Import a YouTube playlist and build a day-by-day learning roadmap from its videos",
	}, handlerFor(func(ctx context.Context, userID string, in ImportPlaylistParams) (*ImportPlaylistResponse, error) {
		return h.importPlaylist(ctx, userID, in)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_roadmaps",
		Description: "List all roadmaps for the current user with progress counts",
	}, handlerFor(func(ctx context.Context, userID string, _ struct{}) (*RoadmapListResponse, error) {
		summaries, err := h.roadmaps.List(ctx, userID)
		if err != nil {
			return nil, mapError(err)
		}
		return &RoadmapListResponse{Roadmaps: summaryResponses(summaries)}, nil
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_roadmap",
		Description: "Get a roadmap with its full day-by-day schedule",
	}, handlerFor(func(ctx context.Context, userID string, in GetRoadmapParams) (*roadmap.Roadmap, error) {
		rm, err := h.roadmaps.Get(ctx, userID, in.ID)
		return rm, mapError(err)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "rename_roadmap",
		Description: "Rename a roadmap",
	}, handlerFor(func(ctx context.Context, userID string, in RenameRoadmapParams) (*roadmap.Roadmap, error) {
		rm, err := h.roadmaps.Rename(ctx, userID, in.ID, in.Title)
		return rm, mapError(err)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_roadmap",
		Description: "Delete a roadmap and all of its days and sessions",
	}, handlerFor(func(ctx context.Context, userID string, in DeleteRoadmapParams) (StatusResponse, error) {
		if err := h.roadmaps.Delete(ctx, userID, in.ID); err != nil {
			return StatusResponse{}, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	}))

	// Schedule mutations
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_session",
		Description: "Move a session to a position within a target day, possibly a different one",
	}, handlerFor(func(ctx context.Context, userID string, in MoveSessionParams) (*roadmap.Roadmap, error) {
		rm, err := h.roadmaps.MoveSession(ctx, userID, in.RoadmapID, in.SessionID, in.TargetDay, in.TargetIndex)
		return rm, mapError(err)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "reorder_session",
		Description: "Move a session to a new position within its own day",
	}, handlerFor(func(ctx context.Context, userID string, in ReorderSessionParams) (*roadmap.Roadmap, error) {
		rm, err := h.roadmaps.ReorderSession(ctx, userID, in.RoadmapID, in.SessionID, in.TargetIndex)
		return rm, mapError(err)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_session",
		Description: "Add a custom session to the end of a day",
	}, handlerFor(func(ctx context.Context, userID string, in AddSessionParams) (*roadmap.Roadmap, error) {
		rm, err := h.roadmaps.AddSession(ctx, userID, in.RoadmapID, in.DayNumber, in.Title, in.DurationMinutes)
		return rm, mapError(err)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_session",
		Description: "Delete a session from its day",
	}, handlerFor(func(ctx context.Context, userID string, in DeleteSessionParams) (*roadmap.Roadmap, error) {
		rm, err := h.roadmaps.DeleteSession(ctx, userID, in.RoadmapID, in.SessionID)
		return rm, mapError(err)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_session",
		Description: "Toggle a session's completion state; day completion is recomputed from its sessions",
	}, handlerFor(func(ctx context.Context, userID string, in ToggleSessionParams) (*roadmap.Roadmap, error) {
		rm, err := h.roadmaps.ToggleSession(ctx, userID, in.RoadmapID, in.SessionID)
		return rm, mapError(err)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_day",
		Description: "Append an empty day to the end of the schedule",
	}, handlerFor(func(ctx context.Context, userID string, in AddDayParams) (*roadmap.Roadmap, error) {
		rm, err := h.roadmaps.AddDay(ctx, userID, in.RoadmapID)
		return rm, mapError(err)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_day",
		Description: "Delete a day and its sessions; remaining days are renumbered",
	}, handlerFor(func(ctx context.Context, userID string, in DeleteDayParams) (*roadmap.Roadmap, error) {
		rm, err := h.roadmaps.DeleteDay(ctx, userID, in.RoadmapID, in.DayNumber)
		return rm, mapError(err)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "rebalance_roadmap",
		Description: "Repack all sessions into days under a new daily minute limit, preserving order and completion",
	}, handlerFor(func(ctx context.Context, userID string, in RebalanceRoadmapParams) (*roadmap.Roadmap, error) {
		rm, err := h.roadmaps.Rebalance(ctx, userID, in.RoadmapID, in.DailyLimitMinutes)
		return rm, mapError(err)
	}))

	// Reporting
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_stats",
		Description: "Get progress statistics for a roadmap",
	}, handlerFor(func(ctx context.Context, userID string, in GetStatsParams) (StatsResponse, error) {
		stats, err := h.roadmaps.Stats(ctx, userID, in.RoadmapID)
		if err != nil {
			return StatsResponse{}, mapError(err)
		}
		return StatsResponse{
			TotalDays:         stats.TotalDays,
			CompletedDays:     stats.CompletedDays,
			TotalSessions:     stats.TotalSessions,
			CompletedSessions: stats.CompletedSessions,
			CurrentDayNumber:  stats.CurrentDayNumber,
			TotalMinutes:      stats.TotalMinutes,
		}, nil
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_calendar",
		Description: "Export a roadmap as an iCalendar (.ics) document with one event per study day",
	}, handlerFor(func(ctx context.Context, userID string, in ExportCalendarParams) (*CalendarResponse, error) {
		return h.exportCalendar(ctx, userID, in)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_limit_presets",
		Description: "Get the suggested daily limit presets and the default limit in minutes",
	}, handlerFor(func(ctx context.Context, userID string, _ struct{}) (PresetsResponse, error) {
		return PresetsResponse{
			Presets:        schedule.DailyLimitPresets,
			DefaultMinutes: schedule.DefaultDailyLimit,
		}, nil
	}))
}
