package mcp

import (
	"time"

	"github.com/seywell/daypack/internal/domain/roadmap"
	"github.com/seywell/daypack/internal/playlist"
)

type CreateRoadmapParams struct {
	Title             string        `json:"title"`
	Description       string        `json:"description,omitempty"`
	DailyLimitMinutes int           `json:"daily_limit_minutes,omitempty"`
	StartDate         string        `json:"start_date,omitempty"`
	Items             []SessionItem `json:"items"`
}

// SessionItem is one unit of study material supplied at creation time.
type SessionItem struct {
	SourceID        string `json:"source_id,omitempty"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
}

type ImportPlaylistParams struct {
	URL               string `json:"url"`
	Title             string `json:"title,omitempty"`
	DailyLimitMinutes int    `json:"daily_limit_minutes,omitempty"`
	StartDate         string `json:"start_date,omitempty"`
}

type GetRoadmapParams struct {
	ID string `json:"id"`
}

type RenameRoadmapParams struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type DeleteRoadmapParams struct {
	ID string `json:"id"`
}

type MoveSessionParams struct {
	RoadmapID   string `json:"roadmap_id"`
	SessionID   string `json:"session_id"`
	TargetDay   int    `json:"target_day"`
	TargetIndex int    `json:"target_index"`
}

type ReorderSessionParams struct {
	RoadmapID   string `json:"roadmap_id"`
	SessionID   string `json:"session_id"`
	TargetIndex int    `json:"target_index"`
}

type AddSessionParams struct {
	RoadmapID       string `json:"roadmap_id"`
	DayNumber       int    `json:"day_number"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
}

type DeleteSessionParams struct {
	RoadmapID string `json:"roadmap_id"`
	SessionID string `json:"session_id"`
}

type ToggleSessionParams struct {
	RoadmapID string `json:"roadmap_id"`
	SessionID string `json:"session_id"`
}

type AddDayParams struct {
	RoadmapID string `json:"roadmap_id"`
}

type DeleteDayParams struct {
	RoadmapID string `json:"roadmap_id"`
	DayNumber int    `json:"day_number"`
}

type RebalanceRoadmapParams struct {
	RoadmapID         string `json:"roadmap_id"`
	DailyLimitMinutes int    `json:"daily_limit_minutes"`
}

type GetStatsParams struct {
	RoadmapID string `json:"roadmap_id"`
}

type ExportCalendarParams struct {
	RoadmapID string `json:"roadmap_id"`
	StartDate string `json:"start_date,omitempty"`
	StartHour int    `json:"start_hour,omitempty"`
}

type RoadmapSummaryResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	DailyLimitMinutes int       `json:"daily_limit_minutes"`
	TotalDays         int       `json:"total_days"`
	TotalSessions     int       `json:"total_sessions"`
	CompletedSessions int       `json:"completed_sessions"`
	CreatedAt         time.Time `json:"created_at"`
}

type RoadmapListResponse struct {
	Roadmaps []RoadmapSummaryResponse `json:"roadmaps"`
}

type ImportPlaylistResponse struct {
	Roadmap  *roadmap.Roadmap `json:"roadmap"`
	Playlist PlaylistInfo     `json:"playlist"`
}

type PlaylistInfo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	VideoCount   int    `json:"video_count"`
	TotalMinutes int    `json:"total_minutes"`
	IsDemo       bool   `json:"is_demo,omitempty"`
}

type StatsResponse struct {
	TotalDays         int `json:"total_days"`
	CompletedDays     int `json:"completed_days"`
	TotalSessions     int `json:"total_sessions"`
	CompletedSessions int `json:"completed_sessions"`
	CurrentDayNumber  int `json:"current_day_number"`
	TotalMinutes      int `json:"total_minutes"`
}

type CalendarResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type PresetsResponse struct {
	Presets        []int `json:"presets"`
	DefaultMinutes int   `json:"default_minutes"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func summaryResponses(summaries []roadmap.Summary) []RoadmapSummaryResponse {
	resp := make([]RoadmapSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, RoadmapSummaryResponse{
			ID:                s.ID,
			Title:             s.Title,
			DailyLimitMinutes: s.DailyLimitMinutes,
			TotalDays:         s.TotalDays,
			TotalSessions:     s.TotalSessions,
			CompletedSessions: s.CompletedSessions,
			CreatedAt:         s.CreatedAt,
		})
	}
	return resp
}

func playlistInfo(pl *playlist.Playlist) PlaylistInfo {
	return PlaylistInfo{
		ID:           pl.ID,
		Title:        pl.Title,
		VideoCount:   len(pl.Videos),
		TotalMinutes: pl.TotalMinutes,
		IsDemo:       pl.IsDemo,
	}
}
