package mcp

import (
	"errors"
	"fmt"

	"github.com/seywell/daypack/internal/domain/roadmap"
	"github.com/seywell/daypack/internal/domain/schedule"
	"github.com/seywell/daypack/internal/playlist"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, roadmap.ErrRoadmapNotFound):
		return &APIError{Code: "ROADMAP_NOT_FOUND", Message: "roadmap not found", RecoveryHint: "Call list_roadmaps to see available roadmaps"}
	case errors.Is(err, schedule.ErrSessionNotFound):
		return &APIError{Code: "SESSION_NOT_FOUND", Message: "session not found", RecoveryHint: "Call get_roadmap to see current session IDs"}
	case errors.Is(err, schedule.ErrDayNotFound):
		return &APIError{Code: "DAY_NOT_FOUND", Message: "day not found", RecoveryHint: "Check the day number against get_roadmap"}
	case errors.Is(err, schedule.ErrLastDay):
		return &APIError{Code: "LAST_DAY", Message: "cannot delete the only remaining day", RecoveryHint: "Delete the roadmap instead"}
	case errors.Is(err, schedule.ErrInvalidLimit):
		return &APIError{Code: "INVALID_LIMIT", Message: "daily limit must be a positive number of minutes", RecoveryHint: "Call get_limit_presets for suggested values"}
	case errors.Is(err, schedule.ErrInvalidInput), errors.Is(err, roadmap.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, playlist.ErrInvalidURL):
		return &APIError{Code: "INVALID_PLAYLIST_URL", Message: "invalid playlist URL", RecoveryHint: "Provide a YouTube URL containing a list= parameter"}
	case errors.Is(err, playlist.ErrPlaylistNotFound):
		return &APIError{Code: "PLAYLIST_NOT_FOUND", Message: "playlist not found", RecoveryHint: "Check that the playlist is public"}
	default:
		return nil
	}
}
