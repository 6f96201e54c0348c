// Package playlist fetches YouTube playlist metadata and turns it into
// importable schedule items.
package playlist

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	playlistIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[?&]list=([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`youtube\.com/playlist\?list=([a-zA-Z0-9_-]+)`),
	}

	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	}

	isoDurationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)
)

// ExtractPlaylistID pulls the playlist ID out of a YouTube URL, or returns
// the empty string if the URL carries none.
func ExtractPlaylistID(url string) string {
	for _, p := range playlistIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// ExtractVideoID pulls the video ID out of watch, short-link, embed and
// shorts URLs.
func ExtractVideoID(url string) string {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// IsPlaylistURL reports whether the URL identifies a playlist.
func IsPlaylistURL(url string) bool {
	return ExtractPlaylistID(url) != ""
}

// ParseISODuration converts an ISO 8601 duration like PT1H23M45S to whole
// minutes, rounding up. Malformed input yields 0.
func ParseISODuration(iso string) int {
	m := isoDurationPattern.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}

	hours, _ := strconv.Atoi(zeroDefault(m[1]))
	minutes, _ := strconv.Atoi(zeroDefault(m[2]))
	seconds, _ := strconv.Atoi(zeroDefault(m[3]))

	total := hours*60 + minutes
	if seconds > 0 {
		total++
	}
	return total
}

func zeroDefault(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// FormatDuration renders minutes as "45m", "2h" or "2h 30m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}
