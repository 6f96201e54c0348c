package playlist_test

import (
	"context"
	"testing"

	"github.com/seywell/daypack/internal/playlist"
	"github.com/stretchr/testify/require"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/playlist?list=PLabc123_-XYZ", "PLabc123_-XYZ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLdef456", "PLdef456"},
		{"https://youtu.be/dQw4w9WgXcQ?list=PLghi789", "PLghi789"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", ""},
		{"not a url", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, playlist.ExtractPlaylistID(tt.url), tt.url)
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/playlist?list=PLabc", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, playlist.ExtractVideoID(tt.url), tt.url)
	}
}

func TestIsPlaylistURL(t *testing.T) {
	require.True(t, playlist.IsPlaylistURL("https://www.youtube.com/playlist?list=PLabc"))
	require.False(t, playlist.IsPlaylistURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		iso  string
		want int
	}{
		{"PT15M", 15},
		{"PT1H", 60},
		{"PT1H30M", 90},
		{"PT45S", 1},
		{"PT10M30S", 11},
		{"PT2H0M0S", 120},
		{"garbage", 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, playlist.ParseISODuration(tt.iso), tt.iso)
	}
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "45m", playlist.FormatDuration(45))
	require.Equal(t, "1h", playlist.FormatDuration(60))
	require.Equal(t, "2h 30m", playlist.FormatDuration(150))
}

func TestFetchPlaylist_DemoFallback(t *testing.T) {
	client := playlist.NewClient("", nil)

	pl, err := client.FetchPlaylist(context.Background(), "https://www.youtube.com/playlist?list=PLabc")
	require.NoError(t, err)
	require.True(t, pl.IsDemo)
	require.Equal(t, "Demo Learning Playlist", pl.Title)
	require.Len(t, pl.Videos, 10)
	require.Equal(t, 245, pl.TotalMinutes)
}
