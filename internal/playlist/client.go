package playlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	apiBaseURL = "https://www.googleapis.com/youtube/v3"

	// Pagination stops once this many videos have been collected.
	maxVideos = 200
)

var (
	ErrInvalidURL       = errors.New("invalid playlist URL")
	ErrPlaylistNotFound = errors.New("playlist not found")
)

// Video is one playlist entry with its duration already rounded to minutes.
type Video struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
}

// Playlist is the fetched playlist metadata.
type Playlist struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Videos       []Video `json:"videos"`
	TotalMinutes int     `json:"total_duration"`
	IsDemo       bool    `json:"is_demo,omitempty"`
}

// Client talks to the YouTube Data API. With no API key configured it
// serves a fixed demo playlist so the rest of the system stays usable.
type Client struct {
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// FetchPlaylist resolves a playlist URL to its title and videos.
func (c *Client) FetchPlaylist(ctx context.Context, playlistURL string) (*Playlist, error) {
	if !IsPlaylistURL(playlistURL) {
		if ExtractVideoID(playlistURL) != "" {
			return nil, fmt.Errorf("%w: URL points to a single video, not a playlist", ErrInvalidURL)
		}
		return nil, ErrInvalidURL
	}
	playlistID := ExtractPlaylistID(playlistURL)

	if c.apiKey == "" {
		c.logger.Info("no YouTube API key configured, serving demo playlist")
		return demoPlaylist(playlistID), nil
	}

	title, err := c.fetchPlaylistTitle(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	videos, err := c.fetchVideos(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, v := range videos {
		total += v.DurationMinutes
	}

	return &Playlist{
		ID:           playlistID,
		Title:        title,
		Videos:       videos,
		TotalMinutes: total,
	}, nil
}

func (c *Client) fetchPlaylistTitle(ctx context.Context, playlistID string) (string, error) {
	var resp struct {
		Items []struct {
			Snippet struct {
				Title string `json:"title"`
			} `json:"snippet"`
		} `json:"items"`
	}

	params := url.Values{"part": {"snippet"}, "id": {playlistID}}
	if err := c.get(ctx, "/playlists", params, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", ErrPlaylistNotFound
	}
	return resp.Items[0].Snippet.Title, nil
}

func (c *Client) fetchVideos(ctx context.Context, playlistID string) ([]Video, error) {
	var videos []Video
	pageToken := ""

	for {
		var page struct {
			NextPageToken string `json:"nextPageToken"`
			Items         []struct {
				ContentDetails struct {
					VideoID string `json:"videoId"`
				} `json:"contentDetails"`
			} `json:"items"`
		}

		params := url.Values{
			"part":       {"snippet,contentDetails"},
			"maxResults": {"50"},
			"playlistId": {playlistID},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}
		if err := c.get(ctx, "/playlistItems", params, &page); err != nil {
			return nil, err
		}

		if len(page.Items) > 0 {
			ids := make([]string, 0, len(page.Items))
			for _, item := range page.Items {
				ids = append(ids, item.ContentDetails.VideoID)
			}

			details, err := c.fetchVideoDetails(ctx, ids)
			if err != nil {
				return nil, err
			}
			videos = append(videos, details...)
		}

		pageToken = page.NextPageToken
		if pageToken == "" || len(videos) >= maxVideos {
			break
		}
	}

	return videos, nil
}

func (c *Client) fetchVideoDetails(ctx context.Context, ids []string) ([]Video, error) {
	var resp struct {
		Items []struct {
			ID      string `json:"id"`
			Snippet struct {
				Title      string `json:"title"`
				Thumbnails struct {
					Medium struct {
						URL string `json:"url"`
					} `json:"medium"`
				} `json:"thumbnails"`
			} `json:"snippet"`
			ContentDetails struct {
				Duration string `json:"duration"`
			} `json:"contentDetails"`
		} `json:"items"`
	}

	params := url.Values{
		"part": {"contentDetails,snippet"},
		"id":   {strings.Join(ids, ",")},
	}
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		minutes := ParseISODuration(item.ContentDetails.Duration)
		if minutes < 1 {
			minutes = 1
		}
		videos = append(videos, Video{
			ID:              item.ID,
			Title:           item.Snippet.Title,
			DurationMinutes: minutes,
			ThumbnailURL:    item.Snippet.Thumbnails.Medium.URL,
		})
	}
	return videos, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube api %s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func demoPlaylist(playlistID string) *Playlist {
	videos := []Video{
		{ID: "demo1", Title: "Introduction to the Course", DurationMinutes: 15},
		{ID: "demo2", Title: "Setting Up Your Environment", DurationMinutes: 12},
		{ID: "demo3", Title: "Core Concepts - Part 1", DurationMinutes: 25},
		{ID: "demo4", Title: "Core Concepts - Part 2", DurationMinutes: 22},
		{ID: "demo5", Title: "Hands-On Practice Session", DurationMinutes: 30},
		{ID: "demo6", Title: "Advanced Techniques", DurationMinutes: 28},
		{ID: "demo7", Title: "Real-World Project", DurationMinutes: 45},
		{ID: "demo8", Title: "Best Practices & Tips", DurationMinutes: 18},
		{ID: "demo9", Title: "Common Mistakes to Avoid", DurationMinutes: 15},
		{ID: "demo10", Title: "Final Project & Wrap-Up", DurationMinutes: 35},
	}

	total := 0
	for _, v := range videos {
		total += v.DurationMinutes
	}

	return &Playlist{
		ID:           playlistID,
		Title:        "Demo Learning Playlist",
		Videos:       videos,
		TotalMinutes: total,
		IsDemo:       true,
	}
}
