// Package youtube wraps the YouTube Data API v3 for finding sports
// highlight videos.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrQuota is returned when the API rejects a request because the daily
// quota is exhausted or the key is invalid. Callers can surface it as a
// retry-later condition.
var ErrQuota = errors.New("youtube api quota exceeded or invalid key")

// Video is one highlight search result.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	Thumbnail    string `json:"thumbnail"`
	PublishedAt  string `json:"publishedAt"`
	ChannelTitle string `json:"channelTitle"`
	Description  string `json:"description,omitempty"`
	Duration     string `json:"duration,omitempty"`
}

type Client struct {
	key       string
	searchURL string
	videosURL string
	client    *http.Client
}

func New(key string) *Client {
	return &Client{
		key:       key,
		searchURL: "https://www.googleapis.com/youtube/v3/search",
		videosURL: "https://www.googleapis.com/youtube/v3/videos",
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether an API key is set. Highlight routes return
// an explicit error instead of demo data when it is not.
func (c *Client) Configured() bool {
	return c.key != ""
}

// BuildQuery assembles the search string for a team's highlights. Date is
// an optional YYYY-MM-DD value rendered in long form, which matches how
// broadcasters title their uploads.
func BuildQuery(team, sport, date string) string {
	q := team + " highlights"
	if sport != "" {
		q += " " + sport
	}
	if date != "" {
		if t, err := time.Parse("2006-01-02", date); err == nil {
			q += " " + t.Format("January 2, 2006")
		}
	}
	return q
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			PublishedAt  string `json:"publishedAt"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// Search runs a video search and annotates each result with its duration.
// Results published before publishedAfter are excluded by the API itself.
func (c *Client) Search(ctx context.Context, query string, maxResults int, publishedAfter time.Time) ([]Video, error) {
	if !c.Configured() {
		return nil, errors.New("youtube api key not configured")
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	q := url.Values{}
	q.Set("key", c.key)
	q.Set("q", query)
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("maxResults", strconv.Itoa(maxResults))
	q.Set("order", "date")
	q.Set("safeSearch", "none")
	if !publishedAfter.IsZero() {
		q.Set("publishedAfter", publishedAfter.UTC().Format(time.RFC3339))
	}

	var sr searchResponse
	if err := c.get(ctx, c.searchURL, q, &sr); err != nil {
		return nil, err
	}
	if len(sr.Items) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(sr.Items))
	for _, item := range sr.Items {
		ids = append(ids, item.ID.VideoID)
	}
	durations, err := c.durations(ctx, ids)
	if err != nil {
		// Durations are decoration. The search result is still useful.
		durations = map[string]string{}
	}

	videos := make([]Video, 0, len(sr.Items))
	for _, item := range sr.Items {
		thumb := item.Snippet.Thumbnails.Medium.URL
		if thumb == "" {
			thumb = item.Snippet.Thumbnails.Default.URL
		}
		dur := durations[item.ID.VideoID]
		if dur == "" {
			dur = "N/A"
		}
		videos = append(videos, Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			URL:          "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Thumbnail:    thumb,
			PublishedAt:  item.Snippet.PublishedAt,
			ChannelTitle: item.Snippet.ChannelTitle,
			Description:  item.Snippet.Description,
			Duration:     dur,
		})
	}
	return videos, nil
}

func (c *Client) durations(ctx context.Context, ids []string) (map[string]string, error) {
	q := url.Values{}
	q.Set("key", c.key)
	q.Set("id", strings.Join(ids, ","))
	q.Set("part", "contentDetails")

	var vr videosResponse
	if err := c.get(ctx, c.videosURL, q, &vr); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(vr.Items))
	for _, item := range vr.Items {
		out[item.ID] = formatDuration(item.ContentDetails.Duration)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("youtube api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode == http.StatusForbidden {
		return ErrQuota
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube api status %d: %s", resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

var durationRE = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// formatDuration converts an ISO 8601 duration like PT4M13S into a
// display string like 4:13.
func formatDuration(iso string) string {
	m := durationRE.FindStringSubmatch(iso)
	if m == nil {
		return "N/A"
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
