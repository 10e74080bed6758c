package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
)

// AniList searches the AniList GraphQL API for anime and manga. No API key
// is required.
type AniList struct {
	baseURL string
	client  *http.Client
}

// NewAniList creates an AniList client.
func NewAniList() *AniList {
	return &AniList{
		baseURL: "https://graphql.anilist.co",
		client:  newHTTPClient(),
	}
}

const anilistQuery = `
query ($search: String, $type: MediaType) {
  Page(perPage: 10) {
    media(search: $search, type: $type) {
      id
      title { romaji english }
      startDate { year }
      coverImage { large }
      description
      averageScore
      episodes
      chapters
    }
  }
}`

var htmlTagRE = regexp.MustCompile(`<[^>]*>`)

type anilistMedia struct {
	ID    int `json:"id"`
	Title struct {
		Romaji  string `json:"romaji"`
		English string `json:"english"`
	} `json:"title"`
	StartDate struct {
		Year *int `json:"year"`
	} `json:"startDate"`
	CoverImage struct {
		Large string `json:"large"`
	} `json:"coverImage"`
	Description  string `json:"description"`
	AverageScore *int   `json:"averageScore"`
	Episodes     int    `json:"episodes"`
	Chapters     int    `json:"chapters"`
}

// SearchAnime queries AniList for anime.
func (a *AniList) SearchAnime(ctx context.Context, query string) ([]Result, error) {
	return a.search(ctx, query, "ANIME", "anime")
}

// SearchManga queries AniList for manga.
func (a *AniList) SearchManga(ctx context.Context, query string) ([]Result, error) {
	return a.search(ctx, query, "MANGA", "manga")
}

func (a *AniList) search(ctx context.Context, query, mediaType, kind string) ([]Result, error) {
	reqBody := map[string]any{
		"query": anilistQuery,
		"variables": map[string]any{
			"search": query,
			"type":   mediaType,
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anilist api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("anilist api status %d: %s", resp.StatusCode, respBody)
	}

	var result struct {
		Data struct {
			Page struct {
				Media []anilistMedia `json:"media"`
			} `json:"Page"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]Result, 0, len(result.Data.Page.Media))
	for _, m := range result.Data.Page.Media {
		title := m.Title.English
		if title == "" {
			title = m.Title.Romaji
		}
		year := "N/A"
		if m.StartDate.Year != nil {
			year = strconv.Itoa(*m.StartDate.Year)
		}
		overview := htmlTagRE.ReplaceAllString(m.Description, "")
		if overview == "" {
			overview = "No description"
		}
		var rating *float64
		if m.AverageScore != nil {
			r := float64(*m.AverageScore) / 10
			rating = &r
		}
		results = append(results, Result{
			ID:         fmt.Sprintf("anilist-%s-%d", kind, m.ID),
			ExternalID: strconv.Itoa(m.ID),
			Title:      title,
			Year:       year,
			Poster:     m.CoverImage.Large,
			Overview:   overview,
			Rating:     rating,
			Episodes:   m.Episodes,
			Chapters:   m.Chapters,
			MediaType:  kind,
		})
	}
	return results, nil
}
