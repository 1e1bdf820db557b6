package music

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

const (
	// DefaultLimit is the result count requested when the caller passes none
	DefaultLimit = 10
	// MaxLimit caps the result count forwarded upstream
	MaxLimit = 25

	requestTimeout = 10 * time.Second
)

// Searcher finds songs matching a free-text query
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Song, error)
}

// Client queries the iTunes Search API
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a search client against the given base URL,
// e.g. "https://itunes.apple.com/search".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// searchResponse mirrors the fields we read from the upstream payload
type searchResponse struct {
	Results []struct {
		TrackName     string `json:"trackName"`
		ArtistName    string `json:"artistName"`
		ArtworkURL100 string `json:"artworkUrl100"`
		PreviewURL    string `json:"previewUrl"`
	} `json:"results"`
}

// Search looks up songs by name or artist
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.Song, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	params := url.Values{}
	params.Set("term", query)
	params.Set("media", "music")
	params.Set("entity", "song")
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("song search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("song search returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	songs := make([]domain.Song, 0, len(payload.Results))
	for _, r := range payload.Results {
		song := domain.Song{
			TrackName:  r.TrackName,
			ArtistName: r.ArtistName,
			ArtworkURL: r.ArtworkURL100,
			PreviewURL: r.PreviewURL,
		}
		if song.Empty() {
			continue
		}
		songs = append(songs, song)
	}
	return songs, nil
}
