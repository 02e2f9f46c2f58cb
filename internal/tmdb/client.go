// Package tmdb talks to The Movie Database HTTP API.  The movie site uses it
// in two steps: a title search that returns candidate matches for the user to
// pick from, and a fetch by id that returns the full metadata of the chosen
// movie.  Handlers depend on the MovieSource interface so tests can inject a
// double instead of the real API.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	posterBaseURL  = "https://image.tmdb.org/t/p/w500"
)

// Candidate is one search result, carrying just enough for the user to
// disambiguate between movies with similar titles.
type Candidate struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

// Metadata is the full record for one movie as returned by the fetch-by-id
// endpoint.  Only the fields the site stores are decoded.
type Metadata struct {
	OriginalTitle string `json:"original_title"`
	ReleaseDate   string `json:"release_date"`
	Overview      string `json:"overview"`
	PosterPath    string `json:"poster_path"`
}

// Year extracts the release year, the prefix of ReleaseDate before the first
// "-" in a YYYY-MM-DD date.
func (m *Metadata) Year() (int, error) {
	prefix, _, _ := strings.Cut(m.ReleaseDate, "-")
	year, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, fmt.Errorf("tmdb: bad release date %q: %w", m.ReleaseDate, err)
	}
	return year, nil
}

// PosterURL composes the poster path into a full image URL.  It returns an
// empty string when the record carries no poster.
func (m *Metadata) PosterURL() string {
	if m.PosterPath == "" {
		return ""
	}
	return posterBaseURL + m.PosterPath
}

// MovieSource is the narrow provider interface handlers depend on.
type MovieSource interface {
	SearchByTitle(ctx context.Context, title string) ([]Candidate, error)
	FetchByID(ctx context.Context, id int64) (*Metadata, error)
}

// Client implements MovieSource against the real TMDB API.
type Client struct {
	baseURL string
	token   string // bearer credential, supplied by configuration
	http    *http.Client
}

// NewClient constructs a Client authenticating with the given bearer token.
// The underlying HTTP client carries a bounded timeout so a stalled provider
// surfaces as a server error instead of hanging the request.
func NewClient(token string) *Client {
	return NewClientWithBaseURL(defaultBaseURL, token)
}

// NewClientWithBaseURL is NewClient with an overridable API endpoint,
// primarily for pointing tests at a local stub server.
func NewClientWithBaseURL(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchByTitle queries the search endpoint and returns the candidate list,
// which may be empty when nothing matches.
func (c *Client) SearchByTitle(ctx context.Context, title string) ([]Candidate, error) {
	params := url.Values{
		"query":         {title},
		"include_adult": {"false"},
		"language":      {"en-US"},
		"page":          {"1"},
	}
	var body struct {
		Results []Candidate `json:"results"`
	}
	if err := c.get(ctx, "/search/movie?"+params.Encode(), &body); err != nil {
		return nil, err
	}
	return body.Results, nil
}

// FetchByID fetches the full metadata for one movie.  A response missing the
// fields the site relies on is treated as malformed and returned as an error.
func (c *Client) FetchByID(ctx context.Context, id int64) (*Metadata, error) {
	var m Metadata
	path := fmt.Sprintf("/movie/%d?language=en-US", id)
	if err := c.get(ctx, path, &m); err != nil {
		return nil, err
	}
	if m.OriginalTitle == "" || m.ReleaseDate == "" {
		return nil, fmt.Errorf("tmdb: movie %d: response missing expected fields", id)
	}
	return &m, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("tmdb: unexpected status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tmdb: decoding response: %w", err)
	}
	return nil
}
