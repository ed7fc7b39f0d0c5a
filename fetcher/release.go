package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.discogs.com"

var (
	ErrReleaseNotFound = errors.New("release not found in Discogs database")
	ErrUnauthorized    = errors.New("error authorizing provided credentials")
	ErrMissingToken    = errors.New("a Discogs user token is required")
)

// TransportError covers everything between us and a usable response:
// network failures, unexpected statuses and bodies that do not decode.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("discogs request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("discogs request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage renders a lookup error for display.
func UserMessage(err error) string {
	var te *TransportError
	switch {
	case errors.Is(err, ErrReleaseNotFound):
		return "Release not found in Discogs database"
	case errors.Is(err, ErrUnauthorized):
		return "Error authorizing provided credentials (check your Discogs token)"
	case errors.Is(err, ErrMissingToken):
		return "No Discogs token configured"
	case errors.As(err, &te):
		return fmt.Sprintf("Failed to reach Discogs: %v", te)
	}
	return err.Error()
}

// Release is the subset of a Discogs release the tagger uses.
type Release struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Artists []string `json:"artists"`
	Styles  []string `json:"styles"`
	Genres  []string `json:"genres"`
	Labels  []string `json:"labels"`
	Year    int      `json:"year"`
	Tracks  []string `json:"tracks"`
}

func (r *Release) PrimaryArtist() string {
	return first(r.Artists)
}

// PrimaryStyle prefers the first style and falls back to the first genre
// for releases without styles.
func (r *Release) PrimaryStyle() string {
	if s := first(r.Styles); s != "" {
		return s
	}
	return first(r.Genres)
}

func (r *Release) PrimaryLabel() string {
	return first(r.Labels)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

type ReleaseFetcher interface {
	Fetch(ctx context.Context, id int) (*Release, error)
}

type releaseFetcher struct {
	client    *http.Client
	baseURL   string
	token     string
	userAgent string
}

func NewReleaseFetcher(token, userAgent string, timeout time.Duration) ReleaseFetcher {
	return NewReleaseFetcherWithBaseURL(DefaultBaseURL, token, userAgent, timeout)
}

func NewReleaseFetcherWithBaseURL(baseURL, token, userAgent string, timeout time.Duration) ReleaseFetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &releaseFetcher{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     strings.TrimSpace(token),
		userAgent: userAgent,
	}
}

var disambiguation = regexp.MustCompile(`\s+\(\d+\)$`)

func (rf *releaseFetcher) Fetch(ctx context.Context, id int) (*Release, error) {
	if rf.token == "" {
		return nil, ErrMissingToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/releases/%d", rf.baseURL, id), nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Authorization", "Discogs token="+rf.token)
	req.Header.Set("User-Agent", rf.userAgent)
	req.Header.Set("Accept", "application/vnd.discogs.v2.discogs+json")

	resp, err := rf.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrReleaseNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var response struct {
		ID      int    `json:"id"`
		Title   string `json:"title"`
		Year    int    `json:"year"`
		Artists []struct {
			Name string `json:"name"`
		} `json:"artists"`
		Labels []struct {
			Name string `json:"name"`
		} `json:"labels"`
		Styles    []string `json:"styles"`
		Genres    []string `json:"genres"`
		Tracklist []struct {
			Position string `json:"position"`
			Type     string `json:"type_"`
			Title    string `json:"title"`
		} `json:"tracklist"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to parse discogs response: %w", err)}
	}

	release := &Release{
		ID:     response.ID,
		Title:  response.Title,
		Year:   response.Year,
		Styles: response.Styles,
		Genres: response.Genres,
	}
	for _, a := range response.Artists {
		release.Artists = append(release.Artists, disambiguation.ReplaceAllString(a.Name, ""))
	}
	for _, l := range response.Labels {
		release.Labels = append(release.Labels, disambiguation.ReplaceAllString(l.Name, ""))
	}
	for _, t := range response.Tracklist {
		// Headings and index tracks carry no file of their own.
		if t.Type != "" && t.Type != "track" {
			continue
		}
		release.Tracks = append(release.Tracks, t.Title)
	}

	return release, nil
}
