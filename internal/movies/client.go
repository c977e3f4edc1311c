// Package movies is a thin client for the moviesminidatabase RapidAPI
// catalog. Every endpoint wraps its payload in a "results" field; the client
// hands that payload back mostly untouched so routes stay passthrough.
package movies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 10 * time.Second

var ErrNoResults = errors.New("no results")

// TitleMatch is the minimal shape shared by title and by-actor listings.
type TitleMatch struct {
	IMDBID string `json:"imdb_id"`
	Title  string `json:"title"`
}

type resultsEnvelope struct {
	Results json.RawMessage `json:"results"`
}

type Client struct {
	httpClient *http.Client
	apiKey     string
	apiHost    string
}

func NewClient(apiKey, apiHost string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		apiHost:    apiHost,
	}
}

// SearchFilmsByTitle returns the raw result entries for a free-text title.
func (c *Client) SearchFilmsByTitle(ctx context.Context, title string) ([]json.RawMessage, error) {
	return c.getResultList(ctx, "/movie/imdb_id/byTitle/"+url.PathEscape(title)+"/")
}

// SearchSeriesByTitle is the series twin of SearchFilmsByTitle.
func (c *Client) SearchSeriesByTitle(ctx context.Context, title string) ([]json.RawMessage, error) {
	return c.getResultList(ctx, "/series/imdb_id/byTitle/"+url.PathEscape(title)+"/")
}

// MovieByID returns the detail record for one imdb id.
func (c *Client) MovieByID(ctx context.Context, imdbID string) (json.RawMessage, error) {
	return c.getResults(ctx, "/movie/id/"+url.PathEscape(imdbID)+"/")
}

// ActorByID returns the detail record for one actor imdb id.
func (c *Client) ActorByID(ctx context.Context, imdbID string) (json.RawMessage, error) {
	return c.getResults(ctx, "/actor/id/"+url.PathEscape(imdbID)+"/")
}

// MoviesByActor lists the films credited to an actor. The upstream wraps
// each entry in a single-element array; this flattens them.
func (c *Client) MoviesByActor(ctx context.Context, actorID string) ([]TitleMatch, error) {
	entries, err := c.getResultList(ctx, "/movie/byActor/"+url.PathEscape(actorID)+"/")
	if err != nil {
		return nil, err
	}

	matches := make([]TitleMatch, 0, len(entries))
	for _, entry := range entries {
		var wrapped []TitleMatch
		if err := json.Unmarshal(entry, &wrapped); err != nil {
			return nil, fmt.Errorf("decode by-actor entry: %w", err)
		}
		if len(wrapped) == 0 {
			continue
		}
		matches = append(matches, wrapped[0])
	}

	if len(matches) == 0 {
		return nil, ErrNoResults
	}
	return matches, nil
}

func (c *Client) getResultList(ctx context.Context, path string) ([]json.RawMessage, error) {
	raw, err := c.getResults(ctx, path)
	if err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode results array: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoResults
	}
	return entries, nil
}

func (c *Client) getResults(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://"+c.apiHost+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("movie api returned status %d", resp.StatusCode)
	}

	var payload resultsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if len(payload.Results) == 0 || string(payload.Results) == "null" {
		return nil, ErrNoResults
	}
	return payload.Results, nil
}
