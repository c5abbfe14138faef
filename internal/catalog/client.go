// Package catalog talks to the movie catalog service: filtered search
// plus the genre vocabulary.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelfinder/reelfinder/internal/config"
	"github.com/reelfinder/reelfinder/internal/filter"
)

var (
	ErrAPIError = errors.New("catalog API error")
)

// Client is a catalog service client.
type Client struct {
	httpClient *http.Client
	config     config.CatalogConfig
	logger     zerolog.Logger
}

// NewClient creates a new catalog client.
func NewClient(cfg config.CatalogConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Search runs a filtered catalog query and returns the matching movies.
// The response is either a bare JSON array or an envelope object with a
// "movies" array; both are accepted.
func (c *Client) Search(ctx context.Context, filters *filter.Filters) ([]Movie, error) {
	reqURL := fmt.Sprintf("%s/search?%s", c.config.BaseURL, filters.Encode())

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	movies, err := decodeMovies(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	c.logger.Debug().
		Int("results", len(movies)).
		Str("query", filters.Encode()).
		Msg("Catalog search completed")

	return movies, nil
}

// Genres fetches the genre vocabulary as a JSON array of strings.
func (c *Client) Genres(ctx context.Context) ([]string, error) {
	reqURL := fmt.Sprintf("%s/genres", c.config.BaseURL)

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var genres []string
	if err := json.Unmarshal(body, &genres); err != nil {
		return nil, fmt.Errorf("failed to decode genres response: %w", err)
	}

	c.logger.Debug().Int("genres", len(genres)).Msg("Fetched genre vocabulary")

	return genres, nil
}

// doRequest performs an HTTP GET and returns the raw response body.
func (c *Client) doRequest(ctx context.Context, reqURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", reqURL).Msg("HTTP request failed")
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			c.logger.Error().
				Int("status", resp.StatusCode).
				Str("message", errResp.Error).
				Msg("Catalog API error")
			return nil, fmt.Errorf("%w: %s (status %d)", ErrAPIError, errResp.Error, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
	}

	var body json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}

// decodeMovies accepts either a bare array of movies or an envelope
// object containing one.
func decodeMovies(body json.RawMessage) ([]Movie, error) {
	var movies []Movie
	if err := json.Unmarshal(body, &movies); err == nil {
		return movies, nil
	}

	var envelope searchEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if envelope.Movies == nil {
		return []Movie{}, nil
	}
	return envelope.Movies, nil
}
