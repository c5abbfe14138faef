// Package providers looks up streaming availability for one title at a
// time. Lookups are best-effort: the search pipeline degrades a failed
// lookup to an empty provider list instead of failing the search.
package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelfinder/reelfinder/internal/config"
)

var (
	ErrAPIError = errors.New("providers API error")
)

// Client is a streaming availability client.
type Client struct {
	httpClient *http.Client
	config     config.ProvidersConfig
	logger     zerolog.Logger
}

// NewClient creates a new providers client.
func NewClient(cfg config.ProvidersConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "providers").Logger(),
	}
}

// lookupResponse is the availability payload. Services may be missing or
// malformed in older backends; both decode to nil and are treated as empty.
type lookupResponse struct {
	Services []string `json:"services"`
}

// Lookup returns the streaming services carrying the given title in the
// given country. A present but empty result is a valid answer; transport
// and status failures are errors for the caller to isolate.
func (c *Client) Lookup(ctx context.Context, title, country string) ([]string, error) {
	params := url.Values{}
	params.Set("title", title)
	params.Set("country", country)

	reqURL := fmt.Sprintf("%s/providers?%s", c.config.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		// A well-formed 200 with a malformed services field still counts
		// as "no providers known", matching the backend's loose contract.
		c.logger.Debug().Err(err).Str("title", title).Msg("Malformed providers payload, treating as empty")
		return []string{}, nil
	}

	if body.Services == nil {
		return []string{}, nil
	}

	c.logger.Debug().
		Str("title", title).
		Str("country", country).
		Int("services", len(body.Services)).
		Msg("Provider lookup completed")

	return body.Services, nil
}
