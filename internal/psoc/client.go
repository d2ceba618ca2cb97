// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

// Package psoc talks to the Philippine Standard Occupational Classification
// search service. The registry uses it to verify occupation codes entered by
// encoders and to keep a warm local cache of known codes so validation stays
// responsive when the PSA endpoint is slow.
package psoc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/jdcruz/rbi-registry/internal/config"
	"github.com/jdcruz/rbi-registry/internal/logger"
)

// Occupation is a single PSOC catalog entry.
type Occupation struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// Client queries the PSOC search API over HTTP and caches known codes.
type Client struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	cache map[string]struct{}
}

// NewClient constructs a PSOC client. It normalises and validates the base
// URL from cfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewClient(cfg config.PSOC, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid psoc base url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &Client{
		client: cli,
		logger: log,
		cache:  make(map[string]struct{}),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Exists reports whether code is a known PSOC occupation code. The warm cache
// is consulted first; a miss falls through to GET /occupations/{code}.
//
// A 404 from the service means the code is unknown, not an error. Any other
// non-2xx status or transport failure is returned as an error so callers can
// distinguish "invalid code" from "could not check".
func (c *Client) Exists(ctx context.Context, code string) (bool, error) {
	c.mu.RLock()
	_, cached := c.cache[code]
	c.mu.RUnlock()
	if cached {
		return true, nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("code", code).
		Get("/occupations/{code}")
	if err != nil {
		return false, fmt.Errorf("psoc lookup request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		c.mu.Lock()
		c.cache[code] = struct{}{}
		c.mu.Unlock()
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("psoc lookup: unexpected status %d", resp.StatusCode())
	}
}

// RefreshCatalog replaces the warm cache with the full code list from
// GET /occupations. Called by the catalog refresher worker on its interval.
func (c *Client) RefreshCatalog(ctx context.Context) error {
	var catalog []Occupation

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&catalog).
		Get("/occupations")
	if err != nil {
		return fmt.Errorf("psoc catalog request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("psoc catalog: unexpected status %d", resp.StatusCode())
	}

	fresh := make(map[string]struct{}, len(catalog))
	for _, occ := range catalog {
		fresh[occ.Code] = struct{}{}
	}

	c.mu.Lock()
	c.cache = fresh
	c.mu.Unlock()

	c.logger.Debug().
		Str("func", "*Client.RefreshCatalog").
		Int("codes", len(fresh)).
		Msg("psoc catalog cache refreshed")

	return nil
}

// CachedCodes returns the number of codes currently held in the warm cache.
func (c *Client) CachedCodes() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
