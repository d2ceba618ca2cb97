// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

package psoc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jdcruz/rbi-registry/internal/config"
	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	cfg := config.PSOC{BaseURL: serverURL, RequestTimeout: 2 * time.Second}

	c, err := NewClient(cfg, logger.Nop())
	require.NoError(t, err)
	return c
}

// ── NewClient ───────────────────────────────────────────────────────────────

func TestNewClient_EmptyBaseURL(t *testing.T) {
	_, err := NewClient(config.PSOC{}, logger.Nop())
	require.Error(t, err)
}

func TestNewClient_SchemelessBaseURL(t *testing.T) {
	c, err := NewClient(config.PSOC{BaseURL: "psoc.psa.gov.ph/api"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, c)
}

// ── Exists ──────────────────────────────────────────────────────────────────

func TestExists_KnownCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/occupations/2221", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Occupation{Code: "2221", Title: "Nursing Professionals"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	ok, err := c.Exists(context.Background(), "2221")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExists_UnknownCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	ok, err := c.Exists(context.Background(), "9999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExists_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.Exists(context.Background(), "2221")
	require.Error(t, err)
}

func TestExists_CacheHitSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(Occupation{Code: "2221"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	ok, err := c.Exists(context.Background(), "2221")
	require.NoError(t, err)
	require.True(t, ok)

	// second lookup served from cache
	ok, err = c.Exists(context.Background(), "2221")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, calls)
}

// ── RefreshCatalog ──────────────────────────────────────────────────────────

func TestRefreshCatalog_ReplacesCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/occupations", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Occupation{
			{Code: "2221", Title: "Nursing Professionals"},
			{Code: "6111", Title: "Field Crop Farmers"},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	require.NoError(t, c.RefreshCatalog(context.Background()))
	assert.Equal(t, 2, c.CachedCodes())

	ok, err := c.Exists(context.Background(), "6111")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRefreshCatalog_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	require.Error(t, c.RefreshCatalog(context.Background()))
	assert.Zero(t, c.CachedCodes())
}
