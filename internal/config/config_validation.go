// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

package config

import (
	"fmt"
	"time"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultDriver         = "pgx"
	defaultTokenIssuer    = "rbi-registry"
	defaultTokenDuration  = 8 * time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultPSOCTimeout    = 5 * time.Second
	defaultVersion        = "N/A"
)

func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = defaultDriver
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.App.Version == "" {
		c.App.Version = defaultVersion
	}
	if c.PSOC.RequestTimeout == 0 {
		c.PSOC.RequestTimeout = defaultPSOCTimeout
	}
}

func (c *StructuredConfig) validate() error {
	if c.Storage.DSN == "" {
		return ErrNoDSNProvided
	}
	if c.Storage.Driver != "pgx" && c.Storage.Driver != "sqlite3" {
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}
	if c.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if c.Server.RequestTimeout < 0 || c.PSOC.RequestTimeout < 0 {
		return ErrNonPositiveTimeout
	}

	return nil
}
