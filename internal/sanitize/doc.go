// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

// Package sanitize provides pure string-transformation functions that clean
// raw form input before validation and persistence.
//
// Core concepts:
//   - Sanitize: configurable general-purpose pipeline (unicode normalization,
//     trimming, HTML stripping/escaping, character allow-listing, truncation)
//     driven by an Options value.
//   - Domain sanitizers: Name, PhilSysNumber, Phone, Email, URL, SearchQuery,
//     Filename, DatabaseInput — each applies a character allow-list, a length
//     cap, and removal of destination-specific dangerous patterns.
//   - Deep: recursive application of a sanitizer to every string value of a
//     record, including nested maps and slices.
//
// Usage patterns:
//  1. Call a domain sanitizer on a single raw field before running its
//     format validator.
//  2. Call Deep on a whole decoded request body when every free-text field
//     must be cleaned with the same policy.
//
// All functions are total: they never fail, and non-string input to Deep is
// passed through untouched. Every domain sanitizer is idempotent, so
// re-sanitizing already-clean input is a no-op. Callers must pick the variant
// matching their destination (HTML-escaped for display, metacharacter-stripped
// for storage); the package does not auto-detect destinations.
package sanitize
