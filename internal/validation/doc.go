// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

// Package validation provides the composable field- and record-level
// validation rules enforced on every registry submission.
//
// Core concepts:
//   - FieldValidator: a stateless function deciding whether a single value
//     satisfies one rule, returning "" on success or a human-readable
//     message on failure. Empty values pass every validator except Required,
//     deferring presence checks to Required alone.
//   - Combinators: Compose sequences validators with first-failure-wins
//     short-circuiting; When guards a validator behind a predicate; Async
//     wraps an external boolean check (e.g. a PSOC code lookup).
//   - Schema: binds field names to validator chains, optional sanitizers,
//     and ordered cross-field rules, producing a callable that validates a
//     whole record into a models.Result.
//   - Cross-field rules: named factories (FieldsMatch, AtLeastOneRequired,
//     ValidDateRange, ConditionalRequired) evaluated only after every
//     per-field check passes.
//   - Result utilities: merge, query, flatten, summarize, debounce, pipeline
//     and timeout helpers over models.Result.
//
// Usage patterns:
//  1. Build a Schema once at startup (see ResidentSchema, HouseholdSchema)
//     and share it freely; schemas and validators hold no mutable state.
//  2. Call Schema.Validate with a per-request Context; inspect Result.Valid
//     and Result.Errors. Invalid input is a data outcome, never an error.
//  3. Use Schema.ValidateAsync when the schema carries async validators;
//     faults inside an async check are downgraded to a generic field error
//     with the cause logged, so a single bad rule cannot crash the form.
package validation
