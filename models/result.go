// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

package models

// FieldResult is the outcome of validating a single field.
//
// Invariants:
//   - Error is non-empty whenever Valid is false;
//   - Sanitized, when non-nil, carries the same semantic type as the input
//     value it replaces;
//   - a Warning may coexist with Valid == true.
type FieldResult struct {
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
	Warning   string `json:"warning,omitempty"`
	Sanitized any    `json:"sanitized,omitempty"`
}

// Result is the outcome of validating an entire record. It is the single
// canonical result shape used everywhere in the application; adapters for
// differently-shaped callers belong at the caller's boundary, not here.
//
// Invariants:
//   - Valid is true if and only if Errors is empty;
//   - Warnings never affect Valid;
//   - Data is populated only on success and carries the input record merged
//     with any sanitized replacement values.
type Result struct {
	Valid    bool              `json:"valid"`
	Errors   map[string]string `json:"errors,omitempty"`
	Warnings map[string]string `json:"warnings,omitempty"`
	Data     Record            `json:"data,omitempty"`
}

// FieldError is the flat list form of one validation failure, convenient for
// table-driven UI rendering and log output.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// FormField is the synthetic error key used when a cross-field failure is not
// attributable to a single field.
const FormField = "_form"

// PipelineField is the synthetic error key used when a stage of a validation
// pipeline faults rather than merely failing.
const PipelineField = "_pipeline"

// ValidResult returns a successful Result carrying data.
func ValidResult(data Record) Result {
	return Result{Valid: true, Data: data}
}

// InvalidResult returns a failed Result with a single error entry.
func InvalidResult(field, message string) Result {
	return Result{Valid: false, Errors: map[string]string{field: message}}
}

// AddError records message under field and flips Valid to false.
// The first message recorded for a field wins; later ones are ignored,
// matching the per-field short-circuit of the validation loop.
func (r *Result) AddError(field, message string) {
	if r.Errors == nil {
		r.Errors = make(map[string]string)
	}
	if _, exists := r.Errors[field]; !exists {
		r.Errors[field] = message
	}
	r.Valid = false
}

// AddWarning records message under field without affecting Valid.
func (r *Result) AddWarning(field, message string) {
	if r.Warnings == nil {
		r.Warnings = make(map[string]string)
	}
	r.Warnings[field] = message
}
