package models

import (
	"fmt"
	"strings"
)

// Record is the plain key-value form of a registry entity as it crosses the
// validation boundary: field name → raw value as decoded from JSON.
//
// Handlers decode request bodies into a Record, the validation layer inspects
// and sanitizes it, and only then is it mapped onto a typed entity such as
// [Resident]. Validators never mutate the Record they receive.
type Record map[string]any

// String returns the value of field rendered as a string.
// Non-string scalars are formatted with fmt; a missing or nil field
// yields the empty string.
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// IsEmpty reports whether field is absent, nil, or a blank string.
func (r Record) IsEmpty(field string) bool {
	v, ok := r[field]
	if !ok || v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Clone returns a shallow copy of the record. Used when a validation pass
// needs to attach sanitized replacement values without touching the input.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
