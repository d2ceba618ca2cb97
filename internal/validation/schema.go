// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

package validation

import (
	"context"

	"github.com/jdcruz/rbi-registry/internal/sanitize"
	"github.com/jdcruz/rbi-registry/models"
)

// fieldSpec is everything the schema knows about one field: an optional
// sanitizer applied before validation, the synchronous validator chain, and
// any async validators run by ValidateAsync.
type fieldSpec struct {
	sanitizer  sanitize.Func
	validators []FieldValidator
	async      []AsyncFieldValidator
}

// Schema aggregates per-field validator chains and ordered cross-field rules
// into a single callable validating a whole record.
//
// A Schema is built once at startup and holds no mutable state afterwards;
// it is safe for concurrent use from any number of in-flight validations.
// The builder methods return the receiver for chaining and must not be
// called after the schema is in use.
type Schema struct {
	fields map[string]*fieldSpec
	rules  []CrossFieldRule
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{fields: make(map[string]*fieldSpec)}
}

// Field declares validators for name, appending to any already declared.
// Validators run in the order given and stop at the first failure.
func (s *Schema) Field(name string, validators ...FieldValidator) *Schema {
	s.spec(name).validators = append(s.spec(name).validators, validators...)
	return s
}

// Sanitized attaches a sanitizer to name. The sanitizer runs before the
// field's validators, which then see the cleaned value; the cleaned value is
// also what Result.Data carries on success.
func (s *Schema) Sanitized(name string, fn sanitize.Func) *Schema {
	s.spec(name).sanitizer = fn
	return s
}

// AsyncField declares async validators for name, run only by ValidateAsync
// and only when the field's synchronous chain passed.
func (s *Schema) AsyncField(name string, validators ...AsyncFieldValidator) *Schema {
	s.spec(name).async = append(s.spec(name).async, validators...)
	return s
}

// Rules appends cross-field rules. Rules run strictly after all per-field
// checks succeed, in registration order.
func (s *Schema) Rules(rules ...CrossFieldRule) *Schema {
	s.rules = append(s.rules, rules...)
	return s
}

func (s *Schema) spec(name string) *fieldSpec {
	f, ok := s.fields[name]
	if !ok {
		f = &fieldSpec{}
		s.fields[name] = f
	}
	return f
}

// Validate runs the two-phase validation of rec:
//
//  1. Per-field phase: each declared field's sanitizer (if any) and validator
//     chain run against the record; the chain stops at that field's first
//     failure. Fields are independent of each other and their relative order
//     is unspecified.
//  2. Cross-field phase: only when no field produced an error, rules run in
//     order against the sanitized record, merging their errors and warnings.
//     Cross-field rules may target any key, including ones with no declared
//     validators.
//
// Validity is exactly "the error map is empty after both phases". On success
// the result's Data carries the input merged with sanitized values.
func (s *Schema) Validate(vctx Context, rec models.Record) models.Result {
	result, data := s.validateFields(vctx, rec)
	if !result.Valid {
		return result
	}

	s.applyRules(vctx, data, &result)
	if result.Valid {
		result.Data = data
	}
	return result
}

// ValidateAsync is Validate plus the async phase: after a field's
// synchronous chain passes, its async validators run in order, stopping at
// the field's first failure. Cross-field rules still run last and only on a
// clean record. Returns ctx.Err if the context is cancelled between checks;
// a fault inside one check degrades to a field error instead (see [Async]).
func (s *Schema) ValidateAsync(ctx context.Context, vctx Context, rec models.Record) (models.Result, error) {
	result, data := s.validateFields(vctx, rec)

	for name, spec := range s.fields {
		if len(spec.async) == 0 {
			continue
		}
		if _, failed := result.Errors[name]; failed {
			continue
		}
		if err := ctx.Err(); err != nil {
			return models.Result{}, err
		}

		value := data[name]
		for _, v := range spec.async {
			if msg := v(ctx, vctx, value, name, data); msg != "" {
				result.AddError(name, msg)
				break
			}
		}
	}

	if !result.Valid {
		return result, nil
	}

	s.applyRules(vctx, data, &result)
	if result.Valid {
		result.Data = data
	}
	return result, nil
}

// ValidateField runs a single field's sanitizer and synchronous validator
// chain against rec, leaving the rest of the schema untouched. The chain
// stops at the first failure, so Error carries at most one message.
// Sanitized is set only when a sanitizer actually rewrote a string value.
// A field the schema does not declare is trivially valid. rec is not
// mutated.
func (s *Schema) ValidateField(vctx Context, rec models.Record, name string) models.FieldResult {
	fieldResult := models.FieldResult{Valid: true}

	spec, ok := s.fields[name]
	if !ok {
		return fieldResult
	}

	value := rec[name]
	if spec.sanitizer != nil {
		if str, ok := value.(string); ok {
			value = spec.sanitizer(str)
			fieldResult.Sanitized = value
			rec = rec.Clone()
			rec[name] = value
		}
	}

	for _, v := range spec.validators {
		if msg := v(vctx, value, name, rec); msg != "" {
			fieldResult.Valid = false
			fieldResult.Error = msg
			break
		}
	}

	return fieldResult
}

// validateFields runs the per-field phase and returns the partial result
// alongside the sanitized copy of the record.
func (s *Schema) validateFields(vctx Context, rec models.Record) (models.Result, models.Record) {
	result := models.Result{Valid: true}
	data := rec.Clone()

	for name := range s.fields {
		fieldResult := s.ValidateField(vctx, data, name)
		if fieldResult.Sanitized != nil {
			data[name] = fieldResult.Sanitized
		}
		if !fieldResult.Valid {
			result.AddError(name, fieldResult.Error)
		}
	}

	return result, data
}

func (s *Schema) applyRules(vctx Context, data models.Record, result *models.Result) {
	for _, rule := range s.rules {
		ruleResult := rule(vctx, data)
		for field, msg := range ruleResult.Errors {
			result.AddError(field, msg)
		}
		for field, msg := range ruleResult.Warnings {
			result.AddWarning(field, msg)
		}
	}
}
