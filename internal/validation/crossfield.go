package validation

import (
	"fmt"
	"time"

	"github.com/jdcruz/rbi-registry/models"
)

// CrossFieldRule is a named check spanning two or more fields of one record.
// Rules run strictly after every per-field validator has passed, in the
// order they were registered, and may attach errors or warnings to any field
// key — including the synthetic models.FormField when the failure is not
// attributable to a single field.
type CrossFieldRule func(ctx Context, rec models.Record) models.Result

// FieldsMatch fails when the two fields hold different values, attaching the
// message to fieldB (the confirmation field by convention).
func FieldsMatch(fieldA, fieldB, message string) CrossFieldRule {
	if message == "" {
		message = fmt.Sprintf("%s must match %s", HumanizeField(fieldB), HumanizeField(fieldA))
	}
	return func(_ Context, rec models.Record) models.Result {
		if rec.String(fieldA) != rec.String(fieldB) {
			return models.InvalidResult(fieldB, message)
		}
		return models.ValidResult(nil)
	}
}

// AtLeastOneRequired fails when every listed field is empty, attaching the
// message to each of them so the UI highlights the whole group.
func AtLeastOneRequired(fields []string, message string) CrossFieldRule {
	if message == "" {
		message = "At least one of these fields is required"
	}
	return func(_ Context, rec models.Record) models.Result {
		for _, f := range fields {
			if !rec.IsEmpty(f) {
				return models.ValidResult(nil)
			}
		}
		var out models.Result
		for _, f := range fields {
			out.AddError(f, message)
		}
		return out
	}
}

// ValidDateRange fails when both dates are present and start is after end.
// Unparseable dates pass: shape errors belong to the per-field Date
// validator, which has already run.
func ValidDateRange(startField, endField, message string) CrossFieldRule {
	if message == "" {
		message = fmt.Sprintf("%s must not be after %s", HumanizeField(startField), HumanizeField(endField))
	}
	return func(_ Context, rec models.Record) models.Result {
		if rec.IsEmpty(startField) || rec.IsEmpty(endField) {
			return models.ValidResult(nil)
		}

		start, err := time.Parse(DateLayout, rec.String(startField))
		if err != nil {
			return models.ValidResult(nil)
		}
		end, err := time.Parse(DateLayout, rec.String(endField))
		if err != nil {
			return models.ValidResult(nil)
		}

		if start.After(end) {
			return models.InvalidResult(startField, message)
		}
		return models.ValidResult(nil)
	}
}

// ConditionalRequired fails when triggerField has a value but requiredField
// does not.
func ConditionalRequired(triggerField, requiredField, message string) CrossFieldRule {
	if message == "" {
		message = fmt.Sprintf("%s is required when %s is provided",
			HumanizeField(requiredField), HumanizeField(triggerField))
	}
	return func(_ Context, rec models.Record) models.Result {
		if !rec.IsEmpty(triggerField) && rec.IsEmpty(requiredField) {
			return models.InvalidResult(requiredField, message)
		}
		return models.ValidResult(nil)
	}
}
