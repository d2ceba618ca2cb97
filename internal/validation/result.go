package validation

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/jdcruz/rbi-registry/models"
)

// Merge unions results into one: error and warning maps are merged with the
// first message per field winning, data payloads shallow-override earlier
// ones, and the merged result is valid only when every input was.
func Merge(results ...models.Result) models.Result {
	out := models.Result{Valid: true}

	for _, r := range results {
		for field, msg := range r.Errors {
			out.AddError(field, msg)
		}
		for field, msg := range r.Warnings {
			out.AddWarning(field, msg)
		}
		if r.Data != nil {
			if out.Data == nil {
				out.Data = models.Record{}
			}
			for k, v := range r.Data {
				out.Data[k] = v
			}
		}
	}

	return out
}

// ErrorFields lists the names of fields carrying errors, sorted for
// deterministic output.
func ErrorFields(r models.Result) []string {
	fields := make([]string, 0, len(r.Errors))
	for f := range r.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// HasFieldError reports whether field carries an error.
func HasFieldError(r models.Result, field string) bool {
	_, ok := r.Errors[field]
	return ok
}

// FieldErrorOf returns field's error message, or "" when the field is clean.
func FieldErrorOf(r models.Result, field string) string {
	return r.Errors[field]
}

// HasWarnings reports whether the result carries any warnings.
func HasWarnings(r models.Result) bool {
	return len(r.Warnings) > 0
}

// Flatten converts the error map into a flat, sorted list of field errors
// for table-driven rendering. The code is "required" for presence failures
// and "invalid" otherwise.
func Flatten(r models.Result) []models.FieldError {
	out := make([]models.FieldError, 0, len(r.Errors))
	for _, field := range ErrorFields(r) {
		msg := r.Errors[field]
		code := "invalid"
		if msg == MsgRequired {
			code = "required"
		}
		out = append(out, models.FieldError{Field: field, Message: msg, Code: code})
	}
	return out
}

// Compact returns a copy of the result with blank-message entries removed
// from both maps, re-deriving validity from what remains.
func Compact(r models.Result) models.Result {
	out := models.Result{Valid: true, Data: r.Data}
	for field, msg := range r.Errors {
		if strings.TrimSpace(msg) != "" {
			out.AddError(field, msg)
		}
	}
	for field, msg := range r.Warnings {
		if strings.TrimSpace(msg) != "" {
			out.AddWarning(field, msg)
		}
	}
	if !out.Valid {
		out.Data = nil
	}
	return out
}

// HumanizeField renders a field key for display: underscores become spaces,
// a space is inserted before each capital, and every word is capitalized.
// "first_name" and "firstName" both become "First Name".
func HumanizeField(field string) string {
	if field == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(field) + 4)
	prev := rune(0)
	for _, r := range field {
		switch {
		case r == '_':
			r = ' '
		case unicode.IsUpper(r) && prev != 0 && prev != ' ' && prev != '_' && !unicode.IsUpper(prev):
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prev = r
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Summary builds a one-line textual outcome: "Valid", "Valid with N
// warning(s)", or "N error(s)".
func Summary(r models.Result) string {
	if len(r.Errors) > 0 {
		return fmt.Sprintf("%d %s", len(r.Errors), pluralize("error", len(r.Errors)))
	}
	if len(r.Warnings) > 0 {
		return fmt.Sprintf("Valid with %d %s", len(r.Warnings), pluralize("warning", len(r.Warnings)))
	}
	return "Valid"
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
