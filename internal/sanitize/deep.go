package sanitize

import "github.com/jdcruz/rbi-registry/models"

// Func is a single string sanitizer, applied by [Deep] to every string value
// of a record.
type Func func(string) string

// Deep returns a copy of rec with fn applied to every string value,
// descending into nested maps and slices. Non-string values are left
// untouched; the input record is never mutated.
func Deep(rec models.Record, fn Func) models.Record {
	out := make(models.Record, len(rec))
	for k, v := range rec {
		out[k] = deepValue(v, fn)
	}
	return out
}

func deepValue(v any, fn Func) any {
	switch val := v.(type) {
	case string:
		return fn(val)
	case models.Record:
		return Deep(val, fn)
	case map[string]any:
		return map[string]any(Deep(models.Record(val), fn))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepValue(item, fn)
		}
		return out
	case []string:
		out := make([]string, len(val))
		for i, item := range val {
			out[i] = fn(item)
		}
		return out
	default:
		return v
	}
}
