package validation

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jdcruz/rbi-registry/models"
)

// FieldValidator decides whether a single value satisfies one rule.
// It returns "" on success or a user-facing message on failure. Validators
// are stateless function values, safely shared and composed; they never
// mutate the record they receive.
//
// Every validator except Required treats an empty or absent value as valid,
// so optional fields skip format checks when unset. Presence is exclusively
// Required's concern.
type FieldValidator func(ctx Context, value any, field string, rec models.Record) string

// DateLayout is the wire format of every date field in the registry.
const DateLayout = "2006-01-02"

const (
	maxNameLength = 100
	maxAge        = 150
)

var (
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobilePattern  = regexp.MustCompile(`^(09\d{9}|\+639\d{9})$`)
	philSysPattern = regexp.MustCompile(`^(\d{16}|\d{4}-\d{4}-\d{4}-\d{4})$`)
)

// isEmpty reports whether value counts as "not provided": nil, empty string,
// or a string that is blank after trimming.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func asString(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// Required fails when the value is absent, nil, empty, or blank after
// trimming. The only validator that does not pass empty values through.
func Required(_ Context, value any, _ string, _ models.Record) string {
	if isEmpty(value) {
		return MsgRequired
	}
	return ""
}

// Email accepts a standard local@domain.tld shape.
func Email(_ Context, value any, _ string, _ models.Record) string {
	if isEmpty(value) {
		return ""
	}
	if !emailPattern.MatchString(strings.TrimSpace(asString(value))) {
		return MsgInvalidEmail
	}
	return ""
}

// MobileNumber accepts Philippine mobile numbers in national 09XXXXXXXXX or
// country-code +639XXXXXXXXX form. Spaces, dashes and parentheses in the
// input are ignored.
func MobileNumber(_ Context, value any, _ string, _ models.Record) string {
	if isEmpty(value) {
		return ""
	}
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, asString(value))
	if !mobilePattern.MatchString(compact) {
		return MsgInvalidMobile
	}
	return ""
}

// PhilSysNumber accepts a 16-digit PhilSys card number, grouped
// XXXX-XXXX-XXXX-XXXX or bare.
func PhilSysNumber(_ Context, value any, _ string, _ models.Record) string {
	if isEmpty(value) {
		return ""
	}
	if !philSysPattern.MatchString(strings.TrimSpace(asString(value))) {
		return MsgInvalidPhilSys
	}
	return ""
}

// NameField accepts letters, spaces, hyphens, apostrophes and periods, at
// most 100 characters.
func NameField(_ Context, value any, _ string, _ models.Record) string {
	if isEmpty(value) {
		return ""
	}
	s := asString(value)
	if utf8.RuneCountInString(s) > maxNameLength {
		return MsgNameTooLong
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '\'' && r != '.' {
			return MsgInvalidName
		}
	}
	return ""
}

// Age accepts whole numbers between 0 and 150. Numeric JSON values arrive as
// float64; string digits are also accepted.
func Age(_ Context, value any, _ string, _ models.Record) string {
	if isEmpty(value) {
		return ""
	}

	var n float64
	switch v := value.(type) {
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case float64:
		n = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return MsgInvalidAge
		}
		n = parsed
	default:
		return MsgInvalidAge
	}

	if n != math.Trunc(n) || n < 0 || n > maxAge {
		return MsgInvalidAge
	}
	return ""
}

// Date accepts calendar dates in [DateLayout] form. Future dates are
// rejected only when the context mode is create: records captured in the
// field may legitimately carry slightly skewed historical dates on update.
func Date(ctx Context, value any, _ string, _ models.Record) string {
	if isEmpty(value) {
		return ""
	}

	parsed, err := time.Parse(DateLayout, strings.TrimSpace(asString(value)))
	if err != nil {
		return MsgInvalidDate
	}

	if ctx.Mode == ModeCreate && parsed.After(ctx.now()) {
		return MsgFutureDate
	}
	return ""
}

// URLField accepts absolute URLs with a scheme and host.
func URLField(_ Context, value any, _ string, _ models.Record) string {
	if isEmpty(value) {
		return ""
	}
	u, err := url.Parse(strings.TrimSpace(asString(value)))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return MsgInvalidURL
	}
	return ""
}

// Length returns a validator enforcing that string length falls inside
// [minLen, maxLen].
func Length(minLen, maxLen int) FieldValidator {
	return func(_ Context, value any, _ string, _ models.Record) string {
		if isEmpty(value) {
			return ""
		}
		n := utf8.RuneCountInString(asString(value))
		if n < minLen || n > maxLen {
			return fmt.Sprintf("Must be between %d and %d characters", minLen, maxLen)
		}
		return ""
	}
}

// Pattern returns a validator that fails with message when the value does
// not match re.
func Pattern(re *regexp.Regexp, message string) FieldValidator {
	return func(_ Context, value any, _ string, _ models.Record) string {
		if isEmpty(value) {
			return ""
		}
		if !re.MatchString(asString(value)) {
			return message
		}
		return ""
	}
}

// NumericRange returns a validator enforcing that a numeric value falls
// inside [minVal, maxVal]. Non-numeric values fail.
func NumericRange(minVal, maxVal float64) FieldValidator {
	return func(_ Context, value any, _ string, _ models.Record) string {
		if isEmpty(value) {
			return ""
		}

		var n float64
		switch v := value.(type) {
		case int:
			n = float64(v)
		case int64:
			n = float64(v)
		case float64:
			n = v
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Sprintf("Must be a number between %g and %g", minVal, maxVal)
			}
			n = parsed
		default:
			return fmt.Sprintf("Must be a number between %g and %g", minVal, maxVal)
		}

		if n < minVal || n > maxVal {
			return fmt.Sprintf("Must be a number between %g and %g", minVal, maxVal)
		}
		return ""
	}
}

// OneOf returns a validator accepting only values from the allowed list.
// The list is treated as opaque; enum semantics live in the schema layer
// that owns the value sets.
func OneOf(allowed ...string) FieldValidator {
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return func(_ Context, value any, _ string, _ models.Record) string {
		if isEmpty(value) {
			return ""
		}
		if _, ok := set[asString(value)]; !ok {
			return MsgNotAllowed
		}
		return ""
	}
}
