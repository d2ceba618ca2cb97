// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

package validation

import (
	"regexp"
	"testing"
	"time"

	"github.com/jdcruz/rbi-registry/models"
	"github.com/stretchr/testify/assert"
)

var noCtx = Context{}

// ---------------------------------------------------------------------------
// Required
// ---------------------------------------------------------------------------

func TestRequired(t *testing.T) {
	tests := []struct {
		name  string
		value any
		fails bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"blank string", "   \t ", true},
		{"non-empty string", "x", false},
		{"zero int", 0, false},
		{"false bool", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Required(noCtx, tt.value, "f", nil)
			if tt.fails {
				assert.Equal(t, MsgRequired, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Format validators skip empty values
// ---------------------------------------------------------------------------

func TestFormatValidators_EmptyPasses(t *testing.T) {
	validators := map[string]FieldValidator{
		"Email":         Email,
		"MobileNumber":  MobileNumber,
		"PhilSysNumber": PhilSysNumber,
		"NameField":     NameField,
		"Age":           Age,
		"Date":          Date,
		"URLField":      URLField,
		"Length":        Length(5, 10),
		"Pattern":       Pattern(regexp.MustCompile(`^x$`), "nope"),
		"NumericRange":  NumericRange(1, 2),
		"OneOf":         OneOf("a", "b"),
	}

	for name, v := range validators {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, v(noCtx, nil, "f", nil))
			assert.Empty(t, v(noCtx, "", "f", nil))
			assert.Empty(t, v(noCtx, "   ", "f", nil))
		})
	}
}

// ---------------------------------------------------------------------------
// Email
// ---------------------------------------------------------------------------

func TestEmail(t *testing.T) {
	assert.Empty(t, Email(noCtx, "juan@example.com", "email", nil))
	assert.Empty(t, Email(noCtx, "a.b+tag@lgu.gov.ph", "email", nil))
	assert.Equal(t, MsgInvalidEmail, Email(noCtx, "not-an-email", "email", nil))
	assert.Equal(t, MsgInvalidEmail, Email(noCtx, "missing@tld", "email", nil))
}

// ---------------------------------------------------------------------------
// MobileNumber
// ---------------------------------------------------------------------------

func TestMobileNumber(t *testing.T) {
	tests := []struct {
		name  string
		value string
		fails bool
	}{
		{"national format", "09171234567", false},
		{"country code format", "+639171234567", false},
		{"spaced presentation", "0917 123 4567", false},
		{"wrong prefix", "1234567890", true},
		{"ten digits", "0917123456", true},
		{"twelve digits", "091712345678", true},
		{"landline", "(02) 8123 4567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := MobileNumber(noCtx, tt.value, "mobile_number", nil)
			if tt.fails {
				assert.Equal(t, MsgInvalidMobile, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// PhilSysNumber
// ---------------------------------------------------------------------------

func TestPhilSysNumber(t *testing.T) {
	assert.Empty(t, PhilSysNumber(noCtx, "1234-5678-9012-3456", "philsys_number", nil))
	assert.Empty(t, PhilSysNumber(noCtx, "1234567890123456", "philsys_number", nil))
	assert.Equal(t, MsgInvalidPhilSys, PhilSysNumber(noCtx, "1234-5678", "philsys_number", nil))
	assert.Equal(t, MsgInvalidPhilSys, PhilSysNumber(noCtx, "abcd-efgh-ijkl-mnop", "philsys_number", nil))
}

// ---------------------------------------------------------------------------
// NameField
// ---------------------------------------------------------------------------

func TestNameField(t *testing.T) {
	assert.Empty(t, NameField(noCtx, "Juan Dela Cruz", "name", nil))
	assert.Empty(t, NameField(noCtx, "Ma. Clara-Santos", "name", nil))
	assert.Empty(t, NameField(noCtx, "O'Brien", "name", nil))
	assert.Equal(t, MsgInvalidName, NameField(noCtx, "Juan2", "name", nil))
	assert.Equal(t, MsgInvalidName, NameField(noCtx, "Juan; DROP", "name", nil))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.Equal(t, MsgNameTooLong, NameField(noCtx, string(long), "name", nil))
}

// ---------------------------------------------------------------------------
// Age
// ---------------------------------------------------------------------------

func TestAge(t *testing.T) {
	assert.Empty(t, Age(noCtx, 29, "age", nil))
	assert.Empty(t, Age(noCtx, float64(0), "age", nil))
	assert.Empty(t, Age(noCtx, "150", "age", nil))
	assert.Equal(t, MsgInvalidAge, Age(noCtx, -1, "age", nil))
	assert.Equal(t, MsgInvalidAge, Age(noCtx, 151, "age", nil))
	assert.Equal(t, MsgInvalidAge, Age(noCtx, 29.5, "age", nil))
	assert.Equal(t, MsgInvalidAge, Age(noCtx, "abc", "age", nil))
	assert.Equal(t, MsgInvalidAge, Age(noCtx, true, "age", nil))
}

// ---------------------------------------------------------------------------
// Date
// ---------------------------------------------------------------------------

func TestDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	createCtx := Context{Mode: ModeCreate, At: now}
	updateCtx := Context{Mode: ModeUpdate, At: now}

	t.Run("valid past date", func(t *testing.T) {
		assert.Empty(t, Date(createCtx, "1990-01-01", "birthdate", nil))
	})

	t.Run("yesterday passes on create", func(t *testing.T) {
		assert.Empty(t, Date(createCtx, "2026-08-29", "birthdate", nil))
	})

	t.Run("tomorrow fails on create", func(t *testing.T) {
		assert.Equal(t, MsgFutureDate, Date(createCtx, "2026-08-31", "birthdate", nil))
	})

	t.Run("tomorrow passes on update", func(t *testing.T) {
		assert.Empty(t, Date(updateCtx, "2026-08-31", "birthdate", nil))
	})

	t.Run("unparseable fails", func(t *testing.T) {
		assert.Equal(t, MsgInvalidDate, Date(createCtx, "31/08/2026", "birthdate", nil))
		assert.Equal(t, MsgInvalidDate, Date(createCtx, "2026-02-30", "birthdate", nil))
	})
}

// ---------------------------------------------------------------------------
// URLField
// ---------------------------------------------------------------------------

func TestURLField(t *testing.T) {
	assert.Empty(t, URLField(noCtx, "https://lgu.gov.ph/rbi", "url", nil))
	assert.Equal(t, MsgInvalidURL, URLField(noCtx, "not a url", "url", nil))
	assert.Equal(t, MsgInvalidURL, URLField(noCtx, "/relative/only", "url", nil))
}

// ---------------------------------------------------------------------------
// Factories
// ---------------------------------------------------------------------------

func TestLength(t *testing.T) {
	v := Length(2, 4)
	assert.Empty(t, v(noCtx, "ab", "f", nil))
	assert.Empty(t, v(noCtx, "abcd", "f", nil))
	assert.NotEmpty(t, v(noCtx, "a", "f", nil))
	assert.NotEmpty(t, v(noCtx, "abcde", "f", nil))
}

func TestPattern(t *testing.T) {
	v := Pattern(regexp.MustCompile(`^\d{4}$`), "must be four digits")
	assert.Empty(t, v(noCtx, "1234", "f", nil))
	assert.Equal(t, "must be four digits", v(noCtx, "12a4", "f", nil))
}

func TestNumericRange(t *testing.T) {
	v := NumericRange(1, 10)
	assert.Empty(t, v(noCtx, 5, "f", nil))
	assert.Empty(t, v(noCtx, "10", "f", nil))
	assert.NotEmpty(t, v(noCtx, 0, "f", nil))
	assert.NotEmpty(t, v(noCtx, 11, "f", nil))
	assert.NotEmpty(t, v(noCtx, "abc", "f", nil))
}

func TestOneOf(t *testing.T) {
	v := OneOf(models.SexValues...)
	assert.Empty(t, v(noCtx, "male", "sex", nil))
	assert.Empty(t, v(noCtx, "female", "sex", nil))
	assert.Equal(t, MsgNotAllowed, v(noCtx, "other", "sex", nil))
}
