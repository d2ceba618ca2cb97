package validation

import "errors"

var (
	// ErrTimeout is returned by WithTimeout when the deadline elapses before
	// the wrapped validation call produces a result.
	ErrTimeout = errors.New("validation timeout")
)

// User-facing failure messages. Handlers and the web UI render these
// verbatim beside the offending field.
const (
	MsgRequired       = "This field is required"
	MsgInvalidEmail   = "Invalid email address"
	MsgInvalidMobile  = "Invalid Philippine mobile number"
	MsgInvalidPhilSys = "Invalid PhilSys card number"
	MsgInvalidName    = "Name contains invalid characters"
	MsgNameTooLong    = "Name must not exceed 100 characters"
	MsgInvalidAge     = "Age must be a whole number between 0 and 150"
	MsgInvalidDate    = "Invalid date"
	MsgFutureDate     = "Date cannot be in the future"
	MsgInvalidURL     = "Invalid URL"
	MsgNotAllowed     = "Value is not in the list of allowed values"

	// MsgCheckFailed is the generic downgrade for a faulting async check;
	// the original cause is logged server-side, never shown to the user.
	MsgCheckFailed = "Validation failed"
)
