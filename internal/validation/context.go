package validation

import "time"

// Mode describes the operation a record is being validated for. Some rules
// behave differently per mode; e.g. future birthdates are rejected only on
// create.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
	ModeView   Mode = "view"
)

// Context is the ambient metadata passed into a validation call. It is
// constructed once per call, read-only to validators, and discarded when the
// caller consumes the result.
type Context struct {
	// Mode is the operation being validated (create/update/view).
	Mode Mode

	// ActorID identifies the encoder performing the operation; zero when the
	// call is unauthenticated (e.g. the validate-only endpoint).
	ActorID int64

	// ActorRole is the encoder's role at the time of the call.
	ActorRole string

	// Path is the request path that triggered the validation, for audit logs.
	Path string

	// At is the wall-clock instant the validation started. Date rules
	// compare against this instead of calling time.Now themselves so that a
	// whole record is judged against one consistent instant.
	At time.Time
}

// NewContext returns a Context for mode stamped with the current time.
func NewContext(mode Mode) Context {
	return Context{Mode: mode, At: time.Now()}
}

// WithActor returns a copy of the context carrying the acting encoder.
func (c Context) WithActor(id int64, role string) Context {
	c.ActorID = id
	c.ActorRole = role
	return c
}

// WithPath returns a copy of the context carrying the request path.
func (c Context) WithPath(path string) Context {
	c.Path = path
	return c
}

// now returns the context timestamp, falling back to the wall clock when the
// context was zero-constructed.
func (c Context) now() time.Time {
	if c.At.IsZero() {
		return time.Now()
	}
	return c.At
}
