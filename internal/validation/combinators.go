package validation

import (
	"context"

	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/models"
)

// Compose sequences validators into one: they run strictly in the order
// given and the first failure message wins, skipping the rest.
func Compose(validators ...FieldValidator) FieldValidator {
	return func(ctx Context, value any, field string, rec models.Record) string {
		for _, v := range validators {
			if msg := v(ctx, value, field, rec); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// Predicate guards a conditional validator; it receives the same inputs as
// the validator it protects.
type Predicate func(ctx Context, value any, field string, rec models.Record) bool

// When runs validator only if pred holds; otherwise the field passes.
func When(pred Predicate, validator FieldValidator) FieldValidator {
	return func(ctx Context, value any, field string, rec models.Record) string {
		if !pred(ctx, value, field, rec) {
			return ""
		}
		return validator(ctx, value, field, rec)
	}
}

// AsyncFieldValidator is the suspending counterpart of [FieldValidator]:
// it may await an external check (uniqueness lookup, code-list search)
// before answering. The context carries cancellation and deadline only;
// validation metadata travels in [Context].
type AsyncFieldValidator func(ctx context.Context, vctx Context, value any, field string, rec models.Record) string

// CheckFunc is an externally-supplied boolean check, e.g. "does this PSOC
// code exist" or "is this PhilSys number unused".
type CheckFunc func(ctx context.Context, value string) (bool, error)

// Async wraps check into an async validator that fails with message when the
// check answers false. Empty values skip the check entirely.
//
// A check error is downgraded to a generic field failure so one misbehaving
// rule cannot crash the whole form; the cause is logged with the field name
// so server logs retain root cause.
func Async(check CheckFunc, message string) AsyncFieldValidator {
	return func(ctx context.Context, _ Context, value any, field string, _ models.Record) string {
		if isEmpty(value) {
			return ""
		}

		ok, err := check(ctx, asString(value))
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("field", field).
				Msg("async validation check faulted")
			return MsgCheckFailed
		}
		if !ok {
			return message
		}
		return ""
	}
}
