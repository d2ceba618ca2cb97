package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/jdcruz/rbi-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Compose
// ---------------------------------------------------------------------------

func TestCompose_ShortCircuits(t *testing.T) {
	alwaysFail := func(_ Context, _ any, _ string, _ models.Record) string {
		return "A"
	}

	secondCalled := false
	second := func(_ Context, _ any, _ string, _ models.Record) string {
		secondCalled = true
		return "B"
	}

	msg := Compose(alwaysFail, second)(noCtx, "anything", "f", nil)

	assert.Equal(t, "A", msg)
	assert.False(t, secondCalled, "second validator must never run after a failure")
}

func TestCompose_AllPass(t *testing.T) {
	pass := func(_ Context, _ any, _ string, _ models.Record) string { return "" }
	assert.Empty(t, Compose(pass, pass, pass)(noCtx, "x", "f", nil))
}

func TestCompose_OrderPreserved(t *testing.T) {
	var calls []string
	mk := func(name, msg string) FieldValidator {
		return func(_ Context, _ any, _ string, _ models.Record) string {
			calls = append(calls, name)
			return msg
		}
	}

	Compose(mk("v1", ""), mk("v2", ""), mk("v3", "fail"))(noCtx, "x", "f", nil)
	assert.Equal(t, []string{"v1", "v2", "v3"}, calls)
}

// ---------------------------------------------------------------------------
// When
// ---------------------------------------------------------------------------

func TestWhen(t *testing.T) {
	onlyAdults := func(_ Context, _ any, _ string, rec models.Record) bool {
		return rec.String("civil_status") == "married"
	}
	v := When(onlyAdults, Required)

	t.Run("predicate false skips validator", func(t *testing.T) {
		rec := models.Record{"civil_status": "single"}
		assert.Empty(t, v(noCtx, "", "spouse_name", rec))
	})

	t.Run("predicate true runs validator", func(t *testing.T) {
		rec := models.Record{"civil_status": "married"}
		assert.Equal(t, MsgRequired, v(noCtx, "", "spouse_name", rec))
	})
}

// ---------------------------------------------------------------------------
// Async
// ---------------------------------------------------------------------------

func TestAsync(t *testing.T) {
	ctx := context.Background()

	t.Run("empty value skips the check", func(t *testing.T) {
		called := false
		v := Async(func(_ context.Context, _ string) (bool, error) {
			called = true
			return false, nil
		}, "unknown code")

		assert.Empty(t, v(ctx, noCtx, "", "occupation_code", nil))
		assert.False(t, called)
	})

	t.Run("check true passes", func(t *testing.T) {
		v := Async(func(_ context.Context, value string) (bool, error) {
			require.Equal(t, "2221", value)
			return true, nil
		}, "unknown code")

		assert.Empty(t, v(ctx, noCtx, "2221", "occupation_code", nil))
	})

	t.Run("check false fails with message", func(t *testing.T) {
		v := Async(func(_ context.Context, _ string) (bool, error) {
			return false, nil
		}, "unknown code")

		assert.Equal(t, "unknown code", v(ctx, noCtx, "9999", "occupation_code", nil))
	})

	t.Run("check error downgrades to generic message", func(t *testing.T) {
		v := Async(func(_ context.Context, _ string) (bool, error) {
			return false, errors.New("connection refused")
		}, "unknown code")

		assert.Equal(t, MsgCheckFailed, v(ctx, noCtx, "2221", "occupation_code", nil))
	})
}
