package validation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/models"
)

// ValidateFunc is a whole-record validation step, the unit composed by
// Pipeline, Debounce and WithTimeout.
type ValidateFunc func(rec models.Record) models.Result

// Pipeline chains stages into one validator that runs them in order and
// stops at the first invalid result. A panic inside a stage is recovered
// into a synthetic models.PipelineField error, halting the pipeline: a
// single faulty stage must not crash the form.
func Pipeline(stages ...ValidateFunc) ValidateFunc {
	return func(rec models.Record) (result models.Result) {
		result = models.ValidResult(rec)

		for _, stage := range stages {
			stageResult, fault := runStage(stage, rec)
			if fault != nil {
				return models.InvalidResult(models.PipelineField, MsgCheckFailed)
			}
			if !stageResult.Valid {
				return stageResult
			}
			if stageResult.Data != nil {
				rec = stageResult.Data
				result = stageResult
			}
		}

		return result
	}
}

func runStage(stage ValidateFunc, rec models.Record) (result models.Result, fault error) {
	defer func() {
		if r := recover(); r != nil {
			fault = fmt.Errorf("validation stage panicked: %v", r)
			logger.FromContext(context.Background()).Error().
				Any("panic", r).
				Msg("validation pipeline stage faulted")
		}
	}()
	return stage(rec), nil
}

// Debounce returns a trigger that schedules fn after delay, resetting the
// timer on every call so only the last record within a burst is validated.
// The result is delivered to deliver on the timer goroutine. Used by
// interactive callers validating as the user types.
func Debounce(fn ValidateFunc, delay time.Duration, deliver func(models.Result)) func(models.Record) {
	var mu sync.Mutex
	var timer *time.Timer

	return func(rec models.Record) {
		mu.Lock()
		defer mu.Unlock()

		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			deliver(fn(rec))
		})
	}
}

// WithTimeout races fn against d. If the deadline or ctx wins, the call
// returns ErrTimeout (or ctx.Err) and the in-flight validation keeps running
// to completion with its result discarded; there is no cooperative
// cancellation signal into synchronous validators.
func WithTimeout(ctx context.Context, fn ValidateFunc, rec models.Record, d time.Duration) (models.Result, error) {
	done := make(chan models.Result, 1)

	go func() {
		done <- fn(rec)
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case result := <-done:
		return result, nil
	case <-timer.C:
		return models.Result{}, ErrTimeout
	case <-ctx.Done():
		return models.Result{}, ctx.Err()
	}
}
