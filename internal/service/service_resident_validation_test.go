// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/mock"
	"github.com/jdcruz/rbi-registry/internal/validation"
	"github.com/jdcruz/rbi-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validResidentRecord() models.Record {
	return models.Record{
		"first_name":    "Juan",
		"last_name":     "Dela Cruz",
		"sex":           "male",
		"civil_status":  "single",
		"birthdate":     "1990-06-12",
		"mobile_number": "09171234567",
	}
}

func newWrappedResidentSvc(t *testing.T, ctrl *gomock.Controller, occupations OccupationChecker) (ResidentService, *mock.MockResidentService) {
	t.Helper()
	inner := mock.NewMockResidentService(ctrl)
	wrapper := NewResidentValidationService(occupations, logger.Nop())
	return wrapper.Wrap(inner), inner
}

// ── create ───────────────────────────────────────────────────────────────────

func TestValidationService_CreateValidRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, inner := newWrappedResidentSvc(t, ctrl, nil)
	ctx := context.Background()

	inner.EXPECT().CreateResident(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec models.Record) (models.Resident, error) {
			// the inner service receives the sanitized data, not the raw input
			assert.Equal(t, "Juan", rec.String("first_name"))
			assert.Equal(t, "Dela Cruz", rec.String("last_name"))
			return models.Resident{ID: "0191c1a0-0000-7000-8000-000000000001"}, nil
		},
	)

	created, err := svc.CreateResident(ctx, validResidentRecord())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestValidationService_CreateSanitizesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, inner := newWrappedResidentSvc(t, ctrl, nil)
	ctx := context.Background()

	rec := validResidentRecord()
	rec["first_name"] = "  juan  "
	rec["last_name"] = "dela cruz"

	inner.EXPECT().CreateResident(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sanitized models.Record) (models.Resident, error) {
			assert.Equal(t, "Juan", sanitized.String("first_name"), "names are trimmed and title-cased")
			assert.Equal(t, "Dela Cruz", sanitized.String("last_name"))
			return models.Resident{}, nil
		},
	)

	_, err := svc.CreateResident(ctx, rec)
	require.NoError(t, err)
}

func TestValidationService_CreateInvalidRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// inner gets no expectations: it must never be called for invalid input
	svc, _ := newWrappedResidentSvc(t, ctrl, nil)
	ctx := context.Background()

	rec := validResidentRecord()
	delete(rec, "first_name")

	_, err := svc.CreateResident(ctx, rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.False(t, verr.Result.Valid)
	assert.Contains(t, verr.Result.Errors, "first_name")
}

func TestValidationService_CreateMissingContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newWrappedResidentSvc(t, ctrl, nil)
	ctx := context.Background()

	rec := validResidentRecord()
	delete(rec, "mobile_number")

	_, err := svc.CreateResident(ctx, rec)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Result.Errors, "mobile_number", "contact rule flags every field in the group")
	assert.Contains(t, verr.Result.Errors, "email")
}

// ── occupation check ─────────────────────────────────────────────────────────

func TestValidationService_OccupationUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	occupations := mock.NewMockOccupationChecker(ctrl)
	occupations.EXPECT().Exists(gomock.Any(), "9999").Return(false, nil)

	svc, _ := newWrappedResidentSvc(t, ctrl, occupations)
	ctx := context.Background()

	rec := validResidentRecord()
	rec["employment_status"] = "employed"
	rec["occupation_code"] = "9999"

	_, err := svc.CreateResident(ctx, rec)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Result.Errors, "occupation_code")
}

func TestValidationService_OccupationCheckerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	occupations := mock.NewMockOccupationChecker(ctrl)
	occupations.EXPECT().Exists(gomock.Any(), "2152").Return(false, errors.New("psoc unreachable"))

	svc, _ := newWrappedResidentSvc(t, ctrl, occupations)
	ctx := context.Background()

	rec := validResidentRecord()
	rec["employment_status"] = "employed"
	rec["occupation_code"] = "2152"

	// a faulting checker degrades to a generic field failure, not a crash
	_, err := svc.CreateResident(ctx, rec)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.MsgCheckFailed, verr.Result.Errors["occupation_code"])
}

// ── update ───────────────────────────────────────────────────────────────────

func TestValidationService_UpdateInvalidRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newWrappedResidentSvc(t, ctrl, nil)
	ctx := context.Background()

	rec := validResidentRecord()
	rec["birthdate"] = "12-06-1990"

	_, err := svc.UpdateResident(ctx, "some-id", rec)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Result.Errors, "birthdate")
}

func TestValidationService_UpdateValidRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, inner := newWrappedResidentSvc(t, ctrl, nil)
	ctx := context.Background()

	inner.EXPECT().UpdateResident(ctx, "some-id", gomock.Any()).Return(models.Resident{ID: "some-id"}, nil)

	updated, err := svc.UpdateResident(ctx, "some-id", validResidentRecord())
	require.NoError(t, err)
	assert.Equal(t, "some-id", updated.ID)
}

// ── pass-through operations ──────────────────────────────────────────────────

func TestValidationService_SearchSanitizesNameFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, inner := newWrappedResidentSvc(t, ctrl, nil)
	ctx := context.Background()

	inner.EXPECT().SearchResidents(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, filter models.ResidentFilter) ([]models.Resident, int, error) {
			assert.Equal(t, "dela cruz", filter.Name, "search text is trimmed and whitespace-collapsed")
			return nil, 0, nil
		},
	)

	_, _, err := svc.SearchResidents(ctx, models.ResidentFilter{Name: "  dela   cruz  "})
	require.NoError(t, err)
}

func TestValidationService_GetAndDeletePassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, inner := newWrappedResidentSvc(t, ctrl, nil)
	ctx := context.Background()

	inner.EXPECT().GetResident(ctx, "id-1").Return(models.Resident{ID: "id-1"}, nil)
	inner.EXPECT().DeleteResident(ctx, "id-1").Return(nil)

	got, err := svc.GetResident(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)

	require.NoError(t, svc.DeleteResident(ctx, "id-1"))
}

// ── ValidateResident ─────────────────────────────────────────────────────────

func TestValidationService_ValidateResidentReturnsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newWrappedResidentSvc(t, ctrl, nil)
	ctx := context.Background()

	rec := validResidentRecord()
	delete(rec, "last_name")

	// invalid input yields a Result, not an error
	result, err := svc.ValidateResident(ctx, rec, "create")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "last_name")

	result, err = svc.ValidateResident(ctx, validResidentRecord(), "create")
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidationService_ValidateResidentCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	occupations := mock.NewMockOccupationChecker(ctrl)
	occupations.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

	svc, _ := newWrappedResidentSvc(t, ctrl, occupations)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := validResidentRecord()
	rec["employment_status"] = "employed"
	rec["occupation_code"] = "2152"

	_, err := svc.ValidateResident(ctx, rec, "create")
	assert.ErrorIs(t, err, context.Canceled)
}
