// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

package service

import (
	"context"

	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/sanitize"
	"github.com/jdcruz/rbi-registry/internal/utils"
	"github.com/jdcruz/rbi-registry/internal/validation"
	"github.com/jdcruz/rbi-registry/models"
)

// ResidentValidationService decorates a ResidentService with form validation.
// Create and update requests run through the resident schema (sanitizers,
// field validators, cross-field rules, and the async PSOC occupation check);
// invalid records are rejected with a [*ValidationError] before the inner
// service is reached. Valid records are forwarded with the sanitized data in
// place of the raw input.
type ResidentValidationService struct {
	inner  ResidentService
	schema *validation.Schema
	logger *logger.Logger
}

// NewResidentValidationService builds the wrapper around the resident schema.
// occupations may be nil in standalone installs without PSOC connectivity;
// the occupation check is then skipped.
func NewResidentValidationService(occupations OccupationChecker, logger *logger.Logger) ResidentServiceWrapper {
	var check validation.CheckFunc
	if occupations != nil {
		check = occupations.Exists
	}

	return &ResidentValidationService{
		schema: validation.ResidentSchema(check),
		logger: logger,
	}
}

// Wrap implements [ResidentServiceWrapper].
func (v *ResidentValidationService) Wrap(inner ResidentService) ResidentService {
	v.inner = inner
	return v
}

// CreateResident validates the raw record in create mode and forwards the
// sanitized data to the inner service.
func (v *ResidentValidationService) CreateResident(ctx context.Context, rec models.Record) (models.Resident, error) {
	result, err := v.validate(ctx, rec, validation.ModeCreate)
	if err != nil {
		return models.Resident{}, err
	}
	if !result.Valid {
		return models.Resident{}, NewValidationError(result)
	}

	return v.inner.CreateResident(ctx, result.Data)
}

// GetResident forwards to the inner service unchanged.
func (v *ResidentValidationService) GetResident(ctx context.Context, id string) (models.Resident, error) {
	return v.inner.GetResident(ctx, id)
}

// UpdateResident validates the raw record in update mode and forwards the
// sanitized data to the inner service.
func (v *ResidentValidationService) UpdateResident(ctx context.Context, id string, rec models.Record) (models.Resident, error) {
	result, err := v.validate(ctx, rec, validation.ModeUpdate)
	if err != nil {
		return models.Resident{}, err
	}
	if !result.Valid {
		return models.Resident{}, NewValidationError(result)
	}

	return v.inner.UpdateResident(ctx, id, result.Data)
}

// DeleteResident forwards to the inner service unchanged.
func (v *ResidentValidationService) DeleteResident(ctx context.Context, id string) error {
	return v.inner.DeleteResident(ctx, id)
}

// SearchResidents forwards to the inner service after sanitizing the free
// text name filter.
func (v *ResidentValidationService) SearchResidents(ctx context.Context, filter models.ResidentFilter) ([]models.Resident, int, error) {
	filter.Name = sanitize.SearchQuery(filter.Name)
	return v.inner.SearchResidents(ctx, filter)
}

// ValidateResident runs the full schema without persisting anything. The
// result is returned even when invalid; the error is reserved for context
// cancellation and schema-level faults.
func (v *ResidentValidationService) ValidateResident(ctx context.Context, rec models.Record, mode string) (models.Result, error) {
	return v.validate(ctx, rec, modeFromString(mode))
}

func (v *ResidentValidationService) validate(ctx context.Context, rec models.Record, mode validation.Mode) (models.Result, error) {
	vctx := validation.NewContext(mode)
	if encoderID, ok := utils.GetEncoderIDFromContext(ctx); ok {
		role, _ := utils.GetEncoderRoleFromContext(ctx)
		vctx = vctx.WithActor(encoderID, role)
	}

	result, err := v.schema.ValidateAsync(ctx, vctx, rec)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("resident validation aborted")
		return models.Result{}, err
	}

	return result, nil
}
