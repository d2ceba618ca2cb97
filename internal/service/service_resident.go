// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

package service

import (
	"context"
	"fmt"

	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/store"
	"github.com/jdcruz/rbi-registry/internal/utils"
	"github.com/jdcruz/rbi-registry/internal/validation"
	"github.com/jdcruz/rbi-registry/models"
)

// residentService is the persistence-facing implementation of
// [ResidentService]. It assumes records reaching it have already been
// sanitized and validated by the wrapping ResidentValidationService; it only
// assigns identifiers and delegates to the repository.
type residentService struct {
	residentRepository store.ResidentRepository
	ids                *utils.UUIDGenerator
	logger             *logger.Logger
}

// NewResidentService constructs the base ResidentService. Wrap it with
// [NewResidentValidationService] before exposing it to transports.
func NewResidentService(residentRepository store.ResidentRepository, logger *logger.Logger) ResidentService {
	return &residentService{
		residentRepository: residentRepository,
		ids:                utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// CreateResident assigns a fresh identifier and persists the record.
func (s *residentService) CreateResident(ctx context.Context, rec models.Record) (models.Resident, error) {
	log := logger.FromContext(ctx)

	resident := models.ResidentFromRecord(rec)
	resident.ID = s.ids.Generate()

	created, err := s.residentRepository.CreateResident(ctx, resident)
	if err != nil {
		log.Err(err).Str("resident_id", resident.ID).Msg("resident creation ended with error")
		return models.Resident{}, fmt.Errorf("resident creation ended with error: %w", err)
	}

	return created, nil
}

// GetResident fetches a resident by id.
func (s *residentService) GetResident(ctx context.Context, id string) (models.Resident, error) {
	if id == "" {
		return models.Resident{}, ErrInvalidDataProvided
	}

	return s.residentRepository.GetResidentByID(ctx, id)
}

// UpdateResident overwrites the stored record with the supplied one.
func (s *residentService) UpdateResident(ctx context.Context, id string, rec models.Record) (models.Resident, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Resident{}, ErrInvalidDataProvided
	}

	resident := models.ResidentFromRecord(rec)
	resident.ID = id

	updated, err := s.residentRepository.UpdateResident(ctx, resident)
	if err != nil {
		log.Err(err).Str("resident_id", id).Msg("resident update ended with error")
		return models.Resident{}, fmt.Errorf("resident update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteResident removes a resident record.
func (s *residentService) DeleteResident(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}

	return s.residentRepository.DeleteResident(ctx, id)
}

// SearchResidents runs a filtered, paged search.
func (s *residentService) SearchResidents(ctx context.Context, filter models.ResidentFilter) ([]models.Resident, int, error) {
	return s.residentRepository.SearchResidents(ctx, filter)
}

// ValidateResident on the base service reports a valid result: validation
// is the decorator's concern and the base service never rejects.
func (s *residentService) ValidateResident(ctx context.Context, rec models.Record, mode string) (models.Result, error) {
	return models.ValidResult(rec), nil
}

// modeFromString maps the transport-level mode parameter onto a validation
// mode, defaulting to create.
func modeFromString(mode string) validation.Mode {
	switch mode {
	case "update":
		return validation.ModeUpdate
	case "view":
		return validation.ModeView
	default:
		return validation.ModeCreate
	}
}
