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

// householdService implements [HouseholdService]. Household forms are small
// enough that the schema runs inline here instead of through a separate
// validation wrapper.
type householdService struct {
	householdRepository store.HouseholdRepository
	residentRepository  store.ResidentRepository
	schema              *validation.Schema
	ids                 *utils.UUIDGenerator
	logger              *logger.Logger
}

// NewHouseholdService constructs a [HouseholdService] backed by the given
// repositories.
func NewHouseholdService(householdRepository store.HouseholdRepository, residentRepository store.ResidentRepository, logger *logger.Logger) HouseholdService {
	return &householdService{
		householdRepository: householdRepository,
		residentRepository:  residentRepository,
		schema:              validation.HouseholdSchema(),
		ids:                 utils.NewUUIDGenerator(),
		logger:              logger,
	}
}

// CreateHousehold validates the raw household record, assigns an identifier,
// and persists it. Invalid records are rejected with a [*ValidationError].
func (s *householdService) CreateHousehold(ctx context.Context, rec models.Record) (models.Household, error) {
	log := logger.FromContext(ctx)

	result := s.schema.Validate(validation.NewContext(validation.ModeCreate), rec)
	if !result.Valid {
		return models.Household{}, NewValidationError(result)
	}

	household := models.HouseholdFromRecord(result.Data)
	household.ID = s.ids.Generate()

	created, err := s.householdRepository.CreateHousehold(ctx, household)
	if err != nil {
		log.Err(err).Str("household_id", household.ID).Msg("household creation ended with error")
		return models.Household{}, fmt.Errorf("household creation ended with error: %w", err)
	}

	return created, nil
}

// GetHousehold fetches a household and its current member count.
func (s *householdService) GetHousehold(ctx context.Context, id string) (models.Household, int, error) {
	if id == "" {
		return models.Household{}, 0, ErrInvalidDataProvided
	}

	household, err := s.householdRepository.GetHouseholdByID(ctx, id)
	if err != nil {
		return models.Household{}, 0, err
	}

	members, err := s.residentRepository.CountHouseholdMembers(ctx, id)
	if err != nil {
		return models.Household{}, 0, err
	}

	return household, members, nil
}
