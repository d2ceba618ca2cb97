package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/models"
)

// householdRepository is the SQL-backed implementation of
// [HouseholdRepository].
type householdRepository struct {
	*DB
	logger *logger.Logger
}

// NewHouseholdRepository constructs a [HouseholdRepository] backed by the
// provided database connection and logger.
func NewHouseholdRepository(db *DB, logger *logger.Logger) HouseholdRepository {
	logger.Debug().Msg("creating household repository")
	return &householdRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateHousehold persists a new household record. Returns
// [ErrDuplicateHouseholdNumber] when the household_number is taken.
func (r *householdRepository) CreateHousehold(ctx context.Context, household models.Household) (models.Household, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createHousehold,
		household.ID, household.HouseholdNumber, household.Street, household.Purok,
		household.Barangay, household.HeadResidentID, household.IncomeClass,
	)

	var saved models.Household
	if err := scanHousehold(row, &saved); err != nil {
		if isUniqueViolation(err) {
			return models.Household{}, ErrDuplicateHouseholdNumber
		}
		log.Err(err).
			Str("func", "*householdRepository.CreateHousehold").
			Str("household_id", household.ID).
			Msg("failed to insert household")
		return models.Household{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// GetHouseholdByID retrieves a single household. Returns
// [ErrHouseholdNotFound] when no record matches.
func (r *householdRepository) GetHouseholdByID(ctx context.Context, id string) (models.Household, error) {
	return r.getHousehold(ctx, getHouseholdByID, id)
}

// GetHouseholdByNumber retrieves a household by its barangay-assigned number.
// Returns [ErrHouseholdNotFound] when no record matches.
func (r *householdRepository) GetHouseholdByNumber(ctx context.Context, number string) (models.Household, error) {
	return r.getHousehold(ctx, getHouseholdByNumber, number)
}

func (r *householdRepository) getHousehold(ctx context.Context, query string, arg string) (models.Household, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, query, arg)

	var found models.Household
	if err := scanHousehold(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Household{}, ErrHouseholdNotFound
		}
		log.Err(err).
			Str("func", "*householdRepository.getHousehold").
			Msg("failed to query household")
		return models.Household{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func scanHousehold(row rowScanner, dst *models.Household) error {
	return row.Scan(
		&dst.ID, &dst.HouseholdNumber, &dst.Street, &dst.Purok, &dst.Barangay,
		&dst.HeadResidentID, &dst.IncomeClass,
		&dst.CreatedAt, &dst.UpdatedAt,
	)
}
