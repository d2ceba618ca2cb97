// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/models"
)

// residentRepository is the SQL-backed implementation of [ResidentRepository].
// It executes all resident CRUD and search operations against the "residents"
// table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with
// structured fields (resident_id, household_id, filter values).
type residentRepository struct {
	*DB
	logger *logger.Logger
}

// NewResidentRepository constructs a [ResidentRepository] backed by the
// provided database connection and logger.
func NewResidentRepository(db *DB, logger *logger.Logger) ResidentRepository {
	logger.Debug().Msg("creating resident repository")
	return &residentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateResident persists a new resident record and returns the canonical
// database representation including server-assigned timestamps.
//
// Error handling:
//   - unique violation on philsys_number → [ErrDuplicatePhilSysNumber].
//   - Any other driver-level error → wrapped in [ErrExecutingStatement].
func (r *residentRepository) CreateResident(ctx context.Context, resident models.Resident) (models.Resident, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createResident,
		resident.ID, resident.FirstName, resident.MiddleName, resident.LastName, resident.Suffix,
		resident.Sex, resident.CivilStatus, resident.Birthdate, resident.Birthplace,
		resident.MobileNumber, resident.Email, resident.PhilSysNumber,
		resident.Citizenship, resident.Religion, resident.Ethnicity, resident.EducationLevel, resident.EmploymentStatus,
		resident.OccupationCode, resident.BloodType, resident.HouseholdID,
	)

	var saved models.Resident
	if err := scanResident(row, &saved); err != nil {
		if isUniqueViolation(err) {
			return models.Resident{}, ErrDuplicatePhilSysNumber
		}
		log.Err(err).
			Str("func", "*residentRepository.CreateResident").
			Str("resident_id", resident.ID).
			Msg("failed to insert resident")
		return models.Resident{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// GetResidentByID retrieves a single resident. Returns [ErrResidentNotFound]
// when no record matches.
func (r *residentRepository) GetResidentByID(ctx context.Context, id string) (models.Resident, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getResidentByID, id)

	var found models.Resident
	if err := scanResident(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Resident{}, ErrResidentNotFound
		}
		log.Err(err).
			Str("func", "*residentRepository.GetResidentByID").
			Str("resident_id", id).
			Msg("failed to query resident")
		return models.Resident{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateResident overwrites all mutable columns of an existing resident and
// returns the stored row. Returns [ErrResidentNotFound] when the id does not
// exist and [ErrDuplicatePhilSysNumber] on a philsys_number collision.
func (r *residentRepository) UpdateResident(ctx context.Context, resident models.Resident) (models.Resident, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, updateResident,
		resident.ID, resident.FirstName, resident.MiddleName, resident.LastName, resident.Suffix,
		resident.Sex, resident.CivilStatus, resident.Birthdate, resident.Birthplace,
		resident.MobileNumber, resident.Email, resident.PhilSysNumber,
		resident.Citizenship, resident.Religion, resident.Ethnicity, resident.EducationLevel, resident.EmploymentStatus,
		resident.OccupationCode, resident.BloodType, resident.HouseholdID,
	)

	var saved models.Resident
	if err := scanResident(row, &saved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Resident{}, ErrResidentNotFound
		}
		if isUniqueViolation(err) {
			return models.Resident{}, ErrDuplicatePhilSysNumber
		}
		log.Err(err).
			Str("func", "*residentRepository.UpdateResident").
			Str("resident_id", resident.ID).
			Msg("failed to update resident")
		return models.Resident{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// DeleteResident removes a resident record. Returns [ErrResidentNotFound]
// when nothing was deleted.
func (r *residentRepository) DeleteResident(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, deleteResident, id)
	if err != nil {
		log.Err(err).
			Str("func", "*residentRepository.DeleteResident").
			Str("resident_id", id).
			Msg("failed to delete resident")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrResidentNotFound
	}

	return nil
}

// SearchResidents runs the filtered, paged search and returns the matching
// page along with the unpaged total.
func (r *residentRepository) SearchResidents(ctx context.Context, filter models.ResidentFilter) ([]models.Resident, int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchResidentsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*residentRepository.SearchResidents").
			Msg("failed to build search query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*residentRepository.SearchResidents").
			Msg("failed to execute search query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Resident, 0, 50)
	for rows.Next() {
		var item models.Resident
		if err := scanResident(rows, &item); err != nil {
			log.Err(err).
				Str("func", "*residentRepository.SearchResidents").
				Msg("failed to scan resident row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	total, err := r.countResidents(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func (r *residentRepository) countResidents(ctx context.Context, filter models.ResidentFilter) (int, error) {
	query, args, err := buildCountResidentsQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// CountHouseholdMembers returns the number of residents assigned to a
// household.
func (r *residentRepository) CountHouseholdMembers(ctx context.Context, householdID string) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, countHouseholdMembers, householdID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResident(row rowScanner, dst *models.Resident) error {
	return row.Scan(
		&dst.ID, &dst.FirstName, &dst.MiddleName, &dst.LastName, &dst.Suffix,
		&dst.Sex, &dst.CivilStatus, &dst.Birthdate, &dst.Birthplace,
		&dst.MobileNumber, &dst.Email, &dst.PhilSysNumber,
		&dst.Citizenship, &dst.Religion, &dst.Ethnicity, &dst.EducationLevel, &dst.EmploymentStatus,
		&dst.OccupationCode, &dst.BloodType, &dst.HouseholdID,
		&dst.CreatedAt, &dst.UpdatedAt,
	)
}
