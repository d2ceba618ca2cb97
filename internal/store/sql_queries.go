// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/jdcruz/rbi-registry/models"
)

const (
	createEncoder = `INSERT INTO encoders (login, name, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING id, login, name, password_hash, role, created_at;`

	findEncoderByLogin = `SELECT id, login, name, password_hash, role, created_at
    FROM encoders
    WHERE login = $1;`

	residentColumns = `id, first_name, middle_name, last_name, suffix,
		sex, civil_status, birthdate, birthplace,
		mobile_number, email, philsys_number,
		citizenship, religion, ethnicity, education_level, employment_status,
		occupation_code, blood_type, household_id,
		created_at, updated_at`

	createResident = `INSERT INTO residents (
			id, first_name, middle_name, last_name, suffix,
			sex, civil_status, birthdate, birthplace,
			mobile_number, email, philsys_number,
			citizenship, religion, ethnicity, education_level, employment_status,
			occupation_code, blood_type, household_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING ` + residentColumns + `;`

	getResidentByID = `SELECT ` + residentColumns + `
		FROM residents
		WHERE id = $1;`

	updateResident = `UPDATE residents SET
			first_name = $2, middle_name = $3, last_name = $4, suffix = $5,
			sex = $6, civil_status = $7, birthdate = $8, birthplace = $9,
			mobile_number = $10, email = $11, philsys_number = $12,
			citizenship = $13, religion = $14, ethnicity = $15,
			education_level = $16, employment_status = $17,
			occupation_code = $18, blood_type = $19,
			household_id = $20, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + residentColumns + `;`

	deleteResident = `DELETE FROM residents
		WHERE id = $1;`

	countHouseholdMembers = `SELECT COUNT(*)
		FROM residents
		WHERE household_id = $1;`

	createHousehold = `INSERT INTO households (
			id, household_number, street, purok, barangay,
			head_resident_id, income_class
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, household_number, street, purok, barangay,
			head_resident_id, income_class, created_at, updated_at;`

	getHouseholdByID = `SELECT id, household_number, street, purok, barangay,
			head_resident_id, income_class, created_at, updated_at
		FROM households
		WHERE id = $1;`

	getHouseholdByNumber = `SELECT id, household_number, street, purok, barangay,
			head_resident_id, income_class, created_at, updated_at
		FROM households
		WHERE household_number = $1;`
)

const defaultSearchLimit = 50

// buildSearchResidentsQuery builds the paged resident search SELECT from a
// filter. Zero-valued filter fields add no predicate.
func buildSearchResidentsQuery(filter models.ResidentFilter) (string, []any, error) {
	builder := sq.Select(
		"id", "first_name", "middle_name", "last_name", "suffix",
		"sex", "civil_status", "birthdate", "birthplace",
		"mobile_number", "email", "philsys_number",
		"citizenship", "religion", "ethnicity", "education_level", "employment_status",
		"occupation_code", "blood_type", "household_id",
		"created_at", "updated_at",
	).
		From("residents").
		PlaceholderFormat(sq.Dollar)

	builder = applyResidentFilter(builder, filter)

	limit := filter.Limit
	if limit == 0 {
		limit = defaultSearchLimit
	}

	query, args, err := builder.
		OrderBy("last_name", "first_name").
		Limit(limit).
		Offset(filter.Offset).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

// buildCountResidentsQuery builds the COUNT counterpart of the search query
// so search responses can report the unpaged total.
func buildCountResidentsQuery(filter models.ResidentFilter) (string, []any, error) {
	builder := sq.Select("COUNT(*)").
		From("residents").
		PlaceholderFormat(sq.Dollar)

	builder = applyResidentFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

func applyResidentFilter(builder sq.SelectBuilder, filter models.ResidentFilter) sq.SelectBuilder {
	if filter.Name != "" {
		// LOWER + LIKE instead of ILIKE so the same query runs on SQLite
		pattern := "%" + filter.Name + "%"
		builder = builder.Where(sq.Or{
			sq.Expr("LOWER(first_name) LIKE LOWER(?)", pattern),
			sq.Expr("LOWER(middle_name) LIKE LOWER(?)", pattern),
			sq.Expr("LOWER(last_name) LIKE LOWER(?)", pattern),
		})
	}

	if filter.CivilStatus != "" {
		builder = builder.Where(sq.Eq{"civil_status": filter.CivilStatus})
	}

	if filter.Sex != "" {
		builder = builder.Where(sq.Eq{"sex": filter.Sex})
	}

	if filter.EmploymentStatus != "" {
		builder = builder.Where(sq.Eq{"employment_status": filter.EmploymentStatus})
	}

	if filter.HouseholdID != "" {
		builder = builder.Where(sq.Eq{"household_id": filter.HouseholdID})
	}

	return builder
}
