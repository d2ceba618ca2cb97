package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when registering an encoder fails
	// because an encoder with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoEncoderWasFound is returned when a query expected to match at
	// least one encoder account produces an empty result set.
	ErrNoEncoderWasFound = errors.New("no encoder was found")

	// ErrDuplicatePhilSysNumber is returned when an INSERT or UPDATE of a
	// resident violates the unique index on philsys_number.
	ErrDuplicatePhilSysNumber = errors.New("philsys number already registered")

	// ErrResidentNotFound is returned when a query or update targets a
	// resident that does not exist in the database.
	ErrResidentNotFound = errors.New("resident was not found")

	// ErrHouseholdNotFound is returned when a query or update targets a
	// household that does not exist in the database.
	ErrHouseholdNotFound = errors.New("household was not found")

	// ErrDuplicateHouseholdNumber is returned when an INSERT of a household
	// violates the unique constraint on household_number.
	ErrDuplicateHouseholdNumber = errors.New("household number already registered")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
