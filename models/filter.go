package models

// ResidentFilter narrows a resident search. Zero-valued fields are ignored.
type ResidentFilter struct {
	// Name matches against first, middle and last name, case-insensitive
	// partial match.
	Name string

	CivilStatus      string
	Sex              string
	EmploymentStatus string
	HouseholdID      string

	// Limit caps the page size. Zero means the repository default.
	Limit  uint64
	Offset uint64
}
