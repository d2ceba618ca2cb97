package models

import "time"

// Resident is a registered inhabitant record as persisted in the registry.
// All free-text fields are stored in their sanitized form; the mapping
// from the raw submission happens in the service layer after validation.
type Resident struct {
	// ID is the server-assigned unique identifier of the resident.
	ID string `json:"id"`

	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	Suffix     string `json:"suffix,omitempty"`

	Sex         string `json:"sex"`
	CivilStatus string `json:"civil_status"`
	Birthdate   string `json:"birthdate"`
	Birthplace  string `json:"birthplace,omitempty"`

	MobileNumber  string `json:"mobile_number,omitempty"`
	Email         string `json:"email,omitempty"`
	PhilSysNumber string `json:"philsys_number,omitempty"`

	Citizenship      string `json:"citizenship,omitempty"`
	Religion         string `json:"religion,omitempty"`
	Ethnicity        string `json:"ethnicity,omitempty"`
	EducationLevel   string `json:"education_level,omitempty"`
	EmploymentStatus string `json:"employment_status,omitempty"`

	// OccupationCode is a PSOC occupation classification code. Its existence
	// is checked against the external PSOC search service, not locally.
	OccupationCode string `json:"occupation_code,omitempty"`

	BloodType string `json:"blood_type,omitempty"`

	// HouseholdID links the resident to a household record, when assigned.
	HouseholdID string `json:"household_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Resident model.
func (r Resident) TableName() string {
	return "residents"
}

// ToRecord converts the resident into the key-value form consumed by the
// validation layer. Zero-valued optional fields are omitted so that the
// empty-passes rule of format validators applies to them.
func (r Resident) ToRecord() Record {
	rec := Record{
		"first_name":   r.FirstName,
		"last_name":    r.LastName,
		"sex":          r.Sex,
		"civil_status": r.CivilStatus,
		"birthdate":    r.Birthdate,
	}
	put := func(field, value string) {
		if value != "" {
			rec[field] = value
		}
	}
	put("middle_name", r.MiddleName)
	put("suffix", r.Suffix)
	put("birthplace", r.Birthplace)
	put("mobile_number", r.MobileNumber)
	put("email", r.Email)
	put("philsys_number", r.PhilSysNumber)
	put("citizenship", r.Citizenship)
	put("religion", r.Religion)
	put("ethnicity", r.Ethnicity)
	put("education_level", r.EducationLevel)
	put("employment_status", r.EmploymentStatus)
	put("occupation_code", r.OccupationCode)
	put("blood_type", r.BloodType)
	put("household_id", r.HouseholdID)
	return rec
}

// ResidentFromRecord maps a validated record back onto a typed Resident.
// Only fields owned by the submission form are read; identifiers and audit
// timestamps stay server-assigned.
func ResidentFromRecord(rec Record) Resident {
	return Resident{
		FirstName:        rec.String("first_name"),
		MiddleName:       rec.String("middle_name"),
		LastName:         rec.String("last_name"),
		Suffix:           rec.String("suffix"),
		Sex:              rec.String("sex"),
		CivilStatus:      rec.String("civil_status"),
		Birthdate:        rec.String("birthdate"),
		Birthplace:       rec.String("birthplace"),
		MobileNumber:     rec.String("mobile_number"),
		Email:            rec.String("email"),
		PhilSysNumber:    rec.String("philsys_number"),
		Citizenship:      rec.String("citizenship"),
		Religion:         rec.String("religion"),
		Ethnicity:        rec.String("ethnicity"),
		EducationLevel:   rec.String("education_level"),
		EmploymentStatus: rec.String("employment_status"),
		OccupationCode:   rec.String("occupation_code"),
		BloodType:        rec.String("blood_type"),
		HouseholdID:      rec.String("household_id"),
	}
}
