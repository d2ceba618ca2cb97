package validation

import (
	"github.com/jdcruz/rbi-registry/internal/sanitize"
	"github.com/jdcruz/rbi-registry/models"
)

// Field name constants shared by the registry schemas, the handlers, and
// the store layer.
const (
	FieldFirstName        = "first_name"
	FieldMiddleName       = "middle_name"
	FieldLastName         = "last_name"
	FieldSuffix           = "suffix"
	FieldSex              = "sex"
	FieldCivilStatus      = "civil_status"
	FieldBirthdate        = "birthdate"
	FieldBirthplace       = "birthplace"
	FieldMobileNumber     = "mobile_number"
	FieldEmail            = "email"
	FieldPhilSysNumber    = "philsys_number"
	FieldCitizenship      = "citizenship"
	FieldReligion         = "religion"
	FieldEthnicity        = "ethnicity"
	FieldEducationLevel   = "education_level"
	FieldEmploymentStatus = "employment_status"
	FieldOccupationCode   = "occupation_code"
	FieldBloodType        = "blood_type"
	FieldHouseholdID      = "household_id"

	FieldHouseholdNumber = "household_number"
	FieldStreet          = "street"
	FieldPurok           = "purok"
	FieldBarangay        = "barangay"
	FieldHeadResidentID  = "head_resident_id"
	FieldIncomeClass     = "income_class"
)

const (
	msgOccupationUnknown  = "Occupation code is not a known PSOC classification"
	msgContactRequired    = "Provide a mobile number or an email address"
	msgOccupationRequired = "Occupation code is required for employed residents"
)

// occupationRequired demands a PSOC code only for residents reported as
// working; other employment statuses carry no occupation.
func occupationRequired(_ Context, rec models.Record) models.Result {
	switch rec.String(FieldEmploymentStatus) {
	case "employed", "self_employed":
		if rec.IsEmpty(FieldOccupationCode) {
			return models.InvalidResult(FieldOccupationCode, msgOccupationRequired)
		}
	}
	return models.ValidResult(nil)
}

// ResidentSchema builds the validation schema for resident submissions.
//
// occupationExists, when non-nil, is wired as an async check of the PSOC
// occupation code against the external classification service; passing nil
// yields a purely synchronous schema (used by the validate-only endpoint,
// which must not block on outbound calls).
func ResidentSchema(occupationExists CheckFunc) *Schema {
	s := NewSchema().
		Sanitized(FieldFirstName, sanitize.Name).
		Field(FieldFirstName, Required, NameField).
		Sanitized(FieldMiddleName, sanitize.Name).
		Field(FieldMiddleName, NameField).
		Sanitized(FieldLastName, sanitize.Name).
		Field(FieldLastName, Required, NameField).
		Sanitized(FieldSuffix, sanitize.Name).
		Field(FieldSuffix, NameField, Length(0, 10)).
		Field(FieldSex, Required, OneOf(models.SexValues...)).
		Field(FieldCivilStatus, Required, OneOf(models.CivilStatusValues...)).
		Field(FieldBirthdate, Required, Date).
		Sanitized(FieldBirthplace, sanitize.Name).
		Field(FieldBirthplace, NameField).
		Sanitized(FieldMobileNumber, sanitize.Phone).
		Field(FieldMobileNumber, MobileNumber).
		Sanitized(FieldEmail, sanitize.Email).
		Field(FieldEmail, Email).
		Sanitized(FieldPhilSysNumber, sanitize.PhilSysNumber).
		Field(FieldPhilSysNumber, PhilSysNumber).
		Field(FieldCitizenship, OneOf(models.CitizenshipValues...)).
		Field(FieldReligion, OneOf(models.ReligionValues...)).
		Field(FieldEthnicity, OneOf(models.EthnicityValues...)).
		Field(FieldEducationLevel, OneOf(models.EducationLevelValues...)).
		Field(FieldEmploymentStatus, OneOf(models.EmploymentStatusValues...)).
		Field(FieldBloodType, OneOf(models.BloodTypeValues...)).
		Rules(
			AtLeastOneRequired([]string{FieldMobileNumber, FieldEmail}, msgContactRequired),
			occupationRequired,
		)

	if occupationExists != nil {
		s.AsyncField(FieldOccupationCode, Async(occupationExists, msgOccupationUnknown))
	}

	return s
}

// HouseholdSchema builds the validation schema for household submissions.
func HouseholdSchema() *Schema {
	return NewSchema().
		Field(FieldHouseholdNumber, Required, Length(1, 50)).
		Sanitized(FieldStreet, sanitize.SearchQuery).
		Field(FieldStreet, Length(0, 200)).
		Sanitized(FieldPurok, sanitize.SearchQuery).
		Field(FieldPurok, Length(0, 100)).
		Sanitized(FieldBarangay, sanitize.Name).
		Field(FieldBarangay, Required, NameField).
		Field(FieldIncomeClass, OneOf(models.IncomeClassValues...))
}
