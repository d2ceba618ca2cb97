package models

import "time"

// Household groups residents living at one address within the barangay.
type Household struct {
	// ID is the server-assigned unique identifier of the household.
	ID string `json:"id"`

	// HouseholdNumber is the LGU-assigned household control number,
	// unique within a barangay.
	HouseholdNumber string `json:"household_number"`

	Street   string `json:"street,omitempty"`
	Purok    string `json:"purok,omitempty"`
	Barangay string `json:"barangay"`

	// HeadResidentID references the resident registered as household head.
	HeadResidentID string `json:"head_resident_id,omitempty"`

	IncomeClass string `json:"income_class,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Household model.
func (h Household) TableName() string {
	return "households"
}

// ToRecord converts the household into the key-value form consumed by the
// validation layer.
func (h Household) ToRecord() Record {
	rec := Record{
		"household_number": h.HouseholdNumber,
		"barangay":         h.Barangay,
	}
	if h.Street != "" {
		rec["street"] = h.Street
	}
	if h.Purok != "" {
		rec["purok"] = h.Purok
	}
	if h.HeadResidentID != "" {
		rec["head_resident_id"] = h.HeadResidentID
	}
	if h.IncomeClass != "" {
		rec["income_class"] = h.IncomeClass
	}
	return rec
}

// HouseholdFromRecord maps a validated record back onto a typed Household.
func HouseholdFromRecord(rec Record) Household {
	return Household{
		HouseholdNumber: rec.String("household_number"),
		Street:          rec.String("street"),
		Purok:           rec.String("purok"),
		Barangay:        rec.String("barangay"),
		HeadResidentID:  rec.String("head_resident_id"),
		IncomeClass:     rec.String("income_class"),
	}
}
