package store

import (
	"context"

	"github.com/jdcruz/rbi-registry/models"
)

type EncoderRepository interface {
	CreateEncoder(ctx context.Context, encoder models.Encoder) (models.Encoder, error)
	FindEncoderByLogin(ctx context.Context, login string) (models.Encoder, error)
}

type ResidentRepository interface {
	CreateResident(ctx context.Context, resident models.Resident) (models.Resident, error)
	GetResidentByID(ctx context.Context, id string) (models.Resident, error)
	UpdateResident(ctx context.Context, resident models.Resident) (models.Resident, error)
	DeleteResident(ctx context.Context, id string) error
	SearchResidents(ctx context.Context, filter models.ResidentFilter) ([]models.Resident, int, error)
	CountHouseholdMembers(ctx context.Context, householdID string) (int, error)
}

type HouseholdRepository interface {
	CreateHousehold(ctx context.Context, household models.Household) (models.Household, error)
	GetHouseholdByID(ctx context.Context, id string) (models.Household, error)
	GetHouseholdByNumber(ctx context.Context, number string) (models.Household, error)
}
