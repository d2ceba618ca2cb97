package service

import (
	"context"

	"github.com/jdcruz/rbi-registry/models"
)

type AuthService interface {
	RegisterEncoder(ctx context.Context, encoder models.Encoder) (models.Encoder, error)
	Login(ctx context.Context, encoder models.Encoder) (models.Encoder, error)
	CreateToken(ctx context.Context, encoder models.Encoder) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ResidentService manages the resident register. The create and update
// operations accept raw form records; the validation decorator rejects
// invalid input with a [*ValidationError] before anything is persisted.
type ResidentService interface {
	CreateResident(ctx context.Context, rec models.Record) (models.Resident, error)
	GetResident(ctx context.Context, id string) (models.Resident, error)
	UpdateResident(ctx context.Context, id string, rec models.Record) (models.Resident, error)
	DeleteResident(ctx context.Context, id string) error
	SearchResidents(ctx context.Context, filter models.ResidentFilter) ([]models.Resident, int, error)

	// ValidateResident runs the full resident form validation without
	// persisting anything. Backs the validate-only endpoint.
	ValidateResident(ctx context.Context, rec models.Record, mode string) (models.Result, error)
}

type HouseholdService interface {
	CreateHousehold(ctx context.Context, rec models.Record) (models.Household, error)
	GetHousehold(ctx context.Context, id string) (models.Household, int, error)
}

// OccupationChecker verifies occupation codes against the PSOC catalog.
// Implemented by the psoc client.
type OccupationChecker interface {
	Exists(ctx context.Context, code string) (bool, error)
}

// ResidentServiceWrapper defines middleware composition for ResidentService.
// Implementations wrap an existing ResidentService to add behavior such as
// validation or logging.
type ResidentServiceWrapper interface {
	Wrap(ResidentService) ResidentService
}
