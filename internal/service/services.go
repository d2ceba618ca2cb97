package service

import (
	"github.com/jdcruz/rbi-registry/internal/config"
	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/store"
)

type Services struct {
	AuthService      AuthService
	ResidentService  ResidentService
	HouseholdService HouseholdService
}

// NewServices wires the service layer. The resident service is wrapped with
// the validation decorator; occupations may be nil when no PSOC endpoint is
// configured.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, occupations OccupationChecker, logger *logger.Logger) *Services {
	residents := NewResidentService(storages.ResidentRepository, logger)
	residents = NewResidentValidationService(occupations, logger).Wrap(residents)

	return &Services{
		AuthService:      NewAuthService(storages.EncoderRepository, cfg.App, logger),
		ResidentService:  residents,
		HouseholdService: NewHouseholdService(storages.HouseholdRepository, storages.ResidentRepository, logger),
	}
}
