package store

import "github.com/jdcruz/rbi-registry/internal/logger"

type Storages struct {
	EncoderRepository   EncoderRepository
	ResidentRepository  ResidentRepository
	HouseholdRepository HouseholdRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		EncoderRepository:   NewEncoderRepository(db, log),
		ResidentRepository:  NewResidentRepository(db, log),
		HouseholdRepository: NewHouseholdRepository(db, log),
	}
}
