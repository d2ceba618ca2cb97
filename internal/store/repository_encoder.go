package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/models"
)

// encoderRepository is the SQL-backed implementation of [EncoderRepository].
// It handles encoder account creation and lookup against the "encoders" table.
type encoderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEncoderRepository constructs an [EncoderRepository] backed by the
// provided database connection and logger.
func NewEncoderRepository(db *DB, logger *logger.Logger) EncoderRepository {
	logger.Debug().Msg("creating encoder repository")
	return &encoderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEncoder persists a new encoder account and returns the fully
// populated [models.Encoder] with server-assigned fields (EncoderID,
// CreatedAt). The caller must have already hashed the password.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *encoderRepository) CreateEncoder(ctx context.Context, encoder models.Encoder) (models.Encoder, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createEncoder, encoder.Login, encoder.Name, encoder.PasswordHash, encoder.Role)

	// create encoder in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*encoderRepository.CreateEncoder").Msg("error: row is nil")

		if isUniqueViolation(err) {
			return models.Encoder{}, ErrLoginAlreadyExists
		}
		return models.Encoder{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved encoder from db
	if err := row.Scan(&encoder.EncoderID, &encoder.Login, &encoder.Name, &encoder.PasswordHash, &encoder.Role, &encoder.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.Encoder{}, ErrLoginAlreadyExists
		}
		log.Err(err).Str("func", "*encoderRepository.CreateEncoder").Msg("error: scanning error")
		return models.Encoder{}, err
	}

	return encoder, nil
}

// FindEncoderByLogin retrieves the encoder account with the given login.
// Returns [ErrNoEncoderWasFound] when no account matches.
func (r *encoderRepository) FindEncoderByLogin(ctx context.Context, login string) (models.Encoder, error) {
	log := logger.FromContext(ctx)

	var found models.Encoder
	row := r.db.QueryRowContext(ctx, findEncoderByLogin, login)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Encoder{}, ErrNoEncoderWasFound
		}
		log.Err(err).Str("func", "*encoderRepository.FindEncoderByLogin").Msg("error: row is nil")
		return models.Encoder{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found encoder from db
	if err := row.Scan(&found.EncoderID, &found.Login, &found.Name, &found.PasswordHash, &found.Role, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Encoder{}, ErrNoEncoderWasFound
		}
		log.Err(err).Str("func", "*encoderRepository.FindEncoderByLogin").Msg("error: scanning error")
		return models.Encoder{}, err
	}

	return found, nil
}
