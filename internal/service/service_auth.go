package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jdcruz/rbi-registry/internal/config"
	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/store"
	"github.com/jdcruz/rbi-registry/internal/utils"
	"github.com/jdcruz/rbi-registry/models"
)

// authService is the concrete implementation of AuthService.
// It handles encoder registration, credential verification, and JWT token
// lifecycle using an EncoderRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// encoderRepository is the data-access layer used to create and look up
	// encoder accounts.
	encoderRepository store.EncoderRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// EncoderRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(encoderRepository store.EncoderRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		encoderRepository: encoderRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// RegisterEncoder creates a new encoder account.
//
// It validates that both Login and Password are non-empty, hashes the
// password with argon2id, and delegates persistence to the EncoderRepository.
// The inbound plain-text password is never stored.
//
// Returns the persisted encoder (with a server-assigned EncoderID) or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login
//     already taken — see store.ErrLoginAlreadyExists).
func (a *authService) RegisterEncoder(ctx context.Context, encoder models.Encoder) (models.Encoder, error) {
	log := logger.FromContext(ctx)

	if encoder.Login == "" || encoder.Password == "" {
		log.Error().Str("login", encoder.Login).Msg("invalid encoder data provided")
		return models.Encoder{}, ErrInvalidDataProvided
	}

	hash, err := hashPassword(encoder.Password)
	if err != nil {
		log.Err(err).Str("login", encoder.Login).Msg("password hashing failed")
		return models.Encoder{}, fmt.Errorf("password hashing failed: %w", err)
	}
	encoder.PasswordHash = hash
	encoder.Password = ""

	if encoder.Role == "" {
		encoder.Role = "encoder"
	}

	registered, err := a.encoderRepository.CreateEncoder(ctx, encoder)
	if err != nil {
		log.Err(err).Str("login", encoder.Login).Msg("encoder creation ended with error")
		return models.Encoder{}, fmt.Errorf("encoder creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing encoder.
//
// It validates that both Login and Password are non-empty, looks up the
// account by login, and verifies the supplied password against the stored
// argon2id hash.
//
// Returns the authenticated encoder record or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. account
//     not found — see store.ErrNoEncoderWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, encoder models.Encoder) (models.Encoder, error) {
	log := logger.FromContext(ctx)

	if encoder.Login == "" || encoder.Password == "" {
		log.Error().Str("login", encoder.Login).Msg("invalid encoder data provided")
		return models.Encoder{}, ErrInvalidDataProvided
	}

	found, err := a.encoderRepository.FindEncoderByLogin(ctx, encoder.Login)
	if err != nil {
		log.Err(err).Str("login", encoder.Login).Msg("encoder search by login failed")
		return models.Encoder{}, fmt.Errorf("encoder search by login failed: %w", err)
	}

	ok, err := verifyPassword(encoder.Password, found.PasswordHash)
	if err != nil {
		log.Err(err).
			Int64("id", found.EncoderID).
			Str("login", found.Login).
			Msg("password verification failed")
		return models.Encoder{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Error().
			Int64("id", found.EncoderID).
			Str("login", found.Login).
			Msg("wrong password")
		return models.Encoder{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT for the given encoder.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the encoder role as a
// private claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation
// fails.
func (a *authService) CreateToken(ctx context.Context, encoder models.Encoder) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, encoder.EncoderID, encoder.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
