package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/models"
)

func newTestEncoderRepo(t *testing.T) (*encoderRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &encoderRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateEncoder_Success(t *testing.T) {
	repo, mock, db := newTestEncoderRepo(t)
	defer db.Close()

	ctx := context.Background()
	encoder := models.Encoder{
		Login:        "mdelacruz",
		Name:         "Maria Dela Cruz",
		PasswordHash: "$argon2id$...",
		Role:         "encoder",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "login", "name", "password_hash", "role", "created_at"}).
		AddRow(1, encoder.Login, encoder.Name, encoder.PasswordHash, encoder.Role, now)

	mock.ExpectQuery("INSERT INTO encoders").
		WithArgs(encoder.Login, encoder.Name, encoder.PasswordHash, encoder.Role).
		WillReturnRows(rows)

	created, err := repo.CreateEncoder(ctx, encoder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.EncoderID != 1 {
		t.Errorf("expected EncoderID=1, got %d", created.EncoderID)
	}
	if created.Login != encoder.Login {
		t.Errorf("expected login %s, got %s", encoder.Login, created.Login)
	}
}

func TestCreateEncoder_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestEncoderRepo(t)
	defer db.Close()

	ctx := context.Background()
	encoder := models.Encoder{Login: "mdelacruz"}

	mock.ExpectQuery("INSERT INTO encoders").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateEncoder(ctx, encoder)
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestCreateEncoder_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestEncoderRepo(t)
	defer db.Close()

	ctx := context.Background()
	encoder := models.Encoder{Login: "mdelacruz"}

	mock.ExpectQuery("INSERT INTO encoders").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateEncoder(ctx, encoder)
	if err == nil || !strings.Contains(err.Error(), "db network error") {
		t.Fatalf("expected wrapped DB error, got %v", err)
	}
}

func TestFindEncoderByLogin_Success(t *testing.T) {
	repo, mock, db := newTestEncoderRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "login", "name", "password_hash", "role", "created_at"}).
		AddRow(7, "mdelacruz", "Maria Dela Cruz", "$argon2id$...", "admin", now)

	mock.ExpectQuery("SELECT (.+) FROM encoders").
		WithArgs("mdelacruz").
		WillReturnRows(rows)

	found, err := repo.FindEncoderByLogin(ctx, "mdelacruz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.EncoderID != 7 {
		t.Errorf("expected EncoderID=7, got %d", found.EncoderID)
	}
	if found.Role != "admin" {
		t.Errorf("expected role admin, got %s", found.Role)
	}
}

func TestFindEncoderByLogin_NotFound(t *testing.T) {
	repo, mock, db := newTestEncoderRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM encoders").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindEncoderByLogin(ctx, "ghost")
	if !errors.Is(err, ErrNoEncoderWasFound) {
		t.Fatalf("expected ErrNoEncoderWasFound, got %v", err)
	}
}
