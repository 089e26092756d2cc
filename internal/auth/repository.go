package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserStore is the persistence contract the credential service relies on.
// Implementations return (nil, nil) when a lookup finds no row.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string, firstName, lastName *string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	SetEmailVerified(ctx context.Context, userID string, at time.Time) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	Delete(ctx context.Context, userID string) error
}

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `"id","email","password","firstName","lastName","isEmailVerified","emailVerifiedAt","createdAt","updatedAt"`

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, firstName, lastName *string) (*User, error) {
	id := uuid.NewString()

	query := `
		INSERT INTO "User"
		("id","email","password","firstName","lastName")
		VALUES ($1,$2,$3,$4,$5)
		RETURNING ` + userColumns

	row := r.DB.QueryRow(ctx, query, id, email, passwordHash, firstName, lastName)
	user, err := scanUser(row)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}
	return user, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM "User" WHERE "email"=$1`
	row := r.DB.QueryRow(ctx, query, email)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM "User" WHERE "id"=$1`
	row := r.DB.QueryRow(ctx, query, id)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func (r *UserRepository) SetEmailVerified(ctx context.Context, userID string, at time.Time) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE "User"
		SET "isEmailVerified"=TRUE,
		    "emailVerifiedAt"=$1,
		    "updatedAt"=NOW()
		WHERE "id"=$2
	`, at, userID)
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE "User"
		SET "password"=$1,
		    "updatedAt"=NOW()
		WHERE "id"=$2
	`, passwordHash, userID)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM "User" WHERE "id"=$1`, userID)
	return err
}

func scanUser(row pgx.Row) (*User, error) {
	var (
		id              string
		email           string
		password        string
		firstName       sql.NullString
		lastName        sql.NullString
		emailVerified   bool
		emailVerifiedAt sql.NullTime
		createdAt       time.Time
		updatedAt       time.Time
	)

	if err := row.Scan(
		&id,
		&email,
		&password,
		&firstName,
		&lastName,
		&emailVerified,
		&emailVerifiedAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	return &User{
		ID:              id,
		Email:           email,
		PasswordHash:    password,
		FirstName:       nullStringPtr(firstName),
		LastName:        nullStringPtr(lastName),
		EmailVerified:   emailVerified,
		EmailVerifiedAt: nullTimePtr(emailVerifiedAt),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}

func nullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

func nullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		return &nt.Time
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
