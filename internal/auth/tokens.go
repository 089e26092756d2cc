package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Out-of-band token lifetimes. Like the session window these are policy
// constants, not configuration.
const (
	VerificationTokenTTL = 24 * time.Hour
	ResetTokenTTL        = time.Hour
)

// TokenStore persists verification and password-reset tokens. Issue replaces
// any earlier tokens of the same kind for the user. Expiry is not checked
// here; the credential service owns the clock comparison.
type TokenStore interface {
	IssueVerification(ctx context.Context, userID string) (*VerificationToken, error)
	IssueReset(ctx context.Context, userID string) (*PasswordResetToken, error)
	FindVerification(ctx context.Context, token string) (*VerificationToken, error)
	FindReset(ctx context.Context, token string) (*PasswordResetToken, error)
	ConsumeVerification(ctx context.Context, id string) error
	ConsumeReset(ctx context.Context, id string) error
}

type TokenRepository struct {
	DB *pgxpool.Pool
}

func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{DB: db}
}

func (r *TokenRepository) IssueVerification(ctx context.Context, userID string) (*VerificationToken, error) {
	if _, err := r.DB.Exec(ctx, `DELETE FROM "VerificationToken" WHERE "userId"=$1`, userID); err != nil {
		return nil, err
	}

	token, err := newOpaqueToken()
	if err != nil {
		return nil, err
	}

	vt := &VerificationToken{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(VerificationTokenTTL),
	}
	_, err = r.DB.Exec(ctx, `
		INSERT INTO "VerificationToken" ("id","token","userId","expiresAt")
		VALUES ($1,$2,$3,$4)
	`, vt.ID, vt.Token, vt.UserID, vt.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return vt, nil
}

func (r *TokenRepository) IssueReset(ctx context.Context, userID string) (*PasswordResetToken, error) {
	if _, err := r.DB.Exec(ctx, `DELETE FROM "PasswordResetToken" WHERE "userId"=$1 AND "used"=FALSE`, userID); err != nil {
		return nil, err
	}

	token, err := newOpaqueToken()
	if err != nil {
		return nil, err
	}

	rt := &PasswordResetToken{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(ResetTokenTTL),
	}
	_, err = r.DB.Exec(ctx, `
		INSERT INTO "PasswordResetToken" ("id","token","userId","expiresAt")
		VALUES ($1,$2,$3,$4)
	`, rt.ID, rt.Token, rt.UserID, rt.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *TokenRepository) FindVerification(ctx context.Context, token string) (*VerificationToken, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT "id","token","userId","expiresAt"
		FROM "VerificationToken"
		WHERE "token"=$1
	`, token)

	var vt VerificationToken
	if err := row.Scan(&vt.ID, &vt.Token, &vt.UserID, &vt.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &vt, nil
}

func (r *TokenRepository) FindReset(ctx context.Context, token string) (*PasswordResetToken, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT "id","token","userId","expiresAt","used"
		FROM "PasswordResetToken"
		WHERE "token"=$1
	`, token)

	var rt PasswordResetToken
	if err := row.Scan(&rt.ID, &rt.Token, &rt.UserID, &rt.ExpiresAt, &rt.Used); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *TokenRepository) ConsumeVerification(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM "VerificationToken" WHERE "id"=$1`, id)
	return err
}

// ConsumeReset marks the token used but keeps the row around as a record of
// the consumption.
func (r *TokenRepository) ConsumeReset(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, `UPDATE "PasswordResetToken" SET "used"=TRUE WHERE "id"=$1`, id)
	return err
}
