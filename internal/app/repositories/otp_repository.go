package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"github.com/yigit/campushub/internal/pkg/logger"
)

// OTPRepository stores pending one-time codes, one per phone.
type OTPRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOTPRepository creates a new OTPRepository
func NewOTPRepository(db *pgxpool.Pool) *OTPRepository {
	return &OTPRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Save replaces any pending code for the phone.
func (r *OTPRepository) Save(ctx context.Context, code models.OTPCode) error {
	sql, args, err := r.sb.Insert("otp_codes").
		Columns("phone", "code_hash", "expires_at", "attempts").
		Values(code.Phone, code.CodeHash, code.ExpiresAt, 0).
		Suffix("ON CONFLICT (phone) DO UPDATE SET code_hash = EXCLUDED.code_hash, expires_at = EXCLUDED.expires_at, attempts = 0").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build save otp query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("phone", code.Phone).Msg("Error saving one-time code")
		return fmt.Errorf("error saving one-time code: %w", err)
	}
	return nil
}

// Get returns the pending code for phone, or ErrInvalidOTP when there is none.
func (r *OTPRepository) Get(ctx context.Context, phone string) (*models.OTPCode, error) {
	sql, args, err := r.sb.Select("phone", "code_hash", "expires_at", "attempts").
		From("otp_codes").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get otp query: %w", err)
	}

	code := &models.OTPCode{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&code.Phone, &code.CodeHash, &code.ExpiresAt, &code.Attempts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidOTP
		}
		logger.Error().Err(err).Str("phone", phone).Msg("Error scanning one-time code row")
		return nil, fmt.Errorf("error retrieving one-time code: %w", err)
	}
	return code, nil
}

// IncrementAttempts records a failed verification.
func (r *OTPRepository) IncrementAttempts(ctx context.Context, phone string) error {
	sql, args, err := r.sb.Update("otp_codes").
		Set("attempts", squirrel.Expr("attempts + 1")).
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build otp attempts query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error updating one-time code attempts: %w", err)
	}
	return nil
}

// Delete removes the pending code for phone.
func (r *OTPRepository) Delete(ctx context.Context, phone string) error {
	sql, args, err := r.sb.Delete("otp_codes").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete otp query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting one-time code: %w", err)
	}
	return nil
}
