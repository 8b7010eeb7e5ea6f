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
	"github.com/yigit/campushub/internal/pkg/dberrors"
	"github.com/yigit/campushub/internal/pkg/logger"
)

// RoleRepository handles user_roles database operations
type RoleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// HasRole reports whether userID holds role. A missing row is (false, nil);
// only query failures return an error.
func (r *RoleRepository) HasRole(ctx context.Context, userID string, role models.RoleType) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("user_roles").
		Where(squirrel.Eq{"user_id": userID, "role": string(role)}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build role lookup query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Str("userID", userID).Str("role", string(role)).Msg("Error looking up role")
		return false, fmt.Errorf("error looking up role: %w", err)
	}
	return true, nil
}

// AssignRole grants role to userID. Granting an existing role is a no-op.
func (r *RoleRepository) AssignRole(ctx context.Context, userID string, role models.RoleType) error {
	sql, args, err := r.sb.Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, string(role)).
		Suffix("ON CONFLICT (user_id, role) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build assign role query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", userID).Str("role", string(role)).Msg("Error assigning role")
		return fmt.Errorf("error assigning role: %w", err)
	}
	return nil
}
