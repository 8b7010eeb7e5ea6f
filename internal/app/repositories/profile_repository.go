package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"github.com/yigit/campushub/internal/pkg/dberrors"
	"github.com/yigit/campushub/internal/pkg/logger"
)

var profileColumns = []string{
	"id", "phone", "password_hash", "name", "email", "roll_no", "dob",
	"college", "year", "branch", "skills", "achievements", "created_at", "updated_at",
}

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a profile, assigning its id and timestamps.
func (r *ProfileRepository) Create(ctx context.Context, p *models.Profile) error {
	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	p.CreatedAt, p.UpdatedAt = now, now

	sql, args, err := r.sb.Insert("profiles").
		Columns(profileColumns...).
		Values(p.ID, p.Phone, p.PasswordHash, p.Name, p.Email, p.RollNo, p.DOB,
			p.College, p.Year, p.Branch, p.Skills, p.Achievements, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create profile SQL")
		return fmt.Errorf("failed to build create profile query: %w", err)
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "profiles_phone_key") {
			return apperrors.ErrPhoneAlreadyExists
		}
		logger.Error().Err(err).Str("profileID", p.ID).Msg("Error executing create profile query")
		return fmt.Errorf("error creating profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by id.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByPhone retrieves a profile by phone number.
func (r *ProfileRepository) GetByPhone(ctx context.Context, phone string) (*models.Profile, error) {
	return r.getOne(ctx, squirrel.Eq{"phone": phone})
}

func (r *ProfileRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Profile, error) {
	sql, args, err := r.sb.Select(profileColumns...).
		From("profiles").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get profile SQL")
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	p := &models.Profile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.Phone, &p.PasswordHash, &p.Name, &p.Email, &p.RollNo, &p.DOB,
		&p.College, &p.Year, &p.Branch, &p.Skills, &p.Achievements, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return p, nil
}

// UpdateSkills replaces the skills list of a profile.
func (r *ProfileRepository) UpdateSkills(ctx context.Context, id string, skills []string) error {
	return r.updateList(ctx, id, "skills", skills)
}

// UpdateAchievements replaces the achievements list of a profile.
func (r *ProfileRepository) UpdateAchievements(ctx context.Context, id string, achievements []string) error {
	return r.updateList(ctx, id, "achievements", achievements)
}

func (r *ProfileRepository) updateList(ctx context.Context, id, column string, values []string) error {
	if values == nil {
		values = []string{}
	}
	sql, args, err := r.sb.Update("profiles").
		Set(column, values).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("column", column).Msg("Error building update profile SQL")
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("profileID", id).Str("column", column).Msg("Error executing update profile query")
		return fmt.Errorf("error updating profile %s: %w", column, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
