// Package seed supplies the built-in community dataset used whenever the
// persisted state is missing a key, and the default rows of the identity
// database.
package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models"
	appRepos "github.com/yigit/campushub/internal/app/repositories"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// Provider supplies default state, the user directory and dashboard counters.
type Provider interface {
	Defaults() models.AppData
	Users() []models.User
	Stats() models.DashboardStats
}

// ChatPhrases are the canned texts the chat simulator posts.
var ChatPhrases = []string{
	"Anyone up for a study group?",
	"The cafeteria food is actually good today!",
	"Does anyone have notes from yesterday's lecture?",
	"Looking for a study buddy for finals",
	"Just finished the assignment, feeling relieved!",
	"Who's going to the game this weekend?",
	"Library is packed today 📚",
	"Found a great coffee shop near campus!",
}

// CreateDefaultData makes sure the configured admin phone has a profile
// holding the admin role. It is safe to run on every start.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, adminPhone string, lgr zerolog.Logger) error {
	if adminPhone == "" {
		lgr.Info().Msg("No admin phone configured, skipping identity seed")
		return nil
	}

	profileRepo := appRepos.NewProfileRepository(dbPool)
	roleRepo := appRepos.NewRoleRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default identity data...")
	var finalErr error

	admin, err := profileRepo.GetByPhone(ctx, adminPhone)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Info().Msg("Creating default admin profile...")
		// Admins sign in with a one-time code; the password is never handed out.
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing admin password")
			return errors.Join(finalErr, hashErr)
		}
		admin = &models.Profile{
			Phone:        adminPhone,
			PasswordHash: string(hash),
			Name:         "Administrator",
		}
		err = profileRepo.Create(ctx, admin)
		if errors.Is(err, apperrors.ErrPhoneAlreadyExists) {
			// Lost a race with a concurrent start.
			admin, err = profileRepo.GetByPhone(ctx, adminPhone)
		}
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Error loading admin profile")
		finalErr = errors.Join(finalErr, err)
	}

	if admin != nil {
		if err := roleRepo.AssignRole(ctx, admin.ID, models.RoleAdmin); err != nil {
			lgr.Error().Err(err).Str("profileID", admin.ID).Msg("Error assigning admin role")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("profileID", admin.ID).Msg("Admin role ensured")
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
