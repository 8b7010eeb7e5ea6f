package services

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"github.com/yigit/campushub/internal/pkg/validation"
)

// Masks shown to viewers who may not see private fields
const (
	MaskedEmail  = "••••••••@••••.com"
	MaskedPhone  = "+91 •••••• ••••"
	MaskedRollNo = "••••••••"
	MaskedDOB    = "••/••/••••"
)

// ProfileService defines the interface for identity profile operations
type ProfileService interface {
	GetProfile(ctx context.Context, viewerID, userID string) (*dto.ProfileResponse, error)
	AddSkill(ctx context.Context, userID, skill string) ([]string, error)
	AddAchievement(ctx context.Context, userID, achievement string) ([]string, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type profileServiceImpl struct {
	profiles ProfileStore
	roles    RoleStore
	logger   zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profiles ProfileStore, roles RoleStore, logger zerolog.Logger) ProfileService {
	return &profileServiceImpl{
		profiles: profiles,
		roles:    roles,
		logger:   logger.With().Str("service", "profile").Logger(),
	}
}

// GetProfile returns userID's profile. Private fields are masked unless the
// viewer is an admin, including when viewers look at their own profile.
func (s *profileServiceImpl) GetProfile(ctx context.Context, viewerID, userID string) (*dto.ProfileResponse, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	admin, err := s.IsAdmin(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	resp := toProfileResponse(profile, !admin)
	resp.IsAdmin = admin
	return &resp, nil
}

// AddSkill adds skill to the profile's skill set
func (s *profileServiceImpl) AddSkill(ctx context.Context, userID, skill string) ([]string, error) {
	if err := validation.Struct(dto.AddSkillRequest{Skill: skill}); err != nil {
		return nil, err
	}
	skill = strings.TrimSpace(skill)

	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if slices.Contains(profile.Skills, skill) {
		return profile.Skills, nil
	}

	skills := append(slices.Clone(profile.Skills), skill)
	if err := s.profiles.UpdateSkills(ctx, profile.ID, skills); err != nil {
		return nil, s.translate(err)
	}
	s.logger.Info().Str("profileID", profile.ID).Str("skill", skill).Msg("Skill added")
	return skills, nil
}

// AddAchievement appends an achievement line to the profile
func (s *profileServiceImpl) AddAchievement(ctx context.Context, userID, achievement string) ([]string, error) {
	if err := validation.Struct(dto.AddProfileAchievementRequest{Achievement: achievement}); err != nil {
		return nil, err
	}
	achievement = strings.TrimSpace(achievement)

	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	achievements := append(slices.Clone(profile.Achievements), achievement)
	if err := s.profiles.UpdateAchievements(ctx, profile.ID, achievements); err != nil {
		return nil, s.translate(err)
	}
	s.logger.Info().Str("profileID", profile.ID).Msg("Profile achievement added")
	return achievements, nil
}

// IsAdmin reports whether userID holds the admin role. A failed lookup is
// reported as ErrIdentityUnavailable rather than as a non-admin.
func (s *profileServiceImpl) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	ok, err := s.roles.HasRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", userID).Msg("Role lookup failed")
		return false, apperrors.NewIdentityError(err)
	}
	return ok, nil
}

func (s *profileServiceImpl) load(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, s.translate(err)
	}
	return profile, nil
}

func (s *profileServiceImpl) translate(err error) error {
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.NewResourceNotFoundError("Profile not found")
	}
	return apperrors.NewIdentityError(err)
}

func toProfileResponse(p *models.Profile, masked bool) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		ID:           p.ID,
		Phone:        p.Phone,
		Name:         p.Name,
		Email:        p.Email,
		RollNo:       p.RollNo,
		DOB:          p.DOB,
		College:      p.College,
		Year:         p.Year,
		Branch:       p.Branch,
		Skills:       slices.Clone(p.Skills),
		Achievements: slices.Clone(p.Achievements),
		Masked:       masked,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if resp.Achievements == nil {
		resp.Achievements = []string{}
	}
	if masked {
		resp.Email = mask(resp.Email, MaskedEmail)
		resp.Phone = mask(resp.Phone, MaskedPhone)
		resp.RollNo = mask(resp.RollNo, MaskedRollNo)
		resp.DOB = mask(resp.DOB, MaskedDOB)
	}
	return resp
}

func mask(value, masked string) string {
	if value == "" {
		return ""
	}
	return masked
}
