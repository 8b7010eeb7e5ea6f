package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"github.com/yigit/campushub/internal/pkg/auth"
	"github.com/yigit/campushub/internal/pkg/validation"
)

// ProfileStore persists identity profiles
type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByPhone(ctx context.Context, phone string) (*models.Profile, error)
	UpdateSkills(ctx context.Context, id string, skills []string) error
	UpdateAchievements(ctx context.Context, id string, achievements []string) error
}

// RoleStore answers role lookups
type RoleStore interface {
	HasRole(ctx context.Context, userID string, role models.RoleType) (bool, error)
}

// OTPStore persists pending one-time codes
type OTPStore interface {
	Save(ctx context.Context, code models.OTPCode) error
	Get(ctx context.Context, phone string) (*models.OTPCode, error)
	IncrementAttempts(ctx context.Context, phone string) error
	Delete(ctx context.Context, phone string) error
}

// OTPSender delivers a one-time code to a phone
type OTPSender interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// LogOTPSender writes codes to the log. It stands in for an SMS gateway.
type LogOTPSender struct {
	Logger zerolog.Logger
}

// SendOTP implements OTPSender
func (s LogOTPSender) SendOTP(_ context.Context, phone, code string) error {
	s.Logger.Info().Str("phone", phone).Str("code", code).Msg("One-time code issued")
	return nil
}

// AuthConfig holds one-time code settings
type AuthConfig struct {
	OTPTTL      time.Duration
	OTPLength   int
	MaxAttempts int
}

// AuthService handles sign-up and one-time code login
type AuthService struct {
	profiles   ProfileStore
	otps       OTPStore
	sender     OTPSender
	jwtService *auth.JWTService
	config     AuthConfig
	now        func() time.Time
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	profiles ProfileStore,
	otps OTPStore,
	sender OTPSender,
	jwtService *auth.JWTService,
	config AuthConfig,
	logger zerolog.Logger,
) *AuthService {
	if config.OTPLength <= 0 {
		config.OTPLength = 6
	}
	if config.OTPTTL <= 0 {
		config.OTPTTL = 5 * time.Minute
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 5
	}
	return &AuthService{
		profiles:   profiles,
		otps:       otps,
		sender:     sender,
		jwtService: jwtService,
		config:     config,
		now:        time.Now,
		logger:     logger.With().Str("service", "auth").Logger(),
	}
}

// SignUp registers a new profile
func (s *AuthService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.ProfileResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	profile := &models.Profile{
		Phone:        req.Phone,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		RollNo:       strings.TrimSpace(req.RollNo),
		DOB:          req.DOB,
		College:      strings.TrimSpace(req.College),
		Year:         strings.TrimSpace(req.Year),
		Branch:       strings.TrimSpace(req.Branch),
		Skills:       []string{},
		Achievements: []string{},
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrPhoneAlreadyExists) {
			return nil, &apperrors.CustomError{Err: apperrors.ErrPhoneAlreadyExists, Message: "An account with this phone number already exists"}
		}
		s.logger.Error().Err(err).Msg("Failed to create profile")
		return nil, apperrors.NewIdentityError(err)
	}

	s.logger.Info().Str("profileID", profile.ID).Msg("Profile registered")
	resp := toProfileResponse(profile, false)
	return &resp, nil
}

// RequestOTP issues a one-time code for a registered phone
func (s *AuthService) RequestOTP(ctx context.Context, req *dto.RequestOTPRequest) (*dto.OTPRequestedResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.profiles.GetByPhone(ctx, req.Phone); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, &apperrors.CustomError{Err: apperrors.ErrUserNotFound, Message: "No account is registered with this phone number"}
		}
		return nil, apperrors.NewIdentityError(err)
	}

	code, err := auth.GenerateOTP(s.config.OTPLength)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(code)
	if err != nil {
		return nil, err
	}

	otp := models.OTPCode{Phone: req.Phone, CodeHash: hash, ExpiresAt: s.now().Add(s.config.OTPTTL)}
	if err := s.otps.Save(ctx, otp); err != nil {
		s.logger.Error().Err(err).Str("phone", req.Phone).Msg("Failed to save one-time code")
		return nil, apperrors.NewIdentityError(err)
	}
	if err := s.sender.SendOTP(ctx, req.Phone, code); err != nil {
		s.logger.Error().Err(err).Str("phone", req.Phone).Msg("Failed to deliver one-time code")
		return nil, apperrors.NewIdentityError(err)
	}

	return &dto.OTPRequestedResponse{Phone: req.Phone, ExpiresIn: int(s.config.OTPTTL.Seconds())}, nil
}

// VerifyOTP checks a one-time code and returns a session token. Codes are
// single use and are discarded after expiry or too many failed attempts.
func (s *AuthService) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.TokenResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	otp, err := s.otps.Get(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidOTP) {
			return nil, invalidOTP()
		}
		return nil, apperrors.NewIdentityError(err)
	}

	if !s.now().Before(otp.ExpiresAt) || otp.Attempts >= s.config.MaxAttempts {
		if err := s.otps.Delete(ctx, req.Phone); err != nil {
			s.logger.Warn().Err(err).Str("phone", req.Phone).Msg("Failed to discard spent one-time code")
		}
		return nil, invalidOTP()
	}

	if !auth.CheckPassword(otp.CodeHash, req.Code) {
		if err := s.otps.IncrementAttempts(ctx, req.Phone); err != nil {
			s.logger.Warn().Err(err).Str("phone", req.Phone).Msg("Failed to record one-time code attempt")
		}
		return nil, invalidOTP()
	}

	if err := s.otps.Delete(ctx, req.Phone); err != nil {
		return nil, apperrors.NewIdentityError(err)
	}

	profile, err := s.profiles.GetByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, invalidOTP()
		}
		return nil, apperrors.NewIdentityError(err)
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(profile)
	if err != nil {
		s.logger.Error().Err(err).Str("profileID", profile.ID).Msg("Failed to sign access token")
		return nil, err
	}

	s.logger.Info().Str("profileID", profile.ID).Msg("Signed in with one-time code")
	return &dto.TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresIn: int64(expiresIn), UserID: profile.ID}, nil
}

func invalidOTP() error {
	return &apperrors.CustomError{Err: apperrors.ErrInvalidOTP, Message: "Invalid or expired code"}
}
