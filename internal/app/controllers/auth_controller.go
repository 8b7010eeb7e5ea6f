package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/services"
	"github.com/yigit/campushub/internal/middleware"
)

// AuthController handles sign-up and one-time code login
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// SignUp godoc
// @Summary Register a student identity
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Sign-up form"
// @Success 201 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Phone already registered"
// @Failure 503 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /auth/signup [post]
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req dto.SignUpRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	profile, err := c.authService.SignUp(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Debug().Err(err).Msg("Sign-up rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Account created", profile))
}

// RequestOTP godoc
// @Summary Request a one-time login code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RequestOTPRequest true "Phone"
// @Success 200 {object} dto.APIResponse{data=dto.OTPRequestedResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 503 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /auth/otp/request [post]
func (c *AuthController) RequestOTP(ctx *gin.Context) {
	var req dto.RequestOTPRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.RequestOTP(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Code sent", resp))
}

// VerifyOTP godoc
// @Summary Sign in with a one-time code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Phone and code"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid or expired code"
// @Failure 503 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /auth/otp/verify [post]
func (c *AuthController) VerifyOTP(ctx *gin.Context) {
	var req dto.VerifyOTPRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	token, err := c.authService.VerifyOTP(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(token))
}
