package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/pkg/apperrors"
)

type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// errorMappings is checked in order; the first sentinel err matches wins.
var errorMappings = []errorMapping{
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
	{apperrors.ErrUnknownPage, http.StatusBadRequest, dto.ErrorCodeUnknownPage, "Unknown page"},
	{apperrors.ErrInvalidOTP, http.StatusUnauthorized, dto.ErrorCodeInvalidOTP, "Invalid or expired code"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrInvalidFormat, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token format"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
	{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
	{apperrors.ErrPhoneAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Phone already registered"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, "Conflict"},
	{apperrors.ErrConfirmationRequired, http.StatusPreconditionFailed, dto.ErrorCodeConfirmationRequired, "Confirmation required"},
	{apperrors.ErrRateLimited, http.StatusTooManyRequests, dto.ErrorCodeRateLimited, "Too many requests"},
	{apperrors.ErrIdentityUnavailable, http.StatusServiceUnavailable, dto.ErrorCodeExternalServiceError, "Identity service unavailable"},
	{apperrors.ErrNotInitialized, http.StatusServiceUnavailable, dto.ErrorCodeInternalServer, "Application state is not ready"},
	{apperrors.ErrPersistFailed, http.StatusInternalServerError, dto.ErrorCodePersistFailed, "Could not save your changes"},
}

// HandleAPIError writes the error response for err. Application errors keep
// their user-facing message; anything unrecognised becomes a 500.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := ErrorResponseFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Int("status", status).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, dto.NewFailureResponse(detail))
}

// ErrorResponseFor maps err to an HTTP status and error detail.
func ErrorResponseFor(err error) (int, *dto.ErrorDetail) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, dto.HandleValidationError(verrs)
	}

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		detail := dto.NewErrorDetail(m.code, m.message)
		var ce *apperrors.CustomError
		if errors.As(err, &ce) {
			if ce.Message != "" {
				detail.Message = ce.Message
			}
			if field, ok := ce.Details["field"].(string); ok {
				detail.WithField(field)
			}
		}
		return m.status, detail
	}

	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
}
