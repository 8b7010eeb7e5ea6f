package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"github.com/yigit/campushub/internal/pkg/auth"
	"github.com/yigit/campushub/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.RegisterGinRules()
}

func TestErrorResponseFor(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"validation", apperrors.NewValidationError("text", "text is required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "text is required"},
		{"not found", apperrors.NewResourceNotFoundError("question q9 not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "question q9 not found"},
		{"confirmation", &apperrors.CustomError{Err: apperrors.ErrConfirmationRequired}, http.StatusPreconditionFailed, dto.ErrorCodeConfirmationRequired, "Confirmation required"},
		{"rate limited", apperrors.ErrRateLimited, http.StatusTooManyRequests, dto.ErrorCodeRateLimited, "Too many requests"},
		{"identity", apperrors.NewIdentityError(errors.New("dial tcp: refused")), http.StatusServiceUnavailable, dto.ErrorCodeExternalServiceError, "dial tcp: refused"},
		{"persist", &apperrors.CustomError{Err: apperrors.ErrPersistFailed, Message: "could not save chatMessages"}, http.StatusInternalServerError, dto.ErrorCodePersistFailed, "could not save chatMessages"},
		{"phone taken", apperrors.ErrPhoneAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Phone already registered"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := ErrorResponseFor(tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.code, detail.Code)
			require.Equal(t, tt.message, detail.Message)
		})
	}

	_, detail := ErrorResponseFor(apperrors.NewValidationError("price", "price is required"))
	require.Equal(t, "price", detail.Field)
}

func TestBindJSONReportsFirstInvalidField(t *testing.T) {
	router := gin.New()
	router.POST("/items", func(c *gin.Context) {
		var req dto.CreateListingRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	body := `{"title":"Lamp","description":"LED","price":-3,"condition":"Good","category":"Furniture","location":"North"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "price", resp.Error.Field)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("{")))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", AccessTokenExp: time.Hour})
	token, _, err := jwtService.GenerateAccessToken(&models.Profile{ID: "p-1", Phone: "9876543210"})
	require.NoError(t, err)

	mw := NewAuthMiddleware(jwtService)
	router := gin.New()
	router.GET("/private", mw.JWTAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID))
	})
	router.GET("/public", mw.OptionalJWTAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "viewer="+c.GetString(ContextUserID))
	})

	do := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusUnauthorized, do("/private", "").Code)
	require.Equal(t, http.StatusUnauthorized, do("/private", "Bearer nope").Code)

	w := do("/private", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "p-1", w.Body.String())

	require.Equal(t, http.StatusOK, do("/private?token="+token, "").Code)

	w = do("/public", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "viewer=", w.Body.String())

	w = do("/public", token)
	require.Equal(t, "viewer=p-1", w.Body.String())
}
