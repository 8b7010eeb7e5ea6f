package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "userID"
	ContextPhone  = "phone"
)

// AuthMiddleware authenticates identity-backed requests
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth rejects requests without a valid session token
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := tokenSource(c)
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewFailureResponse(errorDetail))
			return
		}

		if !m.authenticate(c, authHeader) {
			return
		}
		c.Next()
	}
}

// OptionalJWTAuth identifies the caller when a token is present and lets
// anonymous requests through.
func (m *AuthMiddleware) OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := tokenSource(c); authHeader != "" && !m.authenticate(c, authHeader) {
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context, authHeader string) bool {
	var tokenString string
	// Raw JWTs are accepted for Swagger UI convenience
	if strings.Count(authHeader, ".") == 2 && !strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = authHeader
	} else {
		tokenString, _ = auth.ExtractBearerToken(strings.Trim(authHeader, "\"'"))
	}

	claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
	if err != nil {
		errorCode := dto.ErrorCodeInvalidToken
		errorDetails := "Invalid token"
		if errors.Is(err, auth.ErrExpiredToken) {
			errorCode = dto.ErrorCodeExpiredToken
			errorDetails = "Token has expired"
		}

		errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed").WithDetails(errorDetails)
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewFailureResponse(errorDetail))
		return false
	}

	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextPhone, claims.Phone)
	return true
}

// tokenSource reads the Authorization header, falling back to query
// parameters for websocket and Swagger UI clients.
func tokenSource(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		return h
	}
	for _, key := range []string{"authorization", "Authorization", "token"} {
		if q := c.Query(key); q != "" {
			return q
		}
	}
	return ""
}
