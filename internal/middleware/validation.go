package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/campushub/internal/pkg/validation"
)

// BindJSON binds the request body into obj, writing a 400 response and
// returning false when the body is malformed or fails validation.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleAPIError(c, validation.Translate(err))
		return false
	}
	return true
}

// BindQuery binds query parameters into obj the same way as BindJSON.
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		HandleAPIError(c, validation.Translate(err))
		return false
	}
	return true
}
