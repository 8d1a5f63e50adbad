package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cafe-admin-api/apperr"
	"cafe-admin-api/auth"
)

const (
	ctxUserID = "userID"
	ctxEmail  = "email"
	ctxName   = "name"
)

// AuthRequired validates the JWT and injects claims into context
func AuthRequired(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abort(c, apperr.Auth("Not Signed In", "Authorization header required (Bearer <token>)", nil))
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			abort(c, apperr.Auth("Session Expired", "Invalid or expired token", err))
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxName, claims.Name)
		c.Next()
	}
}

func abort(c *gin.Context, e *apperr.Error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": e})
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// GetEmail extracts caller email from context; empty when unauthenticated
func GetEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}
