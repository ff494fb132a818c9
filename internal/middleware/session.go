package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/planet-detroit/civic-action-api/internal/service"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
	"github.com/planet-detroit/civic-action-api/pkg/response"
)

// SessionCookieName is the cookie carrying the editor session token.
const SessionCookieName = "civic_session"

// ContextClaimsKey is the gin context key storing session claims.
const ContextClaimsKey = "sessionClaims"

// Session protects editor routes by requiring a valid session cookie.
func Session(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := authService.Verify(token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}
