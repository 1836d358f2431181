package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barberia-elite/booking-api/internal/auth"
	"github.com/barberia-elite/booking-api/internal/httperr"
)

const ContextAdminUser = "adminUser"

// AdminAuth guards admin-only routes. It only answers the capability
// question "is the caller admin?"; everything past this middleware assumes
// the check already passed.
func AdminAuth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := verifier.VerifyAdmin(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextAdminUser, claims.Username)
		c.Next()
	}
}

// AdminActor returns the authenticated admin username, empty on public routes.
func AdminActor(c *gin.Context) string {
	return c.GetString(ContextAdminUser)
}
