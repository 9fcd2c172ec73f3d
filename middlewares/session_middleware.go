// middlewares/session_middleware.go
package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "sessionId"

// SessionTokenKey is the gin context key the raw token is stored under.
const SessionTokenKey = "sessionToken"

// SessionRequired rejects any request that carries no session cookie.
// It checks presence only; resolving the token to a user (and rejecting
// tokens that match nobody) is done by the handlers, all with the same
// policy: unknown token is treated like a missing one.
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: sessionId cookie missing"})
			return
		}

		c.Set(SessionTokenKey, token)
		c.Next()
	}
}
