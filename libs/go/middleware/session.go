package middleware

import (
	"net/http"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieMaxAge = 30 * 24 * 60 * 60

// SessionMiddleware gives every browser a random session id kept in a cookie.
// Wallet connections are keyed by this id.
func SessionMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(constants.SessionCookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(constants.SessionCookieName, sessionID, sessionCookieMaxAge, "/", "", secure, true)
		}

		c.Set(constants.SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the dashboard session id of the request.
func GetSessionID(c *gin.Context) string {
	return c.GetString(constants.SessionIDKey)
}
