package auth

import (
	"strings"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/interfaces"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AttachSession reads an optional session token from the Authorization header
// or the session cookie. A valid session is stored on the context; a rejected
// token stores its error message instead. Requests are never aborted.
func AttachSession(verifier interfaces.SessionVerifier) gin.HandlerFunc {
	log := logger.ForComponent(logger.ComponentAuth)

	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" || verifier == nil {
			c.Next()
			return
		}

		session, err := verifier.VerifySession(c.Request.Context(), token)
		if err != nil {
			log.Debug("Session token rejected",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
			c.Set(constants.SessionErrorKey, err.Error())
			c.Next()
			return
		}

		c.Set(constants.SessionClaimsKey, session)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(constants.SessionJWTCookieName); err == nil {
		return cookie
	}
	return ""
}

// SessionFromContext returns the verified session, if any.
func SessionFromContext(c *gin.Context) *business.Session {
	if v, ok := c.Get(constants.SessionClaimsKey); ok {
		if session, ok := v.(*business.Session); ok {
			return session
		}
	}
	return nil
}

// SessionErrorFromContext returns the message of a rejected session token.
func SessionErrorFromContext(c *gin.Context) string {
	return c.GetString(constants.SessionErrorKey)
}

// Authenticator returns the authenticator of the verified session or "".
func Authenticator(c *gin.Context) string {
	if session := SessionFromContext(c); session != nil {
		return session.Authenticator
	}
	return ""
}
