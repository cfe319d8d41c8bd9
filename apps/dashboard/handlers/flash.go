package handlers

import (
	"net/http"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/constants"

	"github.com/gin-gonic/gin"
)

// flashMaxAge is long enough to survive the redirect that follows
const flashMaxAge = 60

// setFlashError stores an error message for the next page render. gin query
// escapes cookie values on write and unescapes them on read.
func (s *CommonServices) setFlashError(c *gin.Context, message string) {
	s.setCookie(c, constants.ErrorFlashCookieName, message, flashMaxAge)
}

// takeFlashError reads and clears the error flash message
func (s *CommonServices) takeFlashError(c *gin.Context) string {
	message, err := c.Cookie(constants.ErrorFlashCookieName)
	if err != nil {
		return ""
	}
	s.clearCookie(c, constants.ErrorFlashCookieName)
	return message
}

// redirectWithError redirects and leaves an error flash message
func (s *CommonServices) redirectWithError(c *gin.Context, location, message string) {
	s.setFlashError(c, message)
	c.Redirect(http.StatusSeeOther, location)
}
