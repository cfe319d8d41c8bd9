package handlers

import (
	"net/http"
	"net/url"

	"github.com/abstraxion/abstraxion-dashboard/apps/dashboard/constants"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/client/auth"
	libconstants "github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/interfaces"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/middleware"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommonServices holds the dependencies shared by the dashboard handlers
type CommonServices struct {
	ModalService   interfaces.ModalService
	GrantService   interfaces.GrantService
	ConnectService interfaces.ConnectService
	mainnet        bool
	secureCookies  bool
	logger         *zap.Logger
}

// ErrorResponse represents a standard error response
type ErrorResponse = responses.ErrorResponse

// SuccessResponse represents a standard success response
type SuccessResponse = responses.SuccessResponse

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	ModalService   interfaces.ModalService
	GrantService   interfaces.GrantService
	ConnectService interfaces.ConnectService
	Mainnet        bool
	SecureCookies  bool
	Logger         *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.ForComponent(logger.ComponentServer)
	}

	return &CommonServices{
		ModalService:   config.ModalService,
		GrantService:   config.GrantService,
		ConnectService: config.ConnectService,
		mainnet:        config.Mainnet,
		secureCookies:  config.SecureCookies,
		logger:         config.Logger,
	}
}

// IsMainnet reports whether the dashboard serves XION mainnet
func (s *CommonServices) IsMainnet() bool {
	return s.mainnet
}

// GetLogger returns the handler logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// setCookie writes a Lax cookie scoped to the whole dashboard
func (s *CommonServices) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", s.secureCookies, true)
}

// clearCookie expires a cookie immediately
func (s *CommonServices) clearCookie(c *gin.Context, name string) {
	s.setCookie(c, name, "", -1)
}

// requestSession returns the dashboard session id and the authenticator of a
// verified auth provider session, if any.
func requestSession(c *gin.Context) (sessionID, authenticator string) {
	return middleware.GetSessionID(c), auth.Authenticator(c)
}

// withQuery appends the request's raw query to path so that grant parameters
// survive redirects and form posts.
func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// modalClosed reports whether the visitor dismissed the modal
func modalClosed(c *gin.Context) bool {
	value, err := c.Cookie(libconstants.ModalClosedCookieName)
	return err == nil && value == constants.TrueString
}

// sendError logs the error with the request's correlation id and sends a JSON
// error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	log := requestLog(c)
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Info(message, fields...)
	}

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// sendSuccess sends a JSON success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// requestLog returns the server logger tagged with the request's correlation id
func requestLog(c *gin.Context) *zap.Logger {
	return middleware.LogWithCorrelationID(c.Request.Context(), logger.ComponentServer)
}
