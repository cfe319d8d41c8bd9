package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abstraxion/abstraxion-dashboard/apps/dashboard/templates"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/mocks"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testSessionID = "7f3c9a52-3f4e-4d8a-9a59-2a0d5f1f6b11"

func init() {
	logger.Log = zap.NewNop()
}

type handlerTestEnv struct {
	modal   *mocks.MockModalService
	grant   *mocks.MockGrantService
	connect *mocks.MockConnectService
	common  *CommonServices
	router  *gin.Engine
}

// requestContext configures what the session and auth middlewares would have
// stored on the gin context.
type requestContext struct {
	sessionID    string
	session      *business.Session
	sessionError string
}

func newHandlerTestEnv(t *testing.T, rc requestContext) *handlerTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	env := &handlerTestEnv{
		modal:   mocks.NewMockModalService(ctrl),
		grant:   mocks.NewMockGrantService(ctrl),
		connect: mocks.NewMockConnectService(ctrl),
	}
	env.common = NewCommonServices(CommonServicesConfig{
		ModalService:   env.modal,
		GrantService:   env.grant,
		ConnectService: env.connect,
		Mainnet:        false,
	})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if rc.sessionID != "" {
			c.Set(constants.SessionIDKey, rc.sessionID)
		}
		if rc.session != nil {
			c.Set(constants.SessionClaimsKey, rc.session)
		}
		if rc.sessionError != "" {
			c.Set(constants.SessionErrorKey, rc.sessionError)
		}
		c.Next()
	})

	modalHandler := NewModalHandler(env.common, templates.MustParse())
	grantHandler := NewGrantHandler(env.common)
	sessionHandler := NewSessionHandler(env.common)

	router.GET(PathModal, modalHandler.ShowModal)
	router.POST(PathClose, modalHandler.CloseModal)
	router.POST(PathOpen, modalHandler.OpenModal)
	router.POST(PathDisconnect, modalHandler.Disconnect)
	router.GET("/api/v1/modal", modalHandler.GetModalState)
	router.GET("/api/v1/grants/request", grantHandler.GetGrantRequest)
	router.POST(PathMessages, grantHandler.BuildGrantMessages)
	router.POST("/api/v1/session/connect", sessionHandler.ConnectWallet)
	router.POST("/api/v1/session/disconnect", sessionHandler.DisconnectWallet)
	router.GET("/api/v1/session/connect-uri", sessionHandler.GetConnectURI)

	env.router = router
	return env
}

func (e *handlerTestEnv) do(method, target string, body io.Reader, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
