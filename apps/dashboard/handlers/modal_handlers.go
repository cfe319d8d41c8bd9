package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/abstraxion/abstraxion-dashboard/apps/dashboard/constants"
	"github.com/abstraxion/abstraxion-dashboard/apps/dashboard/templates"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/client/auth"
	libconstants "github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/helpers"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/screen"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/params"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/responses"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dashboard page routes
const (
	PathModal      = "/"
	PathClose      = "/close"
	PathOpen       = "/open"
	PathDisconnect = "/disconnect"
	PathMessages   = "/api/v1/grants/messages"
)

// ModalHandler renders the dashboard modal
type ModalHandler struct {
	common    *CommonServices
	templates *template.Template
}

// NewModalHandler creates a modal handler. tmpl must contain the dashboard
// templates.
func NewModalHandler(common *CommonServices, tmpl *template.Template) *ModalHandler {
	return &ModalHandler{
		common:    common,
		templates: tmpl,
	}
}

type pageData struct {
	Open            bool
	Mainnet         bool
	NetworkLabel    string
	ScreenKind      screen.Kind
	ScreenHTML      template.HTML
	ShowTermsFooter bool
	CloseAction     string
	OpenAction      string
	DisclaimerURL   string
	PoweredByURL    string
}

type errorScreenData struct {
	Message     string
	CloseAction string
}

type grantScreenData struct {
	Grantee          string
	AccountID        string
	Contracts        []string
	Bank             []string
	Stake            bool
	MessagesEndpoint string
}

type walletsScreenData struct {
	AccountID        string
	WalletAddress    string
	WalletType       string
	DisconnectAction string
}

type signInScreenData struct {
	ConnectURI    string
	QRCodeDataURL template.URL
}

// pageErrorMessage is the message shown on the error screen. A flash set by
// a previous redirect wins over a rejected session token.
func (h *ModalHandler) pageErrorMessage(c *gin.Context) string {
	if message := h.common.takeFlashError(c); message != "" {
		return message
	}
	return auth.SessionErrorFromContext(c)
}

func (h *ModalHandler) buildModal(c *gin.Context, errorMessage string) (*business.ModalView, error) {
	sessionID, authenticator := requestSession(c)
	return h.common.ModalService.BuildModal(c.Request.Context(), params.BuildModalParams{
		SessionID:     sessionID,
		Authenticator: authenticator,
		Query:         c.Request.URL.Query(),
		Open:          !modalClosed(c),
		ErrorMessage:  errorMessage,
	})
}

// ShowModal godoc
// @Summary Render the dashboard modal
// @Description Renders the modal page. The screen depends on the query string and the connection state.
// @Tags modal
// @Produce html
// @Param grantee query string false "Grantee address"
// @Param contracts query string false "Contract addresses, JSON array or comma separated"
// @Param bank query string false "Spend limits, JSON array of coins"
// @Param stake query string false "Any non-empty value requests staking permissions"
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *ModalHandler) ShowModal(c *gin.Context) {
	view, err := h.buildModal(c, h.pageErrorMessage(c))
	status := http.StatusOK
	if err != nil {
		requestLog(c).Error("Failed to build modal", zap.Error(err))
		status = http.StatusInternalServerError
		view = &business.ModalView{
			Open:    true,
			Mainnet: h.common.IsMainnet(),
			Screen:  screen.ErrorDisplay{Message: constants.FailedToBuildModal},
		}
	}

	page, err := h.render(view, c.Request.URL.Query())
	if err != nil {
		requestLog(c).Error("Failed to render modal", zap.Error(err))
		c.String(http.StatusInternalServerError, constants.FailedToBuildModal)
		return
	}
	c.Data(status, "text/html; charset=utf-8", page)
}

// CloseModal godoc
// @Summary Close the dashboard modal
// @Description Dismisses the modal, clears any error and logs out of the auth provider session
// @Tags modal
// @Success 303
// @Router /close [post]
func (h *ModalHandler) CloseModal(c *gin.Context) {
	h.common.setCookie(c, libconstants.ModalClosedCookieName, constants.TrueString, 0)
	h.common.clearCookie(c, libconstants.ErrorFlashCookieName)
	if auth.SessionErrorFromContext(c) != "" {
		h.common.clearCookie(c, libconstants.SessionJWTCookieName)
	}
	c.Redirect(http.StatusSeeOther, withQuery(PathModal, c.Request.URL.Query()))
}

// OpenModal godoc
// @Summary Reopen the dashboard modal
// @Tags modal
// @Success 303
// @Router /open [post]
func (h *ModalHandler) OpenModal(c *gin.Context) {
	h.common.clearCookie(c, libconstants.ModalClosedCookieName)
	c.Redirect(http.StatusSeeOther, withQuery(PathModal, c.Request.URL.Query()))
}

// Disconnect godoc
// @Summary Disconnect the wallet from the page
// @Description Removes the session's wallet connection and auth provider session, then returns to the modal
// @Tags modal
// @Success 303
// @Router /disconnect [post]
func (h *ModalHandler) Disconnect(c *gin.Context) {
	location := withQuery(PathModal, c.Request.URL.Query())
	sessionID, _ := requestSession(c)

	h.common.clearCookie(c, libconstants.SessionJWTCookieName)
	if err := h.common.ConnectService.Disconnect(c.Request.Context(), sessionID); err != nil {
		requestLog(c).Error("Failed to disconnect wallet", zap.Error(err))
		h.common.redirectWithError(c, location, constants.FailedToDisconnect)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

// GetModalState godoc
// @Summary Get the modal state
// @Description Returns the screen the modal would show for the current query string and session
// @Tags modal
// @Produce json
// @Param grantee query string false "Grantee address"
// @Param contracts query string false "Contract addresses, JSON array or comma separated"
// @Param bank query string false "Spend limits, JSON array of coins"
// @Param stake query string false "Any non-empty value requests staking permissions"
// @Success 200 {object} responses.ModalStateResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/modal [get]
func (h *ModalHandler) GetModalState(c *gin.Context) {
	view, err := h.buildModal(c, auth.SessionErrorFromContext(c))
	if err != nil {
		sendError(c, http.StatusInternalServerError, constants.FailedToBuildModal, err)
		return
	}
	sendSuccess(c, http.StatusOK, h.toModalStateResponse(view))
}

func (h *ModalHandler) toModalStateResponse(view *business.ModalView) responses.ModalStateResponse {
	resp := responses.ModalStateResponse{
		Open:    view.Open,
		Network: helpers.NetworkLabel(h.common.IsMainnet()),
	}
	if !view.Open {
		return resp
	}

	grantResp := responses.NewGrantRequestResponse(view.Grant)
	resp.Screen = string(view.Screen.Kind())
	resp.Connected = view.Account.Connected
	resp.AccountID = view.Account.AccountID
	resp.Grant = &grantResp
	resp.ShowTermsFooter = view.ShowTermsFooter
	if errScreen, ok := view.Screen.(screen.ErrorDisplay); ok {
		resp.ErrorMessage = errScreen.Message
	}
	if view.ConnectLink != nil {
		resp.ConnectURI = view.ConnectLink.URI
	}
	return resp
}

// render executes the screen template chosen by the screen variant and wraps
// it in the base page.
func (h *ModalHandler) render(view *business.ModalView, query url.Values) ([]byte, error) {
	page := pageData{
		Open:            view.Open,
		Mainnet:         view.Mainnet,
		NetworkLabel:    helpers.NetworkLabel(view.Mainnet),
		ShowTermsFooter: view.ShowTermsFooter,
		CloseAction:     withQuery(PathClose, query),
		OpenAction:      withQuery(PathOpen, query),
		DisclaimerURL:   libconstants.DisclaimerURL,
		PoweredByURL:    libconstants.PoweredByURL,
	}

	if view.Open {
		name, data, err := screenTemplate(view, query)
		if err != nil {
			return nil, err
		}
		var screenBuf bytes.Buffer
		if err := h.templates.ExecuteTemplate(&screenBuf, name, data); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", name, err)
		}
		page.ScreenKind = view.Screen.Kind()
		page.ScreenHTML = template.HTML(screenBuf.String())
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, templates.TemplateBase, page); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}

func screenTemplate(view *business.ModalView, query url.Values) (string, interface{}, error) {
	switch s := view.Screen.(type) {
	case screen.ErrorDisplay:
		return templates.TemplateError, errorScreenData{
			Message:     s.Message,
			CloseAction: withQuery(PathClose, query),
		}, nil
	case screen.GrantFlow:
		return templates.TemplateGrant, grantScreenData{
			Grantee:          s.Request.Grantee,
			AccountID:        view.Account.AccountID,
			Contracts:        s.Request.Contracts,
			Bank:             s.Request.Bank,
			Stake:            s.Request.Stake,
			MessagesEndpoint: withQuery(PathMessages, query),
		}, nil
	case screen.WalletList:
		data := walletsScreenData{
			AccountID:        view.Account.AccountID,
			DisconnectAction: withQuery(PathDisconnect, query),
		}
		if conn := view.Account.Connection; conn != nil {
			data.WalletAddress = conn.Address
			data.WalletType = conn.WalletType
		}
		return templates.TemplateWallets, data, nil
	case screen.SignIn:
		data := signInScreenData{}
		if link := view.ConnectLink; link != nil {
			data.ConnectURI = link.URI
			// Produced by the connect service from PNG bytes
			data.QRCodeDataURL = template.URL(link.QRCodeDataURL)
		}
		return templates.TemplateSignIn, data, nil
	default:
		return "", nil, fmt.Errorf("unknown screen %T", view.Screen)
	}
}
