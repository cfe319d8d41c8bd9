package handlers

import (
	"errors"
	"net/http"

	"github.com/abstraxion/abstraxion-dashboard/apps/dashboard/constants"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/grant"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/services"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/params"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/requests"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// SessionHandler connects and disconnects wallets for a dashboard session
type SessionHandler struct {
	common *CommonServices
}

// NewSessionHandler creates a session handler
func NewSessionHandler(common *CommonServices) *SessionHandler {
	return &SessionHandler{common: common}
}

// Use types from the centralized packages
type (
	ConnectWalletRequest = requests.ConnectWalletRequest
	ConnectionResponse   = responses.ConnectionResponse
	ConnectURIResponse   = responses.ConnectURIResponse
)

// ConnectWallet godoc
// @Summary Connect a wallet
// @Description Records the wallet the browser connected for the current session
// @Tags session
// @Accept json
// @Produce json
// @Param body body ConnectWalletRequest true "Wallet to connect"
// @Success 200 {object} ConnectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/session/connect [post]
func (h *SessionHandler) ConnectWallet(c *gin.Context) {
	var req ConnectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidRequestFormat, err)
		return
	}

	sessionID, _ := requestSession(c)
	conn, err := h.common.ConnectService.Connect(c.Request.Context(), params.ConnectWalletParams{
		SessionID:  sessionID,
		Address:    req.Address,
		WalletType: req.WalletType,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionRequired):
			sendError(c, http.StatusUnauthorized, constants.SessionMissing, err)
		case errors.Is(err, grant.ErrInvalidAddress):
			sendError(c, http.StatusBadRequest, err.Error(), err)
		default:
			sendError(c, http.StatusInternalServerError, constants.FailedToConnect, err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, ConnectionResponse{
		Object:      "wallet_connection",
		Address:     conn.Address,
		WalletType:  conn.WalletType,
		ConnectedAt: conn.ConnectedAt,
	})
}

// DisconnectWallet godoc
// @Summary Disconnect the wallet
// @Description Removes the wallet connection of the current session
// @Tags session
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/session/disconnect [post]
func (h *SessionHandler) DisconnectWallet(c *gin.Context) {
	sessionID, _ := requestSession(c)
	if err := h.common.ConnectService.Disconnect(c.Request.Context(), sessionID); err != nil {
		if errors.Is(err, services.ErrSessionRequired) {
			sendError(c, http.StatusUnauthorized, constants.SessionMissing, err)
			return
		}
		sendError(c, http.StatusInternalServerError, constants.FailedToDisconnect, err)
		return
	}
	sendSuccess(c, http.StatusOK, SuccessResponse{Message: "wallet disconnected"})
}

// GetConnectURI godoc
// @Summary Get the wallet connect link
// @Description Returns the deep link a wallet opens to connect to this session and its QR code
// @Tags session
// @Produce json
// @Success 200 {object} ConnectURIResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/session/connect-uri [get]
func (h *SessionHandler) GetConnectURI(c *gin.Context) {
	sessionID, _ := requestSession(c)
	link, err := h.common.ConnectService.ConnectLink(sessionID)
	if err != nil {
		if errors.Is(err, services.ErrSessionRequired) {
			sendError(c, http.StatusUnauthorized, constants.SessionMissing, err)
			return
		}
		sendError(c, http.StatusInternalServerError, constants.FailedToBuildLink, err)
		return
	}
	sendSuccess(c, http.StatusOK, ConnectURIResponse{
		URI:           link.URI,
		QRCodeDataURL: link.QRCodeDataURL,
	})
}
