package handlers

import (
	"errors"
	"net/http"

	"github.com/abstraxion/abstraxion-dashboard/apps/dashboard/constants"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/grant"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/middleware"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/services"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/params"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// GrantHandler exposes grant requests and their messages
type GrantHandler struct {
	common *CommonServices
}

// NewGrantHandler creates a grant handler
func NewGrantHandler(common *CommonServices) *GrantHandler {
	return &GrantHandler{common: common}
}

// GetGrantRequest godoc
// @Summary Resolve the grant request
// @Description Resolves the grant request encoded in the query string. Malformed values resolve to empty lists.
// @Tags grants
// @Produce json
// @Param grantee query string false "Grantee address"
// @Param contracts query string false "Contract addresses, JSON array or comma separated"
// @Param bank query string false "Spend limits, JSON array of coins"
// @Param stake query string false "Any non-empty value requests staking permissions"
// @Success 200 {object} responses.GrantRequestResponse
// @Router /api/v1/grants/request [get]
func (h *GrantHandler) GetGrantRequest(c *gin.Context) {
	request := h.common.GrantService.ResolveRequest(c.Request.URL.Query())
	sendSuccess(c, http.StatusOK, responses.NewGrantRequestResponse(request))
}

// BuildGrantMessages godoc
// @Summary Build grant messages
// @Description Builds the authz MsgGrant messages the connected smart account signs to accept the grant request
// @Tags grants
// @Produce json
// @Param grantee query string true "Grantee address"
// @Param contracts query string false "Contract addresses, JSON array or comma separated"
// @Param bank query string false "Spend limits, JSON array of coins"
// @Param stake query string false "Any non-empty value requests staking permissions"
// @Success 200 {object} responses.GrantMessagesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/grants/messages [post]
func (h *GrantHandler) BuildGrantMessages(c *gin.Context) {
	sessionID, authenticator := requestSession(c)

	bundle, err := h.common.GrantService.BuildGrant(c.Request.Context(), params.BuildGrantParams{
		SessionID:     sessionID,
		Authenticator: authenticator,
		Query:         c.Request.URL.Query(),
		CorrelationID: middleware.GetCorrelationID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, grant.ErrInactiveRequest):
			sendError(c, http.StatusConflict, constants.GrantRequestInactive, err)
		case errors.Is(err, services.ErrAccountNotResolved):
			sendError(c, http.StatusUnauthorized, constants.AccountNotResolved, err)
		case errors.Is(err, grant.ErrInvalidAddress), errors.Is(err, grant.ErrInvalidCoin):
			sendError(c, http.StatusBadRequest, err.Error(), err)
		default:
			sendError(c, http.StatusInternalServerError, constants.FailedToBuildGrant, err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, responses.GrantMessagesResponse{
		Granter:   bundle.Granter,
		Grantee:   bundle.Request.Grantee,
		ExpiresAt: bundle.ExpiresAt,
		Messages:  bundle.Messages,
	})
}
