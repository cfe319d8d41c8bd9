package responses

import (
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/grant"
)

// GrantRequestResponse represents a resolved grant request
type GrantRequestResponse struct {
	Grantee   string   `json:"grantee"`
	Contracts []string `json:"contracts"`
	Bank      []string `json:"bank"`
	Stake     bool     `json:"stake"`
	Active    bool     `json:"active"`
}

// GrantMessagesResponse represents the messages a wallet signs to accept a grant
type GrantMessagesResponse struct {
	Granter   string          `json:"granter"`
	Grantee   string          `json:"grantee"`
	ExpiresAt time.Time       `json:"expires_at"`
	Messages  []grant.Message `json:"messages"`
}

// NewGrantRequestResponse converts a grant request to its API representation
func NewGrantRequestResponse(req grant.GrantRequest) GrantRequestResponse {
	return GrantRequestResponse{
		Grantee:   req.Grantee,
		Contracts: req.Contracts,
		Bank:      req.Bank,
		Stake:     req.Stake,
		Active:    req.Active(),
	}
}
