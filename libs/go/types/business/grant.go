package business

import (
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/grant"
	"github.com/google/uuid"
)

// GrantEventType values published to the grant events queue.
const (
	GrantEventMessagesBuilt = "grant.messages_built"
)

// GrantBundle is a resolved grant request with the messages that accept it.
type GrantBundle struct {
	Request   grant.GrantRequest
	Granter   string
	Messages  []grant.Message
	ExpiresAt time.Time
}

// GrantEvent is an audit record of a grant bundle handed to a wallet.
type GrantEvent struct {
	ID            uuid.UUID `json:"id"`
	Type          string    `json:"type"`
	Granter       string    `json:"granter"`
	Grantee       string    `json:"grantee"`
	Contracts     []string  `json:"contracts"`
	Bank          []string  `json:"bank"`
	Stake         bool      `json:"stake"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
	CorrelationID string    `json:"correlation_id,omitempty"`
}
