package interfaces

import (
	"context"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"
)

// AccountIndexer looks up smart accounts in the chain indexer
type AccountIndexer interface {
	GetAccountByAuthenticator(ctx context.Context, authenticator string) (*business.Account, error)
}

// SessionVerifier verifies auth provider session tokens
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*business.Session, error)
}

// EventPublisher publishes dashboard events to a queue
type EventPublisher interface {
	PublishGrantEvent(ctx context.Context, event business.GrantEvent) error
}

// ConnectionStore persists wallet connections by session id
type ConnectionStore interface {
	GetConnection(ctx context.Context, sessionID string) (*business.WalletConnection, error)
	SaveConnection(ctx context.Context, conn business.WalletConnection) error
	DeleteConnection(ctx context.Context, sessionID string) error
}
