package interfaces

import (
	"context"
	"net/url"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/grant"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/params"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"
)

// ModalService builds the dashboard modal
type ModalService interface {
	BuildModal(ctx context.Context, params params.BuildModalParams) (*business.ModalView, error)
}

// GrantService resolves grant requests and builds the messages that accept them
type GrantService interface {
	ResolveRequest(query url.Values) grant.GrantRequest
	BuildGrant(ctx context.Context, params params.BuildGrantParams) (*business.GrantBundle, error)
}

// ConnectService manages wallet connections of dashboard sessions
type ConnectService interface {
	Connect(ctx context.Context, params params.ConnectWalletParams) (*business.WalletConnection, error)
	Disconnect(ctx context.Context, sessionID string) error
	ResolveAccount(ctx context.Context, sessionID, authenticator string) (*business.AccountState, error)
	ConnectLink(sessionID string) (*business.ConnectLink, error)
}
