package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/grant"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/interfaces"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/store"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/params"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// ErrSessionRequired is returned when an operation needs a session id.
var ErrSessionRequired = errors.New("session id is required")

// ConnectServiceConfig configures the connect service
type ConnectServiceConfig struct {
	WalletConnectBaseURL string
	AddressPrefix        string
}

// ConnectService handles wallet connections of dashboard sessions
type ConnectService struct {
	store   interfaces.ConnectionStore
	indexer interfaces.AccountIndexer
	config  ConnectServiceConfig
	now     func() time.Time
	logger  *zap.Logger
}

// NewConnectService creates a new connect service. indexer may be nil, in
// which case accounts are never resolved.
func NewConnectService(connections interfaces.ConnectionStore, indexer interfaces.AccountIndexer, config ConnectServiceConfig) *ConnectService {
	if config.AddressPrefix == "" {
		config.AddressPrefix = constants.XionBech32Prefix
	}
	return &ConnectService{
		store:   connections,
		indexer: indexer,
		config:  config,
		now:     time.Now,
		logger:  logger.ForComponent(logger.ComponentConnect),
	}
}

// Connect records a wallet connection for the session
func (s *ConnectService) Connect(ctx context.Context, params params.ConnectWalletParams) (*business.WalletConnection, error) {
	if params.SessionID == "" {
		return nil, ErrSessionRequired
	}
	if err := grant.ValidateAddress(params.Address, s.config.AddressPrefix); err != nil {
		return nil, err
	}

	conn := business.WalletConnection{
		SessionID:   params.SessionID,
		Address:     params.Address,
		WalletType:  params.WalletType,
		ConnectedAt: s.now().UTC(),
	}
	if err := s.store.SaveConnection(ctx, conn); err != nil {
		s.logger.Error("Failed to save wallet connection",
			zap.String("session_id", params.SessionID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to connect wallet: %w", err)
	}

	s.logger.Info("Wallet connected",
		zap.String("session_id", params.SessionID),
		zap.String("address", params.Address),
		zap.String("wallet_type", params.WalletType),
	)
	return &conn, nil
}

// Disconnect removes the session's wallet connection
func (s *ConnectService) Disconnect(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}
	if err := s.store.DeleteConnection(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to disconnect wallet: %w", err)
	}
	s.logger.Info("Wallet disconnected", zap.String("session_id", sessionID))
	return nil
}

// ResolveAccount works out whether the session is connected and which smart
// account it controls. The wallet connection takes precedence over the auth
// provider session as authenticator. Indexer failures leave AccountID empty.
func (s *ConnectService) ResolveAccount(ctx context.Context, sessionID, authenticator string) (*business.AccountState, error) {
	state := &business.AccountState{Authenticator: authenticator}

	if sessionID != "" {
		conn, err := s.store.GetConnection(ctx, sessionID)
		switch {
		case errors.Is(err, store.ErrConnectionNotFound):
		case err != nil:
			return nil, fmt.Errorf("failed to load wallet connection: %w", err)
		default:
			state.Connection = conn
			state.Authenticator = conn.Address
		}
	}

	state.Connected = state.Connection != nil || authenticator != ""
	if state.Authenticator == "" || s.indexer == nil {
		return state, nil
	}

	account, err := s.indexer.GetAccountByAuthenticator(ctx, state.Authenticator)
	if err != nil {
		s.logger.Warn("Could not resolve smart account",
			zap.String("authenticator", state.Authenticator),
			zap.Error(err),
		)
		return state, nil
	}
	state.AccountID = account.ID
	return state, nil
}

// ConnectLink builds the wallet connect deep link for the session and its QR
// code as a PNG data URL.
func (s *ConnectService) ConnectLink(sessionID string) (*business.ConnectLink, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	base, err := url.Parse(s.config.WalletConnectBaseURL)
	if err != nil || base.Scheme == "" {
		return nil, fmt.Errorf("invalid wallet connect base URL %q", s.config.WalletConnectBaseURL)
	}
	query := base.Query()
	query.Set("session", sessionID)
	base.RawQuery = query.Encode()
	uri := base.String()

	png, err := qrcode.Encode(uri, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return &business.ConnectLink{
		URI:           uri,
		QRCodeDataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}
