package services

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/grant"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/interfaces"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/params"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrAccountNotResolved is returned when a grant is built for a session with
// no smart account.
var ErrAccountNotResolved = errors.New("no smart account for session")

// GrantServiceConfig configures the grant service
type GrantServiceConfig struct {
	TTL           time.Duration
	MaxCalls      uint64
	AddressPrefix string
	// BankDenomAmount is the spend limit for bank entries naming only a denom
	BankDenomAmount string
}

// GrantService resolves grant requests and builds their authz messages
type GrantService struct {
	connect   interfaces.ConnectService
	publisher interfaces.EventPublisher
	config    GrantServiceConfig
	now       func() time.Time
	logger    *zap.Logger
}

// NewGrantService creates a new grant service. publisher may be nil.
func NewGrantService(connect interfaces.ConnectService, publisher interfaces.EventPublisher, config GrantServiceConfig) *GrantService {
	return &GrantService{
		connect:   connect,
		publisher: publisher,
		config:    config,
		now:       time.Now,
		logger:    logger.ForComponent(logger.ComponentGrant),
	}
}

// ResolveRequest resolves the grant request encoded in query
func (s *GrantService) ResolveRequest(query url.Values) grant.GrantRequest {
	return grant.ResolveQuery(query)
}

// BuildGrant builds the messages the session's smart account signs to accept
// the grant request in params.Query.
func (s *GrantService) BuildGrant(ctx context.Context, params params.BuildGrantParams) (*business.GrantBundle, error) {
	request := grant.ResolveQuery(params.Query)
	if !request.Active() {
		return nil, grant.ErrInactiveRequest
	}

	state, err := s.connect.ResolveAccount(ctx, params.SessionID, params.Authenticator)
	if err != nil {
		return nil, err
	}
	if state.AccountID == "" {
		return nil, ErrAccountNotResolved
	}

	now := s.now()
	opts := grant.MessageOptions{
		Now:         now,
		TTL:         s.config.TTL,
		MaxCalls:    s.config.MaxCalls,
		Prefix:      s.config.AddressPrefix,
		DenomAmount: s.config.BankDenomAmount,
	}
	messages, err := grant.BuildMessages(state.AccountID, request, opts)
	if err != nil {
		return nil, err
	}

	ttl := s.config.TTL
	if ttl <= 0 {
		ttl = grant.DefaultTTL
	}
	bundle := &business.GrantBundle{
		Request:   request,
		Granter:   state.AccountID,
		Messages:  messages,
		ExpiresAt: now.Add(ttl).UTC(),
	}

	s.publish(ctx, bundle, params.CorrelationID)
	return bundle, nil
}

// publish records an audit event. Failures are logged and never fail the
// request.
func (s *GrantService) publish(ctx context.Context, bundle *business.GrantBundle, correlationID string) {
	if s.publisher == nil {
		return
	}

	event := business.GrantEvent{
		ID:            uuid.New(),
		Type:          business.GrantEventMessagesBuilt,
		Granter:       bundle.Granter,
		Grantee:       bundle.Request.Grantee,
		Contracts:     bundle.Request.Contracts,
		Bank:          bundle.Request.Bank,
		Stake:         bundle.Request.Stake,
		ExpiresAt:     bundle.ExpiresAt,
		CreatedAt:     s.now().UTC(),
		CorrelationID: correlationID,
	}
	if err := s.publisher.PublishGrantEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish grant event",
			zap.String("event_id", event.ID.String()),
			zap.String("correlation_id", correlationID),
			zap.Error(err),
		)
	}
}
