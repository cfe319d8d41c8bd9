package services

import (
	"context"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/grant"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/interfaces"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/screen"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/params"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"
	"go.uber.org/zap"
)

// ModalServiceConfig configures the modal service
type ModalServiceConfig struct {
	Mainnet bool
}

// ModalService composes the dashboard modal from URL and session state
type ModalService struct {
	connect interfaces.ConnectService
	config  ModalServiceConfig
	logger  *zap.Logger
}

// NewModalService creates a new modal service
func NewModalService(connect interfaces.ConnectService, config ModalServiceConfig) *ModalService {
	return &ModalService{
		connect: connect,
		config:  config,
		logger:  logger.ForComponent(logger.ComponentModal),
	}
}

// BuildModal returns the modal view for a request. A closed modal renders
// nothing, so no state is resolved for it.
func (s *ModalService) BuildModal(ctx context.Context, params params.BuildModalParams) (*business.ModalView, error) {
	if !params.Open {
		return &business.ModalView{Open: false}, nil
	}

	state, err := s.connect.ResolveAccount(ctx, params.SessionID, params.Authenticator)
	if err != nil {
		return nil, err
	}

	request := grant.ResolveQuery(params.Query)
	selected := screen.Select(screen.State{
		ErrorMessage: params.ErrorMessage,
		AccountID:    state.AccountID,
		Connected:    state.Connected,
		Grant:        request,
	})

	view := &business.ModalView{
		Open:            true,
		Mainnet:         s.config.Mainnet,
		Screen:          selected,
		Grant:           request,
		Account:         *state,
		ShowTermsFooter: !state.Connected,
	}

	if _, ok := selected.(screen.SignIn); ok {
		link, err := s.connect.ConnectLink(params.SessionID)
		if err != nil {
			s.logger.Warn("Could not build wallet connect link", zap.Error(err))
		} else {
			view.ConnectLink = link
		}
	}

	s.logger.Debug("Modal built",
		zap.String("screen", string(selected.Kind())),
		zap.Bool("connected", state.Connected),
		zap.Bool("grant_active", request.Active()),
	)
	return view, nil
}
