package services_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/mocks"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/screen"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/services"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/params"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestModalService_BuildModal(t *testing.T) {
	ctx := context.Background()
	activeQuery := url.Values{"grantee": {"xion1grantee"}, "contracts": {`["xion1contract"]`}}
	link := &business.ConnectLink{URI: "https://connect.example?session=s1", QRCodeDataURL: "data:image/png;base64,AAAA"}

	tests := []struct {
		name       string
		params     params.BuildModalParams
		mainnet    bool
		setupMocks func(m *mocks.MockConnectService)
		check      func(t *testing.T, view *business.ModalView)
		wantErr    bool
	}{
		{
			name:       "closed modal renders nothing",
			params:     params.BuildModalParams{Open: false, ErrorMessage: "ignored"},
			setupMocks: func(m *mocks.MockConnectService) {},
			check: func(t *testing.T, view *business.ModalView) {
				assert.Equal(t, business.ModalView{}, *view)
			},
		},
		{
			name:   "signed out shows sign in with footer and link",
			params: params.BuildModalParams{Open: true, SessionID: "s1"},
			setupMocks: func(m *mocks.MockConnectService) {
				m.EXPECT().ResolveAccount(ctx, "s1", "").Return(&business.AccountState{}, nil)
				m.EXPECT().ConnectLink("s1").Return(link, nil)
			},
			check: func(t *testing.T, view *business.ModalView) {
				assert.Equal(t, screen.SignIn{}, view.Screen)
				assert.True(t, view.ShowTermsFooter)
				assert.Equal(t, link, view.ConnectLink)
			},
		},
		{
			name:   "connect link failure still renders sign in",
			params: params.BuildModalParams{Open: true},
			setupMocks: func(m *mocks.MockConnectService) {
				m.EXPECT().ResolveAccount(ctx, "", "").Return(&business.AccountState{}, nil)
				m.EXPECT().ConnectLink("").Return(nil, services.ErrSessionRequired)
			},
			check: func(t *testing.T, view *business.ModalView) {
				assert.Equal(t, screen.SignIn{}, view.Screen)
				assert.Nil(t, view.ConnectLink)
			},
		},
		{
			name:    "connected account with active grant",
			params:  params.BuildModalParams{Open: true, SessionID: "s1", Authenticator: "aud.sub", Query: activeQuery},
			mainnet: true,
			setupMocks: func(m *mocks.MockConnectService) {
				m.EXPECT().ResolveAccount(ctx, "s1", "aud.sub").Return(&business.AccountState{
					Connected: true, Authenticator: "aud.sub", AccountID: "xion1account",
				}, nil)
			},
			check: func(t *testing.T, view *business.ModalView) {
				flow, ok := view.Screen.(screen.GrantFlow)
				require.True(t, ok)
				assert.Equal(t, "xion1grantee", flow.Request.Grantee)
				assert.Equal(t, []string{"xion1contract"}, flow.Request.Contracts)
				assert.False(t, view.ShowTermsFooter)
				assert.True(t, view.Mainnet)
				assert.Nil(t, view.ConnectLink)
			},
		},
		{
			name:   "connected without grant lists wallets",
			params: params.BuildModalParams{Open: true, SessionID: "s1"},
			setupMocks: func(m *mocks.MockConnectService) {
				m.EXPECT().ResolveAccount(ctx, "s1", "").Return(&business.AccountState{Connected: true}, nil)
			},
			check: func(t *testing.T, view *business.ModalView) {
				assert.Equal(t, screen.WalletList{}, view.Screen)
				assert.False(t, view.ShowTermsFooter)
			},
		},
		{
			name:   "error message wins",
			params: params.BuildModalParams{Open: true, SessionID: "s1", ErrorMessage: "session expired", Query: activeQuery},
			setupMocks: func(m *mocks.MockConnectService) {
				m.EXPECT().ResolveAccount(ctx, "s1", "").Return(&business.AccountState{Connected: true, AccountID: "xion1account"}, nil)
			},
			check: func(t *testing.T, view *business.ModalView) {
				assert.Equal(t, screen.ErrorDisplay{Message: "session expired"}, view.Screen)
			},
		},
		{
			name:   "resolve failure",
			params: params.BuildModalParams{Open: true, SessionID: "s1"},
			setupMocks: func(m *mocks.MockConnectService) {
				m.EXPECT().ResolveAccount(ctx, "s1", "").Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockConnect := mocks.NewMockConnectService(ctrl)
			tt.setupMocks(mockConnect)

			service := services.NewModalService(mockConnect, services.ModalServiceConfig{Mainnet: tt.mainnet})
			view, err := service.BuildModal(ctx, tt.params)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			tt.check(t, view)
		})
	}
}
