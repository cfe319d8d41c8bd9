package screen_test

import (
	"testing"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/grant"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/screen"
	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	active := grant.GrantRequest{Grantee: "g", Contracts: []string{"c1"}}
	inactive := grant.GrantRequest{Contracts: []string{"c1"}}

	tests := []struct {
		name  string
		state screen.State
		want  screen.Screen
	}{
		{
			name:  "error wins over everything",
			state: screen.State{ErrorMessage: "boom", AccountID: "acct", Connected: true, Grant: active},
			want:  screen.ErrorDisplay{Message: "boom"},
		},
		{
			name:  "account with active grant",
			state: screen.State{AccountID: "acct", Connected: true, Grant: active},
			want:  screen.GrantFlow{Request: active},
		},
		{
			name:  "account with inactive grant lists wallets",
			state: screen.State{AccountID: "acct", Connected: true, Grant: inactive},
			want:  screen.WalletList{},
		},
		{
			name:  "active grant without account lists wallets",
			state: screen.State{Connected: true, Grant: active},
			want:  screen.WalletList{},
		},
		{
			name:  "grant flow does not require connected flag",
			state: screen.State{AccountID: "acct", Grant: active},
			want:  screen.GrantFlow{Request: active},
		},
		{
			name:  "disconnected",
			state: screen.State{Grant: active},
			want:  screen.SignIn{},
		},
		{
			name:  "zero state",
			state: screen.State{},
			want:  screen.SignIn{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, screen.Select(tt.state))
		})
	}
}

func TestSelect_ExactlyOneScreen(t *testing.T) {
	grants := []grant.GrantRequest{
		{},
		{Grantee: "g"},
		{Grantee: "g", Stake: true},
		{Stake: true, Bank: []string{"1uxion"}},
	}

	for _, errMsg := range []string{"", "err"} {
		for _, account := range []string{"", "acct"} {
			for _, connected := range []bool{false, true} {
				for _, g := range grants {
					s := screen.Select(screen.State{
						ErrorMessage: errMsg,
						AccountID:    account,
						Connected:    connected,
						Grant:        g,
					})
					assert.NotNil(t, s)

					switch s.(type) {
					case screen.ErrorDisplay:
						assert.NotEmpty(t, errMsg)
					case screen.GrantFlow:
						assert.Empty(t, errMsg)
						assert.True(t, g.Active())
					case screen.WalletList:
						assert.Empty(t, errMsg)
						assert.True(t, connected)
					case screen.SignIn:
						assert.Empty(t, errMsg)
						assert.False(t, connected)
					default:
						t.Fatalf("unexpected screen %T", s)
					}
				}
			}
		}
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, screen.KindError, screen.ErrorDisplay{}.Kind())
	assert.Equal(t, screen.KindGrant, screen.GrantFlow{}.Kind())
	assert.Equal(t, screen.KindWallets, screen.WalletList{}.Kind())
	assert.Equal(t, screen.KindSignIn, screen.SignIn{}.Kind())
}
