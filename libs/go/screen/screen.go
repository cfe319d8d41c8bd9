// Package screen decides which of the modal's screens is shown.
package screen

import "github.com/abstraxion/abstraxion-dashboard/libs/go/grant"

// Kind names a screen on the wire and in templates.
type Kind string

const (
	KindError   Kind = "error"
	KindGrant   Kind = "grant"
	KindWallets Kind = "wallets"
	KindSignIn  Kind = "signin"
)

// Screen is one of ErrorDisplay, GrantFlow, WalletList or SignIn.
type Screen interface {
	Kind() Kind
	isScreen()
}

// ErrorDisplay shows an error message verbatim.
type ErrorDisplay struct {
	Message string
}

// GrantFlow asks the connected account to approve a grant request.
type GrantFlow struct {
	Request grant.GrantRequest
}

// WalletList lists the accounts of a connected user.
type WalletList struct{}

// SignIn is shown to users with no connection.
type SignIn struct{}

func (ErrorDisplay) Kind() Kind { return KindError }
func (GrantFlow) Kind() Kind    { return KindGrant }
func (WalletList) Kind() Kind   { return KindWallets }
func (SignIn) Kind() Kind       { return KindSignIn }

func (ErrorDisplay) isScreen() {}
func (GrantFlow) isScreen()    {}
func (WalletList) isScreen()   {}
func (SignIn) isScreen()       {}

// State is everything screen selection depends on.
type State struct {
	ErrorMessage string
	AccountID    string
	Connected    bool
	Grant        grant.GrantRequest
}

// Select picks the screen for s. The first matching rule wins: an error,
// then an account with an active grant request, then a connection.
func Select(s State) Screen {
	switch {
	case s.ErrorMessage != "":
		return ErrorDisplay{Message: s.ErrorMessage}
	case s.AccountID != "" && s.Grant.Active():
		return GrantFlow{Request: s.Grant}
	case s.Connected:
		return WalletList{}
	default:
		return SignIn{}
	}
}
