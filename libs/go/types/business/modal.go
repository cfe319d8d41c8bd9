package business

import (
	"github.com/abstraxion/abstraxion-dashboard/libs/go/grant"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/screen"
)

// ModalView is everything needed to render the dashboard modal. When Open is
// false the remaining fields are zero.
type ModalView struct {
	Open            bool
	Mainnet         bool
	Screen          screen.Screen
	Grant           grant.GrantRequest
	Account         AccountState
	ShowTermsFooter bool
	ConnectLink     *ConnectLink
}
