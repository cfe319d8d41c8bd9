package constants

// Error messages used throughout the dashboard handlers
const (
	// Request errors
	InvalidRequestFormat = "invalid request format"
	SessionMissing       = "session not found"

	// Grant errors
	GrantRequestInactive = "grant request is not active"
	AccountNotResolved   = "no account is connected"
	FailedToBuildGrant   = "failed to build grant messages"

	// Wallet errors
	FailedToConnect    = "failed to connect wallet"
	FailedToDisconnect = "failed to disconnect wallet"
	FailedToBuildLink  = "failed to build wallet connect link"
	FailedToBuildModal = "failed to build modal"

	// Common string values
	TrueString = "true"
)
