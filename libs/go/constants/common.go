package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Networks
	MainnetNetwork = "mainnet"
	TestnetNetwork = "testnet"

	// Address prefix of XION accounts
	XionBech32Prefix = "xion"

	// Default fee denom on XION
	XionDenom = "uxion"
)

// Query parameters a dApp passes to the dashboard
const (
	QueryContracts = "contracts"
	QueryBank      = "bank"
	QueryGrantee   = "grantee"
	QueryStake     = "stake"
)

// Cookies set by the dashboard
const (
	SessionCookieName     = "abstraxion_session"
	SessionJWTCookieName  = "stytch_session_jwt"
	ModalClosedCookieName = "abstraxion_modal_closed"
	ErrorFlashCookieName  = "abstraxion_error"
)

// Gin context keys
const (
	SessionIDKey     = "sessionID"
	SessionClaimsKey = "sessionClaims"
	SessionErrorKey  = "sessionError"
)

// Terms of service footer links
const (
	DisclaimerURL = "https://burnt.com"
	PoweredByURL  = "https://xion.burnt.com/"
)
