package params

import "net/url"

// BuildGrantParams contains parameters for building grant messages
type BuildGrantParams struct {
	SessionID     string
	Authenticator string
	Query         url.Values
	CorrelationID string
}
