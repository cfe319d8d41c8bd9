package params

import "net/url"

// BuildModalParams contains parameters for building the dashboard modal
type BuildModalParams struct {
	SessionID     string
	Authenticator string
	Query         url.Values
	Open          bool
	ErrorMessage  string
}
