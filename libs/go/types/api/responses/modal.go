package responses

// ModalStateResponse represents the state of the dashboard modal
type ModalStateResponse struct {
	Open            bool                  `json:"open"`
	Screen          string                `json:"screen,omitempty"`
	ErrorMessage    string                `json:"error_message,omitempty"`
	Network         string                `json:"network"`
	Connected       bool                  `json:"connected"`
	AccountID       string                `json:"account_id,omitempty"`
	Grant           *GrantRequestResponse `json:"grant,omitempty"`
	ShowTermsFooter bool                  `json:"show_terms_footer"`
	ConnectURI      string                `json:"connect_uri,omitempty"`
}
