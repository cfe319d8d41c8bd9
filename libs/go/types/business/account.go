package business

import "time"

// Account is a XION smart account as reported by the indexer.
type Account struct {
	ID             string          `json:"id"`
	Authenticators []Authenticator `json:"authenticators"`
}

// Authenticator is one credential able to sign for an account.
type Authenticator struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Authenticator string `json:"authenticator"`
	Index         int    `json:"authenticator_index"`
}

// Session is a verified auth provider session.
type Session struct {
	Authenticator string
	Subject       string
	ExpiresAt     time.Time
}

// WalletConnection is a wallet the browser connected in a dashboard session.
type WalletConnection struct {
	SessionID   string    `json:"session_id"`
	Address     string    `json:"address"`
	WalletType  string    `json:"wallet_type"`
	ConnectedAt time.Time `json:"connected_at"`
}

// AccountState is the connection state of a dashboard session.
type AccountState struct {
	Connected     bool
	Authenticator string
	AccountID     string
	Connection    *WalletConnection
}

// ConnectLink is the deep link a wallet scans to connect to a session.
type ConnectLink struct {
	URI           string `json:"uri"`
	QRCodeDataURL string `json:"qr_code_data_url"`
}
