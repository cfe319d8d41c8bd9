package responses

import "time"

// ConnectionResponse represents a wallet connection
type ConnectionResponse struct {
	Object      string    `json:"object"`
	Address     string    `json:"address"`
	WalletType  string    `json:"wallet_type,omitempty"`
	ConnectedAt time.Time `json:"connected_at"`
}

// ConnectURIResponse represents a wallet connect deep link
type ConnectURIResponse struct {
	URI           string `json:"uri"`
	QRCodeDataURL string `json:"qr_code_data_url"`
}
