package requests

// ConnectWalletRequest represents the request body for connecting a wallet
type ConnectWalletRequest struct {
	Address    string `json:"address" binding:"required"`
	WalletType string `json:"wallet_type,omitempty"` // 'keplr', 'leap', 'walletconnect'
}
