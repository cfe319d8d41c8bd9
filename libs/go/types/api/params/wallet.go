package params

// ConnectWalletParams contains parameters for connecting a wallet to a session
type ConnectWalletParams struct {
	SessionID  string
	Address    string
	WalletType string
}
