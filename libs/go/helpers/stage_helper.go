package helpers

import (
	"strings"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
)

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// IsMainnet reports whether network names the XION mainnet. Anything else,
// including an empty value, is treated as testnet.
func IsMainnet(network string) bool {
	return strings.EqualFold(strings.TrimSpace(network), constants.MainnetNetwork)
}

// NetworkLabel returns the badge text shown on the modal.
func NetworkLabel(mainnet bool) string {
	if mainnet {
		return strings.ToUpper(constants.MainnetNetwork)
	}
	return strings.ToUpper(constants.TestnetNetwork)
}
