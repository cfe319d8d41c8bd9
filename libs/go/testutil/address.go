package testutil

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/require"
)

// Address returns a valid bech32 address with the given prefix whose payload
// is 32 copies of seed. Distinct seeds give distinct addresses.
func Address(t *testing.T, prefix string, seed byte) string {
	t.Helper()

	data, err := bech32.ConvertBits(bytes.Repeat([]byte{seed}, 32), 8, 5, true)
	require.NoError(t, err)

	addr, err := bech32.Encode(prefix, data)
	require.NoError(t, err)
	return addr
}

// XionAddress is Address with the xion prefix.
func XionAddress(t *testing.T, seed byte) string {
	t.Helper()
	return Address(t, "xion", seed)
}
