package domain

import "strings"

const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Platform addresses are {networkID}c{bech32 payload}, e.g. "cccq9h7..." on mainnet
const (
	minPlatformAddressLength = 40
	maxPlatformAddressLength = 90
)

// IsValidPlatformAddress checks the shape of a platform address for one of the given network ids.
// It does not verify the checksum; the chain node rejects addresses that do not decode.
func IsValidPlatformAddress(address string, networkIDs []string) bool {
	if len(address) < minPlatformAddressLength || len(address) > maxPlatformAddressLength {
		return false
	}

	matched := false
	var payload string
	for _, id := range networkIDs {
		prefix := id + PLATFORM_ADDRESS_TYPE_CHAR
		if id != "" && strings.HasPrefix(address, prefix) {
			matched = true
			payload = address[len(prefix):]
			break
		}
	}
	if !matched {
		return false
	}

	for _, r := range payload {
		if !strings.ContainsRune(bech32Charset, r) {
			return false
		}
	}

	return true
}
