package utils

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// IsValidAccountAddress reports whether the given string is a valid hex-encoded
// EVM account address.
func IsValidAccountAddress(addr string) bool {
	return common.IsHexAddress(addr)
}

// ParseAmount parses a base-unit token amount from its decimal string form.
// Amounts travel as strings in JSON to avoid precision loss.
func ParseAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("amount is empty")
	}
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %s", s)
	}
	return amount, nil
}
