package fees

import (
	"math/big"
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

const bpsDenominator = 10000

// FeeQuote is the breakdown of an unstake amount into fee and net receive.
// Quotes are ephemeral, recomputed on every request and never persisted.
type FeeQuote struct {
	Principal  *big.Int
	FeeRateBps int64
	Fee        *big.Int
	Net        *big.Int
}

// Quote computes the unstaking fee for the given principal at the given rate.
// Amounts are token base units, the rate is in basis points. The fee is floored
// integer division, so Fee + Net always equals Principal exactly. Display
// rounding is a presentation concern.
func Quote(principal *big.Int, feeRateBps int64) (*FeeQuote, *types.Error) {
	if principal == nil || principal.Sign() < 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidAmount, "principal cannot be negative",
		)
	}
	if feeRateBps < 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidAmount, "fee rate cannot be negative",
		)
	}

	fee := new(big.Int).Mul(principal, big.NewInt(feeRateBps))
	fee.Div(fee, big.NewInt(bpsDenominator))
	net := new(big.Int).Sub(principal, fee)

	return &FeeQuote{
		Principal:  new(big.Int).Set(principal),
		FeeRateBps: feeRateBps,
		Fee:        fee,
		Net:        net,
	}, nil
}
