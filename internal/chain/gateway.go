package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

// Withdrawal is one withdrawal entry as reported by the staking contract.
type Withdrawal struct {
	ID          uint64
	Amount      *big.Int
	RequestedAt time.Time
	UnlockAt    time.Time
	Claimed     bool
}

// TokenInfo carries the display metadata of the staked ERC-20 token.
type TokenInfo struct {
	Symbol   string
	Decimals uint8
}

// Gateway is the external collaborator wrapping provider connection, network
// identity and contract read/write calls. Implementations map their transport
// failures onto the portal error taxonomy (NO_PROVIDER, USER_REJECTED,
// WRONG_NETWORK, INSUFFICIENT_FUNDS, REVERTED, GATEWAY_TIMEOUT).
//
// All calls are suspension points and honor context cancellation; no timeout
// is enforced internally beyond what the caller's context imposes.
type Gateway interface {
	// Connect verifies the provider is reachable and on the expected network
	// and returns the network id.
	Connect(ctx context.Context) (*big.Int, *types.Error)

	TokenInfo(ctx context.Context) (*TokenInfo, *types.Error)

	GetStakedBalance(ctx context.Context, account string) (*big.Int, *types.Error)
	GetPendingRewards(ctx context.Context, account string) (*big.Int, *types.Error)
	GetWithdrawals(ctx context.Context, account string) ([]Withdrawal, *types.Error)

	// SubmitUnstake submits an unstake for the given amount and returns a
	// transaction reference.
	SubmitUnstake(ctx context.Context, account string, amount *big.Int) (string, *types.Error)

	// SubmitClaim submits a claim for the withdrawal with the given id.
	SubmitClaim(ctx context.Context, account string, withdrawalID uint64) (string, *types.Error)

	// WaitForConfirmation blocks until the referenced transaction is mined
	// and reports whether it succeeded. A mined-but-failed transaction
	// returns (false, nil); the caller decides how to surface it.
	WaitForConfirmation(ctx context.Context, txRef string) (bool, *types.Error)
}
