package balance

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

// Store holds the staked, reward and available balances of one session, in
// token base units. Outside of an in-flight unstake, available never exceeds
// staked. Like the withdrawal ledger it relies on the owning session for
// serialization.
type Store struct {
	staked    *big.Int
	rewards   *big.Int
	available *big.Int
}

// Snapshot is a read-only copy of the store for rendering.
type Snapshot struct {
	Staked    *big.Int
	Rewards   *big.Int
	Available *big.Int
}

func New() *Store {
	return &Store{
		staked:    big.NewInt(0),
		rewards:   big.NewInt(0),
		available: big.NewInt(0),
	}
}

// SetFromChain overwrites the store from a chain query result. The full staked
// balance is available for unstaking, there is no separate lock-up tracked
// here. This is also the reconciliation path after reconnects: local
// optimistic state is never trusted across sessions.
func (s *Store) SetFromChain(staked, rewards *big.Int) {
	s.staked = new(big.Int).Set(staked)
	s.rewards = new(big.Int).Set(rewards)
	s.available = new(big.Int).Set(staked)
}

// ReserveForUnstake optimistically debits the staked and available balances
// ahead of chain confirmation. It never mutates state on failure.
func (s *Store) ReserveForUnstake(amount *big.Int) *types.Error {
	if amount == nil || amount.Sign() <= 0 {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidAmount, "unstake amount must be positive",
		)
	}
	if amount.Cmp(s.available) > 0 {
		return types.NewErrorWithMsg(
			http.StatusForbidden, types.InsufficientBalance,
			fmt.Sprintf("unstake amount %s exceeds available balance %s", amount, s.available),
		)
	}
	s.staked.Sub(s.staked, amount)
	s.available.Sub(s.available, amount)
	return nil
}

// Rollback reverses a reservation after a failed chain submission, restoring
// the exact prior staked and available balances.
func (s *Store) Rollback(amount *big.Int) {
	if amount == nil || amount.Sign() <= 0 {
		return
	}
	s.staked.Add(s.staked, amount)
	s.available.Add(s.available, amount)
}

func (s *Store) Available() *big.Int {
	return new(big.Int).Set(s.available)
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Staked:    new(big.Int).Set(s.staked),
		Rewards:   new(big.Int).Set(s.rewards),
		Available: new(big.Int).Set(s.available),
	}
}
