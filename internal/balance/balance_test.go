package balance

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

func TestSetFromChainMakesFullStakeAvailable(t *testing.T) {
	s := New()
	s.SetFromChain(big.NewInt(2000), big.NewInt(35))

	snap := s.Snapshot()
	assert.Equal(t, int64(2000), snap.Staked.Int64())
	assert.Equal(t, int64(35), snap.Rewards.Int64())
	assert.Equal(t, int64(2000), snap.Available.Int64())
}

func TestReserveForUnstakeDebitsBoth(t *testing.T) {
	s := New()
	s.SetFromChain(big.NewInt(2000), big.NewInt(0))

	err := s.ReserveForUnstake(big.NewInt(500))
	require.Nil(t, err)

	snap := s.Snapshot()
	assert.Equal(t, int64(1500), snap.Staked.Int64())
	assert.Equal(t, int64(1500), snap.Available.Int64())
}

func TestReserveOverAvailableNeverMutates(t *testing.T) {
	s := New()
	s.SetFromChain(big.NewInt(2000), big.NewInt(0))

	err := s.ReserveForUnstake(big.NewInt(2500))
	require.NotNil(t, err)
	assert.Equal(t, types.InsufficientBalance, err.ErrorCode)

	snap := s.Snapshot()
	assert.Equal(t, int64(2000), snap.Staked.Int64())
	assert.Equal(t, int64(2000), snap.Available.Int64())
}

func TestReserveRejectsNonPositiveAmount(t *testing.T) {
	s := New()
	s.SetFromChain(big.NewInt(2000), big.NewInt(0))

	for _, amount := range []*big.Int{nil, big.NewInt(0), big.NewInt(-1)} {
		err := s.ReserveForUnstake(amount)
		require.NotNil(t, err)
		assert.Equal(t, types.InvalidAmount, err.ErrorCode)
	}
	assert.Equal(t, int64(2000), s.Snapshot().Available.Int64())
}

func TestReserveRollbackRoundTrip(t *testing.T) {
	s := New()
	s.SetFromChain(big.NewInt(2000), big.NewInt(35))
	before := s.Snapshot()

	require.Nil(t, s.ReserveForUnstake(big.NewInt(700)))
	s.Rollback(big.NewInt(700))

	after := s.Snapshot()
	assert.Zero(t, before.Staked.Cmp(after.Staked))
	assert.Zero(t, before.Available.Cmp(after.Available))
	assert.Zero(t, before.Rewards.Cmp(after.Rewards))
}

func TestSnapshotIsDetached(t *testing.T) {
	s := New()
	s.SetFromChain(big.NewInt(100), big.NewInt(0))

	snap := s.Snapshot()
	snap.Staked.SetInt64(0)

	assert.Equal(t, int64(100), s.Snapshot().Staked.Int64())
}
