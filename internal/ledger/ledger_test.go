package ledger

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

func TestAddAssignsMonotonicIDs(t *testing.T) {
	l := New()
	now := time.Now()

	first, err := l.Add(big.NewInt(100), now, now.Add(time.Hour), "0xaa")
	require.Nil(t, err)
	second, err := l.Add(big.NewInt(200), now, now.Add(time.Hour), "0xbb")
	require.Nil(t, err)

	assert.Equal(t, uint64(0), first.ID)
	assert.Equal(t, uint64(1), second.ID)
	assert.Equal(t, types.WithdrawalPending, first.Status)

	records := l.List()
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID, "list must preserve insertion order")
}

func TestAddRejectsNonPositiveAmount(t *testing.T) {
	l := New()
	now := time.Now()

	for _, amount := range []*big.Int{nil, big.NewInt(0), big.NewInt(-5)} {
		_, err := l.Add(amount, now, now.Add(time.Hour), "")
		require.NotNil(t, err)
		assert.Equal(t, types.InvalidAmount, err.ErrorCode)
	}
	assert.Empty(t, l.List())
}

func TestRefreshReadinessIsIdempotent(t *testing.T) {
	l := New()
	now := time.Now()

	unlocked, err := l.Add(big.NewInt(100), now.Add(-2*time.Hour), now.Add(-time.Second), "")
	require.Nil(t, err)
	_, err = l.Add(big.NewInt(200), now, now.Add(time.Hour), "")
	require.Nil(t, err)

	transitioned := l.RefreshReadiness(now)
	assert.Equal(t, []uint64{unlocked.ID}, transitioned)

	// Same clock reading again, nothing further transitions.
	assert.Empty(t, l.RefreshReadiness(now))

	record, lookupErr := l.Get(unlocked.ID)
	require.Nil(t, lookupErr)
	assert.Equal(t, types.WithdrawalReady, record.Status)
}

func TestReadinessIsMonotonic(t *testing.T) {
	l := New()
	now := time.Now()

	record, err := l.Add(big.NewInt(100), now.Add(-time.Hour), now.Add(-time.Minute), "")
	require.Nil(t, err)
	l.RefreshReadiness(now)

	// An earlier clock reading must not revert the record to pending.
	l.RefreshReadiness(now.Add(-time.Hour))
	got, lookupErr := l.Get(record.ID)
	require.Nil(t, lookupErr)
	assert.Equal(t, types.WithdrawalReady, got.Status)
}

func TestMarkClaimedRequiresReady(t *testing.T) {
	l := New()
	now := time.Now()

	pending, err := l.Add(big.NewInt(100), now, now.Add(time.Hour), "")
	require.Nil(t, err)

	_, claimErr := l.MarkClaimed(pending.ID)
	require.NotNil(t, claimErr)
	assert.Equal(t, types.NotReady, claimErr.ErrorCode)

	got, lookupErr := l.Get(pending.ID)
	require.Nil(t, lookupErr)
	assert.Equal(t, types.WithdrawalPending, got.Status, "failed claim must not change status")

	_, claimErr = l.MarkClaimed(42)
	require.NotNil(t, claimErr)
	assert.Equal(t, types.NotFound, claimErr.ErrorCode)
}

func TestMarkClaimedKeepsHistory(t *testing.T) {
	l := New()
	now := time.Now()

	record, err := l.Add(big.NewInt(100), now.Add(-2*time.Hour), now.Add(-time.Hour), "")
	require.Nil(t, err)
	l.RefreshReadiness(now)

	claimed, claimErr := l.MarkClaimed(record.ID)
	require.Nil(t, claimErr)
	assert.Equal(t, types.WithdrawalClaimed, claimed.Status)

	// Claimed entries stay in the full list but drop out of the active view.
	assert.Len(t, l.List(), 1)
	assert.Empty(t, l.Active())

	// A second claim on the same record is rejected.
	_, claimErr = l.MarkClaimed(record.ID)
	require.NotNil(t, claimErr)
	assert.Equal(t, types.NotReady, claimErr.ErrorCode)
}

func TestSeedFromChainQuery(t *testing.T) {
	l := New()
	now := time.Now()

	l.Seed([]SeedEntry{
		{ID: 0, Amount: big.NewInt(10), RequestedAt: now.Add(-72 * time.Hour), UnlockAt: now.Add(-24 * time.Hour), Claimed: true},
		{ID: 1, Amount: big.NewInt(20), RequestedAt: now.Add(-48 * time.Hour), UnlockAt: now.Add(-time.Minute)},
		{ID: 2, Amount: big.NewInt(30), RequestedAt: now, UnlockAt: now.Add(48 * time.Hour)},
	}, now)

	records := l.List()
	require.Len(t, records, 3)
	assert.Equal(t, types.WithdrawalClaimed, records[0].Status)
	assert.Equal(t, types.WithdrawalReady, records[1].Status)
	assert.Equal(t, types.WithdrawalPending, records[2].Status)

	// New entries continue past the highest chain-reported id.
	added, err := l.Add(big.NewInt(40), now, now.Add(48*time.Hour), "")
	require.Nil(t, err)
	assert.Equal(t, uint64(3), added.ID)
}
