package ledger

import (
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/unstakeportal/portal-api-service/internal/types"
	"github.com/unstakeportal/portal-api-service/internal/utils"
)

// WithdrawalRecord is a single unstake awaiting (or past) its unlock time.
// Amount is the net amount after the unstaking fee, in token base units.
type WithdrawalRecord struct {
	ID          uint64
	Amount      *big.Int
	RequestedAt time.Time
	UnlockAt    time.Time
	Status      types.WithdrawalStatus
	// ChainRef is the transaction reference returned by the gateway for the
	// unstake submission, empty for records seeded from a chain query.
	ChainRef string
}

// WithdrawalLedger tracks the pending withdrawals of one session in insertion
// order. It is not safe for unsynchronized concurrent mutation, callers
// serialize access through the owning session.
//
// Readiness here is a wall-clock estimate for display. The staking contract's
// own eligibility check remains authoritative and is exercised on every claim
// submission.
type WithdrawalLedger struct {
	records []*WithdrawalRecord
	nextID  uint64
}

func New() *WithdrawalLedger {
	return &WithdrawalLedger{}
}

// Add appends a new pending withdrawal and assigns it the next monotonic id.
func (l *WithdrawalLedger) Add(amount *big.Int, requestedAt, unlockAt time.Time, chainRef string) (*WithdrawalRecord, *types.Error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidAmount, "withdrawal amount must be positive",
		)
	}
	if unlockAt.Before(requestedAt) {
		return nil, types.NewErrorWithMsg(
			http.StatusInternalServerError, types.InternalServiceError,
			"unlock time cannot precede request time",
		)
	}

	record := &WithdrawalRecord{
		ID:          l.nextID,
		Amount:      new(big.Int).Set(amount),
		RequestedAt: requestedAt,
		UnlockAt:    unlockAt,
		Status:      types.WithdrawalPending,
		ChainRef:    chainRef,
	}
	l.nextID++
	l.records = append(l.records, record)
	return record, nil
}

// Seed imports withdrawals reported by a chain query, replacing any existing
// records. Chain-reported ids are preserved so claims reference the on-chain
// withdrawal index; the internal counter continues past the highest seen id.
func (l *WithdrawalLedger) Seed(entries []SeedEntry, now time.Time) {
	l.records = l.records[:0]
	for _, e := range entries {
		status := types.WithdrawalPending
		if e.Claimed {
			status = types.WithdrawalClaimed
		} else if !e.UnlockAt.After(now) {
			status = types.WithdrawalReady
		}
		l.records = append(l.records, &WithdrawalRecord{
			ID:          e.ID,
			Amount:      new(big.Int).Set(e.Amount),
			RequestedAt: e.RequestedAt,
			UnlockAt:    e.UnlockAt,
			Status:      status,
		})
		if e.ID >= l.nextID {
			l.nextID = e.ID + 1
		}
	}
}

// SeedEntry is one withdrawal as reported by the staking contract.
type SeedEntry struct {
	ID          uint64
	Amount      *big.Int
	RequestedAt time.Time
	UnlockAt    time.Time
	Claimed     bool
}

// RefreshReadiness transitions every pending record whose unlock time has been
// reached to ready and returns the ids that transitioned. Calling it again
// with the same clock reading produces no further transitions, and a record
// that became ready never reverts to pending.
func (l *WithdrawalLedger) RefreshReadiness(now time.Time) []uint64 {
	var transitioned []uint64
	for _, record := range l.records {
		if !utils.Contains(types.QualifiedStatusesToReady(), record.Status) {
			continue
		}
		if record.UnlockAt.After(now) {
			continue
		}
		record.Status = types.WithdrawalReady
		transitioned = append(transitioned, record.ID)
	}
	return transitioned
}

// MarkClaimed transitions a ready record to claimed. Claimed records are kept
// for history, they only disappear with the session.
func (l *WithdrawalLedger) MarkClaimed(id uint64) (*WithdrawalRecord, *types.Error) {
	record := l.find(id)
	if record == nil {
		return nil, types.NewErrorWithMsg(
			http.StatusNotFound, types.NotFound, fmt.Sprintf("withdrawal %d not found", id),
		)
	}
	if !utils.Contains(types.QualifiedStatusesToClaimed(), record.Status) {
		return nil, types.NewErrorWithMsg(
			http.StatusForbidden, types.NotReady,
			fmt.Sprintf("withdrawal %d is %s, not ready to claim", id, record.Status),
		)
	}
	record.Status = types.WithdrawalClaimed
	return record, nil
}

func (l *WithdrawalLedger) Get(id uint64) (*WithdrawalRecord, *types.Error) {
	record := l.find(id)
	if record == nil {
		return nil, types.NewErrorWithMsg(
			http.StatusNotFound, types.NotFound, fmt.Sprintf("withdrawal %d not found", id),
		)
	}
	return record, nil
}

// List returns all records in insertion order, claimed ones included.
func (l *WithdrawalLedger) List() []*WithdrawalRecord {
	out := make([]*WithdrawalRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Active returns the records that have not been claimed yet.
func (l *WithdrawalLedger) Active() []*WithdrawalRecord {
	var out []*WithdrawalRecord
	for _, record := range l.records {
		if record.Status != types.WithdrawalClaimed {
			out = append(out, record)
		}
	}
	return out
}

func (l *WithdrawalLedger) find(id uint64) *WithdrawalRecord {
	for _, record := range l.records {
		if record.ID == id {
			return record
		}
	}
	return nil
}
