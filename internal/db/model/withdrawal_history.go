package model

import "time"

const WithdrawalHistoryCollection = "withdrawal_history"

// WithdrawalHistoryDocument archives one claimed withdrawal. The archive is
// advisory history for display across sessions; live session state is always
// re-seeded from the chain.
type WithdrawalHistoryDocument struct {
	Account      string    `bson:"account"`
	WithdrawalID uint64    `bson:"withdrawal_id"`
	// Amount is the net amount in token base units, as a decimal string.
	Amount      string    `bson:"amount"`
	RequestedAt time.Time `bson:"requested_at"`
	UnlockAt    time.Time `bson:"unlock_at"`
	ClaimedAt   time.Time `bson:"claimed_at"`
	ClaimTxRef  string    `bson:"claim_tx_ref"`
}
