package queue

type EventType int

const (
	UnstakeConfirmedEventType  EventType = 1
	WithdrawalClaimedEventType EventType = 2
)

const (
	UnstakeConfirmedRoutingKey  string = "portal.unstake_confirmed"
	WithdrawalClaimedRoutingKey string = "portal.withdrawal_claimed"
)

// UnstakeConfirmedEvent is published after the chain accepted an unstake and
// the withdrawal entered the ledger. Amounts are token base units as decimal
// strings.
type UnstakeConfirmedEvent struct {
	EventType    EventType `json:"event_type"` // always 1
	Account      string    `json:"account"`
	WithdrawalID uint64    `json:"withdrawal_id"`
	Principal    string    `json:"principal"`
	Fee          string    `json:"fee"`
	Net          string    `json:"net"`
	UnlockAt     string    `json:"unlock_at"`
	TxRef        string    `json:"tx_ref"`
}

// WithdrawalClaimedEvent is published after a claim transaction succeeded.
type WithdrawalClaimedEvent struct {
	EventType    EventType `json:"event_type"` // always 2
	Account      string    `json:"account"`
	WithdrawalID uint64    `json:"withdrawal_id"`
	Amount       string    `json:"amount"`
	TxRef        string    `json:"tx_ref"`
}
