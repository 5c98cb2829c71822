package services

import (
	"time"

	"github.com/unstakeportal/portal-api-service/internal/balance"
	"github.com/unstakeportal/portal-api-service/internal/fees"
	"github.com/unstakeportal/portal-api-service/internal/ledger"
)

// Public types are the API-facing shapes. Amounts are token base units as
// decimal strings, timestamps are RFC3339 UTC.

type SessionPublic struct {
	SessionID   string `json:"session_id"`
	Account     string `json:"account"`
	NetworkID   string `json:"network_id"`
	TokenSymbol string `json:"token_symbol"`
	Decimals    uint8  `json:"decimals"`
	CreatedAt   string `json:"created_at"`
}

type BalancePublic struct {
	Staked    string `json:"staked"`
	Rewards   string `json:"rewards"`
	Available string `json:"available"`
}

type WithdrawalPublic struct {
	ID          uint64 `json:"id"`
	Amount      string `json:"amount"`
	RequestedAt string `json:"requested_at"`
	UnlockAt    string `json:"unlock_at"`
	Status      string `json:"status"`
	TxRef       string `json:"tx_ref,omitempty"`
}

type WithdrawalHistoryPublic struct {
	WithdrawalID uint64 `json:"withdrawal_id"`
	Amount       string `json:"amount"`
	RequestedAt  string `json:"requested_at"`
	UnlockAt     string `json:"unlock_at"`
	ClaimedAt    string `json:"claimed_at"`
	ClaimTxRef   string `json:"claim_tx_ref,omitempty"`
}

type FeeQuotePublic struct {
	Principal  string `json:"principal"`
	FeeRateBps int64  `json:"fee_rate_bps"`
	Fee        string `json:"fee"`
	Net        string `json:"net"`
	// PrincipalUsd is a best-effort display valuation, empty when the price
	// feed is disabled or unavailable.
	PrincipalUsd string `json:"principal_usd,omitempty"`
}

type UnstakeResultPublic struct {
	Withdrawal WithdrawalPublic `json:"withdrawal"`
	Quote      FeeQuotePublic   `json:"quote"`
	Balances   BalancePublic    `json:"balances"`
	TxRef      string           `json:"tx_ref"`
}

type ClaimResultPublic struct {
	Withdrawal WithdrawalPublic `json:"withdrawal"`
	TxRef      string           `json:"tx_ref"`
}

type ParamsPublic struct {
	ChainID             int64   `json:"chain_id"`
	StakingContract     string  `json:"staking_contract"`
	TokenContract       string  `json:"token_contract"`
	ExplorerURL         string  `json:"explorer_url,omitempty"`
	UnstakingFeePercent float64 `json:"unstaking_fee_percent"`
	UnstakingFeeBps     int64   `json:"unstaking_fee_bps"`
	UnstakingPeriodDays int     `json:"unstaking_period_days"`
}

type StatsPublic struct {
	TotalUnstaked string `json:"total_unstaked"`
	TotalClaimed  string `json:"total_claimed"`
	UnstakeCount  int64  `json:"unstake_count"`
	ClaimCount    int64  `json:"claim_count"`
}

func balancePublic(snap balance.Snapshot) BalancePublic {
	return BalancePublic{
		Staked:    snap.Staked.String(),
		Rewards:   snap.Rewards.String(),
		Available: snap.Available.String(),
	}
}

func withdrawalPublic(record *ledger.WithdrawalRecord) WithdrawalPublic {
	return WithdrawalPublic{
		ID:          record.ID,
		Amount:      record.Amount.String(),
		RequestedAt: record.RequestedAt.UTC().Format(time.RFC3339),
		UnlockAt:    record.UnlockAt.UTC().Format(time.RFC3339),
		Status:      record.Status.ToString(),
		TxRef:       record.ChainRef,
	}
}

func feeQuotePublic(quote *fees.FeeQuote) FeeQuotePublic {
	return FeeQuotePublic{
		Principal:  quote.Principal.String(),
		FeeRateBps: quote.FeeRateBps,
		Fee:        quote.Fee.String(),
		Net:        quote.Net.String(),
	}
}
