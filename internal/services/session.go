package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/unstakeportal/portal-api-service/internal/chain"
	"github.com/unstakeportal/portal-api-service/internal/ledger"
	"github.com/unstakeportal/portal-api-service/internal/observability/metrics"
	"github.com/unstakeportal/portal-api-service/internal/types"
	"github.com/unstakeportal/portal-api-service/internal/utils"
)

// Connect establishes a session for the account: it verifies the provider and
// network through the gateway, pulls the authoritative balances and withdrawal
// list from the chain and seeds fresh session state from them. Reconnecting
// replaces any existing session, optimistic local state never survives a
// reconnect.
func (s *Services) Connect(ctx context.Context, account string) (*SessionPublic, *types.Error) {
	if !utils.IsValidAccountAddress(account) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			fmt.Sprintf("invalid account address: %s", account),
		)
	}

	networkID, err := s.Gateway.Connect(ctx)
	if err != nil {
		return nil, err
	}

	token, err := s.Gateway.TokenInfo(ctx)
	if err != nil {
		// Token metadata is display-only, fall back to bare defaults rather
		// than failing the connect.
		log.Ctx(ctx).Warn().Err(err).Msg("failed to fetch token metadata, using defaults")
		token = &chain.TokenInfo{Symbol: "", Decimals: 18}
	}

	staked, err := s.Gateway.GetStakedBalance(ctx, account)
	if err != nil {
		return nil, err
	}
	rewards, err := s.Gateway.GetPendingRewards(ctx, account)
	if err != nil {
		return nil, err
	}
	withdrawals, err := s.Gateway.GetWithdrawals(ctx, account)
	if err != nil {
		return nil, err
	}

	sess := s.Sessions.Put(account, networkID, token)
	now := time.Now().UTC()

	sess.Lock()
	sess.Balance.SetFromChain(staked, rewards)
	entries := make([]ledger.SeedEntry, 0, len(withdrawals))
	for _, w := range withdrawals {
		entries = append(entries, ledger.SeedEntry{
			ID:          w.ID,
			Amount:      w.Amount,
			RequestedAt: w.RequestedAt,
			UnlockAt:    w.UnlockAt,
			Claimed:     w.Claimed,
		})
	}
	sess.Ledger.Seed(entries, now)
	sess.Unlock()

	metrics.SetActiveSessions(len(s.Sessions.All()))
	log.Ctx(ctx).Info().
		Str("account", sess.Account).
		Str("networkId", networkID.String()).
		Int("withdrawals", len(withdrawals)).
		Msg("session connected")

	return &SessionPublic{
		SessionID:   sess.ID,
		Account:     sess.Account,
		NetworkID:   networkID.String(),
		TokenSymbol: token.Symbol,
		Decimals:    token.Decimals,
		CreatedAt:   sess.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Disconnect drops the session, destroying its ledger and balances. Claimed
// history survives in the archive.
func (s *Services) Disconnect(ctx context.Context, account string) *types.Error {
	if _, err := s.Sessions.Get(account); err != nil {
		return err
	}
	s.Sessions.Remove(account)
	metrics.SetActiveSessions(len(s.Sessions.All()))
	log.Ctx(ctx).Info().Str("account", account).Msg("session disconnected")
	return nil
}
