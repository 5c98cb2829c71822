package services

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/unstakeportal/portal-api-service/internal/fees"
	"github.com/unstakeportal/portal-api-service/internal/observability/metrics"
	"github.com/unstakeportal/portal-api-service/internal/queue"
	"github.com/unstakeportal/portal-api-service/internal/types"
)

// Unstake runs the unstake flow for the account's session: validate the
// amount, quote the fee, reserve the balance, submit to the chain and wait for
// confirmation, then record the net amount as a pending withdrawal. Any
// gateway failure rolls the reservation back so balances return to their exact
// prior values.
func (s *Services) Unstake(ctx context.Context, account, amountStr string) (*UnstakeResultPublic, *types.Error) {
	sess, err := s.Sessions.Get(account)
	if err != nil {
		metrics.RecordUnstakeOutcome(metrics.Error, err.ErrorCode.String())
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	amount, parseErr := parsePositiveAmount(amountStr)
	if parseErr != nil {
		metrics.RecordUnstakeOutcome(metrics.Error, parseErr.ErrorCode.String())
		return nil, parseErr
	}
	if amount.Cmp(sess.Balance.Available()) > 0 {
		insufficientErr := types.NewErrorWithMsg(
			http.StatusForbidden, types.InsufficientBalance,
			fmt.Sprintf("unstake amount %s exceeds available balance %s", amount, sess.Balance.Available()),
		)
		metrics.RecordUnstakeOutcome(metrics.Error, insufficientErr.ErrorCode.String())
		return nil, insufficientErr
	}

	quote, err := fees.Quote(amount, s.cfg.Chain.FeeRateBps())
	if err != nil {
		metrics.RecordUnstakeOutcome(metrics.Error, err.ErrorCode.String())
		return nil, err
	}

	if err := sess.Balance.ReserveForUnstake(amount); err != nil {
		metrics.RecordUnstakeOutcome(metrics.Error, err.ErrorCode.String())
		return nil, err
	}

	txRef, err := s.Gateway.SubmitUnstake(ctx, sess.Account, amount)
	if err != nil {
		sess.Balance.Rollback(amount)
		metrics.RecordUnstakeOutcome(metrics.Error, err.ErrorCode.String())
		return nil, err
	}

	confirmed, err := s.Gateway.WaitForConfirmation(ctx, txRef)
	if err != nil {
		sess.Balance.Rollback(amount)
		metrics.RecordUnstakeOutcome(metrics.Error, err.ErrorCode.String())
		return nil, err
	}
	if !confirmed {
		sess.Balance.Rollback(amount)
		revertedErr := types.NewErrorWithMsg(
			http.StatusBadGateway, types.Reverted,
			fmt.Sprintf("unstake transaction %s reverted", txRef),
		)
		metrics.RecordUnstakeOutcome(metrics.Error, revertedErr.ErrorCode.String())
		return nil, revertedErr
	}

	now := time.Now().UTC()
	unlockAt := now.Add(s.cfg.Chain.UnstakingPeriod())
	record, err := sess.Ledger.Add(quote.Net, now, unlockAt, txRef)
	if err != nil {
		// The chain already accepted the unstake; the reservation must stand.
		// Surface the inconsistency instead of hiding it behind a rollback.
		log.Ctx(ctx).Error().Err(err).
			Str("account", sess.Account).Str("txRef", txRef).
			Msg("confirmed unstake could not be recorded in ledger")
		metrics.RecordUnstakeOutcome(metrics.Error, err.ErrorCode.String())
		return nil, err
	}

	if dbErr := s.DbClient.IncrementUnstakeStats(ctx, quote.Net.String()); dbErr != nil {
		log.Ctx(ctx).Error().Err(dbErr).Msg("failed to increment unstake stats")
	}
	s.Publisher.PublishUnstakeConfirmed(ctx, &queue.UnstakeConfirmedEvent{
		EventType:    queue.UnstakeConfirmedEventType,
		Account:      sess.Account,
		WithdrawalID: record.ID,
		Principal:    quote.Principal.String(),
		Fee:          quote.Fee.String(),
		Net:          quote.Net.String(),
		UnlockAt:     unlockAt.Format(time.RFC3339),
		TxRef:        txRef,
	})
	metrics.RecordUnstakeOutcome(metrics.Success, "")

	log.Ctx(ctx).Info().
		Str("account", sess.Account).
		Uint64("withdrawalId", record.ID).
		Str("principal", quote.Principal.String()).
		Str("fee", quote.Fee.String()).
		Str("net", quote.Net.String()).
		Str("txRef", txRef).
		Msg("unstake confirmed")

	return &UnstakeResultPublic{
		Withdrawal: withdrawalPublic(record),
		Quote:      feeQuotePublic(quote),
		Balances:   balancePublic(sess.Balance.Snapshot()),
		TxRef:      txRef,
	}, nil
}

func parsePositiveAmount(amountStr string) (*big.Int, *types.Error) {
	amount, err := parseAmount(amountStr)
	if err != nil {
		return nil, err
	}
	if amount.Sign() <= 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidAmount, "amount must be positive",
		)
	}
	return amount, nil
}
