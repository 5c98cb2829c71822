package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/unstakeportal/portal-api-service/internal/db"
	"github.com/unstakeportal/portal-api-service/internal/db/model"
	"github.com/unstakeportal/portal-api-service/internal/observability/metrics"
	"github.com/unstakeportal/portal-api-service/internal/queue"
	"github.com/unstakeportal/portal-api-service/internal/types"
	"github.com/unstakeportal/portal-api-service/internal/utils"
)

// Claim runs the claim flow for one withdrawal: re-evaluate readiness against
// the current clock, submit the claim and wait for confirmation, then mark the
// record claimed and archive it. On any gateway failure the record stays ready
// and the claim can simply be retried.
func (s *Services) Claim(ctx context.Context, account string, withdrawalID uint64) (*ClaimResultPublic, *types.Error) {
	sess, err := s.Sessions.Get(account)
	if err != nil {
		metrics.RecordClaimOutcome(metrics.Error, err.ErrorCode.String())
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	now := time.Now().UTC()
	transitioned := sess.Ledger.RefreshReadiness(now)
	metrics.RecordReadinessTransitions(len(transitioned))

	record, err := sess.Ledger.Get(withdrawalID)
	if err != nil {
		metrics.RecordClaimOutcome(metrics.Error, err.ErrorCode.String())
		return nil, err
	}
	if !utils.Contains(types.QualifiedStatusesToClaimed(), record.Status) {
		notReadyErr := types.NewErrorWithMsg(
			http.StatusForbidden, types.NotReady,
			fmt.Sprintf("withdrawal %d is %s, not ready to claim", withdrawalID, record.Status),
		)
		metrics.RecordClaimOutcome(metrics.Error, notReadyErr.ErrorCode.String())
		return nil, notReadyErr
	}

	txRef, err := s.Gateway.SubmitClaim(ctx, sess.Account, withdrawalID)
	if err != nil {
		metrics.RecordClaimOutcome(metrics.Error, err.ErrorCode.String())
		return nil, err
	}

	confirmed, err := s.Gateway.WaitForConfirmation(ctx, txRef)
	if err != nil {
		metrics.RecordClaimOutcome(metrics.Error, err.ErrorCode.String())
		return nil, err
	}
	if !confirmed {
		revertedErr := types.NewErrorWithMsg(
			http.StatusBadGateway, types.Reverted,
			fmt.Sprintf("claim transaction %s reverted", txRef),
		)
		metrics.RecordClaimOutcome(metrics.Error, revertedErr.ErrorCode.String())
		return nil, revertedErr
	}

	claimed, err := sess.Ledger.MarkClaimed(withdrawalID)
	if err != nil {
		metrics.RecordClaimOutcome(metrics.Error, err.ErrorCode.String())
		return nil, err
	}

	// The archive is advisory display history, a failed write never fails the
	// claim that already succeeded on chain.
	historyDoc := &model.WithdrawalHistoryDocument{
		Account:      sess.Account,
		WithdrawalID: claimed.ID,
		Amount:       claimed.Amount.String(),
		RequestedAt:  claimed.RequestedAt,
		UnlockAt:     claimed.UnlockAt,
		ClaimedAt:    now,
		ClaimTxRef:   txRef,
	}
	if dbErr := s.DbClient.SaveClaimedWithdrawal(ctx, historyDoc); dbErr != nil {
		if db.IsDuplicateKeyError(dbErr) {
			log.Ctx(ctx).Warn().
				Str("account", sess.Account).Uint64("withdrawalId", claimed.ID).
				Msg("claimed withdrawal already archived")
		} else {
			log.Ctx(ctx).Error().Err(dbErr).Msg("failed to archive claimed withdrawal")
		}
	}
	if dbErr := s.DbClient.IncrementClaimStats(ctx, claimed.Amount.String()); dbErr != nil {
		log.Ctx(ctx).Error().Err(dbErr).Msg("failed to increment claim stats")
	}

	s.Publisher.PublishWithdrawalClaimed(ctx, &queue.WithdrawalClaimedEvent{
		EventType:    queue.WithdrawalClaimedEventType,
		Account:      sess.Account,
		WithdrawalID: claimed.ID,
		Amount:       claimed.Amount.String(),
		TxRef:        txRef,
	})
	metrics.RecordClaimOutcome(metrics.Success, "")

	log.Ctx(ctx).Info().
		Str("account", sess.Account).
		Uint64("withdrawalId", claimed.ID).
		Str("amount", claimed.Amount.String()).
		Str("txRef", txRef).
		Msg("withdrawal claimed")

	return &ClaimResultPublic{
		Withdrawal: withdrawalPublic(claimed),
		TxRef:      txRef,
	}, nil
}
