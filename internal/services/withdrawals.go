package services

import (
	"context"
	"time"

	"github.com/unstakeportal/portal-api-service/internal/ledger"
	"github.com/unstakeportal/portal-api-service/internal/observability/metrics"
	"github.com/unstakeportal/portal-api-service/internal/session"
	"github.com/unstakeportal/portal-api-service/internal/types"
)

// GetWithdrawals lists the session's withdrawals in insertion order, refreshing
// readiness against the current clock first so the listing never shows a stale
// pending entry past its unlock time. Claimed entries are included only on
// request.
func (s *Services) GetWithdrawals(ctx context.Context, account string, includeClaimed bool) ([]WithdrawalPublic, *types.Error) {
	sess, err := s.Sessions.Get(account)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	transitioned := sess.Ledger.RefreshReadiness(time.Now().UTC())
	var records []*ledger.WithdrawalRecord
	if includeClaimed {
		records = sess.Ledger.List()
	} else {
		records = sess.Ledger.Active()
	}
	sess.Unlock()

	metrics.RecordReadinessTransitions(len(transitioned))

	out := make([]WithdrawalPublic, 0, len(records))
	for _, record := range records {
		out = append(out, withdrawalPublic(record))
	}
	return out, nil
}

// GetWithdrawalHistory returns the archived claimed withdrawals for the
// account, across sessions. The account does not need a live session.
func (s *Services) GetWithdrawalHistory(ctx context.Context, account string) ([]WithdrawalHistoryPublic, *types.Error) {
	docs, dbErr := s.DbClient.FindWithdrawalHistory(ctx, session.CanonicalAccount(account))
	if dbErr != nil {
		return nil, types.NewInternalServiceError(dbErr)
	}

	out := make([]WithdrawalHistoryPublic, 0, len(docs))
	for _, doc := range docs {
		out = append(out, WithdrawalHistoryPublic{
			WithdrawalID: doc.WithdrawalID,
			Amount:       doc.Amount,
			RequestedAt:  doc.RequestedAt.UTC().Format(time.RFC3339),
			UnlockAt:     doc.UnlockAt.UTC().Format(time.RFC3339),
			ClaimedAt:    doc.ClaimedAt.UTC().Format(time.RFC3339),
			ClaimTxRef:   doc.ClaimTxRef,
		})
	}
	return out, nil
}
