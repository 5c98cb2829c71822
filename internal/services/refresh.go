package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/unstakeportal/portal-api-service/internal/observability/metrics"
	"github.com/unstakeportal/portal-api-service/internal/session"
)

// RefreshSessions re-syncs every live session from the chain and re-evaluates
// withdrawal readiness. It is driven by the background refresher on the
// configured interval. Per-session failures are logged and retried on the next
// cycle, one broken session never stalls the rest.
func (s *Services) RefreshSessions(ctx context.Context) {
	sessions := s.Sessions.All()
	for _, sess := range sessions {
		s.refreshSession(ctx, sess)
	}
	metrics.SetActiveSessions(len(sessions))
}

func (s *Services) refreshSession(ctx context.Context, sess *session.Session) {
	staked, err := s.Gateway.GetStakedBalance(ctx, sess.Account)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("account", sess.Account).Msg("balance refresh failed")
		return
	}
	rewards, err := s.Gateway.GetPendingRewards(ctx, sess.Account)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("account", sess.Account).Msg("rewards refresh failed")
		return
	}

	sess.Lock()
	sess.Balance.SetFromChain(staked, rewards)
	transitioned := sess.Ledger.RefreshReadiness(time.Now().UTC())
	sess.Unlock()

	metrics.RecordReadinessTransitions(len(transitioned))
	if len(transitioned) > 0 {
		log.Ctx(ctx).Info().
			Str("account", sess.Account).
			Ints64("withdrawalIds", toInt64s(transitioned)).
			Msg("withdrawals became ready")
	}
}

func toInt64s(ids []uint64) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
