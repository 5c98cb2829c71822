package services

import (
	"context"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

// GetBalances returns the session's current balance snapshot.
func (s *Services) GetBalances(ctx context.Context, account string) (*BalancePublic, *types.Error) {
	sess, err := s.Sessions.Get(account)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	snap := sess.Balance.Snapshot()
	sess.Unlock()

	public := balancePublic(snap)
	return &public, nil
}
