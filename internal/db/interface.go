package db

import (
	"context"

	"github.com/unstakeportal/portal-api-service/internal/db/model"
)

type DBClient interface {
	Ping(ctx context.Context) error
	// SaveClaimedWithdrawal archives a claimed withdrawal for cross-session
	// history. Re-archiving the same (account, withdrawal id) pair returns a
	// DuplicateKeyError.
	SaveClaimedWithdrawal(ctx context.Context, doc *model.WithdrawalHistoryDocument) error
	FindWithdrawalHistory(ctx context.Context, account string) ([]model.WithdrawalHistoryDocument, error)
	IncrementUnstakeStats(ctx context.Context, amount string) error
	IncrementClaimStats(ctx context.Context, amount string) error
	GetOverallStats(ctx context.Context) (*model.StatsDocument, error)
}
