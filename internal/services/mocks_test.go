package services

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"

	"github.com/unstakeportal/portal-api-service/internal/chain"
	"github.com/unstakeportal/portal-api-service/internal/db/model"
	"github.com/unstakeportal/portal-api-service/internal/types"
)

type mockGateway struct {
	mock.Mock
}

func typedErr(args mock.Arguments, index int) *types.Error {
	if e := args.Get(index); e != nil {
		return e.(*types.Error)
	}
	return nil
}

func (m *mockGateway) Connect(ctx context.Context) (*big.Int, *types.Error) {
	args := m.Called(ctx)
	var id *big.Int
	if v := args.Get(0); v != nil {
		id = v.(*big.Int)
	}
	return id, typedErr(args, 1)
}

func (m *mockGateway) TokenInfo(ctx context.Context) (*chain.TokenInfo, *types.Error) {
	args := m.Called(ctx)
	var info *chain.TokenInfo
	if v := args.Get(0); v != nil {
		info = v.(*chain.TokenInfo)
	}
	return info, typedErr(args, 1)
}

func (m *mockGateway) GetStakedBalance(ctx context.Context, account string) (*big.Int, *types.Error) {
	args := m.Called(ctx, account)
	var amount *big.Int
	if v := args.Get(0); v != nil {
		amount = v.(*big.Int)
	}
	return amount, typedErr(args, 1)
}

func (m *mockGateway) GetPendingRewards(ctx context.Context, account string) (*big.Int, *types.Error) {
	args := m.Called(ctx, account)
	var amount *big.Int
	if v := args.Get(0); v != nil {
		amount = v.(*big.Int)
	}
	return amount, typedErr(args, 1)
}

func (m *mockGateway) GetWithdrawals(ctx context.Context, account string) ([]chain.Withdrawal, *types.Error) {
	args := m.Called(ctx, account)
	var withdrawals []chain.Withdrawal
	if v := args.Get(0); v != nil {
		withdrawals = v.([]chain.Withdrawal)
	}
	return withdrawals, typedErr(args, 1)
}

func (m *mockGateway) SubmitUnstake(ctx context.Context, account string, amount *big.Int) (string, *types.Error) {
	args := m.Called(ctx, account, amount)
	return args.String(0), typedErr(args, 1)
}

func (m *mockGateway) SubmitClaim(ctx context.Context, account string, withdrawalID uint64) (string, *types.Error) {
	args := m.Called(ctx, account, withdrawalID)
	return args.String(0), typedErr(args, 1)
}

func (m *mockGateway) WaitForConfirmation(ctx context.Context, txRef string) (bool, *types.Error) {
	args := m.Called(ctx, txRef)
	return args.Bool(0), typedErr(args, 1)
}

type mockDBClient struct {
	mock.Mock
}

func (m *mockDBClient) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockDBClient) SaveClaimedWithdrawal(ctx context.Context, doc *model.WithdrawalHistoryDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *mockDBClient) FindWithdrawalHistory(ctx context.Context, account string) ([]model.WithdrawalHistoryDocument, error) {
	args := m.Called(ctx, account)
	var docs []model.WithdrawalHistoryDocument
	if v := args.Get(0); v != nil {
		docs = v.([]model.WithdrawalHistoryDocument)
	}
	return docs, args.Error(1)
}

func (m *mockDBClient) IncrementUnstakeStats(ctx context.Context, amount string) error {
	return m.Called(ctx, amount).Error(0)
}

func (m *mockDBClient) IncrementClaimStats(ctx context.Context, amount string) error {
	return m.Called(ctx, amount).Error(0)
}

func (m *mockDBClient) GetOverallStats(ctx context.Context) (*model.StatsDocument, error) {
	args := m.Called(ctx)
	var doc *model.StatsDocument
	if v := args.Get(0); v != nil {
		doc = v.(*model.StatsDocument)
	}
	return doc, args.Error(1)
}
