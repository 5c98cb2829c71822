package services

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/unstakeportal/portal-api-service/internal/chain"
	"github.com/unstakeportal/portal-api-service/internal/config"
	"github.com/unstakeportal/portal-api-service/internal/queue"
	"github.com/unstakeportal/portal-api-service/internal/session"
	"github.com/unstakeportal/portal-api-service/internal/types"
)

const testAccount = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"

// tokens returns n whole tokens in 18-decimal base units.
func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func baseUnits(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad base unit literal: " + s)
	}
	return v
}

func testConfig(feePercent float64, periodDays int) *config.Config {
	return &config.Config{
		Chain: config.ChainConfig{
			UnstakingFeePercent: feePercent,
			UnstakingPeriodDays: periodDays,
		},
	}
}

func newTestServices(t *testing.T, gateway *mockGateway, dbClient *mockDBClient, cfg *config.Config) *Services {
	t.Helper()
	publisher, err := queue.New(&config.QueueConfig{})
	require.NoError(t, err)
	return &Services{
		DbClient:  dbClient,
		Gateway:   gateway,
		Sessions:  session.NewManager(),
		Publisher: publisher,
		cfg:       cfg,
	}
}

func seedSession(svc *Services, staked *big.Int) *session.Session {
	sess := svc.Sessions.Put(testAccount, big.NewInt(1), &chain.TokenInfo{Symbol: "STK", Decimals: 18})
	sess.Lock()
	sess.Balance.SetFromChain(staked, big.NewInt(0))
	sess.Unlock()
	return sess
}

func TestUnstakeDeductsFeeAndRecordsNet(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	sess := seedSession(svc, tokens(20))

	gateway.On("SubmitUnstake", mock.Anything, sess.Account, tokens(20)).Return("0xtx1", nil)
	gateway.On("WaitForConfirmation", mock.Anything, "0xtx1").Return(true, nil)
	dbClient.On("IncrementUnstakeStats", mock.Anything, baseUnits("19200000000000000000").String()).Return(nil)

	result, err := svc.Unstake(context.Background(), testAccount, tokens(20).String())
	require.Nil(t, err)

	// 20 tokens at 4%: fee 0.8, net 19.2.
	assert.Equal(t, "800000000000000000", result.Quote.Fee)
	assert.Equal(t, "19200000000000000000", result.Quote.Net)
	assert.Equal(t, "19200000000000000000", result.Withdrawal.Amount)
	assert.Equal(t, types.WithdrawalPending.ToString(), result.Withdrawal.Status)
	assert.Equal(t, "0xtx1", result.TxRef)

	assert.Equal(t, "0", result.Balances.Staked)
	assert.Equal(t, "0", result.Balances.Available)

	sess.Lock()
	records := sess.Ledger.Active()
	sess.Unlock()
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].Amount.Cmp(baseUnits("19200000000000000000")))

	gateway.AssertExpectations(t)
	dbClient.AssertExpectations(t)
}

func TestUnstakeFeePlusNetEqualsPrincipal(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(0.5, 9))
	seedSession(svc, tokens(100))

	gateway.On("SubmitUnstake", mock.Anything, mock.Anything, mock.Anything).Return("0xtx1", nil)
	gateway.On("WaitForConfirmation", mock.Anything, "0xtx1").Return(true, nil)
	dbClient.On("IncrementUnstakeStats", mock.Anything, mock.Anything).Return(nil)

	principal := baseUnits("333333333333333333")
	result, err := svc.Unstake(context.Background(), testAccount, principal.String())
	require.Nil(t, err)

	fee := baseUnits(result.Quote.Fee)
	net := baseUnits(result.Quote.Net)
	assert.Equal(t, 0, new(big.Int).Add(fee, net).Cmp(principal))
}

func TestUnstakeRejectsInsufficientBalance(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	sess := seedSession(svc, tokens(20))

	_, err := svc.Unstake(context.Background(), testAccount, tokens(25).String())
	require.NotNil(t, err)
	assert.Equal(t, types.InsufficientBalance, err.ErrorCode)

	// Balances untouched, no withdrawal recorded, chain never called.
	sess.Lock()
	snap := sess.Balance.Snapshot()
	records := sess.Ledger.List()
	sess.Unlock()
	assert.Equal(t, 0, snap.Staked.Cmp(tokens(20)))
	assert.Equal(t, 0, snap.Available.Cmp(tokens(20)))
	assert.Empty(t, records)
	gateway.AssertNotCalled(t, "SubmitUnstake", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnstakeRejectsInvalidAmounts(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	seedSession(svc, tokens(20))

	for _, amount := range []string{"", "abc", "0", "-5", "1.5"} {
		_, err := svc.Unstake(context.Background(), testAccount, amount)
		require.NotNil(t, err, "amount %q", amount)
		assert.Equal(t, types.InvalidAmount, err.ErrorCode, "amount %q", amount)
	}
	gateway.AssertNotCalled(t, "SubmitUnstake", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnstakeRollsBackOnSubmissionFailure(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	sess := seedSession(svc, tokens(20))

	gatewayErr := types.NewErrorWithMsg(502, types.UserRejected, "user denied transaction signature")
	gateway.On("SubmitUnstake", mock.Anything, mock.Anything, mock.Anything).Return("", gatewayErr)

	_, err := svc.Unstake(context.Background(), testAccount, tokens(10).String())
	require.NotNil(t, err)
	assert.Equal(t, types.UserRejected, err.ErrorCode)

	sess.Lock()
	snap := sess.Balance.Snapshot()
	records := sess.Ledger.List()
	sess.Unlock()
	assert.Equal(t, 0, snap.Staked.Cmp(tokens(20)))
	assert.Equal(t, 0, snap.Available.Cmp(tokens(20)))
	assert.Empty(t, records)
}

func TestUnstakeRollsBackOnRevertedTransaction(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	sess := seedSession(svc, tokens(20))

	gateway.On("SubmitUnstake", mock.Anything, mock.Anything, mock.Anything).Return("0xtx1", nil)
	gateway.On("WaitForConfirmation", mock.Anything, "0xtx1").Return(false, nil)

	_, err := svc.Unstake(context.Background(), testAccount, tokens(10).String())
	require.NotNil(t, err)
	assert.Equal(t, types.Reverted, err.ErrorCode)

	sess.Lock()
	snap := sess.Balance.Snapshot()
	sess.Unlock()
	assert.Equal(t, 0, snap.Available.Cmp(tokens(20)))
}

func TestUnstakeRequiresSession(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))

	_, err := svc.Unstake(context.Background(), testAccount, tokens(1).String())
	require.NotNil(t, err)
	assert.Equal(t, types.NotFound, err.ErrorCode)
}

func TestUnstakeStatsFailureDoesNotFailRequest(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	seedSession(svc, tokens(20))

	gateway.On("SubmitUnstake", mock.Anything, mock.Anything, mock.Anything).Return("0xtx1", nil)
	gateway.On("WaitForConfirmation", mock.Anything, "0xtx1").Return(true, nil)
	dbClient.On("IncrementUnstakeStats", mock.Anything, mock.Anything).Return(assert.AnError)

	result, err := svc.Unstake(context.Background(), testAccount, tokens(10).String())
	require.Nil(t, err)
	assert.Equal(t, "0xtx1", result.TxRef)
}
