package services

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/unstakeportal/portal-api-service/internal/chain"
	"github.com/unstakeportal/portal-api-service/internal/types"
)

func TestConnectSeedsSessionFromChain(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))

	now := time.Now().UTC()
	gateway.On("Connect", mock.Anything).Return(big.NewInt(1), nil)
	gateway.On("TokenInfo", mock.Anything).Return(&chain.TokenInfo{Symbol: "STK", Decimals: 18}, nil)
	gateway.On("GetStakedBalance", mock.Anything, mock.Anything).Return(tokens(20), nil)
	gateway.On("GetPendingRewards", mock.Anything, mock.Anything).Return(tokens(2), nil)
	gateway.On("GetWithdrawals", mock.Anything, mock.Anything).Return([]chain.Withdrawal{
		{ID: 0, Amount: tokens(3), RequestedAt: now.Add(-10 * 24 * time.Hour), UnlockAt: now.Add(-time.Hour)},
		{ID: 1, Amount: tokens(4), RequestedAt: now.Add(-time.Hour), UnlockAt: now.Add(8 * 24 * time.Hour)},
		{ID: 2, Amount: tokens(5), RequestedAt: now.Add(-20 * 24 * time.Hour), UnlockAt: now.Add(-11 * 24 * time.Hour), Claimed: true},
	}, nil)

	public, err := svc.Connect(context.Background(), testAccount)
	require.Nil(t, err)
	assert.Equal(t, "1", public.NetworkID)
	assert.Equal(t, "STK", public.TokenSymbol)
	assert.NotEmpty(t, public.SessionID)

	balances, err := svc.GetBalances(context.Background(), testAccount)
	require.Nil(t, err)
	assert.Equal(t, tokens(20).String(), balances.Staked)
	assert.Equal(t, tokens(20).String(), balances.Available)
	assert.Equal(t, tokens(2).String(), balances.Rewards)

	// Seeded withdrawals: past unlock is ready, future unlock pending,
	// chain-claimed stays claimed and is hidden from the active listing.
	active, err := svc.GetWithdrawals(context.Background(), testAccount, false)
	require.Nil(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, types.WithdrawalReady.ToString(), active[0].Status)
	assert.Equal(t, types.WithdrawalPending.ToString(), active[1].Status)

	all, err := svc.GetWithdrawals(context.Background(), testAccount, true)
	require.Nil(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, types.WithdrawalClaimed.ToString(), all[2].Status)
}

func TestConnectRejectsInvalidAddress(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))

	_, err := svc.Connect(context.Background(), "not-an-address")
	require.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
	gateway.AssertNotCalled(t, "Connect", mock.Anything)
}

func TestConnectSurfacesWrongNetwork(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))

	gateway.On("Connect", mock.Anything).
		Return(nil, types.NewErrorWithMsg(502, types.WrongNetwork, "provider on chain 5, expected 1"))

	_, err := svc.Connect(context.Background(), testAccount)
	require.NotNil(t, err)
	assert.Equal(t, types.WrongNetwork, err.ErrorCode)
}

func TestReconnectReplacesOptimisticState(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))

	gateway.On("Connect", mock.Anything).Return(big.NewInt(1), nil)
	gateway.On("TokenInfo", mock.Anything).Return(&chain.TokenInfo{Symbol: "STK", Decimals: 18}, nil)
	gateway.On("GetStakedBalance", mock.Anything, mock.Anything).Return(tokens(20), nil)
	gateway.On("GetPendingRewards", mock.Anything, mock.Anything).Return(big.NewInt(0), nil)
	gateway.On("GetWithdrawals", mock.Anything, mock.Anything).Return(nil, nil)

	first, err := svc.Connect(context.Background(), testAccount)
	require.Nil(t, err)

	second, err := svc.Connect(context.Background(), testAccount)
	require.Nil(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)

	balances, err := svc.GetBalances(context.Background(), testAccount)
	require.Nil(t, err)
	assert.Equal(t, tokens(20).String(), balances.Available)
}

func TestDisconnectDropsSession(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	seedSession(svc, tokens(20))

	require.Nil(t, svc.Disconnect(context.Background(), testAccount))

	_, err := svc.GetBalances(context.Background(), testAccount)
	require.NotNil(t, err)
	assert.Equal(t, types.NotFound, err.ErrorCode)

	disconnectErr := svc.Disconnect(context.Background(), testAccount)
	require.NotNil(t, disconnectErr)
	assert.Equal(t, types.NotFound, disconnectErr.ErrorCode)
}

func TestSessionLookupIsCaseInsensitive(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	seedSession(svc, tokens(20))

	_, err := svc.GetBalances(context.Background(), "0x71c7656ec7ab88b098defb751b7401b5f6d8976f")
	require.Nil(t, err)
}
