package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/unstakeportal/portal-api-service/internal/clients"
	"github.com/unstakeportal/portal-api-service/internal/types"
)

type stubPriceFeed struct {
	price float64
	err   *types.Error
}

func (s *stubPriceFeed) GetBaseURL() string            { return "" }
func (s *stubPriceFeed) GetDefaultRequestTimeout() int { return 1000 }
func (s *stubPriceFeed) GetHttpClient() *http.Client   { return nil }
func (s *stubPriceFeed) GetTokenPriceUsd(ctx context.Context) (float64, *types.Error) {
	return s.price, s.err
}

func TestFeeQuoteWithoutSession(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))

	quote, err := svc.GetFeeQuote(context.Background(), "", tokens(20).String())
	require.Nil(t, err)
	assert.Equal(t, tokens(20).String(), quote.Principal)
	assert.Equal(t, int64(400), quote.FeeRateBps)
	assert.Equal(t, "800000000000000000", quote.Fee)
	assert.Equal(t, "19200000000000000000", quote.Net)
	assert.Empty(t, quote.PrincipalUsd)
}

func TestFeeQuoteAttachesUsdValuation(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	svc.Clients = &clients.Clients{PriceFeed: &stubPriceFeed{price: 2.5}}
	seedSession(svc, tokens(100))

	quote, err := svc.GetFeeQuote(context.Background(), testAccount, tokens(20).String())
	require.Nil(t, err)
	assert.Equal(t, "50.00", quote.PrincipalUsd)
}

func TestFeeQuoteDegradesWhenPriceFeedFails(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	svc.Clients = &clients.Clients{PriceFeed: &stubPriceFeed{
		err: types.NewErrorWithMsg(http.StatusGatewayTimeout, types.GatewayTimeout, "price feed timed out"),
	}}

	quote, err := svc.GetFeeQuote(context.Background(), "", tokens(20).String())
	require.Nil(t, err)
	assert.Empty(t, quote.PrincipalUsd)
}

func TestFeeQuoteRejectsNonPositiveAmount(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))

	for _, amount := range []string{"0", "-1", "nope"} {
		_, err := svc.GetFeeQuote(context.Background(), "", amount)
		require.NotNil(t, err, "amount %q", amount)
		assert.Equal(t, types.InvalidAmount, err.ErrorCode)
	}
}

func TestFeeQuoteIsEphemeral(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	sess := seedSession(svc, tokens(20))

	_, err := svc.GetFeeQuote(context.Background(), testAccount, tokens(10).String())
	require.Nil(t, err)

	sess.Lock()
	snap := sess.Balance.Snapshot()
	records := sess.Ledger.List()
	sess.Unlock()
	assert.Equal(t, 0, snap.Available.Cmp(tokens(20)))
	assert.Empty(t, records)
}

func TestRefreshSessionsTransitionsReadiness(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	sess := seedSession(svc, tokens(20))
	id := addWithdrawal(t, sess, tokens(5), time.Now().UTC().Add(-time.Second))

	gateway.On("GetStakedBalance", mock.Anything, sess.Account).Return(tokens(15), nil)
	gateway.On("GetPendingRewards", mock.Anything, sess.Account).Return(tokens(1), nil)

	svc.RefreshSessions(context.Background())

	sess.Lock()
	record, getErr := sess.Ledger.Get(id)
	snap := sess.Balance.Snapshot()
	sess.Unlock()
	require.Nil(t, getErr)
	assert.Equal(t, types.WithdrawalReady, record.Status)
	assert.Equal(t, 0, snap.Staked.Cmp(tokens(15)))
	assert.Equal(t, 0, snap.Rewards.Cmp(tokens(1)))
}

func TestRefreshSessionsToleratesGatewayFailure(t *testing.T) {
	gateway := new(mockGateway)
	dbClient := new(mockDBClient)
	svc := newTestServices(t, gateway, dbClient, testConfig(4, 9))
	sess := seedSession(svc, tokens(20))

	gateway.On("GetStakedBalance", mock.Anything, mock.Anything).
		Return(nil, types.NewErrorWithMsg(http.StatusBadGateway, types.NoProvider, "connection refused"))

	svc.RefreshSessions(context.Background())

	// Balances keep their last known values until the next successful cycle.
	sess.Lock()
	snap := sess.Balance.Snapshot()
	sess.Unlock()
	assert.Equal(t, 0, snap.Staked.Cmp(tokens(20)))
}
