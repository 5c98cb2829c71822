package pricefeed

import (
	"context"
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

type PriceFeedClientInterface interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
	// GetTokenPriceUsd returns the current USD price of the staked token.
	GetTokenPriceUsd(ctx context.Context) (float64, *types.Error)
}
