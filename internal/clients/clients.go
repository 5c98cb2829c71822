package clients

import (
	"github.com/unstakeportal/portal-api-service/internal/clients/pricefeed"
	"github.com/unstakeportal/portal-api-service/internal/config"
)

type Clients struct {
	// PriceFeed is nil when USD valuation is disabled in config.
	PriceFeed pricefeed.PriceFeedClientInterface
}

func New(cfg *config.Config) *Clients {
	var priceFeedClient pricefeed.PriceFeedClientInterface
	if cfg.PriceFeed.Enabled() {
		priceFeedClient = pricefeed.NewPriceFeedClient(&cfg.PriceFeed)
	}

	return &Clients{
		PriceFeed: priceFeedClient,
	}
}
