package pricefeed

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	baseclient "github.com/unstakeportal/portal-api-service/internal/clients/base"
	"github.com/unstakeportal/portal-api-service/internal/config"
	"github.com/unstakeportal/portal-api-service/internal/types"
)

// PriceFeedClient fetches the staked token's USD price from a CoinGecko
// compatible simple-price endpoint. Prices are cached for the configured TTL,
// the portal only needs display accuracy.
type PriceFeedClient struct {
	config     *config.PriceFeedConfig
	httpClient *http.Client

	mu        sync.Mutex
	lastPrice float64
	fetchedAt time.Time
}

// simplePriceResponse maps token id to currency to price,
// e.g. {"ethereum": {"usd": 3012.55}}.
type simplePriceResponse map[string]map[string]float64

func NewPriceFeedClient(config *config.PriceFeedConfig) *PriceFeedClient {
	httpClient := &http.Client{}
	return &PriceFeedClient{
		config:     config,
		httpClient: httpClient,
	}
}

func (c *PriceFeedClient) GetBaseURL() string {
	return c.config.APIURL
}

func (c *PriceFeedClient) GetDefaultRequestTimeout() int {
	return int(c.config.Timeout.Milliseconds())
}

func (c *PriceFeedClient) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *PriceFeedClient) GetTokenPriceUsd(ctx context.Context) (float64, *types.Error) {
	c.mu.Lock()
	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.config.CacheTTL {
		price := c.lastPrice
		c.mu.Unlock()
		return price, nil
	}
	c.mu.Unlock()

	path := fmt.Sprintf("/simple/price?ids=%s&vs_currencies=usd", c.config.TokenID)
	opts := &baseclient.BaseClientOptions{
		Path:    path,
		Headers: map[string]string{"Accept": "application/json"},
	}

	response, err := baseclient.SendRequest[any, simplePriceResponse](
		ctx, c, http.MethodGet, opts, nil,
	)
	if err != nil {
		return 0, err
	}

	price, ok := (*response)[c.config.TokenID]["usd"]
	if !ok {
		return 0, types.NewErrorWithMsg(
			http.StatusInternalServerError, types.InternalServiceError,
			fmt.Sprintf("price feed response missing usd price for %s", c.config.TokenID),
		)
	}

	c.mu.Lock()
	c.lastPrice = price
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	return price, nil
}
