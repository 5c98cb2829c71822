package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// PriceFeedConfig configures the optional USD valuation client. Leaving the
// token id empty disables valuation; fee quotes then omit the USD field.
type PriceFeedConfig struct {
	APIURL  string        `mapstructure:"api-url"`
	TokenID string        `mapstructure:"token-id"`
	Timeout time.Duration `mapstructure:"timeout"`
	// CacheTTL bounds how long a fetched price is reused before the feed is
	// queried again.
	CacheTTL time.Duration `mapstructure:"cache-ttl"`
}

func (cfg *PriceFeedConfig) Enabled() bool {
	return cfg.TokenID != ""
}

func (cfg *PriceFeedConfig) Validate() error {
	if !cfg.Enabled() {
		return nil
	}

	if cfg.APIURL == "" {
		return errors.New("missing price feed api-url")
	}

	parsed, err := url.ParseRequestURI(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("invalid price feed api-url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("price feed api-url must start with http or https")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Minute
	}

	return nil
}
