package config

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const bpsPerPercent = 100

// ChainConfig holds the network identity, the externally deployed contract
// addresses and the portal's staking parameters.
type ChainConfig struct {
	RPCURL          string `mapstructure:"rpc-url"`
	FallbackRPCURL  string `mapstructure:"fallback-rpc-url"`
	ChainID         int64  `mapstructure:"chain-id"`
	StakingContract string `mapstructure:"staking-contract"`
	TokenContract   string `mapstructure:"token-contract"`
	ExplorerURL     string `mapstructure:"explorer-url"`
	// SignerKey is the hex-encoded operator key used to sign unstake and
	// claim transactions. Prefer injecting it via environment override.
	SignerKey string `mapstructure:"signer-key"`

	// UnstakingFeePercent is deducted from the unstaked amount at request
	// time, e.g. 0.5 means 0.5%. Must be expressible in whole basis points.
	UnstakingFeePercent float64 `mapstructure:"unstaking-fee-percent"`
	// UnstakingPeriodDays is the lock duration after an unstake request.
	UnstakingPeriodDays      int           `mapstructure:"unstaking-period-days"`
	ConfirmationPollInterval time.Duration `mapstructure:"confirmation-poll-interval"`
}

func (cfg *ChainConfig) Validate() error {
	if err := validateHTTPURL(cfg.RPCURL, "rpc-url"); err != nil {
		return err
	}
	if cfg.FallbackRPCURL != "" {
		if err := validateHTTPURL(cfg.FallbackRPCURL, "fallback-rpc-url"); err != nil {
			return err
		}
	}

	if cfg.ChainID <= 0 {
		return errors.New("chain-id must be positive")
	}

	if !common.IsHexAddress(cfg.StakingContract) {
		return fmt.Errorf("invalid staking-contract address: %s", cfg.StakingContract)
	}
	if !common.IsHexAddress(cfg.TokenContract) {
		return fmt.Errorf("invalid token-contract address: %s", cfg.TokenContract)
	}

	if cfg.ExplorerURL != "" {
		if err := validateHTTPURL(cfg.ExplorerURL, "explorer-url"); err != nil {
			return err
		}
	}

	if cfg.SignerKey == "" {
		return errors.New("missing signer-key")
	}

	if cfg.UnstakingFeePercent < 0 {
		return errors.New("unstaking-fee-percent cannot be negative")
	}
	bps := cfg.UnstakingFeePercent * bpsPerPercent
	if bps != math.Trunc(bps) {
		return errors.New("unstaking-fee-percent must be a whole number of basis points")
	}

	if cfg.UnstakingPeriodDays <= 0 {
		return errors.New("unstaking-period-days must be positive")
	}

	if cfg.ConfirmationPollInterval <= 0 {
		cfg.ConfirmationPollInterval = 2 * time.Second
	}

	return nil
}

// FeeRateBps returns the unstaking fee rate in basis points.
func (cfg *ChainConfig) FeeRateBps() int64 {
	return int64(cfg.UnstakingFeePercent * bpsPerPercent)
}

// UnstakingPeriod returns the lock duration after an unstake request.
func (cfg *ChainConfig) UnstakingPeriod() time.Duration {
	return time.Duration(cfg.UnstakingPeriodDays) * 24 * time.Hour
}

func validateHTTPURL(raw, field string) error {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}
	switch parsed.Scheme {
	case "http", "https", "ws", "wss":
		return nil
	default:
		return fmt.Errorf("%s must use an http(s) or ws(s) scheme", field)
	}
}
