package config

import (
	"fmt"
	"net/url"
)

// QueueConfig configures the optional lifecycle event publisher. Leaving the
// url empty disables event publishing entirely.
type QueueConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

func (cfg *QueueConfig) Enabled() bool {
	return cfg.URL != ""
}

func (cfg *QueueConfig) Validate() error {
	if !cfg.Enabled() {
		return nil
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return fmt.Errorf("invalid queue url: %w", err)
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return fmt.Errorf("unsupported queue scheme: %s", u.Scheme)
	}

	if cfg.Exchange == "" {
		return fmt.Errorf("missing queue exchange")
	}

	return nil
}
