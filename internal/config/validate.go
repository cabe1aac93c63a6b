package config

import (
	"fmt"
	"net/url"
	"strings"
)

// strkeyLen is the length of an encoded Stellar account or contract address.
const strkeyLen = 56

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.WriteRateLimit <= 0 {
		return fmt.Errorf("server.write_rate_limit must be > 0 (got %d)", c.Server.WriteRateLimit)
	}

	if err := c.Chain.validate(); err != nil {
		return fmt.Errorf("chain: %w", err)
	}

	if err := c.Settlement.validate(); err != nil {
		return fmt.Errorf("settlement: %w", err)
	}

	if c.Server.WriteTimeout <= c.Chain.ConfirmationTimeout {
		return fmt.Errorf("server.write_timeout (%v) must exceed chain.confirmation_timeout (%v)",
			c.Server.WriteTimeout, c.Chain.ConfirmationTimeout)
	}

	return nil
}

func (c *ChainConfig) validate() error {
	u, err := url.Parse(c.RPCURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("rpc_url must be an absolute http(s) URL (got %q)", c.RPCURL)
	}
	if len(c.ContractID) != strkeyLen || !strings.HasPrefix(c.ContractID, "C") {
		return fmt.Errorf("contract_id must be a C... strkey (got %q)", c.ContractID)
	}
	if strings.TrimSpace(c.NetworkPassphrase) == "" {
		return fmt.Errorf("network_passphrase is required")
	}
	if c.PollAttempts <= 0 {
		return fmt.Errorf("poll_attempts must be > 0 (got %d)", c.PollAttempts)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be > 0 (got %v)", c.PollInterval)
	}
	if c.ConfirmationTimeout < c.PollInterval {
		return fmt.Errorf("confirmation_timeout must be >= poll_interval (got %v)", c.ConfirmationTimeout)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be > 0 (got %v)", c.HTTPTimeout)
	}
	return nil
}

func (s *SettlementConfig) validate() error {
	if s.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", s.MaxPageSize)
	}
	if s.DefaultPageSize <= 0 || s.DefaultPageSize > s.MaxPageSize {
		return fmt.Errorf("default_page_size must be in 1..%d (got %d)", s.MaxPageSize, s.DefaultPageSize)
	}
	if s.ReplayBatchSize <= 0 {
		return fmt.Errorf("replay_batch_size must be > 0 (got %d)", s.ReplayBatchSize)
	}
	return nil
}
