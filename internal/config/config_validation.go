package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The active note path is deliberately not validated here: an empty or
// missing note is a normal runtime condition surfaced to the user as a
// notice, not a startup failure.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.GatewayURL == "" || cfg.Adapter.PriceFeedURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Vault.Dir == "" {
		return ErrInvalidVaultConfigs
	}

	if cfg.Preview.Address == "" {
		return ErrInvalidPreviewConfigs
	}

	return nil
}
