package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for arpub. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Vault holds the note vault location and the active note selection.
	Vault Vault `envPrefix:"VAULT_"`

	// Storage holds configuration for the local settings database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the storage-network gateway and price-feed endpoints
	// together with the outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Preview holds settings for the local HTML preview server.
	Preview Preview `envPrefix:"PREVIEW_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Vault describes where notes and their attachments live on disk.
type Vault struct {
	// Dir is the vault root directory containing markdown notes.
	// Env: VAULT_DIR
	Dir string `env:"DIR"`

	// Note is the path of the active note, relative to Dir or absolute.
	// When empty there is no active note and the publish workflow aborts
	// with a notice.
	// Env: VAULT_NOTE
	Note string `env:"NOTE"`

	// AttachmentsDir is an optional directory (relative to Dir) checked
	// when resolving embed links, before falling back to a vault-wide
	// filename search.
	// Env: VAULT_ATTACHMENTS_DIR
	AttachmentsDir string `env:"ATTACHMENTS_DIR"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the local settings database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite settings database.
type DB struct {
	// DSN is the SQLite file path used to open the settings database
	// (e.g. "arpub.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration for the outbound network integrations.
type Adapter struct {
	// GatewayURL is the base URL of the Arweave gateway used for price,
	// balance, and transaction submission (e.g. "https://arweave.net").
	// Env: ADAPTER_GATEWAY_URL
	GatewayURL string `env:"GATEWAY_URL"`

	// PriceFeedURL is the fiat price-feed endpoint queried for the
	// AR/USD exchange rate.
	// Env: ADAPTER_PRICE_FEED_URL
	PriceFeedURL string `env:"PRICE_FEED_URL"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Preview holds settings for the local preview HTTP server.
type Preview struct {
	// Address is the TCP address the preview server listens on,
	// in "host:port" format (e.g. "127.0.0.1:8666").
	// Env: PREVIEW_ADDRESS
	Address string `env:"ADDRESS"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
