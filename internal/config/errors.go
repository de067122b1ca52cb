package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid network adapter settings
	// (for example, missing gateway URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid settings-store settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates invalid vault settings
	// (for example, missing vault root directory).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidPreviewConfigs indicates invalid preview server settings
	// (for example, empty listen address).
	ErrInvalidPreviewConfigs = errors.New("invalid preview configuration")
)
