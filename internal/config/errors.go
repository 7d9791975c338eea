package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unsupported driver name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
