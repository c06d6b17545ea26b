package config

import "errors"

// Validation errors returned when the merged configuration cannot be used.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty secret or an unsupported token algorithm).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database URL).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid transport settings
	// (for example, a missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSeedConfigs indicates an enabled seed account without
	// credentials.
	ErrInvalidSeedConfigs = errors.New("invalid seed configuration")
	// ErrInvalidClientConfigs indicates invalid command-line client settings
	// (for example, a server URL without scheme).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
