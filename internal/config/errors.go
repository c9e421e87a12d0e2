package config

import "errors"

// Sentinel errors returned by the configuration validation pass.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidStorageConfigs is returned when the database DSN is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidServerConfigs is returned when the HTTP listen address is
	// missing.
	ErrInvalidServerConfigs = errors.New("invalid server configs: HTTP address is required")

	// ErrInvalidAppConfigs is returned when a required security parameter
	// (token sign key or token issuer) is missing.
	ErrInvalidAppConfigs = errors.New("invalid app configs: token sign key and issuer are required")
)
