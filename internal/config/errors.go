package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingToken indicates that no bot token was provided by any
	// configuration source.
	ErrMissingToken = errors.New("bot token is required")
	// ErrInvalidWebhookConfigs indicates incomplete webhook settings
	// (for example, a public URL without a listen address).
	ErrInvalidWebhookConfigs = errors.New("invalid webhook configuration")
	// ErrInvalidPollingConfigs indicates invalid long-polling settings
	// (for example, a negative timeout or an out-of-range limit).
	ErrInvalidPollingConfigs = errors.New("invalid polling configuration")
)
