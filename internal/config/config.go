// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package config

import (
	"time"
)

// Config is the top-level configuration container for the bot binaries. It
// is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Bot holds the API credentials and client transport settings.
	Bot Bot `envPrefix:"BOT_"`

	// Polling holds the long-polling settings. Ignored in webhook mode.
	Polling Polling `envPrefix:"POLLING_"`

	// Webhook holds the webhook settings. A non-empty public URL switches
	// the bot from long polling to webhook mode.
	Webhook Webhook `envPrefix:"WEBHOOK_"`

	// Workers holds the update dispatch concurrency settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is loaded last and fills the fields that
	// environment variables and flags left empty.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Bot holds the API token and transport settings.
type Bot struct {
	// Token is the bot token issued by @BotFather, "12345:secret".
	// Env: BOT_TOKEN
	Token string `env:"TOKEN"`

	// Endpoint overrides the Bot API base URL, useful with a local Bot API
	// server. Empty means the cloud endpoint.
	// Env: BOT_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Timeout is the per-request HTTP timeout (e.g. "30s", "1m").
	// Env: BOT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// FloodRetries is how many times a request hitting the rate limiter is
	// retried after the server-supplied retry_after delay. Zero disables
	// retries.
	// Env: BOT_FLOOD_RETRIES
	FloodRetries int `env:"FLOOD_RETRIES"`
}

// Polling holds the long-polling loop settings.
type Polling struct {
	// Timeout is the long-polling wait passed to getUpdates (e.g. "30s").
	// Env: POLLING_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Limit caps updates fetched per getUpdates call, 1-100. Zero keeps
	// the server default of 100.
	// Env: POLLING_LIMIT
	Limit int `env:"LIMIT"`

	// DropPending discards updates accumulated while the bot was down.
	// Env: POLLING_DROP_PENDING
	DropPending bool `env:"DROP_PENDING"`
}

// Webhook holds the inbound server settings.
type Webhook struct {
	// PublicURL is the externally reachable HTTPS base Telegram delivers
	// updates to (e.g. "https://bot.example.com").
	// Env: WEBHOOK_URL
	PublicURL string `env:"URL"`

	// Address is the local TCP address the webhook server listens on, in
	// "host:port" format.
	// Env: WEBHOOK_ADDRESS
	Address string `env:"ADDRESS"`
}

// Workers holds the update dispatch concurrency settings.
type Workers struct {
	// Count is the number of handler workers. Zero keeps the default.
	// Env: WORKERS_COUNT
	Count int `env:"COUNT"`

	// QueueSize is the buffered update queue length. Zero keeps the
	// default.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// GetConfig loads, merges, and validates the bot configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to
// load or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
