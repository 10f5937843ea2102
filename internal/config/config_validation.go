// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package config

import "strings"

// validate checks that the final merged [Config] satisfies the invariants
// the bot binaries rely on at startup.
func (cfg *Config) validate() error {
	if cfg.Bot.Token == "" {
		return ErrMissingToken
	}

	if cfg.Polling.Timeout < 0 || cfg.Polling.Limit < 0 || cfg.Polling.Limit > 100 {
		return ErrInvalidPollingConfigs
	}

	if cfg.Webhook.PublicURL != "" {
		if cfg.Webhook.Address == "" {
			return ErrInvalidWebhookConfigs
		}
		if !strings.HasPrefix(cfg.Webhook.PublicURL, "https://") {
			return ErrInvalidWebhookConfigs
		}
	}

	return nil
}
