package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "minimal polling config",
			cfg:  Config{Bot: Bot{Token: "123:abc"}},
		},
		{
			name:    "missing token",
			cfg:     Config{},
			wantErr: ErrMissingToken,
		},
		{
			name: "webhook without address",
			cfg: Config{
				Bot:     Bot{Token: "123:abc"},
				Webhook: Webhook{PublicURL: "https://bot.example.com"},
			},
			wantErr: ErrInvalidWebhookConfigs,
		},
		{
			name: "insecure webhook url",
			cfg: Config{
				Bot:     Bot{Token: "123:abc"},
				Webhook: Webhook{PublicURL: "http://bot.example.com", Address: "localhost:8443"},
			},
			wantErr: ErrInvalidWebhookConfigs,
		},
		{
			name: "complete webhook config",
			cfg: Config{
				Bot:     Bot{Token: "123:abc"},
				Webhook: Webhook{PublicURL: "https://bot.example.com", Address: "localhost:8443"},
			},
		},
		{
			name: "negative polling timeout",
			cfg: Config{
				Bot:     Bot{Token: "123:abc"},
				Polling: Polling{Timeout: -time.Second},
			},
			wantErr: ErrInvalidPollingConfigs,
		},
		{
			name: "polling limit out of range",
			cfg: Config{
				Bot:     Bot{Token: "123:abc"},
				Polling: Polling{Limit: 101},
			},
			wantErr: ErrInvalidPollingConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
