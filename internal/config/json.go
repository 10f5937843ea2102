package config

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

type jsonConfig struct {
	Bot struct {
		Token        string   `json:"token"`
		Endpoint     string   `json:"endpoint"`
		Timeout      Duration `json:"timeout"`
		FloodRetries int      `json:"flood_retries"`
	} `json:"bot,omitempty"`

	Polling struct {
		Timeout     Duration `json:"timeout"`
		Limit       int      `json:"limit"`
		DropPending bool     `json:"drop_pending"`
	} `json:"polling,omitempty"`

	Webhook struct {
		PublicURL string `json:"url"`
		Address   string `json:"address"`
	} `json:"webhook,omitempty"`

	Workers struct {
		Count     int `json:"count"`
		QueueSize int `json:"queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Bot: Bot{
			Token:        jsonCfg.Bot.Token,
			Endpoint:     jsonCfg.Bot.Endpoint,
			Timeout:      time.Duration(jsonCfg.Bot.Timeout),
			FloodRetries: jsonCfg.Bot.FloodRetries,
		},
		Polling: Polling{
			Timeout:     time.Duration(jsonCfg.Polling.Timeout),
			Limit:       jsonCfg.Polling.Limit,
			DropPending: jsonCfg.Polling.DropPending,
		},
		Webhook: Webhook{
			PublicURL: jsonCfg.Webhook.PublicURL,
			Address:   jsonCfg.Webhook.Address,
		},
		Workers: Workers{
			Count:     jsonCfg.Workers.Count,
			QueueSize: jsonCfg.Workers.QueueSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
