package models

import (
	json "github.com/goccy/go-json"
)

// The Bot API moves a lot of JSON for a chatty bot, so the whole module
// encodes through goccy/go-json instead of encoding/json. Keeping the
// indirection here means swapping the codec is a one-file change.

// Marshal encodes v with the codec used for all Bot API payloads.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes data with the codec used for all Bot API payloads.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
