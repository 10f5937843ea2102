// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

// Response is the envelope every Bot API method answers with. On success
// ok is true and Result holds the method-specific payload; on failure ok is
// false and ErrorCode/Description explain what went wrong.
type Response struct {
	OK          bool                `json:"ok"`
	Result      RawResult           `json:"result,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Description string              `json:"description,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

// RawResult defers decoding of the result payload until the caller knows the
// concrete type of the invoked method.
type RawResult []byte

// UnmarshalJSON stores a copy of the raw result bytes.
func (r *RawResult) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

// MarshalJSON returns the stored bytes unchanged, or null when empty.
func (r RawResult) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// ResponseParameters carries extra information about a failed request.
type ResponseParameters struct {
	// MigrateToChatID is set when the group was migrated to a supergroup
	// with the specified identifier.
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	// RetryAfter is the number of seconds left to wait before the request
	// can be repeated after exceeding flood control.
	RetryAfter int `json:"retry_after,omitempty"`
}
