// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

import "strconv"

// ChatID identifies a target chat: either a numeric chat identifier or a
// channel username in the form "@channelusername". It marshals as a JSON
// number or string accordingly.
type ChatID struct {
	ID       int64
	Username string
}

// ChatInt builds a ChatID from a numeric identifier.
func ChatInt(id int64) ChatID { return ChatID{ID: id} }

// ChatString builds a ChatID from a "@channelusername" string.
func ChatString(username string) ChatID { return ChatID{Username: username} }

// IsZero reports whether no target is set.
func (c ChatID) IsZero() bool { return c.ID == 0 && c.Username == "" }

// String renders the identifier the way it is sent on the wire.
func (c ChatID) String() string {
	if c.Username != "" {
		return c.Username
	}
	return strconv.FormatInt(c.ID, 10)
}

// MarshalJSON encodes the username when present, the numeric ID otherwise.
func (c ChatID) MarshalJSON() ([]byte, error) {
	if c.Username != "" {
		return Marshal(c.Username)
	}
	return Marshal(c.ID)
}

// UnmarshalJSON accepts either form.
func (c *ChatID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return Unmarshal(data, &c.Username)
	}
	return Unmarshal(data, &c.ID)
}
