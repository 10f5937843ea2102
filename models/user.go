// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

import "fmt"

// User represents a Telegram user or bot.
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	// LanguageCode is the IETF language tag of the user's language.
	LanguageCode string `json:"language_code,omitempty"`
	// CanJoinGroups is returned only by getMe.
	CanJoinGroups bool `json:"can_join_groups,omitempty"`
	// CanReadAllGroupMessages is returned only by getMe.
	CanReadAllGroupMessages bool `json:"can_read_all_group_messages,omitempty"`
	// SupportsInlineQueries is returned only by getMe.
	SupportsInlineQueries bool `json:"supports_inline_queries,omitempty"`
}

// FullName joins first and last name, omitting the last name when absent.
func (u *User) FullName() string {
	if u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.FirstName
}

// Mention renders an HTML inline mention link for the user.
func (u *User) Mention() string {
	return fmt.Sprintf("<a href='tg://user?id=%d'>%s</a>", u.ID, u.FullName())
}

// UserProfilePhotos represents a user's profile pictures.
type UserProfilePhotos struct {
	TotalCount int           `json:"total_count"`
	Photos     [][]PhotoSize `json:"photos"`
}
