// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

// BotCommand represents a bot command.
type BotCommand struct {
	// Command text, 1-32 characters: lowercase letters, digits, underscores.
	Command string `json:"command"`
	// Description, 3-256 characters.
	Description string `json:"description"`
}

// BotCommandScope types.
const (
	BotCommandScopeTypeDefault               = "default"
	BotCommandScopeTypeAllPrivateChats       = "all_private_chats"
	BotCommandScopeTypeAllGroupChats         = "all_group_chats"
	BotCommandScopeTypeAllChatAdministrators = "all_chat_administrators"
	BotCommandScopeTypeChat                  = "chat"
	BotCommandScopeTypeChatAdministrators    = "chat_administrators"
	BotCommandScopeTypeChatMember            = "chat_member"
)

// BotCommandScope represents the scope to which bot commands apply. ChatID
// is required for the chat-targeted scopes, UserID for "chat_member".
type BotCommandScope struct {
	Type   string  `json:"type"`
	ChatID *ChatID `json:"chat_id,omitempty"`
	UserID int64   `json:"user_id,omitempty"`
}

// WebhookInfo contains information about the current status of a webhook.
type WebhookInfo struct {
	URL                  string   `json:"url"`
	HasCustomCertificate bool     `json:"has_custom_certificate"`
	PendingUpdateCount   int      `json:"pending_update_count"`
	IPAddress            string   `json:"ip_address,omitempty"`
	LastErrorDate        int64    `json:"last_error_date,omitempty"`
	LastErrorMessage     string   `json:"last_error_message,omitempty"`
	MaxConnections       int      `json:"max_connections,omitempty"`
	AllowedUpdates       []string `json:"allowed_updates,omitempty"`
}
