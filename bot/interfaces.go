// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

// Package bot runs a Telegram bot on top of the API client: it receives
// updates over long polling or a webhook and dispatches them to registered
// handlers through an optional middleware chain.
package bot

import (
	"context"

	"github.com/sgerasimov/go-tgbot/models"
)

// UpdatesAPI is the slice of the API client the runtime needs to receive
// updates. *client.Client satisfies it.
type UpdatesAPI interface {
	GetUpdates(ctx context.Context, params *models.GetUpdatesParams) ([]models.Update, error)
	SetWebhook(ctx context.Context, params *models.SetWebhookParams) (bool, error)
	DeleteWebhook(ctx context.Context, params *models.DeleteWebhookParams) (bool, error)
}

// Handler processes one update.
type Handler func(ctx context.Context, b *Bot, update *models.Update)

// Middleware wraps the dispatch of one update. The first middleware added
// with Use runs outermost.
type Middleware func(next Handler) Handler

// MatchFunc decides whether a registered handler fires for an update. The
// alias lets predicates from the filters package be passed directly.
type MatchFunc = func(update *models.Update) bool
