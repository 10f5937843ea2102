// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

// Command webhookbot runs the same echo handlers as echobot, but behind a
// webhook server instead of long polling. It requires a public HTTPS URL
// and a local listen address.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sgerasimov/go-tgbot/bot"
	"github.com/sgerasimov/go-tgbot/client"
	"github.com/sgerasimov/go-tgbot/filters"
	"github.com/sgerasimov/go-tgbot/internal/config"
	"github.com/sgerasimov/go-tgbot/internal/logger"
	"github.com/sgerasimov/go-tgbot/models"
)

func main() {
	log := logger.New("webhookbot")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Webhook.PublicURL == "" {
		log.Fatal().Msg("webhook url is required, set WEBHOOK_URL or -webhook-url")
	}

	opts := []client.Option{client.WithLogger(log)}
	if cfg.Bot.Endpoint != "" {
		opts = append(opts, client.WithEndpoint(cfg.Bot.Endpoint))
	}
	if cfg.Bot.Timeout > 0 {
		opts = append(opts, client.WithTimeout(cfg.Bot.Timeout))
	}

	api, err := client.New(cfg.Bot.Token, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API client")
	}

	b := bot.New(api,
		bot.WithLogger(log),
		bot.WithWebhook(cfg.Webhook.PublicURL, cfg.Webhook.Address),
	)

	if _, err := b.OnMessage(echo, filters.HasText()); err != nil {
		log.Fatal().Err(err).Msg("error registering handler")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot stopped with error")
	}
}

func echo(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, err := b.SendMessage(ctx, &models.SendMessageParams{
		ChatID: models.ChatInt(update.Message.Chat.ID),
		Text:   update.Message.Text,
	})
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("sendMessage failed")
	}
}
