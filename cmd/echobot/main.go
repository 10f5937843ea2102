// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

// Command echobot is a long-polling example bot: it greets on /start and
// echoes any text message back to the sender.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sgerasimov/go-tgbot/bot"
	"github.com/sgerasimov/go-tgbot/client"
	"github.com/sgerasimov/go-tgbot/filters"
	"github.com/sgerasimov/go-tgbot/internal/config"
	"github.com/sgerasimov/go-tgbot/internal/logger"
	"github.com/sgerasimov/go-tgbot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("echobot")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := client.New(cfg.Bot.Token, clientOptions(cfg, log)...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API client")
	}

	b := bot.New(api, botOptions(cfg, log)...)

	if _, err := b.OnMessage(greet, filters.Command("start")); err != nil {
		log.Fatal().Err(err).Msg("error registering handler")
	}
	if _, err := b.OnMessage(echo, filters.HasText(), filters.Not(filters.TextPrefix("/"))); err != nil {
		log.Fatal().Err(err).Msg("error registering handler")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot stopped with error")
	}
}

func greet(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, err := b.SendMessage(ctx, &models.SendMessageParams{
		ChatID: models.ChatInt(update.Message.Chat.ID),
		Text:   "Hi! Send me any text and I will echo it back.",
	})
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("sendMessage failed")
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

func clientOptions(cfg *config.Config, log *logger.Logger) []client.Option {
	opts := []client.Option{client.WithLogger(log)}
	if cfg.Bot.Endpoint != "" {
		opts = append(opts, client.WithEndpoint(cfg.Bot.Endpoint))
	}
	if cfg.Bot.Timeout > 0 {
		opts = append(opts, client.WithTimeout(cfg.Bot.Timeout))
	}
	if cfg.Bot.FloodRetries > 0 {
		opts = append(opts, client.WithFloodControlRetries(cfg.Bot.FloodRetries))
	}
	return opts
}

func botOptions(cfg *config.Config, log *logger.Logger) []bot.Option {
	opts := []bot.Option{bot.WithLogger(log)}
	if cfg.Polling.Timeout > 0 {
		opts = append(opts, bot.WithPollTimeout(int(cfg.Polling.Timeout.Seconds())))
	}
	if cfg.Polling.Limit > 0 {
		opts = append(opts, bot.WithPollLimit(cfg.Polling.Limit))
	}
	if cfg.Polling.DropPending {
		opts = append(opts, bot.WithDropPendingUpdates())
	}
	if cfg.Workers.Count > 0 {
		opts = append(opts, bot.WithWorkers(cfg.Workers.Count))
	}
	if cfg.Workers.QueueSize > 0 {
		opts = append(opts, bot.WithQueueSize(cfg.Workers.QueueSize))
	}
	return opts
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
