// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package bot

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sgerasimov/go-tgbot/client"
	"github.com/sgerasimov/go-tgbot/internal/logger"
	"github.com/sgerasimov/go-tgbot/models"
	"github.com/sgerasimov/go-tgbot/webhook"
)

const (
	defaultPollTimeout = 30 // seconds, long polling
	defaultWorkers     = 8
	defaultQueueSize   = 64
	pollRetryDelay     = 3 * time.Second
)

// Bot is the update-processing runtime. It embeds the API client, so every
// Bot API method is available on it directly.
type Bot struct {
	*client.Client

	api UpdatesAPI
	log *logger.Logger

	pollTimeout    int
	pollLimit      int
	allowedUpdates []models.UpdateType
	dropPending    bool

	webhookURL  string
	webhookAddr string

	workers   int
	queueSize int
	pool      *pool

	mu       sync.RWMutex
	handlers map[models.UpdateType][]registration
	mws      []Middleware
	dispatch Handler
	running  bool
	stop     context.CancelFunc
}

type registration struct {
	id    string
	match MatchFunc
	fn    Handler
}

type Option func(*Bot)

func WithLogger(l *logger.Logger) Option {
	return func(b *Bot) { b.log = l }
}

// WithUpdatesAPI swaps the update source, mainly for tests.
func WithUpdatesAPI(api UpdatesAPI) Option {
	return func(b *Bot) { b.api = api }
}

// WithPollTimeout sets the long-polling timeout in seconds.
func WithPollTimeout(seconds int) Option {
	return func(b *Bot) { b.pollTimeout = seconds }
}

// WithPollLimit caps the number of updates fetched per getUpdates call.
func WithPollLimit(limit int) Option {
	return func(b *Bot) { b.pollLimit = limit }
}

// WithAllowedUpdates restricts the update types Telegram delivers.
func WithAllowedUpdates(types ...models.UpdateType) Option {
	return func(b *Bot) { b.allowedUpdates = types }
}

// WithDropPendingUpdates discards updates accumulated while the bot was
// down.
func WithDropPendingUpdates() Option {
	return func(b *Bot) { b.dropPending = true }
}

// WithWebhook switches Run to webhook mode: publicURL is the externally
// reachable HTTPS base, addr is the local listen address.
func WithWebhook(publicURL, addr string) Option {
	return func(b *Bot) {
		b.webhookURL = publicURL
		b.webhookAddr = addr
	}
}

// WithWorkers sets the number of handler workers.
func WithWorkers(n int) Option {
	return func(b *Bot) { b.workers = n }
}

// WithQueueSize sets the buffered update queue length.
func WithQueueSize(n int) Option {
	return func(b *Bot) { b.queueSize = n }
}

// New builds a Bot on top of an API client. The bot is idle until Run is
// called.
func New(c *client.Client, opts ...Option) *Bot {
	b := &Bot{
		Client:      c,
		api:         c,
		log:         logger.Nop(),
		pollTimeout: defaultPollTimeout,
		workers:     defaultWorkers,
		queueSize:   defaultQueueSize,
		handlers:    make(map[models.UpdateType][]registration),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Use appends middleware around update dispatch. The first middleware
// added runs outermost. The chain is fixed once Run starts, so Use returns
// ErrRunning after that.
func (b *Bot) Use(mws ...Middleware) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return ErrRunning
	}
	b.mws = append(b.mws, mws...)
	return nil
}

// Run receives updates until ctx is cancelled. Webhook mode is used when a
// public URL was configured, long polling otherwise. In polling mode any
// previously installed webhook is removed first.
func (b *Bot) Run(ctx context.Context) error {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return ErrAlreadyRunning
	}
	b.running = true
	runCtx, cancel := context.WithCancel(ctx)
	b.stop = cancel
	b.dispatch = b.buildDispatch()
	b.pool = newPool(b.workers, b.queueSize, b.processUpdate)
	b.mu.Unlock()

	defer func() {
		cancel()
		b.mu.Lock()
		b.running = false
		b.mu.Unlock()
	}()

	b.pool.start(runCtx)
	defer b.pool.stop()

	if b.webhookURL != "" {
		return b.runWebhook(runCtx)
	}
	return b.runPolling(runCtx)
}

// Stop cancels a running Run. Idempotent, safe to call on an idle bot.
func (b *Bot) Stop() {
	b.mu.RLock()
	stop := b.stop
	b.mu.RUnlock()
	if stop != nil {
		stop()
	}
}

func (b *Bot) runPolling(ctx context.Context) error {
	if _, err := b.api.DeleteWebhook(ctx, &models.DeleteWebhookParams{DropPendingUpdates: b.dropPending}); err != nil {
		return err
	}
	b.log.Info().Msg("long polling started")

	var offset int64
	for {
		if ctx.Err() != nil {
			b.log.Info().Msg("long polling stopped")
			return nil
		}

		updates, err := b.api.GetUpdates(ctx, &models.GetUpdatesParams{
			Offset:         offset,
			Limit:          b.pollLimit,
			Timeout:        b.pollTimeout,
			AllowedUpdates: updateTypeNames(b.allowedUpdates),
		})
		if err != nil {
			if ctx.Err() != nil {
				b.log.Info().Msg("long polling stopped")
				return nil
			}
			b.log.Error().Err(err).Msg("getUpdates failed, retrying")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(pollRetryDelay):
			}
			continue
		}

		for i := range updates {
			update := updates[i]
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			b.pool.submit(ctx, &update)
		}
	}
}

func (b *Bot) runWebhook(ctx context.Context) error {
	secret := uuid.NewString()
	path := "/" + b.TokenSecret()
	url := strings.TrimRight(b.webhookURL, "/") + path

	if _, err := b.api.SetWebhook(ctx, &models.SetWebhookParams{
		URL:                url,
		AllowedUpdates:     updateTypeNames(b.allowedUpdates),
		DropPendingUpdates: b.dropPending,
		SecretToken:        secret,
	}); err != nil {
		return err
	}
	b.log.Info().Str("url", url).Msg("webhook installed")

	srv := webhook.New(b.webhookAddr, path, secret, func(ctx context.Context, update *models.Update) {
		b.pool.submit(ctx, update)
	}, webhook.WithLogger(b.log))
	return srv.Run(ctx)
}

// processUpdate is the pool worker's entry point. It runs the middleware
// chain built at start around handler dispatch.
func (b *Bot) processUpdate(ctx context.Context, update *models.Update) {
	b.dispatch(ctx, b, update)
}

// buildDispatch wraps dispatchUpdate in the middleware chain, last added
// innermost.
func (b *Bot) buildDispatch() Handler {
	h := b.dispatchUpdate
	for i := len(b.mws) - 1; i >= 0; i-- {
		h = b.mws[i](h)
	}
	return h
}

// dispatchUpdate runs every matching handler for one update concurrently
// and waits for all of them. A panicking handler is recovered and logged,
// it never takes down the loop.
func (b *Bot) dispatchUpdate(ctx context.Context, _ *Bot, update *models.Update) {
	t := update.Type()

	b.mu.RLock()
	regs := make([]registration, len(b.handlers[t]))
	copy(regs, b.handlers[t])
	b.mu.RUnlock()

	var wg sync.WaitGroup
	for _, reg := range regs {
		if reg.match != nil && !reg.match(update) {
			continue
		}
		wg.Add(1)
		go func(reg registration) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					b.log.Error().
						Str("handler_id", reg.id).
						Str("update_type", string(t)).
						Any("panic", r).
						Msg("handler panicked")
				}
			}()
			reg.fn(ctx, b, update)
		}(reg)
	}
	wg.Wait()
}

func updateTypeNames(types []models.UpdateType) []string {
	if len(types) == 0 {
		return nil
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}
