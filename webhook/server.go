// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

// Package webhook serves the inbound side of a Telegram webhook
// integration: a small HTTP server that authenticates requests from
// Telegram, decodes updates and hands them to the bot runtime.
package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sgerasimov/go-tgbot/internal/logger"
	"github.com/sgerasimov/go-tgbot/models"
)

// SecretTokenHeader carries the secret token Telegram echoes back with
// every webhook request.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

const shutdownTimeout = 5 * time.Second

// UpdateHandler receives one decoded update per webhook request.
type UpdateHandler func(ctx context.Context, update *models.Update)

// Server receives webhook requests from Telegram. Telegram delivers one
// update per POST.
type Server struct {
	addr   string
	path   string
	secret string
	handle UpdateHandler
	log    *logger.Logger

	server *http.Server
}

type Option func(*Server)

func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New builds a webhook server listening on addr. Updates are accepted only
// at POST path, and only when the request carries the expected secret
// token; an empty secret disables the check.
func New(addr, path, secret string, handle UpdateHandler, opts ...Option) *Server {
	s := &Server{
		addr:   addr,
		path:   path,
		secret: secret,
		handle: handle,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.server = &http.Server{Addr: addr, Handler: s.routes()}
	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID)
	router.Use(s.withLogging)
	router.Post(s.path, s.receiveUpdate)
	return router
}

// Router exposes the configured handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.server.Handler
}

func (s *Server) receiveUpdate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if s.secret != "" && r.Header.Get(SecretTokenHeader) != s.secret {
		log.Warn().Msg("webhook request with wrong secret token")
		w.WriteHeader(http.StatusForbidden)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var update models.Update
	if err := models.Unmarshal(body, &update); err != nil {
		log.Warn().Err(err).Msg("webhook request with malformed update")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.handle(r.Context(), &update)
	w.WriteHeader(http.StatusOK)
}

// Run starts the server and blocks until ctx is cancelled or the listener
// fails. Shutdown is graceful with a short deadline for in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info().Str("addr", s.addr).Msg("webhook server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info().Msg("webhook server stopped")
	return nil
}
