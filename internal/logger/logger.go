// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

// Package logger provides a thin wrapper around zerolog.Logger with
// convenience constructors and context-aware helpers used throughout the
// library.
//
// The Logger type embeds zerolog.Logger so the full zerolog API (Debug,
// Info, Warn, Error, etc.) is available directly on *Logger. Request-scoped
// loggers are obtained via FromContext or FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the
// upstream API while leaving room for helper methods.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label (e.g. "bot",
// "webhook"). Every entry carries the role, a timestamp, and the calling
// function name in a "func" field. Output is JSON on os.Stdout.
func New(role string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Wrap adapts an existing zerolog.Logger, letting library consumers plug in
// their own sink and fields.
func Wrap(l zerolog.Logger) *Logger {
	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests and
// for consumers that opt out of logging.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a new *Logger inheriting all fields of the receiver. The
// child can be enriched without affecting the parent.
func (l *Logger) Child() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the request-scoped logger attached to the request's
// context by the trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the logger stored in ctx. When none is attached,
// zerolog falls back to its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
