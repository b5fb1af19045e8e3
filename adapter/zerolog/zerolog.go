// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerolog provides a zerolog syslog writer backed by a syslog
// drain. To route a zerolog logger through a drain at the right
// severities:
//
//	logger := zerolog.New(zerolog.SyslogLevelWriter(NewWriter(drain)))
package zerolog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/slog-rs/syslog"
)

type writer struct {
	handler slog.Handler
}

// NewWriter returns a writer forwarding to handler, normally a
// [syslog.Drain]. It satisfies zerolog's SyslogWriter interface.
func NewWriter(handler slog.Handler) zerolog.SyslogWriter {
	return &writer{handler: handler}
}

var _ zerolog.SyslogWriter = (*writer)(nil)

// Write handles output zerolog sends without a level.
func (w *writer) Write(p []byte) (int, error) {
	if err := w.emit(slog.LevelInfo, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *writer) Debug(m string) error   { return w.emit(slog.LevelDebug, m) }
func (w *writer) Info(m string) error    { return w.emit(slog.LevelInfo, m) }
func (w *writer) Warning(m string) error { return w.emit(slog.LevelWarn, m) }
func (w *writer) Err(m string) error     { return w.emit(slog.LevelError, m) }
func (w *writer) Emerg(m string) error   { return w.emit(syslog.SeverityCritical+4, m) }
func (w *writer) Crit(m string) error    { return w.emit(syslog.SeverityCritical, m) }

func (w *writer) emit(level slog.Level, m string) error {
	ctx := context.Background()
	if !w.handler.Enabled(ctx, level) {
		return nil
	}
	rec := slog.NewRecord(time.Now(), level, strings.TrimSuffix(m, "\n"), 0)
	return w.handler.Handle(ctx, rec)
}
