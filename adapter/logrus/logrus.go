// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrus provides a logrus hook that forwards entries to a
// syslog drain. To install on the global logger:
//
//	logrus.AddHook(hook)
//
// The hook delivers entries in addition to logrus's own output; set
// logrus.SetOutput(io.Discard) to log to syslog alone.
package logrus

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"

	"github.com/slog-rs/syslog"
)

type hook struct {
	handler slog.Handler
}

// NewHook returns a hook forwarding entries to handler, normally a
// [syslog.Drain].
func NewHook(handler slog.Handler) logrus.Hook {
	return &hook{handler: handler}
}

var _ logrus.Hook = (*hook)(nil)

func (h *hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *hook) Fire(e *logrus.Entry) error {
	ctx := e.Context
	if ctx == nil {
		ctx = context.Background()
	}
	level := convertLevel(e.Level)
	if !h.handler.Enabled(ctx, level) {
		return nil
	}
	rec := slog.NewRecord(e.Time, level, e.Message, 0)
	for k, v := range e.Data {
		rec.AddAttrs(slog.Any(k, v))
	}
	return h.handler.Handle(ctx, rec)
}

func convertLevel(level logrus.Level) slog.Level {
	switch level {
	case logrus.PanicLevel:
		return syslog.SeverityCritical + 4
	case logrus.FatalLevel:
		return syslog.SeverityCritical
	case logrus.ErrorLevel:
		return slog.LevelError
	case logrus.WarnLevel:
		return slog.LevelWarn
	case logrus.InfoLevel:
		return slog.LevelInfo
	case logrus.DebugLevel:
		return slog.LevelDebug
	case logrus.TraceLevel:
		return syslog.SeverityTrace
	default:
		return syslog.SeverityTrace
	}
}
