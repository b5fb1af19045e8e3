// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gokit provides a go-kit logger that forwards to a syslog
// drain.
package gokit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-kit/kit/log"
)

type logger struct {
	handler slog.Handler
}

// NewLogger returns a logger forwarding to handler, normally a
// [syslog.Drain].
func NewLogger(handler slog.Handler) log.Logger {
	return &logger{handler: handler}
}

// Log writes a structured log message. The values of the "msg" (or
// "message") and "level" keys become the record's message and level;
// everything else becomes attributes. If the first argument is a
// context.Context it is passed through to the drain.
func (l *logger) Log(keyvals ...interface{}) error {
	ctx := context.Background()
	if len(keyvals) > 0 {
		if c, ok := keyvals[0].(context.Context); ok {
			ctx = c
			keyvals = keyvals[1:]
		}
	}
	var msg string
	level := slog.LevelInfo
	attrs := make([]slog.Attr, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		value := keyvals[i+1]
		switch key {
		case "msg", "message":
			msg = fmt.Sprint(value)
		case "level":
			level = convertLevel(fmt.Sprint(value))
		default:
			attrs = append(attrs, slog.Any(key, value))
		}
	}
	if !l.handler.Enabled(ctx, level) {
		return nil
	}
	rec := slog.NewRecord(time.Now(), level, msg, 0)
	rec.AddAttrs(attrs...)
	return l.handler.Handle(ctx, rec)
}

func convertLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
