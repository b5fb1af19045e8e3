// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logr is a logr implementation that forwards to a syslog drain.
package logr

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-logr/logr"
)

type logSink struct {
	handler slog.Handler
	nameSep string
	name    string
	attrs   []slog.Attr
}

// NewLogger returns a logr.Logger forwarding to handler, normally a
// [syslog.Drain]. Names accumulated with WithName are joined with
// nameSep and carried as a "name" attribute.
func NewLogger(handler slog.Handler, nameSep string) logr.Logger {
	return logr.New(&logSink{handler: handler, nameSep: nameSep})
}

func (*logSink) Init(logr.RuntimeInfo) {}

// WithName implements logr.LogSink.WithName.
func (l *logSink) WithName(name string) logr.LogSink {
	l2 := *l
	if l.name == "" {
		l2.name = name
	} else {
		l2.name = l.name + l.nameSep + name
	}
	return &l2
}

// Enabled maps the V-level onto the drain's minimum level: V(0) is info,
// and each verbosity step descends one slog level.
func (l *logSink) Enabled(level int) bool {
	return l.handler.Enabled(context.Background(), convertVerbosity(level))
}

// Info implements logr.LogSink.Info.
func (l *logSink) Info(level int, msg string, keysAndValues ...interface{}) {
	l.log(convertVerbosity(level), msg, nil, keysAndValues)
}

// Error implements logr.LogSink.Error.
func (l *logSink) Error(err error, msg string, keysAndValues ...interface{}) {
	var extra []slog.Attr
	if err != nil {
		extra = []slog.Attr{slog.Any("error", err)}
	}
	l.log(slog.LevelError, msg, extra, keysAndValues)
}

func (l *logSink) log(level slog.Level, msg string, extra []slog.Attr, keysAndValues []interface{}) {
	rec := slog.NewRecord(time.Now(), level, msg, 0)
	if l.name != "" {
		rec.AddAttrs(slog.String("name", l.name))
	}
	rec.AddAttrs(extra...)
	rec.AddAttrs(l.attrs...)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		rec.AddAttrs(newAttr(keysAndValues[i], keysAndValues[i+1]))
	}
	l.handler.Handle(context.Background(), rec)
}

// WithValues implements logr.LogSink.WithValues.
func (l *logSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	l2 := *l
	if len(keysAndValues) > 0 {
		l2.attrs = make([]slog.Attr, len(l.attrs), len(l.attrs)+len(keysAndValues)/2)
		copy(l2.attrs, l.attrs)
		for i := 0; i+1 < len(keysAndValues); i += 2 {
			l2.attrs = append(l2.attrs, newAttr(keysAndValues[i], keysAndValues[i+1]))
		}
	}
	return &l2
}

func newAttr(key, value interface{}) slog.Attr {
	return slog.Any(fmt.Sprint(key), value)
}

func convertVerbosity(v int) slog.Level {
	return slog.LevelInfo - slog.Level(v)
}
