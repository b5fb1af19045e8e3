// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zap provides a zapcore.Core that forwards entries to a syslog
// drain. To use globally:
//
//	zap.ReplaceGlobals(zap.New(NewCore(drain)))
package zap

import (
	"context"
	"log/slog"

	"go.uber.org/zap/zapcore"

	"github.com/slog-rs/syslog"
)

type core struct {
	handler slog.Handler
	with    []zapcore.Field
}

var _ zapcore.Core = (*core)(nil)

// NewCore returns a Core forwarding entries to handler, normally a
// [syslog.Drain].
func NewCore(handler slog.Handler) zapcore.Core {
	return &core{handler: handler}
}

func (c *core) Enabled(level zapcore.Level) bool {
	return c.handler.Enabled(context.Background(), convertLevel(level))
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	c2 := *c
	if len(fields) > 0 {
		c2.with = make([]zapcore.Field, len(c.with), len(c.with)+len(fields))
		copy(c2.with, c.with)
		c2.with = append(c2.with, fields...)
	}
	return &c2
}

func (c *core) Write(e zapcore.Entry, fields []zapcore.Field) error {
	rec := slog.NewRecord(e.Time, convertLevel(e.Level), e.Message, 0)
	if e.LoggerName != "" {
		rec.AddAttrs(slog.String("name", e.LoggerName))
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.with {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}
	for k, v := range enc.Fields {
		rec.AddAttrs(slog.Any(k, v))
	}
	if e.Stack != "" {
		rec.AddAttrs(slog.String("stack", e.Stack))
	}
	return c.handler.Handle(context.Background(), rec)
}

func (c *core) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *core) Sync() error { return nil }

func convertLevel(level zapcore.Level) slog.Level {
	switch level {
	case zapcore.DebugLevel:
		return slog.LevelDebug
	case zapcore.InfoLevel:
		return slog.LevelInfo
	case zapcore.WarnLevel:
		return slog.LevelWarn
	case zapcore.ErrorLevel:
		return slog.LevelError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return syslog.SeverityCritical
	default:
		return syslog.SeverityTrace
	}
}
