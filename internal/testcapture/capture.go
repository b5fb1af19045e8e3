// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testcapture provides a slog.Handler that records what it
// handles, for adapter tests.
package testcapture

import (
	"context"
	"log/slog"
)

// An Entry is one captured record, flattened for easy assertions.
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Handler captures records instead of delivering them.
type Handler struct {
	Got []Entry
}

func (h *Handler) Enabled(context.Context, slog.Level) bool { return true }

func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	e := Entry{Level: rec.Level, Message: rec.Message, Attrs: map[string]string{}}
	rec.Attrs(func(a slog.Attr) bool {
		e.Attrs[a.Key] = a.Value.Resolve().String()
		return true
	})
	h.Got = append(h.Got, e)
	return nil
}

func (h *Handler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *Handler) WithGroup(string) slog.Handler      { return h }

func (h *Handler) Reset() {
	h.Got = nil
}
