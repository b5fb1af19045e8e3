// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zerolog

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/slog-rs/syslog/internal/testcapture"
)

func TestLevels(t *testing.T) {
	h := &testcapture.Handler{}
	w := NewWriter(h)

	tests := []struct {
		send  func(string) error
		level slog.Level
	}{
		{w.Debug, slog.LevelDebug},
		{w.Info, slog.LevelInfo},
		{w.Warning, slog.LevelWarn},
		{w.Err, slog.LevelError},
		{w.Crit, slog.LevelError + 4},
		{w.Emerg, slog.LevelError + 8},
	}
	for _, test := range tests {
		h.Reset()
		if err := test.send("m\n"); err != nil {
			t.Fatal(err)
		}
		if len(h.Got) != 1 {
			t.Fatalf("captured %d records, want 1", len(h.Got))
		}
		got := h.Got[0]
		if got.Level != test.level {
			t.Errorf("level = %v, want %v", got.Level, test.level)
		}
		if got.Message != "m" {
			t.Errorf("message = %q, want %q (newline stripped)", got.Message, "m")
		}
	}
}

func TestWithZerolog(t *testing.T) {
	h := &testcapture.Handler{}
	logger := zerolog.New(zerolog.SyslogLevelWriter(NewWriter(h)))

	logger.Warn().Str("key", "value").Msg("look out")

	if len(h.Got) != 1 {
		t.Fatalf("captured %d records, want 1", len(h.Got))
	}
	got := h.Got[0]
	if got.Level != slog.LevelWarn {
		t.Errorf("level = %v, want warn", got.Level)
	}
	// zerolog hands the writer its rendered JSON line.
	if !strings.Contains(got.Message, `"key":"value"`) || !strings.Contains(got.Message, "look out") {
		t.Errorf("message = %q", got.Message)
	}
}
