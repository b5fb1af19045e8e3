// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"errors"
	"log/slog"
	"testing"
)

func TestLevelRoundTrip(t *testing.T) {
	for l := Level(0); l < numLevels; l++ {
		name := l.String()
		got, err := ParseLevel(name)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", name, err)
			continue
		}
		if got != l {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, l)
		}
	}
}

func TestParseLevelAliases(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"panic", LevelEmerg},
		{"error", LevelErr},
		{"warn", LevelWarning},
	}
	for _, test := range tests {
		got, err := ParseLevel(test.name)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestParseLevelUnknown(t *testing.T) {
	_, err := ParseLevel("whisper")
	var ue *UnknownLevelError
	if !errors.As(err, &ue) {
		t.Fatalf("ParseLevel error = %v, want UnknownLevelError", err)
	}
	if ue.Name != "whisper" {
		t.Errorf("Name = %q, want %q", ue.Name, "whisper")
	}
}

func TestLevelWireCodes(t *testing.T) {
	if LevelEmerg != 0 || LevelDebug != 7 {
		t.Errorf("wire codes shifted: emerg=%d debug=%d", LevelEmerg, LevelDebug)
	}
}

func TestLevelFromSlog(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want Level
	}{
		{SeverityTrace, LevelDebug},
		{SeverityTrace - 8, LevelDebug},
		{slog.LevelDebug, LevelDebug},
		{slog.LevelDebug + 1, LevelDebug},
		{slog.LevelInfo, LevelInfo},
		{slog.LevelInfo + 3, LevelInfo},
		{slog.LevelWarn, LevelWarning},
		{slog.LevelError, LevelErr},
		{slog.LevelError + 1, LevelErr},
		{SeverityCritical, LevelCrit},
		{SeverityCritical + 10, LevelCrit},
	}
	for _, test := range tests {
		if got := LevelFromSlog(test.in); got != test.want {
			t.Errorf("LevelFromSlog(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}
