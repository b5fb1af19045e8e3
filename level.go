// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// A Level is a syslog severity. Lower values are more severe; the values
// are the wire codes.
type Level int

const (
	// LevelEmerg means the system is unusable.
	LevelEmerg Level = iota

	// LevelAlert means action must be taken immediately.
	LevelAlert

	// LevelCrit marks critical conditions.
	LevelCrit

	// LevelErr marks error conditions.
	LevelErr

	// LevelWarning marks warning conditions.
	LevelWarning

	// LevelNotice marks normal but significant conditions.
	LevelNotice

	// LevelInfo marks informational messages.
	LevelInfo

	// LevelDebug marks debug-level messages.
	LevelDebug

	numLevels
)

// Application-side severities beyond what log/slog names.
const (
	// SeverityTrace is finer-grained than [slog.LevelDebug].
	SeverityTrace = slog.LevelDebug - 4

	// SeverityCritical is more severe than [slog.LevelError].
	SeverityCritical = slog.LevelError + 4
)

var levelNames = [numLevels]string{
	LevelEmerg:   "emerg",
	LevelAlert:   "alert",
	LevelCrit:    "crit",
	LevelErr:     "err",
	LevelWarning: "warning",
	LevelNotice:  "notice",
	LevelInfo:    "info",
	LevelDebug:   "debug",
}

// An UnknownLevelError reports a level name that failed to parse.
type UnknownLevelError struct {
	// Name is the unrecognized name.
	Name string
}

func (e *UnknownLevelError) Error() string {
	return fmt.Sprintf("unknown syslog level name %q", e.Name)
}

// ParseLevel returns the Level with the given lowercase name, as produced
// by [Level.String]. The aliases "panic" (emerg), "error" (err) and
// "warn" (warning) are also accepted.
func ParseLevel(name string) (Level, error) {
	switch name {
	case "panic":
		return LevelEmerg, nil
	case "error":
		return LevelErr, nil
	case "warn":
		return LevelWarning, nil
	}
	for l, n := range levelNames {
		if n == name {
			return Level(l), nil
		}
	}
	return 0, &UnknownLevelError{Name: name}
}

// String returns the lowercase name of the level.
func (l Level) String() string {
	if l < 0 || l >= numLevels {
		return fmt.Sprintf("!BADLEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// LevelFromSlog maps an application severity to a syslog severity:
//
//	SeverityCritical and above   crit
//	slog.LevelError and above    err
//	slog.LevelWarn and above     warning
//	slog.LevelInfo and above     info
//	everything below             debug
//
// Intermediate values bucket with the next named severity below them, so
// slog.LevelWarn+1 is still "warning". Notice, alert and emerg are never
// produced; use a priority override to reach them.
func LevelFromSlog(l slog.Level) Level {
	switch {
	case l >= SeverityCritical:
		return LevelCrit
	case l >= slog.LevelError:
		return LevelErr
	case l >= slog.LevelWarn:
		return LevelWarning
	case l >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if l < 0 || l >= numLevels {
		return nil, fmt.Errorf("invalid syslog level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(data []byte) error {
	p, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = p
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return l.UnmarshalText([]byte(s))
}
