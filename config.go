// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"fmt"
	"log/slog"
)

// A Config is a declarative description of a drain, suitable for
// embedding in an application's YAML or JSON configuration:
//
//	ident: myprog
//	facility: daemon
//	log_pid: true
//	priority:
//	    all: [notice, mail]
//	    error: crit
//
// The zero Config builds the same drain a zero [Builder] does.
type Config struct {
	// Format names the message format: "default" or "basic". Empty
	// means "default".
	Format string `yaml:"format" json:"format"`

	// Facility is the default facility for messages.
	Facility Facility `yaml:"facility" json:"facility"`

	// Ident is the ident string for the shared handle. An empty ident
	// leaves the handle's ident alone. Idents from configuration are
	// owned (see Builder.Ident).
	Ident string `yaml:"ident" json:"ident"`

	// LogPID includes the process ID in each message.
	LogPID bool `yaml:"log_pid" json:"log_pid"`

	// LogDelay controls when the connection to the daemon is made:
	// true defers it to the first message, false connects immediately.
	// Unset keeps the default (deferred).
	LogDelay *bool `yaml:"log_delay" json:"log_delay"`

	// LogPerror also writes each message to standard error.
	LogPerror bool `yaml:"log_perror" json:"log_perror"`

	// Priority overrides message priorities per severity.
	Priority PriorityConfig `yaml:"priority" json:"priority"`
}

// A PriorityConfig overrides the priority per application severity. Each
// entry is a priority in the two forms [Priority.UnmarshalYAML] accepts.
// An absent entry falls back to All; if a severity's entry names a level
// but no facility, All's facility (if any) fills it in. Severities with
// neither use the standard mapping.
type PriorityConfig struct {
	All      *Priority `yaml:"all" json:"all"`
	Trace    *Priority `yaml:"trace" json:"trace"`
	Debug    *Priority `yaml:"debug" json:"debug"`
	Info     *Priority `yaml:"info" json:"info"`
	Warning  *Priority `yaml:"warning" json:"warning"`
	Error    *Priority `yaml:"error" json:"error"`
	Critical *Priority `yaml:"critical" json:"critical"`
}

// isZero reports whether no overrides are set.
func (c *PriorityConfig) isZero() bool {
	return c.All == nil && c.Trace == nil && c.Debug == nil && c.Info == nil &&
		c.Warning == nil && c.Error == nil && c.Critical == nil
}

// forLevel resolves the priority for a record severity.
func (c *PriorityConfig) forLevel(l slog.Level) Priority {
	var p *Priority
	switch {
	case l >= SeverityCritical:
		p = c.Critical
	case l >= slog.LevelError:
		p = c.Error
	case l >= slog.LevelWarn:
		p = c.Warning
	case l >= slog.LevelInfo:
		p = c.Info
	case l > SeverityTrace:
		p = c.Debug
	default:
		p = c.Trace
	}
	switch {
	case p != nil && c.All != nil:
		return p.overlayFrom(*c.All)
	case p != nil:
		return *p
	case c.All != nil:
		return *c.All
	default:
		return NewPriority(LevelFromSlog(l))
	}
}

// Builder returns a Builder configured from c. Further methods may be
// chained on it before Build.
func (c *Config) Builder() (*Builder, error) {
	b := new(Builder)
	switch c.Format {
	case "", "default":
		b.Format(MsgFormatDefault)
	case "basic":
		b.Format(MsgFormatBasic)
	default:
		return nil, fmt.Errorf("unknown syslog message format %q", c.Format)
	}
	b.Facility(c.Facility)
	if c.Ident != "" {
		b.Ident(c.Ident)
	}
	if c.LogPID {
		b.LogPid()
	}
	if c.LogDelay != nil {
		if *c.LogDelay {
			b.ODelay()
		} else {
			b.NoDelay()
		}
	}
	if c.LogPerror {
		b.Perror()
	}
	if pc := c.Priority; !pc.isZero() {
		b.Priority(func(rec slog.Record) Priority {
			return pc.forLevel(rec.Level)
		})
	}
	return b, nil
}

// Build is shorthand for c.Builder() followed by Build.
func (c *Config) Build() (*Drain, error) {
	b, err := c.Builder()
	if err != nil {
		return nil, err
	}
	return b.Build()
}
