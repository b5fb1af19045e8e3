// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/slog-rs/syslog/internal/buffer"
)

// A PriorityFunc chooses the priority for a record, overriding the
// standard severity mapping. The returned priority may omit a facility;
// the drain's facility fills it in.
type PriorityFunc func(rec slog.Record) Priority

// A Drain is a [slog.Handler] that delivers records to syslog, either
// through the process-shared local handle or over a connection of its
// own (see [Builder]).
//
// Handlers derived with WithAttrs and WithGroup share the parent's
// connection; Close on any of them closes it for all. A Drain is safe for
// concurrent use.
type Drain struct {
	out      submitter
	format   MsgFormat
	minLevel slog.Leveler // nil means everything is enabled
	priority PriorityFunc // nil means LevelFromSlog
	facility Facility

	scope  []slog.Attr // qualified with group names, values resolved
	groups []string
}

var _ slog.Handler = (*Drain)(nil)

// Enabled implements slog.Handler.
func (d *Drain) Enabled(_ context.Context, level slog.Level) bool {
	return d.minLevel == nil || level >= d.minLevel.Level()
}

// Handle formats the record and submits it.
//
// A formatting failure does not lose the record: the bare message is
// submitted in its place, followed by a second entry at err severity
// describing the failure. Handle reports transport errors; formatting
// errors only ever surface through that second entry.
func (d *Drain) Handle(ctx context.Context, rec slog.Record) error {
	if !d.Enabled(ctx, rec.Level) {
		return nil
	}
	buf := buffer.New()
	defer buf.Free()

	ferr := d.format.Format(buf, d.qualify(rec), d.scope)
	if ferr != nil {
		buf.Reset()
		buf.WriteString(rec.Message)
	}

	pri := d.resolvePriority(rec)
	err := d.out.submit(pri, sanitize(*buf))
	if ferr == nil {
		return err
	}

	buf.Reset()
	fmt.Fprintf(buf, "error formatting the previous log message: %v", ferr)
	epri := NewPriority(LevelErr).Overlay(d.facility).Encode(d.facility)
	return errors.Join(err, d.out.submit(epri, sanitize(*buf)))
}

// WithAttrs implements slog.Handler. The attributes are resolved now and
// rendered before record attributes on every subsequent Handle call.
func (d *Drain) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return d
	}
	d2 := *d
	d2.scope = make([]slog.Attr, len(d.scope), len(d.scope)+len(attrs))
	copy(d2.scope, d.scope)
	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		a.Key = d.qualifyKey(a.Key)
		d2.scope = append(d2.scope, a)
	}
	return &d2
}

// WithGroup implements slog.Handler. Group names qualify attribute keys
// with a dot: WithGroup("req") renders attribute "id" as "req.id".
func (d *Drain) WithGroup(name string) slog.Handler {
	if name == "" {
		return d
	}
	d2 := *d
	d2.groups = make([]string, len(d.groups)+1)
	copy(d2.groups, d.groups)
	d2.groups[len(d.groups)] = name
	return &d2
}

// Close releases the drain's connection. For a drain on the shared local
// handle, the handle is closed only if this drain still owns its ident;
// a drain superseded by a later Openlog leaves the handle untouched.
// Records submitted through a closed shared drain reopen the handle with
// whatever ident it last had.
func (d *Drain) Close() error {
	return d.out.close()
}

func (d *Drain) resolvePriority(rec slog.Record) int {
	var p Priority
	if d.priority != nil {
		p = d.priority(rec)
	} else {
		p = NewPriority(LevelFromSlog(rec.Level))
	}
	return p.Overlay(d.facility).Encode(d.facility)
}

// qualify returns rec with its attribute keys qualified by the open
// groups. With no open groups rec is returned as is.
func (d *Drain) qualify(rec slog.Record) slog.Record {
	if len(d.groups) == 0 {
		return rec
	}
	rec2 := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		a.Key = d.qualifyKey(a.Key)
		rec2.AddAttrs(a)
		return true
	})
	return rec2
}

func (d *Drain) qualifyKey(key string) string {
	for i := len(d.groups) - 1; i >= 0; i-- {
		key = d.groups[i] + "." + key
	}
	return key
}

// sanitize strips NUL bytes, which terminate or corrupt a syslog message
// depending on the transport.
func sanitize(msg []byte) []byte {
	if bytes.IndexByte(msg, 0) < 0 {
		return msg
	}
	out := make([]byte, 0, len(msg))
	for _, c := range msg {
		if c != 0 {
			out = append(out, c)
		}
	}
	return out
}
