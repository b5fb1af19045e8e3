// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"log/slog"

	"github.com/slog-rs/syslog/internal/buffer"
)

// A MsgFormat renders one log record into the message part of a syslog
// entry. The priority, timestamp and tag are not its concern; it only
// produces the free-form text after them.
//
// Format appends to buf. The scope attributes are those accumulated with
// [slog.Handler.WithAttrs], already qualified with their group names;
// they precede the record's own attributes in the output. If Format
// returns an error the record is still delivered with the bare message,
// followed by a separate err-severity entry describing the failure.
type MsgFormat interface {
	Format(buf *buffer.Buffer, rec slog.Record, scope []slog.Attr) error
}

// MsgFormatFunc adapts a function to the MsgFormat interface.
type MsgFormatFunc func(buf *buffer.Buffer, rec slog.Record, scope []slog.Attr) error

// Format calls f.
func (f MsgFormatFunc) Format(buf *buffer.Buffer, rec slog.Record, scope []slog.Attr) error {
	return f(buf, rec, scope)
}

// MsgFormatDefault renders the message followed by the attributes in
// brackets:
//
//	msg [key1="value1" key2="value2"]
//
// Scope attributes come first, then the record's. Values are escaped with
// [EscapeValue]; keys are emitted verbatim, so keys containing '"', ']'
// or '\' produce output that cannot be parsed back unambiguously. A
// record with no attributes renders as the bare message.
var MsgFormatDefault MsgFormat = MsgFormatFunc(formatDefault)

// MsgFormatBasic renders the bare message and drops all attributes.
var MsgFormatBasic MsgFormat = MsgFormatFunc(formatBasic)

func formatDefault(buf *buffer.Buffer, rec slog.Record, scope []slog.Attr) error {
	buf.WriteString(rec.Message)
	if len(scope) == 0 && rec.NumAttrs() == 0 {
		return nil
	}
	buf.WriteString(" [")
	first := true
	appendOne := func(a slog.Attr) {
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		buf.WriteString(a.Key)
		buf.WriteString(`="`)
		appendEscaped(buf, a.Value.Resolve().String())
		buf.WriteByte('"')
	}
	for _, a := range scope {
		appendOne(a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		appendOne(a)
		return true
	})
	buf.WriteByte(']')
	return nil
}

func formatBasic(buf *buffer.Buffer, rec slog.Record, scope []slog.Attr) error {
	buf.WriteString(rec.Message)
	return nil
}

// EscapeValue appends s to buf, prefixing each backslash, double quote
// and closing bracket with a backslash. All other bytes pass through
// unchanged, so the output is exactly as valid UTF-8 as the input.
func EscapeValue(buf *buffer.Buffer, s string) {
	appendEscaped(buf, s)
}

func appendEscaped(buf *buffer.Buffer, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' || c == ']' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(c)
	}
}
