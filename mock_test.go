// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import "fmt"

// A mockCall records one primitive operation seen by mockSyslogger.
type mockCall struct {
	Op       string // "openlog", "syslog", "closelog"
	Ident    string // "" for nil
	NilIdent bool
	Opt      Option
	Facility Facility
	Pri      int
	Msg      string
}

// mockSyslogger records the primitive calls made through the shared
// handle. Install with setSyslogger.
type mockSyslogger struct {
	Calls []mockCall
	Err   error // returned from every Syslog call
}

func (m *mockSyslogger) Openlog(ident *string, opt Option, facility Facility) {
	c := mockCall{Op: "openlog", Opt: opt, Facility: facility, NilIdent: ident == nil}
	if ident != nil {
		c.Ident = *ident
	}
	m.Calls = append(m.Calls, c)
}

func (m *mockSyslogger) Syslog(pri int, msg []byte) error {
	m.Calls = append(m.Calls, mockCall{Op: "syslog", Pri: pri, Msg: string(msg)})
	return m.Err
}

func (m *mockSyslogger) Closelog() {
	m.Calls = append(m.Calls, mockCall{Op: "closelog"})
}

func (m *mockSyslogger) Reset() {
	m.Calls = nil
}

func (c mockCall) String() string {
	switch c.Op {
	case "openlog":
		if c.NilIdent {
			return fmt.Sprintf("openlog(nil, %#x, %v)", int(c.Opt), c.Facility)
		}
		return fmt.Sprintf("openlog(%q, %#x, %v)", c.Ident, int(c.Opt), c.Facility)
	case "syslog":
		return fmt.Sprintf("syslog(%d, %q)", c.Pri, c.Msg)
	default:
		return c.Op
	}
}
