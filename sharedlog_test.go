// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"strings"
	"testing"
)

func TestLocalTag(t *testing.T) {
	l := &localSyslogger{}
	ident := "prog"
	l.Openlog(&ident, 0, FacilityUser)
	if got := l.tag(); got != "prog: " {
		t.Errorf("tag = %q, want %q", got, "prog: ")
	}

	// A nil ident keeps the previous one.
	l.Openlog(nil, LogPid, FacilityUser)
	got := l.tag()
	if !strings.HasPrefix(got, "prog[") || !strings.HasSuffix(got, "]: ") {
		t.Errorf("tag with pid = %q", got)
	}
}

func TestLocalFormatLine(t *testing.T) {
	l := &localSyslogger{}
	ident := "prog"
	l.Openlog(&ident, 0, FacilityMail)
	line := string(l.formatLine(2<<3|6, []byte("hello")))
	if !strings.HasPrefix(line, "<22>") {
		t.Errorf("line %q does not start with <22>", line)
	}
	if !strings.HasSuffix(line, " prog: hello\x00") {
		t.Errorf("line %q does not end with tag, message and NUL", line)
	}
}

func TestSetSysloggerRestore(t *testing.T) {
	first := &mockSyslogger{}
	restore := setSyslogger(first)
	second := &mockSyslogger{}
	inner := setSyslogger(second)

	submitShared(1, []byte("x"))
	if len(second.Calls) != 1 || len(first.Calls) != 0 {
		t.Error("submission did not go to the installed syslogger")
	}

	inner()
	submitShared(1, []byte("y"))
	if len(first.Calls) != 1 {
		t.Error("restore did not reinstall the previous syslogger")
	}
	restore()
}
