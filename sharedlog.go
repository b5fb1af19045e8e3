// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// An Option is a set of openlog(3) option flags. The values match libc.
type Option int

const (
	// LogPid includes the process ID in each message.
	LogPid Option = 0x01

	// LogODelay defers connecting to the daemon until the first message
	// is sent. This is the default; the constant exists to cancel an
	// earlier LogNDelay.
	LogODelay Option = 0x04

	// LogNDelay connects to the daemon immediately.
	LogNDelay Option = 0x08

	// LogNoWait requests that the logger not wait for child processes.
	// It has no effect here and exists for libc compatibility.
	LogNoWait Option = 0x10

	// LogPerror also writes each message to standard error.
	LogPerror Option = 0x20
)

// A Syslogger provides the three primitive operations of the classic
// syslog API. The package-level production implementation speaks the wire
// protocol to the local daemon; tests substitute their own.
//
// The operations mirror openlog(3), syslog(3) and closelog(3), including
// their process-global nature: there is one logging handle per process,
// shared by every user of the API, and the caller is responsible for the
// coordination that implies (see sharedLog).
type Syslogger interface {
	// Openlog (re)opens the shared handle. A nil ident leaves the
	// previously-set ident in place.
	Openlog(ident *string, opt Option, facility Facility)

	// Syslog submits one message with the given encoded priority. msg
	// contains no NUL bytes.
	Syslog(pri int, msg []byte) error

	// Closelog closes the shared handle. Logging may still resume
	// afterwards; the next Syslog reconnects.
	Closelog()
}

// sharedLog guards the process-global logging handle.
//
// The handle's ident is whatever string the most recent Openlog supplied.
// When a Drain supplies an ident of its own (Builder.Ident), it owns that
// string and must not let the handle keep referring to it after the Drain
// closes; lastOwned records which drain-supplied ident the handle is
// currently using, by pointer identity. A Drain closing while still the
// owner calls Closelog before releasing its claim; a Drain that has been
// superseded (some other ident was installed since) leaves the handle
// alone. Idents installed via Builder.StaticIdent are program literals
// with no owner, so they clear lastOwned without closing anything.
//
// All three fields are guarded by mu. Unlike lock-poisoning systems there
// is no failure state to unwind here: the garbage collector keeps a
// superseded ident string alive for as long as anything refers to it, so
// ordering, not lifetime, is what the mutex protects.
var sharedLog struct {
	mu        sync.Mutex
	sys       Syslogger
	lastOwned *string
}

func init() {
	sharedLog.sys = &localSyslogger{}
}

// setSyslogger substitutes the shared Syslogger and returns a function
// restoring the previous one. Test hook.
func setSyslogger(s Syslogger) (restore func()) {
	sharedLog.mu.Lock()
	defer sharedLog.mu.Unlock()
	prev, prevOwned := sharedLog.sys, sharedLog.lastOwned
	sharedLog.sys = s
	sharedLog.lastOwned = nil
	return func() {
		sharedLog.mu.Lock()
		defer sharedLog.mu.Unlock()
		sharedLog.sys = prev
		sharedLog.lastOwned = prevOwned
	}
}

// openShared opens the shared handle. If owned is true, ident becomes the
// recorded owner; a non-nil unowned ident clears the record (the handle
// no longer uses any drain-owned string); a nil ident leaves both the
// handle's ident and the ownership record as they were.
func openShared(ident *string, owned bool, opt Option, facility Facility) {
	sharedLog.mu.Lock()
	defer sharedLog.mu.Unlock()
	sharedLog.sys.Openlog(ident, opt, facility)
	if ident != nil {
		if owned {
			sharedLog.lastOwned = ident
		} else {
			sharedLog.lastOwned = nil
		}
	}
}

func submitShared(pri int, msg []byte) error {
	sharedLog.mu.Lock()
	defer sharedLog.mu.Unlock()
	return sharedLog.sys.Syslog(pri, msg)
}

// closeShared releases a drain's claim on the shared handle. The handle
// is closed only if owned is still the recorded owner; the close happens
// before the ownership record is cleared, so no window exists in which
// the handle still uses an ident whose drain has finished closing.
func closeShared(owned *string) {
	if owned == nil {
		return
	}
	sharedLog.mu.Lock()
	defer sharedLog.mu.Unlock()
	if sharedLog.lastOwned == owned {
		sharedLog.sys.Closelog()
		sharedLog.lastOwned = nil
	}
}

// localSyslogger is the production Syslogger. It talks to the local
// daemon over a Unix domain socket, the way syslog(3) does, rather than
// calling libc. Callers hold sharedLog.mu, so no further locking here.
type localSyslogger struct {
	conn     net.Conn
	ident    string
	haveID   bool
	opt      Option
	facility Facility
}

func (l *localSyslogger) Openlog(ident *string, opt Option, facility Facility) {
	if ident != nil {
		l.ident = *ident
		l.haveID = true
	}
	l.opt = opt
	l.facility = facility
	if opt&LogNDelay != 0 && l.conn == nil {
		// Connection errors surface on the first Syslog.
		l.conn, _ = dialLocal()
	}
}

func (l *localSyslogger) Syslog(pri int, msg []byte) error {
	if l.conn == nil {
		conn, err := dialLocal()
		if err != nil {
			return err
		}
		l.conn = conn
	}
	line := l.formatLine(pri, msg)
	if l.opt&LogPerror != 0 {
		fmt.Fprintf(os.Stderr, "%s%s\n", l.tag(), msg)
	}
	if _, err := l.conn.Write(line); err != nil {
		// The daemon may have restarted; redial once.
		l.conn.Close()
		conn, derr := dialLocal()
		if derr != nil {
			l.conn = nil
			return err
		}
		l.conn = conn
		if _, err := l.conn.Write(line); err != nil {
			return err
		}
	}
	return nil
}

func (l *localSyslogger) Closelog() {
	if l.conn != nil {
		l.conn.Close()
		l.conn = nil
	}
}

// formatLine renders the classic local-daemon form, without a hostname
// and with a trailing NUL:
//
//	<pri>Jan _2 15:04:05 ident[pid]: msg
func (l *localSyslogger) formatLine(pri int, msg []byte) []byte {
	var b []byte
	b = append(b, '<')
	b = strconv.AppendInt(b, int64(pri), 10)
	b = append(b, '>')
	b = time.Now().AppendFormat(b, time.Stamp)
	b = append(b, ' ')
	b = append(b, l.tag()...)
	b = append(b, msg...)
	b = append(b, 0)
	return b
}

func (l *localSyslogger) tag() string {
	ident := l.ident
	if !l.haveID {
		ident = filepath.Base(os.Args[0])
	}
	if l.opt&LogPid != 0 {
		return fmt.Sprintf("%s[%d]: ", ident, os.Getpid())
	}
	if ident == "" {
		return ""
	}
	return ident + ": "
}

// dialLocal connects to the local daemon, trying the socket paths the
// common daemons listen on.
func dialLocal() (net.Conn, error) {
	for _, network := range []string{"unixgram", "unix"} {
		for _, path := range []string{"/dev/log", "/var/run/syslog", "/var/run/log"} {
			conn, err := net.Dial(network, path)
			if err == nil {
				return conn, nil
			}
		}
	}
	return nil, errors.New("syslog: no local daemon socket found")
}
