// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// A Builder constructs a [Drain]. The zero value is ready to use and
// produces a drain on the shared local handle with facility user, the
// default message format and no minimum level:
//
//	drain, err := new(syslog.Builder).Ident("myprog").LogPid().Build()
//	...
//	logger := slog.New(drain)
//
// All setters return the receiver for chaining.
type Builder struct {
	facility Facility
	ident    *string
	owned    bool
	opt      Option
	minLevel slog.Leveler
	format   MsgFormat
	priority PriorityFunc

	network      string // "" means the shared local handle
	laddr, raddr string

	hostname, process string
	pid               int
	pidSet            bool
}

// Facility sets the default facility for messages from this drain.
func (b *Builder) Facility(f Facility) *Builder {
	b.facility = f
	return b
}

// Ident sets the ident string prepended to each message, replacing the
// program name. The drain owns the string: closing the drain closes the
// shared handle, unless another ident has been installed since.
//
// Ident panics if s contains a NUL byte, which cannot appear in an ident.
func (b *Builder) Ident(s string) *Builder {
	if strings.IndexByte(s, 0) >= 0 {
		panic("syslog: ident contains a NUL byte")
	}
	ident := s
	b.ident = &ident
	b.owned = true
	return b
}

// StaticIdent is like [Builder.Ident] for idents that live for the whole
// program, such as string literals. A drain built with a static ident
// never closes the shared handle; the ident simply remains in effect.
func (b *Builder) StaticIdent(s string) *Builder {
	ident := s
	b.ident = &ident
	b.owned = false
	return b
}

// LogPid includes the process ID in each message.
func (b *Builder) LogPid() *Builder {
	b.opt |= LogPid
	return b
}

// NoDelay connects to the daemon immediately rather than on the first
// message. Cancels an earlier ODelay.
func (b *Builder) NoDelay() *Builder {
	b.opt = b.opt&^LogODelay | LogNDelay
	return b
}

// ODelay defers connecting until the first message. This is the default;
// calling it cancels an earlier NoDelay.
func (b *Builder) ODelay() *Builder {
	b.opt = b.opt&^LogNDelay | LogODelay
	return b
}

// NoWait sets the LOG_NOWAIT option. It has no effect on this
// implementation and exists for completeness.
func (b *Builder) NoWait() *Builder {
	b.opt |= LogNoWait
	return b
}

// Perror also writes each message to standard error.
func (b *Builder) Perror() *Builder {
	b.opt |= LogPerror
	return b
}

// Level sets the minimum record level the drain delivers. Records below
// it are dropped by Enabled. The default delivers everything.
func (b *Builder) Level(l slog.Leveler) *Builder {
	b.minLevel = l
	return b
}

// Format sets the message format. The default is [MsgFormatDefault].
func (b *Builder) Format(f MsgFormat) *Builder {
	b.format = f
	return b
}

// Priority sets a function choosing each record's priority, replacing
// the standard severity mapping. A returned priority without a facility
// gets the drain's.
func (b *Builder) Priority(f PriorityFunc) *Builder {
	b.priority = f
	return b
}

// Unix sends messages to the datagram socket at path instead of the
// shared local handle, using the local line format.
func (b *Builder) Unix(path string) *Builder {
	b.network = "unixgram"
	b.raddr = path
	return b
}

// Udp sends messages as UDP datagrams from laddr to raddr instead of
// using the shared local handle. laddr may be empty.
func (b *Builder) Udp(laddr, raddr string) *Builder {
	b.network = "udp"
	b.laddr = laddr
	b.raddr = raddr
	return b
}

// Tcp sends newline-framed messages over a TCP connection to raddr
// instead of using the shared local handle.
func (b *Builder) Tcp(raddr string) *Builder {
	b.network = "tcp"
	b.laddr = ""
	b.raddr = raddr
	return b
}

// Hostname overrides the hostname written in network transport lines.
// The default is [os.Hostname].
func (b *Builder) Hostname(name string) *Builder {
	b.hostname = name
	return b
}

// Process overrides the process name written in network transport lines.
// The default is the base name of the program.
func (b *Builder) Process(name string) *Builder {
	b.process = name
	return b
}

// Pid overrides the process ID written in network transport lines.
func (b *Builder) Pid(pid int) *Builder {
	b.pid = pid
	b.pidSet = true
	return b
}

// Build constructs the drain. For the shared local handle it opens the
// handle (openlog) and never fails; for network transports it may fail
// resolving or dialing the address. Hostname and process name defaults
// that cannot be determined are left empty rather than failing.
func (b *Builder) Build() (*Drain, error) {
	d := &Drain{
		format:   b.format,
		minLevel: b.minLevel,
		priority: b.priority,
		facility: b.facility,
	}
	if d.format == nil {
		d.format = MsgFormatDefault
	}

	if b.network == "" {
		openShared(b.ident, b.owned, b.opt, b.facility)
		var owned *string
		if b.owned {
			owned = b.ident
		}
		d.out = sharedSubmitter{owned: owned}
		return d, nil
	}

	if b.raddr == "" {
		return nil, fmt.Errorf("syslog: no %s address to send to", b.network)
	}
	n := &netSubmitter{
		network: b.network,
		laddr:   b.laddr,
		raddr:   b.raddr,
		local:   b.network == "unixgram",
		framed:  b.network == "tcp",
	}
	b.fillIdentity(n)
	if b.opt&LogODelay == 0 {
		// Network drains connect during Build so a bad address is
		// reported here. ODelay defers to the first message.
		n.mu.Lock()
		err := n.dial()
		n.mu.Unlock()
		if err != nil {
			return nil, fmt.Errorf("syslog: connecting to %s %s: %w", b.network, b.raddr, err)
		}
	}
	d.out = n
	return d, nil
}

func (b *Builder) fillIdentity(n *netSubmitter) {
	n.hostname = b.hostname
	if n.hostname == "" && !n.local {
		n.hostname, _ = os.Hostname()
	}
	n.process = b.process
	if n.process == "" {
		if ident := b.ident; ident != nil {
			n.process = *ident
		} else {
			n.process = filepath.Base(os.Args[0])
		}
	}
	n.pid = b.pid
	if !b.pidSet {
		n.pid = os.Getpid()
	}
}
