// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"net"
	"strconv"
	"sync"
	"time"
)

// A submitter delivers encoded messages somewhere. The shared local
// handle and the per-drain network connections both satisfy it.
type submitter interface {
	submit(pri int, msg []byte) error
	close() error
}

// sharedSubmitter routes through the process-global handle. owned is the
// drain's owned ident, if any; close releases the drain's claim on the
// handle (see closeShared).
type sharedSubmitter struct {
	owned *string
}

func (s sharedSubmitter) submit(pri int, msg []byte) error {
	return submitShared(pri, msg)
}

func (s sharedSubmitter) close() error {
	closeShared(s.owned)
	return nil
}

// netSubmitter is a per-drain connection to a remote (or path-addressed
// local) daemon. Unlike the shared handle it is exclusive to one drain
// and its clones, so it carries its own lock.
type netSubmitter struct {
	mu   sync.Mutex
	conn net.Conn

	// redial parameters
	network      string
	laddr, raddr string

	// line assembly
	local    bool // omit hostname, terminate with NUL
	framed   bool // terminate with newline (stream transports)
	hostname string
	process  string
	pid      int
}

func (n *netSubmitter) submit(pri int, msg []byte) error {
	line := n.formatLine(pri, msg)
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.conn == nil {
		if err := n.dial(); err != nil {
			return err
		}
	}
	if _, err := n.conn.Write(line); err != nil {
		n.conn.Close()
		if derr := n.dial(); derr != nil {
			return err
		}
		if _, err := n.conn.Write(line); err != nil {
			return err
		}
	}
	return nil
}

func (n *netSubmitter) close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.conn == nil {
		return nil
	}
	err := n.conn.Close()
	n.conn = nil
	return err
}

func (n *netSubmitter) dial() error {
	if n.laddr != "" {
		laddr, err := net.ResolveUDPAddr(n.network, n.laddr)
		if err != nil {
			return err
		}
		raddr, err := net.ResolveUDPAddr(n.network, n.raddr)
		if err != nil {
			return err
		}
		conn, err := net.DialUDP(n.network, laddr, raddr)
		if err != nil {
			return err
		}
		n.conn = conn
		return nil
	}
	conn, err := net.Dial(n.network, n.raddr)
	if err != nil {
		return err
	}
	n.conn = conn
	return nil
}

// formatLine renders a BSD-style line:
//
//	<pri>Jan _2 15:04:05 hostname process[pid]: msg
//
// For path-addressed local sockets the hostname is omitted and the line
// is NUL-terminated; for stream transports it ends in a newline.
func (n *netSubmitter) formatLine(pri int, msg []byte) []byte {
	var b []byte
	b = append(b, '<')
	b = strconv.AppendInt(b, int64(pri), 10)
	b = append(b, '>')
	b = time.Now().AppendFormat(b, time.Stamp)
	if !n.local && n.hostname != "" {
		b = append(b, ' ')
		b = append(b, n.hostname...)
	}
	if n.process != "" {
		b = append(b, ' ')
		b = append(b, n.process...)
		if n.pid != 0 {
			b = append(b, '[')
			b = strconv.AppendInt(b, int64(n.pid), 10)
			b = append(b, ']')
		}
		b = append(b, ':')
	}
	b = append(b, ' ')
	b = append(b, msg...)
	switch {
	case n.framed:
		b = append(b, '\n')
	case n.local:
		b = append(b, 0)
	}
	return b
}
