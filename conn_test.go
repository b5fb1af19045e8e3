// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"bufio"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"
)

func TestUDPDrain(t *testing.T) {
	server, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer server.Close()

	drain, err := new(Builder).
		Udp("", server.LocalAddr().String()).
		Hostname("test-hostname").
		Process("test-app").
		Pid(123).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	defer drain.Close()

	logger := slog.New(drain)
	logger.Info("Hello, world!", "key", "value", "key2", "value2")

	server.SetReadDeadline(time.Now().Add(5 * time.Second))
	buf := make([]byte, 1<<16)
	n, _, err := server.ReadFrom(buf)
	if err != nil {
		t.Fatal(err)
	}
	got := string(buf[:n])

	// <pri> is facility user (1) and severity info (6).
	if !strings.HasPrefix(got, "<14>") {
		t.Errorf("datagram %q does not start with <14>", got)
	}
	want := ` test-hostname test-app[123]: Hello, world! [key="value" key2="value2"]`
	if !strings.HasSuffix(got, want) {
		t.Errorf("datagram %q does not end with %q", got, want)
	}
	// Between them sits the timestamp.
	stamp := strings.TrimSuffix(strings.TrimPrefix(got, "<14>"), want)
	if _, err := time.Parse(time.Stamp, stamp); err != nil {
		t.Errorf("timestamp %q: %v", stamp, err)
	}
}

func TestTCPDrain(t *testing.T) {
	server, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer server.Close()

	lines := make(chan string, 2)
	go func() {
		conn, err := server.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		sc := bufio.NewScanner(conn)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	drain, err := new(Builder).
		Tcp(server.Addr().String()).
		Facility(FacilityLocal0).
		Hostname("h").
		Process("p").
		Pid(1).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	defer drain.Close()

	logger := slog.New(drain)
	logger.Warn("first")
	logger.Warn("second")

	for _, want := range []string{"first", "second"} {
		select {
		case line := <-lines:
			// local0 (16) | warning (4)
			if !strings.HasPrefix(line, "<132>") {
				t.Errorf("line %q does not start with <132>", line)
			}
			if !strings.HasSuffix(line, " h p[1]: "+want) {
				t.Errorf("line %q does not end with %q", line, want)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestUnixDrain(t *testing.T) {
	path := t.TempDir() + "/log.sock"
	addr, err := net.ResolveUnixAddr("unixgram", path)
	if err != nil {
		t.Fatal(err)
	}
	server, err := net.ListenUnixgram("unixgram", addr)
	if err != nil {
		t.Fatal(err)
	}
	defer server.Close()

	drain, err := new(Builder).Unix(path).Process("p").Pid(7).Build()
	if err != nil {
		t.Fatal(err)
	}
	defer drain.Close()

	slog.New(drain).Error("bad news")

	server.SetReadDeadline(time.Now().Add(5 * time.Second))
	buf := make([]byte, 1<<16)
	n, _, err := server.ReadFrom(buf)
	if err != nil {
		t.Fatal(err)
	}
	got := string(buf[:n])

	// user (1) | err (3), local form: no hostname, trailing NUL.
	if !strings.HasPrefix(got, "<11>") {
		t.Errorf("datagram %q does not start with <11>", got)
	}
	if !strings.HasSuffix(got, " p[7]: bad news\x00") {
		t.Errorf("datagram %q does not end with local-form suffix", got)
	}
	// The local form has no hostname: timestamp, then the tag directly.
	stamp := strings.TrimSuffix(strings.TrimPrefix(got, "<11>"), " p[7]: bad news\x00")
	if _, err := time.Parse(time.Stamp, stamp); err != nil {
		t.Errorf("timestamp %q: %v", stamp, err)
	}
}

func TestBuildBadAddress(t *testing.T) {
	if _, err := new(Builder).Udp("", "").Build(); err == nil {
		t.Error("Build with empty remote address succeeded")
	}
	if _, err := new(Builder).Tcp("127.0.0.1:0").Build(); err == nil {
		t.Error("Build dialing a non-listening address succeeded")
	}
}
