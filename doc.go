// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syslog provides a log/slog handler that delivers records to
// syslog.
//
// The usual way in is the [Builder]:
//
//	drain, err := new(syslog.Builder).
//		Facility(syslog.FacilityDaemon).
//		Ident("myprog").
//		LogPid().
//		Build()
//	if err != nil {
//		// ...
//	}
//	defer drain.Close()
//	slog.SetDefault(slog.New(drain))
//
// By default records go to the local daemon through the process-shared
// logging handle, mirroring the classic syslog(3) API: one handle per
// process, an ident installed with openlog, closed with closelog. The
// package coordinates ident ownership across drains so that closing a
// drain never closes a handle some later drain has re-opened; see
// [Drain.Close]. [Builder.Udp], [Builder.Tcp] and [Builder.Unix] build
// drains with connections of their own instead.
//
// Records render as the message followed by its attributes:
//
//	Listening [transport="tcp" addr="[::1]:4000"]
//
// with values escaped so the brackets nest unambiguously; see
// [MsgFormatDefault]. Severities map to syslog levels with
// [LevelFromSlog], and [Builder.Priority] or a [Config] can override the
// priority per record.
//
// The adapter subpackages connect other logging frameworks (logrus, zap,
// zerolog, go-kit log, logr) to a drain.
package syslog
