// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// A Priority is the priority of a syslog message: a severity plus,
// optionally, a facility.
//
// A Priority is either symbolic, built from [NewPriority] or
// [NewPriorityFacility], or raw, built from [RawPriority]. A raw priority
// carries an already-encoded wire value; it is passed through opaquely
// and is never decomposed back into a level and facility.
//
// The zero Priority is symbolic emerg with no facility; there is little
// reason to use it.
type Priority struct {
	raw      int
	level    Level
	facility Facility
	hasFac   bool
	isRaw    bool
}

// NewPriority returns a symbolic priority with the given severity and no
// facility. The facility is supplied later by [Priority.Overlay] or at
// encoding time.
func NewPriority(level Level) Priority {
	return Priority{level: level}
}

// NewPriorityFacility returns a symbolic priority with the given severity
// and facility.
func NewPriorityFacility(level Level, facility Facility) Priority {
	return Priority{level: level, facility: facility, hasFac: true}
}

// RawPriority returns a raw priority carrying pri as its full wire value.
func RawPriority(pri int) Priority {
	return Priority{raw: pri, isRaw: true}
}

// Overlay fills in p's facility if it has none. Raw priorities and
// priorities that already have a facility are returned unchanged.
func (p Priority) Overlay(facility Facility) Priority {
	if p.isRaw || p.hasFac {
		return p
	}
	p.facility = facility
	p.hasFac = true
	return p
}

// overlayFrom fills in p's facility from q's, if p lacks one and q is
// symbolic with one.
func (p Priority) overlayFrom(q Priority) Priority {
	if q.isRaw || !q.hasFac {
		return p
	}
	return p.Overlay(q.facility)
}

// Encode resolves the priority to its wire value. A raw priority encodes
// as itself; a symbolic one combines its facility's code (or
// defaultFacility's, if it has none) with its severity.
func (p Priority) Encode(defaultFacility Facility) int {
	if p.isRaw {
		return p.raw
	}
	f := defaultFacility
	if p.hasFac {
		f = p.facility
	}
	return f.code() | int(p.level)
}

// Equal reports whether p and q resolve to the same wire value. A raw
// priority therefore equals the equivalent symbolic one. Priorities
// without a facility resolve with the default facility (user) for the
// comparison. Note that == on Priority is stricter: it distinguishes raw
// from symbolic.
func (p Priority) Equal(q Priority) bool {
	return p.Encode(FacilityUser) == q.Encode(FacilityUser)
}

// String formats the priority for diagnostics.
func (p Priority) String() string {
	switch {
	case p.isRaw:
		return fmt.Sprintf("raw(%d)", p.raw)
	case p.hasFac:
		return fmt.Sprintf("%v/%v", p.facility, p.level)
	default:
		return p.level.String()
	}
}

// UnmarshalYAML implements yaml.Unmarshaler. A priority is written either
// as a bare level name:
//
//	priority: notice
//
// or as a [level, facility] pair:
//
//	priority: [alert, mail]
func (p *Priority) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var pair []string
		if err := node.Decode(&pair); err != nil {
			return err
		}
		return p.decodePair(pair)
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return p.decodeLevel(s)
}

// UnmarshalJSON implements json.Unmarshaler, accepting the same two forms
// as UnmarshalYAML.
func (p *Priority) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var pair []string
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		return p.decodePair(pair)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return p.decodeLevel(s)
}

func (p *Priority) decodeLevel(s string) error {
	l, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*p = NewPriority(l)
	return nil
}

func (p *Priority) decodePair(pair []string) error {
	if len(pair) != 2 {
		return fmt.Errorf("syslog priority must be a level or a [level, facility] pair, got %d elements", len(pair))
	}
	l, err := ParseLevel(pair[0])
	if err != nil {
		return err
	}
	f, err := ParseFacility(pair[1])
	if err != nil {
		return err
	}
	*p = NewPriorityFacility(l, f)
	return nil
}
