// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFacilityRoundTrip(t *testing.T) {
	for f := Facility(0); f < numFacilities; f++ {
		name := f.String()
		got, err := ParseFacility(name)
		if err != nil {
			t.Errorf("ParseFacility(%q): %v", name, err)
			continue
		}
		if got != f {
			t.Errorf("ParseFacility(%q) = %v, want %v", name, got, f)
		}
	}
}

func TestFacilityDefault(t *testing.T) {
	var f Facility
	if f != FacilityUser {
		t.Errorf("zero Facility = %v, want user", f)
	}
}

func TestFacilityCodes(t *testing.T) {
	tests := []struct {
		f    Facility
		code int
	}{
		{FacilityKern, 0},
		{FacilityUser, 1 << 3},
		{FacilityMail, 2 << 3},
		{FacilityLocal0, 16 << 3},
		{FacilityLocal7, 23 << 3},

		// Facilities with no code of their own collapse to a stand-in,
		// always the same one.
		{FacilityNtp, 3 << 3},
		{FacilityLaunchd, 3 << 3},
		{FacilityNetInfo, 3 << 3},
		{FacilityRemoteAuth, 3 << 3},
		{FacilityInstall, 1 << 3},
		{FacilityRas, 1 << 3},
		{FacilitySecurity, 4 << 3},
	}
	for _, test := range tests {
		if got := test.f.code(); got != test.code {
			t.Errorf("%v.code() = %d, want %d", test.f, got, test.code)
		}
	}
}

func TestParseFacilityUnknown(t *testing.T) {
	_, err := ParseFacility("lasers")
	var ue *UnknownFacilityError
	if !errors.As(err, &ue) {
		t.Fatalf("ParseFacility error = %v, want UnknownFacilityError", err)
	}
	if ue.Name != "lasers" {
		t.Errorf("Name = %q, want %q", ue.Name, "lasers")
	}
}

func TestFacilityYAML(t *testing.T) {
	var f Facility
	if err := yaml.Unmarshal([]byte("daemon"), &f); err != nil {
		t.Fatal(err)
	}
	if f != FacilityDaemon {
		t.Errorf("got %v, want daemon", f)
	}
	if err := yaml.Unmarshal([]byte("nope"), &f); err == nil {
		t.Error("unmarshal of unknown facility succeeded")
	}
}
