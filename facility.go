// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syslog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// A Facility classifies the part of the system a log message came from.
//
// The set of named facilities is closed and includes the facilities of
// Linux, the BSDs, macOS and Solaris. Facilities that have no code in
// the wire protocol spoken here are mapped to a well-known stand-in when
// a message is encoded (see the comments on the constants); their names
// still parse and format exactly.
type Facility int

// FacilityUser is the zero value, so a Facility field left unset gets the
// conventional default.
const (
	// FacilityUser is for messages from random user processes.
	// This is the default.
	FacilityUser Facility = iota

	// FacilityKern is for messages from the kernel.
	FacilityKern

	// FacilityMail is for messages from the mail system.
	FacilityMail

	// FacilityDaemon is for messages from system daemons.
	FacilityDaemon

	// FacilityAuth is for authorization messages.
	FacilityAuth

	// FacilitySyslog is for messages from the syslog daemon itself.
	FacilitySyslog

	// FacilityLpr is for messages from the printing system.
	FacilityLpr

	// FacilityNews is for messages from the network news system.
	FacilityNews

	// FacilityUucp is for messages from the UUCP system.
	FacilityUucp

	// FacilityCron is for messages from the cron daemon.
	FacilityCron

	// FacilityAuthpriv is for private authorization messages.
	FacilityAuthpriv

	// FacilityFtp is for messages from the FTP daemon.
	FacilityFtp

	// FacilityNtp is for messages from the NTP daemon.
	// Encodes as FacilityDaemon.
	FacilityNtp

	// FacilityNetInfo is for messages from the macOS NetInfo system.
	// Encodes as FacilityDaemon.
	FacilityNetInfo

	// FacilityRemoteAuth is for messages about remote authentication.
	// Encodes as FacilityDaemon.
	FacilityRemoteAuth

	// FacilityInstall is for messages from the macOS installer.
	// Encodes as FacilityUser.
	FacilityInstall

	// FacilityRas is for messages from remote access services.
	// Encodes as FacilityUser.
	FacilityRas

	// FacilityLaunchd is for messages from macOS launchd.
	// Encodes as FacilityDaemon.
	FacilityLaunchd

	// FacilitySecurity is for security messages.
	// Encodes as FacilityAuth.
	FacilitySecurity

	// FacilityLocal0 through FacilityLocal7 are reserved for local use.
	FacilityLocal0
	FacilityLocal1
	FacilityLocal2
	FacilityLocal3
	FacilityLocal4
	FacilityLocal5
	FacilityLocal6
	FacilityLocal7

	numFacilities
)

var facilityNames = [numFacilities]string{
	FacilityUser:       "user",
	FacilityKern:       "kern",
	FacilityMail:       "mail",
	FacilityDaemon:     "daemon",
	FacilityAuth:       "auth",
	FacilitySyslog:     "syslog",
	FacilityLpr:        "lpr",
	FacilityNews:       "news",
	FacilityUucp:       "uucp",
	FacilityCron:       "cron",
	FacilityAuthpriv:   "authpriv",
	FacilityFtp:        "ftp",
	FacilityNtp:        "ntp",
	FacilityNetInfo:    "netinfo",
	FacilityRemoteAuth: "remoteauth",
	FacilityInstall:    "install",
	FacilityRas:        "ras",
	FacilityLaunchd:    "launchd",
	FacilitySecurity:   "security",
	FacilityLocal0:     "local0",
	FacilityLocal1:     "local1",
	FacilityLocal2:     "local2",
	FacilityLocal3:     "local3",
	FacilityLocal4:     "local4",
	FacilityLocal5:     "local5",
	FacilityLocal6:     "local6",
	FacilityLocal7:     "local7",
}

// facilityCodes maps each Facility to its wire code, using the glibc
// numbering. Facilities glibc has no number for collapse onto a stand-in.
var facilityCodes = [numFacilities]int{
	FacilityKern:       0,
	FacilityUser:       1,
	FacilityMail:       2,
	FacilityDaemon:     3,
	FacilityAuth:       4,
	FacilitySyslog:     5,
	FacilityLpr:        6,
	FacilityNews:       7,
	FacilityUucp:       8,
	FacilityCron:       9,
	FacilityAuthpriv:   10,
	FacilityFtp:        11,
	FacilityNtp:        3,  // daemon
	FacilityNetInfo:    3,  // daemon
	FacilityRemoteAuth: 3,  // daemon
	FacilityInstall:    1,  // user
	FacilityRas:        1,  // user
	FacilityLaunchd:    3,  // daemon
	FacilitySecurity:   4,  // auth
	FacilityLocal0:     16,
	FacilityLocal1:     17,
	FacilityLocal2:     18,
	FacilityLocal3:     19,
	FacilityLocal4:     20,
	FacilityLocal5:     21,
	FacilityLocal6:     22,
	FacilityLocal7:     23,
}

// An UnknownFacilityError reports a facility name that failed to parse.
type UnknownFacilityError struct {
	// Name is the unrecognized name.
	Name string
}

func (e *UnknownFacilityError) Error() string {
	return fmt.Sprintf("unknown syslog facility name %q", e.Name)
}

// ParseFacility returns the Facility with the given lowercase name, as
// produced by [Facility.String]. There are no aliases.
func ParseFacility(name string) (Facility, error) {
	for f, n := range facilityNames {
		if n == name {
			return Facility(f), nil
		}
	}
	return 0, &UnknownFacilityError{Name: name}
}

// String returns the lowercase name of the facility.
func (f Facility) String() string {
	if f < 0 || f >= numFacilities {
		return fmt.Sprintf("!BADFACILITY(%d)", int(f))
	}
	return facilityNames[f]
}

// code returns the wire code of the facility, already shifted into the
// facility bits of a priority value.
func (f Facility) code() int {
	if f < 0 || f >= numFacilities {
		f = FacilityUser
	}
	return facilityCodes[f] << 3
}

// MarshalText implements encoding.TextMarshaler.
func (f Facility) MarshalText() ([]byte, error) {
	if f < 0 || f >= numFacilities {
		return nil, fmt.Errorf("invalid syslog facility %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Facility) UnmarshalText(data []byte) error {
	p, err := ParseFacility(string(data))
	if err != nil {
		return err
	}
	*f = p
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Facility) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return f.UnmarshalText([]byte(s))
}
