// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"fmt"
)

const (
	// DefaultPort is the TCP port that an OpenRGB server listens on by
	// default.
	DefaultPort = 6742

	// DefaultClientName is the name announced to the server when the user
	// does not supply one.
	DefaultClientName = "goopenrgb"

	// MaxProtocolVersion is the highest protocol version that this package
	// implements. The version actually used on the wire is the minimum of
	// this constant and the version reported by the server.
	MaxProtocolVersion = 3
)

// MessageType identifies the kind of payload carried by a frame.
//
// The numeric values are fixed by the OpenRGB server and must not be
// renumbered.
type MessageType uint32

const (
	// RequestControllerCount asks the server how many devices it exposes.
	RequestControllerCount MessageType = 0
	// RequestControllerData asks the server for one device's full record.
	RequestControllerData MessageType = 1

	// RequestProtocolVersion advertises the client's protocol version and
	// asks for the server's.
	RequestProtocolVersion MessageType = 40
	// SetClientName announces the client's display name.
	SetClientName MessageType = 50

	// DeviceListUpdated is an unsolicited server notification that the
	// device list has changed. It carries no body.
	DeviceListUpdated MessageType = 100

	// RequestProfileList asks the server for its saved profile names.
	RequestProfileList MessageType = 150
	// RequestSaveProfile saves the current device states under a name.
	RequestSaveProfile MessageType = 151
	// RequestLoadProfile applies a previously saved profile.
	RequestLoadProfile MessageType = 152
	// RequestDeleteProfile removes a previously saved profile.
	RequestDeleteProfile MessageType = 153

	// ResizeZone changes the LED count of a resizable zone.
	ResizeZone MessageType = 1000

	// UpdateLEDs sets the colors of every LED on a device.
	UpdateLEDs MessageType = 1050
	// UpdateZoneLEDs sets the colors of every LED in one zone.
	UpdateZoneLEDs MessageType = 1051
	// UpdateSingleLED sets the color of one LED.
	UpdateSingleLED MessageType = 1052

	// SetCustomMode switches a device into its direct-control mode.
	SetCustomMode MessageType = 1100
	// UpdateMode applies new mode parameters to a device.
	UpdateMode MessageType = 1101
	// SaveMode applies new mode parameters and persists them on the device.
	SaveMode MessageType = 1102
)

// Replies reuse the request's message type, so the reply aliases exist
// purely for readability at call sites.
const (
	ReplyControllerCount = RequestControllerCount
	ReplyControllerData  = RequestControllerData
	ReplyProtocolVersion = RequestProtocolVersion
	ReplyProfileList     = RequestProfileList
)

func (t MessageType) String() string {
	switch t {
	case RequestControllerCount:
		return "RequestControllerCount"
	case RequestControllerData:
		return "RequestControllerData"
	case RequestProtocolVersion:
		return "RequestProtocolVersion"
	case SetClientName:
		return "SetClientName"
	case DeviceListUpdated:
		return "DeviceListUpdated"
	case RequestProfileList:
		return "RequestProfileList"
	case RequestSaveProfile:
		return "RequestSaveProfile"
	case RequestLoadProfile:
		return "RequestLoadProfile"
	case RequestDeleteProfile:
		return "RequestDeleteProfile"
	case ResizeZone:
		return "ResizeZone"
	case UpdateLEDs:
		return "UpdateLEDs"
	case UpdateZoneLEDs:
		return "UpdateZoneLEDs"
	case UpdateSingleLED:
		return "UpdateSingleLED"
	case SetCustomMode:
		return "SetCustomMode"
	case UpdateMode:
		return "UpdateMode"
	case SaveMode:
		return "SaveMode"
	default:
		return fmt.Sprintf("MessageType(%d)", uint32(t))
	}
}

// NegotiateVersion returns the protocol version to use against a server
// that reported serverVersion.
func NegotiateVersion(serverVersion uint32) uint32 {
	if serverVersion < MaxProtocolVersion {
		return serverVersion
	}
	return MaxProtocolVersion
}
