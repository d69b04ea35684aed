// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"github.com/pkg/errors"
)

// Builders for the bodies of every client-to-server message, and decoders
// for the server-to-client replies. Bodies that consist of a single
// primitive still go through a Writer so that the layout lives in exactly
// one place.

// VersionBody encodes the body of a RequestProtocolVersion message.
func VersionBody(version uint32) []byte {
	var w Writer
	w.Uint32(version)
	return w.Bytes()
}

// DecodeVersion decodes the body of a ReplyProtocolVersion message.
func DecodeVersion(body []byte) (uint32, error) {
	v, err := NewReader(body).Uint32()
	if err != nil {
		return 0, errors.Wrap(err, "could not decode protocol version reply")
	}
	return v, nil
}

// ClientNameBody encodes the body of a SetClientName message.
func ClientNameBody(name string) []byte {
	var w Writer
	w.String(name)
	return w.Bytes()
}

// ControllerDataBody encodes the body of a RequestControllerData message.
// Version-less servers expect an empty body; everyone else gets the
// negotiated version so the reply's layout is unambiguous.
func ControllerDataBody(version uint32) []byte {
	if version < vendorMinVersion {
		return nil
	}
	var w Writer
	w.Uint32(version)
	return w.Bytes()
}

// DecodeControllerCount decodes the body of a ReplyControllerCount
// message.
func DecodeControllerCount(body []byte) (uint32, error) {
	v, err := NewReader(body).Uint32()
	if err != nil {
		return 0, errors.Wrap(err, "could not decode controller count reply")
	}
	return v, nil
}

// UpdateLEDsBody encodes the body of an UpdateLEDs message.
func UpdateLEDsBody(colors []Color) []byte {
	var w Writer
	w.Uint32(uint32(2 + colorSize*len(colors)))
	w.Colors(colors)
	return w.Bytes()
}

// UpdateZoneLEDsBody encodes the body of an UpdateZoneLEDs message.
func UpdateZoneLEDsBody(zoneIndex uint32, colors []Color) []byte {
	var w Writer
	w.Uint32(uint32(6 + colorSize*len(colors)))
	w.Uint32(zoneIndex)
	w.Colors(colors)
	return w.Bytes()
}

// UpdateSingleLEDBody encodes the body of an UpdateSingleLED message.
func UpdateSingleLEDBody(ledIndex uint32, c Color) []byte {
	var w Writer
	w.Uint32(ledIndex)
	w.Color(c)
	return w.Bytes()
}

// ResizeZoneBody encodes the body of a ResizeZone message.
func ResizeZoneBody(zoneIndex, newSize uint32) []byte {
	var w Writer
	w.Uint32(zoneIndex)
	w.Uint32(newSize)
	return w.Bytes()
}

// ModeBody encodes the body of an UpdateMode or SaveMode message at the
// given negotiated version.
func ModeBody(m *Mode, version uint32) []byte {
	var mode Writer
	mode.Uint32(m.Index)
	m.write(&mode, version)

	var w Writer
	w.Uint32(uint32(mode.Len()))
	w.buf = append(w.buf, mode.Bytes()...)
	return w.Bytes()
}

// ProfileNameBody encodes the body of the save/load/delete profile
// messages.
func ProfileNameBody(name string) []byte {
	var w Writer
	w.String(name)
	return w.Bytes()
}

// ProfileListBody encodes the body of a ReplyProfileList message.
func ProfileListBody(names []string) []byte {
	var w Writer
	w.Uint16(uint16(len(names)))
	for _, n := range names {
		w.String(n)
	}
	return w.Bytes()
}

// DecodeProfileList decodes the body of a ReplyProfileList message.
func DecodeProfileList(body []byte) ([]string, error) {
	r := NewReader(body)
	count, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "could not decode profile count")
	}
	names := make([]string, count)
	for i := range names {
		if names[i], err = r.String(); err != nil {
			return nil, errors.Wrapf(err, "could not decode profile name %d", i)
		}
	}
	return names, nil
}
