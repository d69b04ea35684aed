// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"io"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

// HeaderSize is the encoded size of a Header, in bytes.
const HeaderSize = 16

// headerMagic is the byte sequence that opens every frame.
var headerMagic = [4]byte{'O', 'R', 'G', 'B'}

// Header is the fixed preamble of every frame, request and reply alike.
//
// DeviceIndex is meaningful only for messages that address a specific
// device; the server echoes it back on replies that do.
type Header struct {
	Magic       [4]byte
	DeviceIndex uint32 `struc:",little"`
	Type        uint32 `struc:",little"`
	BodySize    uint32 `struc:",little"`
}

// MakeHeader assembles a Header for an outgoing frame.
func MakeHeader(t MessageType, deviceIndex uint32, bodySize int) *Header {
	return &Header{
		Magic:       headerMagic,
		DeviceIndex: deviceIndex,
		Type:        uint32(t),
		BodySize:    uint32(bodySize),
	}
}

// MessageType returns the header's message type field.
func (h *Header) MessageType() MessageType { return MessageType(h.Type) }

// Write packs h to w in wire form.
func (h *Header) Write(w io.Writer) error {
	if err := struc.Pack(w, h); err != nil {
		return errors.Wrap(err, "could not pack frame header")
	}
	return nil
}

// ReadHeader unpacks a Header from r and validates its magic.
//
// The caller is expected to hand ReadHeader a reader over exactly
// HeaderSize bytes; short data is reported as an error.
func ReadHeader(r io.Reader) (*Header, error) {
	var h Header
	if err := struc.Unpack(r, &h); err != nil {
		return nil, errors.Wrap(err, "could not unpack frame header")
	}
	if h.Magic != headerMagic {
		return nil, errors.Errorf("bad frame magic %q", h.Magic[:])
	}
	return &h, nil
}
