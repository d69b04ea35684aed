// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrShortRecord is returned when a decode runs past the end of its
// buffer, either the frame body itself or a size-delimited sub-record.
var ErrShortRecord = errors.New("record truncated")

// Reader decodes little-endian protocol primitives from a byte slice.
//
// Reader performs bounds checking on every operation; a read past the end
// of the buffer fails with ErrShortRecord rather than panicking. Reader is
// not safe for concurrent use.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of data.
//
// The Reader references data directly and never copies it; strings
// returned by String are copies and own their storage.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// take consumes the next n bytes and returns them as a slice of the
// backing buffer.
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrShortRecord
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Skip discards the next n bytes.
func (r *Reader) Skip(n int) error {
	_, err := r.take(n)
	return err
}

// Uint8 consumes one byte.
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 consumes a little-endian 16-bit integer.
func (r *Reader) Uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 consumes a little-endian 32-bit integer.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Int32 consumes a little-endian 32-bit signed integer.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

// String consumes a length-prefixed string.
//
// The wire form is a uint16 length that counts the NUL terminator,
// followed by that many bytes, the last of which must be 0x00. The
// terminator is verified and stripped.
func (r *Reader) String() (string, error) {
	n, err := r.Uint16()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", errors.New("string length missing its terminator")
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	if b[n-1] != 0 {
		return "", errors.New("string is not NUL-terminated")
	}
	return string(b[:n-1]), nil
}

// Color consumes one wire-form color (R, G, B, pad).
func (r *Reader) Color() (Color, error) {
	b, err := r.take(4)
	if err != nil {
		return Color{}, err
	}
	return Color{Red: b[0], Green: b[1], Blue: b[2]}, nil
}

// Sub consumes the next n bytes and returns a Reader bounded to them.
//
// Sub is used for size-prefixed records: the parent keeps its position
// past the record regardless of how much of it the sub-reader actually
// decodes, which is how unknown trailing fields from newer protocol
// versions get skipped.
func (r *Reader) Sub(n int) (*Reader, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	return NewReader(b), nil
}
