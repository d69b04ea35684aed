// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"encoding/binary"
)

// Writer builds the little-endian body of an outgoing frame.
//
// Writer operations cannot fail; the accumulated bytes are retrieved with
// Bytes. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// Bytes returns the accumulated body.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes accumulated so far.
func (w *Writer) Len() int { return len(w.buf) }

// Uint8 appends one byte.
func (w *Writer) Uint8(v uint8) {
	w.buf = append(w.buf, v)
}

// Uint16 appends a little-endian 16-bit integer.
func (w *Writer) Uint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// Uint32 appends a little-endian 32-bit integer.
func (w *Writer) Uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// Int32 appends a little-endian 32-bit signed integer.
func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

// String appends a length-prefixed, NUL-terminated string.
func (w *Writer) String(s string) {
	w.Uint16(uint16(len(s) + 1))
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0)
}

// Color appends one wire-form color (R, G, B, pad).
func (w *Writer) Color(c Color) {
	w.buf = append(w.buf, c.Red, c.Green, c.Blue, 0)
}

// Colors appends a uint16 count followed by each color.
func (w *Writer) Colors(colors []Color) {
	w.Uint16(uint16(len(colors)))
	for _, c := range colors {
		w.Color(c)
	}
}
