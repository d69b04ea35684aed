// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"fmt"
)

// Color is the state of a single LED.
//
// On the wire a Color occupies four bytes: red, green, blue, and one
// padding byte that is always zero.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red, c.Green, c.Blue)
}

// colorSize is the encoded size of a Color, in bytes.
const colorSize = 4
