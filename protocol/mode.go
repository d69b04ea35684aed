// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

// ModeFlags is the feature bitset advertised by a device mode.
type ModeFlags uint32

const (
	// ModeHasSpeed is set if the mode's speed is adjustable.
	ModeHasSpeed ModeFlags = 1 << 0
	// ModeHasDirectionLR is set if the mode supports left/right direction.
	ModeHasDirectionLR ModeFlags = 1 << 1
	// ModeHasDirectionUD is set if the mode supports up/down direction.
	ModeHasDirectionUD ModeFlags = 1 << 2
	// ModeHasDirectionHV is set if the mode supports horizontal/vertical
	// direction.
	ModeHasDirectionHV ModeFlags = 1 << 3
	// ModeHasBrightness is set if the mode's brightness is adjustable.
	ModeHasBrightness ModeFlags = 1 << 4
	// ModeHasPerLEDColor is set if the mode uses the per-LED color array.
	ModeHasPerLEDColor ModeFlags = 1 << 5
	// ModeHasModeSpecificColor is set if the mode carries its own colors.
	ModeHasModeSpecificColor ModeFlags = 1 << 6
	// ModeHasRandomColor is set if the mode can pick colors at random.
	ModeHasRandomColor ModeFlags = 1 << 7
	// ModeManualSave is set if mode changes must be saved explicitly.
	ModeManualSave ModeFlags = 1 << 8
)

// Has returns whether every flag in f is set on m.
func (m ModeFlags) Has(f ModeFlags) bool { return m&f == f }

// Direction values used by modes that support one. A device may report a
// direction outside this set; such values are carried through untouched.
const (
	DirectionLeft       uint32 = 0
	DirectionRight      uint32 = 1
	DirectionUp         uint32 = 2
	DirectionDown       uint32 = 3
	DirectionHorizontal uint32 = 4
	DirectionVertical   uint32 = 5
)

// ColorMode describes where a mode takes its colors from.
type ColorMode uint32

const (
	// ColorModeNone means the mode has no color input at all.
	ColorModeNone ColorMode = 0
	// ColorModePerLED means the mode follows the device color array.
	ColorModePerLED ColorMode = 1
	// ColorModeModeSpecific means the mode uses its own preset colors.
	ColorModeModeSpecific ColorMode = 2
	// ColorModeRandom means the device picks colors on its own.
	ColorModeRandom ColorMode = 3
)

// Mode is one lighting effect selectable on a device.
//
// DeviceIndex and Index locate the mode for wire operations; both are
// assigned while decoding the parent device record and become stale as
// soon as a newer device list is fetched.
//
// The Brightness fields exist on the wire only when the negotiated
// protocol version is at least 3; against an older server they decode as
// zero and are omitted on encode.
type Mode struct {
	DeviceIndex uint32
	Index       uint32

	Name  string
	Value int32
	Flags ModeFlags

	SpeedMin      uint32
	SpeedMax      uint32
	BrightnessMin uint32
	BrightnessMax uint32
	ColorsMin     uint32
	ColorsMax     uint32

	Speed      uint32
	Brightness uint32
	Direction  uint32
	ColorMode  ColorMode

	Colors []Color
}

// brightnessMinVersion is the protocol version that introduced the mode
// brightness fields.
const brightnessMinVersion = 3

func readMode(r *Reader, version uint32) (Mode, error) {
	var m Mode
	var err error

	if m.Name, err = r.String(); err != nil {
		return m, err
	}
	if m.Value, err = r.Int32(); err != nil {
		return m, err
	}

	var flags uint32
	if flags, err = r.Uint32(); err != nil {
		return m, err
	}
	m.Flags = ModeFlags(flags)

	if m.SpeedMin, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.SpeedMax, err = r.Uint32(); err != nil {
		return m, err
	}
	if version >= brightnessMinVersion {
		if m.BrightnessMin, err = r.Uint32(); err != nil {
			return m, err
		}
		if m.BrightnessMax, err = r.Uint32(); err != nil {
			return m, err
		}
	}
	if m.ColorsMin, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.ColorsMax, err = r.Uint32(); err != nil {
		return m, err
	}

	if m.Speed, err = r.Uint32(); err != nil {
		return m, err
	}
	if version >= brightnessMinVersion {
		if m.Brightness, err = r.Uint32(); err != nil {
			return m, err
		}
	}
	if m.Direction, err = r.Uint32(); err != nil {
		return m, err
	}

	var cm uint32
	if cm, err = r.Uint32(); err != nil {
		return m, err
	}
	m.ColorMode = ColorMode(cm)

	numColors, err := r.Uint16()
	if err != nil {
		return m, err
	}
	m.Colors = make([]Color, numColors)
	for i := range m.Colors {
		if m.Colors[i], err = r.Color(); err != nil {
			return m, err
		}
	}
	return m, nil
}

// write encodes the mode body fields, honoring version gating. It is
// shared by the device record encoder (Device.AppendTo) and the
// UpdateMode / SaveMode request builder (ModeBody).
func (m *Mode) write(w *Writer, version uint32) {
	w.String(m.Name)
	w.Int32(m.Value)
	w.Uint32(uint32(m.Flags))
	w.Uint32(m.SpeedMin)
	w.Uint32(m.SpeedMax)
	if version >= brightnessMinVersion {
		w.Uint32(m.BrightnessMin)
		w.Uint32(m.BrightnessMax)
	}
	w.Uint32(m.ColorsMin)
	w.Uint32(m.ColorsMax)
	w.Uint32(m.Speed)
	if version >= brightnessMinVersion {
		w.Uint32(m.Brightness)
	}
	w.Uint32(m.Direction)
	w.Uint32(uint32(m.ColorMode))
	w.Colors(m.Colors)
}
