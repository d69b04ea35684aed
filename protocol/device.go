// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"fmt"

	"github.com/pkg/errors"
)

// DeviceType is the broad hardware category reported by the server.
type DeviceType int32

const (
	DeviceMotherboard  DeviceType = 0
	DeviceDRAM         DeviceType = 1
	DeviceGPU          DeviceType = 2
	DeviceCooler       DeviceType = 3
	DeviceLEDStrip     DeviceType = 4
	DeviceKeyboard     DeviceType = 5
	DeviceMouse        DeviceType = 6
	DeviceMouseMat     DeviceType = 7
	DeviceHeadset      DeviceType = 8
	DeviceHeadsetStand DeviceType = 9
	DeviceGamepad      DeviceType = 10
	DeviceLight        DeviceType = 11
	DeviceSpeaker      DeviceType = 12
	DeviceVirtual      DeviceType = 13
)

func (t DeviceType) String() string {
	switch t {
	case DeviceMotherboard:
		return "Motherboard"
	case DeviceDRAM:
		return "DRAM"
	case DeviceGPU:
		return "GPU"
	case DeviceCooler:
		return "Cooler"
	case DeviceLEDStrip:
		return "LEDStrip"
	case DeviceKeyboard:
		return "Keyboard"
	case DeviceMouse:
		return "Mouse"
	case DeviceMouseMat:
		return "MouseMat"
	case DeviceHeadset:
		return "Headset"
	case DeviceHeadsetStand:
		return "HeadsetStand"
	case DeviceGamepad:
		return "Gamepad"
	case DeviceLight:
		return "Light"
	case DeviceSpeaker:
		return "Speaker"
	case DeviceVirtual:
		return "Virtual"
	default:
		return fmt.Sprintf("DeviceType(%d)", int32(t))
	}
}

// ZoneType describes the physical layout of a zone.
type ZoneType int32

const (
	// ZoneSingle is a zone with a single logical light.
	ZoneSingle ZoneType = 0
	// ZoneLinear is a one-dimensional run of LEDs.
	ZoneLinear ZoneType = 1
	// ZoneMatrix is a two-dimensional grid of LEDs.
	ZoneMatrix ZoneType = 2
)

func (t ZoneType) String() string {
	switch t {
	case ZoneSingle:
		return "Single"
	case ZoneLinear:
		return "Linear"
	case ZoneMatrix:
		return "Matrix"
	default:
		return fmt.Sprintf("ZoneType(%d)", int32(t))
	}
}

// MatrixUnused marks a matrix map cell with no LED behind it.
const MatrixUnused uint32 = 0xFFFFFFFF

// LED is a single controllable pixel on a device.
//
// Index is the LED's position within the parent device's LED sequence and
// is assigned while decoding; it is what UpdateSingleLED addresses.
type LED struct {
	DeviceIndex uint32
	Index       uint32

	Name string
	// Value is a device-specific payload attached to the LED by the
	// server, typically a keycode on keyboards.
	Value uint32
}

// Zone is a contiguous range of LEDs with shared layout semantics.
//
// For a ZoneMatrix zone, MatrixMap holds MatrixHeight*MatrixWidth cells
// in row-major order; each cell is an index into the device LED sequence
// or MatrixUnused.
type Zone struct {
	DeviceIndex uint32
	Index       uint32

	Name     string
	Type     ZoneType
	LEDsMin  uint32
	LEDsMax  uint32
	LEDCount uint32

	MatrixHeight uint32
	MatrixWidth  uint32
	MatrixMap    []uint32
}

// Resizable returns whether the server will accept a ResizeZone for this
// zone.
func (z *Zone) Resizable() bool { return z.LEDsMin != z.LEDsMax }

// Device is one piece of RGB hardware exposed by the server.
//
// A Device and everything it contains is a snapshot: the embedded indices
// are only valid against the device list generation they were fetched
// with, and go stale whenever the server announces a device list update.
type Device struct {
	Index uint32

	Type        DeviceType
	Name        string
	Vendor      string
	Description string
	Version     string
	Serial      string
	Location    string

	ActiveMode int32
	Modes      []Mode
	Zones      []Zone
	LEDs       []LED
	Colors     []Color
}

func (d *Device) String() string {
	return fmt.Sprintf("%s %q (%d zones, %d leds)", d.Type, d.Name, len(d.Zones), len(d.LEDs))
}

// vendorMinVersion is the protocol version that introduced the device
// vendor string.
const vendorMinVersion = 1

// ReadDevice decodes a controller data record, the body of a
// ReplyControllerData frame, at the given negotiated version.
//
// The record opens with a uint32 size covering its remaining bytes; any
// bytes past the fields known to this implementation are skipped, which
// is how records from newer servers stay decodable.
func ReadDevice(body []byte, version uint32, deviceIndex uint32) (*Device, error) {
	outer := NewReader(body)
	dataSize, err := outer.Uint32()
	if err != nil {
		return nil, errors.Wrap(err, "could not read device record size")
	}
	r, err := outer.Sub(int(dataSize))
	if err != nil {
		return nil, errors.Errorf("device record size %d overruns body (%d remaining)", dataSize, outer.Remaining())
	}

	d := Device{Index: deviceIndex}

	var devType int32
	if devType, err = r.Int32(); err != nil {
		return nil, errors.Wrap(err, "could not read device type")
	}
	d.Type = DeviceType(devType)

	if d.Name, err = r.String(); err != nil {
		return nil, errors.Wrap(err, "could not read device name")
	}
	if version >= vendorMinVersion {
		if d.Vendor, err = r.String(); err != nil {
			return nil, errors.Wrap(err, "could not read device vendor")
		}
	}
	if d.Description, err = r.String(); err != nil {
		return nil, errors.Wrap(err, "could not read device description")
	}
	if d.Version, err = r.String(); err != nil {
		return nil, errors.Wrap(err, "could not read device version")
	}
	if d.Serial, err = r.String(); err != nil {
		return nil, errors.Wrap(err, "could not read device serial")
	}
	if d.Location, err = r.String(); err != nil {
		return nil, errors.Wrap(err, "could not read device location")
	}

	numModes, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "could not read mode count")
	}
	if d.ActiveMode, err = r.Int32(); err != nil {
		return nil, errors.Wrap(err, "could not read active mode")
	}
	d.Modes = make([]Mode, numModes)
	for i := range d.Modes {
		m, err := readMode(r, version)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read mode %d", i)
		}
		m.DeviceIndex = deviceIndex
		m.Index = uint32(i)
		d.Modes[i] = m
	}

	numZones, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "could not read zone count")
	}
	d.Zones = make([]Zone, numZones)
	for i := range d.Zones {
		z, err := readZone(r)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read zone %d", i)
		}
		z.DeviceIndex = deviceIndex
		z.Index = uint32(i)
		d.Zones[i] = z
	}

	numLEDs, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "could not read LED count")
	}
	d.LEDs = make([]LED, numLEDs)
	for i := range d.LEDs {
		led := LED{DeviceIndex: deviceIndex, Index: uint32(i)}
		if led.Name, err = r.String(); err != nil {
			return nil, errors.Wrapf(err, "could not read LED %d", i)
		}
		if led.Value, err = r.Uint32(); err != nil {
			return nil, errors.Wrapf(err, "could not read LED %d value", i)
		}
		d.LEDs[i] = led
	}

	numColors, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "could not read color count")
	}
	d.Colors = make([]Color, numColors)
	for i := range d.Colors {
		if d.Colors[i], err = r.Color(); err != nil {
			return nil, errors.Wrapf(err, "could not read color %d", i)
		}
	}

	return &d, nil
}

func readZone(r *Reader) (Zone, error) {
	var z Zone
	var err error

	if z.Name, err = r.String(); err != nil {
		return z, err
	}
	var zoneType int32
	if zoneType, err = r.Int32(); err != nil {
		return z, err
	}
	z.Type = ZoneType(zoneType)

	if z.LEDsMin, err = r.Uint32(); err != nil {
		return z, err
	}
	if z.LEDsMax, err = r.Uint32(); err != nil {
		return z, err
	}
	if z.LEDCount, err = r.Uint32(); err != nil {
		return z, err
	}

	// The matrix block is length-delimited so that zones without one cost
	// two bytes on the wire.
	matrixLen, err := r.Uint16()
	if err != nil {
		return z, err
	}
	if matrixLen == 0 {
		return z, nil
	}
	mr, err := r.Sub(int(matrixLen))
	if err != nil {
		return z, errors.Errorf("matrix block size %d overruns zone record", matrixLen)
	}
	if z.MatrixHeight, err = mr.Uint32(); err != nil {
		return z, err
	}
	if z.MatrixWidth, err = mr.Uint32(); err != nil {
		return z, err
	}
	// The dimensions come off the wire; bound them before multiplying so
	// oversized values fail cleanly instead of overflowing.
	if cells64 := uint64(z.MatrixHeight) * uint64(z.MatrixWidth); cells64 > uint64(mr.Remaining())/4 {
		return z, errors.Errorf("matrix map needs %d cells, block holds %d bytes", cells64, mr.Remaining())
	}
	cells := int(z.MatrixHeight) * int(z.MatrixWidth)
	z.MatrixMap = make([]uint32, cells)
	for i := range z.MatrixMap {
		if z.MatrixMap[i], err = mr.Uint32(); err != nil {
			return z, err
		}
	}
	return z, nil
}

// AppendTo encodes the device as a controller data record at the given
// version. It is the exact inverse of ReadDevice and exists chiefly so
// that servers and tests can produce records.
func (d *Device) AppendTo(w *Writer, version uint32) {
	var body Writer
	body.Int32(int32(d.Type))
	body.String(d.Name)
	if version >= vendorMinVersion {
		body.String(d.Vendor)
	}
	body.String(d.Description)
	body.String(d.Version)
	body.String(d.Serial)
	body.String(d.Location)

	body.Uint16(uint16(len(d.Modes)))
	body.Int32(d.ActiveMode)
	for i := range d.Modes {
		d.Modes[i].write(&body, version)
	}

	body.Uint16(uint16(len(d.Zones)))
	for i := range d.Zones {
		z := &d.Zones[i]
		body.String(z.Name)
		body.Int32(int32(z.Type))
		body.Uint32(z.LEDsMin)
		body.Uint32(z.LEDsMax)
		body.Uint32(z.LEDCount)
		if len(z.MatrixMap) == 0 {
			body.Uint16(0)
			continue
		}
		body.Uint16(uint16(8 + 4*len(z.MatrixMap)))
		body.Uint32(z.MatrixHeight)
		body.Uint32(z.MatrixWidth)
		for _, cell := range z.MatrixMap {
			body.Uint32(cell)
		}
	}

	body.Uint16(uint16(len(d.LEDs)))
	for i := range d.LEDs {
		body.String(d.LEDs[i].Name)
		body.Uint32(d.LEDs[i].Value)
	}

	body.Colors(d.Colors)

	w.Uint32(uint32(body.Len()))
	w.buf = append(w.buf, body.Bytes()...)
}
