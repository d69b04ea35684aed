// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// testDevice builds a representative device record fixture, with the
// location indices populated the way ReadDevice would populate them for
// device deviceIndex.
func testDevice(deviceIndex uint32) *Device {
	return &Device{
		Index: deviceIndex,

		Type:        DeviceKeyboard,
		Name:        "Cluster TKL",
		Vendor:      "Cluster",
		Description: "A tenkeyless keyboard",
		Version:     "1.04",
		Serial:      "CL-0001",
		Location:    "/dev/hidraw2",

		ActiveMode: 1,
		Modes: []Mode{
			{
				DeviceIndex: deviceIndex,
				Index:       0,
				Name:        "Direct",
				Flags:       ModeHasPerLEDColor,
				ColorMode:   ColorModePerLED,
				Colors:      []Color{},
			},
			{
				DeviceIndex:   deviceIndex,
				Index:         1,
				Name:          "Breathing",
				Value:         1,
				Flags:         ModeHasSpeed | ModeHasBrightness | ModeHasModeSpecificColor,
				SpeedMin:      1,
				SpeedMax:      5,
				BrightnessMin: 0,
				BrightnessMax: 100,
				ColorsMin:     1,
				ColorsMax:     2,
				Speed:         3,
				Brightness:    80,
				Direction:     DirectionLeft,
				ColorMode:     ColorModeModeSpecific,
				Colors:        []Color{{Red: 255}, {Blue: 255}},
			},
		},

		Zones: []Zone{
			{
				DeviceIndex: deviceIndex,
				Index:       0,
				Name:        "Underglow",
				Type:        ZoneLinear,
				LEDsMin:     2,
				LEDsMax:     2,
				LEDCount:    2,
			},
			{
				DeviceIndex:  deviceIndex,
				Index:        1,
				Name:         "Keys",
				Type:         ZoneMatrix,
				LEDsMin:      3,
				LEDsMax:      3,
				LEDCount:     3,
				MatrixHeight: 2,
				MatrixWidth:  2,
				MatrixMap:    []uint32{0, 1, 2, MatrixUnused},
			},
		},

		LEDs: []LED{
			{DeviceIndex: deviceIndex, Index: 0, Name: "Underglow 1"},
			{DeviceIndex: deviceIndex, Index: 1, Name: "Underglow 2"},
			{DeviceIndex: deviceIndex, Index: 2, Name: "Key: Esc", Value: 41},
			{DeviceIndex: deviceIndex, Index: 3, Name: "Key: F1", Value: 58},
			{DeviceIndex: deviceIndex, Index: 4, Name: "Key: F2", Value: 59},
		},

		Colors: []Color{
			{Red: 1}, {Red: 2}, {Red: 3}, {Red: 4}, {Red: 5},
		},
	}
}

var _ = Describe("Device Records", func() {
	It("round-trips at the current protocol version", func() {
		want := testDevice(2)

		var w Writer
		want.AppendTo(&w, MaxProtocolVersion)

		got, err := ReadDevice(w.Bytes(), MaxProtocolVersion, 2)
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(Equal(want))
	})

	It("declares a size that covers exactly the record", func() {
		var w Writer
		testDevice(0).AppendTo(&w, MaxProtocolVersion)

		size := binary.LittleEndian.Uint32(w.Bytes()[:4])
		Expect(int(size)).To(Equal(len(w.Bytes()) - 4))
	})

	It("maintains the zone/LED count invariant in the fixture", func() {
		d := testDevice(0)
		total := uint32(0)
		for _, z := range d.Zones {
			total += z.LEDCount
		}
		Expect(total).To(Equal(uint32(len(d.LEDs))))
	})

	It("omits the vendor below protocol version 1", func() {
		want := testDevice(0)

		var v0, v1 Writer
		want.AppendTo(&v0, 0)
		want.AppendTo(&v1, 1)
		Expect(len(v1.Bytes()) - len(v0.Bytes())).To(Equal(2 + len(want.Vendor) + 1))

		got, err := ReadDevice(v0.Bytes(), 0, 0)
		Expect(err).ToNot(HaveOccurred())
		Expect(got.Vendor).To(BeEmpty())
		Expect(got.Name).To(Equal(want.Name))
		Expect(got.Description).To(Equal(want.Description))
	})

	It("omits mode brightness below protocol version 3", func() {
		want := testDevice(0)

		var v2, v3 Writer
		want.AppendTo(&v2, 2)
		want.AppendTo(&v3, 3)
		// Three uint32 fields per mode: min, max, current.
		Expect(len(v3.Bytes()) - len(v2.Bytes())).To(Equal(12 * len(want.Modes)))

		got, err := ReadDevice(v2.Bytes(), 2, 0)
		Expect(err).ToNot(HaveOccurred())
		Expect(got.Modes[1].Brightness).To(BeZero())
		Expect(got.Modes[1].BrightnessMax).To(BeZero())
		Expect(got.Modes[1].Speed).To(Equal(want.Modes[1].Speed))
		Expect(got.Modes[1].Direction).To(Equal(want.Modes[1].Direction))
	})

	It("passes an unknown mode direction through untouched", func() {
		d := testDevice(0)
		d.Modes[1].Direction = 42

		var w Writer
		d.AppendTo(&w, MaxProtocolVersion)

		got, err := ReadDevice(w.Bytes(), MaxProtocolVersion, 0)
		Expect(err).ToNot(HaveOccurred())
		Expect(got.Modes[1].Direction).To(Equal(uint32(42)))
	})

	It("skips unknown trailing record bytes", func() {
		var w Writer
		testDevice(3).AppendTo(&w, MaxProtocolVersion)

		// Splice four trailing bytes into the record and grow its declared
		// size to match, as a newer server with extra fields would.
		data := append([]byte(nil), w.Bytes()...)
		data = append(data, 0xDE, 0xAD, 0xBE, 0xEF)
		binary.LittleEndian.PutUint32(data[:4], binary.LittleEndian.Uint32(data[:4])+4)

		got, err := ReadDevice(data, MaxProtocolVersion, 3)
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(Equal(testDevice(3)))
	})

	It("rejects a record size past the end of the body", func() {
		var w Writer
		testDevice(0).AppendTo(&w, MaxProtocolVersion)

		data := w.Bytes()
		binary.LittleEndian.PutUint32(data[:4], uint32(len(data))) // four bytes past

		_, err := ReadDevice(data, MaxProtocolVersion, 0)
		Expect(err).To(MatchError(ContainSubstring("overruns")))
	})

	It("rejects a truncated record", func() {
		var w Writer
		testDevice(0).AppendTo(&w, MaxProtocolVersion)

		_, err := ReadDevice(w.Bytes()[:20], MaxProtocolVersion, 0)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a matrix block that overruns its zone", func() {
		var w Writer
		w.Uint32(0) // patched below

		var body Writer
		body.Int32(int32(DeviceLEDStrip))
		body.String("Strip")
		body.String("")
		body.String("")
		body.String("")
		body.String("")
		body.String("")
		body.Uint16(0) // no modes
		body.Int32(0)
		body.Uint16(1) // one zone
		body.String("Zone")
		body.Int32(int32(ZoneMatrix))
		body.Uint32(1)
		body.Uint32(1)
		body.Uint32(1)
		body.Uint16(200) // matrix block longer than the record

		data := w.Bytes()
		data = append(data, body.Bytes()...)
		binary.LittleEndian.PutUint32(data[:4], uint32(len(body.Bytes())))

		_, err := ReadDevice(data, MaxProtocolVersion, 0)
		Expect(err).To(MatchError(ContainSubstring("matrix")))
	})

	It("rejects matrix dimensions whose product overflows", func() {
		var w Writer
		w.Uint32(0) // patched below

		var body Writer
		body.Int32(int32(DeviceLEDStrip))
		body.String("Strip")
		body.String("")
		body.String("")
		body.String("")
		body.String("")
		body.String("")
		body.Uint16(0) // no modes
		body.Int32(0)
		body.Uint16(1) // one zone
		body.String("Zone")
		body.Int32(int32(ZoneMatrix))
		body.Uint32(1)
		body.Uint32(1)
		body.Uint32(1)
		body.Uint16(8) // just the dimensions, no map cells
		body.Uint32(0xFFFFFFFF)
		body.Uint32(0xFFFFFFFF)

		data := w.Bytes()
		data = append(data, body.Bytes()...)
		binary.LittleEndian.PutUint32(data[:4], uint32(len(body.Bytes())))

		_, err := ReadDevice(data, MaxProtocolVersion, 0)
		Expect(err).To(MatchError(ContainSubstring("matrix")))
	})
})

var _ = Describe("Device Lists", func() {
	It("finds the first device by name", func() {
		a := &Device{Index: 0, Name: "Strip"}
		b := &Device{Index: 1, Name: "Keyboard"}
		c := &Device{Index: 2, Name: "Keyboard"}
		dl := DeviceList{a, b, c}

		Expect(dl.FindByName("Keyboard")).To(BeIdenticalTo(b))
		Expect(dl.FindByName("Mouse")).To(BeNil())
	})
})
