// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Message Bodies", func() {
	It("encodes a protocol version request", func() {
		Expect(VersionBody(3)).To(Equal([]byte{0x03, 0x00, 0x00, 0x00}))

		v, err := DecodeVersion([]byte{0x04, 0x00, 0x00, 0x00})
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(uint32(4)))

		_, err = DecodeVersion([]byte{0x04})
		Expect(err).To(HaveOccurred())
	})

	It("encodes a client name announcement", func() {
		Expect(ClientNameBody("test")).To(Equal([]byte{0x05, 0x00, 't', 'e', 's', 't', 0x00}))
	})

	It("requests controller data with the negotiated version", func() {
		Expect(ControllerDataBody(3)).To(Equal([]byte{0x03, 0x00, 0x00, 0x00}))
	})

	It("requests controller data without a version for version-less layouts", func() {
		Expect(ControllerDataBody(0)).To(BeEmpty())
	})

	It("decodes a controller count", func() {
		count, err := DecodeControllerCount([]byte{0x02, 0x00, 0x00, 0x00})
		Expect(err).ToNot(HaveOccurred())
		Expect(count).To(Equal(uint32(2)))
	})

	It("encodes a single LED update", func() {
		body := UpdateSingleLEDBody(5, Color{Red: 0xAA, Green: 0xBB, Blue: 0xCC})
		Expect(body).To(Equal([]byte{
			0x05, 0x00, 0x00, 0x00,
			0xAA, 0xBB, 0xCC, 0x00,
		}))
	})

	It("encodes a device LED update with its inner size", func() {
		body := UpdateLEDsBody([]Color{{Red: 1}, {Green: 2}})
		Expect(body).To(Equal([]byte{
			0x0A, 0x00, 0x00, 0x00, // 2 count bytes + 2 colors
			0x02, 0x00,
			0x01, 0x00, 0x00, 0x00,
			0x00, 0x02, 0x00, 0x00,
		}))
	})

	It("encodes a zone LED update with its inner size", func() {
		body := UpdateZoneLEDsBody(1, []Color{{Blue: 3}})
		Expect(body).To(Equal([]byte{
			0x0A, 0x00, 0x00, 0x00, // zone index + count bytes + 1 color
			0x01, 0x00, 0x00, 0x00,
			0x01, 0x00,
			0x00, 0x00, 0x03, 0x00,
		}))
	})

	It("encodes a zone resize", func() {
		Expect(ResizeZoneBody(2, 30)).To(Equal([]byte{
			0x02, 0x00, 0x00, 0x00,
			0x1E, 0x00, 0x00, 0x00,
		}))
	})

	It("round-trips a mode update at both gated layouts", func() {
		m := &Mode{
			Index:     1,
			Name:      "Wave",
			Value:     2,
			Flags:     ModeHasSpeed | ModeHasBrightness,
			SpeedMin:  1,
			SpeedMax:  10,
			Speed:     5,
			Direction: DirectionRight,
			ColorMode: ColorModeNone,
			Colors:    []Color{},
		}

		v3 := ModeBody(m, 3)
		v2 := ModeBody(m, 2)
		Expect(len(v3) - len(v2)).To(Equal(12))

		// Both carry the mode index right after the size prefix.
		Expect(v3[4:8]).To(Equal([]byte{0x01, 0x00, 0x00, 0x00}))

		r := NewReader(v3)
		size, err := r.Uint32()
		Expect(err).ToNot(HaveOccurred())
		Expect(int(size)).To(Equal(len(v3) - 4))

		idx, err := r.Uint32()
		Expect(err).ToNot(HaveOccurred())
		Expect(idx).To(Equal(uint32(1)))

		got, err := readMode(r, 3)
		Expect(err).ToNot(HaveOccurred())
		want := *m
		want.Index = 0 // assigned by the device record decoder, not carried in the body
		Expect(got).To(Equal(want))
	})

	It("round-trips a profile list", func() {
		names := []string{"default", "gaming", ""}
		got, err := DecodeProfileList(ProfileListBody(names))
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(Equal(names))
	})

	It("rejects a truncated profile list", func() {
		body := ProfileListBody([]string{"default"})
		_, err := DecodeProfileList(body[:len(body)-2])
		Expect(err).To(HaveOccurred())
	})

	It("encodes profile operations as a bare name", func() {
		Expect(ProfileNameBody("day")).To(Equal([]byte{0x04, 0x00, 'd', 'a', 'y', 0x00}))
	})
})
