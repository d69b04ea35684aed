// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Frame Header", func() {
	It("packs to exactly 16 little-endian bytes", func() {
		var buf bytes.Buffer
		h := MakeHeader(UpdateSingleLED, 0x01020304, 8)
		Expect(h.Write(&buf)).To(Succeed())

		Expect(buf.Bytes()).To(Equal([]byte{
			'O', 'R', 'G', 'B',
			0x04, 0x03, 0x02, 0x01,
			0x1C, 0x04, 0x00, 0x00, // 1052
			0x08, 0x00, 0x00, 0x00,
		}))
		Expect(buf.Len()).To(Equal(HeaderSize))
	})

	It("round-trips", func() {
		var buf bytes.Buffer
		Expect(MakeHeader(RequestProfileList, 7, 123).Write(&buf)).To(Succeed())

		h, err := ReadHeader(&buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(h.MessageType()).To(Equal(RequestProfileList))
		Expect(h.DeviceIndex).To(Equal(uint32(7)))
		Expect(h.BodySize).To(Equal(uint32(123)))
	})

	It("rejects a bad magic", func() {
		data := []byte{
			'X', 'R', 'G', 'B',
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}
		_, err := ReadHeader(bytes.NewReader(data))
		Expect(err).To(MatchError(ContainSubstring("magic")))
	})

	It("rejects a short header", func() {
		_, err := ReadHeader(bytes.NewReader([]byte{'O', 'R', 'G'}))
		Expect(err).To(HaveOccurred())
	})
})
