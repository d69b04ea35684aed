// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package client

import (
	"net"
	"time"

	"github.com/danjacques/goopenrgb/protocol"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// freshSession connects and immediately runs an empty device list sweep,
// clearing the freshness bit that connect sets.
func freshSession(script func(s *mockServer)) (*Client, chan struct{}) {
	c, st, done := session(4, func(s *mockServer) {
		s.serveCount(0)
		if script != nil {
			script(s)
		}
	})
	Expect(st).To(Equal(ConnectSuccess))

	devices, rst := c.RequestDeviceList()
	Expect(rst).To(Equal(RequestSuccess))
	Expect(devices).To(BeEmpty())
	return c, done
}

var _ = Describe("Freshness Probe", func() {
	It("answers from the cached bit without touching the socket", func() {
		c, st, done := session(4, func(s *mockServer) {
			Expect(s.conn.Close()).To(Succeed())
		})
		Expect(st).To(Equal(ConnectSuccess))
		wait(done)

		// The bit is set from connect, and the peer is gone: a probe that
		// touched the socket would report closure instead.
		Expect(c.CheckForDeviceUpdates()).To(Equal(OutOfDate))
		Expect(c.CheckForDeviceUpdates()).To(Equal(OutOfDate))
		Expect(c.Connected()).To(BeTrue())
	})

	It("reports up-to-date on a quiet connection and keeps working", func() {
		c, done := freshSession(func(s *mockServer) {
			s.expect(protocol.RequestProfileList)
			time.Sleep(50 * time.Millisecond)
			s.send(protocol.ReplyProfileList, 0, protocol.ProfileListBody([]string{"day"}))
		})

		Expect(c.CheckForDeviceUpdates()).To(Equal(UpToDate))
		Expect(c.CheckForDeviceUpdates()).To(Equal(UpToDate))

		// The probe's short deadline must not bleed into later awaited
		// reads; this reply lands well after the probe window.
		names, rst := c.RequestProfileList()
		Expect(rst).To(Equal(RequestSuccess))
		Expect(names).To(Equal([]string{"day"}))
		wait(done)
	})

	It("picks a pushed notification off the wire", func() {
		c, done := freshSession(func(s *mockServer) {
			s.notify()
		})

		Eventually(c.CheckForDeviceUpdates, time.Second).Should(Equal(OutOfDate))
		wait(done)

		// Once latched, the answer is cached.
		Expect(c.CheckForDeviceUpdates()).To(Equal(OutOfDate))
		Expect(c.Connected()).To(BeTrue())
	})

	It("treats any other unsolicited frame as fatal", func() {
		c, done := freshSession(func(s *mockServer) {
			s.send(protocol.SetCustomMode, 0, nil)
		})

		Eventually(c.CheckForDeviceUpdates, time.Second).Should(Equal(UnexpectedMessage))
		Expect(c.Connected()).To(BeFalse())
		wait(done)
	})

	It("notices a closed connection", func() {
		// A real TCP pair: net.Pipe fails deadline operations once the
		// remote end closes, which would mask the closure result.
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ToNot(HaveOccurred())
		defer ln.Close()

		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)
			conn, err := ln.Accept()
			Expect(err).ToNot(HaveOccurred())
			s := &mockServer{conn: conn}
			s.handshake(4)
			s.serveCount(0)
			Expect(conn.Close()).To(Succeed())
		}()

		conn, err := net.Dial("tcp", ln.Addr().String())
		Expect(err).ToNot(HaveOccurred())

		c := &Client{Name: "test"}
		Expect(c.ConnectUsing(conn)).To(Equal(ConnectSuccess))
		devices, rst := c.RequestDeviceList()
		Expect(rst).To(Equal(RequestSuccess))
		Expect(devices).To(BeEmpty())
		wait(done)

		Eventually(c.CheckForDeviceUpdates, time.Second).Should(Equal(UpdateConnectionClosed))
		Expect(c.Connected()).To(BeFalse())
	})
})
