// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package client

import (
	"bytes"

	"github.com/danjacques/goopenrgb/protocol"
)

// CheckForDeviceUpdates probes for a pending device-list-updated
// notification without blocking.
//
// If the freshness bit is already set the answer is known and the socket
// is not touched at all. Otherwise the socket is flipped into
// non-blocking read mode, one header-sized read is attempted, and the
// socket is returned to blocking mode before the result is reported.
//
// An unsolicited frame that is not a notification cannot be handled: its
// header bytes are already consumed and the stream cannot be rejoined,
// so the session is torn down and UnexpectedMessage is returned. The
// same applies to CantRestoreSocket: a connection stuck in non-blocking
// mode would corrupt every later operation, so it is closed instead.
func (c *Client) CheckForDeviceUpdates() UpdateStatus {
	if c.conn == nil {
		return UpdateConnectionClosed
	}
	if c.outOfDate {
		return OutOfDate
	}

	if err := c.armNonBlocking(); err != nil {
		return UpdateOtherError
	}

	hdrBuf := make([]byte, protocol.HeaderSize)
	n, res := c.readFull(hdrBuf)

	var result UpdateStatus
	switch res {
	case recvTimeout:
		if n > 0 {
			// A sliver of a frame arrived. The rest may never come, and a
			// partially consumed header cannot be replayed.
			c.logger().Warnf("partial frame header (%d bytes) on idle connection", n)
			c.teardown()
			return UpdateOtherError
		}
		result = UpToDate

	case recvClosed:
		c.teardown()
		return UpdateConnectionClosed

	case recvFailed:
		result = UpdateOtherError

	case recvOK:
		h, err := protocol.ReadHeader(bytes.NewReader(hdrBuf))
		if err != nil {
			c.logger().Warnf("garbage on idle connection: %s", err)
			c.teardown()
			return UpdateOtherError
		}
		framesReceived.WithLabelValues(h.MessageType().String()).Inc()
		if h.MessageType() != protocol.DeviceListUpdated {
			c.logger().Warnf("unsolicited %s frame on idle connection", h.MessageType())
			c.teardown()
			return UnexpectedMessage
		}
		notifications.Inc()
		c.outOfDate = true
		result = OutOfDate
	}

	if err := c.restoreBlocking(); err != nil {
		c.teardown()
		return CantRestoreSocket
	}
	return result
}
