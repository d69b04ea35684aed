// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package client

import (
	"bytes"
	"errors"
	"io"
	"net"
	"time"

	"github.com/danjacques/goopenrgb/protocol"
)

// recvResult classifies the outcome of a frame-component read.
type recvResult int

const (
	recvOK recvResult = iota
	// recvClosed means the peer closed the connection, or the connection
	// was closed locally underneath the read.
	recvClosed
	// recvTimeout means the read deadline expired before the requested
	// bytes arrived.
	recvTimeout
	// recvFailed is any other read failure.
	recvFailed
)

// sendFrame writes one complete frame, header and body, as a single
// write call.
func (c *Client) sendFrame(t protocol.MessageType, deviceIndex uint32, body []byte) error {
	var buf bytes.Buffer
	buf.Grow(protocol.HeaderSize + len(body))
	if err := protocol.MakeHeader(t, deviceIndex, len(body)).Write(&buf); err != nil {
		return err
	}
	buf.Write(body)

	n, err := c.conn.Write(buf.Bytes())
	bytesSent.Add(float64(n))
	if err != nil {
		c.sysErr = err
		sendErrors.Inc()
		return err
	}
	framesSent.WithLabelValues(t.String()).Inc()
	return nil
}

// readFull fills buf from the connection, honoring whatever read deadline
// is currently armed. It returns the number of bytes actually read along
// with the classified result, and retains the raw error for
// LastSystemError.
func (c *Client) readFull(buf []byte) (int, recvResult) {
	n, err := io.ReadFull(c.conn, buf)
	bytesReceived.Add(float64(n))
	if err == nil {
		return n, recvOK
	}
	c.sysErr = err

	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF || err == io.ErrClosedPipe:
		return n, recvClosed
	default:
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return n, recvTimeout
		}
		if errors.Is(err, net.ErrClosed) {
			return n, recvClosed
		}
		return n, recvFailed
	}
}

// armTimeout sets the read deadline for one awaited read.
func (c *Client) armTimeout() error {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		c.sysErr = err
		return err
	}
	return nil
}

// probeTimeout is the deadline used for the notification probe. It
// cannot be an already-expired deadline: the runtime fails such reads
// before looking at the socket, so buffered bytes would never surface.
// A deadline one millisecond out returns buffered data immediately and
// otherwise degrades into a bounded, effectively non-blocking poll.
const probeTimeout = time.Millisecond

// armNonBlocking puts the connection into the probe's near-non-blocking
// read mode.
func (c *Client) armNonBlocking() error {
	if err := c.conn.SetReadDeadline(time.Now().Add(probeTimeout)); err != nil {
		c.sysErr = err
		return err
	}
	return nil
}

// restoreBlocking clears the read deadline, returning the connection to
// its resting blocking mode.
func (c *Client) restoreBlocking() error {
	if err := c.conn.SetReadDeadline(time.Time{}); err != nil {
		c.sysErr = err
		return err
	}
	return nil
}
