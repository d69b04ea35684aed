// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package client

import (
	"bytes"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/danjacques/goopenrgb/protocol"
	"github.com/danjacques/goopenrgb/support/logging"
)

// DefaultTimeout is the receive timeout applied to a fresh connection.
// It can be changed per-session with SetTimeout.
const DefaultTimeout = 500 * time.Millisecond

// Client is a session against one OpenRGB server.
//
// The zero value is a disconnected client; call Connect (or ConnectUsing)
// to bring it up. A Client must not be used from more than one goroutine
// concurrently, and supports at most one outstanding request at a time.
type Client struct {
	// Name is the display name announced to the server during connect.
	// If empty, protocol.DefaultClientName is used.
	Name string

	// Logger, if not nil, is the logger that this client will use.
	Logger logging.L

	conn    net.Conn
	timeout time.Duration

	// version is the protocol version negotiated at connect.
	version uint32

	// outOfDate is set when a device-list-updated notification has been
	// observed or a connection is established, and cleared at the start of
	// a RequestDeviceList sweep and when the connection is torn down.
	outOfDate bool

	// sysErr is the most recent OS-level error, kept for diagnostics.
	sysErr error
}

// Connected returns whether the client currently holds a connection.
func (c *Client) Connected() bool { return c.conn != nil }

// NegotiatedVersion returns the protocol version in effect for this
// session. It is only meaningful while connected.
func (c *Client) NegotiatedVersion() uint32 { return c.version }

// LastSystemError returns the most recent OS-level error observed by the
// client, or nil. It is refined diagnostic context for the *OtherError,
// ReceiveError and similar statuses.
func (c *Client) LastSystemError() error { return c.sysErr }

func (c *Client) logger() logging.L { return logging.Must(c.Logger) }

// Connect dials the server and performs the session handshake: protocol
// version negotiation followed by the client-name announcement.
//
// On any failure the socket is closed before the status is returned, so
// the client is either fully connected or fully disconnected.
func (c *Client) Connect(host string, port int) ConnectStatus {
	if c.conn != nil {
		return AlreadyConnected
	}

	conn, err := net.Dial("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		c.sysErr = err
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return HostNotResolved
		}
		return ConnectFailed
	}
	return c.start(conn)
}

// ConnectUsing performs the session handshake over an already-established
// connection. It is for callers that need their own dialing (custom
// timeouts, proxies) and for tests; Connect is the common path.
//
// The Client takes ownership of conn regardless of the outcome: on
// failure conn is closed.
func (c *Client) ConnectUsing(conn net.Conn) ConnectStatus {
	if c.conn != nil {
		_ = conn.Close()
		return AlreadyConnected
	}
	return c.start(conn)
}

func (c *Client) start(conn net.Conn) ConnectStatus {
	c.conn = conn
	c.timeout = DefaultTimeout

	if err := c.sendFrame(protocol.RequestProtocolVersion, 0, protocol.VersionBody(protocol.MaxProtocolVersion)); err != nil {
		c.teardown()
		return RequestVersionFailed
	}
	_, body, st := c.awaitReply(protocol.ReplyProtocolVersion, 0)
	if st != RequestSuccess {
		c.teardown()
		return RequestVersionFailed
	}
	serverVersion, err := protocol.DecodeVersion(body)
	if err != nil {
		c.teardown()
		return RequestVersionFailed
	}
	if serverVersion == 0 {
		// A version-less legacy server; its record layouts predate the
		// handshake and cannot be decoded reliably.
		c.teardown()
		return VersionNotSupported
	}
	c.version = protocol.NegotiateVersion(serverVersion)

	if err := c.sendFrame(protocol.SetClientName, 0, protocol.ClientNameBody(c.clientName())); err != nil {
		c.teardown()
		return SendNameFailed
	}

	// Devices may have come and gone while we were away; the first device
	// list sweep starts from a stale assumption.
	c.outOfDate = true

	connects.Inc()
	c.logger().Infof("connected to %s (protocol version %d)", conn.RemoteAddr(), c.version)
	return ConnectSuccess
}

// Disconnect closes the connection. It is idempotent and reports whether
// a live connection was actually torn down.
func (c *Client) Disconnect() bool {
	if c.conn == nil {
		return false
	}
	c.logger().Infof("disconnecting from %s", c.conn.RemoteAddr())
	c.teardown()
	return true
}

// teardown closes and forgets the connection, returning the client to
// its disconnected state.
func (c *Client) teardown() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.version = 0
	c.outOfDate = false
}

// SetTimeout changes the receive timeout for subsequent operations. It
// reports whether the timeout was applied; it is only valid while
// connected.
func (c *Client) SetTimeout(d time.Duration) bool {
	if c.conn == nil {
		return false
	}
	c.timeout = d
	return true
}

func (c *Client) clientName() string {
	if c.Name != "" {
		return c.Name
	}
	return protocol.DefaultClientName
}

// awaitReply reads frames until one of type expected arrives, and
// returns its header and body.
//
// Device-list-updated notifications are legitimate at any point in the
// inbound stream, including between a request and its reply; they are
// absorbed here (setting the freshness bit) and the read continues. Any
// other unexpected frame is a protocol violation and yields InvalidReply.
//
// A timeout leaves the inbound stream at an unknown position, so NoReply
// tears the connection down rather than leaving a desynchronized session
// behind. ConnectionClosed likewise tears down.
func (c *Client) awaitReply(expected protocol.MessageType, deviceIndex uint32) (*protocol.Header, []byte, RequestStatus) {
	hdrBuf := make([]byte, protocol.HeaderSize)
	for {
		if err := c.armTimeout(); err != nil {
			c.teardown()
			return nil, nil, ReceiveError
		}
		if _, res := c.readFull(hdrBuf); res != recvOK {
			return nil, nil, c.failRead(res)
		}

		h, err := protocol.ReadHeader(bytes.NewReader(hdrBuf))
		if err != nil {
			// The stream cannot be resynchronized past garbage.
			c.logger().Warnf("dropping connection: %s", err)
			c.teardown()
			return nil, nil, InvalidReply
		}
		framesReceived.WithLabelValues(h.MessageType().String()).Inc()

		if h.MessageType() == protocol.DeviceListUpdated {
			notifications.Inc()
			c.outOfDate = true
			c.logger().Debug("device list update noted while awaiting reply")
			continue
		}
		if h.MessageType() != expected || h.DeviceIndex != deviceIndex {
			c.logger().Warnf("expected %s reply for device %d, got %s for device %d",
				expected, deviceIndex, h.MessageType(), h.DeviceIndex)
			// Drain the body so the stream is left at a frame boundary. A
			// failed drain leaves it desynchronized, which is its own
			// failure, not an InvalidReply.
			if h.BodySize > 0 {
				if err := c.armTimeout(); err != nil {
					c.teardown()
					return nil, nil, ReceiveError
				}
				if _, res := c.readFull(make([]byte, h.BodySize)); res != recvOK {
					return nil, nil, c.failRead(res)
				}
			}
			_ = c.restoreBlocking()
			return nil, nil, InvalidReply
		}

		var body []byte
		if h.BodySize > 0 {
			body = make([]byte, h.BodySize)
			if err := c.armTimeout(); err != nil {
				c.teardown()
				return nil, nil, ReceiveError
			}
			if _, res := c.readFull(body); res != recvOK {
				return nil, nil, c.failRead(res)
			}
		}

		// The connection rests in blocking mode between operations.
		_ = c.restoreBlocking()
		return h, body, RequestSuccess
	}
}

// failRead maps a failed read to its request status, tearing the session
// down where the stream can no longer be trusted.
func (c *Client) failRead(res recvResult) RequestStatus {
	switch res {
	case recvClosed:
		c.teardown()
		return ConnectionClosed
	case recvTimeout:
		// Bytes of the awaited frame may still be in flight; there is no
		// way to rejoin the stream at a frame boundary.
		c.teardown()
		return NoReply
	default:
		return ReceiveError
	}
}

// request performs one complete request/reply exchange.
func (c *Client) request(t protocol.MessageType, deviceIndex uint32, body []byte) (*protocol.Header, []byte, RequestStatus) {
	if c.conn == nil {
		return nil, nil, NotConnected
	}
	if err := c.sendFrame(t, deviceIndex, body); err != nil {
		return nil, nil, SendRequestFailed
	}
	return c.awaitReply(t, deviceIndex)
}

// send performs a fire-and-forget operation: the server does not reply,
// so success means the frame was written.
func (c *Client) send(t protocol.MessageType, deviceIndex uint32, body []byte) RequestStatus {
	if c.conn == nil {
		return NotConnected
	}
	if err := c.sendFrame(t, deviceIndex, body); err != nil {
		return SendRequestFailed
	}
	return RequestSuccess
}
