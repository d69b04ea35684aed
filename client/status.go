// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package client

import (
	"fmt"
)

// ConnectStatus is the result of a Connect call.
type ConnectStatus int

const (
	// ConnectSuccess means the session reached the ready state.
	ConnectSuccess ConnectStatus = iota
	// AlreadyConnected means the client already holds a live connection.
	AlreadyConnected
	// HostNotResolved means the host name did not resolve to an address.
	HostNotResolved
	// ConnectFailed means the TCP connection could not be established.
	ConnectFailed
	// RequestVersionFailed means the protocol version handshake failed.
	RequestVersionFailed
	// VersionNotSupported means the server speaks a protocol this client
	// cannot use (a version-less legacy server).
	VersionNotSupported
	// SendNameFailed means the client-name announcement could not be sent.
	SendNameFailed
	// ConnectOtherError means an OS-level failure not covered above;
	// LastSystemError has the detail.
	ConnectOtherError
	// ConnectUnexpectedError means an internal fault, not a protocol or
	// system failure.
	ConnectUnexpectedError
)

func (s ConnectStatus) String() string {
	switch s {
	case ConnectSuccess:
		return "Success"
	case AlreadyConnected:
		return "AlreadyConnected"
	case HostNotResolved:
		return "HostNotResolved"
	case ConnectFailed:
		return "ConnectFailed"
	case RequestVersionFailed:
		return "RequestVersionFailed"
	case VersionNotSupported:
		return "VersionNotSupported"
	case SendNameFailed:
		return "SendNameFailed"
	case ConnectOtherError:
		return "OtherError"
	case ConnectUnexpectedError:
		return "UnexpectedError"
	default:
		return fmt.Sprintf("ConnectStatus(%d)", int(s))
	}
}

// RequestStatus is the result of any post-connect operation.
type RequestStatus int

const (
	// RequestSuccess means the operation completed.
	RequestSuccess RequestStatus = iota
	// NotConnected means the session is disconnected; no I/O was
	// attempted.
	NotConnected
	// SendRequestFailed means the request frame could not be written.
	SendRequestFailed
	// ConnectionClosed means the server closed the connection.
	ConnectionClosed
	// NoReply means no reply arrived within the receive timeout. The
	// inbound stream position is unknown afterwards, so the client closes
	// the connection.
	NoReply
	// ReceiveError means a read failed for a reason other than closure or
	// timeout; LastSystemError has the detail.
	ReceiveError
	// InvalidReply means a frame arrived that does not answer the request:
	// wrong magic, wrong type, wrong device index, or an undecodable body.
	InvalidReply
	// RequestUnexpectedError means an internal fault, not a protocol or
	// system failure.
	RequestUnexpectedError
)

func (s RequestStatus) String() string {
	switch s {
	case RequestSuccess:
		return "Success"
	case NotConnected:
		return "NotConnected"
	case SendRequestFailed:
		return "SendRequestFailed"
	case ConnectionClosed:
		return "ConnectionClosed"
	case NoReply:
		return "NoReply"
	case ReceiveError:
		return "ReceiveError"
	case InvalidReply:
		return "InvalidReply"
	case RequestUnexpectedError:
		return "UnexpectedError"
	default:
		return fmt.Sprintf("RequestStatus(%d)", int(s))
	}
}

// UpdateStatus is the result of a CheckForDeviceUpdates probe.
type UpdateStatus int

const (
	// UpToDate means no device-list change has been observed.
	UpToDate UpdateStatus = iota
	// OutOfDate means the server has announced a device-list change since
	// the last RequestDeviceList sweep began, or that no sweep has begun
	// since the connection was established.
	OutOfDate
	// UpdateConnectionClosed means the connection is gone.
	UpdateConnectionClosed
	// UnexpectedMessage means a frame other than a notification arrived
	// unsolicited. Its header bytes are consumed and cannot be replayed,
	// so the session is torn down.
	UnexpectedMessage
	// CantRestoreSocket means the socket could not be returned to
	// blocking mode after the probe; the session is torn down.
	CantRestoreSocket
	// UpdateOtherError means the probe failed for another reason;
	// LastSystemError has the detail.
	UpdateOtherError
)

func (s UpdateStatus) String() string {
	switch s {
	case UpToDate:
		return "UpToDate"
	case OutOfDate:
		return "OutOfDate"
	case UpdateConnectionClosed:
		return "ConnectionClosed"
	case UnexpectedMessage:
		return "UnexpectedMessage"
	case CantRestoreSocket:
		return "CantRestoreSocket"
	case UpdateOtherError:
		return "OtherError"
	default:
		return fmt.Sprintf("UpdateStatus(%d)", int(s))
	}
}
