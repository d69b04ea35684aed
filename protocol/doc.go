// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package protocol implements the OpenRGB network wire protocol.
//
// Every frame on the wire is a fixed 16-byte Header followed by a
// message-type-specific body. All multi-byte integers are little-endian.
// Several record layouts depend on the protocol version negotiated during
// the connection handshake; encode and decode functions that touch such
// records take the negotiated version as a parameter.
//
// The package deals purely in bytes and typed records; session management
// and socket handling live in the client package.
package protocol
