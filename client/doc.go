// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package client implements a session against an OpenRGB server.
//
// A Client owns one TCP connection and drives it synchronously: it keeps
// at most one request outstanding, matches each reply to the request that
// produced it, and absorbs the server's unsolicited device-list-updated
// notifications wherever they appear in the inbound stream.
//
// All public operations report failure through status values rather than
// errors; see ConnectStatus, RequestStatus and UpdateStatus. The
// underlying OS-level error, when there is one, is retained and can be
// fetched with LastSystemError.
//
// A Client is not safe for concurrent use. Operations block the caller
// until they complete or the receive timeout expires.
package client
