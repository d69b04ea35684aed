// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package client

import (
	"github.com/danjacques/goopenrgb/protocol"
)

// SwitchToCustomMode puts the device into its direct-control mode, the
// mode that makes the per-LED color operations visible.
func (c *Client) SwitchToCustomMode(d *protocol.Device) RequestStatus {
	return c.send(protocol.SetCustomMode, d.Index, nil)
}

// ChangeMode makes mode the device's active mode, with whatever
// parameter values (speed, direction, colors) the caller has set on it.
func (c *Client) ChangeMode(m *protocol.Mode) RequestStatus {
	return c.send(protocol.UpdateMode, m.DeviceIndex, protocol.ModeBody(m, c.version))
}

// SaveMode is ChangeMode plus persistence: devices that support saving
// will keep the mode across power cycles.
func (c *Client) SaveMode(m *protocol.Mode) RequestStatus {
	return c.send(protocol.SaveMode, m.DeviceIndex, protocol.ModeBody(m, c.version))
}
