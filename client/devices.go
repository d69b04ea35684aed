// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package client

import (
	"github.com/danjacques/goopenrgb/protocol"
)

// RequestDeviceCount asks the server how many devices it exposes.
func (c *Client) RequestDeviceCount() (uint32, RequestStatus) {
	_, body, st := c.request(protocol.RequestControllerCount, 0, nil)
	if st != RequestSuccess {
		return 0, st
	}
	count, err := protocol.DecodeControllerCount(body)
	if err != nil {
		c.logger().Warnf("bad controller count reply: %s", err)
		return 0, InvalidReply
	}
	return count, RequestSuccess
}

// RequestDeviceInfo fetches the full record of the device at the given
// index.
func (c *Client) RequestDeviceInfo(deviceIndex uint32) (*protocol.Device, RequestStatus) {
	_, body, st := c.request(protocol.RequestControllerData, deviceIndex, protocol.ControllerDataBody(c.version))
	if st != RequestSuccess {
		return nil, st
	}
	d, err := protocol.ReadDevice(body, c.version, deviceIndex)
	if err != nil {
		c.logger().Warnf("bad controller data reply for device %d: %s", deviceIndex, err)
		return nil, InvalidReply
	}
	return d, RequestSuccess
}

// RequestDeviceList fetches a consistent snapshot of every device.
//
// The sweep is count-then-records: one RequestControllerCount exchange
// followed by one RequestControllerData exchange per device. If the
// server announces a device-list update at any point during the sweep,
// records already in hand may describe the pre-update world, so the
// accumulated list is discarded and the sweep restarts from the count.
// The freshness bit is cleared at the start of each attempt and the
// sweep completes only when a full pass ends with the bit still clear.
func (c *Client) RequestDeviceList() (protocol.DeviceList, RequestStatus) {
	if c.conn == nil {
		return nil, NotConnected
	}

	for {
		c.outOfDate = false

		count, st := c.RequestDeviceCount()
		if st != RequestSuccess {
			return nil, st
		}
		if c.outOfDate {
			c.logger().Debug("device list changed during count, restarting sweep")
			continue
		}

		devices := make(protocol.DeviceList, 0, count)
		stale := false
		for i := uint32(0); i < count; i++ {
			d, st := c.RequestDeviceInfo(i)
			if st != RequestSuccess {
				return nil, st
			}
			if c.outOfDate {
				stale = true
				break
			}
			devices = append(devices, d)
		}
		if stale {
			c.logger().Debug("device list changed mid-sweep, restarting")
			continue
		}
		return devices, RequestSuccess
	}
}
