// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package client

import (
	"github.com/danjacques/goopenrgb/protocol"
)

// The color and zone operations are fire-and-forget: the server sends no
// acknowledgement, so RequestSuccess means the frame was written in full.

// SetDeviceColor paints every LED on the device the same color.
func (c *Client) SetDeviceColor(d *protocol.Device, color protocol.Color) RequestStatus {
	colors := make([]protocol.Color, len(d.LEDs))
	for i := range colors {
		colors[i] = color
	}
	return c.UpdateLEDs(d.Index, colors)
}

// UpdateLEDs sets the color of every LED on a device. colors must hold
// one entry per device LED, in device LED order.
func (c *Client) UpdateLEDs(deviceIndex uint32, colors []protocol.Color) RequestStatus {
	return c.send(protocol.UpdateLEDs, deviceIndex, protocol.UpdateLEDsBody(colors))
}

// SetZoneColor paints every LED in the zone the same color.
func (c *Client) SetZoneColor(z *protocol.Zone, color protocol.Color) RequestStatus {
	colors := make([]protocol.Color, z.LEDCount)
	for i := range colors {
		colors[i] = color
	}
	return c.UpdateZoneLEDs(z.DeviceIndex, z.Index, colors)
}

// UpdateZoneLEDs sets the color of every LED in one zone. colors must
// hold one entry per zone LED, in zone LED order.
func (c *Client) UpdateZoneLEDs(deviceIndex, zoneIndex uint32, colors []protocol.Color) RequestStatus {
	return c.send(protocol.UpdateZoneLEDs, deviceIndex, protocol.UpdateZoneLEDsBody(zoneIndex, colors))
}

// SetLEDColor sets the color of a single LED.
func (c *Client) SetLEDColor(led *protocol.LED, color protocol.Color) RequestStatus {
	return c.send(protocol.UpdateSingleLED, led.DeviceIndex, protocol.UpdateSingleLEDBody(led.Index, color))
}

// SetZoneSize resizes a zone to newSize LEDs. Only zones whose reported
// minimum and maximum differ are resizable; the server ignores the rest.
func (c *Client) SetZoneSize(z *protocol.Zone, newSize uint32) RequestStatus {
	return c.send(protocol.ResizeZone, z.DeviceIndex, protocol.ResizeZoneBody(z.Index, newSize))
}
