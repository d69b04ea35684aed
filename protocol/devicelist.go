// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

// DeviceList is an ordered snapshot of every device the server exposes.
type DeviceList []*Device

// FindByName returns the first device whose name equals name, or nil if
// no device matches.
func (dl DeviceList) FindByName(name string) *Device {
	for _, d := range dl {
		if d.Name == name {
			return d
		}
	}
	return nil
}
