// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package client

import (
	"github.com/danjacques/goopenrgb/protocol"
)

// RequestProfileList fetches the names of the profiles saved on the
// server.
func (c *Client) RequestProfileList() ([]string, RequestStatus) {
	_, body, st := c.request(protocol.RequestProfileList, 0, nil)
	if st != RequestSuccess {
		return nil, st
	}
	names, err := protocol.DecodeProfileList(body)
	if err != nil {
		c.logger().Warnf("bad profile list reply: %s", err)
		return nil, InvalidReply
	}
	return names, RequestSuccess
}

// SaveProfile snapshots the current state of every device under the
// given profile name, replacing any existing profile with that name.
func (c *Client) SaveProfile(name string) RequestStatus {
	return c.send(protocol.RequestSaveProfile, 0, protocol.ProfileNameBody(name))
}

// LoadProfile applies a previously saved profile.
func (c *Client) LoadProfile(name string) RequestStatus {
	return c.send(protocol.RequestLoadProfile, 0, protocol.ProfileNameBody(name))
}

// DeleteProfile removes a previously saved profile.
func (c *Client) DeleteProfile(name string) RequestStatus {
	return c.send(protocol.RequestDeleteProfile, 0, protocol.ProfileNameBody(name))
}
