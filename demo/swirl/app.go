// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package swirl defines the logic for the "swirl" demo app.
//
// This app connects to an OpenRGB server, switches every device into its
// direct-control mode, and sweeps a hue rotation across all of their
// LEDs.
//
// This demonstrates how to connect, fetch the device list, watch for
// device list changes, and push colors to devices.
package swirl

import (
	"flag"
	"log"
	"time"

	"github.com/danjacques/goopenrgb/client"
	"github.com/danjacques/goopenrgb/protocol"
)

var (
	host = flag.String("host", "127.0.0.1", "OpenRGB server host.")
	port = flag.Int("port", protocol.DefaultPort, "OpenRGB server port.")
	fps  = flag.Int("fps", 30, "Color updates per second.")
)

// Main is the main entry point.
func Main() {
	flag.Parse()

	var c client.Client
	c.Name = "swirl demo"
	if st := c.Connect(*host, *port); st != client.ConnectSuccess {
		log.Fatalf("Couldn't connect to %s:%d: %s (%v)", *host, *port, st, c.LastSystemError())
	}
	defer c.Disconnect()

	devices, st := c.RequestDeviceList()
	if st != client.RequestSuccess {
		log.Fatalf("Couldn't fetch device list: %s", st)
	}
	for _, d := range devices {
		log.Printf("Found %s.", d)
		if st := c.SwitchToCustomMode(d); st != client.RequestSuccess {
			log.Fatalf("Couldn't switch %q to custom mode: %s", d.Name, st)
		}
	}

	tick := time.NewTicker(time.Second / time.Duration(*fps))
	defer tick.Stop()

	var hue float64
	for range tick.C {
		// Pick up hardware changes between frames.
		switch c.CheckForDeviceUpdates() {
		case client.OutOfDate:
			if devices, st = c.RequestDeviceList(); st != client.RequestSuccess {
				log.Fatalf("Couldn't refresh device list: %s", st)
			}
			log.Printf("Device list refreshed (%d devices).", len(devices))
		case client.UpToDate:
		default:
			log.Fatal("Connection lost.")
		}

		for _, d := range devices {
			if st := c.SetDeviceColor(d, hueColor(hue)); st != client.RequestSuccess {
				log.Fatalf("Couldn't update %q: %s", d.Name, st)
			}
		}
		hue += 1.0 / float64(*fps)
		if hue >= 1 {
			hue -= 1
		}
	}
}

// hueColor maps a hue in [0, 1) to a fully saturated color.
func hueColor(h float64) protocol.Color {
	seg := h * 6
	x := uint8(255 * (1 - abs(mod2(seg)-1)))
	switch int(seg) {
	case 0:
		return protocol.Color{Red: 255, Green: x}
	case 1:
		return protocol.Color{Red: x, Green: 255}
	case 2:
		return protocol.Color{Green: 255, Blue: x}
	case 3:
		return protocol.Color{Green: x, Blue: 255}
	case 4:
		return protocol.Color{Red: x, Blue: 255}
	default:
		return protocol.Color{Red: 255, Blue: x}
	}
}

func mod2(v float64) float64 {
	for v >= 2 {
		v -= 2
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
