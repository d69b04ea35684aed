// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package client

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	connects = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "openrgb_client_connects",
		Help: "Count of completed session handshakes.",
	})

	framesSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "openrgb_client_frames_sent",
		Help: "Count of frames sent, by message type.",
	},
		[]string{"type"})

	framesReceived = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "openrgb_client_frames_received",
		Help: "Count of frames received, by message type.",
	},
		[]string{"type"})

	notifications = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "openrgb_client_device_list_notifications",
		Help: "Count of device-list-updated notifications observed.",
	})

	bytesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "openrgb_client_sent_bytes",
		Help: "Count of bytes written to the server.",
	})

	bytesReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "openrgb_client_received_bytes",
		Help: "Count of bytes read from the server.",
	})

	sendErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "openrgb_client_send_errors",
		Help: "Count of errors encountered writing frames.",
	})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		connects,
		framesSent,
		framesReceived,
		notifications,
		bytesSent,
		bytesReceived,
		sendErrors,
	)
}
