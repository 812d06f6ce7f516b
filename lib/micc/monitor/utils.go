// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package monitor

import (
	"fmt"
	"time"
)

// Efficiency returns the ratio of blocks produced to slots seen.
func Efficiency(metrics Metrics) float64 {
	if metrics.SlotsSeen == 0 {
		return 0
	}
	return float64(metrics.BlocksProduced) / float64(metrics.SlotsSeen)
}

// AssessNetworkHealth derives the network health from the metrics.
func AssessNetworkHealth(metrics Metrics) NetworkHealth {
	efficiency := Efficiency(metrics)
	switch {
	case efficiency < 0.5:
		return Critical
	case efficiency < 0.8 || metrics.AnomaliesDetected > 10:
		return Degraded
	default:
		return Healthy
	}
}

// FormatDuration formats d as seconds with milliseconds, or as
// milliseconds only below one second.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	millis := int64((d % time.Second) / time.Millisecond)
	if secs > 0 {
		return fmt.Sprintf("%d.%03ds", secs, millis)
	}
	return fmt.Sprintf("%dms", millis)
}
