// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package monitor

import (
	"fmt"
	"time"
)

// ExpectedBlockTime is the block time anomalies are measured against.
const ExpectedBlockTime = 500 * time.Millisecond

// NetworkHealth is the assessed health of block production.
type NetworkHealth uint8

const (
	// Unknown is the health before any assessment.
	Unknown NetworkHealth = iota
	// Healthy means blocks are produced as expected.
	Healthy
	// Degraded means slots are missed or anomalies accumulate.
	Degraded
	// Critical means block production stalled.
	Critical
)

func (h NetworkHealth) String() string {
	switch h {
	case Unknown:
		return "Unknown"
	case Healthy:
		return "Healthy"
	case Degraded:
		return "Degraded"
	case Critical:
		return "Critical"
	default:
		return fmt.Sprintf("NetworkHealth(%d)", uint8(h))
	}
}

// Config is the monitor configuration.
type Config struct {
	// MaxEmptySlots is the number of consecutive empty slots
	// reported as an anomaly.
	MaxEmptySlots uint32
	// BlockTimeVarianceThreshold is the tolerated relative deviation
	// from the expected block time.
	BlockTimeVarianceThreshold float64
	// StallThreshold is the time without blocks reported as a stall.
	StallThreshold time.Duration
	// DetailedLogging logs every slot and block.
	DetailedLogging bool
	// MetricsInterval is the minimum time between two metrics snapshots.
	MetricsInterval time.Duration
	// MaxMetricsHistory is the number of snapshots kept.
	MaxMetricsHistory int
}

// DefaultConfig returns the default monitor configuration.
func DefaultConfig() Config {
	return Config{
		MaxEmptySlots:              10,
		BlockTimeVarianceThreshold: 0.5,
		StallThreshold:             30 * time.Second,
		DetailedLogging:            true,
		MetricsInterval:            time.Minute,
		MaxMetricsHistory:          1440,
	}
}

// Metrics are the cumulative consensus metrics.
type Metrics struct {
	BlocksProduced    uint64
	SlotsSeen         uint64
	EmptySlots        uint64
	AverageBlockTime  time.Duration
	ForksDetected     uint64
	AnomaliesDetected uint64
	// LastBlockTime is zero until the first block.
	LastBlockTime    time.Time
	AuthoritiesCount uint32
	NetworkHealth    NetworkHealth
}

func newMetrics() Metrics {
	return Metrics{AverageBlockTime: ExpectedBlockTime}
}

// AnomalyKind is the kind of a security anomaly.
type AnomalyKind uint8

const (
	// EmptySlotSpike is too many consecutive empty slots.
	EmptySlotSpike AnomalyKind = iota
	// BlockTimeAnomaly is a block time far from the expected one.
	BlockTimeAnomaly
	// ForkDetected is several blocks seen for one slot.
	ForkDetected
	// AuthorityAnomaly is an unexpected authority count change.
	AuthorityAnomaly
	// ConsensusStall is no block for longer than the stall threshold.
	ConsensusStall
)

func (k AnomalyKind) String() string {
	switch k {
	case EmptySlotSpike:
		return "EmptySlotSpike"
	case BlockTimeAnomaly:
		return "BlockTimeAnomaly"
	case ForkDetected:
		return "ForkDetected"
	case AuthorityAnomaly:
		return "AuthorityAnomaly"
	case ConsensusStall:
		return "ConsensusStall"
	default:
		return fmt.Sprintf("AnomalyKind(%d)", uint8(k))
	}
}

// Anomaly is a detected security anomaly. Only the fields
// relevant to its kind are set.
type Anomaly struct {
	Kind AnomalyKind

	// EmptySlotSpike
	ConsecutiveEmpty uint32
	Threshold        uint32

	// BlockTimeAnomaly
	Observed          time.Duration
	Expected          time.Duration
	VarianceThreshold float64

	// ForkDetected and ConsensusStall
	Slot       uint64
	BlockCount uint32

	// AuthorityAnomaly
	ExpectedCount uint32
	ActualCount   uint32

	// ConsensusStall
	StallDuration time.Duration
	LastBlockSlot uint64
}

func (a Anomaly) String() string {
	switch a.Kind {
	case EmptySlotSpike:
		return fmt.Sprintf("%s{consecutive_empty: %d, threshold: %d}",
			a.Kind, a.ConsecutiveEmpty, a.Threshold)
	case BlockTimeAnomaly:
		return fmt.Sprintf("%s{observed: %s, expected: %s, variance_threshold: %.2f}",
			a.Kind, a.Observed, a.Expected, a.VarianceThreshold)
	case ForkDetected:
		return fmt.Sprintf("%s{slot: %d, block_count: %d}", a.Kind, a.Slot, a.BlockCount)
	case AuthorityAnomaly:
		return fmt.Sprintf("%s{expected: %d, actual: %d}", a.Kind, a.ExpectedCount, a.ActualCount)
	case ConsensusStall:
		return fmt.Sprintf("%s{duration: %s, last_block_slot: %d, current_slot: %d}",
			a.Kind, a.StallDuration, a.LastBlockSlot, a.Slot)
	default:
		return a.Kind.String()
	}
}
