// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package slots

import (
	"math"
)

// BackoffAuthoringBlocksStrategy decides when block authoring should back off.
type BackoffAuthoringBlocksStrategy interface {
	ShouldBackoff(chainHeadNumber uint64, chainHeadSlot uint64,
		finalizedNumber uint64, slotNow uint64) bool
}

// BackoffAuthoringOnFinalizedHeadLagging backs off authoring when the
// unfinalized suffix of the chain grows too long.
type BackoffAuthoringOnFinalizedHeadLagging struct {
	// MaxInterval is the most slots to wait, regardless of finality delay.
	MaxInterval uint64
	// UnfinalizedSlack is the unfinalized length tolerated before backing off.
	UnfinalizedSlack uint64
	// AuthoringBias scales down the backoff growth rate.
	AuthoringBias uint64
}

// NewBackoffAuthoringOnFinalizedHeadLagging returns the strategy with the
// default parameters: 100 slots max interval, 50 blocks slack and bias 2.
func NewBackoffAuthoringOnFinalizedHeadLagging() *BackoffAuthoringOnFinalizedHeadLagging {
	return &BackoffAuthoringOnFinalizedHeadLagging{
		MaxInterval:      100,
		UnfinalizedSlack: 50,
		AuthoringBias:    2,
	}
}

// ShouldBackoff returns true if the current slot is not far enough ahead
// of the chain head slot given the finality lag.
func (b *BackoffAuthoringOnFinalizedHeadLagging) ShouldBackoff(chainHeadNumber, chainHeadSlot,
	finalizedNumber, slotNow uint64) bool {
	if slotNow <= chainHeadSlot {
		return false
	}

	bias := b.AuthoringBias
	if bias == 0 {
		bias = 1
	}

	unfinalized := saturatingSub(chainHeadNumber, finalizedNumber)
	interval := saturatingSub(unfinalized, b.UnfinalizedSlack) / bias
	if interval > b.MaxInterval {
		interval = b.MaxInterval
	}

	if slotNow <= saturatingAdd(chainHeadSlot, interval) {
		logger.Infof("backing off claiming new slot %d for block authorship: finality is lagging", slotNow)
		return true
	}
	return false
}

// NeverBackoff is a strategy which never backs off.
type NeverBackoff struct{}

// ShouldBackoff always returns false.
func (NeverBackoff) ShouldBackoff(_, _, _, _ uint64) bool { return false }

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
