// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package slots

import (
	"time"
)

const (
	// exponentialBackoffCap bounds the lenience to 2^7 slots.
	exponentialBackoffCap = 7
	// exponentialBackoffStep is the number of skipped slots per doubling.
	exponentialBackoffStep = 2
	// linearBackoffCap bounds the lenience to 20 slots.
	linearBackoffCap = 20
)

// SlotProportion is a portion of a slot in the range [0, 1].
type SlotProportion float32

// NewSlotProportion clamps the value given into [0, 1].
func NewSlotProportion(v float32) SlotProportion {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return SlotProportion(v)
	}
}

// Of returns the proportion of the duration given.
func (p SlotProportion) Of(d time.Duration) time.Duration {
	return time.Duration(float64(d) * float64(p))
}

// LenienceType is the strategy extending proposal time after skipped slots.
type LenienceType uint8

const (
	// LenienceLinear grows the lenience linearly with the skipped slots.
	LenienceLinear LenienceType = iota
	// LenienceExponential doubles the lenience every two skipped slots.
	LenienceExponential
)

func (l LenienceType) String() string {
	if l == LenienceLinear {
		return "linear"
	}
	return "exponential"
}

func skippedSlots(parentSlot, slot uint64) uint64 {
	next := parentSlot + 1
	if next == 0 || slot <= next {
		return 0
	}
	return slot - next
}

// SlotLenienceExponential returns the lenience for the slots skipped since
// the parent slot, doubling every two skipped slots up to 2^7 slot durations.
// It returns false if no slot was skipped.
func SlotLenienceExponential(parentSlot uint64, info SlotInfo) (time.Duration, bool) {
	skipped := skippedSlots(parentSlot, info.Slot)
	if skipped == 0 {
		return 0, false
	}

	lenience := skipped / exponentialBackoffStep
	if lenience > exponentialBackoffCap {
		lenience = exponentialBackoffCap
	}
	return time.Duration(1<<lenience) * info.Duration, true
}

// SlotLenienceLinear returns the lenience for the slots skipped since the
// parent slot, one slot duration per skipped slot up to 20.
// It returns false if no slot was skipped.
func SlotLenienceLinear(parentSlot uint64, info SlotInfo) (time.Duration, bool) {
	skipped := skippedSlots(parentSlot, info.Slot)
	if skipped == 0 {
		return 0, false
	}

	if skipped > linearBackoffCap {
		skipped = linearBackoffCap
	}
	return time.Duration(skipped) * info.Duration, true
}

// ProposingRemainingDuration returns the time available for proposing in
// the slot, extended by the lenience for skipped slots. If maxProportion
// is not nil the result never exceeds that portion of the slot duration.
func ProposingRemainingDuration(parentSlot *uint64, info SlotInfo, proportion SlotProportion,
	maxProportion *SlotProportion, lenienceType LenienceType) time.Duration {
	return proposingRemainingDuration(parentSlot, info, proportion, maxProportion, lenienceType, time.Now())
}

func proposingRemainingDuration(parentSlot *uint64, info SlotInfo, proportion SlotProportion,
	maxProportion *SlotProportion, lenienceType LenienceType, now time.Time) time.Duration {
	proposingDuration := proportion.Of(info.Duration)

	slotRemaining := info.EndsAt.Sub(now)
	if slotRemaining < 0 {
		slotRemaining = 0
	}
	if slotRemaining < proposingDuration {
		proposingDuration = slotRemaining
	}

	if info.ChainHead == nil || info.ChainHead.Number == 0 || parentSlot == nil {
		return proposingDuration
	}

	var (
		lenience time.Duration
		ok       bool
	)
	switch lenienceType {
	case LenienceLinear:
		lenience, ok = SlotLenienceLinear(*parentSlot, info)
	default:
		lenience, ok = SlotLenienceExponential(*parentSlot, info)
	}
	if !ok {
		return proposingDuration
	}

	lenient := proposingDuration + proportion.Of(lenience)
	if maxProportion != nil {
		if maxDuration := maxProportion.Of(info.Duration); lenient > maxDuration {
			lenient = maxDuration
		}
	}

	logger.Debugf("no block for %d slots, applying %s lenience, total proposing duration: %s",
		skippedSlots(*parentSlot, info.Slot), lenienceType, lenient)
	return lenient
}
