// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package slots

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var errLaggingSlot = errors.New("cannot issue a slot lower than the latest one")

// timeUntilNextSlot returns the time from now until the next slot boundary.
func timeUntilNextSlot(now time.Time, slotDuration time.Duration) time.Duration {
	if slotDuration <= 0 {
		return 0
	}
	nowNanos := now.UnixNano()
	durationNanos := slotDuration.Nanoseconds()
	nextSlot := nowNanos/durationNanos + 1
	return time.Duration(nextSlot*durationNanos - nowNanos)
}

// SlotStartTime returns the wall time at which the slot starts.
func SlotStartTime(slot uint64, slotDuration time.Duration) time.Time {
	return time.Unix(0, int64(slot)*slotDuration.Nanoseconds())
}

// Clock converts wall time to slots and never issues a slot lower
// than the last one it issued.
type Clock struct {
	slotDuration  time.Duration
	allowMultiple bool

	mutex    sync.Mutex
	lastSlot *uint64
	now      func() time.Time
}

// NewClock returns a clock. If allowMultiple is true, the same slot
// can be issued more than once.
func NewClock(slotDuration time.Duration, allowMultiple bool) *Clock {
	return &Clock{
		slotDuration:  slotDuration,
		allowMultiple: allowMultiple,
		now:           time.Now,
	}
}

// SlotDuration returns the slot duration.
func (c *Clock) SlotDuration() time.Duration {
	return c.slotDuration
}

// CurrentSlot returns the slot for the current wall time.
func (c *Clock) CurrentSlot() uint64 {
	return c.slotAt(c.now())
}

func (c *Clock) slotAt(t time.Time) uint64 {
	return uint64(t.UnixNano()) / uint64(c.slotDuration.Nanoseconds())
}

// NextSlot waits for the next slot boundary and issues that slot.
func (c *Clock) NextSlot(ctx context.Context) (slot uint64, timestamp time.Time, err error) {
	if err := c.sleep(ctx, timeUntilNextSlot(c.now(), c.slotDuration)); err != nil {
		return 0, time.Time{}, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.issue(c.now(), false)
}

// Slot issues the current slot. If the current slot was already issued
// and multiple blocks per slot are not allowed, it waits for the next one.
func (c *Clock) Slot(ctx context.Context) (slot uint64, timestamp time.Time, err error) {
	c.mutex.Lock()
	now := c.now()
	current := c.slotAt(now)
	if c.lastSlot == nil || current > *c.lastSlot || (current == *c.lastSlot && c.allowMultiple) {
		defer c.mutex.Unlock()
		return c.issue(now, c.allowMultiple)
	}
	if current < *c.lastSlot {
		last := *c.lastSlot
		c.mutex.Unlock()
		return 0, time.Time{}, fmt.Errorf("%w: slot %d, last issued %d", errLaggingSlot, current, last)
	}
	c.mutex.Unlock()

	logger.Debugf("slot %d already authored, waiting for the next slot", current)
	return c.NextSlot(ctx)
}

func (c *Clock) issue(now time.Time, allowEqual bool) (uint64, time.Time, error) {
	slot := c.slotAt(now)
	if c.lastSlot != nil {
		if slot < *c.lastSlot || (slot == *c.lastSlot && !allowEqual) {
			return 0, time.Time{}, fmt.Errorf("%w: slot %d, last issued %d", errLaggingSlot, slot, *c.lastSlot)
		}
	}
	c.lastSlot = &slot
	return slot, now, nil
}

func (c *Clock) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
