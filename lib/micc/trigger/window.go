// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trigger

import (
	"fmt"
	"time"
)

const priorityShrinkLimit = 100 * time.Millisecond

// CollectionWindow is a bounded wait for batching incoming transactions.
// Its timer is a deadline, so expiry is checked without blocking.
type CollectionWindow struct {
	startedAt time.Time
	duration  time.Duration
	deadline  time.Time
	// initialTxCount is set once at creation and is not updated
	// when transactions leave the pool.
	initialTxCount    int
	highestPriority   *uint64
	networkLoad       float64
	priorityTriggered bool
	now               func() time.Time
}

// NewCollectionWindow creates a window whose duration is derived from
// the configuration, the network load and the highest priority seen.
func NewCollectionWindow(cfg CollectionConfig, initialTxCount int,
	highestPriority *uint64, networkLoad float64, priorityTriggered bool) *CollectionWindow {
	return newCollectionWindow(cfg, initialTxCount, highestPriority, networkLoad, priorityTriggered, time.Now)
}

func newCollectionWindow(cfg CollectionConfig, initialTxCount int, highestPriority *uint64,
	networkLoad float64, priorityTriggered bool, now func() time.Time) *CollectionWindow {
	duration := adaptiveDuration(cfg, networkLoad, highestPriority, priorityTriggered)

	var priority *uint64
	if highestPriority != nil {
		p := *highestPriority
		priority = &p
	}

	startedAt := now()
	logger.Debugf("creating collection window: duration=%s tx count=%d priority=%s load=%.2f priority triggered=%t",
		duration, initialTxCount, formatPriority(priority), networkLoad, priorityTriggered)

	return &CollectionWindow{
		startedAt:         startedAt,
		duration:          duration,
		deadline:          startedAt.Add(duration),
		initialTxCount:    initialTxCount,
		highestPriority:   priority,
		networkLoad:       networkLoad,
		priorityTriggered: priorityTriggered,
		now:               now,
	}
}

// newFixedWindow creates a window with a precomputed duration.
func newFixedWindow(duration time.Duration, initialTxCount int,
	highestPriority *uint64, now func() time.Time) *CollectionWindow {
	startedAt := now()
	return &CollectionWindow{
		startedAt:       startedAt,
		duration:        duration,
		deadline:        startedAt.Add(duration),
		initialTxCount:  initialTxCount,
		highestPriority: highestPriority,
		now:             now,
	}
}

func adaptiveDuration(cfg CollectionConfig, networkLoad float64,
	highestPriority *uint64, priorityTriggered bool) time.Duration {
	base := (cfg.MinCollectionTime + cfg.MaxCollectionTime) / 2
	if priorityTriggered {
		base = cfg.MinCollectionTime
	}

	if !cfg.EnableAdaptiveTiming {
		return cfg.clamp(base)
	}

	var loadFactor float64
	switch {
	case networkLoad > 5.0:
		loadFactor = 0.7
	case networkLoad > 2.0:
		loadFactor = 0.85
	case networkLoad < 0.5:
		loadFactor = 1.3
	default:
		loadFactor = 1.0
	}

	priorityFactor := 1.0
	if highestPriority != nil {
		switch {
		case *highestPriority >= cfg.PriorityThreshold:
			priorityFactor = 0.1
		case *highestPriority > cfg.PriorityThreshold/2:
			priorityFactor = 0.5
		}
	}

	adjusted := time.Duration(float64(base) * loadFactor * priorityFactor)
	return cfg.clamp(adjusted)
}

// Duration returns the duration computed at creation.
func (w *CollectionWindow) Duration() time.Duration { return w.duration }

// InitialTxCount returns the pending count when the window was opened.
func (w *CollectionWindow) InitialTxCount() int { return w.initialTxCount }

// HighestPriority returns the highest priority seen by the window, if any.
func (w *CollectionWindow) HighestPriority() (priority uint64, ok bool) {
	if w.highestPriority == nil {
		return 0, false
	}
	return *w.highestPriority, true
}

// NetworkLoad returns the load the window was sized with.
func (w *CollectionWindow) NetworkLoad() float64 { return w.networkLoad }

// PriorityTriggered returns true if a priority transaction opened the window.
func (w *CollectionWindow) PriorityTriggered() bool { return w.priorityTriggered }

// Elapsed returns the time since the window was opened.
func (w *CollectionWindow) Elapsed() time.Duration {
	return w.now().Sub(w.startedAt)
}

// Remaining returns the time left before the window fires.
func (w *CollectionWindow) Remaining() time.Duration {
	remaining := w.deadline.Sub(w.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsExpired returns true once the window timer has fired.
func (w *CollectionWindow) IsExpired() bool {
	return !w.now().Before(w.deadline)
}

// UpdatePriority records a new transaction priority. A priority at or
// above the threshold shrinks the remaining time to at most 100ms.
func (w *CollectionWindow) UpdatePriority(priority uint64, cfg CollectionConfig) {
	if w.highestPriority == nil {
		w.highestPriority = &priority
		return
	}

	if priority <= *w.highestPriority {
		return
	}
	w.highestPriority = &priority

	if priority < cfg.PriorityThreshold {
		return
	}

	remaining := w.duration - w.Elapsed()
	if remaining < 0 {
		remaining = 0
	}
	if remaining > priorityShrinkLimit {
		remaining = priorityShrinkLimit
	}
	w.deadline = w.now().Add(remaining)
	logger.Debugf("shortened collection window for high priority transaction: remaining=%s", remaining)
}

func formatPriority(p *uint64) string {
	if p == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *p)
}
