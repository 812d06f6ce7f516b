// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trigger

import (
	"time"
)

const (
	loadHistoryWindow      = 10 * time.Second
	loadRecomputeInterval  = 500 * time.Millisecond
	defaultLoadHistorySize = 10
)

// LoadTracker estimates the transactions per second rate from
// a bounded history of arrival timestamps.
// It is not thread safe; the controller serialises access to it.
type LoadTracker struct {
	history         []time.Time
	maxHistorySize  int
	currentTPS      float64
	lastCalculation time.Time
	now             func() time.Time
}

// NewLoadTracker returns a tracker keeping at most maxHistorySize timestamps.
func NewLoadTracker(maxHistorySize int) *LoadTracker {
	return newLoadTracker(maxHistorySize, time.Now)
}

func newLoadTracker(maxHistorySize int, now func() time.Time) *LoadTracker {
	if maxHistorySize <= 0 {
		maxHistorySize = defaultLoadHistorySize
	}
	return &LoadTracker{
		history:         make([]time.Time, 0, maxHistorySize+1),
		maxHistorySize:  maxHistorySize,
		lastCalculation: now(),
		now:             now,
	}
}

// RecordTransaction records an arrival at the current time and returns
// the current estimate, recomputed at most every 500ms.
func (t *LoadTracker) RecordTransaction() (tps float64) {
	now := t.now()
	t.history = append(t.history, now)

	cutoff := now.Add(-loadHistoryWindow)
	firstKept := 0
	for firstKept < len(t.history) && !t.history[firstKept].After(cutoff) {
		firstKept++
	}
	if overflow := len(t.history) - firstKept - t.maxHistorySize; overflow > 0 {
		firstKept += overflow
	}
	if firstKept > 0 {
		t.history = append(t.history[:0], t.history[firstKept:]...)
	}

	if now.Sub(t.lastCalculation) > loadRecomputeInterval {
		t.currentTPS = t.calculateTPS(now)
		t.lastCalculation = now
	}

	return t.currentTPS
}

// TPS returns the cached estimate.
func (t *LoadTracker) TPS() float64 {
	return t.currentTPS
}

func (t *LoadTracker) calculateTPS(now time.Time) float64 {
	if len(t.history) < 2 {
		return 0
	}

	elapsed := now.Sub(t.history[0]).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(len(t.history)) / elapsed
}
