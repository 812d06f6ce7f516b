// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trigger

import (
	"sync"
	"time"

	"github.com/ChainSafe/micc/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "trigger"))

const baselineWindowDuration = time.Second

// Controller turns transaction pool events into block production
// triggers. It owns at most one collection window at a time.
// It is safe for concurrent use.
type Controller struct {
	cfg Config

	mutex         sync.Mutex
	window        *CollectionWindow
	pending       int
	emptyDeadline time.Time
	lastBlockTime time.Time
	tracker       *LoadTracker
	now           func() time.Time
}

// NewController creates a controller with the configuration given.
func NewController(cfg Config) *Controller {
	return newController(cfg, time.Now)
}

func newController(cfg Config, now func() time.Time) *Controller {
	c := &Controller{
		cfg:           cfg,
		lastBlockTime: now(),
		now:           now,
	}
	if cfg.Strategy == StrategyAdaptive {
		c.tracker = newLoadTracker(cfg.TransactionRateHistorySize, now)
	}
	c.rearmEmptyBlockTimer()
	return c
}

// Config returns the controller configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// HandleEvent applies a pool event and returns the resulting trigger.
func (c *Controller) HandleEvent(event PoolEvent) Trigger {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	switch event.Kind {
	case TransactionAdded:
		tps := c.recordLoad()
		logger.Tracef("transaction added, current TPS: %.2f", tps)
		return None
	case HighPriorityTransactionAdded:
		return c.handleHighPriority(event.Priority)
	case PoolReady:
		return c.handlePoolReady(event.Count, event.HighestPriority)
	case PoolEmpty:
		c.pending = 0
		if c.window != nil {
			logger.Debug("pool became empty, cancelling collection window")
			c.window = nil
		}
		return None
	case TransactionRemoved:
		return None
	case NetworkLoad:
		logger.Tracef("network load update: %.2f TPS", event.Load)
		return None
	default:
		logger.Warnf("unknown pool event kind %s", event.Kind)
		return None
	}
}

func (c *Controller) handleHighPriority(priority uint64) Trigger {
	tps := c.recordLoad()
	threshold := c.cfg.Collection.PriorityThreshold
	logger.Debugf("high priority transaction added: priority=%d TPS=%.2f", priority, tps)

	if priority >= threshold {
		logger.Infof("producing immediately for very high priority transaction: %d", priority)
		c.window = nil
		return ProduceImmediately
	}

	if c.window != nil {
		c.window.UpdatePriority(priority, c.cfg.Collection)
		return None
	}

	// the fast track only opens shortened windows below the threshold
	if !c.cfg.EnablePriorityFastTrack || c.cfg.Strategy == StrategyBaseline {
		return None
	}

	c.window = newCollectionWindow(c.cfg.Collection, c.pending, &priority, tps, true, c.now)
	return StartCollectionWindow
}

func (c *Controller) handlePoolReady(count int, highestPriority *uint64) Trigger {
	tps := c.recordLoad()
	c.pending = count

	if c.window == nil && count > 0 {
		if c.qualifiesImmediately(count, highestPriority) {
			logger.Infof("producing immediately for %d ready transactions (priority %s)",
				count, formatPriority(highestPriority))
			return ProduceImmediately
		}

		c.window = c.openWindow(count, highestPriority, tps)
		logger.Debugf("starting collection window for %d transactions (duration %s, TPS %.2f)",
			count, c.window.Duration(), tps)
		return StartCollectionWindow
	}

	if c.shouldProduceImmediately(count, highestPriority) {
		c.window = nil
		return ProduceImmediately
	}

	return None
}

func (c *Controller) openWindow(count int, highestPriority *uint64, tps float64) *CollectionWindow {
	switch c.cfg.Strategy {
	case StrategyBaseline:
		var priority *uint64
		if highestPriority != nil {
			p := *highestPriority
			priority = &p
		}
		return newFixedWindow(c.baselineDuration(count), count, priority, c.now)
	default:
		priorityTriggered := highestPriority != nil &&
			*highestPriority >= c.cfg.Collection.PriorityThreshold/2
		return newCollectionWindow(c.cfg.Collection, count, highestPriority, tps, priorityTriggered, c.now)
	}
}

// baselineDuration shortens the window as the pending count grows.
func (c *Controller) baselineDuration(count int) time.Duration {
	var d time.Duration
	switch {
	case count > 50:
		d = c.cfg.Collection.MinCollectionTime
	case count > 10:
		d = baselineWindowDuration
	default:
		d = c.cfg.Collection.MaxCollectionTime
	}
	return c.cfg.Collection.clamp(d)
}

func (c *Controller) qualifiesImmediately(count int, highestPriority *uint64) bool {
	if count >= c.cfg.Collection.MaxBatchSize {
		return true
	}
	return highestPriority != nil && *highestPriority >= c.cfg.Collection.PriorityThreshold
}

func (c *Controller) shouldProduceImmediately(count int, highestPriority *uint64) bool {
	if c.qualifiesImmediately(count, highestPriority) {
		logger.Debugf("large batch or very high priority: count=%d priority=%s",
			count, formatPriority(highestPriority))
		return true
	}

	if c.window != nil && c.window.Elapsed() >= c.cfg.Collection.MaxCollectionTime {
		logger.Debug("collection window timeout")
		return true
	}

	return false
}

func (c *Controller) recordLoad() (tps float64) {
	if c.tracker == nil {
		return 0
	}
	return c.tracker.RecordTransaction()
}

// CheckCollectionWindow returns CollectionWindowExpired once when the
// active window has fired with transactions still pending.
func (c *Controller) CheckCollectionWindow() Trigger {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.window == nil || !c.window.IsExpired() {
		return None
	}

	logger.Debugf("collection window expired after %s with %d transactions",
		c.window.Elapsed(), c.pending)
	c.window = nil

	if c.pending > 0 {
		return CollectionWindowExpired
	}
	return None
}

// CheckEmptyBlockTimer returns EmptyBlockTimer and rearms the
// timer if the heartbeat interval has passed.
func (c *Controller) CheckEmptyBlockTimer() Trigger {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.emptyDeadline.IsZero() || c.now().Before(c.emptyDeadline) {
		return None
	}

	logger.Info("empty block timer expired, producing empty block")
	c.rearmEmptyBlockTimer()
	return EmptyBlockTimer
}

// RecordBlockProduced clears the active window and rearms the
// empty block timer.
func (c *Controller) RecordBlockProduced() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.lastBlockTime = c.now()
	c.window = nil
	c.rearmEmptyBlockTimer()
	logger.Debug("block produced, resetting collection state")
}

func (c *Controller) rearmEmptyBlockTimer() {
	if c.cfg.EmptyBlockInterval <= 0 {
		c.emptyDeadline = time.Time{}
		return
	}
	c.emptyDeadline = c.now().Add(c.cfg.EmptyBlockInterval)
}

// HasActiveWindow returns true if a collection window is open.
func (c *Controller) HasActiveWindow() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.window != nil
}

// PendingTransactions returns the last pending count reported.
func (c *Controller) PendingTransactions() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.pending
}

// LastBlockTime returns when a block was last recorded as produced.
func (c *Controller) LastBlockTime() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.lastBlockTime
}

// NetworkLoad returns the current transactions per second estimate.
// It is always zero for the baseline strategy.
func (c *Controller) NetworkLoad() float64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.tracker == nil {
		return 0
	}
	return c.tracker.TPS()
}
