// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trigger

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	errMinAboveMax       = errors.New("minimum collection time is above maximum collection time")
	errZeroBatchSize     = errors.New("maximum batch size must be positive")
	errZeroHistorySize   = errors.New("transaction rate history size must be positive")
	errUnknownStrategy   = errors.New("unknown strategy")
	errNegativeDurations = errors.New("collection times must be positive")
)

// CollectionConfig bounds the collection windows.
type CollectionConfig struct {
	MinCollectionTime    time.Duration
	MaxCollectionTime    time.Duration
	MaxBatchSize         int
	PriorityThreshold    uint64
	NetworkLoadFactor    float64
	EnableAdaptiveTiming bool
}

// DefaultCollectionConfig returns the default collection configuration.
func DefaultCollectionConfig() CollectionConfig {
	return CollectionConfig{
		MinCollectionTime:    100 * time.Millisecond,
		MaxCollectionTime:    400 * time.Millisecond,
		MaxBatchSize:         1000,
		PriorityThreshold:    math.MaxUint64 / 2,
		NetworkLoadFactor:    1.0,
		EnableAdaptiveTiming: true,
	}
}

func (c CollectionConfig) clamp(d time.Duration) time.Duration {
	if d < c.MinCollectionTime {
		return c.MinCollectionTime
	}
	if d > c.MaxCollectionTime {
		return c.MaxCollectionTime
	}
	return d
}

// Strategy selects how the controller sizes its collection windows.
type Strategy uint8

const (
	// StrategyAdaptive sizes windows from network load and priority.
	StrategyAdaptive Strategy = iota
	// StrategyBaseline sizes windows from the pending transaction count only.
	StrategyBaseline
)

func (s Strategy) String() string {
	switch s {
	case StrategyAdaptive:
		return "adaptive"
	case StrategyBaseline:
		return "baseline"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy parses "adaptive" or "baseline".
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "adaptive", "":
		return StrategyAdaptive, nil
	case "baseline":
		return StrategyBaseline, nil
	}
	return 0, fmt.Errorf("%w: %q", errUnknownStrategy, s)
}

// Config is the controller configuration.
type Config struct {
	Collection CollectionConfig
	// EmptyBlockInterval is the heartbeat interval. Zero disables it.
	EmptyBlockInterval time.Duration
	// EnablePriorityFastTrack lets a high priority transaction below the
	// priority threshold open a shortened window. Transactions at or above
	// the threshold always produce immediately.
	EnablePriorityFastTrack    bool
	TransactionRateHistorySize int
	Strategy                   Strategy
}

// DefaultConfig returns the default controller configuration.
func DefaultConfig() Config {
	return Config{
		Collection:                 DefaultCollectionConfig(),
		EmptyBlockInterval:         time.Hour,
		EnablePriorityFastTrack:    true,
		TransactionRateHistorySize: 10,
		Strategy:                   StrategyAdaptive,
	}
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	if c.Collection.MinCollectionTime <= 0 || c.Collection.MaxCollectionTime <= 0 {
		return errNegativeDurations
	}
	if c.Collection.MinCollectionTime > c.Collection.MaxCollectionTime {
		return fmt.Errorf("%w: %s > %s", errMinAboveMax,
			c.Collection.MinCollectionTime, c.Collection.MaxCollectionTime)
	}
	if c.Collection.MaxBatchSize <= 0 {
		return errZeroBatchSize
	}
	if c.TransactionRateHistorySize <= 0 {
		return errZeroHistorySize
	}
	if c.Strategy > StrategyBaseline {
		return fmt.Errorf("%w: %d", errUnknownStrategy, c.Strategy)
	}
	return nil
}
