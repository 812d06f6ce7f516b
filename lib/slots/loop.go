// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/ChainSafe/micc/dot/types"
)

// DefaultFallbackInterval is the interval at which a block is authored
// when no CreateBlock signal arrived.
const DefaultFallbackInterval = time.Hour

// ChainHeadSelector returns the header to build on.
type ChainHeadSelector interface {
	BestBlockHeader() (*types.Header, error)
}

// InherentDataProviderFactory creates the inherent data provider of a slot.
type InherentDataProviderFactory func(parent *types.Header, slot uint64, timestamp time.Time) InherentDataProvider

// LoopConfig is the configuration of the slot loop.
type LoopConfig struct {
	Clock          *Clock
	Chain          ChainHeadSelector
	Worker         SlotWorker
	InherentData   InherentDataProviderFactory
	BlockSizeLimit *uint
	// Triggers carries the CreateBlock signals. It may be nil.
	Triggers <-chan SlotTrigger
	// FallbackInterval defaults to DefaultFallbackInterval if zero.
	FallbackInterval time.Duration
}

// StartSlotWorker runs the slot loop until the context is cancelled.
// Each CreateBlock signal or fallback interval tick runs one authoring
// attempt, and attempts never overlap. If the trigger channel is closed,
// the loop carries on with the fallback interval only.
func StartSlotWorker(ctx context.Context, cfg LoopConfig) {
	interval := cfg.FallbackInterval
	if interval <= 0 {
		interval = DefaultFallbackInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	triggers := cfg.Triggers
	for {
		select {
		case <-ctx.Done():
			return
		case trigger, ok := <-triggers:
			if !ok {
				logger.Warn("event driven trigger channel closed, falling back to interval based block production")
				triggers = nil
				continue
			}
			if trigger != CreateBlock {
				continue
			}

			logger.Debug("new block creation request received from trigger stream")
			authorSlot(ctx, cfg)
			ticker.Reset(interval)
		case <-ticker.C:
			logger.Info("interval block creation triggered")
			authorSlot(ctx, cfg)
		}
	}
}

func authorSlot(ctx context.Context, cfg LoopConfig) {
	info, err := nextSlotInfo(ctx, cfg)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warnf("cannot prepare slot: %s", err)
		}
		return
	}

	logger.Debugf("creating block for slot %d", info.Slot)
	result, reason := cfg.Worker.OnSlot(ctx, info)
	if result == nil {
		logger.Debugf("slot %d skipped: %s", info.Slot, reason)
		return
	}
	logger.Debugf("slot %d authored block %s", info.Slot, result.Block.Header.Hash())
}

func nextSlotInfo(ctx context.Context, cfg LoopConfig) (info SlotInfo, err error) {
	slot, timestamp, err := cfg.Clock.Slot(ctx)
	if err != nil {
		return info, fmt.Errorf("cannot get slot: %w", err)
	}

	head, err := cfg.Chain.BestBlockHeader()
	if err != nil {
		return info, fmt.Errorf("cannot get best block header: %w", err)
	}

	var cidp InherentDataProvider
	if cfg.InherentData != nil {
		cidp = cfg.InherentData(head, slot, timestamp)
	}

	return NewSlotInfo(slot, timestamp, cfg.Clock.SlotDuration(), head.DeepCopy(), cidp, cfg.BlockSizeLimit), nil
}
