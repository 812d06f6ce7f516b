// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package slots

import (
	"context"
	"time"

	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "slots"))

// proposalDeadlineRatio leaves a margin for the proposal to be returned
// before the hard deadline.
const proposalDeadlineRatio = 0.98

// NewSlotWorker returns a SlotWorker running OnSlot with the worker given.
func NewSlotWorker(worker SimpleSlotWorker) SlotWorker {
	return &simpleSlotWorker{worker: worker}
}

type simpleSlotWorker struct {
	worker SimpleSlotWorker
}

func (s *simpleSlotWorker) OnSlot(ctx context.Context, info SlotInfo) (*SlotResult, SkipReason) {
	return OnSlot(ctx, s.worker, info)
}

// OnSlot claims the slot, proposes a block within the proposing deadline,
// seals and imports it. The returned reason is NotSkipped only if the
// block was imported.
func OnSlot(ctx context.Context, w SimpleSlotWorker, info SlotInfo) (*SlotResult, SkipReason) {
	slot := info.Slot

	remaining := w.ProposingRemainingDuration(info)
	if remaining <= 0 {
		logger.Debugf("skipping proposal slot %d since there's no time left to propose", slot)
		return nil, SkipNoTimeLeft
	}
	endProposingAt := time.Now().Add(remaining)

	aux, err := w.AuxData(info.ChainHead, slot)
	if err != nil {
		logger.Warnf("unable to fetch auxiliary data for block %s: %s", info.ChainHead.Hash(), err)
		return nil, SkipAuxDataError
	}

	w.NotifySlot(info.ChainHead, slot, aux)

	authoritiesLen, known := w.AuthoritiesLen(aux)
	if !w.ForceAuthoring() && w.SyncOracle().IsOffline() && known && authoritiesLen > 1 {
		logger.Debugf("skipping proposal slot %d, waiting for the network", slot)
		return nil, SkipWaitingForNetwork
	}

	claim, ok := w.ClaimSlot(ctx, info.ChainHead, slot, aux)
	if !ok {
		return nil, SkipNoClaim
	}

	if w.ShouldBackoff(slot, info.ChainHead) {
		return nil, SkipBackoff
	}

	logger.Debugf("starting authorship at slot %d", slot)

	proposer, err := w.Proposer(info.ChainHead)
	if err != nil {
		logger.Warnf("unable to author block in slot %d: %s", slot, err)
		return nil, SkipProposerError
	}

	inherent, reason := createInherentData(ctx, info, endProposingAt)
	if reason != NotSkipped {
		return nil, reason
	}

	proposingRemaining := time.Until(endProposingAt)
	if proposingRemaining < 0 {
		proposingRemaining = 0
	}
	digest := w.PreDigestData(slot, claim)

	block, reason := propose(ctx, proposer, inherent, digest, proposingRemaining, info)
	if reason != NotSkipped {
		return nil, reason
	}

	headerHash := block.Header.Hash()
	params, err := w.BlockImportParams(&block.Header, block.Body, claim, aux)
	if err != nil {
		logger.Warnf("failed to create block import params: %s", err)
		return nil, SkipSignError
	}

	postHeader := params.PostHeader()
	logger.Infof("🔖 pre-sealed block for proposal at %d. Hash now %s, previously %s",
		postHeader.Number, postHeader.Hash(), headerHash)

	if err := w.BlockImport().ImportBlock(params); err != nil {
		logger.Warnf("error with block built on %s: %s", postHeader.ParentHash, err)
		return nil, SkipImportError
	}

	return &SlotResult{Block: types.NewBlock(*postHeader, block.Body)}, NotSkipped
}

type inherentResult struct {
	data *InherentData
	err  error
}

func createInherentData(ctx context.Context, info SlotInfo, endProposingAt time.Time) (
	*InherentData, SkipReason) {
	if info.CreateInherentData == nil {
		return &InherentData{Timestamp: info.Timestamp, Slot: info.Slot}, NotSkipped
	}

	ctx, cancel := context.WithDeadline(ctx, endProposingAt)
	defer cancel()

	resultCh := make(chan inherentResult, 1)
	go func() {
		data, err := info.CreateInherentData.CreateInherentData(ctx)
		resultCh <- inherentResult{data: data, err: err}
	}()

	select {
	case result := <-resultCh:
		if result.err != nil {
			logger.Warnf("unable to create inherent data for block %s: %s", info.ChainHead.Hash(), result.err)
			return nil, SkipInherentError
		}
		return result.data, NotSkipped
	case <-ctx.Done():
		logger.Warnf("creating inherent data took more time than we had left for slot %d for block %s",
			info.Slot, info.ChainHead.Hash())
		return nil, SkipInherentError
	}
}

type proposalResult struct {
	block *types.Block
	err   error
}

func propose(ctx context.Context, proposer Proposer, inherent *InherentData, digest types.Digest,
	remaining time.Duration, info SlotInfo) (*types.Block, SkipReason) {
	ctx, cancel := context.WithTimeout(ctx, remaining)
	defer cancel()

	maxDuration := time.Duration(float64(remaining) * proposalDeadlineRatio)

	resultCh := make(chan proposalResult, 1)
	go func() {
		block, err := proposer.Propose(ctx, inherent, digest, maxDuration, info.BlockSizeLimit)
		resultCh <- proposalResult{block: block, err: err}
	}()

	select {
	case result := <-resultCh:
		if result.err != nil {
			logger.Warnf("proposing failed: %s", result.err)
			return nil, SkipProposeError
		}
		if result.block == nil {
			logger.Warn("proposing failed: no block returned")
			return nil, SkipProposeError
		}
		return result.block, NotSkipped
	case <-ctx.Done():
		logger.Infof("⌛️ discarding proposal for slot %d; block production took too long", info.Slot)
		return nil, SkipDeadlineExceeded
	}
}
