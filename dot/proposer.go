// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"context"
	"fmt"
	"time"

	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/lib/slots"
	"github.com/ChainSafe/micc/lib/transaction"
)

// TransactionPool is the view of the transaction pool used to build blocks.
type TransactionPool interface {
	Ready() []*transaction.ValidTransaction
	RemoveExtrinsic(ext types.Extrinsic)
}

// proposerFactory creates proposers packing the ready transactions.
type proposerFactory struct {
	pool TransactionPool
}

func (f *proposerFactory) NewProposer(parent *types.Header) (slots.Proposer, error) {
	return &proposer{
		parent: parent.DeepCopy(),
		pool:   f.pool,
	}, nil
}

type proposer struct {
	parent *types.Header
	pool   TransactionPool
}

// Propose builds a block on top of the parent from the ready transactions,
// highest priority first. Transactions not fitting in the size limit are
// left for a later block. Transactions are removed from the pool on import.
func (p *proposer) Propose(ctx context.Context, inherent *slots.InherentData, digest types.Digest,
	maxDuration time.Duration, blockSizeLimit *uint) (*types.Block, error) {
	timer := time.NewTimer(maxDuration)
	defer timer.Stop()

	var (
		body types.Body
		size uint
	)

	ready := p.pool.Ready()
	for i, tx := range ready {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			logger.Debugf("proposal deadline reached after %d of %d transactions", i, len(ready))
			return p.newBlock(body, digest), nil
		default:
		}

		extSize := uint(len(tx.Extrinsic))
		if blockSizeLimit != nil && size+extSize > *blockSizeLimit {
			logger.Debugf("block size limit %d reached after %d transactions", *blockSizeLimit, i)
			break
		}

		body = append(body, tx.Extrinsic)
		size += extSize
	}

	if inherent != nil {
		logger.Tracef("proposed block for slot %d at %s", inherent.Slot, inherent.Timestamp)
	}
	return p.newBlock(body, digest), nil
}

func (p *proposer) newBlock(body types.Body, digest types.Digest) *types.Block {
	header := types.NewHeader(p.parent.Hash(), p.parent.StateRoot, body.Root(),
		p.parent.Number+1, append(types.Digest(nil), digest...))
	block := types.NewBlock(*header, body)
	return &block
}

// syncOracle reports the node as always online since there is no network.
type syncOracle struct{}

func (syncOracle) IsOffline() bool { return false }

// BlockState is the chain state the imported blocks are added to.
type BlockState interface {
	AddBlock(block *types.Block) error
}

// SlotImporter checks and records the slot of imported blocks.
type SlotImporter interface {
	CheckImportSlot(slot uint64) error
	ImportSlot(slot uint64) error
}

// blockImport imports sealed blocks into the block state and removes
// their transactions from the pool.
type blockImport struct {
	slots      SlotImporter
	blockState BlockState
	pool       TransactionPool
}

func (b *blockImport) ImportBlock(params *slots.BlockImportParams) error {
	err := b.slots.CheckImportSlot(params.Slot)
	if err != nil {
		return fmt.Errorf("cannot import slot: %w", err)
	}

	header := params.PostHeader()
	block := types.NewBlock(*header, params.Body)
	err = b.blockState.AddBlock(&block)
	if err != nil {
		return fmt.Errorf("cannot add block: %w", err)
	}

	// the slot is only recorded once the block is stored, so a failed
	// import can be retried for the same slot
	err = b.slots.ImportSlot(params.Slot)
	if err != nil {
		return fmt.Errorf("cannot record slot: %w", err)
	}

	for _, ext := range params.Body {
		b.pool.RemoveExtrinsic(ext)
	}

	logger.Infof("🔨 imported block #%d (%s) for slot %d with %d extrinsics",
		header.Number, header.Hash(), params.Slot, len(params.Body))
	return nil
}

func newInherentDataProvider(_ *types.Header, slot uint64, timestamp time.Time) slots.InherentDataProvider {
	return slots.InherentDataProviderFunc(func(context.Context) (*slots.InherentData, error) {
		return &slots.InherentData{
			Timestamp: timestamp,
			Slot:      slot,
		}, nil
	})
}
