// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/lib/common"
	"github.com/dgraph-io/badger/v2"
)

var (
	headerPrefix = []byte("hdr")
	bodyPrefix   = []byte("blb")
)

var (
	// ErrBlockNotFound is returned when a block is not in the database
	ErrBlockNotFound = errors.New("block not found")
	// ErrParentUnknown is returned when the parent of an added block is unknown
	ErrParentUnknown = errors.New("parent block unknown")
	// ErrBlockExists is returned when the block was already added
	ErrBlockExists = errors.New("block already exists")
)

// BlockState stores the block headers and bodies of the chain, and
// tracks its best and finalised blocks. Blocks are finalised once
// buried under finalityDepth descendants of the best chain.
type BlockState struct {
	db            *badger.DB
	finalityDepth uint

	lock          sync.RWMutex
	bestHash      common.Hash
	bestNumber    uint
	finalisedHash common.Hash

	// imported is a set of imported block notifier channels
	imported     map[chan *types.Block]struct{}
	importedLock sync.RWMutex
}

// NewBlockState creates a block state on the database, starting from
// the genesis header given.
func NewBlockState(db *badger.DB, genesis *types.Header, finalityDepth uint) (*BlockState, error) {
	bs := &BlockState{
		db:            db,
		finalityDepth: finalityDepth,
		imported:      make(map[chan *types.Block]struct{}),
	}

	hash := genesis.Hash()
	err := bs.db.Update(func(txn *badger.Txn) error {
		return storeBlock(txn, hash, genesis, types.Body{})
	})
	if err != nil {
		return nil, fmt.Errorf("cannot store genesis block: %w", err)
	}

	bs.bestHash = hash
	bs.bestNumber = genesis.Number
	bs.finalisedHash = hash
	return bs, nil
}

func headerKey(hash common.Hash) []byte {
	return append(append([]byte(nil), headerPrefix...), hash[:]...)
}

func bodyKey(hash common.Hash) []byte {
	return append(append([]byte(nil), bodyPrefix...), hash[:]...)
}

func storeBlock(txn *badger.Txn, hash common.Hash, header *types.Header, body types.Body) error {
	if err := txn.Set(headerKey(hash), header.Encode()); err != nil {
		return fmt.Errorf("cannot store header: %w", err)
	}
	if err := txn.Set(bodyKey(hash), body.Encode()); err != nil {
		return fmt.Errorf("cannot store body: %w", err)
	}
	return nil
}

func getValue(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrBlockNotFound
	} else if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

// AddBlock stores the block. It becomes the best block if it is
// higher than the current best block.
func (bs *BlockState) AddBlock(block *types.Block) error {
	header := block.Header.DeepCopy()
	hash := header.Hash()

	err := bs.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(headerKey(hash)); err == nil {
			return fmt.Errorf("%w: %s", ErrBlockExists, hash)
		}

		if _, err := txn.Get(headerKey(header.ParentHash)); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrParentUnknown, header.ParentHash)
		} else if err != nil {
			return err
		}

		return storeBlock(txn, hash, header, block.Body)
	})
	if err != nil {
		return err
	}

	bs.lock.Lock()
	if header.Number > bs.bestNumber {
		bs.bestHash = hash
		bs.bestNumber = header.Number
		if err := bs.finaliseBehindBest(); err != nil {
			bs.lock.Unlock()
			return fmt.Errorf("cannot finalise: %w", err)
		}
	}
	bs.lock.Unlock()

	logger.Debugf("added block number %d with hash %s", header.Number, hash)
	bs.notifyImported(&types.Block{Header: *header, Body: block.Body})
	return nil
}

// finaliseBehindBest finalises the ancestor of the best block at the
// finality depth. It must be called with the lock held.
func (bs *BlockState) finaliseBehindBest() error {
	if bs.bestNumber < bs.finalityDepth {
		return nil
	}

	hash := bs.bestHash
	for i := uint(0); i < bs.finalityDepth; i++ {
		header, err := bs.GetHeader(hash)
		if err != nil {
			return err
		}
		hash = header.ParentHash
	}

	finalised, err := bs.GetHeader(bs.finalisedHash)
	if err != nil {
		return err
	}

	if bs.bestNumber-bs.finalityDepth > finalised.Number {
		bs.finalisedHash = hash
		logger.Debugf("finalised block number %d with hash %s",
			bs.bestNumber-bs.finalityDepth, hash)
	}
	return nil
}

// HasHeader returns true if the header of the block hash is stored.
func (bs *BlockState) HasHeader(hash common.Hash) (has bool, err error) {
	_, err = bs.GetHeader(hash)
	if errors.Is(err, ErrBlockNotFound) {
		return false, nil
	}
	return err == nil, err
}

// GetHeader returns the header of the block hash.
func (bs *BlockState) GetHeader(hash common.Hash) (header *types.Header, err error) {
	var enc []byte
	err = bs.db.View(func(txn *badger.Txn) (err error) {
		enc, err = getValue(txn, headerKey(hash))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("cannot get header %s: %w", hash, err)
	}

	return types.DecodeHeader(enc)
}

// GetBody returns the body of the block hash.
func (bs *BlockState) GetBody(hash common.Hash) (types.Body, error) {
	var enc []byte
	err := bs.db.View(func(txn *badger.Txn) (err error) {
		enc, err = getValue(txn, bodyKey(hash))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("cannot get body %s: %w", hash, err)
	}

	return types.DecodeBody(enc)
}

// BestBlockHash returns the hash of the best block.
func (bs *BlockState) BestBlockHash() common.Hash {
	bs.lock.RLock()
	defer bs.lock.RUnlock()
	return bs.bestHash
}

// BestBlockHeader returns the header of the best block.
func (bs *BlockState) BestBlockHeader() (*types.Header, error) {
	return bs.GetHeader(bs.BestBlockHash())
}

// GetFinalisedHash returns the hash of the last finalised block.
func (bs *BlockState) GetFinalisedHash() common.Hash {
	bs.lock.RLock()
	defer bs.lock.RUnlock()
	return bs.finalisedHash
}

// GetFinalisedHeader returns the header of the last finalised block.
func (bs *BlockState) GetFinalisedHeader() (*types.Header, error) {
	return bs.GetHeader(bs.GetFinalisedHash())
}
