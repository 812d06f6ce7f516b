// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"sync"

	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/lib/common"
	"github.com/ChainSafe/micc/lib/transaction"
)

// TransactionState represents the queue of transactions ready for
// inclusion, and notifies listeners of every imported transaction.
type TransactionState struct {
	queue *transaction.PriorityQueue

	// notifierChannels receive the hash of each imported transaction
	notifierChannels map[chan common.Hash]struct{}
	notifierLock     sync.RWMutex
}

// NewTransactionState returns a new TransactionState
func NewTransactionState() *TransactionState {
	return &TransactionState{
		queue:            transaction.NewPriorityQueue(),
		notifierChannels: make(map[chan common.Hash]struct{}),
	}
}

// Push pushes a transaction to the queue, ordered by priority
func (s *TransactionState) Push(vt *transaction.ValidTransaction) (common.Hash, error) {
	hash, err := s.queue.Push(vt)
	if err != nil {
		return hash, err
	}

	s.notifyImport(hash)
	return hash, nil
}

// ReadyCount returns the number of transactions ready for inclusion
func (s *TransactionState) ReadyCount() int {
	return s.queue.Len()
}

// Ready returns the transactions ready for inclusion, highest priority first
func (s *TransactionState) Ready() []*transaction.ValidTransaction {
	return s.queue.Pending()
}

// HighestPriority returns the priority of the best ready transaction
// and false if none is ready.
func (s *TransactionState) HighestPriority() (priority uint64, ok bool) {
	return s.queue.HighestPriority()
}

// RemoveExtrinsic removes an extrinsic from the queue
func (s *TransactionState) RemoveExtrinsic(ext types.Extrinsic) {
	s.queue.RemoveExtrinsic(ext)
}

// GetImportNotifierChannel creates and returns an import notifier channel.
func (s *TransactionState) GetImportNotifierChannel() chan common.Hash {
	s.notifierLock.Lock()
	defer s.notifierLock.Unlock()

	ch := make(chan common.Hash, defaultBufferSize)
	s.notifierChannels[ch] = struct{}{}
	return ch
}

// FreeImportNotifierChannel deletes the import notifier channel given
// from our map and closes it.
func (s *TransactionState) FreeImportNotifierChannel(ch chan common.Hash) {
	s.notifierLock.Lock()
	defer s.notifierLock.Unlock()

	if _, ok := s.notifierChannels[ch]; !ok {
		return
	}
	delete(s.notifierChannels, ch)
	close(ch)
}

func (s *TransactionState) notifyImport(hash common.Hash) {
	s.notifierLock.RLock()
	defer s.notifierLock.RUnlock()

	for ch := range s.notifierChannels {
		select {
		case ch <- hash:
		default:
			logger.Tracef("import notifier channel full, dropping notification for %s", hash)
		}
	}
}
