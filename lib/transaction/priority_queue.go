// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package transaction

import (
	"container/heap"
	"errors"
	"sort"
	"sync"

	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/lib/common"
)

// ErrTransactionExists is returned when trying to add a transaction to the queue that already exists
var ErrTransactionExists = errors.New("transaction is already in queue")

// Item is an item in the priority queue
type Item struct {
	data  *ValidTransaction
	hash  common.Hash
	order uint64
	index int
}

type priorityQueue []*Item

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	// For Transactions with same priority, higher order (pushed later) should have lower priority
	if pq[i].data.Priority() == pq[j].data.Priority() {
		return pq[i].order < pq[j].order
	}
	return pq[i].data.Priority() > pq[j].data.Priority()
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*Item)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

// PriorityQueue is a thread safe wrapper over `priorityQueue`
type PriorityQueue struct {
	pq        priorityQueue
	currOrder uint64
	txs       map[common.Hash]*Item
	sync.Mutex
}

// NewPriorityQueue creates new instance of PriorityQueue
func NewPriorityQueue() *PriorityQueue {
	spq := &PriorityQueue{
		pq:  make(priorityQueue, 0),
		txs: make(map[common.Hash]*Item),
	}

	heap.Init(&spq.pq)
	return spq
}

// Push inserts a valid transaction with priority p into the queue
func (spq *PriorityQueue) Push(txn *ValidTransaction) (common.Hash, error) {
	spq.Lock()
	defer spq.Unlock()

	hash := txn.Extrinsic.Hash()
	if spq.txs[hash] != nil {
		return hash, ErrTransactionExists
	}

	item := &Item{
		data:  txn,
		hash:  hash,
		order: spq.currOrder,
	}
	spq.currOrder++
	heap.Push(&spq.pq, item)
	spq.txs[hash] = item

	return hash, nil
}

// Pending returns all the transactions currently in the queue, highest priority first
func (spq *PriorityQueue) Pending() []*ValidTransaction {
	spq.Lock()
	defer spq.Unlock()

	items := make(priorityQueue, len(spq.pq))
	copy(items, spq.pq)
	sort.Slice(items, func(i, j int) bool { return items.Less(i, j) })

	txns := make([]*ValidTransaction, len(items))
	for i, item := range items {
		txns[i] = item.data
	}
	return txns
}

// HighestPriority returns the priority of the head of the queue and
// false if the queue is empty.
func (spq *PriorityQueue) HighestPriority() (priority uint64, ok bool) {
	spq.Lock()
	defer spq.Unlock()

	if spq.pq.Len() == 0 {
		return 0, false
	}
	return spq.pq[0].data.Priority(), true
}

// Len returns the number of transactions in the queue
func (spq *PriorityQueue) Len() int {
	spq.Lock()
	defer spq.Unlock()
	return spq.pq.Len()
}

// RemoveExtrinsic removes an extrinsic from the queue
func (spq *PriorityQueue) RemoveExtrinsic(ext types.Extrinsic) {
	spq.Lock()
	defer spq.Unlock()

	hash := ext.Hash()
	item, ok := spq.txs[hash]
	if !ok {
		return
	}

	heap.Remove(&spq.pq, item.index)
	delete(spq.txs, hash)
}
