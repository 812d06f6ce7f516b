// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trigger

import (
	"fmt"

	"github.com/ChainSafe/micc/lib/common"
)

// Trigger is the block production decision returned by the controller.
type Trigger uint8

const (
	// None means no block should be produced.
	None Trigger = iota
	// StartCollectionWindow means a collection window was opened.
	StartCollectionWindow
	// ProduceImmediately means a block should be produced right away.
	ProduceImmediately
	// CollectionWindowExpired means the active window fired with transactions pending.
	CollectionWindowExpired
	// EmptyBlockTimer means the heartbeat timer fired.
	EmptyBlockTimer
)

func (t Trigger) String() string {
	switch t {
	case None:
		return "None"
	case StartCollectionWindow:
		return "StartCollectionWindow"
	case ProduceImmediately:
		return "ProduceImmediately"
	case CollectionWindowExpired:
		return "CollectionWindowExpired"
	case EmptyBlockTimer:
		return "EmptyBlockTimer"
	default:
		return fmt.Sprintf("Trigger(%d)", uint8(t))
	}
}

// ShouldProduceBlock returns true if the trigger asks for a block.
func (t Trigger) ShouldProduceBlock() bool {
	switch t {
	case ProduceImmediately, CollectionWindowExpired, EmptyBlockTimer:
		return true
	default:
		return false
	}
}

// EventKind is the kind of a transaction pool event.
type EventKind uint8

const (
	// TransactionAdded is sent when a transaction enters the ready queue.
	TransactionAdded EventKind = iota
	// HighPriorityTransactionAdded is sent with the priority of the added transaction.
	HighPriorityTransactionAdded
	// TransactionRemoved is sent when a transaction leaves the pool.
	TransactionRemoved
	// PoolReady carries the ready count and highest ready priority.
	PoolReady
	// PoolEmpty is sent when the ready queue becomes empty.
	PoolEmpty
	// NetworkLoad carries an externally measured transactions per second value.
	NetworkLoad
)

func (k EventKind) String() string {
	switch k {
	case TransactionAdded:
		return "TransactionAdded"
	case HighPriorityTransactionAdded:
		return "HighPriorityTransactionAdded"
	case TransactionRemoved:
		return "TransactionRemoved"
	case PoolReady:
		return "PoolReady"
	case PoolEmpty:
		return "PoolEmpty"
	case NetworkLoad:
		return "NetworkLoad"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// PoolEvent is a transaction pool event. Only the fields
// relevant to its Kind are set.
type PoolEvent struct {
	Kind            EventKind
	Hash            common.Hash
	Priority        uint64
	Count           int
	HighestPriority *uint64
	Load            float64
}

// NewTransactionAdded returns a TransactionAdded event.
func NewTransactionAdded(hash common.Hash) PoolEvent {
	return PoolEvent{Kind: TransactionAdded, Hash: hash}
}

// NewHighPriorityTransactionAdded returns a HighPriorityTransactionAdded event.
func NewHighPriorityTransactionAdded(hash common.Hash, priority uint64) PoolEvent {
	return PoolEvent{Kind: HighPriorityTransactionAdded, Hash: hash, Priority: priority}
}

// NewTransactionRemoved returns a TransactionRemoved event.
func NewTransactionRemoved(hash common.Hash) PoolEvent {
	return PoolEvent{Kind: TransactionRemoved, Hash: hash}
}

// NewPoolReady returns a PoolReady event. highestPriority may be nil.
func NewPoolReady(count int, highestPriority *uint64) PoolEvent {
	return PoolEvent{Kind: PoolReady, Count: count, HighestPriority: highestPriority}
}

// NewPoolEmpty returns a PoolEmpty event.
func NewPoolEmpty() PoolEvent {
	return PoolEvent{Kind: PoolEmpty}
}

// NewNetworkLoad returns a NetworkLoad event.
func NewNetworkLoad(tps float64) PoolEvent {
	return PoolEvent{Kind: NetworkLoad, Load: tps}
}

func (e PoolEvent) String() string {
	switch e.Kind {
	case TransactionAdded, TransactionRemoved:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Hash.Short())
	case HighPriorityTransactionAdded:
		return fmt.Sprintf("%s(%s, %d)", e.Kind, e.Hash.Short(), e.Priority)
	case PoolReady:
		if e.HighestPriority == nil {
			return fmt.Sprintf("%s(%d, none)", e.Kind, e.Count)
		}
		return fmt.Sprintf("%s(%d, %d)", e.Kind, e.Count, *e.HighestPriority)
	case NetworkLoad:
		return fmt.Sprintf("%s(%.2f)", e.Kind, e.Load)
	default:
		return e.Kind.String()
	}
}
