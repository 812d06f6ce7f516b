// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package micc

import (
	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/lib/micc/trigger"
)

// Observer is notified of authoring progress. It must not block.
type Observer interface {
	SlotNotified(slot uint64, authorities int)
	BlockProduced(header *types.Header, slot uint64, authorityIndex int)
}

// BlockProducedRecorder records locally produced blocks.
type BlockProducedRecorder interface {
	RecordBlockProduced()
}

var _ BlockProducedRecorder = (*trigger.Controller)(nil)

// NewTriggerObserver returns an observer resetting the empty block
// timer and the collection window of the recorder on each produced block.
func NewTriggerObserver(recorder BlockProducedRecorder) Observer {
	return &triggerObserver{recorder: recorder}
}

type triggerObserver struct {
	recorder BlockProducedRecorder
}

func (*triggerObserver) SlotNotified(uint64, int) {}

func (t *triggerObserver) BlockProduced(*types.Header, uint64, int) {
	t.recorder.RecordBlockProduced()
}
