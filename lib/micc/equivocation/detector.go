// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package equivocation

import (
	"math"
	"sync"

	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/internal/log"
	"github.com/ChainSafe/micc/lib/common"
	"github.com/google/btree"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "equivocation"))

const (
	// maxTrackedSlots is the number of slots kept in the slot index.
	maxTrackedSlots = 1000
	// maxSessionReports bounds the reports of a session.
	maxSessionReports = 100
	// maxOffenders bounds the offender counts of a session.
	maxOffenders = 100

	slotIndexDegree = 32
)

type observedBlock struct {
	header *types.Header
	hash   common.Hash
	author AuthorityID
}

type slotBlocks struct {
	slot   uint64
	blocks []observedBlock
}

func slotBlocksLess(a, b *slotBlocks) bool {
	return a.slot < b.slot
}

// Detector tracks the blocks seen per slot in the current session and
// detects authorities authoring conflicting blocks. It is safe for
// concurrent use.
type Detector struct {
	mutex                sync.Mutex
	slotIndex            *btree.BTreeG[*slotBlocks]
	sessionEquivocations SessionEquivocations
	config               Config
}

// NewDetector creates a detector with the configuration given.
func NewDetector(config Config) *Detector {
	return &Detector{
		slotIndex: btree.NewG(slotIndexDegree, slotBlocksLess),
		config:    config,
	}
}

// CheckBlock records the header authored by author at slot, and returns
// a proof if the same author already authored a different header for
// that slot. Observing the same header twice is not an equivocation.
func (d *Detector) CheckBlock(header *types.Header, slot uint64, author AuthorityID,
	sessionIndex uint32) *Proof {
	hash := header.Hash()

	d.mutex.Lock()
	defer d.mutex.Unlock()

	entry, ok := d.slotIndex.Get(&slotBlocks{slot: slot})
	if !ok {
		entry = &slotBlocks{slot: slot}
		d.slotIndex.ReplaceOrInsert(entry)
	}

	for _, observed := range entry.blocks {
		if observed.author != author || observed.hash == hash {
			continue
		}

		proof := &Proof{
			Slot:         slot,
			Offender:     author,
			FirstHeader:  observed.header,
			SecondHeader: header.DeepCopy(),
		}

		d.recordEquivocation(proof.Report(sessionIndex))
		return proof
	}

	entry.blocks = append(entry.blocks, observedBlock{
		header: header.DeepCopy(),
		hash:   hash,
		author: author,
	})

	for d.slotIndex.Len() > maxTrackedSlots {
		d.slotIndex.DeleteMin()
	}

	return nil
}

func (d *Detector) maxReports() int {
	if d.config.MaxReportsPerSession == 0 || d.config.MaxReportsPerSession > maxSessionReports {
		return maxSessionReports
	}
	return int(d.config.MaxReportsPerSession)
}

func (d *Detector) recordEquivocation(report Report) {
	session := &d.sessionEquivocations

	found := false
	for i := range session.OffenderCounts {
		if session.OffenderCounts[i].Offender == report.Offender {
			if session.OffenderCounts[i].Count < math.MaxUint32 {
				session.OffenderCounts[i].Count++
			}
			found = true
			break
		}
	}

	if len(session.Reports) >= d.maxReports() {
		logger.Warnf("maximum equivocation reports reached for session %d, not recording report for %s at slot %d",
			report.SessionIndex, report.Offender, report.Slot)
		return
	}

	if !found {
		if len(session.OffenderCounts) >= maxOffenders {
			logger.Warnf("offender table full for session %d, not recording report for %s at slot %d",
				report.SessionIndex, report.Offender, report.Slot)
			return
		}
		session.OffenderCounts = append(session.OffenderCounts, OffenderCount{
			Offender: report.Offender,
			Count:    1,
		})
	}

	session.Reports = append(session.Reports, report)

	logger.Errorf("🚨 equivocation detected: authority %s equivocated in slot %d at block %d",
		report.Offender, report.Slot, report.BlockNumber)
}

// NewSession clears the slot index and the session equivocations.
func (d *Detector) NewSession() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.slotIndex.Clear(false)
	d.sessionEquivocations = SessionEquivocations{}
	logger.Info("🔄 equivocation detector reset for new session")
}

// SessionEquivocations returns a copy of the current session equivocations.
func (d *Detector) SessionEquivocations() SessionEquivocations {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.sessionEquivocations.deepCopy()
}

// IsAuthoritySlashable returns true if slashing is enabled and the
// authority equivocated in the current session.
func (d *Detector) IsAuthoritySlashable(id AuthorityID) bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	for _, offender := range d.sessionEquivocations.OffenderCounts {
		if offender.Offender == id {
			return d.config.EnableSlashing && offender.Count > 0
		}
	}
	return false
}

// EquivocationCount returns the number of equivocations of the
// authority in the current session.
func (d *Detector) EquivocationCount(id AuthorityID) uint32 {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	for _, offender := range d.sessionEquivocations.OffenderCounts {
		if offender.Offender == id {
			return offender.Count
		}
	}
	return 0
}

// TrackedSlots returns the number of slots in the slot index.
func (d *Detector) TrackedSlots() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.slotIndex.Len()
}

// UpdateConfig replaces the configuration.
func (d *Detector) UpdateConfig(config Config) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.config = config
}

// Config returns the configuration.
func (d *Detector) Config() Config {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.config
}

func saturatedUint32(n uint) uint32 {
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}
