// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package micc

import (
	"fmt"
	"sync"

	"github.com/ChainSafe/micc/lib/common"
	"github.com/ChainSafe/micc/lib/micc/equivocation"
)

// DefaultMaxAuthorities is the default maximum size of the authority set.
const DefaultMaxAuthorities = 100

// AuthoritySet holds the current authorities along with their
// equivocation counters and disablements.
// It is safe for concurrent use.
type AuthoritySet struct {
	mutex          sync.RWMutex
	authorities    []Authority
	maxAuthorities int
	allowMultiple  bool
	sessionIndex   uint32
	currentSlot    uint64
	slotImported   bool
	slashing       bool
	counts         map[equivocation.AuthorityID]uint32
	disabled       map[equivocation.AuthorityID]uint64
}

// NewAuthoritySet creates an empty authority set. A maxAuthorities of
// zero uses DefaultMaxAuthorities.
func NewAuthoritySet(maxAuthorities int, allowMultipleBlocksPerSlot, slashing bool) *AuthoritySet {
	if maxAuthorities <= 0 {
		maxAuthorities = DefaultMaxAuthorities
	}
	return &AuthoritySet{
		maxAuthorities: maxAuthorities,
		allowMultiple:  allowMultipleBlocksPerSlot,
		slashing:       slashing,
		counts:         make(map[equivocation.AuthorityID]uint32),
		disabled:       make(map[equivocation.AuthorityID]uint64),
	}
}

// Initialize sets the genesis authorities. It is ignored if the set
// is already initialized. Authorities above the maximum are dropped.
func (s *AuthoritySet) Initialize(authorities []Authority) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(authorities) == 0 {
		return
	}

	if len(s.authorities) > 0 {
		logger.Debug("authorities already initialized, ignoring")
		return
	}

	if len(authorities) > s.maxAuthorities {
		logger.Errorf("initial authority set has %d authorities, truncating to %d",
			len(authorities), s.maxAuthorities)
		authorities = authorities[:s.maxAuthorities]
	}

	s.authorities = append([]Authority(nil), authorities...)
}

// Change replaces the authorities. An empty change is ignored.
func (s *AuthoritySet) Change(authorities []Authority) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(authorities) == 0 {
		logger.Warn("ignoring change to an empty authority set")
		return
	}

	if len(authorities) > s.maxAuthorities {
		logger.Errorf("new authority set has %d authorities, truncating to %d",
			len(authorities), s.maxAuthorities)
		authorities = authorities[:s.maxAuthorities]
	}

	s.authorities = append([]Authority(nil), authorities...)
	logger.Infof("authority set changed to %d authorities", len(s.authorities))
}

// Authorities returns the authorities. The set is the same for every
// parent since the development chain has no runtime storage.
func (s *AuthoritySet) Authorities(common.Hash) ([]Authority, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.authorities) == 0 {
		return nil, errNoAuthorities
	}
	return append([]Authority(nil), s.authorities...), nil
}

// Len returns the number of authorities.
func (s *AuthoritySet) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.authorities)
}

// IsMember returns true if the authority is part of the set.
func (s *AuthoritySet) IsMember(id equivocation.AuthorityID) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, ok := authorityIndex(id, s.authorities)
	return ok
}

// IsDisabled returns true if the authority was disabled for equivocating.
func (s *AuthoritySet) IsDisabled(id equivocation.AuthorityID) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, disabled := s.disabled[id]
	return disabled
}

// ReportEquivocation counts the equivocation of the offender and
// disables it if slashing is enabled.
func (s *AuthoritySet) ReportEquivocation(report equivocation.Report) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.counts[report.Offender] < ^uint32(0) {
		s.counts[report.Offender]++
	}

	logger.Warnf("equivocation reported for authority %s at slot %d (count %d)",
		report.Offender, report.Slot, s.counts[report.Offender])

	if !s.slashing {
		return
	}

	if _, disabled := s.disabled[report.Offender]; !disabled {
		s.disabled[report.Offender] = uint64(report.BlockNumber)
		logger.Warnf("authority %s disabled at block %d", report.Offender, report.BlockNumber)
	}
}

// EnableAuthority removes the disablement of the authority.
func (s *AuthoritySet) EnableAuthority(id equivocation.AuthorityID) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, disabled := s.disabled[id]; !disabled {
		return
	}
	delete(s.disabled, id)
	logger.Infof("authority %s enabled", id)
}

// SetEquivocationSlashing enables or disables slashing of equivocating authorities.
func (s *AuthoritySet) SetEquivocationSlashing(enabled bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.slashing = enabled
}

// EquivocationCount returns the equivocations counted for the authority
// in the current session.
func (s *AuthoritySet) EquivocationCount(id equivocation.AuthorityID) uint32 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.counts[id]
}

// ClearSessionEquivocations resets the equivocation counters.
func (s *AuthoritySet) ClearSessionEquivocations() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.counts = make(map[equivocation.AuthorityID]uint32)
}

// SessionIndex returns the current session index.
func (s *AuthoritySet) SessionIndex() uint32 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.sessionIndex
}

// NewSession increments the session index and clears the equivocation counters.
func (s *AuthoritySet) NewSession() uint32 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.sessionIndex < ^uint32(0) {
		s.sessionIndex++
	}
	s.counts = make(map[equivocation.AuthorityID]uint32)
	return s.sessionIndex
}

// CurrentSlot returns the last imported slot.
func (s *AuthoritySet) CurrentSlot() uint64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.currentSlot
}

// CheckImportSlot returns an error if a block for the slot cannot be
// imported, without recording the slot.
func (s *AuthoritySet) CheckImportSlot(slot uint64) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.checkImportSlot(slot)
}

// ImportSlot records the slot of an imported block. It fails if the
// slot does not increase or if the slot author is disabled.
func (s *AuthoritySet) ImportSlot(slot uint64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.checkImportSlot(slot); err != nil {
		return err
	}

	s.currentSlot = slot
	s.slotImported = true
	return nil
}

func (s *AuthoritySet) checkImportSlot(slot uint64) error {
	if s.slotImported {
		if err := CheckSlot(s.currentSlot, slot, s.allowMultiple); err != nil {
			return err
		}
	}

	author, _, ok := SlotAuthor(slot, s.authorities)
	if ok {
		if _, disabled := s.disabled[author.ID()]; disabled {
			return fmt.Errorf("%w: %s at slot %d", ErrAuthorityDisabled, author, slot)
		}
	}
	return nil
}

// CheckSlot returns an error if next does not follow previous. Equal
// slots are allowed when multiple blocks per slot are.
func CheckSlot(previous, next uint64, allowMultiple bool) error {
	if next > previous || (allowMultiple && next == previous) {
		return nil
	}
	return fmt.Errorf("%w: slot %d after slot %d", ErrSlotNotIncreasing, next, previous)
}
