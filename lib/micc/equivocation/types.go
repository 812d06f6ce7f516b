// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package equivocation

import (
	"fmt"

	"github.com/ChainSafe/micc/dot/types"
)

// AuthorityID is the encoded public key of an authority.
type AuthorityID [32]byte

// NewAuthorityID returns the authority ID of an encoded public key.
func NewAuthorityID(encodedPublicKey []byte) (id AuthorityID) {
	copy(id[:], encodedPublicKey)
	return id
}

func (id AuthorityID) String() string {
	return fmt.Sprintf("0x%x", id[:])
}

// Config is the equivocation detection and slashing configuration.
type Config struct {
	// EnableSlashing makes offenders slashable.
	EnableSlashing bool
	// GracePeriod is the number of blocks to wait before slashing.
	GracePeriod uint32
	// MaxReportsPerSession is the number of reports kept per session.
	// Zero means the hard cap only.
	MaxReportsPerSession uint32
	// SlashPercentage is in basis points, 10000 being 100%.
	SlashPercentage uint32
}

// DefaultConfig returns the default configuration, with slashing disabled.
func DefaultConfig() Config {
	return Config{
		EnableSlashing:       false,
		GracePeriod:          100,
		MaxReportsPerSession: 10,
		SlashPercentage:      1000,
	}
}

// Proof is the evidence that an authority authored two different
// blocks for the same slot.
type Proof struct {
	Slot         uint64
	Offender     AuthorityID
	FirstHeader  *types.Header
	SecondHeader *types.Header
}

func (p *Proof) String() string {
	return fmt.Sprintf("slot=%d offender=%s first=%s second=%s",
		p.Slot, p.Offender, p.FirstHeader.Hash(), p.SecondHeader.Hash())
}

// Report returns the report of the equivocation for the session given.
// Block numbers above the uint32 range saturate.
func (p *Proof) Report(sessionIndex uint32) Report {
	return Report{
		Offender:     p.Offender,
		Slot:         p.Slot,
		BlockNumber:  saturatedUint32(p.SecondHeader.Number),
		SessionIndex: sessionIndex,
	}
}

// Report is a recorded equivocation.
type Report struct {
	Offender     AuthorityID
	Slot         uint64
	BlockNumber  uint32
	SessionIndex uint32
}

// OffenderCount is the number of equivocations of an offender in a session.
type OffenderCount struct {
	Offender AuthorityID
	Count    uint32
}

// SessionEquivocations holds the bounded reports and offender counts
// of the current session.
type SessionEquivocations struct {
	Reports        []Report
	OffenderCounts []OffenderCount
}

func (s SessionEquivocations) deepCopy() SessionEquivocations {
	return SessionEquivocations{
		Reports:        append([]Report(nil), s.Reports...),
		OffenderCounts: append([]OffenderCount(nil), s.OffenderCounts...),
	}
}
