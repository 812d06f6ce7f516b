// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/lib/common"
)

// SlotTrigger is a signal sent to the slot loop.
type SlotTrigger uint8

const (
	// NoAction asks for nothing. It is never forwarded to the loop.
	NoAction SlotTrigger = iota
	// CreateBlock asks the loop to attempt authoring now.
	CreateBlock
)

func (t SlotTrigger) String() string {
	switch t {
	case NoAction:
		return "NoAction"
	case CreateBlock:
		return "CreateBlock"
	default:
		return fmt.Sprintf("SlotTrigger(%d)", uint8(t))
	}
}

// InherentData is the data every authored block must include.
type InherentData struct {
	Timestamp time.Time
	Slot      uint64
}

// InherentDataProvider creates the inherent data of a block.
type InherentDataProvider interface {
	CreateInherentData(ctx context.Context) (*InherentData, error)
}

// InherentDataProviderFunc adapts a function to an InherentDataProvider.
type InherentDataProviderFunc func(ctx context.Context) (*InherentData, error)

// CreateInherentData calls f.
func (f InherentDataProviderFunc) CreateInherentData(ctx context.Context) (*InherentData, error) {
	return f(ctx)
}

// SlotInfo holds the information about a slot being authored.
// It is created for each authoring attempt and discarded after.
type SlotInfo struct {
	Slot               uint64
	Timestamp          time.Time
	Duration           time.Duration
	EndsAt             time.Time
	ChainHead          *types.Header
	CreateInherentData InherentDataProvider
	BlockSizeLimit     *uint
}

// NewSlotInfo creates a SlotInfo ending at the next slot boundary after timestamp.
func NewSlotInfo(slot uint64, timestamp time.Time, duration time.Duration,
	chainHead *types.Header, cidp InherentDataProvider, blockSizeLimit *uint) SlotInfo {
	return SlotInfo{
		Slot:               slot,
		Timestamp:          timestamp,
		Duration:           duration,
		EndsAt:             timestamp.Add(timeUntilNextSlot(timestamp, duration)),
		ChainHead:          chainHead,
		CreateInherentData: cidp,
		BlockSizeLimit:     blockSizeLimit,
	}
}

// BlockImportParams is a sealed block ready to be imported.
type BlockImportParams struct {
	// Header is the header before the post digests are appended.
	Header      *types.Header
	Body        types.Body
	PostDigests types.Digest
	Slot        uint64
}

// PostHeader returns a copy of the header with the post digests appended.
func (p *BlockImportParams) PostHeader() *types.Header {
	header := p.Header.DeepCopy()
	header.Digest = append(header.Digest, p.PostDigests...)
	header.ResetHash()
	return header
}

// PostHash returns the hash of the post header.
func (p *BlockImportParams) PostHash() common.Hash {
	return p.PostHeader().Hash()
}

// SlotResult is the result of a successful authoring attempt.
type SlotResult struct {
	Block types.Block
}

// SkipReason is why a slot was not authored.
type SkipReason uint8

const (
	// NotSkipped means a block was authored and imported.
	NotSkipped SkipReason = iota
	// SkipNoTimeLeft means no proposing time remained in the slot.
	SkipNoTimeLeft
	// SkipAuxDataError means the authority set could not be fetched.
	SkipAuxDataError
	// SkipWaitingForNetwork means the node is offline with other authorities known.
	SkipWaitingForNetwork
	// SkipNoClaim means the local keystore cannot claim the slot.
	SkipNoClaim
	// SkipBackoff means authoring backed off because finality is lagging.
	SkipBackoff
	// SkipProposerError means the proposer could not be created.
	SkipProposerError
	// SkipInherentError means inherent data failed or ran out of time.
	SkipInherentError
	// SkipDeadlineExceeded means the proposal was not ready before the deadline.
	SkipDeadlineExceeded
	// SkipProposeError means the proposer returned an error.
	SkipProposeError
	// SkipSignError means the block could not be sealed.
	SkipSignError
	// SkipImportError means the sealed block was rejected by the import.
	SkipImportError
)

func (r SkipReason) String() string {
	switch r {
	case NotSkipped:
		return "not skipped"
	case SkipNoTimeLeft:
		return "no time left"
	case SkipAuxDataError:
		return "aux data error"
	case SkipWaitingForNetwork:
		return "waiting for network"
	case SkipNoClaim:
		return "no claim"
	case SkipBackoff:
		return "backoff"
	case SkipProposerError:
		return "proposer error"
	case SkipInherentError:
		return "inherent error"
	case SkipDeadlineExceeded:
		return "deadline exceeded"
	case SkipProposeError:
		return "propose error"
	case SkipSignError:
		return "sign error"
	case SkipImportError:
		return "import error"
	default:
		return fmt.Sprintf("SkipReason(%d)", uint8(r))
	}
}

// AuxData is worker specific data needed for authoring, such as the authority set.
type AuxData interface{}

// Claim is worker specific proof that a slot was claimed.
type Claim interface{}

// SyncOracle reports the node network status.
type SyncOracle interface {
	IsOffline() bool
}

// Proposer builds a block on top of a parent.
type Proposer interface {
	Propose(ctx context.Context, inherent *InherentData, digest types.Digest,
		maxDuration time.Duration, blockSizeLimit *uint) (*types.Block, error)
}

// BlockImport imports sealed blocks.
type BlockImport interface {
	ImportBlock(params *BlockImportParams) error
}

// SimpleSlotWorker is the set of capabilities needed to author in a slot.
type SimpleSlotWorker interface {
	AuxData(header *types.Header, slot uint64) (AuxData, error)
	// AuthoritiesLen returns false if the authority count is unknown.
	AuthoritiesLen(aux AuxData) (n int, ok bool)
	ClaimSlot(ctx context.Context, header *types.Header, slot uint64, aux AuxData) (Claim, bool)
	NotifySlot(header *types.Header, slot uint64, aux AuxData)
	PreDigestData(slot uint64, claim Claim) types.Digest
	BlockImportParams(header *types.Header, body types.Body, claim Claim, aux AuxData) (*BlockImportParams, error)
	ForceAuthoring() bool
	ShouldBackoff(slot uint64, chainHead *types.Header) bool
	SyncOracle() SyncOracle
	Proposer(parent *types.Header) (Proposer, error)
	ProposingRemainingDuration(info SlotInfo) time.Duration
	BlockImport() BlockImport
}

// SlotWorker is invoked for every authoring attempt.
type SlotWorker interface {
	OnSlot(ctx context.Context, info SlotInfo) (*SlotResult, SkipReason)
}
