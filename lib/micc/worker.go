// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package micc

import (
	"context"
	"fmt"
	"time"

	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/internal/log"
	"github.com/ChainSafe/micc/lib/common"
	"github.com/ChainSafe/micc/lib/crypto"
	"github.com/ChainSafe/micc/lib/keystore"
	"github.com/ChainSafe/micc/lib/micc/equivocation"
	"github.com/ChainSafe/micc/lib/slots"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "micc"))

// AuthoritiesAPI provides the authority set at a block.
type AuthoritiesAPI interface {
	Authorities(parent common.Hash) ([]Authority, error)
	IsDisabled(id equivocation.AuthorityID) bool
}

// BlockState is the chain state read by the worker.
type BlockState interface {
	GetFinalisedHeader() (*types.Header, error)
}

// Environment creates proposers.
type Environment interface {
	NewProposer(parent *types.Header) (slots.Proposer, error)
}

// EquivocationReporter receives the equivocations found on import.
type EquivocationReporter interface {
	SessionIndex() uint32
	ReportEquivocation(report equivocation.Report)
}

// Claim is the proof that the local node may author a slot.
type Claim struct {
	Slot      uint64
	Index     int
	Authority Authority
	Keypair   crypto.Keypair
}

// WorkerConfig is the configuration of the Worker.
type WorkerConfig struct {
	Keystore    keystore.Keystore
	Authorities AuthoritiesAPI
	BlockState  BlockState
	Environment Environment
	BlockImport slots.BlockImport
	SyncOracle  slots.SyncOracle
	// Backoff defaults to never backing off if nil.
	Backoff slots.BackoffAuthoringBlocksStrategy
	// Detector and Reporter are optional.
	Detector *equivocation.Detector
	Reporter EquivocationReporter

	ForceAuthoring             bool
	AllowMultipleBlocksPerSlot bool
	// BlockProposalSlotPortion is the portion of the slot spent proposing.
	BlockProposalSlotPortion float32
	// MaxBlockProposalSlotPortion caps the lenience if positive.
	MaxBlockProposalSlotPortion float32

	Observers []Observer
}

// Worker authors micc blocks. It implements slots.SimpleSlotWorker.
type Worker struct {
	keystore       keystore.Keystore
	authorities    AuthoritiesAPI
	blockState     BlockState
	env            Environment
	blockImport    slots.BlockImport
	syncOracle     slots.SyncOracle
	backoff        slots.BackoffAuthoringBlocksStrategy
	detector       *equivocation.Detector
	reporter       EquivocationReporter
	forceAuthoring bool
	allowMultiple  bool
	proportion     slots.SlotProportion
	maxProportion  *slots.SlotProportion
	observers      []Observer
}

var _ slots.SimpleSlotWorker = (*Worker)(nil)

// NewWorker creates a micc worker.
func NewWorker(cfg WorkerConfig) (*Worker, error) {
	switch {
	case cfg.Keystore == nil:
		return nil, errNilKeystore
	case cfg.Authorities == nil:
		return nil, errNilAuthorities
	case cfg.BlockState == nil:
		return nil, errNilBlockState
	case cfg.Environment == nil:
		return nil, errNilEnvironment
	case cfg.BlockImport == nil:
		return nil, errNilBlockImport
	case cfg.SyncOracle == nil:
		return nil, errNilSyncOracle
	}

	backoff := cfg.Backoff
	if backoff == nil {
		backoff = slots.NeverBackoff{}
	}

	var maxProportion *slots.SlotProportion
	if cfg.MaxBlockProposalSlotPortion > 0 {
		p := slots.NewSlotProportion(cfg.MaxBlockProposalSlotPortion)
		maxProportion = &p
	}

	return &Worker{
		keystore:       cfg.Keystore,
		authorities:    cfg.Authorities,
		blockState:     cfg.BlockState,
		env:            cfg.Environment,
		blockImport:    cfg.BlockImport,
		syncOracle:     cfg.SyncOracle,
		backoff:        backoff,
		detector:       cfg.Detector,
		reporter:       cfg.Reporter,
		forceAuthoring: cfg.ForceAuthoring,
		allowMultiple:  cfg.AllowMultipleBlocksPerSlot,
		proportion:     slots.NewSlotProportion(cfg.BlockProposalSlotPortion),
		maxProportion:  maxProportion,
		observers:      cfg.Observers,
	}, nil
}

// AuxData returns the authorities at the header.
func (w *Worker) AuxData(header *types.Header, _ uint64) (slots.AuxData, error) {
	authorities, err := w.authorities.Authorities(header.Hash())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAuthoritiesSet, err)
	}
	return authorities, nil
}

// AuthoritiesLen returns the number of authorities.
func (*Worker) AuthoritiesLen(aux slots.AuxData) (int, bool) {
	authorities, ok := aux.([]Authority)
	if !ok {
		return 0, false
	}
	return len(authorities), true
}

// ClaimSlot claims the slot if the keystore holds the key of the slot
// author. With force authoring, the first authority held is used.
func (w *Worker) ClaimSlot(_ context.Context, _ *types.Header, slot uint64,
	aux slots.AuxData) (slots.Claim, bool) {
	authorities, ok := aux.([]Authority)
	if !ok || len(authorities) == 0 {
		return nil, false
	}

	if w.forceAuthoring {
		for i, authority := range authorities {
			if claim := w.claimAs(slot, i, authority); claim != nil {
				return claim, true
			}
		}
		return nil, false
	}

	author, index, _ := SlotAuthor(slot, authorities)
	claim := w.claimAs(slot, index, author)
	if claim == nil {
		return nil, false
	}
	return claim, true
}

func (w *Worker) claimAs(slot uint64, index int, authority Authority) *Claim {
	if !w.keystore.HasKey(authority.Key) {
		return nil
	}

	if w.authorities.IsDisabled(authority.ID()) {
		logger.Debugf("authority %s is disabled, not claiming slot %d", authority, slot)
		return nil
	}

	kp := w.keystore.GetKeypair(authority.Key)
	if kp == nil {
		return nil
	}

	return &Claim{
		Slot:      slot,
		Index:     index,
		Authority: authority,
		Keypair:   kp,
	}
}

// NotifySlot notifies the observers of the new slot.
func (w *Worker) NotifySlot(_ *types.Header, slot uint64, aux slots.AuxData) {
	n, _ := w.AuthoritiesLen(aux)
	for _, observer := range w.observers {
		observer.SlotNotified(slot, n)
	}
}

// PreDigestData returns the digest announcing the slot.
func (*Worker) PreDigestData(slot uint64, _ slots.Claim) types.Digest {
	return types.NewDigest(PreDigest(slot))
}

// BlockImportParams seals the header with the claimed key.
func (*Worker) BlockImportParams(header *types.Header, body types.Body, claim slots.Claim,
	_ slots.AuxData) (*slots.BlockImportParams, error) {
	c, ok := claim.(*Claim)
	if !ok || c == nil {
		return nil, errInvalidClaim
	}

	seal, err := Seal(header.Hash(), c.Keypair)
	if err != nil {
		return nil, err
	}

	return &slots.BlockImportParams{
		Header:      header.DeepCopy(),
		Body:        body,
		PostDigests: types.NewDigest(seal),
		Slot:        c.Slot,
	}, nil
}

// ForceAuthoring returns true if authoring ignores the network status.
func (w *Worker) ForceAuthoring() bool {
	return w.forceAuthoring
}

// ShouldBackoff returns true if authoring should pause because finality lags.
func (w *Worker) ShouldBackoff(slot uint64, chainHead *types.Header) bool {
	finalised, err := w.blockState.GetFinalisedHeader()
	if err != nil {
		logger.Warnf("cannot get finalised header: %s", err)
		return false
	}

	headSlot, err := FindPreDigest(chainHead)
	if err != nil {
		headSlot = 0
	}

	return w.backoff.ShouldBackoff(uint64(chainHead.Number), headSlot,
		uint64(finalised.Number), slot)
}

// SyncOracle returns the sync oracle.
func (w *Worker) SyncOracle() slots.SyncOracle {
	return w.syncOracle
}

// Proposer creates a proposer on top of the parent.
func (w *Worker) Proposer(parent *types.Header) (slots.Proposer, error) {
	return w.env.NewProposer(parent)
}

// ProposingRemainingDuration returns the proposing time of the slot,
// extended exponentially for the slots skipped since the parent.
func (w *Worker) ProposingRemainingDuration(info slots.SlotInfo) time.Duration {
	var parentSlot *uint64
	if slot, err := FindPreDigest(info.ChainHead); err == nil {
		parentSlot = &slot
	}
	return slots.ProposingRemainingDuration(parentSlot, info, w.proportion,
		w.maxProportion, slots.LenienceExponential)
}

// BlockImport returns the block import verifying the seal and
// notifying the observers.
func (w *Worker) BlockImport() slots.BlockImport {
	return &notifyingBlockImport{worker: w}
}

// VerifyHeader checks the seal of the header against the authorities,
// and runs it through the equivocation detector if one is set.
func (w *Worker) VerifyHeader(header *types.Header, authorities []Authority) (
	slot uint64, author Authority, err error) {
	return w.verifyHeader(header, authorities, true)
}

func (w *Worker) verifyHeader(header *types.Header, authorities []Authority, detect bool) (
	slot uint64, author Authority, err error) {
	slot, author, err = checkHeader(header, authorities, !w.forceAuthoring)
	if err != nil {
		return 0, author, err
	}

	if !detect || w.detector == nil {
		return slot, author, nil
	}

	var sessionIndex uint32
	if w.reporter != nil {
		sessionIndex = w.reporter.SessionIndex()
	}

	proof := w.detector.CheckBlock(header, slot, author.ID(), sessionIndex)
	if proof == nil {
		return slot, author, nil
	}

	if w.reporter != nil {
		w.reporter.ReportEquivocation(proof.Report(sessionIndex))
	}
	return slot, author, fmt.Errorf("%w: %s", ErrProducerEquivocated, proof)
}

type notifyingBlockImport struct {
	worker *Worker
}

func (n *notifyingBlockImport) ImportBlock(params *slots.BlockImportParams) error {
	w := n.worker
	header := params.PostHeader()

	authorities, err := w.authorities.Authorities(header.ParentHash)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAuthoritiesSet, err)
	}

	// several local blocks in one slot are expected when allowed
	slot, author, err := w.verifyHeader(header, authorities, !w.allowMultiple)
	if err != nil {
		return fmt.Errorf("cannot verify sealed header: %w", err)
	}

	if err := w.blockImport.ImportBlock(params); err != nil {
		return err
	}

	index, _ := authorityIndex(author.ID(), authorities)
	for _, observer := range w.observers {
		observer.BlockProduced(header, slot, index)
	}
	return nil
}
