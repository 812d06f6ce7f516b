// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ChainSafe/micc/lib/common"
)

// Header is a state block header
type Header struct {
	ParentHash     common.Hash `json:"parentHash"`
	Number         uint        `json:"number"`
	StateRoot      common.Hash `json:"stateRoot"`
	ExtrinsicsRoot common.Hash `json:"extrinsicsRoot"`
	Digest         Digest      `json:"digest"`
	hash           common.Hash
}

// NewHeader creates a new block header and sets its hash field
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number uint, digest Digest) *Header {
	bh := &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}

	bh.Hash()
	return bh
}

// NewEmptyHeader returns a new header with all zero values
func NewEmptyHeader() *Header {
	return &Header{
		Digest: Digest{},
	}
}

// DeepCopy returns a deep copy of the header to prevent side effects down the road
func (bh *Header) DeepCopy() *Header {
	cp := NewEmptyHeader()
	cp.ParentHash = bh.ParentHash
	cp.Number = bh.Number
	cp.StateRoot = bh.StateRoot
	cp.ExtrinsicsRoot = bh.ExtrinsicsRoot

	for _, item := range bh.Digest {
		switch d := item.(type) {
		case *PreRuntimeDigest:
			cp.Digest = append(cp.Digest, &PreRuntimeDigest{
				ConsensusEngineID: d.ConsensusEngineID,
				Data:              append([]byte(nil), d.Data...),
			})
		case *ConsensusDigest:
			cp.Digest = append(cp.Digest, &ConsensusDigest{
				ConsensusEngineID: d.ConsensusEngineID,
				Data:              append([]byte(nil), d.Data...),
			})
		case *SealDigest:
			cp.Digest = append(cp.Digest, &SealDigest{
				ConsensusEngineID: d.ConsensusEngineID,
				Data:              append([]byte(nil), d.Data...),
			})
		}
	}

	cp.hash = bh.hash
	return cp
}

// String returns the formatted header as a string
func (bh *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v Hash=%s",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, bh.Digest, bh.Hash())
}

// Hash returns the hash of the block header
// If the internal hash field is nil, it hashes the block and sets the hash field.
// If hashing the header errors, this will panic.
func (bh *Header) Hash() common.Hash {
	if bh.hash.IsEmpty() {
		bh.hash = common.MustBlake2bHash(bh.Encode())
	}
	return bh.hash
}

// ResetHash clears the cached hash so that it is recomputed after the header changed
func (bh *Header) ResetHash() {
	bh.hash = common.EmptyHash
}

// Encode returns the SCALE encoding of a header
func (bh *Header) Encode() []byte {
	enc := append([]byte(nil), bh.ParentHash[:]...)
	enc = encodeCompact(enc, uint64(bh.Number))
	enc = append(enc, bh.StateRoot[:]...)
	enc = append(enc, bh.ExtrinsicsRoot[:]...)
	return append(enc, bh.Digest.Encode()...)
}

// Decode decodes the SCALE encoded input into this header
func (bh *Header) Decode(r io.Reader) error {
	if _, err := io.ReadFull(r, bh.ParentHash[:]); err != nil {
		return fmt.Errorf("cannot decode parent hash: %w", err)
	}

	number, err := decodeCompact(r)
	if err != nil {
		return fmt.Errorf("cannot decode number: %w", err)
	}
	bh.Number = uint(number)

	if _, err = io.ReadFull(r, bh.StateRoot[:]); err != nil {
		return fmt.Errorf("cannot decode state root: %w", err)
	}

	if _, err = io.ReadFull(r, bh.ExtrinsicsRoot[:]); err != nil {
		return fmt.Errorf("cannot decode extrinsics root: %w", err)
	}

	bh.Digest, err = DecodeDigest(r)
	if err != nil {
		return err
	}

	bh.ResetHash()
	return nil
}

// DecodeHeader decodes a SCALE encoded header
func DecodeHeader(enc []byte) (*Header, error) {
	bh := NewEmptyHeader()
	if err := bh.Decode(bytes.NewReader(enc)); err != nil {
		return nil, err
	}
	return bh, nil
}

// PreRuntimeDigest returns the first pre-runtime digest for the engine given
func (bh *Header) PreRuntimeDigest(id ConsensusEngineID) (*PreRuntimeDigest, bool) {
	for _, item := range bh.Digest {
		if d, ok := item.(*PreRuntimeDigest); ok && d.ConsensusEngineID == id {
			return d, true
		}
	}
	return nil, false
}

// SealDigest returns the last digest item if it is a seal
func (bh *Header) SealDigest() (*SealDigest, bool) {
	if len(bh.Digest) == 0 {
		return nil, false
	}
	seal, ok := bh.Digest[len(bh.Digest)-1].(*SealDigest)
	return seal, ok
}
