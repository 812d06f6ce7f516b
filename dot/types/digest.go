// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidDigestItemType is returned when decoding an unknown digest item
var ErrInvalidDigestItemType = errors.New("invalid digest item type")

// ConsensusEngineID is a 4-character identifier of a consensus engine
type ConsensusEngineID [4]byte

// ToBytes turns ConsensusEngineID to a byte array
func (h ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(h)
	return b[:]
}

// MiccEngineID is the hard-coded micc consensus ID
var MiccEngineID = ConsensusEngineID{'m', 'i', 'c', 'c'}

const (
	// ConsensusDigestType is the byte representation of ConsensusDigest
	ConsensusDigestType = byte(4)
	// SealDigestType is the byte representation of SealDigest
	SealDigestType = byte(5)
	// PreRuntimeDigestType is the byte representation of PreRuntimeDigest
	PreRuntimeDigestType = byte(6)
)

// DigestItem can be of one of three types of digest: PreRuntimeDigest, ConsensusDigest, or SealDigest.
type DigestItem interface {
	String() string
	Type() byte
	Encode() []byte
	Decode(io.Reader) error // Decode assumes the type byte (first byte) has been removed from the encoding.
}

// Digest represents the block digest. It consists of digest items.
type Digest []DigestItem

// NewDigest returns a new Digest from the given DigestItems
func NewDigest(items ...DigestItem) Digest {
	return items
}

// Encode returns the SCALE encoded digest
func (d Digest) Encode() []byte {
	enc := encodeCompact(nil, uint64(len(d)))
	for _, item := range d {
		enc = append(enc, item.Encode()...)
	}
	return enc
}

// DecodeDigest decodes the input into a Digest
func DecodeDigest(r io.Reader) (Digest, error) {
	num, err := decodeCompact(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode length of digest items: %w", err)
	}

	digest := make(Digest, 0, num)
	for i := uint64(0); i < num; i++ {
		item, err := DecodeDigestItem(r)
		if err != nil {
			return nil, fmt.Errorf("could not decode digest item %d: %w", i, err)
		}
		digest = append(digest, item)
	}

	return digest, nil
}

// DecodeDigestItem will decode byte array to DigestItem
func DecodeDigestItem(r io.Reader) (DigestItem, error) {
	typ, err := readByte(r)
	if err != nil {
		return nil, err
	}

	var d DigestItem
	switch typ {
	case PreRuntimeDigestType:
		d = new(PreRuntimeDigest)
	case ConsensusDigestType:
		d = new(ConsensusDigest)
	case SealDigestType:
		d = new(SealDigest)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigestItemType, typ)
	}

	if err = d.Decode(r); err != nil {
		return nil, err
	}
	return d, nil
}

// PreRuntimeDigest contains messages from the consensus engine to the runtime.
type PreRuntimeDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// NewMiccPreRuntimeDigest returns a PreRuntimeDigest carrying the given slot
func NewMiccPreRuntimeDigest(slot uint64) *PreRuntimeDigest {
	return &PreRuntimeDigest{
		ConsensusEngineID: MiccEngineID,
		Data:              EncodeSlot(slot),
	}
}

// String returns the digest as a string
func (d *PreRuntimeDigest) String() string {
	return fmt.Sprintf("PreRuntimeDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Type will return PreRuntimeDigestType
func (*PreRuntimeDigest) Type() byte {
	return PreRuntimeDigestType
}

// Encode will encode PreRuntimeDigest ConsensusEngineID and Data
func (d *PreRuntimeDigest) Encode() []byte {
	enc := []byte{PreRuntimeDigestType}
	enc = append(enc, d.ConsensusEngineID[:]...)
	return encodeByteArray(enc, d.Data)
}

// Decode will decode PreRuntimeDigest ConsensusEngineID and Data
func (d *PreRuntimeDigest) Decode(r io.Reader) (err error) {
	d.ConsensusEngineID, d.Data, err = decodeEngineMessage(r)
	return err
}

// ConsensusDigest contains messages from the runtime to the consensus engine.
type ConsensusDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest as a string
func (d *ConsensusDigest) String() string {
	return fmt.Sprintf("ConsensusDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Type returns the ConsensusDigest type
func (*ConsensusDigest) Type() byte {
	return ConsensusDigestType
}

// Encode will encode ConsensusDigest ConsensusEngineID and Data
func (d *ConsensusDigest) Encode() []byte {
	enc := []byte{ConsensusDigestType}
	enc = append(enc, d.ConsensusEngineID[:]...)
	return encodeByteArray(enc, d.Data)
}

// Decode will decode into ConsensusEngineID and Data
func (d *ConsensusDigest) Decode(r io.Reader) (err error) {
	d.ConsensusEngineID, d.Data, err = decodeEngineMessage(r)
	return err
}

// SealDigest contains the seal or signature. This is only used by native code.
type SealDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest as a string
func (d *SealDigest) String() string {
	return fmt.Sprintf("SealDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Type will return SealDigest type
func (*SealDigest) Type() byte {
	return SealDigestType
}

// Encode will encode SealDigest ConsensusEngineID and Data
func (d *SealDigest) Encode() []byte {
	enc := []byte{SealDigestType}
	enc = append(enc, d.ConsensusEngineID[:]...)
	return encodeByteArray(enc, d.Data)
}

// Decode will decode into SealDigest ConsensusEngineID and Data
func (d *SealDigest) Decode(r io.Reader) (err error) {
	d.ConsensusEngineID, d.Data, err = decodeEngineMessage(r)
	return err
}

func decodeEngineMessage(r io.Reader) (id ConsensusEngineID, data []byte, err error) {
	if _, err = io.ReadFull(r, id[:]); err != nil {
		return id, nil, err
	}

	data, err = decodeByteArray(r)
	return id, data, err
}
