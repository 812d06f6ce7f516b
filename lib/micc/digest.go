// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package micc

import (
	"fmt"

	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/lib/common"
	"github.com/ChainSafe/micc/lib/crypto"
	"github.com/ChainSafe/micc/lib/crypto/sr25519"
)

// PreDigest returns the pre-runtime digest carrying the slot.
func PreDigest(slot uint64) *types.PreRuntimeDigest {
	return types.NewMiccPreRuntimeDigest(slot)
}

// FindPreDigest returns the slot of the micc pre-runtime digest of the header.
func FindPreDigest(header *types.Header) (slot uint64, err error) {
	if header == nil {
		return 0, ErrNoDigestFound
	}

	var found *types.PreRuntimeDigest
	for _, item := range header.Digest {
		preDigest, ok := item.(*types.PreRuntimeDigest)
		if !ok || preDigest.ConsensusEngineID != types.MiccEngineID {
			continue
		}
		if found != nil {
			return 0, ErrMultipleHeaders
		}
		found = preDigest
	}

	if found == nil {
		return 0, ErrNoDigestFound
	}

	slot, err = types.DecodeSlot(found.Data)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrNoDigestFound, err)
	}
	return slot, nil
}

// Seal signs the header hash with the keypair and returns the seal digest.
func Seal(headerHash common.Hash, kp crypto.Keypair) (*types.SealDigest, error) {
	signature, err := kp.Sign(headerHash[:])
	if err != nil {
		return nil, fmt.Errorf("cannot sign header hash: %w", err)
	}

	return &types.SealDigest{
		ConsensusEngineID: types.MiccEngineID,
		Data:              signature,
	}, nil
}

// CheckHeader verifies the seal of the header against the authority
// assigned to its slot. It returns the slot and the author.
func CheckHeader(header *types.Header, authorities []Authority) (
	slot uint64, author Authority, err error) {
	return checkHeader(header, authorities, true)
}

// checkHeader verifies the seal of the header. If strict is false, any
// authority of the set may have sealed it, as with force authoring.
func checkHeader(header *types.Header, authorities []Authority, strict bool) (
	slot uint64, author Authority, err error) {
	preHeader := header.DeepCopy()

	seal, ok := preHeader.SealDigest()
	if !ok {
		return 0, author, fmt.Errorf("%w: %s", ErrHeaderUnsealed, header.Hash())
	}
	if seal.ConsensusEngineID != types.MiccEngineID || len(seal.Data) != sr25519.SignatureLength {
		return 0, author, fmt.Errorf("%w: %s", ErrHeaderBadSeal, header.Hash())
	}

	preHeader.Digest = preHeader.Digest[:len(preHeader.Digest)-1]
	preHeader.ResetHash()
	preHash := preHeader.Hash()

	slot, err = FindPreDigest(preHeader)
	if err != nil {
		return 0, author, err
	}

	expected, _, ok := SlotAuthor(slot, authorities)
	if !ok {
		return 0, author, ErrSlotAuthorNotFound
	}

	candidates := []Authority{expected}
	if !strict {
		candidates = append(candidates, authorities...)
	}

	for _, candidate := range candidates {
		valid, err := candidate.Key.Verify(preHash[:], seal.Data)
		if err == nil && valid {
			return slot, candidate, nil
		}
	}

	return 0, author, fmt.Errorf("%w: %s", ErrBadSignature, preHash)
}
