// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package micc

import (
	"github.com/ChainSafe/micc/lib/crypto"
	"github.com/ChainSafe/micc/lib/micc/equivocation"
)

// Authority is a block authoring authority.
type Authority struct {
	Key crypto.PublicKey
}

// NewAuthority returns an authority with the public key given.
func NewAuthority(key crypto.PublicKey) Authority {
	return Authority{Key: key}
}

// ID returns the equivocation identifier of the authority.
func (a Authority) ID() equivocation.AuthorityID {
	return equivocation.NewAuthorityID(a.Key.Encode())
}

func (a Authority) String() string {
	return a.Key.Hex()
}

// SlotAuthor returns the authority expected to author the slot,
// which is the authority at index slot modulo the set size.
func SlotAuthor(slot uint64, authorities []Authority) (author Authority, index int, ok bool) {
	if len(authorities) == 0 {
		return author, 0, false
	}
	index = int(slot % uint64(len(authorities)))
	return authorities[index], index, true
}

func authorityIndex(id equivocation.AuthorityID, authorities []Authority) (index int, ok bool) {
	for i, authority := range authorities {
		if authority.ID() == id {
			return i, true
		}
	}
	return 0, false
}
