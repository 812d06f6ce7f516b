// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package micc

import (
	"testing"

	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/lib/common"
	"github.com/ChainSafe/micc/lib/crypto"
	"github.com/ChainSafe/micc/lib/keystore"
	"github.com/stretchr/testify/require"
)

func newTestKeyring(t *testing.T) *keystore.Keyring {
	t.Helper()
	kr, err := keystore.NewKeyring(crypto.Sr25519Type)
	require.NoError(t, err)
	return kr
}

func newTestKeystore(t *testing.T, keypairs ...crypto.Keypair) *keystore.BasicKeystore {
	t.Helper()
	ks := keystore.NewBasicKeystore(keystore.MiccName, crypto.Sr25519Type)
	for _, kp := range keypairs {
		require.NoError(t, ks.Insert(kp))
	}
	return ks
}

func authoritiesOf(keypairs ...crypto.Keypair) []Authority {
	authorities := make([]Authority, len(keypairs))
	for i, kp := range keypairs {
		authorities[i] = NewAuthority(kp.Public())
	}
	return authorities
}

func unsealedHeader(number uint, slot uint64, stateRoot byte) *types.Header {
	return types.NewHeader(common.Hash{1}, common.Hash{stateRoot}, common.Hash{},
		number, types.NewDigest(PreDigest(slot)))
}

func sealedHeader(t *testing.T, kp crypto.Keypair, number uint, slot uint64, stateRoot byte) *types.Header {
	t.Helper()
	header := unsealedHeader(number, slot, stateRoot)
	seal, err := Seal(header.Hash(), kp)
	require.NoError(t, err)
	header.Digest = append(header.Digest, seal)
	header.ResetHash()
	return header
}
