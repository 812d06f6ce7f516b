// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/micc/lib/common"
	"github.com/ChainSafe/micc/lib/crypto"
	"github.com/ChainSafe/micc/lib/crypto/ed25519"
	"github.com/ChainSafe/micc/lib/crypto/sr25519"
)

// DevAccounts lists the well known development accounts in keyring order
var DevAccounts = []string{"alice", "bob", "charlie", "dave", "eve", "ferdie"}

// private keys generated using `subkey inspect //Name`
var devPrivateKeys = []string{
	"0xe5be9a5092b81bca64be81d212e7f2f9eba183bb7a90954f7b76361f6edb5c0a",
	"0x398f0c28f98885e046333d4a41c19cee4c37368a9832c6502f6cfd182e2aef89",
	"0xbc1ede780f784bb6991a585e4f6e61522c14e1cae6ad0895fb57b9a205a8f938",
	"0x868020ae0687dda7d57565093a69090211449845a7e11453612800b663307246",
	"0x786ad0e2df456fe43dd1f91ebca22e235bc162e0bb8d53c633e8c85b2af68b7a",
	"0x42438b7883391c05512a938e36c2df0131e088b3756d6aa7a755fbff19d2f842",
}

// Keyring holds the development keypairs of a given key type
type Keyring struct {
	Keys []crypto.Keypair
}

// NewKeyring returns the development keyring for the key type given
func NewKeyring(typ crypto.KeyType) (*Keyring, error) {
	kr := &Keyring{Keys: make([]crypto.Keypair, len(devPrivateKeys))}
	for i, privateKey := range devPrivateKeys {
		seed, err := common.HexToBytes(privateKey)
		if err != nil {
			return nil, err
		}

		kp, err := keypairFromSeed(typ, seed)
		if err != nil {
			return nil, err
		}
		kr.Keys[i] = kp
	}
	return kr, nil
}

// Alice returns Alice's keypair
func (kr *Keyring) Alice() crypto.Keypair { return kr.Keys[0] }

// Bob returns Bob's keypair
func (kr *Keyring) Bob() crypto.Keypair { return kr.Keys[1] }

// Charlie returns Charlie's keypair
func (kr *Keyring) Charlie() crypto.Keypair { return kr.Keys[2] }

// Account returns the keypair of the named development account
func (kr *Keyring) Account(name string) (crypto.Keypair, error) {
	for i, account := range DevAccounts {
		if account == strings.ToLower(name) {
			return kr.Keys[i], nil
		}
	}
	return nil, fmt.Errorf("unknown development account: %s", name)
}

// LoadKeypair builds a keypair of the given type from a development
// account name or a 0x prefixed 32 byte seed.
func LoadKeypair(typ crypto.KeyType, nameOrSeed string) (crypto.Keypair, error) {
	if strings.HasPrefix(nameOrSeed, "0x") {
		seed, err := common.HexToBytes(nameOrSeed)
		if err != nil {
			return nil, fmt.Errorf("cannot decode seed: %w", err)
		}
		return keypairFromSeed(typ, seed)
	}

	kr, err := NewKeyring(typ)
	if err != nil {
		return nil, err
	}
	return kr.Account(nameOrSeed)
}

func keypairFromSeed(typ crypto.KeyType, seed []byte) (crypto.Keypair, error) {
	switch typ {
	case crypto.Sr25519Type:
		kp, err := sr25519.NewKeypairFromSeed(seed)
		if err != nil {
			return nil, err
		}
		return kp, nil
	case crypto.Ed25519Type:
		kp, err := ed25519.NewKeypairFromSeed(seed)
		if err != nil {
			return nil, err
		}
		return kp, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrKeyTypeNotSupported, typ)
	}
}
