// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"errors"
)

// KeyType str
type KeyType = string

// Ed25519Type ed25519
const Ed25519Type KeyType = "ed25519"

// Sr25519Type sr25519
const Sr25519Type KeyType = "sr25519"

// UnknownType is used by the GenericKeystore
const UnknownType KeyType = "unknown"

// ErrInvalidSeedLength is returned when a seed is not 32 bytes long
var ErrInvalidSeedLength = errors.New("cannot generate key from seed: seed is not 32 bytes long")

// Keypair interface
type Keypair interface {
	Type() KeyType
	Sign(msg []byte) ([]byte, error)
	Public() PublicKey
	Private() PrivateKey
}

// PublicKey interface
type PublicKey interface {
	Verify(msg, sig []byte) (bool, error)
	Encode() []byte
	Decode([]byte) error
	Hex() string
}

// PrivateKey interface
type PrivateKey interface {
	Sign(msg []byte) ([]byte, error)
	Public() (PublicKey, error)
	Encode() []byte
	Decode([]byte) error
	Hex() string
}
