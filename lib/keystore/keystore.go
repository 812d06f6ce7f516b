// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/micc/lib/crypto"
)

var (
	// ErrKeyTypeNotSupported is returned when a keypair of the wrong type is inserted
	ErrKeyTypeNotSupported = errors.New("given key type is not supported by this keystore")
)

// Name represents a defined keystore name
type Name string

// MiccName is the keystore holding the authoring keys
var MiccName Name = "micc"

// Keystore provides key management functionality
type Keystore interface {
	Name() Name
	Type() crypto.KeyType
	Insert(kp crypto.Keypair) error
	Keypairs() []crypto.Keypair
	GetKeypair(pub crypto.PublicKey) crypto.Keypair
	HasKey(pub crypto.PublicKey) bool
	PublicKeys() []crypto.PublicKey
	Size() int
}

// BasicKeystore holds keys of a certain type
type BasicKeystore struct {
	name Name
	typ  crypto.KeyType
	keys map[string]crypto.Keypair // map of public key encodings to keypairs
	lock sync.RWMutex
}

// NewBasicKeystore creates a new BasicKeystore with the given key type
func NewBasicKeystore(name Name, typ crypto.KeyType) *BasicKeystore {
	return &BasicKeystore{
		name: name,
		typ:  typ,
		keys: make(map[string]crypto.Keypair),
	}
}

// Name returns the keystore's name
func (ks *BasicKeystore) Name() Name {
	return ks.name
}

// Type returns the keystore's key type
func (ks *BasicKeystore) Type() crypto.KeyType {
	return ks.typ
}

// Size returns the number of keys in the keystore
func (ks *BasicKeystore) Size() int {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	return len(ks.keys)
}

// Insert adds a keypair to the keystore
func (ks *BasicKeystore) Insert(kp crypto.Keypair) error {
	if kp.Type() != ks.typ {
		return fmt.Errorf("%w: %s", ErrKeyTypeNotSupported, kp.Type())
	}

	ks.lock.Lock()
	defer ks.lock.Unlock()
	ks.keys[string(kp.Public().Encode())] = kp
	return nil
}

// GetKeypair returns a keypair corresponding to the given public key, or nil if it doesn't exist
func (ks *BasicKeystore) GetKeypair(pub crypto.PublicKey) crypto.Keypair {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	return ks.keys[string(pub.Encode())]
}

// HasKey returns true if the keystore holds the private key for the given public key
func (ks *BasicKeystore) HasKey(pub crypto.PublicKey) bool {
	return ks.GetKeypair(pub) != nil
}

// PublicKeys returns all public keys in the keystore, in a stable order
func (ks *BasicKeystore) PublicKeys() []crypto.PublicKey {
	kps := ks.Keypairs()
	srkeys := make([]crypto.PublicKey, len(kps))
	for i, kp := range kps {
		srkeys[i] = kp.Public()
	}
	return srkeys
}

// Keypairs returns all keypairs in the keystore, ordered by public key
func (ks *BasicKeystore) Keypairs() []crypto.Keypair {
	ks.lock.RLock()
	defer ks.lock.RUnlock()

	kps := make([]crypto.Keypair, 0, len(ks.keys))
	for _, kp := range ks.keys {
		i := 0
		for i < len(kps) && bytes.Compare(kps[i].Public().Encode(), kp.Public().Encode()) < 0 {
			i++
		}
		kps = append(kps, nil)
		copy(kps[i+1:], kps[i:])
		kps[i] = kp
	}
	return kps
}
