// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ChainSafe/micc/lib/crypto"

	bip39 "github.com/cosmos/go-bip39"
)

const (
	// PublicKeyLength is the fixed Public Key Length
	PublicKeyLength int = 32
	// SeedLength is the length of a ed25519 seed
	SeedLength int = 32
	// PrivateKeyLength is the fixed Private Key Length
	PrivateKeyLength int = 64
	// SignatureLength is the fixed Signature Length
	SignatureLength int = 64
)

var (
	// ErrSignatureVerificationFailed is returned when a signature does not verify
	ErrSignatureVerificationFailed = errors.New("failed to verify signature")

	errInvalidPublicKeyLength  = errors.New("cannot create public key: input is not 32 bytes")
	errInvalidPrivateKeyLength = errors.New("cannot create private key: input is not 64 bytes")
)

// Keypair is a ed25519 public-private keypair
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// PrivateKey is the ed25519 private key
type PrivateKey ed25519.PrivateKey

// PublicKey is the ed25519 public key
type PublicKey ed25519.PublicKey

// NewKeypair returns an Ed25519 keypair given a ed25519 private key
func NewKeypair(priv ed25519.PrivateKey) *Keypair {
	pubkey := PublicKey(priv.Public().(ed25519.PublicKey))
	privkey := PrivateKey(priv)
	return &Keypair{
		public:  &pubkey,
		private: &privkey,
	}
}

// NewKeypairFromSeed generates a new ed25519 keypair from a 32 bytes seed
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, crypto.ErrInvalidSeedLength
	}
	return NewKeypair(ed25519.NewKeyFromSeed(seed)), nil
}

// NewKeypairFromMnenomic returns a new Keypair using a bip39 mnemonic
func NewKeypairFromMnenomic(mnemonic, password string) (*Keypair, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, password)
	if err != nil {
		return nil, err
	}
	return NewKeypairFromSeed(seed[:SeedLength])
}

// GenerateKeypair returns a new ed25519 keypair
func GenerateKeypair() (*Keypair, error) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, err
	}
	return NewKeypair(priv), nil
}

// NewPublicKey returns an ed25519 public key that consists of the input bytes
// Input length must be 32 bytes
func NewPublicKey(in []byte) (*PublicKey, error) {
	if len(in) != PublicKeyLength {
		return nil, errInvalidPublicKeyLength
	}

	pub := PublicKey(append([]byte(nil), in...))
	return &pub, nil
}

// VerifySignature verifies a signature given a public key and a message
func VerifySignature(publicKey, signature, message []byte) error {
	pubKey, err := NewPublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("ed25519: %w", err)
	}

	ok, err := pubKey.Verify(message, signature)
	if err != nil {
		return fmt.Errorf("ed25519: %w", err)
	} else if !ok {
		return fmt.Errorf("ed25519: %w: for message 0x%x, signature 0x%x and public key 0x%x",
			ErrSignatureVerificationFailed, message, signature, publicKey)
	}

	return nil
}

// Type returns Ed25519Type
func (*Keypair) Type() crypto.KeyType {
	return crypto.Ed25519Type
}

// Sign uses the keypair to sign the message using the ed25519 signature algorithm
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	return kp.private.Sign(msg)
}

// Public returns the keypair's public key
func (kp *Keypair) Public() crypto.PublicKey {
	return kp.public
}

// Private returns the keypair's private key
func (kp *Keypair) Private() crypto.PrivateKey {
	return kp.private
}

// Sign uses the ed25519 signature algorithm to sign the message
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	if len(*k) != PrivateKeyLength {
		return nil, errInvalidPrivateKeyLength
	}
	return ed25519.Sign(ed25519.PrivateKey(*k), msg), nil
}

// Public returns the public key corresponding to the ed25519 private key
func (k *PrivateKey) Public() (crypto.PublicKey, error) {
	if len(*k) != PrivateKeyLength {
		return nil, errInvalidPrivateKeyLength
	}
	pub := PublicKey(ed25519.PrivateKey(*k).Public().(ed25519.PublicKey))
	return &pub, nil
}

// Encode returns the bytes underlying the ed25519 PrivateKey
func (k *PrivateKey) Encode() []byte {
	return append([]byte(nil), *k...)
}

// Decode turns input bytes into an ed25519 PrivateKey
// the input must be 64 bytes, or the function will return an error
func (k *PrivateKey) Decode(in []byte) error {
	if len(in) != PrivateKeyLength {
		return errInvalidPrivateKeyLength
	}
	*k = PrivateKey(append([]byte(nil), in...))
	return nil
}

// Hex returns the private key as a '0x' prefixed hex string
func (k *PrivateKey) Hex() string {
	return "0x" + hex.EncodeToString(k.Encode())
}

// Verify checks that Ed25519PublicKey was used to create the signature for the message
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, nil
	}
	if len(*k) != PublicKeyLength {
		return false, errInvalidPublicKeyLength
	}
	return ed25519.Verify(ed25519.PublicKey(*k), msg, sig), nil
}

// Encode returns the encoding of the ed25519 PublicKey
func (k *PublicKey) Encode() []byte {
	return append([]byte(nil), *k...)
}

// Decode turns input bytes into an ed25519 PublicKey
// the input must be 32 bytes, or the function will return and error
func (k *PublicKey) Decode(in []byte) error {
	if len(in) != PublicKeyLength {
		return errInvalidPublicKeyLength
	}
	*k = PublicKey(append([]byte(nil), in...))
	return nil
}

// Hex returns the public key as a '0x' prefixed hex string
func (k *PublicKey) Hex() string {
	return "0x" + hex.EncodeToString(k.Encode())
}
