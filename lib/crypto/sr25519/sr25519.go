// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sr25519

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ChainSafe/micc/lib/crypto"

	sr25519 "github.com/ChainSafe/go-schnorrkel"
)

const (
	// PublicKeyLength is the expected public key length for sr25519.
	PublicKeyLength = 32
	// SeedLength is the expected seed length for sr25519.
	SeedLength = 32
	// SignatureLength is the expected signature length for sr25519.
	SignatureLength = 64
	// privateKeyLength is the length of the encoded secret scalar.
	privateKeyLength = 32
)

// SigningContext is the context for signatures used or created with substrate
var SigningContext = []byte("substrate")

var (
	errNilPrivateKey     = errors.New("cannot create public key: input is not 32 bytes")
	errInvalidSigLength  = errors.New("invalid signature length")
	errInvalidKeyLength  = errors.New("cannot decode key: input is not 32 bytes")
	errNilPublicKey      = errors.New("public key is nil")
	errSignatureMismatch = errors.New("signature does not decode as sr25519")
)

// Keypair is a sr25519 public-private keypair
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// PublicKey holds reference to a sr25519.PublicKey
type PublicKey struct {
	key *sr25519.PublicKey
}

// PrivateKey holds reference to a sr25519.SecretKey
type PrivateKey struct {
	key *sr25519.SecretKey
}

// NewKeypair returns a sr25519 Keypair given a schnorrkel secret key
func NewKeypair(priv *sr25519.SecretKey) (*Keypair, error) {
	pub, err := priv.Public()
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  &PublicKey{key: pub},
		private: &PrivateKey{key: priv},
	}, nil
}

// NewKeypairFromSeed returns a new Keypair given a seed
func NewKeypairFromSeed(keystr []byte) (*Keypair, error) {
	if len(keystr) != SeedLength {
		return nil, crypto.ErrInvalidSeedLength
	}

	buf := [SeedLength]byte{}
	copy(buf[:], keystr)
	msc, err := sr25519.NewMiniSecretKeyFromRaw(buf)
	if err != nil {
		return nil, err
	}

	priv := msc.ExpandEd25519()
	pub := msc.Public()

	return &Keypair{
		public:  &PublicKey{key: pub},
		private: &PrivateKey{key: priv},
	}, nil
}

// NewKeypairFromMnenomic returns a new Keypair using a bip39 mnemonic
func NewKeypairFromMnenomic(mnemonic, password string) (*Keypair, error) {
	msk, err := sr25519.MiniSecretKeyFromMnemonic(mnemonic, password)
	if err != nil {
		return nil, err
	}

	priv := msk.ExpandEd25519()
	return &Keypair{
		public:  &PublicKey{key: msk.Public()},
		private: &PrivateKey{key: priv},
	}, nil
}

// NewPublicKey returns a sr25519 public key from 32 byte input
func NewPublicKey(in []byte) (*PublicKey, error) {
	if len(in) != PublicKeyLength {
		return nil, errInvalidKeyLength
	}

	buf := [PublicKeyLength]byte{}
	copy(buf[:], in)
	key, err := sr25519.NewPublicKey(buf)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: key}, nil
}

// GenerateKeypair returns a new sr25519 keypair
func GenerateKeypair() (*Keypair, error) {
	priv, pub, err := sr25519.GenerateKeypair()
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  &PublicKey{key: pub},
		private: &PrivateKey{key: priv},
	}, nil
}

// Type returns Sr25519Type
func (*Keypair) Type() crypto.KeyType {
	return crypto.Sr25519Type
}

// Sign uses the keypair to sign the message using the sr25519 signature algorithm
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	return kp.private.Sign(msg)
}

// Public returns the public key corresponding to this keypair
func (kp *Keypair) Public() crypto.PublicKey {
	return kp.public
}

// Private returns the private key corresponding to this keypair
func (kp *Keypair) Private() crypto.PrivateKey {
	return kp.private
}

// Sign uses the private key to sign the message using the sr25519 signature algorithm
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	if k.key == nil {
		return nil, errNilPrivateKey
	}
	t := sr25519.NewSigningContext(SigningContext, msg)
	sig, err := k.key.Sign(t)
	if err != nil {
		return nil, err
	}
	enc := sig.Encode()
	return enc[:], nil
}

// Public returns the public key corresponding to this private key
func (k *PrivateKey) Public() (crypto.PublicKey, error) {
	if k.key == nil {
		return nil, errNilPrivateKey
	}
	pub, err := k.key.Public()
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: pub}, nil
}

// Encode returns the 32-byte encoding of the private key
func (k *PrivateKey) Encode() []byte {
	if k.key == nil {
		return nil
	}
	enc := k.key.Encode()
	return enc[:]
}

// Decode decodes the input bytes into a private key and sets the receiver the decoded key
// Input must be 32 bytes, or else this function will error
func (k *PrivateKey) Decode(in []byte) error {
	if len(in) != privateKeyLength {
		return errInvalidKeyLength
	}
	buf := [privateKeyLength]byte{}
	copy(buf[:], in)
	k.key = &sr25519.SecretKey{}
	return k.key.Decode(buf)
}

// Hex returns the private key as a '0x' prefixed hex string
func (k *PrivateKey) Hex() string {
	return "0x" + hex.EncodeToString(k.Encode())
}

// Verify uses the sr25519 signature algorithm to verify that the message was signed by
// this public key; it returns true if this key created the signature for the message,
// false otherwise
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	if k.key == nil {
		return false, errNilPublicKey
	}

	if len(sig) != SignatureLength {
		return false, errInvalidSigLength
	}

	b := [SignatureLength]byte{}
	copy(b[:], sig)

	s := &sr25519.Signature{}
	err := s.Decode(b)
	if err != nil {
		return false, fmt.Errorf("%w: %s", errSignatureMismatch, err)
	}

	t := sr25519.NewSigningContext(SigningContext, msg)
	return k.key.Verify(s, t)
}

// Encode returns the 32-byte encoding of the public key
func (k *PublicKey) Encode() []byte {
	if k.key == nil {
		return nil
	}

	enc := k.key.Encode()
	return enc[:]
}

// Decode decodes the input bytes into a public key and sets the receiver the decoded key
// Input must be 32 bytes, or else this function will error
func (k *PublicKey) Decode(in []byte) error {
	if len(in) != PublicKeyLength {
		return errInvalidKeyLength
	}
	buf := [PublicKeyLength]byte{}
	copy(buf[:], in)
	k.key = &sr25519.PublicKey{}
	return k.key.Decode(buf)
}

// Hex returns the public key as a '0x' prefixed hex string
func (k *PublicKey) Hex() string {
	return "0x" + hex.EncodeToString(k.Encode())
}
