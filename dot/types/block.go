// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/micc/lib/common"
)

// Extrinsic is a generic transaction whose format is verified in the runtime
type Extrinsic []byte

// Hash returns the blake2b hash of the extrinsic
func (e Extrinsic) Hash() common.Hash {
	return common.MustBlake2bHash(e)
}

// Body is the extrinsics inside a block
type Body []Extrinsic

// Encode returns the SCALE encoding of the body
func (b Body) Encode() []byte {
	enc := encodeCompact(nil, uint64(len(b)))
	for _, ext := range b {
		enc = encodeByteArray(enc, ext)
	}
	return enc
}

// Root returns the blake2b hash over the body encoding, used as the
// extrinsics root of the header.
func (b Body) Root() common.Hash {
	return common.MustBlake2bHash(b.Encode())
}

// DecodeBody decodes a SCALE encoded body
func DecodeBody(enc []byte) (Body, error) {
	r := bytes.NewReader(enc)
	num, err := decodeCompact(r)
	if err != nil {
		return nil, fmt.Errorf("cannot decode body length: %w", err)
	}

	body := make(Body, 0, num)
	for i := uint64(0); i < num; i++ {
		ext, err := decodeByteArray(r)
		if err != nil {
			return nil, fmt.Errorf("cannot decode extrinsic %d: %w", i, err)
		}
		body = append(body, ext)
	}
	return body, nil
}

// Block defines a state block
type Block struct {
	Header Header
	Body   Body
}

// NewBlock returns a new Block
func NewBlock(header Header, body Body) Block {
	return Block{
		Header: header,
		Body:   body,
	}
}
