// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	errCompactTooLarge   = errors.New("compact integer too large")
	errByteArrayTooLarge = errors.New("byte array length exceeds limit")
)

// maxByteArrayLength bounds decoded byte arrays so a corrupted length
// prefix cannot trigger a huge allocation.
const maxByteArrayLength = 16 << 20

// encodeCompact appends the SCALE compact encoding of n.
func encodeCompact(enc []byte, n uint64) []byte {
	switch {
	case n < 1<<6:
		return append(enc, byte(n)<<2)
	case n < 1<<14:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(n)<<2|0b01)
		return append(enc, buf...)
	case n < 1<<30:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(n)<<2|0b10)
		return append(enc, buf...)
	default:
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, n)
		size := 8
		for size > 4 && buf[size-1] == 0 {
			size--
		}
		enc = append(enc, byte(size-4)<<2|0b11)
		return append(enc, buf[:size]...)
	}
}

// decodeCompact reads a SCALE compact integer from r.
func decodeCompact(r io.Reader) (uint64, error) {
	var first [1]byte
	if _, err := io.ReadFull(r, first[:]); err != nil {
		return 0, err
	}

	switch first[0] & 0b11 {
	case 0b00:
		return uint64(first[0] >> 2), nil
	case 0b01:
		var rest [1]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16([]byte{first[0], rest[0]}) >> 2), nil
	case 0b10:
		var rest [3]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return 0, err
		}
		buf := []byte{first[0], rest[0], rest[1], rest[2]}
		return uint64(binary.LittleEndian.Uint32(buf) >> 2), nil
	default:
		size := int(first[0]>>2) + 4
		if size > 8 {
			return 0, fmt.Errorf("%w: %d bytes", errCompactTooLarge, size)
		}
		buf := make([]byte, 8)
		if _, err := io.ReadFull(r, buf[:size]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(buf), nil
	}
}

// encodeByteArray appends a compact length prefixed byte array.
func encodeByteArray(enc, b []byte) []byte {
	enc = encodeCompact(enc, uint64(len(b)))
	return append(enc, b...)
}

// decodeByteArray reads a compact length prefixed byte array.
func decodeByteArray(r io.Reader) ([]byte, error) {
	length, err := decodeCompact(r)
	if err != nil {
		return nil, err
	}
	if length > maxByteArrayLength {
		return nil, fmt.Errorf("%w: %d", errByteArrayTooLarge, length)
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func readByte(r io.Reader) (byte, error) {
	var b [1]byte
	_, err := io.ReadFull(r, b[:])
	return b[0], err
}

// EncodeSlot returns the little endian encoding of a slot number, as
// carried in the pre-runtime digest.
func EncodeSlot(slot uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, slot)
	return buf
}

// DecodeSlot decodes a slot number previously encoded with EncodeSlot.
func DecodeSlot(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("cannot decode slot: expected 8 bytes, got %d", len(b))
	}
	return binary.LittleEndian.Uint64(b), nil
}
