// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package equivocation

import (
	"math"
	"math/bits"
)

const basisPoints = 10000

// VerifyProof returns true if the two headers of the proof differ and
// are at the same block number.
func VerifyProof(proof *Proof) bool {
	if proof == nil || proof.FirstHeader == nil || proof.SecondHeader == nil {
		return false
	}

	if proof.FirstHeader.Hash() == proof.SecondHeader.Hash() {
		return false
	}

	return proof.FirstHeader.Number == proof.SecondHeader.Number
}

// CalculateSlashAmount returns the part of the total stake to slash,
// saturating at the maximum uint64 value.
func CalculateSlashAmount(totalStake uint64, config Config) uint64 {
	hi, lo := bits.Mul64(totalStake, uint64(config.SlashPercentage))
	if hi >= basisPoints {
		return math.MaxUint64
	}
	quotient, _ := bits.Div64(hi, lo, basisPoints)
	return quotient
}

// IsPastGracePeriod returns true if the current block is at least
// the grace period after the equivocation block.
func IsPastGracePeriod(equivocationBlock, currentBlock uint32, config Config) bool {
	return uint64(currentBlock) >= uint64(equivocationBlock)+uint64(config.GracePeriod)
}
