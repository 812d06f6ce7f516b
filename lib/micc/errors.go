// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package micc

import (
	"errors"
)

var (
	// ErrMultipleHeaders is returned when a header has more than one micc pre-runtime digest
	ErrMultipleHeaders = errors.New("multiple micc pre-runtime headers")

	// ErrNoDigestFound is returned when a header has no micc pre-runtime digest
	ErrNoDigestFound = errors.New("no micc pre-runtime digest found")

	// ErrHeaderUnsealed is returned when the last digest item of a header is not a seal
	ErrHeaderUnsealed = errors.New("header is unsealed")

	// ErrHeaderBadSeal is returned when the seal of a header is malformed
	ErrHeaderBadSeal = errors.New("header has a bad seal")

	// ErrSlotAuthorNotFound is returned when no authority is assigned to the slot
	ErrSlotAuthorNotFound = errors.New("slot author not found")

	// ErrBadSignature is returned when the seal signature does not verify
	ErrBadSignature = errors.New("bad signature")

	// ErrInvalidAuthoritiesSet is returned when the authority set cannot be fetched
	ErrInvalidAuthoritiesSet = errors.New("invalid authorities set")

	// ErrProducerEquivocated is returned when a block producer has produced conflicting blocks
	ErrProducerEquivocated = errors.New("block producer equivocated")

	// ErrAuthorityDisabled is returned when the slot author is disabled
	ErrAuthorityDisabled = errors.New("authority is disabled")

	// ErrSlotNotIncreasing is returned when an imported slot does not increase
	ErrSlotNotIncreasing = errors.New("slot did not increase")

	errNilKeystore    = errors.New("keystore is nil")
	errNilAuthorities = errors.New("authorities API is nil")
	errNilBlockState  = errors.New("block state is nil")
	errNilEnvironment = errors.New("proposer environment is nil")
	errNilBlockImport = errors.New("block import is nil")
	errNilSyncOracle  = errors.New("sync oracle is nil")
	errInvalidClaim   = errors.New("invalid slot claim")
	errNoAuthorities  = errors.New("authority set is empty")
)
