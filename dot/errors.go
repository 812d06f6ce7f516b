// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
)

// ErrInvalidConfig is returned when the configuration cannot run a node.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrKeyNotAuthority is returned when the local key is not a genesis authority.
var ErrKeyNotAuthority = errors.New("local key is not an authority")
