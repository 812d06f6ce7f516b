// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trigger

import (
	"sync"
	"time"
)

type fakeClock struct {
	mutex sync.Mutex
	t     time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1_700_000_000, 0)}
}

func (f *fakeClock) now() time.Time {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.t
}

func (f *fakeClock) advance(d time.Duration) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.t = f.t.Add(d)
}

func uint64Ptr(u uint64) *uint64 { return &u }
