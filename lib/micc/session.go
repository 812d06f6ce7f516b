// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package micc

import (
	"sync"

	"github.com/ChainSafe/micc/dot/types"
)

// NewSessionObserver returns an observer calling onNewSession whenever a
// notified slot belongs to a later session than the previous one.
// Sessions are sessionLength slots long. The first notified slot only
// sets the starting session, and a jump over several sessions triggers
// a single call.
func NewSessionObserver(sessionLength uint64, onNewSession func(session uint64)) Observer {
	return &sessionObserver{
		length:       sessionLength,
		onNewSession: onNewSession,
	}
}

type sessionObserver struct {
	length       uint64
	onNewSession func(session uint64)

	mutex   sync.Mutex
	started bool
	current uint64
}

func (s *sessionObserver) SlotNotified(slot uint64, _ int) {
	if s.length == 0 {
		return
	}

	session := slot / s.length
	if !s.advance(session) {
		return
	}

	logger.Infof("🔄 slot %d starts session %d", slot, session)
	s.onNewSession(session)
}

func (s *sessionObserver) advance(session uint64) (changed bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.started {
		s.started = true
		s.current = session
		return false
	}

	if session <= s.current {
		return false
	}
	s.current = session
	return true
}

func (*sessionObserver) BlockProduced(*types.Header, uint64, int) {}
