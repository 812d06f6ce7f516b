// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package eventsource

import (
	"context"
	"errors"
	"time"

	"github.com/ChainSafe/micc/internal/log"
	"github.com/ChainSafe/micc/lib/common"
	"github.com/ChainSafe/micc/lib/micc/trigger"
	"github.com/ChainSafe/micc/lib/slots"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "eventsource"))

var (
	errAlreadyStarted = errors.New("event source already started")
	errNotStarted     = errors.New("event source not started")
)

// TransactionPool is the transaction pool view used by the source.
type TransactionPool interface {
	ReadyCount() int
	HighestPriority() (priority uint64, ok bool)
	GetImportNotifierChannel() chan common.Hash
	FreeImportNotifierChannel(ch chan common.Hash)
}

// Config holds the polling intervals of the source.
type Config struct {
	// BackupInterval is the status check interval while the import feed is open.
	BackupInterval time.Duration
	// PollInterval is the status check interval once the import feed closed.
	PollInterval time.Duration
}

// DefaultConfig returns the default source configuration.
func DefaultConfig() Config {
	return Config{
		BackupInterval: 500 * time.Millisecond,
		PollInterval:   100 * time.Millisecond,
	}
}

// Source watches the transaction pool and emits CreateBlock signals.
// A single goroutine consumes the import notifications and the backup
// ticker, so the controller is only driven from one place on this path.
type Source struct {
	cfg        Config
	pool       TransactionPool
	controller *trigger.Controller
	triggers   chan slots.SlotTrigger

	importCh  chan common.Hash
	lastReady int

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a source. Start must be called to begin watching.
func New(cfg Config, pool TransactionPool, controller *trigger.Controller) *Source {
	return &Source{
		cfg:        cfg,
		pool:       pool,
		controller: controller,
		triggers:   make(chan slots.SlotTrigger, 1),
	}
}

// Triggers returns the channel of CreateBlock signals. It is closed
// once the source stops.
func (s *Source) Triggers() <-chan slots.SlotTrigger {
	return s.triggers
}

// Start subscribes to the pool import feed and runs the watcher.
func (s *Source) Start() error {
	if s.done != nil {
		return errAlreadyStarted
	}

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.done = make(chan struct{})
	s.importCh = s.pool.GetImportNotifierChannel()
	// avoid a spurious change detection on the first backup tick
	s.lastReady = s.pool.ReadyCount()

	logger.Infof("starting event driven block production with backup interval %s", s.cfg.BackupInterval)
	go s.run()
	return nil
}

// Stop stops the watcher and waits for it to exit.
func (s *Source) Stop() error {
	if s.done == nil {
		return errNotStarted
	}

	s.cancel()
	<-s.done
	s.pool.FreeImportNotifierChannel(s.importCh)
	return nil
}

func (s *Source) run() {
	defer close(s.done)
	defer close(s.triggers)

	importCh := s.importCh
	ticker := time.NewTicker(s.cfg.BackupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case hash, ok := <-importCh:
			if !ok {
				logger.Warn("import notification feed ended, falling back to polling")
				importCh = nil
				ticker.Reset(s.cfg.PollInterval)
				continue
			}
			s.handleImport(hash)
		case <-ticker.C:
			s.handleTick(importCh == nil)
		}
	}
}

func (s *Source) handleImport(hash common.Hash) {
	logger.Debugf("transaction import detected: %s", hash)
	s.controller.HandleEvent(trigger.NewTransactionAdded(hash))

	ready := s.pool.ReadyCount()
	s.lastReady = ready
	if ready == 0 {
		return
	}

	highest, _ := s.pool.HighestPriority()
	decision := s.controller.HandleEvent(trigger.NewPoolReady(ready, &highest))
	s.forward(decision, ready)
}

func (s *Source) handleTick(polling bool) {
	ready := s.pool.ReadyCount()

	if ready != s.lastReady {
		logger.Debugf("status check detected pool change: %d -> %d ready transactions", s.lastReady, ready)
		if polling && ready > s.lastReady {
			s.controller.HandleEvent(trigger.NewTransactionAdded(common.Hash{}))
		}
		s.lastReady = ready

		if ready == 0 {
			s.controller.HandleEvent(trigger.NewPoolEmpty())
		} else {
			highest, _ := s.pool.HighestPriority()
			decision := s.controller.HandleEvent(trigger.NewPoolReady(ready, &highest))
			if s.forward(decision, ready) {
				return
			}
		}
	}

	if s.forward(s.controller.CheckCollectionWindow(), ready) {
		return
	}
	s.forward(s.controller.CheckEmptyBlockTimer(), ready)
}

// forward sends a CreateBlock signal for decisions that produce a block
// and returns true if it did. A signal already waiting to be consumed
// absorbs the new one.
func (s *Source) forward(decision trigger.Trigger, ready int) (sent bool) {
	if !decision.ShouldProduceBlock() {
		return false
	}

	logger.Debugf("emitting create block signal (%s, %d ready transactions)", decision, ready)
	select {
	case s.triggers <- slots.CreateBlock:
	default:
		logger.Trace("create block signal already pending")
	}
	return true
}
