// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"context"
	"fmt"
	"time"

	"github.com/ChainSafe/micc/dot/state"
	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/internal/metrics"
	"github.com/ChainSafe/micc/lib/common"
	"github.com/ChainSafe/micc/lib/crypto"
	"github.com/ChainSafe/micc/lib/keystore"
	"github.com/ChainSafe/micc/lib/micc"
	"github.com/ChainSafe/micc/lib/micc/equivocation"
	"github.com/ChainSafe/micc/lib/micc/monitor"
	"github.com/ChainSafe/micc/lib/slots"
	"github.com/dgraph-io/badger/v2"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// newGenesisHeader returns the empty genesis header of the development chain.
func newGenesisHeader() *types.Header {
	return types.NewHeader(common.Hash{}, common.Hash{}, types.Body{}.Root(), 0, types.NewDigest())
}

func createStateService(cfg *Config) (*badger.DB, *state.BlockState, error) {
	db, err := state.NewInMemoryDB()
	if err != nil {
		return nil, nil, err
	}

	blockState, err := state.NewBlockState(db, newGenesisHeader(), cfg.Core.FinalityDepth)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("cannot create block state: %w", err)
	}
	return db, blockState, nil
}

// createKeystore loads the genesis authorities and the local key.
func createKeystore(cfg *Config) (*keystore.BasicKeystore, []micc.Authority, error) {
	authorities := make([]micc.Authority, len(cfg.Core.Authorities))
	for i, nameOrSeed := range cfg.Core.Authorities {
		kp, err := keystore.LoadKeypair(crypto.Sr25519Type, nameOrSeed)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot load authority %d: %w", i, err)
		}
		authorities[i] = micc.NewAuthority(kp.Public())
	}

	ks := keystore.NewBasicKeystore(keystore.MiccName, crypto.Sr25519Type)
	if cfg.Core.Key == "" {
		logger.Info("no local key configured, blocks will not be authored")
		return ks, authorities, nil
	}

	kp, err := keystore.LoadKeypair(crypto.Sr25519Type, cfg.Core.Key)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load local key: %w", err)
	}

	isAuthority := false
	for _, authority := range authorities {
		if authority.Key.Hex() == kp.Public().Hex() {
			isAuthority = true
			break
		}
	}
	if !isAuthority {
		return nil, nil, fmt.Errorf("%w: %s", ErrKeyNotAuthority, kp.Public().Hex())
	}

	err = ks.Insert(kp)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot insert local key: %w", err)
	}
	return ks, authorities, nil
}

func createAuthoritySet(cfg *Config, authorities []micc.Authority) *micc.AuthoritySet {
	set := micc.NewAuthoritySet(cfg.Core.MaxAuthorities,
		cfg.Core.AllowMultipleBlocksPerSlot, cfg.Equivocation.EnableSlashing)
	set.Initialize(authorities)
	return set
}

func createMonitor(cfg *Config, registerer prometheus.Registerer) (*monitor.Monitor, error) {
	if !cfg.Monitor.Enabled {
		return nil, nil //nolint:nilnil
	}

	m, err := monitor.New(cfg.Monitor.Config, registerer)
	if err != nil {
		return nil, fmt.Errorf("cannot create monitor: %w", err)
	}
	return m, nil
}

// newSessionHandler returns the function starting a new session on the
// authority set, the equivocation detector and the monitor if any.
func newSessionHandler(authorities *micc.AuthoritySet, detector *equivocation.Detector,
	mon *monitor.Monitor) func(session uint64) {
	return func(session uint64) {
		index := authorities.NewSession()
		detector.NewSession()
		if mon != nil {
			mon.NewSession()
		}
		logger.Infof("new session %d started with session index %d", session, index)
	}
}

type workerDeps struct {
	keystore     keystore.Keystore
	authorities  *micc.AuthoritySet
	blockState   *state.BlockState
	transactions *state.TransactionState
	detector     *equivocation.Detector
	observers    []micc.Observer
}

func createWorker(cfg *Config, deps workerDeps) (*micc.Worker, error) {
	worker, err := micc.NewWorker(micc.WorkerConfig{
		Keystore:    deps.keystore,
		Authorities: deps.authorities,
		BlockState:  deps.blockState,
		Environment: &proposerFactory{pool: deps.transactions},
		BlockImport: &blockImport{
			slots:      deps.authorities,
			blockState: deps.blockState,
			pool:       deps.transactions,
		},
		SyncOracle:                  syncOracle{},
		Backoff:                     cfg.backoffStrategy(),
		Detector:                    deps.detector,
		Reporter:                    deps.authorities,
		ForceAuthoring:              cfg.Core.ForceAuthoring,
		AllowMultipleBlocksPerSlot:  cfg.Core.AllowMultipleBlocksPerSlot,
		BlockProposalSlotPortion:    cfg.Core.BlockProposalSlotPortion,
		MaxBlockProposalSlotPortion: cfg.Core.MaxBlockProposalSlotPortion,
		Observers:                   deps.observers,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create micc worker: %w", err)
	}
	return worker, nil
}

func createMetricsServer(cfg *Config, gatherer prometheus.Gatherer) *metrics.Server {
	if !cfg.Global.PublishMetrics {
		return nil
	}
	return metrics.NewServer(cfg.Global.MetricsAddress, gatherer)
}

// dbService closes the database once the other services stopped.
type dbService struct {
	db *badger.DB
}

func (*dbService) Start() error { return nil }

func (s *dbService) Stop() error {
	return s.db.Close()
}

// authoringService runs the slot loop and the consensus stall checks.
type authoringService struct {
	loop          slots.LoopConfig
	monitor       *monitor.Monitor
	stallInterval time.Duration

	cancel context.CancelFunc
	group  *errgroup.Group
}

func (s *authoringService) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.group, ctx = errgroup.WithContext(ctx)

	s.group.Go(func() error {
		slots.StartSlotWorker(ctx, s.loop)
		return nil
	})

	if s.monitor != nil {
		s.group.Go(func() error {
			s.checkStalls(ctx)
			return nil
		})
	}
	return nil
}

func (s *authoringService) checkStalls(ctx context.Context) {
	ticker := time.NewTicker(s.stallInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.monitor.CheckConsensusStall(s.loop.Clock.CurrentSlot())
		}
	}
}

func (s *authoringService) Stop() error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	return s.group.Wait()
}
