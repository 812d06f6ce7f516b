// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"

	"github.com/ChainSafe/micc/dot/state"
	"github.com/ChainSafe/micc/internal/log"
	"github.com/ChainSafe/micc/lib/micc"
	"github.com/ChainSafe/micc/lib/micc/equivocation"
	"github.com/ChainSafe/micc/lib/micc/eventsource"
	"github.com/ChainSafe/micc/lib/micc/monitor"
	"github.com/ChainSafe/micc/lib/micc/trigger"
	"github.com/ChainSafe/micc/lib/services"
	"github.com/ChainSafe/micc/lib/slots"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "dot"))

// Node is a development node authoring micc blocks on an in-memory chain.
type Node struct {
	Name             string
	BlockState       *state.BlockState
	TransactionState *state.TransactionState
	AuthoritySet     *micc.AuthoritySet
	Controller       *trigger.Controller
	Detector         *equivocation.Detector
	Monitor          *monitor.Monitor
	Worker           *micc.Worker
	Registry         *prometheus.Registry

	Services *services.ServiceRegistry
}

// NewNode assembles the node services from the configuration.
func NewNode(cfg *Config) (_ *Node, err error) {
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	log.PatchLevel(cfg.Global.LogLvl)
	logger.Infof("🕸️ initialising node %s...", cfg.Global.Name)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	db, blockState, err := createStateService(cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot create state service: %w", err)
	}
	defer func() {
		if err != nil {
			_ = db.Close()
		}
	}()

	ks, authorities, err := createKeystore(cfg)
	if err != nil {
		return nil, err
	}
	authoritySet := createAuthoritySet(cfg, authorities)

	mon, err := createMonitor(cfg, registry)
	if err != nil {
		return nil, err
	}

	controller := trigger.NewController(cfg.Trigger.Controller)
	observers := []micc.Observer{micc.NewTriggerObserver(controller)}
	if mon != nil {
		observers = append(observers, mon)
	}

	detector := equivocation.NewDetector(cfg.Equivocation)
	if cfg.Core.SessionLength > 0 {
		observers = append(observers, micc.NewSessionObserver(cfg.Core.SessionLength,
			newSessionHandler(authoritySet, detector, mon)))
	}
	transactionState := state.NewTransactionState()

	worker, err := createWorker(cfg, workerDeps{
		keystore:     ks,
		authorities:  authoritySet,
		blockState:   blockState,
		transactions: transactionState,
		detector:     detector,
		observers:    observers,
	})
	if err != nil {
		return nil, err
	}

	source := eventsource.New(cfg.Trigger.EventSource, transactionState, controller)
	clock := slots.NewClock(cfg.Core.SlotDuration, cfg.Core.AllowMultipleBlocksPerSlot)

	serviceRegistry := services.NewServiceRegistry(logger)
	serviceRegistry.RegisterService(&dbService{db: db})
	serviceRegistry.RegisterService(source)
	serviceRegistry.RegisterService(&authoringService{
		loop: slots.LoopConfig{
			Clock:            clock,
			Chain:            blockState,
			Worker:           slots.NewSlotWorker(worker),
			InherentData:     newInherentDataProvider,
			BlockSizeLimit:   cfg.blockSizeLimit(),
			Triggers:         source.Triggers(),
			FallbackInterval: cfg.Core.FallbackInterval,
		},
		monitor:       mon,
		stallInterval: cfg.Core.SlotDuration,
	})
	if server := createMetricsServer(cfg, registry); server != nil {
		serviceRegistry.RegisterService(server)
	}

	logger.Infof("node %s authoring with %d authorities, slot duration %s",
		cfg.Global.Name, authoritySet.Len(), cfg.Core.SlotDuration)

	return &Node{
		Name:             cfg.Global.Name,
		BlockState:       blockState,
		TransactionState: transactionState,
		AuthoritySet:     authoritySet,
		Controller:       controller,
		Detector:         detector,
		Monitor:          mon,
		Worker:           worker,
		Registry:         registry,
		Services:         serviceRegistry,
	}, nil
}

// Start starts all the node services.
func (n *Node) Start() error {
	logger.Info("🕸️ starting node services...")
	return n.Services.StartAll()
}

// Stop stops all the node services and closes the database.
func (n *Node) Stop() error {
	logger.Info("stopping node services...")
	err := n.Services.StopAll()
	if n.Monitor != nil {
		logger.Info(n.Monitor.HealthSummary())
	}
	return err
}
