// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	ctoml "github.com/ChainSafe/micc/dot/config/toml"
	"github.com/ChainSafe/micc/internal/log"
	"github.com/ChainSafe/micc/lib/micc/trigger"
	"github.com/naoina/toml"
)

func millis(d time.Duration) uint64 {
	if d < 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}

func fromMillis(ms uint64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// TomlConfig converts a dot configuration to its toml representation.
func TomlConfig(cfg *Config) *ctoml.Config {
	controller := cfg.Trigger.Controller
	return &ctoml.Config{
		Global: ctoml.GlobalConfig{
			Name:           cfg.Global.Name,
			LogLvl:         cfg.Global.LogLvl.String(),
			PublishMetrics: cfg.Global.PublishMetrics,
			MetricsAddress: cfg.Global.MetricsAddress,
		},
		Core: ctoml.CoreConfig{
			SlotDuration:                millis(cfg.Core.SlotDuration),
			Key:                         cfg.Core.Key,
			Authorities:                 append([]string(nil), cfg.Core.Authorities...),
			MaxAuthorities:              cfg.Core.MaxAuthorities,
			ForceAuthoring:              cfg.Core.ForceAuthoring,
			AllowMultipleBlocksPerSlot:  cfg.Core.AllowMultipleBlocksPerSlot,
			BlockProposalSlotPortion:    float64(cfg.Core.BlockProposalSlotPortion),
			MaxBlockProposalSlotPortion: float64(cfg.Core.MaxBlockProposalSlotPortion),
			BlockSizeLimit:              cfg.Core.BlockSizeLimit,
			FinalityDepth:               cfg.Core.FinalityDepth,
			FallbackInterval:            millis(cfg.Core.FallbackInterval),
			SessionLength:               cfg.Core.SessionLength,
		},
		Trigger: ctoml.TriggerConfig{
			Strategy:                   controller.Strategy.String(),
			MinCollectionTime:          millis(controller.Collection.MinCollectionTime),
			MaxCollectionTime:          millis(controller.Collection.MaxCollectionTime),
			MaxBatchSize:               controller.Collection.MaxBatchSize,
			PriorityThreshold:          controller.Collection.PriorityThreshold,
			NetworkLoadFactor:          controller.Collection.NetworkLoadFactor,
			EnableAdaptiveTiming:       controller.Collection.EnableAdaptiveTiming,
			EnablePriorityFastTrack:    controller.EnablePriorityFastTrack,
			EmptyBlockInterval:         millis(controller.EmptyBlockInterval),
			TransactionRateHistorySize: controller.TransactionRateHistorySize,
			BackupInterval:             millis(cfg.Trigger.EventSource.BackupInterval),
			PollInterval:               millis(cfg.Trigger.EventSource.PollInterval),
		},
		Backoff: ctoml.BackoffConfig{
			Enabled:          cfg.Backoff.Enabled,
			MaxInterval:      cfg.Backoff.MaxInterval,
			UnfinalizedSlack: cfg.Backoff.UnfinalizedSlack,
			AuthoringBias:    cfg.Backoff.AuthoringBias,
		},
		Equivocation: ctoml.EquivocationConfig{
			EnableSlashing:       cfg.Equivocation.EnableSlashing,
			GracePeriod:          cfg.Equivocation.GracePeriod,
			MaxReportsPerSession: cfg.Equivocation.MaxReportsPerSession,
			SlashPercentage:      cfg.Equivocation.SlashPercentage,
		},
		Monitor: ctoml.MonitorConfig{
			Enabled:                    cfg.Monitor.Enabled,
			MaxEmptySlots:              cfg.Monitor.MaxEmptySlots,
			BlockTimeVarianceThreshold: cfg.Monitor.BlockTimeVarianceThreshold,
			StallThreshold:             millis(cfg.Monitor.StallThreshold),
			DetailedLogging:            cfg.Monitor.DetailedLogging,
			MetricsInterval:            millis(cfg.Monitor.MetricsInterval),
			MaxMetricsHistory:          cfg.Monitor.MaxMetricsHistory,
		},
	}
}

// ApplyTomlConfig sets the dot configuration from its toml representation.
func ApplyTomlConfig(cfg *Config, tomlCfg *ctoml.Config) error {
	level, err := log.ParseLevel(tomlCfg.Global.LogLvl)
	if err != nil {
		return fmt.Errorf("cannot parse global log level: %w", err)
	}

	strategy, err := trigger.ParseStrategy(tomlCfg.Trigger.Strategy)
	if err != nil {
		return fmt.Errorf("cannot parse trigger strategy: %w", err)
	}

	cfg.Global.Name = tomlCfg.Global.Name
	cfg.Global.LogLvl = level
	cfg.Global.PublishMetrics = tomlCfg.Global.PublishMetrics
	cfg.Global.MetricsAddress = tomlCfg.Global.MetricsAddress

	core := tomlCfg.Core
	cfg.Core.SlotDuration = fromMillis(core.SlotDuration)
	cfg.Core.Key = core.Key
	cfg.Core.Authorities = append([]string(nil), core.Authorities...)
	cfg.Core.MaxAuthorities = core.MaxAuthorities
	cfg.Core.ForceAuthoring = core.ForceAuthoring
	cfg.Core.AllowMultipleBlocksPerSlot = core.AllowMultipleBlocksPerSlot
	cfg.Core.BlockProposalSlotPortion = float32(core.BlockProposalSlotPortion)
	cfg.Core.MaxBlockProposalSlotPortion = float32(core.MaxBlockProposalSlotPortion)
	cfg.Core.BlockSizeLimit = core.BlockSizeLimit
	cfg.Core.FinalityDepth = core.FinalityDepth
	cfg.Core.FallbackInterval = fromMillis(core.FallbackInterval)
	cfg.Core.SessionLength = core.SessionLength

	trig := tomlCfg.Trigger
	cfg.Trigger.Controller = trigger.Config{
		Collection: trigger.CollectionConfig{
			MinCollectionTime:    fromMillis(trig.MinCollectionTime),
			MaxCollectionTime:    fromMillis(trig.MaxCollectionTime),
			MaxBatchSize:         trig.MaxBatchSize,
			PriorityThreshold:    trig.PriorityThreshold,
			NetworkLoadFactor:    trig.NetworkLoadFactor,
			EnableAdaptiveTiming: trig.EnableAdaptiveTiming,
		},
		EmptyBlockInterval:         fromMillis(trig.EmptyBlockInterval),
		EnablePriorityFastTrack:    trig.EnablePriorityFastTrack,
		TransactionRateHistorySize: trig.TransactionRateHistorySize,
		Strategy:                   strategy,
	}
	cfg.Trigger.EventSource.BackupInterval = fromMillis(trig.BackupInterval)
	cfg.Trigger.EventSource.PollInterval = fromMillis(trig.PollInterval)

	cfg.Backoff = BackoffConfig{
		Enabled:          tomlCfg.Backoff.Enabled,
		MaxInterval:      tomlCfg.Backoff.MaxInterval,
		UnfinalizedSlack: tomlCfg.Backoff.UnfinalizedSlack,
		AuthoringBias:    tomlCfg.Backoff.AuthoringBias,
	}

	cfg.Equivocation.EnableSlashing = tomlCfg.Equivocation.EnableSlashing
	cfg.Equivocation.GracePeriod = tomlCfg.Equivocation.GracePeriod
	cfg.Equivocation.MaxReportsPerSession = tomlCfg.Equivocation.MaxReportsPerSession
	cfg.Equivocation.SlashPercentage = tomlCfg.Equivocation.SlashPercentage

	mon := tomlCfg.Monitor
	cfg.Monitor.Enabled = mon.Enabled
	cfg.Monitor.MaxEmptySlots = mon.MaxEmptySlots
	cfg.Monitor.BlockTimeVarianceThreshold = mon.BlockTimeVarianceThreshold
	cfg.Monitor.StallThreshold = fromMillis(mon.StallThreshold)
	cfg.Monitor.DetailedLogging = mon.DetailedLogging
	cfg.Monitor.MetricsInterval = fromMillis(mon.MetricsInterval)
	cfg.Monitor.MaxMetricsHistory = mon.MaxMetricsHistory

	return nil
}

// LoadConfig reads the toml configuration file on top of the default
// configuration. Keys absent from the file keep their default value.
func LoadConfig(fp string) (*Config, error) {
	cfg := DefaultConfig()
	tomlCfg := TomlConfig(cfg)

	f, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return nil, fmt.Errorf("cannot open configuration file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warnf("cannot close configuration file: %s", err)
		}
	}()

	err = toml.NewDecoder(f).Decode(tomlCfg)
	if err != nil {
		return nil, fmt.Errorf("cannot decode configuration file %s: %w", fp, err)
	}

	err = ApplyTomlConfig(cfg, tomlCfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExportConfig writes the dot configuration to a toml configuration file.
func ExportConfig(cfg *Config, fp string) error {
	raw, err := toml.Marshal(*TomlConfig(cfg))
	if err != nil {
		return fmt.Errorf("cannot marshal configuration: %w", err)
	}

	err = os.WriteFile(fp, raw, 0600)
	if err != nil {
		return fmt.Errorf("cannot write configuration file: %w", err)
	}
	return nil
}
