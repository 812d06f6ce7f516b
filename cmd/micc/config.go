// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/micc/dot"
	"github.com/ChainSafe/micc/internal/log"
	"github.com/ChainSafe/micc/lib/micc/trigger"
	"github.com/urfave/cli"
)

// loadConfig loads the toml configuration file if --config is specified,
// or the default configuration otherwise.
func loadConfig(ctx *cli.Context) (*dot.Config, error) {
	cfgPath := ctx.String(ConfigFlag.Name)
	if cfgPath == "" {
		return dot.DefaultConfig(), nil
	}

	logger.Info("loading toml configuration from " + cfgPath + "...")
	cfg, err := dot.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// createDotConfig creates a new dot configuration from the configuration
// file and the provided flag values
func createDotConfig(ctx *cli.Context) (*dot.Config, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		logger.Errorf("failed to load toml configuration: %s", err)
		return nil, err
	}

	err = applyFlags(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides the configuration values with the flags set
func applyFlags(ctx *cli.Context, cfg *dot.Config) error {
	err := setGlobalConfig(ctx, &cfg.Global)
	if err != nil {
		return err
	}

	err = setCoreConfig(ctx, &cfg.Core)
	if err != nil {
		return err
	}

	err = setTriggerConfig(ctx, &cfg.Trigger)
	if err != nil {
		return err
	}

	if ctx.IsSet(SlashingFlag.Name) {
		cfg.Equivocation.EnableSlashing = ctx.Bool(SlashingFlag.Name)
	}

	if ctx.IsSet(NoMonitorFlag.Name) {
		cfg.Monitor.Enabled = !ctx.Bool(NoMonitorFlag.Name)
	}

	return nil
}

func setGlobalConfig(ctx *cli.Context, cfg *dot.GlobalConfig) error {
	if lvl := ctx.String(LogFlag.Name); lvl != "" {
		level, err := log.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("cannot parse log level: %w", err)
		}
		cfg.LogLvl = level
	}

	if name := ctx.String(NameFlag.Name); name != "" {
		cfg.Name = name
	}

	if ctx.IsSet(PublishMetricsFlag.Name) {
		cfg.PublishMetrics = ctx.Bool(PublishMetricsFlag.Name)
	}

	if address := ctx.String(MetricsAddressFlag.Name); address != "" {
		cfg.MetricsAddress = address
	}

	logger.Debugf("global configuration: name=%s log=%s metrics=%t address=%s",
		cfg.Name, cfg.LogLvl, cfg.PublishMetrics, cfg.MetricsAddress)
	return nil
}

func setCoreConfig(ctx *cli.Context, cfg *dot.CoreConfig) error {
	if ctx.IsSet(KeyFlag.Name) {
		cfg.Key = ctx.String(KeyFlag.Name)
	}

	if authorities := ctx.String(AuthoritiesFlag.Name); authorities != "" {
		cfg.Authorities = nil
		for _, authority := range strings.Split(authorities, ",") {
			cfg.Authorities = append(cfg.Authorities, strings.TrimSpace(authority))
		}
	}

	if ctx.IsSet(SlotDurationFlag.Name) {
		slotDuration := ctx.Duration(SlotDurationFlag.Name)
		if slotDuration <= 0 {
			return fmt.Errorf("slot duration must be positive: %s", slotDuration)
		}
		cfg.SlotDuration = slotDuration
	}

	if ctx.IsSet(ForceAuthoringFlag.Name) {
		cfg.ForceAuthoring = ctx.Bool(ForceAuthoringFlag.Name)
	}

	if ctx.IsSet(AllowMultipleBlocksPerSlotFlag.Name) {
		cfg.AllowMultipleBlocksPerSlot = ctx.Bool(AllowMultipleBlocksPerSlotFlag.Name)
	}

	logger.Debugf("core configuration: key=%s authorities=%v slot-duration=%s force-authoring=%t",
		cfg.Key, cfg.Authorities, cfg.SlotDuration, cfg.ForceAuthoring)
	return nil
}

func setTriggerConfig(ctx *cli.Context, cfg *dot.TriggerConfig) error {
	if s := ctx.String(StrategyFlag.Name); s != "" {
		strategy, err := trigger.ParseStrategy(s)
		if err != nil {
			return fmt.Errorf("cannot parse trigger strategy: %w", err)
		}
		cfg.Controller.Strategy = strategy
	}
	return nil
}
