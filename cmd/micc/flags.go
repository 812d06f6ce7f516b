// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global node configuration flags
var (
	// ConfigFlag is the TOML configuration file loaded, or written by export
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag cli service settings
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// NameFlag node implementation name
	NameFlag = cli.StringFlag{
		Name:  "name",
		Usage: "Node name",
	}
	// PublishMetricsFlag publishes the prometheus metrics
	PublishMetricsFlag = cli.BoolFlag{
		Name:  "publish-metrics",
		Usage: "Publish node metrics on the metrics address",
	}
	// MetricsAddressFlag is the listening address of the metrics server
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Listening address of the metrics server, eg localhost:9876",
	}
)

// Authoring flags
var (
	// KeyFlag specifies the development account or 0x seed of the local authority
	KeyFlag = cli.StringFlag{
		Name:  "key",
		Usage: "Local authority key: a development account such as alice, or a 0x prefixed seed",
	}
	// AuthoritiesFlag lists the genesis authorities in slot order
	AuthoritiesFlag = cli.StringFlag{
		Name:  "authorities",
		Usage: "Comma separated genesis authorities, eg --authorities=alice,bob",
	}
	// SlotDurationFlag is the slot duration
	SlotDurationFlag = cli.DurationFlag{
		Name:  "slot-duration",
		Usage: "Slot duration, eg 6s",
	}
	// ForceAuthoringFlag authors with any held authority key
	ForceAuthoringFlag = cli.BoolFlag{
		Name:  "force-authoring",
		Usage: "Author blocks with any held authority key, ignoring the network status",
	}
	// AllowMultipleBlocksPerSlotFlag allows several blocks in one slot
	AllowMultipleBlocksPerSlotFlag = cli.BoolFlag{
		Name:  "allow-multiple-blocks-per-slot",
		Usage: "Allow authoring several blocks in the same slot",
	}
	// StrategyFlag selects the trigger strategy
	StrategyFlag = cli.StringFlag{
		Name:  "trigger-strategy",
		Usage: "Block production trigger strategy: adaptive or baseline",
	}
	// SlashingFlag disables equivocating authorities
	SlashingFlag = cli.BoolFlag{
		Name:  "equivocation-slashing",
		Usage: "Disable authorities reported for equivocation",
	}
	// NoMonitorFlag disables the block production monitor
	NoMonitorFlag = cli.BoolFlag{
		Name:  "no-monitor",
		Usage: "Disable the block production monitor",
	}
)

// RootFlags are the flags of the node command
var RootFlags = []cli.Flag{
	ConfigFlag,
	LogFlag,
	NameFlag,
	PublishMetricsFlag,
	MetricsAddressFlag,
	KeyFlag,
	AuthoritiesFlag,
	SlotDurationFlag,
	ForceAuthoringFlag,
	AllowMultipleBlocksPerSlotFlag,
	StrategyFlag,
	SlashingFlag,
	NoMonitorFlag,
}
