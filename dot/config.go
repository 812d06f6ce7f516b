// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"time"

	"github.com/ChainSafe/micc/internal/log"
	"github.com/ChainSafe/micc/internal/metrics"
	"github.com/ChainSafe/micc/lib/micc"
	"github.com/ChainSafe/micc/lib/micc/equivocation"
	"github.com/ChainSafe/micc/lib/micc/eventsource"
	"github.com/ChainSafe/micc/lib/micc/monitor"
	"github.com/ChainSafe/micc/lib/micc/trigger"
	"github.com/ChainSafe/micc/lib/slots"
	"github.com/go-playground/validator/v10"
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global       GlobalConfig
	Core         CoreConfig
	Trigger      TriggerConfig
	Backoff      BackoffConfig
	Equivocation equivocation.Config
	Monitor      MonitorConfig
}

// GlobalConfig is used for every node command
type GlobalConfig struct {
	Name           string `validate:"required"`
	LogLvl         log.Level
	PublishMetrics bool
	MetricsAddress string `validate:"required_if=PublishMetrics true,omitempty,hostname_port"`
}

// CoreConfig is to marshal/unmarshal toml core config vars
type CoreConfig struct {
	SlotDuration time.Duration `validate:"gt=0"`
	// Key is the development account name or 0x seed of the local
	// authority. An empty key runs the node without authoring.
	Key string
	// Authorities are the development account names or 0x seeds of the
	// genesis authorities, in slot order.
	Authorities                 []string `validate:"min=1,dive,required"`
	MaxAuthorities              int      `validate:"gte=0"`
	ForceAuthoring              bool
	AllowMultipleBlocksPerSlot  bool
	BlockProposalSlotPortion    float32 `validate:"gt=0,lte=1"`
	MaxBlockProposalSlotPortion float32 `validate:"gte=0,lte=1"`
	// BlockSizeLimit of zero means no limit.
	BlockSizeLimit   uint
	FinalityDepth    uint
	FallbackInterval time.Duration `validate:"gt=0"`
	// SessionLength is the number of slots per session. Zero keeps the
	// node in a single session.
	SessionLength uint64
}

// TriggerConfig is the configuration of the event driven block production.
type TriggerConfig struct {
	Controller  trigger.Config
	EventSource eventsource.Config
}

// BackoffConfig configures the authoring backoff on lagging finality.
type BackoffConfig struct {
	Enabled          bool
	MaxInterval      uint64 `validate:"required_if=Enabled true"`
	UnfinalizedSlack uint64
	AuthoringBias    uint64 `validate:"required_if=Enabled true"`
}

// MonitorConfig configures the block production monitor.
type MonitorConfig struct {
	Enabled bool
	monitor.Config
}

// DefaultConfig returns the configuration of a single authority
// development node authoring as alice.
func DefaultConfig() *Config {
	backoff := slots.NewBackoffAuthoringOnFinalizedHeadLagging()
	return &Config{
		Global: GlobalConfig{
			Name:           "micc",
			LogLvl:         log.Info,
			MetricsAddress: metrics.DefaultAddress,
		},
		Core: CoreConfig{
			SlotDuration:             6 * time.Second,
			Key:                      "alice",
			Authorities:              []string{"alice"},
			MaxAuthorities:           micc.DefaultMaxAuthorities,
			BlockProposalSlotPortion: 0.5,
			FallbackInterval:         slots.DefaultFallbackInterval,
		},
		Trigger: TriggerConfig{
			Controller:  trigger.DefaultConfig(),
			EventSource: eventsource.DefaultConfig(),
		},
		Backoff: BackoffConfig{
			Enabled:          true,
			MaxInterval:      backoff.MaxInterval,
			UnfinalizedSlack: backoff.UnfinalizedSlack,
			AuthoringBias:    backoff.AuthoringBias,
		},
		Equivocation: equivocation.DefaultConfig(),
		Monitor: MonitorConfig{
			Enabled: true,
			Config:  monitor.DefaultConfig(),
		},
	}
}

// Validate returns an error if the configuration cannot run a node.
func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	if c.Core.MaxBlockProposalSlotPortion > 0 &&
		c.Core.BlockProposalSlotPortion > c.Core.MaxBlockProposalSlotPortion {
		return fmt.Errorf("%w: block proposal slot portion %.2f is above maximum %.2f",
			ErrInvalidConfig, c.Core.BlockProposalSlotPortion, c.Core.MaxBlockProposalSlotPortion)
	}

	err = c.Trigger.Controller.Validate()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	if c.Trigger.EventSource.BackupInterval <= 0 || c.Trigger.EventSource.PollInterval <= 0 {
		return fmt.Errorf("%w: event source intervals must be positive", ErrInvalidConfig)
	}

	if c.Equivocation.SlashPercentage > 10000 {
		return fmt.Errorf("%w: slash percentage %d is above 10000 basis points",
			ErrInvalidConfig, c.Equivocation.SlashPercentage)
	}

	return nil
}

func (c *Config) backoffStrategy() slots.BackoffAuthoringBlocksStrategy {
	if !c.Backoff.Enabled {
		return slots.NeverBackoff{}
	}
	return &slots.BackoffAuthoringOnFinalizedHeadLagging{
		MaxInterval:      c.Backoff.MaxInterval,
		UnfinalizedSlack: c.Backoff.UnfinalizedSlack,
		AuthoringBias:    c.Backoff.AuthoringBias,
	}
}

func (c *Config) blockSizeLimit() *uint {
	if c.Core.BlockSizeLimit == 0 {
		return nil
	}
	limit := c.Core.BlockSizeLimit
	return &limit
}
