// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

// Config is a collection of configurations throughout the system.
// Durations are in milliseconds.
type Config struct {
	Global       GlobalConfig       `toml:"global,omitempty"`
	Core         CoreConfig         `toml:"core,omitempty"`
	Trigger      TriggerConfig      `toml:"trigger,omitempty"`
	Backoff      BackoffConfig      `toml:"backoff,omitempty"`
	Equivocation EquivocationConfig `toml:"equivocation,omitempty"`
	Monitor      MonitorConfig      `toml:"monitor,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	Name           string `toml:"name,omitempty"`
	LogLvl         string `toml:"log,omitempty"`
	PublishMetrics bool   `toml:"publish-metrics"`
	MetricsAddress string `toml:"metrics-address,omitempty"`
}

// CoreConfig is to marshal/unmarshal toml core config vars
type CoreConfig struct {
	SlotDuration                uint64   `toml:"slot-duration,omitempty"`
	Key                         string   `toml:"key,omitempty"`
	Authorities                 []string `toml:"authorities,omitempty"`
	MaxAuthorities              int      `toml:"max-authorities,omitempty"`
	ForceAuthoring              bool     `toml:"force-authoring"`
	AllowMultipleBlocksPerSlot  bool     `toml:"allow-multiple-blocks-per-slot"`
	BlockProposalSlotPortion    float64  `toml:"block-proposal-slot-portion,omitempty"`
	MaxBlockProposalSlotPortion float64  `toml:"max-block-proposal-slot-portion,omitempty"`
	BlockSizeLimit              uint     `toml:"block-size-limit,omitempty"`
	FinalityDepth               uint     `toml:"finality-depth"`
	FallbackInterval            uint64   `toml:"fallback-interval,omitempty"`
	SessionLength               uint64   `toml:"session-length"`
}

// TriggerConfig is to marshal/unmarshal toml trigger config vars
type TriggerConfig struct {
	Strategy                   string  `toml:"strategy,omitempty"`
	MinCollectionTime          uint64  `toml:"min-collection-time,omitempty"`
	MaxCollectionTime          uint64  `toml:"max-collection-time,omitempty"`
	MaxBatchSize               int     `toml:"max-batch-size,omitempty"`
	PriorityThreshold          uint64  `toml:"priority-threshold,omitempty"`
	NetworkLoadFactor          float64 `toml:"network-load-factor,omitempty"`
	EnableAdaptiveTiming       bool    `toml:"adaptive-timing"`
	EnablePriorityFastTrack    bool    `toml:"priority-fast-track"`
	EmptyBlockInterval         uint64  `toml:"empty-block-interval"`
	TransactionRateHistorySize int     `toml:"tx-rate-history-size,omitempty"`
	BackupInterval             uint64  `toml:"backup-interval,omitempty"`
	PollInterval               uint64  `toml:"poll-interval,omitempty"`
}

// BackoffConfig is to marshal/unmarshal toml backoff config vars
type BackoffConfig struct {
	Enabled          bool   `toml:"enabled"`
	MaxInterval      uint64 `toml:"max-interval,omitempty"`
	UnfinalizedSlack uint64 `toml:"unfinalized-slack"`
	AuthoringBias    uint64 `toml:"authoring-bias,omitempty"`
}

// EquivocationConfig is to marshal/unmarshal toml equivocation config vars
type EquivocationConfig struct {
	EnableSlashing       bool   `toml:"enable-slashing"`
	GracePeriod          uint32 `toml:"grace-period"`
	MaxReportsPerSession uint32 `toml:"max-reports-per-session"`
	SlashPercentage      uint32 `toml:"slash-percentage"`
}

// MonitorConfig is to marshal/unmarshal toml monitor config vars
type MonitorConfig struct {
	Enabled                    bool    `toml:"enabled"`
	MaxEmptySlots              uint32  `toml:"max-empty-slots"`
	BlockTimeVarianceThreshold float64 `toml:"block-time-variance-threshold,omitempty"`
	StallThreshold             uint64  `toml:"stall-threshold,omitempty"`
	DetailedLogging            bool    `toml:"detailed-logging"`
	MetricsInterval            uint64  `toml:"metrics-interval,omitempty"`
	MaxMetricsHistory          int     `toml:"max-metrics-history,omitempty"`
}
