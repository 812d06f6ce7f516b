// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package monitor

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ChainSafe/micc/dot/types"
	"github.com/ChainSafe/micc/internal/log"
	"github.com/ChainSafe/micc/lib/common"
	"github.com/ChainSafe/micc/lib/micc"
	"github.com/prometheus/client_golang/prometheus"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "micc-monitor"))

const (
	maxRecentSlots = 100
	maxAnomalies   = 100
	// blockTimeAlpha is the smoothing factor of the average block time.
	blockTimeAlpha = 0.1
)

type slotRecord struct {
	slot           uint64
	authorityIndex *int
	produced       bool
	blocks         []common.Hash
}

// Monitor observes block production and reports anomalies.
// It never alters authoring decisions and is safe for concurrent use.
type Monitor struct {
	config     Config
	collectors *collectors
	now        func() time.Time

	mutex         sync.Mutex
	metrics       Metrics
	lastBlockSlot uint64
	recentSlots   []slotRecord
	anomalies     []Anomaly
	history       []Metrics
	lastCollected time.Time
}

var _ micc.Observer = (*Monitor)(nil)

// New creates a monitor registering its collectors on the registerer.
// A nil registerer uses the default prometheus registerer.
func New(config Config, registerer prometheus.Registerer) (*Monitor, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	c, err := newCollectors(registerer)
	if err != nil {
		return nil, err
	}

	return &Monitor{
		config:     config,
		collectors: c,
		now:        time.Now,
		metrics:    newMetrics(),
	}, nil
}

// SlotNotified records the slot and the authority set size.
func (m *Monitor) SlotNotified(slot uint64, authorities int) {
	if authorities >= 0 && uint64(authorities) <= math.MaxUint32 {
		m.UpdateAuthorityCount(uint32(authorities))
	}
	m.RecordSlot(slot, nil)
}

// BlockProduced records a locally produced block.
func (m *Monitor) BlockProduced(header *types.Header, slot uint64, authorityIndex int) {
	m.RecordBlockProduction(header, slot, &authorityIndex)
}

// RecordSlot records a new slot and checks for empty slot spikes.
func (m *Monitor) RecordSlot(slot uint64, authorityIndex *int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.recentSlots = append(m.recentSlots, slotRecord{
		slot:           slot,
		authorityIndex: authorityIndex,
	})
	if len(m.recentSlots) > maxRecentSlots {
		m.recentSlots = m.recentSlots[1:]
	}

	m.metrics.SlotsSeen++
	m.collectors.slotsSeen.Inc()

	m.checkEmptySlots()

	if m.config.DetailedLogging {
		logger.Debugf("📊 recorded slot %d with authority %s", slot, formatIndex(authorityIndex))
	}
}

func (m *Monitor) checkEmptySlots() {
	threshold := int(m.config.MaxEmptySlots)
	if threshold == 0 || len(m.recentSlots) < threshold {
		return
	}

	var consecutiveEmpty uint32
	for i := len(m.recentSlots) - 1; i >= len(m.recentSlots)-threshold; i-- {
		if m.recentSlots[i].produced {
			break
		}
		consecutiveEmpty++
	}

	if consecutiveEmpty < m.config.MaxEmptySlots {
		return
	}

	m.recordAnomaly(Anomaly{
		Kind:             EmptySlotSpike,
		ConsecutiveEmpty: consecutiveEmpty,
		Threshold:        m.config.MaxEmptySlots,
	})
	m.metrics.EmptySlots += uint64(consecutiveEmpty)
	m.collectors.emptySlots.Add(float64(consecutiveEmpty))
	m.setHealth(Degraded)
}

// RecordBlockProduction records a block produced at the slot. It
// updates the average block time and checks for block time anomalies
// and forks.
func (m *Monitor) RecordBlockProduction(header *types.Header, slot uint64, authorityIndex *int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.now()

	record := m.slotRecord(slot)
	if record != nil {
		record.produced = true
	}

	m.metrics.BlocksProduced++

	if !m.metrics.LastBlockTime.IsZero() {
		blockTime := now.Sub(m.metrics.LastBlockTime)
		average := blockTimeAlpha*blockTime.Seconds() +
			(1-blockTimeAlpha)*m.metrics.AverageBlockTime.Seconds()
		m.metrics.AverageBlockTime = time.Duration(average * float64(time.Second))
		m.checkBlockTime(blockTime)
	}
	m.metrics.LastBlockTime = now
	m.lastBlockSlot = slot
	m.collectors.blockProduced(m.metrics.AverageBlockTime)

	if header != nil && record != nil {
		m.checkFork(record, header.Hash())
	}

	if m.config.DetailedLogging {
		logger.Infof("✅ block produced for slot %d by authority %s", slot, formatIndex(authorityIndex))
	}

	m.maybeCollectMetrics(now)
}

func (m *Monitor) slotRecord(slot uint64) *slotRecord {
	for i := len(m.recentSlots) - 1; i >= 0; i-- {
		if m.recentSlots[i].slot == slot {
			return &m.recentSlots[i]
		}
	}
	return nil
}

func (m *Monitor) checkBlockTime(observed time.Duration) {
	variance := math.Abs(observed.Seconds()-ExpectedBlockTime.Seconds()) / ExpectedBlockTime.Seconds()
	if variance <= m.config.BlockTimeVarianceThreshold {
		return
	}

	m.recordAnomaly(Anomaly{
		Kind:              BlockTimeAnomaly,
		Observed:          observed,
		Expected:          ExpectedBlockTime,
		VarianceThreshold: m.config.BlockTimeVarianceThreshold,
	})
	logger.Warnf("⚠️ block time anomaly: expected %s, observed %s (variance: %.2f%%)",
		ExpectedBlockTime, observed, variance*100)
}

func (m *Monitor) checkFork(record *slotRecord, hash common.Hash) {
	if m.config.DetailedLogging {
		logger.Debugf("🔍 checking for forks at slot %d", record.slot)
	}

	for _, seen := range record.blocks {
		if seen == hash {
			return
		}
	}
	record.blocks = append(record.blocks, hash)

	if len(record.blocks) < 2 {
		return
	}

	m.metrics.ForksDetected++
	m.collectors.forksDetected.Inc()
	m.recordAnomaly(Anomaly{
		Kind:       ForkDetected,
		Slot:       record.slot,
		BlockCount: uint32(len(record.blocks)),
	})
}

func (m *Monitor) recordAnomaly(anomaly Anomaly) {
	logger.Errorf("🚨 security anomaly detected: %s", anomaly)

	m.anomalies = append(m.anomalies, anomaly)
	if len(m.anomalies) > maxAnomalies {
		m.anomalies = m.anomalies[1:]
	}

	m.metrics.AnomaliesDetected++
	m.collectors.anomaly(anomaly.Kind)
}

func (m *Monitor) setHealth(health NetworkHealth) {
	m.metrics.NetworkHealth = health
	m.collectors.health(health)
}

func (m *Monitor) maybeCollectMetrics(now time.Time) {
	if !m.lastCollected.IsZero() && now.Sub(m.lastCollected) < m.config.MetricsInterval {
		return
	}
	m.lastCollected = now

	m.history = append(m.history, m.metrics)
	if m.config.MaxMetricsHistory > 0 && len(m.history) > m.config.MaxMetricsHistory {
		m.history = m.history[len(m.history)-m.config.MaxMetricsHistory:]
	}

	logger.Infof("📈 metrics snapshot: blocks=%d, slots=%d, empty=%d, health=%s",
		m.metrics.BlocksProduced, m.metrics.SlotsSeen, m.metrics.EmptySlots, m.metrics.NetworkHealth)
}

// UpdateAuthorityCount records the authority set size. A change of a
// previously known size is reported as an anomaly.
func (m *Monitor) UpdateAuthorityCount(count uint32) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	previous := m.metrics.AuthoritiesCount
	if previous > 0 && previous != count {
		m.recordAnomaly(Anomaly{
			Kind:          AuthorityAnomaly,
			ExpectedCount: previous,
			ActualCount:   count,
		})
	}

	m.metrics.AuthoritiesCount = count
	m.collectors.authorities.Set(float64(count))
}

// CheckConsensusStall reports a stall if no block was produced for
// longer than the stall threshold.
func (m *Monitor) CheckConsensusStall(currentSlot uint64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.metrics.LastBlockTime.IsZero() {
		return
	}

	stall := m.now().Sub(m.metrics.LastBlockTime)
	if stall <= m.config.StallThreshold {
		return
	}

	m.recordAnomaly(Anomaly{
		Kind:          ConsensusStall,
		StallDuration: stall,
		LastBlockSlot: m.lastBlockSlot,
		Slot:          currentSlot,
	})
	m.setHealth(Critical)
}

// NewSession clears the recent slots and marks the network healthy.
// Counters are cumulative and kept.
func (m *Monitor) NewSession() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	logger.Info("🔄 starting new monitoring session")
	m.recentSlots = nil
	m.setHealth(Healthy)
}

// Metrics returns a copy of the current metrics.
func (m *Monitor) Metrics() Metrics {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.metrics
}

// Anomalies returns a copy of the recent anomalies.
func (m *Monitor) Anomalies() []Anomaly {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return append([]Anomaly(nil), m.anomalies...)
}

// History returns a copy of the metrics snapshots.
func (m *Monitor) History() []Metrics {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return append([]Metrics(nil), m.history...)
}

// HealthSummary returns a human readable summary of the metrics.
func (m *Monitor) HealthSummary() string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return fmt.Sprintf("MICC Consensus Health Summary:\n"+
		"- Blocks Produced: %d\n"+
		"- Slots Seen: %d\n"+
		"- Empty Slots: %d\n"+
		"- Average Block Time: %s\n"+
		"- Network Health: %s\n"+
		"- Recent Anomalies: %d\n"+
		"- Authorities: %d",
		m.metrics.BlocksProduced,
		m.metrics.SlotsSeen,
		m.metrics.EmptySlots,
		FormatDuration(m.metrics.AverageBlockTime),
		m.metrics.NetworkHealth,
		len(m.anomalies),
		m.metrics.AuthoritiesCount)
}

func formatIndex(index *int) string {
	if index == nil {
		return "none"
	}
	return fmt.Sprint(*index)
}
