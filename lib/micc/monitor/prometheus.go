// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package monitor

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "micc_consensus"

type collectors struct {
	blocksProduced   prometheus.Counter
	slotsSeen        prometheus.Counter
	emptySlots       prometheus.Counter
	forksDetected    prometheus.Counter
	anomalies        *prometheus.CounterVec
	averageBlockTime prometheus.Gauge
	authorities      prometheus.Gauge
	networkHealth    prometheus.Gauge
}

func newCollectors(registerer prometheus.Registerer) (c *collectors, err error) {
	c = new(collectors)
	collectorsToRegister := make(map[string]prometheus.Collector)

	c.blocksProduced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blocks_produced_total",
		Help:      "blocks produced by the local authorities",
	})
	collectorsToRegister["blocks produced counter"] = c.blocksProduced

	c.slotsSeen = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slots_seen_total",
		Help:      "slots the authoring worker was notified of",
	})
	collectorsToRegister["slots seen counter"] = c.slotsSeen

	c.emptySlots = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "empty_slots_total",
		Help:      "slots counted in empty slot spikes",
	})
	collectorsToRegister["empty slots counter"] = c.emptySlots

	c.forksDetected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forks_detected_total",
		Help:      "slots with more than one produced block",
	})
	collectorsToRegister["forks detected counter"] = c.forksDetected

	c.anomalies = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "anomalies_detected_total",
		Help:      "security anomalies detected by kind",
	}, []string{"kind"})
	collectorsToRegister["anomalies counter"] = c.anomalies

	c.averageBlockTime = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "average_block_time_seconds",
		Help:      "exponential moving average of the block time",
	})
	collectorsToRegister["average block time gauge"] = c.averageBlockTime

	c.authorities = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "authorities",
		Help:      "size of the authority set",
	})
	collectorsToRegister["authorities gauge"] = c.authorities

	c.networkHealth = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "network_health",
		Help:      "0 unknown, 1 healthy, 2 degraded, 3 critical",
	})
	collectorsToRegister["network health gauge"] = c.networkHealth

	for collectorName, collectorToRegister := range collectorsToRegister {
		err = registerer.Register(collectorToRegister)
		if err != nil && !errors.As(err, &prometheus.AlreadyRegisteredError{}) {
			return nil, fmt.Errorf("cannot register %s: %w", collectorName, err)
		}
	}

	c.averageBlockTime.Set(ExpectedBlockTime.Seconds())
	return c, nil
}

func (c *collectors) blockProduced(averageBlockTime time.Duration) {
	c.blocksProduced.Inc()
	c.averageBlockTime.Set(averageBlockTime.Seconds())
}

func (c *collectors) anomaly(kind AnomalyKind) {
	c.anomalies.WithLabelValues(kind.String()).Inc()
}

func (c *collectors) health(health NetworkHealth) {
	c.networkHealth.Set(float64(health))
}
