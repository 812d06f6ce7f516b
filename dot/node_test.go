// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"math"
	"testing"
	"time"

	"github.com/ChainSafe/micc/lib/micc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Global.Name = t.Name()
	cfg.Core.SlotDuration = 100 * time.Millisecond
	cfg.Core.FallbackInterval = 200 * time.Millisecond
	cfg.Trigger.Controller.Collection.MinCollectionTime = 10 * time.Millisecond
	cfg.Trigger.Controller.Collection.MaxCollectionTime = 40 * time.Millisecond
	cfg.Trigger.EventSource.BackupInterval = 20 * time.Millisecond
	cfg.Monitor.DetailedLogging = false
	return cfg
}

func Test_NewNode_errors(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		modify   func(cfg *Config)
		errWraps error
	}{
		"invalid config": {
			modify:   func(cfg *Config) { cfg.Core.SlotDuration = 0 },
			errWraps: ErrInvalidConfig,
		},
		"local key not an authority": {
			modify:   func(cfg *Config) { cfg.Core.Key = "bob" },
			errWraps: ErrKeyNotAuthority,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := newTestConfig(t)
			testCase.modify(cfg)

			node, err := NewNode(cfg)
			assert.Nil(t, node)
			assert.ErrorIs(t, err, testCase.errWraps)
		})
	}
}

func Test_Node_authorsBlocks(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)
	node, err := NewNode(cfg)
	require.NoError(t, err)

	err = node.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		err := node.Stop()
		assert.NoError(t, err)
	})

	tx := newTestTransaction([]byte{7, 7, 7}, math.MaxUint64)
	_, err = node.TransactionState.Push(tx)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return node.TransactionState.ReadyCount() == 0
	}, 5*time.Second, 10*time.Millisecond)

	head, err := node.BlockState.BestBlockHeader()
	require.NoError(t, err)
	require.GreaterOrEqual(t, head.Number, uint(1))

	// the head is sealed by the single authority
	authorities, err := node.AuthoritySet.Authorities(head.Hash())
	require.NoError(t, err)
	slot, author, err := node.Worker.VerifyHeader(head, authorities)
	require.NoError(t, err)
	assert.Equal(t, authorities[0], author)

	presealSlot, err := micc.FindPreDigest(head)
	require.NoError(t, err)
	assert.Equal(t, presealSlot, slot)

	assert.GreaterOrEqual(t, node.Monitor.Metrics().BlocksProduced, uint64(1))
	assert.Empty(t, node.Detector.SessionEquivocations().Reports)
}

func Test_Node_withoutKey(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)
	cfg.Core.Key = ""
	cfg.Monitor.Enabled = false

	node, err := NewNode(cfg)
	require.NoError(t, err)
	assert.Nil(t, node.Monitor)

	require.NoError(t, node.Start())
	time.Sleep(3 * cfg.Core.FallbackInterval)
	require.NoError(t, node.Stop())

	head, err := node.BlockState.BestBlockHeader()
	require.NoError(t, err)
	assert.Equal(t, uint(0), head.Number)
}

func Test_Node_sessionBoundaries(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)
	cfg.Core.SessionLength = 1

	node, err := NewNode(cfg)
	require.NoError(t, err)

	require.NoError(t, node.Start())
	t.Cleanup(func() {
		err := node.Stop()
		assert.NoError(t, err)
	})

	assert.Eventually(t, func() bool {
		return node.AuthoritySet.SessionIndex() >= 1
	}, 5*time.Second, 10*time.Millisecond)
}
