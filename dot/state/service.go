// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"fmt"

	"github.com/ChainSafe/micc/internal/log"
	"github.com/dgraph-io/badger/v2"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "state"))

// NewInMemoryDB opens a badger database holding its data in memory only.
func NewInMemoryDB() (*badger.DB, error) {
	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(&badgerLogger{logger: logger})

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("cannot open in-memory database: %w", err)
	}
	return db, nil
}

// badgerLogger forwards the badger logs to the leveled logger,
// demoting badger information messages to debug.
type badgerLogger struct {
	logger log.LeveledLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Tracef(format, args...)
}
