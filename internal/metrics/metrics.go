// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/micc/internal/httpserver"
	"github.com/ChainSafe/micc/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultAddress is the default listening address of the metrics server.
const DefaultAddress = "localhost:9876"

const stopTimeout = 30 * time.Second

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

var errServerExited = errors.New("metrics server exited unexpectedly")

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer creates a metrics server serving the metrics of the
// gatherer on /metrics. A nil gatherer serves the default registry.
func NewServer(address string, gatherer prometheus.Gatherer) (s *Server) {
	handler := promhttp.Handler()
	if gatherer != nil {
		handler = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}

	m := http.NewServeMux()
	m.Handle("/metrics", handler)
	return &Server{
		server: httpserver.New("metrics", address, m, logger),
	}
}

// Start starts the metrics server and returns once it listens.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("metrics server serving at http://%s/metrics", s.server.GetAddress())
		return nil
	case err := <-s.done:
		close(s.done)
		cancel()
		if err != nil {
			return err
		}
		return errServerExited
	}
}

// Address returns the address the server listens on.
func (s *Server) Address() string {
	return s.server.GetAddress()
}

// Stop stops the metrics server
func (s *Server) Stop() (err error) {
	s.cancel()
	select {
	case err := <-s.done:
		close(s.done)
		if err != nil {
			return err
		}
		return nil
	case <-time.After(stopTimeout):
		return fmt.Errorf("metrics server exit timeout after %s", stopTimeout)
	}
}
