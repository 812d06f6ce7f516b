// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// Server is an HTTP server implementation, which uses
// the HTTP handler provided.
type Server struct {
	name       string
	address    string
	addressSet chan struct{}
	handler    http.Handler
	logger     Logger
	optional   optionalSettings
}

// New creates a new HTTP server with a name, listening on
// the address specified and using the HTTP handler provided.
func New(name, address string, handler http.Handler,
	logger Logger, options ...Option) *Server {
	return &Server{
		name:       name,
		address:    address,
		addressSet: make(chan struct{}),
		handler:    handler,
		logger:     logger,
		optional:   newOptionalSettings(options),
	}
}

// GetAddress obtains the address the HTTP server is listening on.
// It blocks until the server listens or fails to.
func (s *Server) GetAddress() (address string) {
	<-s.addressSet
	return s.address
}

// Run runs the HTTP server until ctx is canceled.
// The ready channel is closed once the server listens.
// The done channel has an error written to when the HTTP server
// is terminated, and can be nil or not nil.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	server := http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadHeaderTimeout: s.optional.readHeaderTimeout,
	}

	crashed := make(chan struct{})
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		select {
		case <-ctx.Done():
		case <-crashed:
			return
		}

		s.logger.Warnf("%s http server shutting down: %s", s.name, ctx.Err())
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), s.optional.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorf("%s http server failed shutting down within %s: %s",
				s.name, s.optional.shutdownTimeout, err)
		}
	}()

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		close(s.addressSet)
		close(crashed)
		<-shutdownDone
		done <- err
		return
	}

	s.address = listener.Addr().String()
	close(s.addressSet)

	s.logger.Infof("%s http server listening on %s", s.name, s.address)
	close(ready)

	err = server.Serve(listener)

	if err != nil && !errors.Is(ctx.Err(), context.Canceled) {
		close(crashed)
	} else {
		err = nil
	}
	<-shutdownDone
	done <- err
}
