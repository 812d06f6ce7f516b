// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"fmt"
	"reflect"
)

// Service must be implemented by all Services
type Service interface {
	Start() error
	Stop() error
}

// ServiceRegistry starts services in registration order and stops
// them in reverse order.
type ServiceRegistry struct {
	services     map[reflect.Type]Service
	serviceTypes []reflect.Type
	started      int
	logger       Logger
}

// NewServiceRegistry creates an empty registry
func NewServiceRegistry(logger Logger) *ServiceRegistry {
	return &ServiceRegistry{
		services: make(map[reflect.Type]Service),
		logger:   logger,
	}
}

// RegisterService stores a new service in the map. If a service of that type has been seen
// already, it is ignored.
func (s *ServiceRegistry) RegisterService(service Service) {
	kind := reflect.TypeOf(service)
	if _, exists := s.services[kind]; exists {
		s.logger.Warnf("Tried to add service type %s that has already been seen", kind)
		return
	}
	s.services[kind] = service
	s.serviceTypes = append(s.serviceTypes, kind)
}

// StartAll calls `Service.Start()` for all registered services. If one
// fails, the services already started are stopped and the error is returned.
func (s *ServiceRegistry) StartAll() error {
	s.logger.Infof("Starting services: %v", s.serviceTypes)
	for _, typ := range s.serviceTypes {
		s.logger.Debugf("Starting service %s", typ)
		err := s.services[typ].Start()
		if err != nil {
			s.logger.Errorf("Cannot start service %s: %s", typ, err)
			_ = s.StopAll()
			return fmt.Errorf("cannot start service %s: %w", typ, err)
		}
		s.started++
	}
	s.logger.Debug("All services started.")
	return nil
}

// StopAll calls `Service.Stop()` for the started services, in reverse
// start order. It returns the first error encountered.
func (s *ServiceRegistry) StopAll() (err error) {
	s.logger.Infof("Stopping services: %v", s.serviceTypes[:s.started])
	for ; s.started > 0; s.started-- {
		typ := s.serviceTypes[s.started-1]
		s.logger.Debugf("Stopping service %s", typ)
		stopErr := s.services[typ].Stop()
		if stopErr != nil {
			s.logger.Errorf("Error stopping service %s: %s", typ, stopErr)
			if err == nil {
				err = fmt.Errorf("cannot stop service %s: %w", typ, stopErr)
			}
		}
	}
	s.logger.Debug("All services stopped.")
	return err
}

// Get retrieves the registered service of the same type as srvc.
func (s *ServiceRegistry) Get(srvc interface{}) Service {
	if reflect.TypeOf(srvc).Kind() != reflect.Ptr {
		s.logger.Warnf("expected a pointer but got %T", srvc)
		return nil
	}
	e := reflect.ValueOf(srvc)

	if s, ok := s.services[e.Type()]; ok {
		return s
	}
	s.logger.Warnf("unknown service type %T", srvc)
	return nil
}
