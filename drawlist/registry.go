// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawlist

import (
	"fmt"
	"sort"
	"sync"
)

// SinkFactory is a function that creates a new sink instance.
// Factories are registered via Register() and called by NewSink().
type SinkFactory func() Sink

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	sinks      = make(map[string]SinkFactory)
)

// Register registers a sink factory with the given name.
// This function is typically called from init() in sink packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    drawlist.Register("software", func() drawlist.Sink {
//	        return New()
//	    })
//	}
//
// Register panics if factory is nil or a sink with the same name is
// already registered.
func Register(name string, factory SinkFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("drawlist: Register factory is nil")
	}
	if _, dup := sinks[name]; dup {
		panic("drawlist: Register called twice for " + name)
	}
	sinks[name] = factory
}

// NewSink creates a new sink instance by name.
// The error message includes a hint about forgotten imports.
func NewSink(name string) (Sink, error) {
	registryMu.RLock()
	factory, ok := sinks[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("drawlist: unknown sink %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Sinks returns a sorted list of registered sink names.
func Sinks() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a sink with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := sinks[name]
	return ok
}
