// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a generic, mutex-guarded cache.
//
//	c := cache.New[string, int]()
//	v, err := c.GetOrCreateErr("key", func() (int, error) { return 42, nil })
//
// GetOrCreateErr runs a fallible constructor under the lock and stores
// the result only on success, so concurrent callers asking for the same
// key never build it twice. There is no eviction: a value stays valid
// until Clear.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
