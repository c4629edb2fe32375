// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texture

// Option configures a Cache.
type Option func(*options)

type options struct {
	exactPolygonKeys bool
}

func defaultOptions() options {
	return options{}
}

// WithExactPolygonKeys makes polygon lookups compare the full vertex list
// and the shape hint instead of only the checksum.
func WithExactPolygonKeys() Option {
	return func(o *options) {
		o.exactPolygonKeys = true
	}
}
