// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// ErrInvalidViewport is returned for non-positive viewport sizes.
var ErrInvalidViewport = errors.New("render: viewport size must be positive")
