// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import "errors"

var errNoFrame = errors.New("software: no frame has been drawn")
