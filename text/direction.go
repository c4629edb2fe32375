// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// BaseDirection returns the paragraph direction of s: right-to-left when
// its first directional run is right-to-left, left-to-right otherwise.
func BaseDirection(s string) di.Direction {
	if s == "" {
		return di.DirectionLTR
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		switch run.Direction() {
		case bidi.RightToLeft:
			return di.DirectionRTL
		case bidi.LeftToRight:
			return di.DirectionLTR
		}
	}
	return di.DirectionLTR
}
