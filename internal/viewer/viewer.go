// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer shows a rendered chart in a desktop window.
//
// The window needs cgo and a display. Building with CGO_ENABLED=0 or
// with the headless tag leaves it out, and Show then reports
// ErrUnavailable.
package viewer

import "errors"

// ErrUnavailable is returned by Show in builds without window support.
var ErrUnavailable = errors.New("built without window support; use -o to write the chart to a file")

// fitSize scales a w×h image down, keeping its aspect ratio, until it
// fits in maxW×maxH.
func fitSize(w, h int, maxW, maxH float32) (float32, float32) {
	fw, fh := float32(w), float32(h)
	if fw <= 0 || fh <= 0 {
		return maxW, maxH
	}
	scale := float32(1)
	if s := maxW / fw; s < scale {
		scale = s
	}
	if s := maxH / fh; s < scale {
		scale = s
	}
	return fw * scale, fh * scale
}
