// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !cgo || headless

package viewer

import "image"

// Show reports ErrUnavailable.
func Show(title string, img image.Image) error {
	return ErrUnavailable
}
