// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo && !headless

package viewer

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Show opens a window titled title displaying img, scaled to fit, and
// blocks until the window is closed. It must be called from the main
// goroutine.
func Show(title string, img image.Image) error {
	a := app.NewWithID("com.tbraymarch.perfplot")
	w := a.NewWindow(title)

	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.SetMinSize(fyne.NewSize(400, 480))
	w.SetContent(c)

	b := img.Bounds()
	w.Resize(fyne.NewSize(fitSize(b.Dx(), b.Dy(), 1000, 1000)))
	w.ShowAndRun()
	return nil
}
