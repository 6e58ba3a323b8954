// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perfchart draws metric series as a grid of scatter plots,
// one point per run, with the oldest run at x = 0.
package perfchart

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/tbraymarch/perfplot/metrics"
)

// A Panel is one cell of a Grid: a titled scatter plot of one or more
// metrics sharing a y axis.
type Panel struct {
	Title string

	// Metrics names the series to plot, by Layout column name.
	Metrics []string

	// Labels are the legend entries, parallel to Metrics. If nil,
	// the metric names are used.
	Labels []string
}

// A Grid arranges panels in rows and columns. A nil panel leaves its
// cell empty. Every row must have the same number of cells.
type Grid [][]*Panel

// DefaultGrid is a 3×2 grid of the thread, GPU and frame time metrics
// of metrics.DefaultLayout. The last cell is empty.
var DefaultGrid = Grid{
	{
		{
			Title:   "Render Thread performance. [ms]",
			Metrics: []string{"MinRenderThread", "AvgRenderThread", "MaxRenderThread"},
			Labels:  []string{"MinRT", "AvgRT", "MaxRT"},
		},
		{
			Title:   "Game Thread performance. [ms]",
			Metrics: []string{"MinGameThread", "AvgGameThread", "MaxGameThread"},
			Labels:  []string{"MinGT", "AvgGT", "MaxGT"},
		},
	},
	{
		{
			Title:   "GPU performance. [ms]",
			Metrics: []string{"MinGPU", "AvgGPU", "MaxGPU"},
		},
		{
			Title:   "Max frame time. [ms]",
			Metrics: []string{"MaxFrameTime"},
			Labels:  []string{"MaxFT"},
		},
	},
	{
		{
			Title:   "Avg frame time. [ms]",
			Metrics: []string{"AvgFrameTime"},
			Labels:  []string{"AvgFT"},
		},
		nil,
	},
}

// YLabel is the y axis label of every panel.
const YLabel = "Values in [ms]"

// dpi is the resolution of raster output.
const dpi = 150

// Render builds one plot per panel of grid from the series in set. The
// result has the shape of grid, with nil where grid has no panel.
//
// The x axis of every plot spans [-0.5, n+0.5], where n is the number
// of runs in set.
func Render(set *metrics.Set, grid Grid) ([][]*plot.Plot, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	n := set.Len()
	plots := make([][]*plot.Plot, len(grid))
	for j, row := range grid {
		if len(row) != len(grid[0]) {
			return nil, fmt.Errorf("grid row %d has %d cells, want %d", j, len(row), len(grid[0]))
		}
		plots[j] = make([]*plot.Plot, len(row))
		for i, panel := range row {
			if panel == nil {
				continue
			}
			p, err := renderPanel(set, panel)
			if err != nil {
				return nil, fmt.Errorf("panel %q: %w", panel.Title, err)
			}
			// Fix the range after adding data, which widens it.
			p.X.Min = -0.5
			p.X.Max = float64(n) + 0.5
			p.X.Tick.Marker = rankTicks(n)
			if p.Y.Min > p.Y.Max {
				// No finite values.
				p.Y.Min, p.Y.Max = 0, 1
			}
			plots[j][i] = p
		}
	}
	return plots, nil
}

func renderPanel(set *metrics.Set, panel *Panel) (*plot.Plot, error) {
	if panel.Labels != nil && len(panel.Labels) != len(panel.Metrics) {
		return nil, fmt.Errorf("%d labels for %d metrics", len(panel.Labels), len(panel.Metrics))
	}

	p := plot.New()
	p.Title.Text = panel.Title
	p.Y.Label.Text = YLabel
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	for i, name := range panel.Metrics {
		ser := set.Series(name)
		if ser == nil {
			return nil, fmt.Errorf("unknown metric %q", name)
		}
		s, err := plotter.NewScatter(points(ser.Values))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)

		label := name
		if panel.Labels != nil {
			label = panel.Labels[i]
		}
		p.Legend.Add(label, s)
	}
	return p, nil
}

// points returns the finite values of vs as points at x = run rank.
// Non-finite values are left out.
func points(vs []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(vs))
	for k, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(k), Y: v})
	}
	return xys
}

// rankTicks marks the integer run ranks 0 through n-1.
type rankTicks int

func (n rankTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := 0; i < int(n); i++ {
		if v := float64(i); v >= min && v <= max {
			ticks = append(ticks, plot.Tick{Value: v, Label: strconv.Itoa(i)})
		}
	}
	return ticks
}

// Draw tiles plots onto dc, aligning the data areas of each row and
// column. Nil plots leave their tile empty.
func Draw(plots [][]*plot.Plot, dc draw.Canvas) {
	if len(plots) == 0 {
		return
	}
	t := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 3,
		PadBottom: vg.Millimeter * 3,
		PadLeft:   vg.Millimeter * 3,
		PadRight:  vg.Millimeter * 3,
	}
	canvases := plot.Align(plots, t, dc)
	for j, row := range plots {
		for i, p := range row {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}
}

func newRaster(w, h vg.Length) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
}

// Image draws plots onto a w×h raster image.
func Image(plots [][]*plot.Plot, w, h vg.Length) image.Image {
	c := newRaster(w, h)
	Draw(plots, draw.New(c))
	return c.Image()
}

// Save draws plots onto a w×h canvas and writes it to path. The
// format follows the extension of path: png, jpg, jpeg, tif, tiff,
// svg or pdf.
func Save(plots [][]*plot.Plot, w, h vg.Length, path string) error {
	var (
		c  draw.Canvas
		wt vg.CanvasWriterTo
	)
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "png":
		img := newRaster(w, h)
		c, wt = draw.New(img), vgimg.PngCanvas{Canvas: img}
	case "jpg", "jpeg":
		img := newRaster(w, h)
		c, wt = draw.New(img), vgimg.JpegCanvas{Canvas: img}
	case "tif", "tiff":
		img := newRaster(w, h)
		c, wt = draw.New(img), vgimg.TiffCanvas{Canvas: img}
	case "svg":
		svg := vgsvg.New(w, h)
		c, wt = draw.New(svg), svg
	case "pdf":
		pdf := vgpdf.New(w, h)
		c, wt = draw.New(pdf), pdf
	default:
		return fmt.Errorf("%s: unsupported image format %q", path, ext)
	}
	Draw(plots, c)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
