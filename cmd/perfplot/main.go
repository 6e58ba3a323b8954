// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Perfplot plots the summary metrics of the most recent runs of an
// automated performance test.
//
// Usage:
//
//	perfplot [flags] testname
//
// Perfplot looks for report files in every folder beneath
// Saved/Profiling/testname of the project directory (by default, the
// current directory), keeps the 10 most recently created, and reads
// the "Adjusted Results" row of each. It draws the frame, render
// thread, game thread and GPU times of those runs as a grid of
// scatter plots, oldest run first, and shows the grid in a window.
//
// Any report that cannot be read or lacks the expected row stops
// perfplot with an error; no report is skipped.
//
// The flags are:
//
//	-root dir
//		project directory holding Saved/Profiling (default ".")
//	-n count
//		number of most recent runs to plot (default 10)
//	-ext suffix
//		report file name suffix (default ".csv")
//	-o file
//		write the chart to file instead of showing it; the format
//		follows the extension: png, jpg, tif, svg or pdf
//	-show
//		show the chart in a window even when -o is given
//	-width, -height inches
//		chart size (default 10×12)
//	-csv
//		print the collected series in CSV form
//	-summary
//		print a table of per-metric statistics
//	-html file
//		write the table of per-metric statistics as HTML to file
//
// Showing the chart needs a build with cgo and a display. A build
// with the headless tag can only write files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"

	"github.com/tbraymarch/perfplot/internal/viewer"
	"github.com/tbraymarch/perfplot/metrics"
	"github.com/tbraymarch/perfplot/perfchart"
	"github.com/tbraymarch/perfplot/profcsv"
	"github.com/tbraymarch/perfplot/proffiles"
)

// Replaced during testing.
var (
	created proffiles.CreatedFunc
	show    = viewer.Show
)

const missingTestName = "Pass the name of the test as an argument please."

func main() {
	log.SetPrefix("perfplot: ")
	log.SetFlags(0)
	if err := perfplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func perfplot(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("perfplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: perfplot [flags] testname\n")
		flags.PrintDefaults()
	}
	var (
		flagRoot    = flags.String("root", "", "project `dir` holding Saved/Profiling (default current directory)")
		flagN       = flags.Int("n", proffiles.DefaultKeep, "plot the last `count` runs")
		flagExt     = flags.String("ext", proffiles.DefaultExt, "report file name `suffix`")
		flagOut     = flags.String("o", "", "write the chart to `file` instead of showing it")
		flagShow    = flags.Bool("show", false, "show the chart even when -o is given")
		flagWidth   = flags.Float64("width", 10, "chart width in `inches`")
		flagHeight  = flags.Float64("height", 12, "chart height in `inches`")
		flagCSV     = flags.Bool("csv", false, "print the series in CSV form")
		flagSummary = flags.Bool("summary", false, "print per-metric statistics")
		flagHTML    = flags.String("html", "", "write per-metric statistics as HTML to `file`")
	)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(w, missingTestName)
		return nil
	}
	testName := flags.Arg(0)

	root := *flagRoot
	if root == "" {
		var err error
		if root, err = os.Getwd(); err != nil {
			return err
		}
	}
	fmt.Fprintln(wErr, root)

	dir := filepath.Join(root, "Saved", "Profiling", testName)
	paths, err := proffiles.Collect(dir, *flagExt, *flagN, created)
	if err != nil {
		return err
	}
	set, err := metrics.Collect(&profcsv.Files{Paths: paths}, metrics.DefaultLayout)
	if err != nil {
		return err
	}
	fmt.Fprintf(wErr, "%s: %d runs\n", testName, set.Len())

	if *flagCSV {
		if err := set.WriteCSV(w); err != nil {
			return err
		}
	}
	if *flagSummary || *flagHTML != "" {
		sums := metrics.Summarize(set)
		if *flagSummary {
			if err := metrics.FormatText(w, sums); err != nil {
				return err
			}
		}
		if *flagHTML != "" {
			if err := writeHTML(*flagHTML, testName, sums); err != nil {
				return err
			}
		}
	}

	plots, err := perfchart.Render(set, perfchart.DefaultGrid)
	if err != nil {
		return err
	}
	width, height := vg.Length(*flagWidth)*vg.Inch, vg.Length(*flagHeight)*vg.Inch
	if *flagOut != "" {
		if err := perfchart.Save(plots, width, height, *flagOut); err != nil {
			return err
		}
	}
	if *flagOut == "" || *flagShow {
		return show(testName, perfchart.Image(plots, width, height))
	}
	return nil
}

func writeHTML(path, title string, sums []metrics.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := metrics.FormatHTML(f, title, sums); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
