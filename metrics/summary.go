// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Summary describes one series across all runs.
type Summary struct {
	Metric string
	N      int

	Mean, StdDev float64
	Min, Max     float64

	// Latest is the value from the most recent run.
	Latest float64

	// Delta is Latest minus the mean of all earlier runs. It is NaN
	// if there are fewer than two runs.
	Delta float64
}

// Summarize returns a Summary for each series in s, in layout order.
// Statistics that are undefined for the number of runs are NaN.
func Summarize(s *Set) []Summary {
	var out []Summary
	for _, ser := range s.series {
		out = append(out, summarize(ser))
	}
	return out
}

func summarize(ser *Series) Summary {
	nan := math.NaN()
	sum := Summary{Metric: ser.Name, N: len(ser.Values), Mean: nan, StdDev: nan, Min: nan, Max: nan, Latest: nan, Delta: nan}
	if sum.N == 0 {
		return sum
	}

	sum.Mean = stats.Mean(ser.Values)
	sum.Min, sum.Max = stats.Bounds(ser.Values)
	sum.Latest = ser.Values[sum.N-1]
	if sum.N > 1 {
		sum.StdDev = stats.StdDev(ser.Values)
		sum.Delta = sum.Latest - stats.Mean(ser.Values[:sum.N-1])
	}
	return sum
}
