// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes s to out as CSV, one record per run in the order
// added. The header row is "run,file,label" followed by the layout
// column names.
func (s *Set) WriteCSV(out io.Writer) error {
	w := csv.NewWriter(out)
	header := []string{"run", "file", "label"}
	for _, c := range s.Layout {
		header = append(header, c.Name)
	}
	w.Write(header)

	for i, run := range s.Runs {
		rec := []string{strconv.Itoa(i), run.File, run.Label}
		for _, ser := range s.series {
			rec = append(rec, strof(ser.Values[i]))
		}
		w.Write(rec)
	}
	w.Flush()
	return w.Error()
}

func strof(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
