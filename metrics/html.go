// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("summary").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.perfplot { border-collapse: collapse; }
.perfplot th:nth-child(1) { text-align: left; }
.perfplot td:nth-child(1n+2) { text-align: right; padding: 0em 1em; }
.perfplot th { border-bottom: 1px solid #666; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table class="perfplot">
<tr>{{range .Header}}<th>{{.}}{{end}}
{{range .Rows -}}
<tr><td>{{.Metric}}{{range .Cells}}<td>{{.}}{{end}}
{{end -}}
</table>
</body>
</html>
`))

type htmlRow struct {
	Metric string
	Cells  []string
}

// FormatHTML writes sums to w as an HTML page with a single table.
func FormatHTML(w io.Writer, title string, sums []Summary) error {
	data := struct {
		Title  string
		Header []string
		Rows   []htmlRow
	}{Title: title, Header: summaryHeader}
	for _, s := range sums {
		data.Rows = append(data.Rows, htmlRow{s.Metric, s.cells()})
	}
	return htmlTemplate.Execute(w, data)
}
