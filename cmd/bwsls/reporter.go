package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

type reporter struct {
	w io.Writer
}

func newReporter(w io.Writer) reporter {
	if w == nil {
		w = os.Stdout
	}
	return reporter{w: w}
}

func (r reporter) Section(heading string) {
	fmt.Fprintf(r.w, "=== %s ===\n", heading)
}

func (r reporter) Table(columns []string, rows [][]string) {
	w := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func (r reporter) Line(s string) {
	fmt.Fprintln(r.w, s)
}
