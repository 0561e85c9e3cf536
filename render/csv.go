package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/revelaction/nerstat/stat"
)

// WriteCounts writes counts as a two column CSV, header first, rows in
// descending count order.
func WriteCounts(w io.Writer, counts stat.Counts, column string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{column, "count"}); err != nil {
		return err
	}

	for _, c := range counts.Sorted() {
		if err := cw.Write([]string{c.Key, strconv.Itoa(c.Count)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteLines writes one entry per line.
func WriteLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
