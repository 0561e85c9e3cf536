package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/nerstat/stat"
)

// JSONRenderer writes Stats as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the statistics as indented JSON.
func (r *JSONRenderer) Render(s stat.Stats) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(s)
}
