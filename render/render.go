package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	sent "github.com/revelaction/nerstat/sentence"
	"github.com/revelaction/nerstat/stat"
)

const (
	DefaultTopN = 20
	barWidth    = 40
	histBins    = 30
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Teal      = "\033[1;36m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

type Renderer struct {
	W io.Writer

	HasColor bool

	// TopN is the number of entity types of the bar chart
	TopN int
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, TopN: DefaultTopN}
}

func (r *Renderer) color(c, s string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}

// Summary prints the corpus summary table.
func (r *Renderer) Summary(s stat.Stats) {
	fmt.Fprintln(r.W, r.color(Teal, "=== Corpus Summary ==="))
	rows := []struct {
		name  string
		value string
	}{
		{"Total document folders", fmt.Sprint(s.TotalDocuments)},
		{"Annotated documents", fmt.Sprint(s.AnnotatedDocuments)},
		{"Unannotated documents", fmt.Sprint(s.UnannotatedDocuments)},
		{"Total sentences", fmt.Sprint(s.TotalSentences)},
		{"Sentences with entity", fmt.Sprint(s.SentencesWithEntity)},
		{"Entity sentence ratio", fmt.Sprintf("%.3f", s.EntitySentenceRatio)},
		{"Total tokens", fmt.Sprint(s.TotalTokens)},
		{"# BIO labels", fmt.Sprint(s.NumLabels)},
		{"# entity types", fmt.Sprint(s.NumTypes)},
		{"Average sentence length", fmt.Sprintf("%.2f tokens", s.AvgSentenceLength)},
	}

	for _, row := range rows {
		fmt.Fprintf(r.W, "%-28s: %s\n", row.name, row.value)
	}
}

// QC prints the tagset comparison counts.
func (r *Renderer) QC(rep stat.Report) {
	fmt.Fprintln(r.W, r.color(Teal, "=== Tagset QC ==="))
	fmt.Fprintf(r.W, "%-28s: %d\n", "Tagset size", rep.TagsetSize)
	fmt.Fprintf(r.W, "%-28s: %d\n", "Types seen in corpus", rep.Stats.NumTypes)
	fmt.Fprintf(r.W, "%-28s: %d\n", "Unused in corpus", len(rep.QC.Unused))
	fmt.Fprintf(r.W, "%-28s: %d\n", "Unknown vs. tagset", len(rep.QC.Unknown))

	for _, u := range rep.QC.Unknown {
		fmt.Fprintf(r.W, "  %s %s\n", r.color(Red, "?"), u)
	}
}

// TopTypes prints a horizontal bar chart of the most frequent entity types.
func (r *Renderer) TopTypes(types stat.Counts) {
	top := types.Top(r.TopN)
	if len(top) == 0 {
		return
	}

	fmt.Fprintln(r.W, r.color(Teal, fmt.Sprintf("=== Top %d Entity Types ===", r.TopN)))
	r.bars(top)
}

// Coverage prints the sentences with and without entities.
func (r *Renderer) Coverage(s stat.Stats) {
	fmt.Fprintln(r.W, r.color(Teal, "=== Sentence-Level Entity Coverage ==="))
	r.bars([]stat.Count{
		{Key: "With Entity", Count: s.SentencesWithEntity},
		{Key: "Without Entity", Count: s.TotalSentences - s.SentencesWithEntity},
	})
}

// Histogram prints the sentence length distribution grouped in bins of
// equal width.
func (r *Renderer) Histogram(lengths map[int]int) {
	if len(lengths) == 0 {
		return
	}

	fmt.Fprintln(r.W, r.color(Teal, "=== Sentence Length Distribution ==="))
	r.bars(Bins(lengths, histBins))
}

// Bins groups a length histogram into at most n ranges of equal width
// between the minimum and maximum length.
func Bins(lengths map[int]int, n int) []stat.Count {
	if len(lengths) == 0 || n < 1 {
		return nil
	}

	keys := make([]int, 0, len(lengths))
	for k := range lengths {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	lo, hi := keys[0], keys[len(keys)-1]
	width := (hi - lo + n) / n
	if width < 1 {
		width = 1
	}

	var bins []stat.Count
	for start := lo; start <= hi; start += width {
		end := start + width - 1
		c := 0
		for _, k := range keys {
			if k >= start && k <= end {
				c += lengths[k]
			}
		}

		label := fmt.Sprint(start)
		if end > start {
			label = fmt.Sprintf("%d-%d", start, end)
		}
		bins = append(bins, stat.Count{Key: label, Count: c})
	}

	return bins
}

func (r *Renderer) bars(counts []stat.Count) {
	maxCount, keyLen := 0, 0
	for _, c := range counts {
		if c.Count > maxCount {
			maxCount = c.Count
		}
		if len(c.Key) > keyLen {
			keyLen = len(c.Key)
		}
	}

	for _, c := range counts {
		n := 0
		if maxCount > 0 {
			n = c.Count * barWidth / maxCount
		}
		bar := strings.Repeat("█", n)
		fmt.Fprintf(r.W, "%-*s %s %d\n", keyLen, c.Key, r.color(Green256, bar), c.Count)
	}
}

// Sentence prints the tokens of a sentence, entity tokens followed by
// their tag.
func (r *Renderer) Sentence(s sent.Sentence, prefix string) {
	fmt.Fprintf(r.W, "%s%s\n", prefix, r.SentenceString(s))
}

func (r *Renderer) SentenceString(s sent.Sentence) string {
	words := make([]string, len(s.Tokens))
	for i, tok := range s.Tokens {
		if tok.Tag == sent.Outside {
			words[i] = tok.Text
			continue
		}
		words[i] = tok.Text + r.color(Yellow256, "/"+tok.Tag)
	}
	return strings.Join(words, " ")
}

// Families prints the tagset families, one family per line.
func (r *Renderer) Families(families map[string][]string) {
	names := make([]string, 0, len(families))
	for f := range families {
		names = append(names, f)
	}
	sort.Strings(names)

	for _, f := range names {
		fmt.Fprintf(r.W, "%s (%d): %s\n", r.color(Yellow, f), len(families[f]), strings.Join(families[f], ", "))
	}
}
