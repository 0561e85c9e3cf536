package query

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/nerstat/render"
	sent "github.com/revelaction/nerstat/sentence"
	"github.com/revelaction/nerstat/stat"
)

const (
	// DefaultExamples is the number of example sentences printed per query
	DefaultExamples = 3

	quitCommand = "quit"
)

// Kind tells whether a queried term is a full BIO label or an entity type.
type Kind string

const (
	KindLabel Kind = "label"
	KindType  Kind = "type"
)

// Answer is the result of a lookup.
type Answer struct {
	Term     string
	Kind     Kind
	Count    int
	Examples []sent.Sentence
}

type Handler struct {
	Library  sent.Library
	Stats    stat.Stats
	Renderer *render.Renderer

	// Examples is the maximum number of example sentences per answer
	Examples int

	titles map[int]string
}

func NewHandler(lib sent.Library, stats stat.Stats, r *render.Renderer) *Handler {
	titles := make(map[int]string, len(lib))
	for _, d := range lib {
		titles[d.Id] = d.Title
	}

	return &Handler{
		Library:  lib,
		Stats:    stats,
		Renderer: r,
		Examples: DefaultExamples,
		titles:   titles,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Renderer.W, "🔑 Ctrl+X: Toggle color, 🔧 quit")

	history := []string{}

	for {
		in := prompt.Input("      🏷  ", h.completer,
			prompt.OptionTitle("nerstat explore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasColor = !h.Renderer.HasColor
					fmt.Fprintf(h.Renderer.W, "Color set to %t\n", h.Renderer.HasColor)
				}}),
		)

		in = strings.TrimSpace(in)
		if in == quitCommand {
			return nil
		}
		if in == "" {
			continue
		}

		history = append(history, in)
		h.Print(in)
	}
}

// Print writes the answer for term, or a not found line.
func (h *Handler) Print(term string) {
	a, ok := h.Lookup(term)
	if !ok {
		fmt.Fprintf(h.Renderer.W, "%s: not found in corpus\n", term)
		return
	}

	fmt.Fprintf(h.Renderer.W, "%s (%s): %d tokens\n", a.Term, a.Kind, a.Count)
	for _, s := range a.Examples {
		h.Renderer.Sentence(s, fmt.Sprintf("  [%s] ", h.titles[s.DocId]))
	}
}

// Lookup finds term among the observed labels first and then among the
// observed entity types. Examples are collected in corpus order.
func (h *Handler) Lookup(term string) (Answer, bool) {
	var match func(sent.Token) bool
	a := Answer{Term: term}

	if n, ok := h.Stats.LabelCounts[term]; ok {
		a.Kind, a.Count = KindLabel, n
		match = func(t sent.Token) bool { return t.Tag == term }
	} else if n, ok := h.Stats.TypeCounts[term]; ok {
		a.Kind, a.Count = KindType, n
		match = func(t sent.Token) bool { return t.Type == term }
	} else {
		return a, false
	}

	a.Examples = h.examples(match)
	return a, true
}

func (h *Handler) examples(match func(sent.Token) bool) []sent.Sentence {
	found := []sent.Sentence{}
	if h.Examples <= 0 {
		return found
	}

	for _, doc := range h.Library {
		for _, s := range doc.Sentences {
			for _, tok := range s.Tokens {
				if match(tok) {
					found = append(found, s)
					break
				}
			}
			if len(found) == h.Examples {
				return found
			}
		}
	}

	return found
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	word := in.GetWordBeforeCursor()
	if word == "" {
		return []prompt.Suggest{}
	}
	return h.Suggest(word)
}

// Suggest returns the types and labels starting with prefix, types first,
// each group sorted by name.
func (h *Handler) Suggest(prefix string) []prompt.Suggest {
	s := []prompt.Suggest{}
	s = append(s, suggest(h.Stats.TypeCounts, prefix, "🏷 type")...)
	s = append(s, suggest(h.Stats.LabelCounts, prefix, "🔖 label")...)
	return s
}

func suggest(counts stat.Counts, prefix, desc string) []prompt.Suggest {
	s := []prompt.Suggest{}
	for _, k := range counts.Keys() {
		if strings.HasPrefix(k, prefix) {
			s = append(s, prompt.Suggest{Text: k, Description: fmt.Sprintf("%s %d", desc, counts[k])})
		}
	}
	return s
}
