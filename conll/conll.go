// Package conll reads INCEpTION style CoNLL exports: one token per line,
// whitespace separated columns, blank lines between sentences.
// Malformed lines are skipped and reported as warnings, never as errors.
package conll

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	sent "github.com/revelaction/nerstat/sentence"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Config selects the columns and markers of an export layout.
type Config struct {
	// TokenColumn is the index of the surface text column.
	TokenColumn int

	// TagColumn is the index of the NER tag column. Negative values count
	// from the end, -1 being the last column.
	TagColumn int

	// MinColumns is the minimum number of columns of a token line.
	MinColumns int

	// CommentPrefixes mark comment and metadata lines.
	CommentPrefixes []string

	// BoundaryPrefixes are the accepted span boundary markers.
	BoundaryPrefixes []string
}

// DefaultConfig reads the tag from the last column.
func DefaultConfig() Config {
	return Config{
		TokenColumn:      0,
		TagColumn:        -1,
		MinColumns:       2,
		CommentPrefixes:  []string{"#", "-DOCSTART-"},
		BoundaryPrefixes: sent.BoundaryPrefixes,
	}
}

// Warning describes a skipped line.
type Warning struct {
	Line   int
	Reason string
	Text   string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s: %q", w.Line, w.Reason, w.Text)
}

// Result holds the sentences of one file and the lines that were skipped.
type Result struct {
	Sentences []sent.Sentence
	Warnings  []Warning
}

// EncodingError is returned when a file is not valid UTF-8.
type EncodingError struct {
	Path string
	// Offset of the first invalid byte
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: invalid UTF-8 at byte %d", e.Path, e.Offset)
}

type Parser struct {
	cfg Config
}

func NewParser(cfg Config) *Parser {
	if cfg.MinColumns < 1 {
		cfg.MinColumns = 1
	}
	if cfg.BoundaryPrefixes == nil {
		cfg.BoundaryPrefixes = sent.BoundaryPrefixes
	}
	return &Parser{cfg: cfg}
}

// Parse reads the annotation file at path. Only IO failures and invalid
// UTF-8 return an error.
func (p *Parser) Parse(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return p.ParseReader(path, f)
}

// ParseReader parses the content of r. name is used in errors.
func (p *Parser) ParseReader(name string, r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", name, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if off := invalidUTF8(data); off >= 0 {
		return Result{}, &EncodingError{Path: name, Offset: off}
	}

	var res Result
	var current []sent.Token

	flush := func() {
		if len(current) == 0 {
			return
		}
		res.Sentences = append(res.Sentences, sent.Sentence{
			Id:     len(res.Sentences),
			Tokens: current,
		})
		current = nil
	}

	for i, raw := range strings.Split(string(data), "\n") {
		lineNum := i + 1
		line := strings.TrimRight(raw, "\r")

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		tok, reason := p.token(line)
		if p.isComment(line, reason == "") {
			continue
		}

		if reason != "" {
			res.Warnings = append(res.Warnings, Warning{Line: lineNum, Reason: reason, Text: line})
			continue
		}

		current = append(current, tok)
	}

	flush()
	return res, nil
}

// isComment reports whether line is a comment or metadata line. Multi
// character markers such as -DOCSTART- always start a comment. A single
// character marker such as # may also start a token (hashtags, the #
// punctuation), so a well formed token line is a comment only when the
// marker is followed by a space or its first field is a key=value pair.
func (p *Parser) isComment(line string, isToken bool) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, prefix := range p.cfg.CommentPrefixes {
		if prefix == "" || !strings.HasPrefix(trimmed, prefix) {
			continue
		}

		if !isToken || utf8.RuneCountInString(prefix) > 1 {
			return true
		}

		rest := trimmed[len(prefix):]
		if strings.HasPrefix(rest, " ") || strings.Contains(strings.Fields(trimmed)[0], "=") {
			return true
		}
	}
	return false
}

// token builds a token from a non blank line. A non-empty reason means the
// line must be skipped.
func (p *Parser) token(line string) (sent.Token, string) {
	cols := strings.Fields(line)
	if len(cols) < p.cfg.MinColumns {
		return sent.Token{}, fmt.Sprintf("expected at least %d columns, got %d", p.cfg.MinColumns, len(cols))
	}

	tokIdx := column(p.cfg.TokenColumn, len(cols))
	tagIdx := column(p.cfg.TagColumn, len(cols))
	if tokIdx < 0 || tagIdx < 0 {
		return sent.Token{}, fmt.Sprintf("column out of range in %d columns", len(cols))
	}

	if tokIdx == tagIdx {
		return sent.Token{}, "token and tag columns coincide"
	}

	text, tag := cols[tokIdx], cols[tagIdx]
	if text == "" {
		return sent.Token{}, "empty token"
	}

	_, typ, ok := sent.SplitTag(tag, p.cfg.BoundaryPrefixes)
	if !ok {
		return sent.Token{}, fmt.Sprintf("malformed tag %q", tag)
	}

	return sent.Token{Text: text, Tag: tag, Type: typ}, ""
}

// column resolves a possibly negative index against n columns. It returns
// -1 when out of range.
func column(idx, n int) int {
	if idx < 0 {
		idx = n + idx
	}
	if idx < 0 || idx >= n {
		return -1
	}
	return idx
}

func invalidUTF8(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}

	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
