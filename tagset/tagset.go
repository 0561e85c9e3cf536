// Package tagset loads the canonical entity type inventory and answers
// membership questions about it.
package tagset

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// BaseFamily is the family of types whose name has no underscore.
const BaseFamily = "BASE"

const utf8BOM = "\ufeff"

// headerMarker identifies the header row of the spreadsheet export.
const headerMarker = "Named Entity"

// Entry is one canonical entity type.
type Entry struct {
	Name        string
	Family      string
	Description string
}

// Tagset maps entity type names to their entries. Names are compared
// case sensitively.
type Tagset struct {
	entries map[string]Entry
	names   mapset.Set[string]
}

// LoadError is returned when the tagset file cannot be used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load tagset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// New builds a Tagset from entries. Later duplicates are ignored.
func New(entries ...Entry) *Tagset {
	ts := &Tagset{
		entries: make(map[string]Entry, len(entries)),
		names:   mapset.NewThreadUnsafeSet[string](),
	}

	for _, e := range entries {
		if e.Name == "" || ts.names.Contains(e.Name) {
			continue
		}
		if e.Family == "" {
			e.Family = FamilyOf(e.Name)
		}
		ts.entries[e.Name] = e
		ts.names.Add(e.Name)
	}

	return ts
}

// Load reads a tagset file. Rows are tab separated: name, optional family
// and optional description. Comma separated rows, as found in spreadsheet
// exports, are accepted too.
func Load(path string) (*Tagset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if lineNum == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if lineNum == 1 && strings.Contains(line, headerMarker) {
			continue
		}

		cols := splitRow(line)
		name := strings.TrimSpace(cols[0])
		if name == "" {
			continue
		}

		e := Entry{Name: name}
		if len(cols) > 1 {
			e.Family = strings.TrimSpace(cols[1])
		}
		if len(cols) > 2 {
			e.Description = strings.TrimSpace(cols[2])
		}
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if len(entries) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("no valid rows")}
	}

	return New(entries...), nil
}

func splitRow(line string) []string {
	if strings.Contains(line, "\t") {
		return strings.Split(line, "\t")
	}
	return strings.Split(line, ",")
}

// FamilyOf returns the text before the first underscore of name, or
// BaseFamily.
func FamilyOf(name string) string {
	if i := strings.Index(name, "_"); i > 0 {
		return name[:i]
	}
	return BaseFamily
}

// Contains reports whether name is a canonical type.
func (ts *Tagset) Contains(name string) bool {
	return ts.names.Contains(name)
}

// All returns the set of type names. The returned set is a copy.
func (ts *Tagset) All() mapset.Set[string] {
	return ts.names.Clone()
}

// Names returns the type names sorted alphabetically.
func (ts *Tagset) Names() []string {
	return mapset.Sorted(ts.names)
}

func (ts *Tagset) Len() int {
	return ts.names.Cardinality()
}

func (ts *Tagset) Entry(name string) (Entry, bool) {
	e, ok := ts.entries[name]
	return e, ok
}

// Families groups the type names by family. Names inside a family are
// sorted.
func (ts *Tagset) Families() map[string][]string {
	groups := map[string][]string{}
	for name, e := range ts.entries {
		groups[e.Family] = append(groups[e.Family], name)
	}

	for family := range groups {
		sort.Strings(groups[family])
	}

	return groups
}
