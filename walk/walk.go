// Package walk discovers the document folders of an annotation root,
// selects one annotation file per document and parses it.
package walk

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/revelaction/nerstat/conll"
	sent "github.com/revelaction/nerstat/sentence"
)

// Config holds the file selection policy.
type Config struct {
	// Curated are glob patterns of reviewed exports
	Curated []string

	// Initial are glob patterns of raw initial capture exports
	Initial []string

	// Extension of annotation files used when no pattern matches
	Extension string

	// Workers is the number of documents parsed concurrently. Values below
	// 2 parse sequentially.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Curated:   []string{"admin.conll", "CURATION_USER.conll", "*curation*.conll", "*CURATION*.conll"},
		Initial:   []string{"INITIAL_CAS.conll"},
		Extension: ".conll",
		Workers:   1,
	}
}

// RootNotFoundError is returned when the annotation root cannot be listed.
type RootNotFoundError struct {
	Path string
	Err  error
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("annotation root %s not found: %v", e.Path, e.Err)
}

func (e *RootNotFoundError) Unwrap() error { return e.Err }

// DocDir is a document folder and the regular file names it contains.
type DocDir struct {
	Name  string
	Path  string
	Files []string
}

// Discover lists the document folders of root, sorted by name. Folders
// that cannot be listed are returned without files.
func Discover(root string) ([]DocDir, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &RootNotFoundError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &RootNotFoundError{Path: root, Err: errors.New("not a directory")}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &RootNotFoundError{Path: root, Err: err}
	}

	var dirs []DocDir
	for _, e := range entries {
		d := DocDir{Name: e.Name(), Path: filepath.Join(root, e.Name())}
		if !isDir(e, d.Path) {
			continue
		}

		files, err := os.ReadDir(d.Path)
		if err == nil {
			for _, f := range files {
				if isFile(f, filepath.Join(d.Path, f.Name())) {
					d.Files = append(d.Files, f.Name())
				}
			}
			sort.Strings(d.Files)
		}
		dirs = append(dirs, d)
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	return dirs, nil
}

// isDir and isFile follow symbolic links.
func isDir(e fs.DirEntry, path string) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(e fs.DirEntry, path string) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Corpus is the outcome of a walk.
type Corpus struct {
	// Docs are the annotated documents, in folder name order
	Docs sent.Library

	// Unannotated counts folders without usable annotations
	Unannotated int

	// SkippedLines counts malformed lines over all parsed files
	SkippedLines int
}

// Total returns the number of discovered document folders.
func (c Corpus) Total() int {
	return len(c.Docs) + c.Unannotated
}

type Walker struct {
	cfg    Config
	parser *conll.Parser
	log    logrus.FieldLogger

	// Progress, when set, is called after each document with the number
	// of documents done, the total and the document name.
	Progress func(done, total int, name string)
}

// NewWalker creates a Walker. A nil logger discards output.
func NewWalker(cfg Config, parser *conll.Parser, log logrus.FieldLogger) *Walker {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Walker{cfg: cfg, parser: parser, log: log}
}

// outcome is the parse result of one document folder.
type outcome struct {
	doc     sent.Doc
	ok      bool
	skipped int
}

// Walk parses every document folder under root. It fails only when root
// itself cannot be listed.
func (w *Walker) Walk(root string) (Corpus, error) {
	dirs, err := Discover(root)
	if err != nil {
		return Corpus{}, err
	}

	outcomes := make([]outcome, len(dirs))

	if w.cfg.Workers > 1 {
		var mu sync.Mutex
		n := 0

		var g errgroup.Group
		g.SetLimit(w.cfg.Workers)
		for i := range dirs {
			i := i
			g.Go(func() error {
				outcomes[i] = w.document(dirs[i])

				mu.Lock()
				n++
				w.progress(n, len(dirs), dirs[i].Name)
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range dirs {
			outcomes[i] = w.document(dirs[i])
			w.progress(i+1, len(dirs), dirs[i].Name)
		}
	}

	var corpus Corpus
	for _, o := range outcomes {
		corpus.SkippedLines += o.skipped
		if !o.ok {
			corpus.Unannotated++
			continue
		}

		o.doc.Id = len(corpus.Docs)
		for i := range o.doc.Sentences {
			o.doc.Sentences[i].DocId = o.doc.Id
		}
		corpus.Docs = append(corpus.Docs, o.doc)
	}

	w.log.WithFields(logrus.Fields{
		"root":        root,
		"documents":   corpus.Total(),
		"annotated":   len(corpus.Docs),
		"unannotated": corpus.Unannotated,
		"skipped":     corpus.SkippedLines,
	}).Info("corpus walked")

	return corpus, nil
}

func (w *Walker) progress(done, total int, name string) {
	if w.Progress != nil {
		w.Progress(done, total, name)
	}
}

// document parses the authoritative file of d. Failures are logged and
// reported as not ok.
func (w *Walker) document(d DocDir) outcome {
	log := w.log.WithField("doc", d.Name)

	name, ok := Select(d.Files, w.cfg)
	if !ok {
		log.Warn("no annotation file")
		return outcome{}
	}

	path := filepath.Join(d.Path, name)
	res, err := w.parser.Parse(path)
	if err != nil {
		var ee *conll.EncodingError
		if errors.As(err, &ee) {
			log.WithField("offset", ee.Offset).Warn("annotation file is not UTF-8")
		} else {
			log.WithError(err).Warn("cannot read annotation file")
		}
		return outcome{}
	}

	for _, warn := range res.Warnings {
		log.WithFields(logrus.Fields{
			"file": name,
			"line": warn.Line,
		}).Warn(warn.Reason)
	}

	if len(res.Sentences) == 0 {
		log.WithField("file", name).Warn("no sentences")
		return outcome{skipped: len(res.Warnings)}
	}

	return outcome{
		doc:     sent.Doc{Title: d.Name, Path: path, Sentences: res.Sentences},
		ok:      true,
		skipped: len(res.Warnings),
	}
}
