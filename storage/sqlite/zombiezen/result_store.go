package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/nerstat/stat"
	"github.com/revelaction/nerstat/storage"
)

const (
	kindLabel   = "label"
	kindType    = "type"
	kindUnused  = "unused"
	kindUnknown = "unknown"
)

// ResultStore keeps the history of runs in SQLite.
type ResultStore struct {
	pool *sqlitex.Pool
}

var _ storage.ResultRepository = (*ResultStore)(nil)

func NewResultStore(pool *sqlitex.Pool) *ResultStore {
	return &ResultStore{pool: pool}
}

// Write stores the report under a new run id.
func (s *ResultStore) Write(rep stat.Report) (id string, err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return "", err
	}
	defer s.pool.Put(conn)

	scalars, err := json.Marshal(withoutCounts(rep.Stats))
	if err != nil {
		return "", err
	}

	defer sqlitex.Save(conn)(&err)

	id = uuid.NewString()
	err = sqlitex.Execute(conn, "INSERT INTO runs (id, root, tagset_size, stats) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []any{id, rep.Root, rep.TagsetSize, string(scalars)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	counts := []struct {
		kind   string
		counts stat.Counts
	}{
		{kindLabel, rep.Stats.LabelCounts},
		{kindType, rep.Stats.TypeCounts},
	}
	for _, c := range counts {
		for _, kv := range c.counts.Sorted() {
			err = sqlitex.Execute(conn, "INSERT INTO run_counts (run_id, kind, key, count) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
				Args: []any{id, c.kind, kv.Key, kv.Count},
			})
			if err != nil {
				return "", fmt.Errorf("failed to insert %s count: %w", c.kind, err)
			}
		}
	}

	qc := []struct {
		kind  string
		names []string
	}{
		{kindUnused, rep.QC.Unused},
		{kindUnknown, rep.QC.Unknown},
	}
	for _, q := range qc {
		for _, name := range q.names {
			err = sqlitex.Execute(conn, "INSERT INTO run_qc (run_id, kind, name) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
				Args: []any{id, q.kind, name},
			})
			if err != nil {
				return "", fmt.Errorf("failed to insert %s type: %w", q.kind, err)
			}
		}
	}

	return id, nil
}

// List returns the runs newest first. Counts are not loaded.
func (s *ResultStore) List() ([]storage.RunMeta, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var runs []storage.RunMeta
	err = sqlitex.Execute(conn, "SELECT id, created_at, root, stats FROM runs ORDER BY created_at DESC, rowid DESC", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			meta, err := scanRun(stmt)
			if err != nil {
				return err
			}
			runs = append(runs, meta)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// Read returns the full report of run id.
func (s *ResultStore) Read(id string) (stat.Report, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return stat.Report{}, err
	}
	defer s.pool.Put(conn)

	var rep stat.Report
	found := false
	err = sqlitex.Execute(conn, "SELECT id, created_at, root, stats, tagset_size FROM runs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			meta, err := scanRun(stmt)
			if err != nil {
				return err
			}
			found = true
			rep.Root = meta.Root
			rep.Stats = meta.Stats
			rep.TagsetSize = stmt.ColumnInt(4)
			return nil
		},
	})
	if err != nil {
		return stat.Report{}, err
	}
	if !found {
		return stat.Report{}, fmt.Errorf("run not found: %s", id)
	}

	rep.Stats.LabelCounts = stat.Counts{}
	rep.Stats.TypeCounts = stat.Counts{}
	err = sqlitex.Execute(conn, "SELECT kind, key, count FROM run_counts WHERE run_id = ?", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			switch stmt.ColumnText(0) {
			case kindLabel:
				rep.Stats.LabelCounts[stmt.ColumnText(1)] = stmt.ColumnInt(2)
			case kindType:
				rep.Stats.TypeCounts[stmt.ColumnText(1)] = stmt.ColumnInt(2)
			}
			return nil
		},
	})
	if err != nil {
		return stat.Report{}, err
	}

	rep.QC = stat.QC{Unused: []string{}, Unknown: []string{}}
	err = sqlitex.Execute(conn, "SELECT kind, name FROM run_qc WHERE run_id = ? ORDER BY name", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			switch stmt.ColumnText(0) {
			case kindUnused:
				rep.QC.Unused = append(rep.QC.Unused, stmt.ColumnText(1))
			case kindUnknown:
				rep.QC.Unknown = append(rep.QC.Unknown, stmt.ColumnText(1))
			}
			return nil
		},
	})
	if err != nil {
		return stat.Report{}, err
	}

	return rep, nil
}

func scanRun(stmt *sqlite.Stmt) (storage.RunMeta, error) {
	meta := storage.RunMeta{
		Id:   stmt.ColumnText(0),
		Root: stmt.ColumnText(2),
	}

	created, err := time.Parse(time.RFC3339, stmt.ColumnText(1))
	if err != nil {
		return meta, fmt.Errorf("run %s: bad created_at: %w", meta.Id, err)
	}
	meta.CreatedAt = created

	if err := json.Unmarshal([]byte(stmt.ColumnText(3)), &meta.Stats); err != nil {
		return meta, fmt.Errorf("run %s: JSON decoding error: %w", meta.Id, err)
	}

	return meta, nil
}

// withoutCounts keeps the scalar fields; counts live in run_counts.
func withoutCounts(s stat.Stats) stat.Stats {
	s.LabelCounts = nil
	s.TypeCounts = nil
	return s
}
