package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool creates a SQLite connection pool for the run history database
// with foreign keys enforced on every connection.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	initString := fmt.Sprintf("file:%s", dbPath)

	// default flags: sqlite.OpenReadWrite | sqlite.OpenCreate | sqlite.OpenWAL | sqlite.OpenURI
	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
		PrepareConn: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteTransient(conn, "PRAGMA foreign_keys = ON;", nil)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create zombiezen pool at %s: %w", dbPath, err)
	}
	return pool, nil
}

// Open creates the pool and the run history tables.
func Open(dbPath string) (*sqlitex.Pool, error) {
	pool, err := NewPool(dbPath)
	if err != nil {
		return nil, err
	}

	if err := CreateSchemas(pool, ResultsSchema); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
