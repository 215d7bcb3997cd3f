package repositories

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory SQLite database with the full schema
// applied from the migration scripts
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	scripts, err := filepath.Glob(filepath.Join("..", "..", "migrations", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, scripts)
	sort.Strings(scripts)

	for _, script := range scripts {
		content, err := os.ReadFile(script)
		require.NoError(t, err)
		_, err = db.Exec(string(content))
		require.NoError(t, err, "failed to apply %s", script)
	}

	return db
}
