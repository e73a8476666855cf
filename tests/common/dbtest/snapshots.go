//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"dropengine/internal/infra/store"

	"github.com/stretchr/testify/require"
)

// ResetSnapshots empties the snapshot table if it exists.
func ResetSnapshots(t *testing.T, db store.DBTX) {
	t.Helper()
	_, err := db.Exec(context.Background(), `
DO $$
BEGIN
    IF to_regclass('drop_engine_snapshot') IS NOT NULL THEN
        TRUNCATE drop_engine_snapshot;
    END IF;
END $$`)
	require.NoError(t, err)
}

// SnapshotDocument reads the raw stored document for key.
func SnapshotDocument(t *testing.T, db store.DBTX, key string) []byte {
	t.Helper()
	var doc []byte
	err := db.QueryRow(context.Background(), "SELECT document FROM drop_engine_snapshot WHERE key = $1", key).Scan(&doc)
	require.NoError(t, err)
	return doc
}

func PutSnapshotDocument(t *testing.T, db store.DBTX, key string, doc []byte) {
	t.Helper()
	_, err := db.Exec(context.Background(), `
INSERT INTO drop_engine_snapshot (key, document) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET document = EXCLUDED.document`, key, doc)
	require.NoError(t, err)
}
