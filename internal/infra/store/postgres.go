package store

import (
	"context"
	"errors"
	"log/slog"

	"dropengine/internal/infra"
	"dropengine/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const createSnapshotTable = `
CREATE TABLE IF NOT EXISTS drop_engine_snapshot (
    key        text PRIMARY KEY,
    document   jsonb NOT NULL,
    updated_at timestamptz NOT NULL DEFAULT now()
)`

const selectSnapshot = `SELECT document FROM drop_engine_snapshot WHERE key = $1`

const upsertSnapshot = `
INSERT INTO drop_engine_snapshot (key, document, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`

// DBTX is the subset of pgxpool.Pool the store uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps each snapshot as one jsonb row keyed by name. Every
// save rewrites the whole document in a single statement.
type PostgresStore struct {
	db     DBTX
	key    string
	logger *slog.Logger
}

var _ usecase.SnapshotStore = (*PostgresStore)(nil)

func NewPostgresStore(db DBTX, key string, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{db: db, key: key, logger: logger}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createSnapshotTable); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to create snapshot table", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*usecase.Snapshot, error) {
	var data []byte
	err := s.db.QueryRow(ctx, selectSnapshot, s.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "snapshot row not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load snapshot", err)
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to decode snapshot document", err)
	}
	return snap, nil
}

func (s *PostgresStore) Save(ctx context.Context, snap *usecase.Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to encode snapshot", err)
	}
	if _, err := s.db.Exec(ctx, upsertSnapshot, s.key, data); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to save snapshot", err)
	}
	return nil
}
