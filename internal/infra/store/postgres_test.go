//go:build unit

package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"dropengine/internal/infra"
	"dropengine/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDB struct {
	mock.Mock
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	called := m.Called(ctx, sql, args)
	return pgconn.NewCommandTag("INSERT 0 1"), called.Error(0)
}

func (m *MockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgx.Row)
}

type fakeRow struct {
	data []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.data
	return nil
}

func newTestPostgresStore(db DBTX) *PostgresStore {
	return NewPostgresStore(db, "test", slog.New(slog.DiscardHandler))
}

func TestPostgresStore_Load(t *testing.T) {
	ctx := context.Background()
	valid, err := encodeSnapshot(builder.NewSnapshotBuilder().WithStock("bit_frame", 4).Build())
	require.NoError(t, err)

	tests := []struct {
		name      string
		row       fakeRow
		wantKind  infra.RepositoryErrorKind
		wantStock int
	}{
		{name: "success", row: fakeRow{data: valid}, wantStock: 4},
		{name: "no row", row: fakeRow{err: pgx.ErrNoRows}, wantKind: infra.KindNotFound},
		{name: "query failure", row: fakeRow{err: errors.New("connection reset")}, wantKind: infra.KindDBFailure},
		{name: "corrupt document", row: fakeRow{data: []byte(`{"prizes": []}`)}, wantKind: infra.KindCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDB)
			db.On("QueryRow", ctx, selectSnapshot, []any{"test"}).Return(tt.row)

			snap, err := newTestPostgresStore(db).Load(ctx)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				assert.Nil(t, snap)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStock, snap.Stock["bit_frame"])
			}
			db.AssertExpectations(t)
		})
	}
}

func TestPostgresStore_Save(t *testing.T) {
	ctx := context.Background()
	snap := builder.NewSnapshotBuilder().WithStock("bit_frame", 1).Build()

	t.Run("upserts the encoded document under the key", func(t *testing.T) {
		db := new(MockDB)
		db.On("Exec", ctx, upsertSnapshot, mock.MatchedBy(func(args []any) bool {
			if len(args) != 2 || args[0] != "test" {
				return false
			}
			var doc document
			return json.Unmarshal(args[1].([]byte), &doc) == nil && doc.Prizes["bit_frame"].Remaining == 1
		})).Return(nil)

		require.NoError(t, newTestPostgresStore(db).Save(ctx, snap))
		db.AssertExpectations(t)
	})

	t.Run("exec failure", func(t *testing.T) {
		db := new(MockDB)
		db.On("Exec", ctx, upsertSnapshot, mock.Anything).Return(errors.New("disk full"))

		err := newTestPostgresStore(db).Save(ctx, snap)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})
}

func TestPostgresStore_EnsureSchema(t *testing.T) {
	ctx := context.Background()
	db := new(MockDB)
	db.On("Exec", ctx, createSnapshotTable, []any(nil)).Return(nil)

	require.NoError(t, newTestPostgresStore(db).EnsureSchema(ctx))
	db.AssertExpectations(t)
}
