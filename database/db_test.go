package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	apperrors "research-graph/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Port 1 on loopback refuses connections, so every statement fails fast.
const unreachableDSN = "postgres://postgres:x@127.0.0.1:1/none?sslmode=disable&connect_timeout=2"

func TestNewPostgresStoreRejectsBadTableNames(t *testing.T) {
	for _, name := range []string{"", "1chunks", "chunks; DROP TABLE x", "a-b", "schema.table"} {
		_, err := NewPostgresStore(context.Background(), "postgres://unused", name, 384, nil)
		assert.Error(t, err, name)
	}
}

func TestNewPostgresStoreRejectsBadDimensions(t *testing.T) {
	_, err := NewPostgresStore(context.Background(), "postgres://unused", "paper_chunks", 0, nil)
	assert.Error(t, err)
}

func TestTableNamePattern(t *testing.T) {
	assert.True(t, tableNamePattern.MatchString("paper_chunks"))
	assert.True(t, tableNamePattern.MatchString("_chunks2"))
	assert.False(t, tableNamePattern.MatchString("Paper Chunks"))
}

func TestNewPostgresStoreUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := NewPostgresStore(ctx, unreachableDSN, "paper_chunks", 3, nil)
	assert.ErrorIs(t, err, apperrors.ErrDatabaseOperation)
}

func TestChunkOperationsReportDatabaseFailures(t *testing.T) {
	db, err := sql.Open("pgx", unreachableDSN)
	require.NoError(t, err)
	defer db.Close()
	s := &PostgresStore{DB: db, table: "paper_chunks", dimensions: 3, logger: zap.NewNop()}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = s.CountChunks(ctx)
	assert.ErrorIs(t, err, apperrors.ErrDatabaseOperation)

	_, err = s.SearchChunks(ctx, []float32{1, 0, 0}, 3, nil)
	assert.ErrorIs(t, err, apperrors.ErrDatabaseOperation)

	_, err = s.DeleteChunksByLinks(ctx, []string{"https://a"})
	assert.ErrorIs(t, err, apperrors.ErrDatabaseOperation)

	err = s.UpsertChunks(ctx, []Chunk{{ID: "c", Link: "https://a", Embedding: []float32{1, 0, 0}}})
	assert.ErrorIs(t, err, apperrors.ErrDatabaseOperation)

	assert.ErrorIs(t, s.EnsureSchema(ctx), apperrors.ErrDatabaseOperation)
}
