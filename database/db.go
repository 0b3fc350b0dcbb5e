package database

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	apperrors "research-graph/errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// PostgresStore keeps paper chunks and their embeddings in a pgvector table.
type PostgresStore struct {
	DB         *sql.DB
	table      string
	dimensions int
	logger     *zap.Logger
}

func NewPostgresStore(ctx context.Context, connStr, table string, dimensions int, logger *zap.Logger) (*PostgresStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid pgvector table name %q", table)
	}
	if dimensions <= 0 {
		return nil, fmt.Errorf("embedding dimensions must be positive, got %d", dimensions)
	}

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, opError("failed to open database", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, opError("failed to ping database", err)
	}
	logger.Info("Successfully connected to the database", zap.String("table", table))
	return &PostgresStore{DB: db, table: table, dimensions: dimensions, logger: logger}, nil
}

func (s *PostgresStore) Close() error {
	return s.DB.Close()
}

// opError marks err as a database failure and prefixes msg.
func opError(msg string, err error) error {
	return apperrors.WrapError(fmt.Errorf("%w: %w", apperrors.ErrDatabaseOperation, err), msg)
}

// quotedTable is the table name safe for interpolation into SQL text.
func (s *PostgresStore) quotedTable() string {
	return pq.QuoteIdentifier(s.table)
}

// EnsureSchema creates the extension, the chunk table and its indexes if they do not already exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	table := s.quotedTable()
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            id TEXT PRIMARY KEY,
            link TEXT NOT NULL,
            content TEXT NOT NULL,
            metadata JSONB DEFAULT '{}'::jsonb,
            embedding vector(%d) NOT NULL,
            created_at TIMESTAMPTZ DEFAULT NOW()
        )`, table, s.dimensions),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s(link)`,
			pq.QuoteIdentifier("idx_"+s.table+"_link"), table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s USING GIN (metadata jsonb_path_ops)`,
			pq.QuoteIdentifier("idx_"+s.table+"_metadata"), table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s USING hnsw (embedding vector_cosine_ops)`,
			pq.QuoteIdentifier("idx_"+s.table+"_embedding"), table),
	}

	for _, stmt := range stmts {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return opError("failed to execute schema statement", err)
		}
	}
	return nil
}
