package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Chunk is one stored piece of a paper.
type Chunk struct {
	ID        string
	Link      string
	Content   string
	Metadata  map[string]string
	Embedding []float32
}

// ScoredChunk is a Chunk with its cosine distance to a query vector.
type ScoredChunk struct {
	Chunk
	Distance float64
}

// UpsertChunks writes chunks in a single transaction, replacing rows with the same id.
func (s *PostgresStore) UpsertChunks(ctx context.Context, chunks []Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
        INSERT INTO %s (id, link, content, metadata, embedding, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        ON CONFLICT (id)
        DO UPDATE SET link = EXCLUDED.link, content = EXCLUDED.content, metadata = EXCLUDED.metadata, embedding = EXCLUDED.embedding, created_at = NOW()
    `, s.quotedTable())

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return opError("failed to begin chunk upsert", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return opError("failed to prepare chunk upsert", err)
	}
	defer stmt.Close()

	for _, c := range chunks {
		if len(c.Embedding) != s.dimensions {
			return fmt.Errorf("chunk %s has %d dimensions, table expects %d", c.ID, len(c.Embedding), s.dimensions)
		}
		metaJSON, err := json.Marshal(c.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata for chunk %s: %w", c.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.Link, c.Content, string(metaJSON), pgvector.NewVector(c.Embedding)); err != nil {
			return opError("failed to upsert chunk "+c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return opError("failed to commit chunk upsert", err)
	}
	return nil
}

// SearchChunks returns the k chunks closest to embedding by cosine distance.
// A non-empty filter keeps only rows whose metadata contains every pair.
func (s *PostgresStore) SearchChunks(ctx context.Context, embedding []float32, k int, filter map[string]string) ([]ScoredChunk, error) {
	if k <= 0 {
		return nil, nil
	}

	filterJSON := []byte("{}")
	if len(filter) > 0 {
		var err error
		filterJSON, err = json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal filter: %w", err)
		}
	}

	query := fmt.Sprintf(`
        SELECT id, link, content, metadata, embedding <=> $1 AS distance
        FROM %s
        WHERE metadata @> $2::jsonb
        ORDER BY distance ASC
        LIMIT $3
    `, s.quotedTable())

	rows, err := s.DB.QueryContext(ctx, query, pgvector.NewVector(embedding), string(filterJSON), k)
	if err != nil {
		return nil, opError("failed to search chunks", err)
	}
	defer rows.Close()

	var out []ScoredChunk
	for rows.Next() {
		var sc ScoredChunk
		var metaJSON []byte
		if err := rows.Scan(&sc.ID, &sc.Link, &sc.Content, &metaJSON, &sc.Distance); err != nil {
			return nil, opError("failed to scan chunk row", err)
		}
		if len(metaJSON) > 0 {
			if err := json.Unmarshal(metaJSON, &sc.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode metadata for chunk %s: %w", sc.ID, err)
			}
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, opError("failed to read chunk rows", err)
	}
	return out, nil
}

// DeleteChunksByLinks removes every chunk of the given papers.
func (s *PostgresStore) DeleteChunksByLinks(ctx context.Context, links []string) (int64, error) {
	if len(links) == 0 {
		return 0, nil
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE link = ANY($1)`, s.quotedTable())

	result, err := s.DB.ExecContext(ctx, query, pq.Array(links))
	if err != nil {
		return 0, opError("failed to delete chunks", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, opError("failed to determine rows deleted", err)
	}
	return rowsAffected, nil
}

// CountChunks returns the number of stored chunks.
func (s *PostgresStore) CountChunks(ctx context.Context) (int, error) {
	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, s.quotedTable())
	if err := s.DB.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, opError("failed to count chunks", err)
	}
	return n, nil
}
