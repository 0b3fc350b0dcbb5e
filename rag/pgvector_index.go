package rag

import (
	"context"
	"fmt"

	"research-graph/database"

	"github.com/philippgille/chromem-go"
)

// PgvectorIndex is a Store backed by a Postgres table with a pgvector column.
type PgvectorIndex struct {
	store *database.PostgresStore
	embed chromem.EmbeddingFunc
}

func NewPgvectorIndex(store *database.PostgresStore, embed chromem.EmbeddingFunc) *PgvectorIndex {
	return &PgvectorIndex{store: store, embed: embed}
}

func (pi *PgvectorIndex) Query(ctx context.Context, text string, k int, filter map[string]string) ([]Hit, error) {
	if k <= 0 {
		return nil, nil
	}
	vec, err := pi.embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	rows, err := pi.store.SearchChunks(ctx, vec, k, filter)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(rows))
	for _, r := range rows {
		hits = append(hits, Hit{
			ID:       r.ID,
			Content:  r.Content,
			Metadata: r.Metadata,
			Distance: r.Distance,
		})
	}
	return hits, nil
}

// Add embeds documents that arrive without a vector and upserts them.
func (pi *PgvectorIndex) Add(ctx context.Context, docs []Document) error {
	chunks := make([]database.Chunk, 0, len(docs))
	for _, d := range docs {
		vec := d.Embedding
		if len(vec) == 0 {
			var err error
			vec, err = pi.embed(ctx, d.Content)
			if err != nil {
				return fmt.Errorf("embed chunk %s: %w", d.ID, err)
			}
		}
		chunks = append(chunks, database.Chunk{
			ID:        d.ID,
			Link:      metaValue(d.Metadata, MetaLink),
			Content:   d.Content,
			Metadata:  d.Metadata,
			Embedding: vec,
		})
	}
	return pi.store.UpsertChunks(ctx, chunks)
}

func (pi *PgvectorIndex) DeleteByLinks(ctx context.Context, links []string) error {
	_, err := pi.store.DeleteChunksByLinks(ctx, links)
	return err
}

func (pi *PgvectorIndex) Count(ctx context.Context) (int, error) {
	return pi.store.CountChunks(ctx)
}
