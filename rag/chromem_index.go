package rag

import (
	"context"
	"fmt"
	"runtime"

	"github.com/philippgille/chromem-go"
	"go.uber.org/zap"
)

// ChromemIndex is a Store backed by a persistent chromem-go collection.
type ChromemIndex struct {
	db         *chromem.DB
	collection *chromem.Collection
	logger     *zap.Logger
}

// NewChromemIndex opens (or creates) the collection name under path. An
// empty path keeps the collection in memory only.
func NewChromemIndex(path, name string, embed chromem.EmbeddingFunc, logger *zap.Logger) (*ChromemIndex, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var db *chromem.DB
	if path == "" {
		db = chromem.NewDB()
	} else {
		var err error
		db, err = chromem.NewPersistentDB(path, false)
		if err != nil {
			return nil, fmt.Errorf("open chromem db at %s: %w", path, err)
		}
	}

	collection, err := db.GetOrCreateCollection(name, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("get or create collection %s: %w", name, err)
	}

	logger.Info("Vector collection ready",
		zap.String("path", path),
		zap.String("collection", name),
		zap.Int("documents", collection.Count()))

	return &ChromemIndex{db: db, collection: collection, logger: logger}, nil
}

func (ci *ChromemIndex) Query(ctx context.Context, text string, k int, filter map[string]string) ([]Hit, error) {
	total := ci.collection.Count()
	if total == 0 || k <= 0 {
		return nil, nil
	}
	if k > total {
		k = total
	}

	results, err := ci.collection.Query(ctx, text, k, filter, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection: %w", err)
	}

	hits := make([]Hit, 0, len(results))
	for _, res := range results {
		hits = append(hits, Hit{
			ID:       res.ID,
			Content:  res.Content,
			Metadata: res.Metadata,
			Distance: 1 - float64(res.Similarity),
		})
	}
	return hits, nil
}

func (ci *ChromemIndex) Add(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}
	chromemDocs := make([]chromem.Document, 0, len(docs))
	for _, d := range docs {
		chromemDocs = append(chromemDocs, chromem.Document{
			ID:        d.ID,
			Content:   d.Content,
			Metadata:  d.Metadata,
			Embedding: d.Embedding,
		})
	}
	if err := ci.collection.AddDocuments(ctx, chromemDocs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return nil
}

func (ci *ChromemIndex) DeleteByLinks(ctx context.Context, links []string) error {
	for _, link := range links {
		if link == "" {
			continue
		}
		if err := ci.collection.Delete(ctx, map[string]string{MetaLink: link}, nil); err != nil {
			return fmt.Errorf("delete chunks for %s: %w", link, err)
		}
	}
	return nil
}

func (ci *ChromemIndex) Count(context.Context) (int, error) {
	return ci.collection.Count(), nil
}
