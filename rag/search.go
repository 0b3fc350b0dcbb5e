package rag

import (
	"context"
	"fmt"
	"time"

	apperrors "research-graph/errors"

	"go.uber.org/zap"
)

const DefaultFilterFallbackFactor = 3

// Index answers nearest-neighbour queries over paper chunks. Results are
// ordered by ascending distance. A non-nil filter restricts hits to
// chunks whose metadata equals every pair.
type Index interface {
	Query(ctx context.Context, text string, k int, filter map[string]string) ([]Hit, error)
}

// Document is a chunk ready to be written to a Store.
type Document struct {
	ID        string
	Content   string
	Metadata  map[string]string
	Embedding []float32
}

// Store is an Index that can also be written to by the ingest pipeline.
type Store interface {
	Index
	Add(ctx context.Context, docs []Document) error
	DeleteByLinks(ctx context.Context, links []string) error
	Count(ctx context.Context) (int, error)
}

// Searcher wraps an Index with the query timeout and the client-side
// filter fallback. It never writes to the index.
type Searcher struct {
	index          Index
	timeout        time.Duration
	fallbackFactor int
	logger         *zap.Logger
}

func NewSearcher(index Index, timeout time.Duration, fallbackFactor int, logger *zap.Logger) *Searcher {
	if fallbackFactor < 1 {
		fallbackFactor = DefaultFilterFallbackFactor
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Searcher{
		index:          index,
		timeout:        timeout,
		fallbackFactor: fallbackFactor,
		logger:         logger,
	}
}

// Search returns up to k hits for text. When the index rejects filter, an
// unfiltered pool of k*fallbackFactor hits is filtered locally instead.
func (s *Searcher) Search(ctx context.Context, text string, k int, filter map[string]string) ([]Hit, error) {
	if k <= 0 {
		return nil, nil
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if len(filter) == 0 {
		hits, err := s.index.Query(ctx, text, k, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrVectorSearch, err)
		}
		return limit(hits, k), nil
	}

	hits, err := s.index.Query(ctx, text, k, filter)
	if err == nil {
		return limit(hits, k), nil
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrVectorSearch, ctx.Err())
	}

	s.logger.Debug("Filtered query rejected, filtering locally",
		zap.Any("filter", filter),
		zap.Error(err))

	pool, err := s.index.Query(ctx, text, k*s.fallbackFactor, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: fallback query: %w", apperrors.ErrVectorSearch, err)
	}
	kept := make([]Hit, 0, k)
	for _, h := range pool {
		if matchesFilter(h.Metadata, filter) {
			kept = append(kept, h)
			if len(kept) == k {
				break
			}
		}
	}
	return kept, nil
}

func limit(hits []Hit, k int) []Hit {
	if len(hits) > k {
		return hits[:k]
	}
	return hits
}
