package rag

import (
	"context"
	"strings"

	"github.com/philippgille/chromem-go"
)

// Embedder produces a vector for a piece of text.
type Embedder interface {
	Embed(ctx context.Context, doc string) ([]float32, error)
}

// maxEmbeddingChars keeps inputs inside a 512 token embedding window
// at roughly four characters per token.
const maxEmbeddingChars = 2000

// NewEmbeddingFunc adapts an Embedder to the function type both index
// backends consume. Inputs are trimmed and cut to maxEmbeddingChars.
func NewEmbeddingFunc(e Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, doc string) ([]float32, error) {
		return e.Embed(ctx, truncateRunes(strings.TrimSpace(doc), maxEmbeddingChars))
	}
}
