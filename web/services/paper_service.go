package services

import (
	"context"
	"strings"

	apperrors "research-graph/errors"
	"research-graph/identity"
	"research-graph/web/types"
)

const (
	summaryResponseChars = 2000
	summarySnippetChars  = 400
	chatSnippetChars     = 450
	seedChunkChars       = 400
	relatedSlack         = 10
	maxRelevantSections  = 3
)

// PaperService answers the three paper endpoints. RAGService and
// MockService are the two implementations.
type PaperService interface {
	Search(ctx context.Context, in SearchInput) ([]types.PaperResult, error)
	SearchPaper(ctx context.Context, in SearchPaperInput) ([]types.PaperResult, error)
	Chat(ctx context.Context, in ChatInput) (*types.ChatResponse, error)
	Mode() string
}

// SearchInput carries a search request. Zero counts take the service defaults.
type SearchInput struct {
	Query string
	KTop  int
	PoolK int
}

type SearchPaperInput struct {
	PaperID      string
	Conversation string
	KRelated     int
	SeedK        int
}

type ChatInput struct {
	PaperID string
	Message string
	History []types.ChatMessage
	KChunks int
}

// Defaults are the retrieval sizes used when a request leaves them unset.
type Defaults struct {
	TopK     int
	PoolK    int
	KRelated int
	SeedK    int
	KChunks  int
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func validateQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", apperrors.InvalidInputf("Query parameter is required and must be a non-empty string")
	}
	return q, nil
}

func validatePaperID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", apperrors.InvalidInputf("paper_id is required and must be a valid UUID")
	}
	if !identity.Valid(id) {
		return "", apperrors.InvalidInputf("paper_id must be a valid UUID")
	}
	return strings.ToLower(id), nil
}

func validateMessage(msg string) (string, error) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return "", apperrors.InvalidInputf("message is required")
	}
	return msg, nil
}

// validateChat checks a chat request in a fixed order: paper_id present,
// message present, then paper_id format.
func validateChat(id, msg string) (string, string, error) {
	if strings.TrimSpace(id) == "" {
		return "", "", apperrors.InvalidInputf("paper_id is required")
	}
	message, err := validateMessage(msg)
	if err != nil {
		return "", "", err
	}
	id, err = validatePaperID(id)
	if err != nil {
		return "", "", err
	}
	return id, message, nil
}

func paperNotFound(id string) error {
	return apperrors.WrapErrorf(apperrors.ErrNotFound, "paper %s", id)
}
