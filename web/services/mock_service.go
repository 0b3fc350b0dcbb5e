package services

import (
	"context"

	"research-graph/config"
	"research-graph/mockdata"
	"research-graph/web/types"

	"go.uber.org/zap"
)

// MockService serves fixture papers with the same request contract as
// RAGService. Nothing is retrieved or generated.
type MockService struct {
	gen          *mockdata.Generator
	searchCount  int
	relatedCount int
	logger       *zap.Logger
}

func NewMockService(gen *mockdata.Generator, logger *zap.Logger) *MockService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MockService{
		gen:          gen,
		searchCount:  mockdata.DefaultSearchCount,
		relatedCount: mockdata.DefaultRelatedCount,
		logger:       logger,
	}
}

func (s *MockService) Mode() string { return config.ModeMock }

func (s *MockService) Search(ctx context.Context, in SearchInput) ([]types.PaperResult, error) {
	query, err := validateQuery(in.Query)
	if err != nil {
		return nil, err
	}
	results := s.gen.Search(query, s.searchCount)
	s.logger.Debug("Mock search", zap.String("query", query), zap.Int("papers", len(results)))
	return toPaperResults(results), nil
}

func (s *MockService) SearchPaper(ctx context.Context, in SearchPaperInput) ([]types.PaperResult, error) {
	id, err := validatePaperID(in.PaperID)
	if err != nil {
		return nil, err
	}
	if _, ok := s.gen.Paper(id); !ok {
		return nil, paperNotFound(id)
	}
	results := s.gen.Related(id, in.Conversation, s.relatedCount)
	s.logger.Debug("Mock related search", zap.String("paper_id", id), zap.Int("papers", len(results)))
	return toPaperResults(results), nil
}

func (s *MockService) Chat(ctx context.Context, in ChatInput) (*types.ChatResponse, error) {
	id, message, err := validateChat(in.PaperID, in.Message)
	if err != nil {
		return nil, err
	}
	reply, ok := s.gen.Chat(id, message)
	if !ok {
		return nil, paperNotFound(id)
	}
	s.logger.Debug("Mock chat",
		zap.String("paper_id", id),
		zap.Int("client_history", len(in.History)))
	return &types.ChatResponse{
		Response: reply.Response,
		PaperContext: &types.PaperContext{
			Title:            reply.Title,
			RelevantSections: reply.RelevantSections,
		},
	}, nil
}

func toPaperResults(results []mockdata.Result) []types.PaperResult {
	out := make([]types.PaperResult, 0, len(results))
	for _, r := range results {
		out = append(out, types.PaperResult{
			PaperID: r.Paper.ID,
			Metadata: types.PaperMetadata{
				Title:   r.Paper.Title,
				Summary: r.Paper.Summary,
			},
			Similarity: r.Similarity,
		})
	}
	return out
}
