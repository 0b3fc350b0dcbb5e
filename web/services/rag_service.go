package services

import (
	"context"
	"fmt"
	"strings"

	"research-graph/config"
	apperrors "research-graph/errors"
	"research-graph/identity"
	"research-graph/prompts"
	"research-graph/rag"
	"research-graph/registry"
	"research-graph/web/types"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Retriever runs similarity queries. *rag.Searcher implements it.
type Retriever interface {
	Search(ctx context.Context, text string, k int, filter map[string]string) ([]rag.Hit, error)
}

// Completer runs one text generation. *llmclient.Client implements it.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// RAGService grounds every answer in chunks retrieved from the vector index.
type RAGService struct {
	retriever Retriever
	llm       Completer
	store     *registry.Store
	defaults  Defaults
	logger    *zap.Logger
}

func NewRAGService(retriever Retriever, llm Completer, store *registry.Store, defaults Defaults, logger *zap.Logger) *RAGService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RAGService{
		retriever: retriever,
		llm:       llm,
		store:     store,
		defaults:  defaults,
		logger:    logger,
	}
}

func (s *RAGService) Mode() string { return config.ModeRAG }

// Search summarises the best matching chunks, opens a session for the query
// and registers the top distinct papers under it.
func (s *RAGService) Search(ctx context.Context, in SearchInput) ([]types.PaperResult, error) {
	query, err := validateQuery(in.Query)
	if err != nil {
		return nil, err
	}
	kTop := orDefault(in.KTop, s.defaults.TopK)
	poolK := orDefault(in.PoolK, s.defaults.PoolK)

	var pool, raw []rag.Hit
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pool, err = s.retriever.Search(gctx, query, poolK, nil)
		return err
	})
	g.Go(func() error {
		var err error
		raw, err = s.retriever.Search(gctx, query, max(3*kTop, kTop), nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	poolDocs := rag.DistinctByLink(pool, 0)
	s.logger.Debug("Retrieved summary pool",
		zap.String("query", query),
		zap.Int("pool_k", poolK),
		zap.Int("distinct", len(poolDocs)))

	output, err := s.llm.Complete(ctx, prompts.Summary(query, rag.FormatSnippets(poolDocs, summarySnippetChars)))
	if err != nil {
		return nil, fmt.Errorf("%w: summary: %w", apperrors.ErrLLMCommunication, err)
	}
	summary := prompts.ExtractSummary(output)

	top := rag.DistinctByLink(raw, kTop)
	topResults := make([]registry.TopResult, 0, len(top))
	for _, h := range top {
		topResults = append(topResults, registry.TopResult{Title: titleOrUntitled(h), Link: h.Link(), Distance: h.Distance})
	}
	sess := s.store.CreateSession(query, summary, topResults)

	papers := make([]types.PaperResult, 0, len(topResults))
	for _, tr := range topResults {
		id := identity.PaperID(tr.Link)
		s.store.RegisterPaper(id, registry.PaperRecord{
			SessionID: sess.ID,
			Link:      tr.Link,
			Title:     tr.Title,
			Query:     query,
			Summary:   summary,
		})
		papers = append(papers, types.PaperResult{
			PaperID: id,
			Metadata: types.PaperMetadata{
				Title:   tr.Title,
				Summary: rag.Truncate(summary, summaryResponseChars),
			},
			Similarity: rag.Round2(rag.Similarity(tr.Distance)),
		})
	}

	s.logger.Info("Search completed",
		zap.String("session_id", sess.ID),
		zap.Int("papers", len(papers)))
	return papers, nil
}

// SearchPaper finds papers near a registered one, seeding the query with
// the paper's own chunks.
func (s *RAGService) SearchPaper(ctx context.Context, in SearchPaperInput) ([]types.PaperResult, error) {
	id, err := validatePaperID(in.PaperID)
	if err != nil {
		return nil, err
	}
	source, ok := s.store.Paper(id)
	if !ok {
		return nil, paperNotFound(id)
	}
	kRelated := orDefault(in.KRelated, s.defaults.KRelated)
	seedK := orDefault(in.SeedK, s.defaults.SeedK)

	base, err := s.retriever.Search(ctx, source.Title, seedK, map[string]string{rag.MetaLink: source.Link})
	if err != nil {
		return nil, err
	}
	seed := seedText(base, source.Title)

	neighbours, err := s.retriever.Search(ctx, seed, kRelated+relatedSlack, nil)
	if err != nil {
		return nil, err
	}
	related := rag.DistinctByLinkExcluding(neighbours, kRelated, source.Link)

	papers := make([]types.PaperResult, 0, len(related))
	for _, h := range related {
		title := titleOrUntitled(h)
		relID := identity.PaperID(h.Link())
		rec, added := s.store.RegisterPaperIfAbsent(relID, registry.PaperRecord{
			SessionID: source.SessionID,
			Link:      h.Link(),
			Title:     title,
			Query:     source.Query,
			Summary:   title,
		})
		if added {
			s.logger.Debug("Registered related paper", zap.String("paper_id", relID), zap.String("link", h.Link()))
		}
		papers = append(papers, types.PaperResult{
			PaperID: relID,
			Metadata: types.PaperMetadata{
				Title:   title,
				Summary: rag.Truncate(rec.Summary, summaryResponseChars),
			},
			Similarity: rag.Round2(rag.Similarity(h.Distance)),
		})
	}

	s.logger.Info("Related search completed",
		zap.String("paper_id", id),
		zap.Int("seed_chunks", len(base)),
		zap.Int("papers", len(papers)))
	return papers, nil
}

// Chat answers a message using only chunks of the selected paper and
// records the turn in the paper's session.
func (s *RAGService) Chat(ctx context.Context, in ChatInput) (*types.ChatResponse, error) {
	id, message, err := validateChat(in.PaperID, in.Message)
	if err != nil {
		return nil, err
	}
	paper, ok := s.store.Paper(id)
	if !ok {
		return nil, paperNotFound(id)
	}
	kChunks := orDefault(in.KChunks, s.defaults.KChunks)

	sess, release := s.store.BeginTurn(paper.SessionID, func() *registry.Session {
		s.logger.Warn("Session not found, recreating from paper record",
			zap.String("session_id", paper.SessionID),
			zap.String("paper_id", id))
		return registry.NewSession(paper.SessionID, paper.Query, paper.Summary,
			[]registry.TopResult{{Title: paper.Title, Link: paper.Link}})
	})
	defer release()

	chunks, err := s.retriever.Search(ctx, message, kChunks, map[string]string{rag.MetaLink: paper.Link})
	if err != nil {
		return nil, err
	}

	output, err := s.llm.Complete(ctx, prompts.PaperChat(prompts.PaperChatInput{
		OrigQuery:     sess.OrigQuery,
		SystemSummary: sess.Summary,
		PaperTitle:    paper.Title,
		PaperLink:     paper.Link,
		Snippets:      rag.FormatChunks(chunks, chatSnippetChars),
		Message:       message,
	}))
	if err != nil {
		return nil, fmt.Errorf("%w: chat: %w", apperrors.ErrLLMCommunication, err)
	}
	answer := prompts.ExtractAnswer(output)

	sess.Append(
		registry.Message{Role: "user", Content: message},
		registry.Message{Role: "assistant", Content: answer},
	)

	s.logger.Info("Chat answered",
		zap.String("paper_id", id),
		zap.String("session_id", sess.ID),
		zap.Int("chunks", len(chunks)),
		zap.Int("client_history", len(in.History)))

	return &types.ChatResponse{
		Response: answer,
		PaperContext: &types.PaperContext{
			Title:            paper.Title,
			RelevantSections: relevantSections(chunks),
		},
	}, nil
}

func seedText(chunks []rag.Hit, fallback string) string {
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, rag.Truncate(c.Content, seedChunkChars))
	}
	seed := strings.Join(parts, " ")
	if strings.TrimSpace(seed) == "" {
		return fallback
	}
	return seed
}

// relevantSections lists up to three distinct chunk titles in retrieval order.
func relevantSections(chunks []rag.Hit) []string {
	sections := []string{}
	seen := make(map[string]struct{})
	for _, c := range chunks {
		title := titleOrUntitled(c)
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		sections = append(sections, title)
		if len(sections) == maxRelevantSections {
			break
		}
	}
	return sections
}

func titleOrUntitled(h rag.Hit) string {
	if t := h.Title(); t != "" {
		return t
	}
	return "Untitled"
}
