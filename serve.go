package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"research-graph/config"
	"research-graph/database"
	"research-graph/llmclient"
	"research-graph/mockdata"
	"research-graph/rag"
	"research-graph/registry"
	"research-graph/web"
	"research-graph/web/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Bool("mock", false, "serve deterministic mock data instead of the RAG pipeline")
	serveCmd.Flags().Int("port", 0, "listen port (overrides API_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if mock, _ := cmd.Flags().GetBool("mock"); mock {
		cfg.Mode = config.ModeMock
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.APIPort = port
	}

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var (
		service services.PaperService
		store   *registry.Store
	)
	switch cfg.Mode {
	case config.ModeMock:
		service = services.NewMockService(mockdata.New(), logger)
	case config.ModeRAG:
		var err error
		store, err = registry.New(cfg.RegistryCapacity, cfg.SessionCapacity, logger)
		if err != nil {
			return fmt.Errorf("create registry: %w", err)
		}

		llm := llmclient.New(cfg, logger)
		index, closeIndex, err := openIndex(ctx, llm)
		if err != nil {
			return err
		}
		defer closeIndex()

		searcher := rag.NewSearcher(index, cfg.SearchTimeout, cfg.FilterFallbackFactor, logger)
		service = services.NewRAGService(searcher, llm, store, services.Defaults{
			TopK:     cfg.TopK,
			PoolK:    cfg.PoolK,
			KRelated: cfg.KRelated,
			SeedK:    cfg.SeedK,
			KChunks:  cfg.KChunks,
		}, logger)
	default:
		return fmt.Errorf("unknown MODE %q (want %q or %q)", cfg.Mode, config.ModeRAG, config.ModeMock)
	}

	// Sessions only exist in RAG mode.
	if store != nil && cfg.CleanupEnabled {
		cleanupService := web.NewCleanupService(store, logger)
		go cleanupService.Run(ctx, cfg.CleanupInterval, cfg.SessionTTL)
	}

	server, err := web.NewServer(service, logger, cfg)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	return server.Start(ctx, cfg.Addr())
}

// openIndex returns the configured vector backend and a func releasing it.
func openIndex(ctx context.Context, llm *llmclient.Client) (rag.Store, func(), error) {
	embed := rag.NewEmbeddingFunc(llm)

	switch cfg.VectorBackend {
	case config.BackendChromem:
		index, err := rag.NewChromemIndex(cfg.ChromaDBPath, cfg.CollectionName, embed, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open chromem collection: %w", err)
		}
		return index, func() {}, nil
	case config.BackendPgvector:
		db, err := database.NewPostgresStore(ctx, cfg.DatabaseURL, cfg.PgvectorTable, cfg.EmbeddingDims, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ensure database schema: %w", err)
		}
		return rag.NewPgvectorIndex(db, embed), func() {
			if err := db.Close(); err != nil {
				logger.Warn("Failed to close database", zap.Error(err))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown VECTOR_BACKEND %q (want %q or %q)",
			cfg.VectorBackend, config.BackendChromem, config.BackendPgvector)
	}
}
