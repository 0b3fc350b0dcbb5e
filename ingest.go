package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"research-graph/llmclient"
	"research-graph/rag"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Chunk, embed and index the papers listed in a CSV file",
	Long: `ingest reads a CSV with Title and Link columns plus either a Text column
holding the paper body or a Path column pointing at a .pdf or text file.
Re-ingesting a link replaces its previous chunks.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().String("csv", "", "CSV file to ingest (overrides DATA_CSV)")
}

func runIngest(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("csv")
	if path == "" {
		path = cfg.DataCSV
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	llm := llmclient.New(cfg, logger)
	index, closeIndex, err := openIndex(ctx, llm)
	if err != nil {
		return err
	}
	defer closeIndex()

	chunker := rag.NewChunker(cfg.TextChunkSize, cfg.TextChunkOverlap, rag.NewProseSentenceSplitter(logger))
	stats, err := rag.NewIngester(index, chunker, logger).IngestCSV(ctx, path)
	if err != nil {
		return fmt.Errorf("ingest %s: %w", path, err)
	}

	total, err := index.Count(ctx)
	if err != nil {
		logger.Warn("Could not count indexed chunks", zap.Error(err))
	}
	logger.Info("Ingestion complete",
		zap.String("csv", path),
		zap.Int("papers", stats.Papers),
		zap.Int("chunks", stats.Chunks),
		zap.Int("skipped", stats.Skipped),
		zap.Int("indexed_total", total))
	return nil
}
