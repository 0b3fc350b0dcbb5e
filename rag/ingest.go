package rag

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"research-graph/identity"
	"research-graph/utils"

	"go.uber.org/zap"
)

const ingestBatchSize = 64

// IngestStats summarises one ingest run.
type IngestStats struct {
	Papers  int
	Chunks  int
	Skipped int
}

// Ingester loads papers from a CSV manifest into a Store.
//
// The manifest needs a header row with Title and Link columns and either a
// Text column holding the body or a Path column pointing at a .pdf or plain
// text file. Relative paths resolve against the manifest's directory.
type Ingester struct {
	store   Store
	chunker *Chunker
	logger  *zap.Logger
}

func NewIngester(store Store, chunker *Chunker, logger *zap.Logger) *Ingester {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingester{store: store, chunker: chunker, logger: logger}
}

// IngestCSV reads the manifest at path and replaces the stored chunks of
// every paper it lists.
func (in *Ingester) IngestCSV(ctx context.Context, path string) (IngestStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return IngestStats{}, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return in.Ingest(ctx, f, filepath.Dir(path))
}

// Ingest reads a manifest from r. baseDir resolves relative Path values.
func (in *Ingester) Ingest(ctx context.Context, r io.Reader, baseDir string) (IngestStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return IngestStats{}, fmt.Errorf("read manifest header: %w", err)
	}
	cols := indexColumns(header)
	if _, ok := cols["title"]; !ok {
		return IngestStats{}, errors.New("manifest is missing a Title column")
	}
	if _, ok := cols["link"]; !ok {
		return IngestStats{}, errors.New("manifest is missing a Link column")
	}
	_, hasText := cols["text"]
	_, hasPath := cols["path"]
	if !hasText && !hasPath {
		return IngestStats{}, errors.New("manifest needs a Text or Path column")
	}

	var stats IngestStats
	seen := make(map[string]struct{})
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return stats, fmt.Errorf("read manifest line %d: %w", line, err)
		}

		title := field(record, cols, "title")
		link := field(record, cols, "link")
		if link == "" {
			in.logger.Warn("Skipping row without link", zap.Int("line", line))
			stats.Skipped++
			continue
		}
		if _, dup := seen[link]; dup {
			in.logger.Warn("Skipping duplicate link", zap.Int("line", line), zap.String("link", link))
			stats.Skipped++
			continue
		}
		seen[link] = struct{}{}

		body, err := in.body(record, cols, baseDir)
		if err != nil {
			in.logger.Warn("Skipping unreadable paper",
				zap.Int("line", line),
				zap.String("link", link),
				zap.Error(err))
			stats.Skipped++
			continue
		}

		n, err := in.ingestPaper(ctx, title, link, body)
		if err != nil {
			return stats, fmt.Errorf("ingest %s: %w", link, err)
		}
		if n == 0 {
			stats.Skipped++
			continue
		}
		stats.Papers++
		stats.Chunks += n
	}

	in.logger.Info("Ingest finished",
		zap.Int("papers", stats.Papers),
		zap.Int("chunks", stats.Chunks),
		zap.Int("skipped", stats.Skipped))
	return stats, nil
}

func (in *Ingester) ingestPaper(ctx context.Context, title, link, body string) (int, error) {
	chunks := in.chunker.Chunk(body)
	if len(chunks) == 0 {
		in.logger.Warn("Paper has no text", zap.String("link", link))
		return 0, nil
	}

	if err := in.store.DeleteByLinks(ctx, []string{link}); err != nil {
		return 0, err
	}

	paperID := identity.PaperID(link)
	docs := make([]Document, 0, len(chunks))
	for i, chunk := range chunks {
		docs = append(docs, Document{
			ID:      fmt.Sprintf("%s-%04d", paperID, i),
			Content: chunk,
			Metadata: map[string]string{
				MetaTitle:      title,
				MetaLink:       link,
				MetaChunkIndex: strconv.Itoa(i),
			},
		})
	}

	for start := 0; start < len(docs); start += ingestBatchSize {
		end := min(start+ingestBatchSize, len(docs))
		if err := in.store.Add(ctx, docs[start:end]); err != nil {
			return 0, err
		}
	}

	in.logger.Debug("Ingested paper",
		zap.String("paper_id", paperID),
		zap.String("title", title),
		zap.Int("chunks", len(docs)))
	return len(docs), nil
}

func (in *Ingester) body(record []string, cols map[string]int, baseDir string) (string, error) {
	if text := field(record, cols, "text"); text != "" {
		return text, nil
	}
	p := field(record, cols, "path")
	if p == "" {
		return "", errors.New("row has neither text nor path")
	}
	p, err := utils.ResolveDocumentPath(baseDir, p)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(filepath.Ext(p), ".pdf") {
		return ExtractPDFText(p, in.logger)
	}
	raw, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
