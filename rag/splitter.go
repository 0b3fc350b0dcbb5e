package rag

import (
	"strings"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
)

type SentenceSplitter interface {
	Split(text string) []string
}

// ProseSentenceSplitter segments with prose's sentence model and falls back
// to punctuation rules when prose cannot parse the text.
type ProseSentenceSplitter struct {
	fallback RegexSentenceSplitter
	logger   *zap.Logger
}

func NewProseSentenceSplitter(logger *zap.Logger) ProseSentenceSplitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ProseSentenceSplitter{logger: logger}
}

func (p ProseSentenceSplitter) Split(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	doc, err := prose.NewDocument(trimmed,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithTokenization(false))
	if err != nil {
		p.logger.Debug("Sentence model failed, using punctuation splitter", zap.Error(err))
		return p.fallback.Split(trimmed)
	}

	var sentences []string
	for _, s := range doc.Sentences() {
		if t := strings.TrimSpace(s.Text); t != "" {
			sentences = append(sentences, t)
		}
	}
	if len(sentences) == 0 {
		return p.fallback.Split(trimmed)
	}
	return sentences
}

// RegexSentenceSplitter breaks on '.', '!' and '?' followed by whitespace.
// Runs of terminators ("?!", "...") stay with their sentence.
type RegexSentenceSplitter struct{}

func NewRegexSentenceSplitter() RegexSentenceSplitter {
	return RegexSentenceSplitter{}
}

func (RegexSentenceSplitter) Split(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	runes := []rune(trimmed)
	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range runes {
		current.WriteRune(r)
		if !isTerminator(r) {
			continue
		}
		next := i + 1
		if next < len(runes) && isTerminator(runes[next]) {
			continue
		}
		if next >= len(runes) || isSpace(runes[next]) {
			flush()
		}
	}
	flush()

	if len(sentences) == 0 {
		return []string{trimmed}
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}
