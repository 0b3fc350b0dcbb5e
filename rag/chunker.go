package rag

import (
	"strings"
)

const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
)

// Chunker packs sentences into chunks of at most Size runes, prefixing each
// chunk after the first with up to Overlap runes from the end of the
// previous one.
type Chunker struct {
	Size     int
	Overlap  int
	Splitter SentenceSplitter
}

func NewChunker(size, overlap int, splitter SentenceSplitter) *Chunker {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}
	if splitter == nil {
		splitter = NewRegexSentenceSplitter()
	}
	return &Chunker{Size: size, Overlap: overlap, Splitter: splitter}
}

// Chunk splits text. Blank input yields no chunks.
func (c *Chunker) Chunk(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	sentences := c.Splitter.Split(text)
	if len(sentences) == 0 {
		sentences = []string{text}
	}

	// Leave room for the overlap prefix so finished chunks stay within Size.
	budget := c.Size
	if c.Overlap > 0 {
		budget = c.Size - c.Overlap - 1
	}
	if budget < 1 {
		budget = 1
	}
	var packed []string
	var current []rune

	for _, sentence := range sentences {
		s := []rune(strings.Join(strings.Fields(sentence), " "))
		if len(s) == 0 {
			continue
		}

		if len(s) > budget {
			if len(current) > 0 {
				packed = append(packed, string(current))
				current = nil
			}
			for start := 0; start < len(s); start += budget {
				end := min(start+budget, len(s))
				if seg := strings.TrimSpace(string(s[start:end])); seg != "" {
					packed = append(packed, seg)
				}
			}
			continue
		}

		prospective := len(current) + len(s)
		if len(current) > 0 {
			prospective++
		}
		if prospective > budget {
			packed = append(packed, string(current))
			current = nil
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, s...)
	}
	if len(current) > 0 {
		packed = append(packed, string(current))
	}

	if c.Overlap == 0 || len(packed) < 2 {
		return packed
	}

	out := make([]string, len(packed))
	out[0] = packed[0]
	for i := 1; i < len(packed); i++ {
		prefix := tail(packed[i-1], c.Overlap)
		if prefix == "" {
			out[i] = packed[i]
			continue
		}
		out[i] = prefix + " " + packed[i]
	}
	return out
}

// tail returns at most n runes from the end of s, starting on a word
// boundary when one exists inside the window.
func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	window := runes[len(runes)-n:]
	for i, r := range window {
		if isSpace(r) {
			return strings.TrimSpace(string(window[i+1:]))
		}
	}
	return strings.TrimSpace(string(window))
}
