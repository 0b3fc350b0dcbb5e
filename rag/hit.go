package rag

import (
	"math"
	"strings"
)

// Metadata keys written at ingest time. Older collections may carry the
// lowercase forms, so readers accept both.
const (
	MetaTitle      = "Title"
	MetaLink       = "Link"
	MetaChunkIndex = "chunk_index"
)

// Hit is one chunk returned by a similarity query.
type Hit struct {
	ID       string
	Content  string
	Metadata map[string]string
	Distance float64
}

// Link returns the paper link of the hit, or "" when it has none.
func (h Hit) Link() string {
	return metaValue(h.Metadata, MetaLink)
}

// Title returns the paper title of the hit, or "" when it has none.
func (h Hit) Title() string {
	return metaValue(h.Metadata, MetaTitle)
}

// Similarity converts a distance into a score in [0,1]: 1 - min(d, 1),
// with negative distances clamped to 1.
func Similarity(distance float64) float64 {
	if math.IsNaN(distance) {
		return 0
	}
	s := 1 - math.Min(distance, 1)
	if s > 1 {
		s = 1
	}
	if s < 0 {
		s = 0
	}
	return s
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DistinctByLink keeps the first hit for each link, in input order, and
// stops once k links are collected. k <= 0 means no bound. Hits without a
// link are dropped.
func DistinctByLink(hits []Hit, k int) []Hit {
	return DistinctByLinkExcluding(hits, k)
}

// DistinctByLinkExcluding is DistinctByLink with the given links treated as
// already seen.
func DistinctByLinkExcluding(hits []Hit, k int, exclude ...string) []Hit {
	seen := make(map[string]struct{}, len(hits)+len(exclude))
	for _, link := range exclude {
		seen[link] = struct{}{}
	}

	out := make([]Hit, 0, len(hits))
	for _, h := range hits {
		if k > 0 && len(out) >= k {
			break
		}
		link := h.Link()
		if link == "" {
			continue
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		out = append(out, h)
	}
	return out
}

// FormatSnippets renders hits as prompt rows, one per distinct link.
// See FormatChunks for the row layout.
func FormatSnippets(hits []Hit, maxChars int) string {
	return FormatChunks(DistinctByLink(hits, 0), maxChars)
}

// FormatChunks renders every hit that has a link as a prompt row:
//
//	- {title} | {link}
//	  {body}
//
// Bodies are flattened onto one line and cut to maxChars runes.
func FormatChunks(hits []Hit, maxChars int) string {
	rows := make([]string, 0, len(hits))
	for _, h := range hits {
		if h.Link() == "" {
			continue
		}
		title := h.Title()
		if title == "" {
			title = "Untitled"
		}
		body := truncateRunes(strings.ReplaceAll(h.Content, "\n", " "), maxChars)
		rows = append(rows, "- "+title+" | "+h.Link()+"\n  "+body)
	}
	if len(rows) == 0 {
		return "(no snippets)"
	}
	return strings.Join(rows, "\n")
}

// matchesFilter reports whether every filter pair is present in meta.
func matchesFilter(meta map[string]string, filter map[string]string) bool {
	for key, want := range filter {
		if metaValue(meta, key) != want {
			return false
		}
	}
	return true
}

func metaValue(meta map[string]string, key string) string {
	if v, ok := meta[key]; ok && v != "" {
		return v
	}
	return meta[strings.ToLower(key)]
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Truncate cuts s to at most n runes. n <= 0 leaves s unchanged.
func Truncate(s string, n int) string {
	return truncateRunes(s, n)
}
