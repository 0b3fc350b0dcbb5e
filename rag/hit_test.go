package rag

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hit(title, link, body string, dist float64) Hit {
	meta := map[string]string{}
	if title != "" {
		meta[MetaTitle] = title
	}
	if link != "" {
		meta[MetaLink] = link
	}
	return Hit{Content: body, Metadata: meta, Distance: dist}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		distance float64
		want     float64
	}{
		{0, 1},
		{1, 0},
		{5, 0},
		{0.25, 0.75},
		{-0.5, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("d=%v", tt.distance), func(t *testing.T) {
			got := Similarity(tt.distance)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.68, Round2(1-0.3219))
	assert.Equal(t, 1.0, Round2(0.999))
}

func TestDistinctByLink(t *testing.T) {
	hits := []Hit{
		hit("A", "L1", "a1", 0.1),
		hit("A", "L1", "a2", 0.2),
		hit("B", "L2", "b1", 0.3),
		hit("", "", "orphan", 0.35),
		hit("C", "L3", "c1", 0.4),
		hit("B", "L2", "b2", 0.5),
	}

	got := DistinctByLink(hits, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].Content)
	assert.Equal(t, "b1", got[1].Content)

	all := DistinctByLink(hits, 0)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"L1", "L2", "L3"}, []string{all[0].Link(), all[1].Link(), all[2].Link()})

	assert.Len(t, DistinctByLink(hits, 10), 3, "length is min(k, distinct)")
	assert.Empty(t, DistinctByLink(nil, 3))
}

func TestDistinctByLinkExcluding(t *testing.T) {
	hits := []Hit{
		hit("Self", "SELF", "s", 0.0),
		hit("A", "L1", "a", 0.1),
		hit("Self", "SELF", "s2", 0.15),
		hit("B", "L2", "b", 0.2),
	}
	got := DistinctByLinkExcluding(hits, 5, "SELF")
	require.Len(t, got, 2)
	assert.Equal(t, "L1", got[0].Link())
	assert.Equal(t, "L2", got[1].Link())
}

func TestLowercaseMetadataKeys(t *testing.T) {
	h := Hit{Metadata: map[string]string{"title": "t", "link": "l"}}
	assert.Equal(t, "t", h.Title())
	assert.Equal(t, "l", h.Link())
}

func TestFormatSnippets(t *testing.T) {
	hits := []Hit{
		hit("Bone loss", "https://a", "line one\nline two", 0.1),
		hit("Bone loss", "https://a", "duplicate", 0.2),
		hit("", "https://b", strings.Repeat("x", 20), 0.3),
	}
	got := FormatSnippets(hits, 10)
	want := "- Bone loss | https://a\n  line one l\n- Untitled | https://b\n  xxxxxxxxxx"
	assert.Equal(t, want, got)
}

func TestFormatSnippetsEmpty(t *testing.T) {
	assert.Equal(t, "(no snippets)", FormatSnippets(nil, 400))
	assert.Equal(t, "(no snippets)", FormatSnippets([]Hit{hit("t", "", "b", 0)}, 400))
}

func TestFormatChunksKeepsEveryChunkOfOnePaper(t *testing.T) {
	hits := []Hit{
		hit("Bone loss", "https://a", "chunk one", 0.1),
		hit("Bone loss", "https://a", "chunk two", 0.2),
		hit("No link", "", "orphan", 0.25),
		hit("Bone loss", "https://a", "chunk three", 0.3),
	}
	want := "- Bone loss | https://a\n  chunk one\n" +
		"- Bone loss | https://a\n  chunk two\n" +
		"- Bone loss | https://a\n  chunk three"
	assert.Equal(t, want, FormatChunks(hits, 450))
	assert.Equal(t, "(no snippets)", FormatChunks(nil, 450))
}

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "héll", Truncate("héllo", 4))
	assert.Equal(t, "abc", Truncate("abc", 0))
}
