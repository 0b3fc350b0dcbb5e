package mockdata

import (
	"testing"

	"research-graph/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPhotosynthesis(t *testing.T) {
	g := New()
	results := g.Search("photosynthesis", DefaultSearchCount)

	require.Len(t, results, 8)
	assert.Equal(t, "dfae25ee-b567-a810-9527-f68898b08d91", results[0].Paper.ID)
	assert.Equal(t, 0.99, results[0].Similarity)
	assert.Equal(t, "2013919e-d042-ef76-ff8f-779e668964df", results[1].Paper.ID)
	assert.Equal(t, 0.97, results[1].Similarity)
	assert.Equal(t, 0.55, results[7].Similarity)

	for i, r := range results {
		assert.Equal(t, "photosynthesis", r.Paper.Topic)
		assert.GreaterOrEqual(t, r.Similarity, 0.50)
		assert.LessOrEqual(t, r.Similarity, 0.99)
		if i > 0 {
			assert.LessOrEqual(t, r.Similarity, results[i-1].Similarity)
		}
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	a := New().Search("neural networks and the brain", 10)
	b := New().Search("neural networks and the brain", 10)
	assert.Equal(t, a, b)
}

func TestSearchFallsBackToFirstTopic(t *testing.T) {
	results := New().Search("zzz nothing", 3)
	require.Len(t, results, 3)
	assert.Equal(t, "dfae25ee-b567-a810-9527-f68898b08d91", results[0].Paper.ID)
	assert.Equal(t, 0.94, results[0].Similarity)
	assert.Equal(t, 0.92, results[1].Similarity)
	assert.Equal(t, identity.TopicPaperID("photosynthesis", 0), results[2].Paper.ID)
	assert.Equal(t, 0.9, results[2].Similarity)
}

func TestSearchAcronymsMatchWholeWords(t *testing.T) {
	g := New()
	for _, r := range g.Search("nasa organs study", 50) {
		assert.Equal(t, "photosynthesis", r.Paper.Topic, "nas/gans must not match inside longer words")
	}
}

func TestSearchLongKeywordsMatchInsideWords(t *testing.T) {
	topics := map[string]int{}
	for _, r := range New().Search("evolutionary biology", 50) {
		topics[r.Paper.Topic]++
	}
	assert.Contains(t, topics, "photosynthesis")
	assert.Contains(t, topics, "genetics")
	assert.Len(t, topics, 2)
}

func TestKeywordMatches(t *testing.T) {
	assert.True(t, keywordMatches("evolutionary biology", "evolution"))
	assert.True(t, keywordMatches("what is nas?", "nas"))
	assert.False(t, keywordMatches("nasa missions", "nas"))
	assert.False(t, keywordMatches("organs", "gans"))
}

func TestSearchCountBounds(t *testing.T) {
	g := New()
	assert.Empty(t, g.Search("photosynthesis", 0))
	assert.Len(t, g.Search("photosynthesis", 2), 2)
}

func TestRelated(t *testing.T) {
	g := New()
	source := identity.TopicPaperID("photosynthesis", 0)
	results := g.Related(source, "", DefaultRelatedCount)

	require.Len(t, results, 7)
	assert.Equal(t, "dfae25ee-b567-a810-9527-f68898b08d91", results[0].Paper.ID)
	assert.Equal(t, 0.67, results[0].Similarity)
	for _, r := range results {
		assert.NotEqual(t, source, r.Paper.ID)
		assert.GreaterOrEqual(t, r.Similarity, 0.55)
	}
}

func TestRelatedIncludesRelatedTopics(t *testing.T) {
	g := New()
	results := g.Related(identity.TopicPaperID("genetics", 0), "", 50)

	topics := map[string]int{}
	for _, r := range results {
		topics[r.Paper.Topic]++
	}
	assert.Equal(t, 5, topics["genetics"])
	assert.Equal(t, 6, topics["neuroscience"])
	assert.Equal(t, 8, topics["photosynthesis"])
	assert.Len(t, topics, 3)
}

func TestRelatedUnknownID(t *testing.T) {
	assert.Empty(t, New().Related("00000000-0000-0000-0000-000000000000", "", 5))
}

func TestChat(t *testing.T) {
	g := New()
	id := identity.TopicPaperID("photosynthesis", 0)

	reply, ok := g.Chat(id, "How was it done?")
	require.True(t, ok)
	assert.Equal(t, "The methodology in 'C4 Photosynthesis in Tropical Grasses: Mechanisms and Evolution' involves systematic analysis and empirical investigation. The researchers employed rigorous experimental design to validate their findings.", reply.Response)
	assert.Equal(t, []string{"C4 plants", "carbon fixation", "evolution"}, reply.RelevantSections)
	assert.Equal(t, "C4 Photosynthesis in Tropical Grasses: Mechanisms and Evolution", reply.Title)

	reply, _ = g.Chat(id, "What is this about?")
	assert.Contains(t, reply.Response, "focuses on This paper explores")

	reply, _ = g.Chat(id, "Key results?")
	assert.Contains(t, reply.Response, "The key findings of this research")

	reply, _ = g.Chat(id, "Hmm")
	assert.Contains(t, reply.Response, "That's an interesting question about")

	_, ok = g.Chat("missing", "hi")
	assert.False(t, ok)
}

func TestChatDefaultSections(t *testing.T) {
	g := NewWithTopics([]Topic{{Name: "t", Papers: []Fixture{{Title: "T", Summary: "S"}}}}, nil)
	reply, ok := g.Chat(identity.TopicPaperID("t", 0), "anything")
	require.True(t, ok)
	assert.Equal(t, []string{"Introduction", "Methodology", "Results"}, reply.RelevantSections)
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("what about gans?", "gans"))
	assert.False(t, containsWord("organs", "gans"))
	assert.True(t, containsWord("c4 plants grow", "c4 plants"))
	assert.False(t, containsWord("x", ""))
}
