// Package mockdata serves deterministic fixture papers so a frontend can be
// developed without a vector index or a language model.
package mockdata

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"research-graph/identity"
)

const (
	DefaultSearchCount  = 10
	DefaultRelatedCount = 7

	maxRelatedTopics = 2
)

// Topic is a named group of fixture papers.
type Topic struct {
	Name   string
	Papers []Fixture
}

// Fixture is the static content of one mock paper.
type Fixture struct {
	Title    string
	Summary  string
	Keywords []string
}

// Paper is a fixture with its derived id and position in its topic.
type Paper struct {
	ID       string
	Topic    string
	Index    int
	Title    string
	Summary  string
	Keywords []string
}

// Result is a paper scored against a query.
type Result struct {
	Paper      Paper
	Similarity float64
}

// ChatReply is the canned answer for a chat turn.
type ChatReply struct {
	Response         string
	Title            string
	RelevantSections []string
}

// Generator answers search, related and chat calls from the fixture tables.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	topics  []Topic
	related map[string][]string
	papers  []Paper
	byID    map[string]int
	// keywords holds each topic's lowercased keywords.
	keywords map[string][]string
}

// New builds a Generator over the built-in fixtures.
func New() *Generator {
	return NewWithTopics(topics, relatedTopics)
}

// NewWithTopics builds a Generator over custom fixtures. The first topic is
// the fallback for unmatched queries.
func NewWithTopics(ts []Topic, related map[string][]string) *Generator {
	g := &Generator{
		topics:   ts,
		related:  related,
		byID:     make(map[string]int),
		keywords: make(map[string][]string, len(ts)),
	}
	for _, t := range ts {
		var kws []string
		for idx, f := range t.Papers {
			id := identity.TopicPaperID(t.Name, idx)
			g.byID[id] = len(g.papers)
			g.papers = append(g.papers, Paper{
				ID:       id,
				Topic:    t.Name,
				Index:    idx,
				Title:    f.Title,
				Summary:  f.Summary,
				Keywords: f.Keywords,
			})
			for _, kw := range f.Keywords {
				kws = append(kws, strings.ToLower(kw))
			}
		}
		g.keywords[t.Name] = kws
	}
	return g
}

// Search returns up to count papers for query, best first. Every topic whose
// name occurs in the lowercased query, or one of whose keywords matches it
// (see keywordMatches), contributes its papers in table order. With no match the
// first topic is used.
func (g *Generator) Search(query string, count int) []Result {
	if count <= 0 || len(g.topics) == 0 {
		return []Result{}
	}
	lower := strings.ToLower(query)

	var matched []Paper
	for _, t := range g.topics {
		if g.topicMatches(t.Name, lower) {
			matched = append(matched, g.papersOf(t.Name)...)
		}
	}
	if len(matched) == 0 {
		matched = g.papersOf(g.topics[0].Name)
	}
	if len(matched) > count {
		matched = matched[:count]
	}

	results := make([]Result, 0, len(matched))
	for idx, p := range matched {
		results = append(results, Result{Paper: p, Similarity: score(query, p.ID, idx)})
	}
	sortBySimilarity(results)
	return results
}

// Related returns up to count papers near id: the rest of its topic, then
// the papers of at most two related topics. Unknown ids yield no papers.
func (g *Generator) Related(id, conversation string, count int) []Result {
	source, ok := g.Paper(id)
	if !ok || count <= 0 {
		return []Result{}
	}

	var candidates []Paper
	for _, p := range g.papersOf(source.Topic) {
		if p.ID != id {
			candidates = append(candidates, p)
		}
	}
	rel := g.related[source.Topic]
	if len(rel) > maxRelatedTopics {
		rel = rel[:maxRelatedTopics]
	}
	for _, name := range rel {
		candidates = append(candidates, g.papersOf(name)...)
	}
	if len(candidates) > count {
		candidates = candidates[:count]
	}

	results := make([]Result, 0, len(candidates))
	for idx, p := range candidates {
		s := round2(score(source.Title, p.ID, idx+3) - 0.15)
		results = append(results, Result{Paper: p, Similarity: math.Max(0.55, s)})
	}
	sortBySimilarity(results)
	return results
}

// Paper looks up a fixture by id.
func (g *Generator) Paper(id string) (Paper, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Paper{}, false
	}
	return g.papers[i], true
}

// Chat picks a canned reply from the keywords in message. ok is false for
// unknown ids.
func (g *Generator) Chat(id, message string) (ChatReply, bool) {
	p, found := g.Paper(id)
	if !found {
		return ChatReply{}, false
	}

	lower := strings.ToLower(message)
	var response string
	switch {
	case containsAny(lower, "summary", "about", "what", "explain"):
		response = fmt.Sprintf("This paper, titled '%s', focuses on %s... The research provides valuable insights into this area of study.",
			p.Title, runeSlice(p.Summary, 0, 200))
	case containsAny(lower, "method", "how", "approach"):
		response = fmt.Sprintf("The methodology in '%s' involves systematic analysis and empirical investigation. The researchers employed rigorous experimental design to validate their findings.",
			p.Title)
	case containsAny(lower, "result", "finding", "conclusion"):
		response = fmt.Sprintf("The key findings of this research indicate significant contributions to the field. %s... These results have important implications for future research.",
			runeSlice(p.Summary, 100, 250))
	case containsAny(lower, "application", "use", "practical"):
		response = fmt.Sprintf("The applications of this research are quite broad. The findings from '%s' can be applied to real-world scenarios and inform practical solutions in the field.",
			p.Title)
	default:
		response = fmt.Sprintf("That's an interesting question about '%s'. %s... This research contributes to our understanding of the topic through comprehensive analysis.",
			p.Title, runeSlice(p.Summary, 0, 150))
	}

	sections := []string{"Introduction", "Methodology", "Results"}
	if len(p.Keywords) > 0 {
		n := min(3, len(p.Keywords))
		sections = append([]string(nil), p.Keywords[:n]...)
	}

	return ChatReply{Response: response, Title: p.Title, RelevantSections: sections}, true
}

func (g *Generator) topicMatches(topic, lowerQuery string) bool {
	if strings.Contains(lowerQuery, topic) {
		return true
	}
	for _, kw := range g.keywords[topic] {
		if keywordMatches(lowerQuery, kw) {
			return true
		}
	}
	return false
}

// shortKeyword is the rune length below which a keyword is treated as an
// acronym and must match a whole word.
const shortKeyword = 5

// keywordMatches reports whether kw occurs in s. Acronyms such as "nas"
// must stand alone; longer keywords match anywhere, so "evolution" matches
// "evolutionary".
func keywordMatches(s, kw string) bool {
	if utf8.RuneCountInString(kw) < shortKeyword {
		return containsWord(s, kw)
	}
	return strings.Contains(s, kw)
}

// containsWord reports whether w occurs in s bounded by non-alphanumerics,
// so "nas" does not match inside "nasa".
func containsWord(s, w string) bool {
	if w == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(s[start:], w)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(w)
		before, _ := utf8.DecodeLastRuneInString(s[:i])
		after, _ := utf8.DecodeRuneInString(s[end:])
		if (i == 0 || !isWordRune(before)) && (end == len(s) || !isWordRune(after)) {
			return true
		}
		start = i + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (g *Generator) papersOf(topic string) []Paper {
	var out []Paper
	for _, p := range g.papers {
		if p.Topic == topic {
			out = append(out, p)
		}
	}
	return out
}

// score is 0.95 - 0.05*idx plus a 0.00-0.19 variation hashed from query and
// id, less 0.10, clamped to [0.50, 0.99] and rounded.
func score(query, id string, idx int) float64 {
	sum := md5.Sum([]byte(query + "_" + id))
	prefix, _ := strconv.ParseUint(hex.EncodeToString(sum[:])[:8], 16, 64)
	variation := float64(prefix%20) / 100

	s := 0.95 - float64(idx)*0.05 + variation - 0.10
	s = math.Max(0.50, math.Min(0.99, s))
	return round2(s)
}

func sortBySimilarity(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// runeSlice mirrors s[from:to] on runes with both bounds clamped.
func runeSlice(s string, from, to int) string {
	r := []rune(s)
	if to > len(r) {
		to = len(r)
	}
	if from > to {
		return ""
	}
	return string(r[from:to])
}
