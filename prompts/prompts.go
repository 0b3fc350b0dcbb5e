package prompts

import (
	_ "embed"
	"strings"
)

// Embedded prompt files

//go:embed paper_summary.txt
var paperSummary string

//go:embed paper_chat.txt
var paperChat string

// Markers the model output is cut on. The model may echo the prompt, so
// the answer is whatever follows the last occurrence.
const (
	SummaryMarker = "Concise summary:"
	SummaryAnchor = "Retrieved Snippets:"
	AnswerMarker  = "Grounded answer:"
	AnswerAnchor  = "User message:"
)

// Summary fills the corpus summary prompt.
func Summary(query, snippets string) string {
	return strings.NewReplacer(
		"{query}", query,
		"{snippets}", snippets,
	).Replace(paperSummary)
}

// PaperChatInput carries the values of the single-paper chat prompt.
type PaperChatInput struct {
	OrigQuery     string
	SystemSummary string
	PaperTitle    string
	PaperLink     string
	Snippets      string
	Message       string
}

// PaperChat fills the single-paper chat prompt. Substituted values are
// not rescanned, so user text containing placeholders stays literal.
func PaperChat(in PaperChatInput) string {
	return strings.NewReplacer(
		"{orig_query}", in.OrigQuery,
		"{system_summary}", in.SystemSummary,
		"{paper_title}", in.PaperTitle,
		"{paper_link}", in.PaperLink,
		"{snippets}", in.Snippets,
		"{message}", in.Message,
	).Replace(paperChat)
}

func ExtractSummary(raw string) string { return Extract(raw, SummaryMarker, SummaryAnchor) }
func ExtractAnswer(raw string) string  { return Extract(raw, AnswerMarker, AnswerAnchor) }

// Extract returns the trimmed text after the last marker, else after the
// last anchor, else the whole output.
func Extract(raw, marker, anchor string) string {
	if marker != "" {
		if i := strings.LastIndex(raw, marker); i >= 0 {
			return strings.TrimSpace(raw[i+len(marker):])
		}
	}
	if anchor != "" {
		if i := strings.LastIndex(raw, anchor); i >= 0 {
			return strings.TrimSpace(raw[i+len(anchor):])
		}
	}
	return strings.TrimSpace(raw)
}
