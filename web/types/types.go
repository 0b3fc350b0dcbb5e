package types

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query string `json:"query" binding:"required,max=500"`
	KTop  *int   `json:"k_top" binding:"omitempty,min=1,max=50"`
	PoolK *int   `json:"pool_k" binding:"omitempty,min=1,max=100"`
}

// SearchPaperRequest is the body of POST /api/search_paper.
type SearchPaperRequest struct {
	PaperID      string `json:"paper_id" binding:"required"`
	Conversation string `json:"conversation" binding:"max=5000"`
	KRelated     *int   `json:"k_related" binding:"omitempty,min=1,max=50"`
	SeedK        *int   `json:"seed_k" binding:"omitempty,min=1,max=50"`
}

// ChatMessage is one prior turn supplied by the client.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest is the body of POST /api/chat. Presence of paper_id and
// message is checked by the service so the errors come in a fixed order.
type ChatRequest struct {
	PaperID             string        `json:"paper_id"`
	Message             string        `json:"message" binding:"max=5000"`
	ConversationHistory []ChatMessage `json:"conversation_history" binding:"omitempty,dive"`
	KChunks             *int          `json:"k_chunks" binding:"omitempty,min=1,max=50"`
}

type PaperMetadata struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// PaperResult is one element of the search and search_paper responses.
type PaperResult struct {
	PaperID    string        `json:"paper_id"`
	Metadata   PaperMetadata `json:"metadata"`
	Similarity float64       `json:"similarity"`
}

type PaperContext struct {
	Title            string   `json:"title"`
	RelevantSections []string `json:"relevant_sections"`
}

// ChatResponse is the body returned by POST /api/chat.
type ChatResponse struct {
	Response     string        `json:"response"`
	PaperContext *PaperContext `json:"paper_context"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

// IntOr returns *p, or def when p is nil.
func IntOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
