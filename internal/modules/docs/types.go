package docs

// IngestRequest creates a stored summary by redaction and truncation only.
type IngestRequest struct {
	UserID  string `json:"userId"`
	DocType string `json:"docType"`
	DocText string `json:"docText" binding:"required,min=50,max=20000"`
}

// ExplainRequest runs the full generation pipeline.
type ExplainRequest struct {
	UserID   string `json:"userId"`
	AgeRange string `json:"ageRange" binding:"required,oneof=8-11 12-15 16-18"`
	DocType  string `json:"docType"`
	DocText  string `json:"docText" binding:"required,min=50,max=30000"`
}

// ChatRequest is a single-turn follow-up question against a stored summary.
// No chat history is kept server-side.
type ChatRequest struct {
	AgeRange    string `json:"ageRange" binding:"required,oneof=8-11 12-15 16-18"`
	SafeSummary string `json:"safeSummary" binding:"required,min=1,max=2000"`
	Message     string `json:"message" binding:"required,min=1,max=500"`
}

// SearchRequest looks up stored summaries by semantic similarity.
type SearchRequest struct {
	UserID string `json:"userId"`
	Query  string `json:"query" binding:"required,min=3,max=300"`
	Limit  int    `json:"limit" binding:"omitempty,min=1,max=10"`
}

// KeyDetails are the actionable facts pulled out of a document. Nullable
// fields stay null when the document does not mention them.
type KeyDetails struct {
	Deadline     *string `json:"deadline"`
	Amount       *string `json:"amount"`
	WhoIsItFrom  *string `json:"whoIsItFrom"`
	WhatToDoNext string  `json:"whatToDoNext"`
}

// GlossaryEntry explains one confusing term from the document.
type GlossaryEntry struct {
	Term    string `json:"term"`
	Meaning string `json:"meaning"`
}

// ExplainResult is the structured explanation produced by the model. It is
// transient; only SafeSummary is ever persisted.
type ExplainResult struct {
	OneSentence string          `json:"oneSentence"`
	Breakdown   []string        `json:"breakdown"`
	KeyDetails  KeyDetails      `json:"keyDetails"`
	Glossary    []GlossaryEntry `json:"glossary"`
	SafeSummary string          `json:"safeSummary"`
}
