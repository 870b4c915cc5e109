package domain

// AnswerRequest carries everything one pipeline run needs. Session state
// never leaks in: each request names its document, mode, and limits
// explicitly.
type AnswerRequest struct {
	Document    *Document       `json:"document"`
	Mode        AnalysisMode    `json:"mode"`
	Query       string          `json:"query"`
	ChunkConfig ChunkConfig     `json:"chunk_config"`
	Budget      SelectionBudget `json:"budget"`
}

type SummarizeRequest struct {
	Document    *Document    `json:"document"`
	Mode        AnalysisMode `json:"mode"`
	MaxSections int          `json:"max_sections"`
	ChunkConfig ChunkConfig  `json:"chunk_config"`
}

type AssistantResponse struct {
	Text    string       `json:"text"`
	Mode    AnalysisMode `json:"mode"`
	Sources []Chunk      `json:"sources"`
}

type SummaryResult struct {
	Text      string `json:"text"`
	Sections  int    `json:"sections"`
	Truncated bool   `json:"truncated"`
}
