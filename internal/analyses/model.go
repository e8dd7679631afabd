package analyses

import "time"

// Analysis is a completed resume evaluation. It lives in memory only until
// ExpiresAt so the export downloads can be served, then it is discarded.
type Analysis struct {
	ID             string     `json:"id"`
	FileName       string     `json:"fileName"`
	JobDescription string     `json:"-"`
	PromptVersion  string     `json:"promptVersion"`
	Provider       string     `json:"provider"`
	Model          string     `json:"model"`
	Result         Result     `json:"result"`
	ActionPlan     ActionPlan `json:"actionPlan"`
	CreatedAt      time.Time  `json:"createdAt"`
	ExpiresAt      time.Time  `json:"expiresAt"`
}

// AnalyzeRequest carries one analysis submission. The resume bytes are
// discarded once text extraction succeeds.
type AnalyzeRequest struct {
	FileName       string
	MimeType       string
	ResumeData     []byte
	JobDescription string
	PromptVersion  string
}
