package report

import (
	"bytes"
	"encoding/json"
	"time"

	"ats-backend/internal/analyses"
)

// Document is the export payload. Both the JSON and the PDF report are rendered
// from this same structure so the two downloads always agree.
type Document struct {
	AnalysisID    string              `json:"analysisId"`
	FileName      string              `json:"fileName"`
	GeneratedAt   time.Time           `json:"generatedAt"`
	Provider      string              `json:"provider"`
	Model         string              `json:"model"`
	PromptVersion string              `json:"promptVersion"`
	Result        analyses.Result     `json:"result"`
	ActionPlan    analyses.ActionPlan `json:"actionPlan"`
}

// NewDocument builds an export document from a stored analysis.
func NewDocument(a analyses.Analysis, generatedAt time.Time) Document {
	return Document{
		AnalysisID:    a.ID,
		FileName:      a.FileName,
		GeneratedAt:   generatedAt.UTC().Truncate(time.Second),
		Provider:      a.Provider,
		Model:         a.Model,
		PromptVersion: a.PromptVersion,
		Result:        a.Result,
		ActionPlan:    a.ActionPlan,
	}
}

// RenderJSON serializes the document with stable indentation.
func RenderJSON(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
