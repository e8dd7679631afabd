package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// Client abstracts LLM providers for resume analysis.
type Client interface {
	AnalyzeResume(ctx context.Context, input AnalyzeInput) (json.RawMessage, error)
}

// AnalyzeInput captures the inputs needed for resume analysis.
type AnalyzeInput struct {
	ResumeText     string
	JobDescription string
	PromptVersion  string
}

// ErrEmptyResponse is returned when a provider yields no content.
var ErrEmptyResponse = errors.New("empty response from model")

// CleanRawJSON strips markdown fences and surrounding prose from a model
// response, returning the widest {...} span. Models routinely wrap JSON in
// ```json fences or add a closing remark despite instructions.
func CleanRawJSON(raw string) string {
	clean := strings.TrimSpace(raw)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	clean = strings.TrimSpace(clean)

	if json.Valid([]byte(clean)) {
		return clean
	}

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		return clean[start : end+1]
	}
	return clean
}
