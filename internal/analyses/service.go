package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/extract"
	"ats-backend/internal/llm"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/telemetry"
)

// Service runs the analysis pipeline: extract text, call the model once,
// validate the output, derive the action plan, store the result.
type Service struct {
	LLM           llm.Client
	Store         *MemoryStore
	Provider      string
	Model         string
	PromptVersion string
	Timeout       time.Duration
}

// Analyze performs one synchronous resume-vs-job-description evaluation.
// The returned error is always ErrInvalidInput or ErrExternalService (wrapped),
// matching the two user-facing failure kinds.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (Analysis, error) {
	metrics.IncAnalysisRequested()

	// Input validation happens before anything leaves the process: an empty
	// job description must never reach the external service.
	if strings.TrimSpace(req.JobDescription) == "" {
		metrics.IncAnalysisInputError()
		return Analysis{}, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}
	if len(req.ResumeData) == 0 {
		metrics.IncAnalysisInputError()
		return Analysis{}, fmt.Errorf("%w: resume file is required", ErrInvalidInput)
	}

	resumeText, err := extract.TextFromBytes(ctx, req.ResumeData, req.MimeType, req.FileName)
	if err != nil {
		metrics.IncAnalysisInputError()
		return Analysis{}, fmt.Errorf("%w: %s", ErrInvalidInput, extractErrMessage(err))
	}

	promptVersion := strings.TrimSpace(req.PromptVersion)
	if promptVersion == "" {
		promptVersion = s.PromptVersion
	}
	if promptVersion == "" {
		promptVersion = "v1"
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	llmCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.LLM.AnalyzeResume(llmCtx, llm.AnalyzeInput{
		ResumeText:     resumeText,
		JobDescription: req.JobDescription,
		PromptVersion:  promptVersion,
	})
	metrics.ObserveLLMDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncAnalysisExternalError()
		if errors.Is(err, context.DeadlineExceeded) || llmCtx.Err() != nil {
			return Analysis{}, fmt.Errorf("%w: model call timed out", ErrExternalService)
		}
		return Analysis{}, fmt.Errorf("%w: %s", ErrExternalService, sanitizeError(err))
	}

	result, err := ParseResult(raw)
	if err != nil {
		metrics.IncAnalysisExternalError()
		return Analysis{}, fmt.Errorf("%w: %s", ErrExternalService, sanitizeError(err))
	}

	analysis := Analysis{
		ID:             uuid.NewString(),
		FileName:       req.FileName,
		JobDescription: req.JobDescription,
		PromptVersion:  promptVersion,
		Provider:       s.Provider,
		Model:          s.Model,
		Result:         result,
		ActionPlan:     BuildActionPlan(result),
		CreatedAt:      time.Now().UTC(),
	}

	stored, err := s.Store.Put(ctx, analysis)
	if err != nil {
		metrics.IncAnalysisExternalError()
		return Analysis{}, fmt.Errorf("%w: store result: %s", ErrExternalService, sanitizeError(err))
	}

	metrics.IncAnalysisCompleted()
	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id": stored.ID,
		"provider":    stored.Provider,
		"model":       stored.Model,
		"match_score": float64(stored.Result.MatchScore),
		"ats_score":   float64(stored.Result.ATSScore),
		"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})
	return stored, nil
}

// Get returns a stored analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	if strings.TrimSpace(analysisID) == "" {
		return Analysis{}, fmt.Errorf("%w: analysis id is required", ErrInvalidInput)
	}
	return s.Store.Get(ctx, analysisID)
}

func extractErrMessage(err error) string {
	if errors.Is(err, extract.ErrNoText) {
		return "no text could be extracted from the document; make sure it is text-selectable, not scanned"
	}
	return sanitizeError(err)
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
