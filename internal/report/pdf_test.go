package report

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	ltpdf "github.com/ledongthuc/pdf"

	"ats-backend/internal/analyses"
)

func sampleDocument() Document {
	return NewDocument(analyses.Analysis{
		ID:            "a-123",
		FileName:      "resume.pdf",
		PromptVersion: "v1",
		Provider:      "gemini",
		Model:         "gemini-2.0-flash-lite-preview",
		Result: analyses.Result{
			MatchScore:      78,
			ATSScore:        82,
			ProfileSummary:  "Backend engineer with platform experience.",
			MissingKeywords: []string{"Kubernetes", "Terraform"},
			SkillsAlignment: analyses.SkillsAlignment{
				MatchedSkills:    []string{"Go", "PostgreSQL"},
				PartiallyMatched: []string{"AWS"},
				GapAnalysis:      "No container orchestration experience listed.",
			},
			ExperienceMatch: analyses.ExperienceMatch{
				RelevantExperience: "6 years building APIs.",
				LevelAlignment:     "Meets the senior bar.",
				IndustryFit:        "Strong fintech overlap.",
			},
			Recommendations: analyses.Recommendations{
				HighPriority:                []string{"Add a Kubernetes project."},
				MediumPriority:              []string{"Quantify latency wins."},
				KeywordOptimization:         []string{"Use the term observability."},
				QuantificationOpportunities: []string{"Add request volume numbers."},
			},
			RedFlags:             []string{"Two short tenures in a row."},
			CompetitiveAdvantage: "Deep Go and streaming background.",
		},
		ActionPlan: analyses.ActionPlan{
			ImmediateActions:   []string{"Add a Kubernetes project."},
			KeywordIntegration: []string{"Use the term observability."},
			MissingKeywords:    []string{"Kubernetes", "Terraform"},
			SkillGaps:          "No container orchestration experience listed.",
			RedFlagsToFix:      []string{"Two short tenures in a row."},
			CompetitiveEdge:    "Deep Go and streaming background.",
		},
	}, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
}

func pdfText(t *testing.T, data []byte) string {
	t.Helper()
	reader, err := ltpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open rendered pdf: %v", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		t.Fatalf("extract pdf text: %v", err)
	}
	text, err := io.ReadAll(plain)
	if err != nil {
		t.Fatalf("read pdf text: %v", err)
	}
	return string(text)
}

func TestRenderPDFCarriesAllFindings(t *testing.T) {
	doc := sampleDocument()
	data, err := RenderPDF(doc)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}

	text := pdfText(t, data)
	for _, want := range []string{
		"Resume Analysis Report",
		"78 / 100",
		"82 / 100",
		"Backend engineer with platform experience.",
		"Kubernetes",
		"Terraform",
		"Add a Kubernetes project.",
		"Two short tenures in a row.",
		"Deep Go and streaming background.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("pdf text missing %q", want)
		}
	}
}

// The JSON and PDF exports come from the same document, so every finding in
// the JSON payload must also appear in the PDF text.
func TestExportsAgree(t *testing.T) {
	doc := sampleDocument()

	jsonBody, err := RenderJSON(doc)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	var decoded Document
	if err := json.Unmarshal(jsonBody, &decoded); err != nil {
		t.Fatalf("decode json export: %v", err)
	}
	if decoded.Result.MatchScore != doc.Result.MatchScore {
		t.Fatalf("json matchScore = %v", decoded.Result.MatchScore)
	}

	pdfBody, err := RenderPDF(doc)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	text := pdfText(t, pdfBody)

	findings := decoded.Result.MissingKeywords
	findings = append(findings, decoded.Result.RedFlags...)
	findings = append(findings, decoded.Result.Recommendations.HighPriority...)
	for _, finding := range findings {
		if !strings.Contains(text, finding) {
			t.Errorf("pdf export missing finding %q present in json export", finding)
		}
	}
}

func TestRenderJSONStable(t *testing.T) {
	doc := sampleDocument()
	first, err := RenderJSON(doc)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	second, err := RenderJSON(doc)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("json export is not deterministic for the same document")
	}
}
