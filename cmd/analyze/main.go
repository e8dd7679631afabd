package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ats-backend/internal/analyses"
	"ats-backend/internal/bootstrap"
	"ats-backend/internal/report"
	"ats-backend/internal/shared/config"
)

// analyze runs one resume evaluation from the command line, without the HTTP
// server. Useful for prompt iteration and smoke checks against a live key.
func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume file (pdf, docx, or txt)")
	jdPath := flag.String("jd", "", "Path to job description text file")
	promptVersion := flag.String("prompt-version", cfg.PromptVersion, "Prompt version")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider (gemini or openai)")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	outPath := flag.String("out", "", "Path to write the JSON report (defaults to stdout)")
	pdfPath := flag.String("pdf", "", "Path to also write the PDF report (optional)")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" || strings.TrimSpace(*jdPath) == "" {
		exitErr("both -resume and -jd are required")
	}

	resumeBytes, err := os.ReadFile(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}
	jdBytes, err := os.ReadFile(*jdPath)
	if err != nil {
		exitErr(fmt.Sprintf("read job description: %v", err))
	}

	cfg.LLMProvider = strings.TrimSpace(*provider)
	cfg.LLMModel = strings.TrimSpace(*model)

	ctx := context.Background()
	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		exitErr(err.Error())
	}

	analysis, err := app.AnalysesService.Analyze(ctx, analyses.AnalyzeRequest{
		FileName:       filepath.Base(*resumePath),
		ResumeData:     resumeBytes,
		JobDescription: string(jdBytes),
		PromptVersion:  *promptVersion,
	})
	if err != nil {
		exitErr(fmt.Sprintf("analyze: %v", err))
	}

	doc := report.NewDocument(analysis, time.Now())
	body, err := report.RenderJSON(doc)
	if err != nil {
		exitErr(fmt.Sprintf("render report: %v", err))
	}

	if strings.TrimSpace(*outPath) == "" {
		fmt.Println(string(body))
	} else if err := os.WriteFile(*outPath, body, 0o644); err != nil {
		exitErr(fmt.Sprintf("write report: %v", err))
	}

	if strings.TrimSpace(*pdfPath) != "" {
		pdfBytes, err := report.RenderPDF(doc)
		if err != nil {
			exitErr(fmt.Sprintf("render pdf: %v", err))
		}
		if err := os.WriteFile(*pdfPath, pdfBytes, 0o644); err != nil {
			exitErr(fmt.Sprintf("write pdf: %v", err))
		}
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error: "+msg)
	os.Exit(1)
}
