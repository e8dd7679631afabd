package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 15.0
	lineHeight = 5.5
)

// RenderPDF lays out the analysis as a printable report. Sections mirror the
// JSON export field for field.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Resume Analysis Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s", doc.GeneratedAt.Format("2006-01-02 15:04 UTC")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Resume: %s", doc.FileName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Model: %s/%s (prompt %s)", doc.Provider, doc.Model, doc.PromptVersion), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	writeScores(pdf, doc)
	writeSection(pdf, "Executive Summary", doc.Result.ProfileSummary)

	writeHeading(pdf, "Skills Alignment")
	writeList(pdf, "Matched", doc.Result.SkillsAlignment.MatchedSkills)
	writeList(pdf, "Partially matched", doc.Result.SkillsAlignment.PartiallyMatched)
	writeParagraph(pdf, doc.Result.SkillsAlignment.GapAnalysis)

	writeHeading(pdf, "Experience Match")
	writeParagraph(pdf, doc.Result.ExperienceMatch.RelevantExperience)
	writeParagraph(pdf, doc.Result.ExperienceMatch.LevelAlignment)
	writeParagraph(pdf, doc.Result.ExperienceMatch.IndustryFit)

	writeHeading(pdf, "Missing Keywords")
	writeBullets(pdf, doc.Result.MissingKeywords)

	writeHeading(pdf, "Recommendations")
	writeList(pdf, "High priority", doc.Result.Recommendations.HighPriority)
	writeList(pdf, "Medium priority", doc.Result.Recommendations.MediumPriority)
	writeList(pdf, "Keyword optimization", doc.Result.Recommendations.KeywordOptimization)
	writeList(pdf, "Quantification opportunities", doc.Result.Recommendations.QuantificationOpportunities)

	if len(doc.Result.RedFlags) > 0 {
		writeHeading(pdf, "Red Flags")
		writeBullets(pdf, doc.Result.RedFlags)
	}
	if doc.Result.CompetitiveAdvantage != "" {
		writeSection(pdf, "Competitive Advantage", doc.Result.CompetitiveAdvantage)
	}

	writeHeading(pdf, "Action Plan")
	writeList(pdf, "Immediate actions", doc.ActionPlan.ImmediateActions)
	writeList(pdf, "Keyword integration", doc.ActionPlan.KeywordIntegration)
	if doc.ActionPlan.SkillGaps != "" {
		writeParagraph(pdf, "Skill gaps: "+doc.ActionPlan.SkillGaps)
	}
	writeList(pdf, "Red flags to fix", doc.ActionPlan.RedFlagsToFix)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeScores(pdf *gofpdf.Fpdf, doc Document) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(240, 244, 248)
	pdf.CellFormat(60, 8, "Match Score", "1", 0, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(30, 8, fmt.Sprintf("%.0f / 100", float64(doc.Result.MatchScore)), "1", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, 8, "ATS Compatibility", "1", 0, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(30, 8, fmt.Sprintf("%.0f / 100", float64(doc.Result.ATSScore)), "1", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func writeHeading(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func writeSection(pdf *gofpdf.Fpdf, title, body string) {
	writeHeading(pdf, title)
	writeParagraph(pdf, body)
}

func writeParagraph(pdf *gofpdf.Fpdf, text string) {
	if text == "" {
		return
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, lineHeight, text, "", "L", false)
	pdf.Ln(2)
}

func writeList(pdf *gofpdf.Fpdf, label string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, lineHeight, label, "", 1, "L", false, 0, "")
	writeBullets(pdf, items)
}

func writeBullets(pdf *gofpdf.Fpdf, items []string) {
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.MultiCell(0, lineHeight, "- "+item, "", "L", false)
	}
	pdf.Ln(2)
}
