package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/v1.txt
	promptV1 string
)

// PromptTemplate returns the prompt template text and whether the version was recognized.
func PromptTemplate(version string) (string, bool) {
	switch version {
	case "v1":
		return promptV1, true
	default:
		return promptV1, false
	}
}

// BuildPrompt renders the full analysis prompt for the given version.
func BuildPrompt(version, resumeText, jobDescription string) string {
	template, _ := PromptTemplate(strings.TrimSpace(version))
	replacer := strings.NewReplacer(
		"{{RESUME_TEXT}}", strings.TrimSpace(resumeText),
		"{{JOB_DESCRIPTION}}", strings.TrimSpace(jobDescription),
	)
	return replacer.Replace(template)
}

// SystemPrompt is the provider-independent instruction for strict JSON output.
const SystemPrompt = "You are a resume analysis engine. Respond with JSON only. No markdown. Never omit keys. Output must match the schema exactly."
