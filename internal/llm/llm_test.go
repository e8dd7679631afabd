package llm

import (
	"strings"
	"testing"
)

func TestBuildPromptIncludesInputs(t *testing.T) {
	prompt := BuildPrompt("v1", "Resume body here", "Job description here")
	if !strings.Contains(prompt, "Resume body here") {
		t.Fatal("prompt missing resume text")
	}
	if !strings.Contains(prompt, "Job description here") {
		t.Fatal("prompt missing job description")
	}
	if strings.Contains(prompt, "{{RESUME_TEXT}}") || strings.Contains(prompt, "{{JOB_DESCRIPTION}}") {
		t.Fatal("prompt placeholders were not substituted")
	}
	if !strings.Contains(prompt, "matchScore") || !strings.Contains(prompt, "atsScore") {
		t.Fatal("prompt missing schema keys")
	}
}

func TestBuildPromptUnknownVersionFallsBack(t *testing.T) {
	v1 := BuildPrompt("v1", "r", "jd")
	other := BuildPrompt("v99", "r", "jd")
	if v1 != other {
		t.Fatal("unknown prompt version should fall back to v1")
	}
}

func TestCleanRawJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced bare", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounded by prose", "Here you go:\n{\"a\":1}\nHope that helps!", `{"a":1}`},
		{"whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := CleanRawJSON(tc.in); got != tc.want {
			t.Errorf("%s: CleanRawJSON = %q, want %q", tc.name, got, tc.want)
		}
	}
}
