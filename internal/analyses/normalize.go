package analyses

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Score is a 0-100 value that tolerates model output like 85, "85", or
// "85% - strong keyword overlap". The numeric value is taken from the first
// token; any trailing justification is dropped.
type Score float64

// UnmarshalJSON accepts numbers and percentage-style strings.
func (s *Score) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = Score(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("score must be a number or string")
	}
	val, ok := leadingNumber(str)
	if !ok {
		return fmt.Errorf("score %q has no numeric value", str)
	}
	*s = Score(val)
	return nil
}

// MarshalJSON always emits a plain number so exports stay uniform.
func (s Score) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(s), 'f', -1, 64)), nil
}

func leadingNumber(raw string) (float64, bool) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return 0, false
	}
	var digits strings.Builder
	for _, r := range fields[0] {
		if unicode.IsDigit(r) || r == '.' {
			digits.WriteRune(r)
		}
	}
	val, err := strconv.ParseFloat(strings.TrimSuffix(digits.String(), "."), 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

var requiredResultKeys = []string{
	"matchScore",
	"atsScore",
	"profileSummary",
	"missingKeywords",
	"skillsAlignment",
	"experienceMatch",
	"recommendations",
}

// ParseResult validates and normalizes a raw model response into a Result.
func ParseResult(raw json.RawMessage) (Result, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return Result{}, fmt.Errorf("model output parse: %w", err)
	}
	for _, key := range requiredResultKeys {
		if _, ok := keys[key]; !ok {
			return Result{}, fmt.Errorf("model output missing required field %q", key)
		}
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, fmt.Errorf("model output parse: %w", err)
	}

	if err := validateScore("matchScore", result.MatchScore); err != nil {
		return Result{}, err
	}
	if err := validateScore("atsScore", result.ATSScore); err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(result.ProfileSummary) == "" {
		return Result{}, fmt.Errorf("model output missing profile summary")
	}

	normalizeResult(&result)
	return result, nil
}

func validateScore(name string, s Score) error {
	if s < 0 || s > 100 {
		return fmt.Errorf("%s must be between 0 and 100, got %v", name, float64(s))
	}
	return nil
}

// normalizeResult replaces nil slices with empty ones so exports and API
// responses always carry arrays, never null.
func normalizeResult(r *Result) {
	r.MissingKeywords = ensureSlice(r.MissingKeywords)
	r.SkillsAlignment.MatchedSkills = ensureSlice(r.SkillsAlignment.MatchedSkills)
	r.SkillsAlignment.PartiallyMatched = ensureSlice(r.SkillsAlignment.PartiallyMatched)
	r.Recommendations.HighPriority = ensureSlice(r.Recommendations.HighPriority)
	r.Recommendations.MediumPriority = ensureSlice(r.Recommendations.MediumPriority)
	r.Recommendations.KeywordOptimization = ensureSlice(r.Recommendations.KeywordOptimization)
	r.Recommendations.QuantificationOpportunities = ensureSlice(r.Recommendations.QuantificationOpportunities)
	r.RedFlags = ensureSlice(r.RedFlags)
}

func ensureSlice(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
