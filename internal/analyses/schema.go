package analyses

// JSON Schema (v1):
// {
//   "matchScore": "number (0-100)",
//   "atsScore": "number (0-100)",
//   "profileSummary": "string",
//   "missingKeywords": ["string"],
//   "skillsAlignment": {
//     "matchedSkills": ["string"],
//     "partiallyMatched": ["string"],
//     "gapAnalysis": "string"
//   },
//   "experienceMatch": {
//     "relevantExperience": "string",
//     "levelAlignment": "string",
//     "industryFit": "string"
//   },
//   "recommendations": {
//     "highPriority": ["string"],
//     "mediumPriority": ["string"],
//     "keywordOptimization": ["string"],
//     "quantificationOpportunities": ["string"]
//   },
//   "redFlags": ["string"],
//   "competitiveAdvantage": "string"
// }
type Result struct {
	MatchScore           Score           `json:"matchScore"`
	ATSScore             Score           `json:"atsScore"`
	ProfileSummary       string          `json:"profileSummary"`
	MissingKeywords      []string        `json:"missingKeywords"`
	SkillsAlignment      SkillsAlignment `json:"skillsAlignment"`
	ExperienceMatch      ExperienceMatch `json:"experienceMatch"`
	Recommendations      Recommendations `json:"recommendations"`
	RedFlags             []string        `json:"redFlags"`
	CompetitiveAdvantage string          `json:"competitiveAdvantage"`
}

type SkillsAlignment struct {
	MatchedSkills    []string `json:"matchedSkills"`
	PartiallyMatched []string `json:"partiallyMatched"`
	GapAnalysis      string   `json:"gapAnalysis"`
}

type ExperienceMatch struct {
	RelevantExperience string `json:"relevantExperience"`
	LevelAlignment     string `json:"levelAlignment"`
	IndustryFit        string `json:"industryFit"`
}

type Recommendations struct {
	HighPriority                []string `json:"highPriority"`
	MediumPriority              []string `json:"mediumPriority"`
	KeywordOptimization         []string `json:"keywordOptimization"`
	QuantificationOpportunities []string `json:"quantificationOpportunities"`
}

// ActionPlan is derived deterministically from a Result; it is the condensed
// "do this next" view of the full analysis.
type ActionPlan struct {
	ImmediateActions   []string `json:"immediateActions"`
	KeywordIntegration []string `json:"keywordIntegration"`
	MissingKeywords    []string `json:"missingKeywords"`
	SkillGaps          string   `json:"skillGaps"`
	RedFlagsToFix      []string `json:"redFlagsToFix"`
	CompetitiveEdge    string   `json:"competitiveEdge"`
}

// BuildActionPlan condenses a Result into an ActionPlan.
func BuildActionPlan(r Result) ActionPlan {
	return ActionPlan{
		ImmediateActions:   copyStrings(r.Recommendations.HighPriority),
		KeywordIntegration: copyStrings(r.Recommendations.KeywordOptimization),
		MissingKeywords:    copyStrings(r.MissingKeywords),
		SkillGaps:          r.SkillsAlignment.GapAnalysis,
		RedFlagsToFix:      copyStrings(r.RedFlags),
		CompetitiveEdge:    r.CompetitiveAdvantage,
	}
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
