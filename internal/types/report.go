package types

// Pass status tiers derived from the overall score.
const (
	PassExcellent = "excellent"
	PassGood      = "good"
	PassFair      = "fair"
	PassPoor      = "poor"
)

// CategoryResult holds the outcome of a single category checker.
// Score is always within [0, MaxScore]; Passed is true when the score clears
// the category's pass threshold (60% of max, 70% for contact info).
type CategoryResult struct {
	Name     string   `json:"name"`
	Score    float64  `json:"score"`
	MaxScore float64  `json:"maxScore"`
	Issues   []string `json:"issues"`
	Passed   bool     `json:"passed"`
	Weight   float64  `json:"weight"`
}

// IndustryMatch describes the best-scoring alignment between resume text and
// one of the predefined industry keyword profiles.
type IndustryMatch struct {
	Industry        string   `json:"industry"`
	MatchPercentage int      `json:"matchPercentage"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
}

// CheckReport is the full result of an ATS compatibility check. It is
// constructed fresh on every call, never mutated afterwards, and carries no
// identity: identical input yields an identical report.
type CheckReport struct {
	OverallScore     int              `json:"overallScore"`
	Categories       []CategoryResult `json:"categories"`
	Recommendations  []string         `json:"recommendations"`
	PassStatus       string           `json:"passStatus"`
	KeywordDensity   int              `json:"keywordDensity"`
	ReadabilityScore int              `json:"readabilityScore"`
	ImpactScore      int              `json:"impactScore"`
	StarScore        int              `json:"starScore"`
	IndustryMatch    *IndustryMatch   `json:"industryMatch,omitempty"`
}

// Replacement is a single weak-verb substitution found by the enhancer.
// Position is a character offset into the original text; Suggestions are
// ranked strongest first.
type Replacement struct {
	Original    string   `json:"original"`
	Position    int      `json:"position"`
	Suggestions []string `json:"suggestions"`
	Category    string   `json:"category"`
}

// EnhancementResult is the outcome of an action-verb analysis. Replacements
// are ordered by ascending position and never overlap.
type EnhancementResult struct {
	OriginalText string        `json:"originalText"`
	EnhancedText string        `json:"enhancedText"`
	Replacements []Replacement `json:"replacements"`
	Score        int           `json:"score"`
}

// SkillGroup is one category bucket produced by the skill grouper.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// GroupedSkills partitions an input skill list into category groups plus an
// ungrouped remainder. Every input skill appears in exactly one place.
type GroupedSkills struct {
	Groups    []SkillGroup `json:"groups"`
	Ungrouped []string     `json:"ungrouped"`
}

// ResumeTemplate is a catalog entry supplied by the template registry.
// Industry is empty for general-purpose templates.
type ResumeTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry,omitempty"`
}

// TemplateRecommendation ranks a template against a resume. MatchScore is
// comparative, not absolute; MatchedKeywords is capped at ten entries.
type TemplateRecommendation struct {
	Template        ResumeTemplate `json:"template"`
	MatchScore      int            `json:"matchScore"`
	MatchedKeywords []string       `json:"matchedKeywords"`
	Reason          string         `json:"reason"`
}
