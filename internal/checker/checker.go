// Package checker implements the ATS compatibility scoring engine: seven
// weighted category checkers, the score aggregator, auxiliary scores, and
// recommendation prioritization. Everything here is a pure function over the
// resume record; concurrent calls need no coordination.
package checker

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-checker/internal/types"
)

// Category names reported in CheckReport.Categories.
const (
	CategoryContact    = "Contact Information"
	CategorySummary    = "Professional Summary"
	CategoryExperience = "Work Experience"
	CategoryEducation  = "Education"
	CategorySkills     = "Skills"
	CategoryKeywords   = "Keyword Optimization"
	CategoryFormatting = "Formatting"
)

// Fixed per-category importance weights. They encode relative hiring impact
// and feed the weight-normalized composite score.
const (
	weightContact    = 1.0
	weightSummary    = 1.2
	weightExperience = 1.5
	weightEducation  = 0.8
	weightSkills     = 1.3
	weightKeywords   = 1.4
	weightFormatting = 1.0
)

// Pass thresholds: a category passes at 60% of its max score, except contact
// info which is held to 70%.
const (
	passRatio        = 0.6
	passRatioContact = 0.7
)

// Overall pass-status tiers.
const (
	excellentThreshold = 80
	goodThreshold      = 65
	fairThreshold      = 50
)

// categoryOutcome is what each checker returns: the scored category plus the
// free-text recommendations it wants surfaced.
type categoryOutcome struct {
	category        types.CategoryResult
	recommendations []string
}

// CheckATSCompatibility scores a resume record against all seven category
// checkers and assembles the full report. The record pointer must be non-nil;
// empty fields inside it are scoring conditions, never errors.
func CheckATSCompatibility(rec *types.ResumeRecord) (*types.CheckReport, error) {
	if rec == nil {
		return nil, fmt.Errorf("resume record is nil")
	}

	// Fixed evaluation order; it only affects the order recommendations are
	// collected in, never the scores themselves.
	outcomes := []categoryOutcome{
		checkContact(rec.PersonalInfo),
		checkSummary(rec.Summary),
		checkExperience(rec.Experience),
		checkEducation(rec.Education),
		checkSkills(rec.Skills),
		checkKeywords(rec),
		checkFormatting(rec),
	}

	categories := make([]types.CategoryResult, 0, len(outcomes))
	var recommendations []string
	for _, o := range outcomes {
		categories = append(categories, o.category)
		recommendations = append(recommendations, o.recommendations...)
	}

	report := &types.CheckReport{
		OverallScore:     aggregateScore(categories),
		Categories:       categories,
		Recommendations:  prioritizeRecommendations(recommendations),
		KeywordDensity:   keywordDensity(rec),
		ReadabilityScore: readabilityScore(rec),
		StarScore:        starScore(rec),
		ImpactScore:      impactScore(rec),
		IndustryMatch:    detectIndustryMatch(rec),
	}
	report.PassStatus = passStatus(report.OverallScore)
	return report, nil
}

// aggregateScore computes the weight-normalized average of per-category
// percentages. This is not a raw point sum: each category contributes its
// percentage times its weight, divided by the total possible weighted
// percentage.
func aggregateScore(categories []types.CategoryResult) int {
	var weightedSum, weightTotal float64
	for _, c := range categories {
		if c.MaxScore <= 0 {
			continue
		}
		pct := c.Score / c.MaxScore * 100
		weightedSum += pct * c.Weight
		weightTotal += 100 * c.Weight
	}
	if weightTotal == 0 {
		return 0
	}
	return int(math.Round(100 * weightedSum / weightTotal))
}

func passStatus(overall int) string {
	switch {
	case overall >= excellentThreshold:
		return types.PassExcellent
	case overall >= goodThreshold:
		return types.PassGood
	case overall >= fairThreshold:
		return types.PassFair
	default:
		return types.PassPoor
	}
}

// newCategory finalizes a category result, clamping the score into bounds and
// deriving the pass flag.
func newCategory(name string, score, maxScore, weight float64, issues []string) types.CategoryResult {
	score = clamp(score, maxScore)
	ratio := passRatio
	if name == CategoryContact {
		ratio = passRatioContact
	}
	if issues == nil {
		issues = []string{}
	}
	return types.CategoryResult{
		Name:     name,
		Score:    score,
		MaxScore: maxScore,
		Issues:   issues,
		Passed:   score >= ratio*maxScore,
		Weight:   weight,
	}
}
