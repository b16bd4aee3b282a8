package checker

import (
	"strings"

	"github.com/jonathan/resume-checker/internal/patterns"
)

const summaryMaxScore = 20

// checkSummary scores the professional summary on length, verb strength,
// quantified results, role/industry clarity, and stated experience tenure.
// An empty summary short-circuits to zero.
func checkSummary(summary string) categoryOutcome {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return categoryOutcome{
			category: newCategory(CategorySummary, 0, summaryMaxScore, weightSummary,
				[]string{"No professional summary provided"}),
			recommendations: []string{"Add a professional summary of 50-150 words highlighting your strongest qualifications"},
		}
	}

	var score float64
	var issues, recs []string

	// Length band: 50-150 words reads well in ATS previews.
	words := wordCount(summary)
	switch {
	case words >= 50 && words <= 150:
		score += 6
	case words >= 30 && words <= 200:
		score += 4
		issues = append(issues, "Summary length is outside the ideal 50-150 word range")
	case words >= 20:
		score += 2
		issues = append(issues, "Summary is too short to convey your qualifications")
	default:
		issues = append(issues, "Summary is too short to convey your qualifications")
		recs = append(recs, "Expand your summary to 50-150 words")
	}

	// Distinct strong verbs, scaled toward a 3-verb target.
	verbs := countDistinctActionVerbs(summary)
	switch {
	case verbs >= 3:
		score += 4
	case verbs == 2:
		score += 3
	case verbs == 1:
		score++
		issues = append(issues, "Summary uses few strong action verbs")
	default:
		issues = append(issues, "Summary uses no strong action verbs")
		recs = append(recs, "Use strong action verbs such as \"led\", \"delivered\", or \"increased\" in your summary")
	}

	// Quantified achievement.
	if hasQuantifiable(summary) {
		score += 4
	} else {
		issues = append(issues, "Summary has no quantifiable achievements")
		recs = append(recs, "Add a quantifiable achievement (a number, percentage, or dollar figure) to your summary")
	}

	// Role and industry keywords: both present is ideal, one is partial.
	role := patterns.RoleKeywordPattern.MatchString(summary)
	industry := patterns.IndustryKeywordPattern.MatchString(summary)
	switch {
	case role && industry:
		score += 3
	case role || industry:
		score += 2
	default:
		issues = append(issues, "Summary does not state your role or industry")
	}

	// Explicit years of experience.
	if patterns.YearsOfExperiencePattern.MatchString(summary) {
		score += 3
	} else {
		recs = append(recs, "Mention your years of experience in the summary")
	}

	return categoryOutcome{
		category:        newCategory(CategorySummary, score, summaryMaxScore, weightSummary, issues),
		recommendations: recs,
	}
}
