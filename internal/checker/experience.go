package checker

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-checker/internal/patterns"
	"github.com/jonathan/resume-checker/internal/types"
)

const experienceMaxScore = 30

// checkExperience scores the work history: entry count, date completeness,
// description depth, verb strength, quantified results, and bullet structure.
// It is the heaviest-weighted category.
func checkExperience(entries []types.Experience) categoryOutcome {
	if len(entries) == 0 {
		return categoryOutcome{
			category: newCategory(CategoryExperience, 0, experienceMaxScore, weightExperience,
				[]string{"No work experience listed"}),
			recommendations: []string{"Add your work experience with job titles, companies, dates, and accomplishment-focused descriptions"},
		}
	}

	var score float64
	var issues, recs []string

	// Entry count band: 3-5 positions is the sweet spot.
	n := len(entries)
	switch {
	case n >= 3 && n <= 5:
		score += 6
	case n >= 2 && n <= 7:
		score += 4
	case n == 1:
		score += 2
		issues = append(issues, "Only one work experience entry listed")
	default:
		score += 4
		issues = append(issues, "More than seven positions listed; trim to the most relevant roles")
	}

	// Per-entry field presence and date completeness.
	complete := 0
	for i, e := range entries {
		if strings.TrimSpace(e.Title) == "" || strings.TrimSpace(e.Company) == "" {
			issues = append(issues, fmt.Sprintf("Experience entry %d is missing a job title or company name", i+1))
		}
		if strings.TrimSpace(e.StartDate) != "" && (e.Current || strings.TrimSpace(e.EndDate) != "") {
			complete++
		}
	}
	dateRatio := float64(complete) / float64(n)
	score += dateRatio * 5
	if dateRatio < 1 {
		issues = append(issues, "Some experience entries are missing start or end dates")
	}

	// Average description length, banded then scaled.
	totalWords := 0
	for _, e := range entries {
		totalWords += wordCount(e.Description)
	}
	avgWords := float64(totalWords) / float64(n)
	var lengthBand float64
	switch {
	case avgWords >= 50 && avgWords <= 150:
		lengthBand = 4
	case avgWords >= 25:
		lengthBand = 3
	case avgWords >= 15:
		lengthBand = 2
	default:
		lengthBand = 1
		issues = append(issues, "Experience descriptions are too brief to show impact")
	}
	if avgWords > 150 {
		lengthBand = 3
		issues = append(issues, "Experience descriptions are very long; tighten to the strongest points")
	}
	lengthScore := lengthBand * 1.75
	if lengthScore > 7 {
		lengthScore = 7
	}
	score += lengthScore

	// Strong verb coverage across entries.
	withVerbs := 0
	for _, e := range entries {
		if countActionVerbOccurrences(e.Description) > 0 {
			withVerbs++
		}
	}
	verbRatio := float64(withVerbs) / float64(n)
	score += verbRatio * 6
	if verbRatio < 0.8 {
		recs = append(recs, "Start experience bullet points with strong action verbs")
	}

	// Quantified achievement coverage across entries.
	withMetrics := 0
	for _, e := range entries {
		if hasQuantifiable(e.Description) {
			withMetrics++
		}
	}
	metricRatio := float64(withMetrics) / float64(n)
	score += metricRatio * 6
	if metricRatio < 0.6 {
		recs = append(recs, "Add quantifiable achievements (numbers, percentages, dollar amounts) to your experience descriptions")
	}

	// Bullet structure bonus: roughly three bullets per role.
	bullets := 0
	for _, e := range entries {
		bullets += len(patterns.BulletMarkerPattern.FindAllString(e.Description, -1))
	}
	if bullets >= 3*n {
		score++
	}

	return categoryOutcome{
		category:        newCategory(CategoryExperience, score, experienceMaxScore, weightExperience, issues),
		recommendations: recs,
	}
}
