package checker

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-checker/internal/types"
)

const educationMaxScore = 15

// degreeTypePattern recognizes an explicit degree type in the degree field.
var degreeTypePattern = regexp.MustCompile(`(?i)\b(bachelor|master|phd|ph\.d|doctorate|associate|mba|b\.?s\.?c?|m\.?s\.?c?|b\.?a\.?|m\.?a\.?|b\.?eng|m\.?eng)\b`)

// gpaValuePattern pulls the numeric part out of GPA strings like "3.8" or
// "3.8/4.0".
var gpaValuePattern = regexp.MustCompile(`\d\.\d+|\d`)

// checkEducation scores the education section. The first (most recent) entry
// carries most of the weight; later entries earn a flat point for naming a
// degree.
func checkEducation(entries []types.Education) categoryOutcome {
	if len(entries) == 0 {
		return categoryOutcome{
			category: newCategory(CategoryEducation, 0, educationMaxScore, weightEducation,
				[]string{"No education listed"}),
			recommendations: []string{"Add your education with degree, school, and graduation date"},
		}
	}

	var score float64
	var issues, recs []string

	// Entry count, capped so long academic histories do not dominate.
	countScore := float64(len(entries)) * 2
	if countScore > 4 {
		countScore = 4
	}
	score += countScore

	first := entries[0]
	if strings.TrimSpace(first.Degree) != "" {
		score += 4
		if !degreeTypePattern.MatchString(first.Degree) {
			issues = append(issues, "Specify your degree type (e.g. Bachelor of Science)")
		}
	} else {
		issues = append(issues, "Most recent education entry is missing a degree")
	}
	if strings.TrimSpace(first.School) != "" {
		score += 3
	} else {
		issues = append(issues, "Most recent education entry is missing a school name")
	}
	if strings.TrimSpace(first.GraduationDate) != "" {
		score += 2
	} else {
		recs = append(recs, "Add a graduation date to your education entries")
	}

	// Additional entries earn a flat point for a named degree.
	for _, e := range entries[1:] {
		if strings.TrimSpace(e.Degree) != "" {
			score++
		}
	}

	// Strong GPA is worth surfacing; weak GPAs are simply omitted upstream.
	if gpa, ok := parseGPA(first.GPA); ok {
		switch {
		case gpa >= 3.5:
			score += 2
		case gpa >= 3.0:
			score++
		}
	}

	return categoryOutcome{
		category:        newCategory(CategoryEducation, score, educationMaxScore, weightEducation, issues),
		recommendations: recs,
	}
}

func parseGPA(raw string) (float64, bool) {
	m := gpaValuePattern.FindString(raw)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
