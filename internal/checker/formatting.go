package checker

import (
	"strings"

	"github.com/jonathan/resume-checker/internal/patterns"
	"github.com/jonathan/resume-checker/internal/types"
)

const formattingMaxScore = 15

// checkFormatting scores ATS-unfriendly formatting: problematic characters,
// punctuation runs, inconsistent date formats, overall length, and missing
// top-level sections.
func checkFormatting(rec *types.ResumeRecord) categoryOutcome {
	var score float64
	var issues, recs []string

	text := fullResumeText(rec)
	if strings.TrimSpace(text) == "" {
		issues = append(issues, "Resume has no content to evaluate for formatting")
		return categoryOutcome{
			category: newCategory(CategoryFormatting, 0, formattingMaxScore, weightFormatting, issues),
		}
	}

	// Characters that break ATS text extraction.
	if !patterns.ProblematicCharPattern.MatchString(text) {
		score += 4
	} else {
		score++
		issues = append(issues, "Resume contains special characters (smart quotes, symbols, emoji) that confuse ATS parsers")
		recs = append(recs, "Replace special characters and symbols with plain text")
	}

	// Decorative punctuation runs.
	if !patterns.ConsecutivePunctPattern.MatchString(text) {
		score += 2
	} else {
		score++
		issues = append(issues, "Runs of repeated punctuation found; remove decorative separators")
	}

	// Date format consistency across the whole resume.
	if countDateFormatFamilies(rec) <= 1 {
		score += 3
	} else {
		score++
		issues = append(issues, "Dates use mixed formats; pick one style and apply it everywhere")
	}

	// Overall content length.
	words := wordCount(text)
	switch {
	case words >= 400 && words <= 800:
		score += 3
	case words >= 300 && words <= 1000:
		score += 2
	case words >= 200:
		score++
		issues = append(issues, "Resume content is thin; expand your experience descriptions")
	default:
		issues = append(issues, "Resume content is far too short for ATS matching")
	}

	// All five top-level sections populated.
	missing := missingSections(rec)
	if len(missing) == 0 {
		score += 3
	} else {
		score++
		issues = append(issues, "Missing resume sections: "+strings.Join(missing, ", "))
	}

	return categoryOutcome{
		category:        newCategory(CategoryFormatting, score, formattingMaxScore, weightFormatting, issues),
		recommendations: recs,
	}
}

// countDateFormatFamilies counts how many distinct date styles (slash, dash,
// text month) appear across all experience and education dates.
func countDateFormatFamilies(rec *types.ResumeRecord) int {
	var dates []string
	for _, exp := range rec.Experience {
		dates = append(dates, exp.StartDate, exp.EndDate)
	}
	for _, edu := range rec.Education {
		dates = append(dates, edu.GraduationDate)
	}

	var slash, dash, text bool
	for _, d := range dates {
		if strings.TrimSpace(d) == "" {
			continue
		}
		switch {
		case patterns.DateSlashPattern.MatchString(d):
			slash = true
		case patterns.DateDashPattern.MatchString(d):
			dash = true
		case patterns.DateTextPattern.MatchString(d):
			text = true
		}
	}

	families := 0
	for _, used := range []bool{slash, dash, text} {
		if used {
			families++
		}
	}
	return families
}

func missingSections(rec *types.ResumeRecord) []string {
	var missing []string
	if strings.TrimSpace(rec.PersonalInfo.FullName) == "" && strings.TrimSpace(rec.PersonalInfo.Email) == "" {
		missing = append(missing, "contact information")
	}
	if strings.TrimSpace(rec.Summary) == "" {
		missing = append(missing, "summary")
	}
	if len(rec.Experience) == 0 {
		missing = append(missing, "experience")
	}
	if len(rec.Education) == 0 {
		missing = append(missing, "education")
	}
	if len(rec.Skills) == 0 {
		missing = append(missing, "skills")
	}
	return missing
}
