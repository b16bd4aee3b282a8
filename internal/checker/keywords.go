package checker

import (
	"strings"

	"github.com/jonathan/resume-checker/internal/patterns"
	"github.com/jonathan/resume-checker/internal/types"
)

const keywordsMaxScore = 15

// checkKeywords scores whole-resume keyword optimization: strong-verb volume,
// reuse of listed skills in the narrative, and generic business vocabulary.
func checkKeywords(rec *types.ResumeRecord) categoryOutcome {
	var score float64
	var issues, recs []string

	text := fullResumeText(rec)

	// Total strong-verb occurrences across the whole resume.
	verbHits := countActionVerbOccurrences(text)
	switch {
	case verbHits >= 15:
		score += 5
	case verbHits >= 10:
		score += 4
	case verbHits >= 5:
		score += 3
	default:
		score++
		recs = append(recs, "Use more strong action verbs throughout your resume")
	}

	// Ratio of listed skills that reappear in the body of the resume. A
	// skill mentioned only in the skills section reads as keyword stuffing.
	if reuse, counted := skillReuseRatio(rec); counted {
		switch {
		case reuse >= 0.5:
			score += 5
		case reuse >= 0.3:
			score += 3
		default:
			score++
			recs = append(recs, "Reference your listed skills inside your experience descriptions, not just the skills section")
		}
	} else {
		score++
	}

	// Generic business/industry vocabulary volume.
	bizHits := len(patterns.BusinessKeywordPattern.FindAllString(text, -1))
	switch {
	case bizHits >= 25:
		score += 5
	case bizHits >= 15:
		score += 4
	case bizHits >= 8:
		score += 2
	default:
		score++
		issues = append(issues, "Resume uses little industry vocabulary; mirror the language of target job postings")
	}

	return categoryOutcome{
		category:        newCategory(CategoryKeywords, score, keywordsMaxScore, weightKeywords, issues),
		recommendations: recs,
	}
}

// skillReuseRatio returns the fraction of listed skills that appear at least
// twice in the rest of the resume text. The second return is false when there
// are no usable skills to count.
func skillReuseRatio(rec *types.ResumeRecord) (float64, bool) {
	// Body text deliberately excludes the skills section itself.
	var sb strings.Builder
	sb.WriteString(rec.Summary)
	for _, exp := range rec.Experience {
		sb.WriteString(" ")
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Description)
	}
	for _, edu := range rec.Education {
		sb.WriteString(" ")
		sb.WriteString(edu.Degree)
	}
	body := strings.ToLower(sb.String())

	total, reused := 0, 0
	for _, skill := range rec.Skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s == "" {
			continue
		}
		total++
		if strings.Count(body, s) >= 2 {
			reused++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(reused) / float64(total), true
}
