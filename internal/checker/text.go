package checker

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-checker/internal/patterns"
	"github.com/jonathan/resume-checker/internal/types"
)

// actionVerbRe matches any strong action verb as a whole word, built once
// from the shared verb table.
var actionVerbRe = regexp.MustCompile(`(?i)\b(` + strings.Join(patterns.ActionVerbs, "|") + `)\b`)

// countActionVerbOccurrences counts every strong-verb hit in text, repeats
// included.
func countActionVerbOccurrences(text string) int {
	return len(actionVerbRe.FindAllString(text, -1))
}

// countDistinctActionVerbs counts how many different strong verbs appear.
func countDistinctActionVerbs(text string) int {
	seen := make(map[string]bool)
	for _, m := range actionVerbRe.FindAllString(text, -1) {
		seen[strings.ToLower(m)] = true
	}
	return len(seen)
}

// hasQuantifiable reports whether text contains any quantified achievement.
func hasQuantifiable(text string) bool {
	for _, re := range patterns.QuantifiablePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// countQuantifiableMatches totals quantified-achievement hits across all
// patterns. Overlapping patterns may double count; the impact score caps the
// contribution so this is harmless.
func countQuantifiableMatches(text string) int {
	total := 0
	for _, re := range patterns.QuantifiablePatterns {
		total += len(re.FindAllString(text, -1))
	}
	return total
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// clamp bounds a score into [0, max], protecting against cumulative penalty
// stacking or bonus overflow.
func clamp(score, max float64) float64 {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}

// fullResumeText serializes every textual field of the record into one
// space-joined string for whole-resume keyword scans.
func fullResumeText(rec *types.ResumeRecord) string {
	var sb strings.Builder
	sb.WriteString(rec.PersonalInfo.FullName)
	sb.WriteString(" ")
	sb.WriteString(rec.Summary)
	for _, exp := range rec.Experience {
		sb.WriteString(" ")
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Company)
		sb.WriteString(" ")
		sb.WriteString(exp.Description)
	}
	for _, edu := range rec.Education {
		sb.WriteString(" ")
		sb.WriteString(edu.Degree)
		sb.WriteString(" ")
		sb.WriteString(edu.School)
	}
	for _, skill := range rec.Skills {
		sb.WriteString(" ")
		sb.WriteString(skill)
	}
	return strings.TrimSpace(sb.String())
}

// experienceText concatenates all experience descriptions.
func experienceText(rec *types.ResumeRecord) string {
	parts := make([]string, 0, len(rec.Experience))
	for _, exp := range rec.Experience {
		if exp.Description != "" {
			parts = append(parts, exp.Description)
		}
	}
	return strings.Join(parts, " ")
}
