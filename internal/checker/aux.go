package checker

import (
	"math"
	"strings"
	"unicode"

	"github.com/jonathan/resume-checker/internal/patterns"
	"github.com/jonathan/resume-checker/internal/types"
)

// minAuxTextLen is the minimum combined text length before the STAR, impact,
// and industry heuristics produce a meaningful signal.
const minAuxTextLen = 50

// keywordDensity is the ratio of strong-verb occurrences to substantive words
// (longer than three characters) across the summary, experience descriptions,
// and skills, as a rounded percentage.
func keywordDensity(rec *types.ResumeRecord) int {
	var sb strings.Builder
	sb.WriteString(rec.Summary)
	for _, exp := range rec.Experience {
		sb.WriteString(" ")
		sb.WriteString(exp.Description)
	}
	for _, skill := range rec.Skills {
		sb.WriteString(" ")
		sb.WriteString(skill)
	}
	text := sb.String()

	substantive := 0
	for _, w := range strings.Fields(text) {
		if len(w) > 3 {
			substantive++
		}
	}
	if substantive == 0 {
		return 0
	}

	hits := countActionVerbOccurrences(text)
	return int(math.Round(float64(hits) / float64(substantive) * 100))
}

// readabilityScore starts at 100 and penalizes sentences that are too long or
// too short and words that run long, clamped to [0, 100].
func readabilityScore(rec *types.ResumeRecord) int {
	text := strings.TrimSpace(rec.Summary + " " + experienceText(rec))

	sentences := 0
	for _, s := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	words := strings.Fields(text)
	if sentences == 0 || len(words) == 0 {
		return 0
	}

	score := 100

	avgWordsPerSentence := float64(len(words)) / float64(sentences)
	switch {
	case avgWordsPerSentence > 25:
		score -= 20
	case avgWordsPerSentence > 20:
		score -= 10
	case avgWordsPerSentence < 8:
		score -= 15
	}

	letters := 0
	for _, w := range words {
		for _, r := range w {
			if unicode.IsLetter(r) {
				letters++
			}
		}
	}
	avgWordLen := float64(letters) / float64(len(words))
	switch {
	case avgWordLen > 8:
		score -= 15
	case avgWordLen > 7:
		score -= 5
	}

	if score < 0 {
		score = 0
	}
	return score
}

// starScore counts how many of the four STAR components (situation, task,
// action, result) appear anywhere in the experience descriptions, 25 points
// each.
func starScore(rec *types.ResumeRecord) int {
	text := experienceText(rec)
	if len(text) < minAuxTextLen {
		return 0
	}

	matched := 0
	for _, p := range patterns.STARPatterns {
		if p.Re.MatchString(text) {
			matched++
		}
	}
	return matched * 25
}

// impactScore blends breadth of impact language (up to 70 points for hitting
// all eight impact categories) with volume of quantified tokens (5 points
// each, capped at 30).
func impactScore(rec *types.ResumeRecord) int {
	text := strings.TrimSpace(rec.Summary + " " + experienceText(rec))
	if len(text) < minAuxTextLen {
		return 0
	}

	matched := 0
	for _, p := range patterns.ImpactPatterns {
		if p.Re.MatchString(text) {
			matched++
		}
	}
	base := float64(matched) / float64(len(patterns.ImpactPatterns)) * 70

	quant := 5 * countQuantifiableMatches(text)
	if quant > 30 {
		quant = 30
	}

	score := int(math.Round(base)) + quant
	if score > 100 {
		score = 100
	}
	return score
}

// industryMatchFloor is the minimum matched-keyword count before an industry
// match is reported at all.
const industryMatchFloor = 3

// techBonusFloor is the minimum 2025-skill hit count that triggers the tech
// cross-check bonus.
const techBonusFloor = 10

// detectIndustryMatch scores the resume text against each industry profile
// and keeps the best one that clears the keyword floor. A technology match
// additionally earns up to 20 bonus points from the current-skills
// cross-check. Returns nil when the text is too short or no industry
// qualifies.
func detectIndustryMatch(rec *types.ResumeRecord) *types.IndustryMatch {
	text := strings.ToLower(fullResumeText(rec))
	if len(text) < minAuxTextLen {
		return nil
	}

	var best *types.IndustryMatch
	bestPct := 0.0
	for _, ind := range patterns.Industries {
		var matched, missing []string
		for _, kw := range ind.Keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, kw)
			} else {
				missing = append(missing, kw)
			}
		}
		if len(matched) < industryMatchFloor {
			continue
		}
		pct := float64(len(matched)) / float64(len(ind.Keywords)) * 100
		if best == nil || pct > bestPct {
			bestPct = pct
			best = &types.IndustryMatch{
				Industry:        ind.Name,
				MatchPercentage: int(math.Round(pct)),
				MatchedKeywords: matched,
				MissingKeywords: missing,
			}
		}
	}
	if best == nil {
		return nil
	}

	if best.Industry == "technology" {
		techHits := 0
		for _, skill := range patterns.TechSkills2025 {
			if strings.Contains(text, skill) {
				techHits++
			}
		}
		if techHits >= techBonusFloor {
			bonus := techHits
			if bonus > 20 {
				bonus = 20
			}
			best.MatchPercentage += bonus
			if best.MatchPercentage > 100 {
				best.MatchPercentage = 100
			}
		}
	}
	return best
}
