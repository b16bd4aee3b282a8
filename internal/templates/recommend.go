package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-checker/internal/patterns"
	"github.com/jonathan/resume-checker/internal/types"
)

// Keyword tier weights: job titles are the strongest industry signal,
// primary keywords next, contextual vocabulary weakest.
const (
	primaryKeywordWeight    = 3
	contextualKeywordWeight = 2
	jobTitleWeight          = 5
)

// minTextLen is the minimum normalized resume text length before industry
// detection is attempted at all.
const minTextLen = 20

// weakSignalThreshold is the top industry score below which general templates
// are recommended ahead of industry-specific ones.
const weakSignalThreshold = 10

// maxMatchedKeywords caps the matched-term list on each recommendation.
const maxMatchedKeywords = 10

// nonAlnumPattern collapses the resume text to lowercase words so multi-word
// phrases match regardless of punctuation.
var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]+`)

// RecommendTemplates scores the resume against each industry-tagged template
// and returns all templates ordered by descending match score. Resumes with
// too little text, or with only a weak industry signal, get the general
// templates first so nobody is pushed into an industry layout on noise.
func RecommendTemplates(rec *types.ResumeRecord) []types.TemplateRecommendation {
	text := normalizeText(rec)

	general, industry := splitCatalog()
	if len(text) < minTextLen {
		return generalRecommendations(general, "Not enough resume content to detect an industry")
	}

	scored := make([]types.TemplateRecommendation, 0, len(industry))
	for _, tpl := range industry {
		profile, ok := industryProfile(tpl.Industry)
		if !ok {
			continue
		}
		score, matched := scoreIndustry(text, profile)
		reason := fmt.Sprintf("Matched %d %s terms in your resume", len(matched), profile.Name)
		if score == 0 {
			reason = fmt.Sprintf("No %s signal detected in your resume", profile.Name)
		}
		if len(matched) > maxMatchedKeywords {
			matched = matched[:maxMatchedKeywords]
		}
		scored = append(scored, types.TemplateRecommendation{
			Template:        tpl,
			MatchScore:      score,
			MatchedKeywords: matched,
			Reason:          reason,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	generals := generalRecommendations(general, "Versatile layout that works for any industry")
	if len(scored) == 0 || scored[0].MatchScore < weakSignalThreshold {
		// Weak signal: do not force an industry template.
		return append(generals, scored...)
	}
	return append(scored, generals...)
}

// scoreIndustry sums the three keyword tiers for one industry profile and
// returns the matched terms deduplicated across tiers.
func scoreIndustry(text string, profile patterns.IndustryProfile) (int, []string) {
	score := 0
	seen := make(map[string]bool)
	var matched []string

	record := func(term string, weight int) {
		score += weight
		if !seen[term] {
			seen[term] = true
			matched = append(matched, term)
		}
	}

	for _, kw := range profile.Keywords {
		if containsTerm(text, kw) {
			record(kw, primaryKeywordWeight)
		}
	}
	for _, kw := range profile.Contextual {
		if containsTerm(text, kw) {
			record(kw, contextualKeywordWeight)
		}
	}
	for _, title := range profile.JobTitles {
		if containsTerm(text, title) {
			record(title, jobTitleWeight)
		}
	}
	return score, matched
}

// containsTerm matches a keyword or phrase against the normalized text. Terms
// are normalized the same way as the text so "ci/cd" matches "ci cd".
func containsTerm(text, term string) bool {
	normalized := strings.TrimSpace(nonAlnumPattern.ReplaceAllString(strings.ToLower(term), " "))
	if normalized == "" {
		return false
	}
	return strings.Contains(text, normalized)
}

func normalizeText(rec *types.ResumeRecord) string {
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
	lower := strings.ToLower(sb.String())
	return strings.TrimSpace(nonAlnumPattern.ReplaceAllString(lower, " "))
}

func splitCatalog() (general, industry []types.ResumeTemplate) {
	for _, tpl := range Catalog() {
		if tpl.Industry == "" {
			general = append(general, tpl)
		} else {
			industry = append(industry, tpl)
		}
	}
	return general, industry
}

func industryProfile(name string) (patterns.IndustryProfile, bool) {
	for _, p := range patterns.Industries {
		if p.Name == name {
			return p, true
		}
	}
	return patterns.IndustryProfile{}, false
}

func generalRecommendations(general []types.ResumeTemplate, reason string) []types.TemplateRecommendation {
	out := make([]types.TemplateRecommendation, 0, len(general))
	for _, tpl := range general {
		out = append(out, types.TemplateRecommendation{
			Template:        tpl,
			MatchScore:      0,
			MatchedKeywords: []string{},
			Reason:          reason,
		})
	}
	return out
}
