// Package grouping classifies flat skill lists into the standard skill
// categories via keyword matching.
package grouping

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-checker/internal/patterns"
	"github.com/jonathan/resume-checker/internal/types"
)

// normalizePattern strips everything a skill name cannot legitimately
// contain, keeping word characters plus "+", "#", "." and "-" for names like
// "C++", "C#", and "Node.js".
var normalizePattern = regexp.MustCompile(`[^\w\s+#.\-]`)

// CategorizeSkill returns the category name for a skill, or "" when no
// category matches. Matching is three-way per keyword: exact equality, skill
// contains keyword, or keyword contains skill. The first category in table
// order wins, so an early broad keyword can shadow a more specific later
// match; this is a known imprecision kept for compatibility.
func CategorizeSkill(skill string) string {
	normalized := normalizeSkill(skill)
	if normalized == "" {
		return ""
	}
	for _, category := range patterns.SkillCategories {
		for _, keyword := range category.Keywords {
			if normalized == keyword ||
				strings.Contains(normalized, keyword) ||
				strings.Contains(keyword, normalized) {
				return category.Name
			}
		}
	}
	return ""
}

// GroupSkills partitions skills into category groups plus an ungrouped
// remainder. Every input skill lands in exactly one place; nothing is
// deduplicated or lost. Groups are ordered by descending member count, with
// table order breaking ties.
func GroupSkills(skills []string) types.GroupedSkills {
	byCategory := make(map[string][]string)
	ungrouped := []string{}
	for _, skill := range skills {
		category := CategorizeSkill(skill)
		if category == "" {
			ungrouped = append(ungrouped, skill)
			continue
		}
		byCategory[category] = append(byCategory[category], skill)
	}

	groups := make([]types.SkillGroup, 0, len(byCategory))
	for _, category := range patterns.SkillCategories {
		if members, ok := byCategory[category.Name]; ok {
			groups = append(groups, types.SkillGroup{Category: category.Name, Skills: members})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Skills) > len(groups[j].Skills)
	})

	return types.GroupedSkills{Groups: groups, Ungrouped: ungrouped}
}

func normalizeSkill(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	normalized = normalizePattern.ReplaceAllString(normalized, "")
	return strings.TrimSpace(normalized)
}
