package checker

import (
	"strings"

	"github.com/jonathan/resume-checker/internal/patterns"
)

const skillsMaxScore = 20

// checkSkills scores the skills list: count band, technical/soft balance,
// vague filler, and entry length hygiene. Empty skills short-circuit to zero.
func checkSkills(skills []string) categoryOutcome {
	if len(skills) == 0 {
		return categoryOutcome{
			category: newCategory(CategorySkills, 0, skillsMaxScore, weightSkills,
				[]string{"No skills listed on the resume"}),
			recommendations: []string{"Add 10-20 relevant skills, mixing technical abilities with soft skills"},
		}
	}

	var score float64
	var issues, recs []string

	// Count band: 10-20 skills is ideal for keyword coverage without stuffing.
	n := len(skills)
	switch {
	case n >= 10 && n <= 20:
		score += 8
	case n >= 8 && n <= 25:
		score += 6
	case n >= 5:
		score += 4
		issues = append(issues, "Skills list is on the short side; aim for 10-20 entries")
	default:
		score += 2
		issues = append(issues, "Too few skills listed to satisfy ATS keyword matching")
		recs = append(recs, "Expand your skills section to at least 10 relevant entries")
	}

	// Technical vs soft balance.
	technical, soft := 0, 0
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		if containsAny(lower, patterns.TechnicalSkillKeywords) {
			technical++
		}
		if containsAny(lower, patterns.SoftSkillKeywords) {
			soft++
		}
	}
	switch {
	case technical >= 3 && soft >= 2:
		score += 6
	case technical >= 3:
		score += 3
		recs = append(recs, "Add a few soft skills (leadership, communication) alongside your technical skills")
	case soft >= 2:
		score += 3
		recs = append(recs, "Add more technical skills relevant to your target role")
	default:
		issues = append(issues, "Skills section lacks both recognizable technical and soft skills")
	}

	// Vague filler phrases degrade the section.
	vague := 0
	for _, skill := range skills {
		if containsAny(strings.ToLower(skill), patterns.VagueSkillPhrases) {
			vague++
		}
	}
	vagueScore := 3 - float64(vague)
	if vagueScore < 0 {
		vagueScore = 0
	}
	score += vagueScore
	if vague > 0 {
		issues = append(issues, "Vague filler skills found (e.g. \"team player\"); replace them with concrete abilities")
		recs = append(recs, "Replace vague skills with specific, demonstrable ones")
	}

	// Entry length hygiene: short, scannable skill names.
	lengthScore := 3.0
	totalLen := 0
	outOfRange := 0
	for _, skill := range skills {
		l := len(strings.TrimSpace(skill))
		totalLen += l
		if l < 2 || l > 40 {
			outOfRange++
		}
	}
	avgLen := float64(totalLen) / float64(n)
	if avgLen > 25 {
		lengthScore--
		issues = append(issues, "Skill entries are long; keep each to a short phrase")
	}
	lengthScore -= float64(outOfRange)
	if lengthScore < 0 {
		lengthScore = 0
	}
	if outOfRange > 0 {
		issues = append(issues, "Some skill entries are unusually short or long")
	}
	score += lengthScore

	return categoryOutcome{
		category:        newCategory(CategorySkills, score, skillsMaxScore, weightSkills, issues),
		recommendations: recs,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
