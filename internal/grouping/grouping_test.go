package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeSkill(t *testing.T) {
	cases := map[string]string{
		"Python":                    "Programming Languages",
		"C++":                       "Programming Languages",
		"C#":                        "Programming Languages",
		"React":                     "Frameworks & Libraries",
		"Node.js":                   "Frameworks & Libraries",
		"PostgreSQL":                "Databases",
		"AWS":                       "Cloud & DevOps",
		"Machine Learning":          "Machine Learning & AI",
		"Excel":                     "Data Science & Analytics",
		"Figma":                     "Design & UX",
		"Leadership":                "Soft Skills",
		"Underwater Basket Weaving": "",
		"":                          "",
		"!!!":                       "",
	}
	for skill, want := range cases {
		assert.Equal(t, want, CategorizeSkill(skill), "skill %q", skill)
	}
}

func TestGroupSkills_MixedList(t *testing.T) {
	grouped := GroupSkills([]string{"Python", "React", "Leadership", "Quantum Flux Whatsit"})

	require.Len(t, grouped.Groups, 3)
	assert.Equal(t, "Programming Languages", grouped.Groups[0].Category)
	assert.Equal(t, []string{"Python"}, grouped.Groups[0].Skills)
	assert.Equal(t, "Frameworks & Libraries", grouped.Groups[1].Category)
	assert.Equal(t, "Soft Skills", grouped.Groups[2].Category)
	assert.Equal(t, []string{"Quantum Flux Whatsit"}, grouped.Ungrouped)
}

func TestGroupSkills_EverySkillLandsSomewhere(t *testing.T) {
	skills := []string{
		"Python", "Python", "React", "Docker", "Leadership",
		"Gibberish12345xyz", "SQL", "Figma", "",
	}

	grouped := GroupSkills(skills)

	total := len(grouped.Ungrouped)
	for _, g := range grouped.Groups {
		total += len(g.Skills)
	}
	// Nothing is deduplicated or dropped, empty entries included.
	assert.Equal(t, len(skills), total)
}

func TestGroupSkills_OrdersBySize(t *testing.T) {
	grouped := GroupSkills([]string{"Python", "Java", "Rust", "React"})

	require.Len(t, grouped.Groups, 2)
	assert.Equal(t, "Programming Languages", grouped.Groups[0].Category)
	assert.Len(t, grouped.Groups[0].Skills, 3)
	assert.Equal(t, "Frameworks & Libraries", grouped.Groups[1].Category)
}

func TestGroupSkills_EmptyInput(t *testing.T) {
	grouped := GroupSkills(nil)

	assert.Empty(t, grouped.Groups)
	assert.NotNil(t, grouped.Ungrouped)
	assert.Empty(t, grouped.Ungrouped)
}

func TestNormalizeSkill_StripsDecoration(t *testing.T) {
	assert.Equal(t, "c++", normalizeSkill("  C++! "))
	assert.Equal(t, "node.js", normalizeSkill("Node.js®"))
}
