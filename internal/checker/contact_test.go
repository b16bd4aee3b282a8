package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-checker/internal/types"
)

func TestCheckContact_FullContact(t *testing.T) {
	out := checkContact(types.PersonalInfo{
		FullName: "Jane Smith",
		Email:    "jane.smith@acme.io",
		Phone:    "+1 (415) 555-0123",
		Location: "San Francisco, CA",
		LinkedIn: "linkedin.com/in/janesmith",
	})

	// name 3+2, email 4+1 (custom domain), phone 4, location 3, linkedin 3
	// = 20, clamped at max.
	assert.Equal(t, 20.0, out.category.Score)
	assert.True(t, out.category.Passed)
	assert.Empty(t, out.category.Issues)
}

func TestCheckContact_EmptyContact(t *testing.T) {
	out := checkContact(types.PersonalInfo{})

	assert.Equal(t, 0.0, out.category.Score)
	assert.False(t, out.category.Passed)
	assert.NotEmpty(t, out.category.Issues)
	assert.NotEmpty(t, out.recommendations)
}

func TestCheckContact_UnprofessionalEmail(t *testing.T) {
	out := checkContact(types.PersonalInfo{
		FullName: "Jane Smith",
		Email:    "coolninja420@gmail.com",
		Phone:    "415-555-0123",
		Location: "San Francisco, CA",
		LinkedIn: "linkedin.com/in/janesmith",
	})

	// name 3+2, email 4-1 (freemail gets no bonus, handle penalized),
	// phone 4, location 3, linkedin 3 = 18.
	assert.Equal(t, 18.0, out.category.Score)
	assert.Contains(t, out.category.Issues[0], "unprofessional")
}

func TestCheckContact_PartialLinkedIn(t *testing.T) {
	out := checkContact(types.PersonalInfo{LinkedIn: "janesmith"})

	// Bare handle earns the partial point plus an issue.
	assert.Equal(t, 1.0, out.category.Score)
	assert.Contains(t, out.category.Issues[len(out.category.Issues)-1], "linkedin.com/in/")
}

func TestCheckContact_ShortPhone(t *testing.T) {
	full := checkContact(types.PersonalInfo{Phone: "415-555-0123"})
	short := checkContact(types.PersonalInfo{Phone: "555-0123"})

	// 10 digits earn 4 points, 7 digits only 2.
	assert.Equal(t, 4.0, full.category.Score)
	assert.Equal(t, 2.0, short.category.Score)
}

func TestCheckContact_VagueLocation(t *testing.T) {
	precise := checkContact(types.PersonalInfo{Location: "Austin, TX"})
	vague := checkContact(types.PersonalInfo{Location: "Texas"})

	assert.Equal(t, 3.0, precise.category.Score)
	assert.Equal(t, 2.0, vague.category.Score)
}
