package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const strongSummary = "Experienced Software Engineer with 8+ years in the technology industry. " +
	"Led cross functional teams of twelve engineers to deliver cloud products on aggressive schedules. " +
	"Developed scalable distributed services that processed millions of daily events with consistently low latency. " +
	"Increased customer retention by 25% through data informed product improvements and close partnership with design and sales. " +
	"Passionate about mentoring junior engineers, improving engineering culture, and building reliable systems that customers trust every single day."

func TestCheckSummary_Empty(t *testing.T) {
	out := checkSummary("   ")

	assert.Equal(t, 0.0, out.category.Score)
	assert.False(t, out.category.Passed)
	assert.Equal(t, []string{"No professional summary provided"}, out.category.Issues)
	assert.NotEmpty(t, out.recommendations)
}

func TestCheckSummary_StrongSummary(t *testing.T) {
	out := checkSummary(strongSummary)

	// 73 words in band +6, three distinct strong verbs +4, "25%" +4,
	// role and industry stated +3, "8+ years" +3 = 20.
	assert.Equal(t, 20.0, out.category.Score)
	assert.True(t, out.category.Passed)
	assert.Empty(t, out.category.Issues)
}

func TestCheckSummary_ShortAndVague(t *testing.T) {
	out := checkSummary("Hard working person seeking opportunities")

	// Under 20 words, no strong verbs, nothing quantified, no role or
	// industry, no tenure.
	assert.Equal(t, 0.0, out.category.Score)
	assert.False(t, out.category.Passed)
	assert.NotEmpty(t, out.category.Issues)
}

func TestCheckSummary_PartialSignals(t *testing.T) {
	out := checkSummary("Experienced analyst with 5 years in finance. Led reporting improvements across teams.")

	// 12 words is below every length band (0), one strong verb +1,
	// no quantified figure (0), role plus industry +3, "5 years" +3 = 7.
	assert.Equal(t, 7.0, out.category.Score)
	assert.False(t, out.category.Passed)
}
