package checker

import (
	"strings"

	"github.com/jonathan/resume-checker/internal/patterns"
	"github.com/jonathan/resume-checker/internal/types"
)

const contactMaxScore = 20

// checkContact scores the contact section: name quality, email
// professionalism, phone plausibility, location precision, and LinkedIn.
func checkContact(info types.PersonalInfo) categoryOutcome {
	var score float64
	var issues, recs []string

	// Name: presence, then proper "First Last" capitalization, with a
	// penalty for stray characters.
	name := strings.TrimSpace(info.FullName)
	if name != "" {
		score += 3
		if patterns.ProperNamePattern.MatchString(name) {
			score += 2
		}
		if patterns.NameNoisePattern.MatchString(name) {
			score--
			issues = append(issues, "Name contains characters that may confuse ATS parsers")
		}
	} else {
		issues = append(issues, "Full name is missing")
		recs = append(recs, "Add your full name to the contact section")
	}

	// Email: RFC-light validity, custom-domain bonus, unprofessional-handle
	// penalty.
	email := strings.TrimSpace(info.Email)
	if email != "" && patterns.EmailPattern.MatchString(email) {
		score += 4
		local, domain, _ := strings.Cut(email, "@")
		if !patterns.FreemailDomains[strings.ToLower(domain)] {
			score++
		}
		if patterns.UnprofessionalEmailPattern.MatchString(local) {
			score--
			issues = append(issues, "Email address looks unprofessional; consider a plain name-based handle")
		}
	} else {
		issues = append(issues, "Email address is missing or invalid")
		recs = append(recs, "Add a valid, professional email address to your contact information")
	}

	// Phone: judged purely on digit count so formatting is irrelevant.
	digits := len(patterns.NonDigitPattern.ReplaceAllString(info.Phone, ""))
	switch {
	case digits >= 10 && digits <= 15:
		score += 4
	case digits >= 7 && digits <= 9:
		score += 2
		issues = append(issues, "Phone number looks incomplete; include an area or country code")
	default:
		issues = append(issues, "Phone number is missing")
		recs = append(recs, "Add a phone number to your contact information")
	}

	// Location: "City, ST" style beats a single word.
	location := strings.TrimSpace(info.Location)
	switch {
	case strings.Contains(location, ",") || len(strings.Fields(location)) >= 2:
		score += 3
	case location != "":
		score += 2
		issues = append(issues, "Location is vague; use \"City, State\" format")
	default:
		issues = append(issues, "Location is missing")
		recs = append(recs, "Add your city and state to your contact information")
	}

	// LinkedIn: full profile URL gets full credit, anything else partial.
	linkedin := strings.ToLower(strings.TrimSpace(info.LinkedIn))
	switch {
	case strings.Contains(linkedin, "linkedin.com/in/"):
		score += 3
	case linkedin != "":
		score++
		issues = append(issues, "LinkedIn URL should use the linkedin.com/in/ profile form")
	default:
		recs = append(recs, "Add a LinkedIn profile URL to your contact information")
	}

	return categoryOutcome{
		category:        newCategory(CategoryContact, score, contactMaxScore, weightContact, issues),
		recommendations: recs,
	}
}
