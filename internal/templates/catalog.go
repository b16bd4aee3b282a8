// Package templates ranks the available resume templates against a resume's
// detected industry signal.
package templates

import "github.com/jonathan/resume-checker/internal/types"

// catalog is the static template registry. Industry-tagged templates compete
// on keyword match; general templates act as the fallback.
var catalog = []types.ResumeTemplate{
	{
		ID:          "modern-professional",
		Name:        "Modern Professional",
		Description: "Clean single-column layout that parses well in every ATS",
	},
	{
		ID:          "minimal-classic",
		Name:        "Minimal Classic",
		Description: "Traditional serif layout for conservative applications",
	},
	{
		ID:          "tech-innovator",
		Name:        "Tech Innovator",
		Description: "Skills-forward layout with a prominent technical stack section",
		Industry:    "technology",
	},
	{
		ID:          "finance-executive",
		Name:        "Finance Executive",
		Description: "Results-first layout emphasizing metrics and credentials",
		Industry:    "finance",
	},
	{
		ID:          "healthcare-professional",
		Name:        "Healthcare Professional",
		Description: "Credential-forward layout with licensure and clinical focus",
		Industry:    "healthcare",
	},
	{
		ID:          "compact-one-page",
		Name:        "Compact One Page",
		Description: "Dense single-page layout for early-career resumes",
	},
}

// Catalog returns the registered templates. Callers must not mutate the
// returned slice.
func Catalog() []types.ResumeTemplate {
	return catalog
}
