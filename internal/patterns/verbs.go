// Package patterns holds the static keyword and regex libraries the scoring
// heuristics draw on. All tables are package-level and treated as immutable;
// nothing in this package mutates them after init.
package patterns

// WeakVerb maps a weak verb or phrase to ranked stronger replacements.
type WeakVerb struct {
	Phrase      string
	Suggestions []string
	Category    string
}

// Replacement categories used by the enhancer.
const (
	CategoryLeadership    = "Leadership"
	CategoryAchievement   = "Achievement"
	CategoryDevelopment   = "Development"
	CategoryCollaboration = "Collaboration"
	CategoryImprovement   = "Improvement"
	CategoryExecution     = "Execution"
)

// WeakVerbs is the substitution table for the action-verb enhancer.
// Multi-word phrases must be matched before their single-word suffixes
// ("was responsible for" before "was"); the enhancer sorts by phrase length
// descending so table order here does not matter.
var WeakVerbs = []WeakVerb{
	{"was responsible for", []string{"Led", "Directed", "Managed", "Oversaw", "Spearheaded"}, CategoryLeadership},
	{"were responsible for", []string{"Led", "Directed", "Managed", "Oversaw", "Spearheaded"}, CategoryLeadership},
	{"is responsible for", []string{"Leads", "Directs", "Manages", "Oversees", "Drives"}, CategoryLeadership},
	{"responsible for", []string{"Led", "Directed", "Managed", "Oversaw", "Owned"}, CategoryLeadership},
	{"was in charge of", []string{"Led", "Headed", "Directed", "Commanded", "Supervised"}, CategoryLeadership},
	{"was involved in", []string{"Contributed to", "Drove", "Shaped", "Advanced", "Championed"}, CategoryCollaboration},
	{"participated in", []string{"Contributed to", "Collaborated on", "Drove", "Co-led", "Supported"}, CategoryCollaboration},
	{"took part in", []string{"Contributed to", "Collaborated on", "Engaged in", "Drove", "Co-led"}, CategoryCollaboration},
	{"was part of", []string{"Contributed to", "Collaborated with", "Partnered with", "Supported", "Joined"}, CategoryCollaboration},
	{"assisted with", []string{"Supported", "Facilitated", "Enabled", "Coordinated", "Contributed to"}, CategoryCollaboration},
	{"assisted in", []string{"Supported", "Facilitated", "Enabled", "Coordinated", "Accelerated"}, CategoryCollaboration},
	{"helped with", []string{"Facilitated", "Enabled", "Supported", "Advanced", "Streamlined"}, CategoryCollaboration},
	{"helped to", []string{"Enabled", "Facilitated", "Drove", "Accelerated", "Empowered"}, CategoryCollaboration},
	{"worked on", []string{"Developed", "Built", "Engineered", "Delivered", "Executed"}, CategoryDevelopment},
	{"worked with", []string{"Collaborated with", "Partnered with", "Coordinated with", "Engaged", "Consulted"}, CategoryCollaboration},
	{"in charge of", []string{"Led", "Directed", "Oversaw", "Managed", "Headed"}, CategoryLeadership},
	{"made sure", []string{"Ensured", "Guaranteed", "Verified", "Validated", "Secured"}, CategoryExecution},
	{"dealt with", []string{"Resolved", "Managed", "Addressed", "Negotiated", "Handled"}, CategoryExecution},
	{"helped", []string{"Facilitated", "Enabled", "Supported", "Accelerated", "Empowered"}, CategoryCollaboration},
	{"worked", []string{"Delivered", "Executed", "Performed", "Operated", "Produced"}, CategoryExecution},
	{"made", []string{"Created", "Produced", "Built", "Crafted", "Generated"}, CategoryDevelopment},
	{"did", []string{"Executed", "Performed", "Completed", "Accomplished", "Delivered"}, CategoryExecution},
	{"used", []string{"Leveraged", "Utilized", "Applied", "Employed", "Deployed"}, CategoryExecution},
	{"got", []string{"Achieved", "Attained", "Secured", "Earned", "Obtained"}, CategoryAchievement},
	{"handled", []string{"Managed", "Directed", "Coordinated", "Administered", "Orchestrated"}, CategoryExecution},
	{"fixed", []string{"Resolved", "Remediated", "Repaired", "Corrected", "Restored"}, CategoryImprovement},
	{"tried to", []string{"Strove to", "Worked to", "Pursued", "Drove efforts to", "Pushed to"}, CategoryExecution},
	{"was", []string{"Served as", "Acted as", "Performed as", "Operated as", "Functioned as"}, CategoryExecution},
}

// ActionVerbs are the strong verbs the checkers look for at the start of
// accomplishment statements. Kept lowercase; matching is case-insensitive.
var ActionVerbs = []string{
	"achieved", "accelerated", "architected", "automated", "built",
	"championed", "created", "decreased", "delivered", "designed",
	"developed", "directed", "drove", "engineered", "established",
	"executed", "expanded", "generated", "grew", "implemented",
	"improved", "increased", "initiated", "launched", "led",
	"managed", "mentored", "negotiated", "optimized", "orchestrated",
	"overhauled", "oversaw", "pioneered", "reduced", "redesigned",
	"resolved", "scaled", "shipped", "spearheaded", "streamlined",
	"transformed",
}
