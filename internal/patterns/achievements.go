package patterns

import "regexp"

// QuantifiablePatterns match concrete, numeric achievement statements.
// A description that hits any of these is considered quantified.
var QuantifiablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(\.\d+)?%`),
	regexp.MustCompile(`\$\s?\d[\d,]*(\.\d+)?\s*(k|m|b|million|billion|thousand)?`),
	regexp.MustCompile(`\d+\+`),
	regexp.MustCompile(`(?i)\d[\d,]*\s*(users|customers|clients|employees|people|members|projects|teams|accounts|downloads|requests|transactions)`),
	regexp.MustCompile(`(?i)(increased|decreased|reduced|improved|grew|saved|cut|boosted|raised)\b[^.!?]{0,40}?\d`),
	regexp.MustCompile(`(?i)\d[\d,]*(\.\d+)?\s*(k|m|b|million|billion|thousand)\b`),
	regexp.MustCompile(`(?i)\d+\s*(x|times)\b`),
	regexp.MustCompile(`(?i)\d+\s*(hours?|days?|weeks?|months?)\b`),
}

// starPattern pairs a STAR component with the phrasing that signals it.
type starPattern struct {
	Component string
	Re        *regexp.Regexp
}

// STARPatterns detect the four components of the STAR methodology inside
// experience descriptions. Each component counts once toward the STAR score
// regardless of how many times it matches.
var STARPatterns = []starPattern{
	{"situation", regexp.MustCompile(`(?i)\b(faced|encountered|identified|confronted|inherited|situation|challenge|problem|issue|bottleneck)\b`)},
	{"task", regexp.MustCompile(`(?i)\b(tasked|assigned|charged|needed to|required to|goal|objective|mandate|responsible)\b`)},
	{"action", regexp.MustCompile(`(?i)\b(implemented|developed|created|led|designed|built|executed|launched|initiated|migrated|refactored|negotiated)\b`)},
	{"result", regexp.MustCompile(`(?i)\b(resulting|resulted|achieved|increased|decreased|improved|delivered|saving|saved|generated|earning|yielding)\b`)},
}

// impactPattern pairs an impact category with its detection regex.
type impactPattern struct {
	Category string
	Re       *regexp.Regexp
}

// ImpactPatterns cover the eight classes of high-impact achievement language.
// The impact score rewards breadth: it counts how many distinct categories
// appear, not how often.
var ImpactPatterns = []impactPattern{
	{"revenue", regexp.MustCompile(`(?i)(revenue|sales|arr|mrr)\b[^.!?]{0,40}?\d|\$\s?\d[\d,]*[^.!?]{0,40}?(revenue|sales)`)},
	{"cost_savings", regexp.MustCompile(`(?i)(saved|cut|reduced)\b[^.!?]{0,40}?(cost|budget|spend|expense|\$)`)},
	{"efficiency", regexp.MustCompile(`(?i)(efficiency|productivity|throughput|turnaround|cycle time)\b[^.!?]{0,40}?\d`)},
	{"growth", regexp.MustCompile(`(?i)(grew|growth|increased|expanded|scaled)\b[^.!?]{0,40}?\d`)},
	{"scale", regexp.MustCompile(`(?i)\d[\d,]*\s*(users|customers|clients|requests|transactions|records|devices)`)},
	{"team", regexp.MustCompile(`(?i)(team of|managed|led|mentored|supervised)\s+\d+`)},
	{"performance", regexp.MustCompile(`(?i)(performance|latency|uptime|load time|response time|availability)\b[^.!?]{0,40}?\d`)},
	{"recognition", regexp.MustCompile(`(?i)\b(awarded|award|recognized|ranked|top performer|promoted|patent)\b`)},
}

// YearsOfExperiencePattern finds explicit experience tenure claims such as
// "8+ years" in summaries.
var YearsOfExperiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)

// RoleKeywordPattern and IndustryKeywordPattern together verify that a
// summary states who the candidate is and where they work.
var (
	RoleKeywordPattern     = regexp.MustCompile(`(?i)\b(engineer|developer|manager|analyst|designer|consultant|specialist|director|scientist|lead|architect|administrator|coordinator|accountant|nurse|physician)\b`)
	IndustryKeywordPattern = regexp.MustCompile(`(?i)\b(technology|software|tech|finance|financial|banking|healthcare|medical|clinical|marketing|sales|education|retail|manufacturing|consulting|insurance|logistics)\b`)
)

// BusinessKeywordPattern counts generic business vocabulary across the whole
// resume for the keyword-optimization check.
var BusinessKeywordPattern = regexp.MustCompile(`(?i)\b(management|strategy|strategic|analysis|analytics|development|project|program|team|client|customer|business|process|solution|improvement|leadership|communication|collaboration|innovation|planning|operations|performance|growth|budget|revenue|marketing|sales|product|service|quality|efficiency|stakeholder|initiative|delivery|roadmap)\b`)
