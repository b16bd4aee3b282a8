package patterns

import "regexp"

// ProblematicCharPattern flags characters that commonly break ATS text
// extraction: smart quotes, ellipses, box drawing, arrows, and emoji.
var ProblematicCharPattern = regexp.MustCompile("[‘’“”…©®™←-⇿─-╿☀-⛿\U0001F300-\U0001FAFF]")

// ConsecutivePunctPattern flags runs of three or more punctuation marks,
// which usually indicate decorative separators ATS parsers trip over.
var ConsecutivePunctPattern = regexp.MustCompile(`[!?.,;:]{3,}`)

// Date format families. A resume should stick to one family across all of
// its experience and education dates.
var (
	DateSlashPattern = regexp.MustCompile(`\d{1,2}/\d{2,4}`)
	DateDashPattern  = regexp.MustCompile(`\d{4}-\d{1,2}`)
	DateTextPattern  = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}`)
)

// BulletMarkerPattern counts bullet markers in experience descriptions. The
// glyph set matches what the enhancer splits on, plus plain "-" and "*" list
// markers at line starts.
var BulletMarkerPattern = regexp.MustCompile(`(?m)^\s*[-*\x{2022}\x{25AA}\x{25E6}\x{27A4}\x{2192}\x{25BA}\x{25A0}\x{25A1}\x{25CF}\x{25CB}]`)

// BulletDelimiterPattern splits multi-bullet text into individual lines for
// per-bullet enhancement.
var BulletDelimiterPattern = regexp.MustCompile(`[\n\x{2022}\x{25AA}\x{25E6}\x{27A4}\x{2192}\x{25BA}\x{25A0}\x{25A1}\x{25CF}\x{25CB}]+`)

// Contact heuristics.
var (
	// EmailPattern is deliberately RFC-light; upstream parsers already
	// reject garbage, this only gates the scoring bonus.
	EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// UnprofessionalEmailPattern penalizes handles recruiters flag.
	UnprofessionalEmailPattern = regexp.MustCompile(`(?i)\d{4,}|sexy|hot|cool|ninja|420|69`)

	// ProperNamePattern matches "First Last" style capitalization.
	ProperNamePattern = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+)+$`)

	// NameNoisePattern finds characters that do not belong in a name.
	NameNoisePattern = regexp.MustCompile(`[^a-zA-Z\s.\-]`)

	NonDigitPattern = regexp.MustCompile(`\D`)
)

// FreemailDomains are consumer mail providers; a custom domain earns a small
// professionalism bonus.
var FreemailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"aol.com":        true,
	"icloud.com":     true,
	"mail.com":       true,
	"protonmail.com": true,
	"gmx.com":        true,
	"live.com":       true,
}
