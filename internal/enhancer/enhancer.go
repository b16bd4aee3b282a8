// Package enhancer scans free text for weak resume verbs and proposes
// stronger replacements with a 0-100 strength score. It is independent of the
// category checkers and safe to call concurrently.
package enhancer

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-checker/internal/patterns"
	"github.com/jonathan/resume-checker/internal/types"
)

// bulletSeparator rejoins enhanced bullet lines.
const bulletSeparator = "\n• "

// weakVerbMatcher is a weak-verb table entry with its compiled matcher.
type weakVerbMatcher struct {
	verb patterns.WeakVerb
	re   *regexp.Regexp
}

// matchers holds the weak-verb table sorted by phrase length descending, so
// "was responsible for" is claimed before "was". Built once at init; the
// phrase's internal spaces are relaxed to \s+ so wrapped text still matches.
var matchers = buildMatchers()

func buildMatchers() []weakVerbMatcher {
	out := make([]weakVerbMatcher, 0, len(patterns.WeakVerbs))
	for _, wv := range patterns.WeakVerbs {
		expr := `(?i)\b` + strings.ReplaceAll(regexp.QuoteMeta(wv.Phrase), ` `, `\s+`) + `\b`
		out = append(out, weakVerbMatcher{verb: wv, re: regexp.MustCompile(expr)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].verb.Phrase) > len(out[j].verb.Phrase)
	})
	return out
}

// AnalyzeActionVerbs finds every weak verb in text, proposes ranked stronger
// replacements, and applies the top suggestion of each into the enhanced
// copy. Longer phrases win: a span claimed by "was responsible for" is never
// re-reported for "was". Replacements are ordered by position and never
// overlap.
func AnalyzeActionVerbs(text string) types.EnhancementResult {
	result := types.EnhancementResult{
		OriginalText: text,
		EnhancedText: text,
		Replacements: []types.Replacement{},
	}

	var claimed [][2]int
	for _, m := range matchers {
		for _, span := range m.re.FindAllStringIndex(text, -1) {
			if overlapsAny(claimed, span[0], span[1]) {
				continue
			}
			claimed = append(claimed, [2]int{span[0], span[1]})
			result.Replacements = append(result.Replacements, types.Replacement{
				Original:    text[span[0]:span[1]],
				Position:    span[0],
				Suggestions: m.verb.Suggestions,
				Category:    m.verb.Category,
			})
		}
	}

	sort.Slice(result.Replacements, func(i, j int) bool {
		return result.Replacements[i].Position < result.Replacements[j].Position
	})

	result.EnhancedText = applyReplacements(text, result.Replacements)
	result.Score = strengthScore(len(result.Replacements), len(strings.Fields(text)))
	return result
}

// EnhanceExperienceDescription splits multi-bullet text on newlines and
// common bullet glyphs, enhances each bullet independently, and rejoins the
// lines with "\n• ". The reported positions are offsets into the returned
// OriginalText (the cleaned, rejoined lines); the overall score is the plain
// mean of the per-line scores.
func EnhanceExperienceDescription(text string) types.EnhancementResult {
	var lines []string
	for _, raw := range patterns.BulletDelimiterPattern.Split(text, -1) {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return types.EnhancementResult{
			OriginalText: text,
			EnhancedText: text,
			Replacements: []types.Replacement{},
			Score:        100,
		}
	}

	result := types.EnhancementResult{Replacements: []types.Replacement{}}
	enhanced := make([]string, 0, len(lines))
	offset := 0
	scoreSum := 0
	for i, line := range lines {
		lineResult := AnalyzeActionVerbs(line)
		for _, r := range lineResult.Replacements {
			r.Position += offset
			result.Replacements = append(result.Replacements, r)
		}
		enhanced = append(enhanced, lineResult.EnhancedText)
		scoreSum += lineResult.Score
		offset += len(line)
		if i < len(lines)-1 {
			offset += len(bulletSeparator)
		}
	}

	result.OriginalText = strings.Join(lines, bulletSeparator)
	result.EnhancedText = strings.Join(enhanced, bulletSeparator)
	result.Score = int(math.Round(float64(scoreSum) / float64(len(lines))))
	return result
}

// overlapsAny reports whether [start, end) intersects any claimed span.
func overlapsAny(claimed [][2]int, start, end int) bool {
	for _, c := range claimed {
		if start < c[1] && end > c[0] {
			return true
		}
	}
	return false
}

// applyReplacements substitutes the top suggestion for each replacement,
// working back to front so earlier positions stay valid. The original's
// first-letter case is mirrored onto the replacement.
func applyReplacements(text string, replacements []types.Replacement) string {
	enhanced := text
	for i := len(replacements) - 1; i >= 0; i-- {
		r := replacements[i]
		if len(r.Suggestions) == 0 {
			continue
		}
		substitute := mirrorCase(r.Original, r.Suggestions[0])
		enhanced = enhanced[:r.Position] + substitute + enhanced[r.Position+len(r.Original):]
	}
	return enhanced
}

// mirrorCase gives the replacement the same first-letter case as the original
// slice it displaces.
func mirrorCase(original, replacement string) string {
	origFirst, _ := utf8.DecodeRuneInString(original)
	replFirst, size := utf8.DecodeRuneInString(replacement)
	if origFirst == utf8.RuneError || replFirst == utf8.RuneError {
		return replacement
	}
	if unicode.IsUpper(origFirst) {
		return string(unicode.ToUpper(replFirst)) + replacement[size:]
	}
	return string(unicode.ToLower(replFirst)) + replacement[size:]
}

// strengthScore maps the weak-verb density to 0-100: every weak verb per word
// costs five points per hundred words, floored at zero. Text with no words
// has nothing to weaken.
func strengthScore(replacementCount, words int) int {
	if words == 0 {
		return 100
	}
	score := int(math.Round(100 - float64(replacementCount)/float64(words)*500))
	if score < 0 {
		return 0
	}
	return score
}
