// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-checker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCheckReport outputs a human-readable summary of an ATS check report.
func (p *Printer) PrintCheckReport(report *types.CheckReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:  %d/100 (%s)\n", report.OverallScore, report.PassStatus))
	sb.WriteString("\n")

	for _, cat := range report.Categories {
		status := "PASS"
		if !cat.Passed {
			status = "FAIL"
		}
		sb.WriteString(fmt.Sprintf("%-22s %5.1f/%-4.0f %s\n", cat.Name, cat.Score, cat.MaxScore, status))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Keyword density:  %d\n", report.KeywordDensity))
	sb.WriteString(fmt.Sprintf("Readability:      %d\n", report.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("STAR coverage:    %d\n", report.StarScore))
	sb.WriteString(fmt.Sprintf("Impact:           %d\n", report.ImpactScore))
	if report.IndustryMatch != nil {
		sb.WriteString(fmt.Sprintf("Industry:         %s (%d%%)\n",
			report.IndustryMatch.Industry, report.IndustryMatch.MatchPercentage))
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nTop recommendations:\n")
		count := min(len(report.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.Recommendations[i]))
		}
		if len(report.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("ATS Compatibility Report", sb.String())
}

// PrintCategoryIssues outputs every issue found, grouped by category.
func (p *Printer) PrintCategoryIssues(report *types.CheckReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	for _, cat := range report.Categories {
		if len(cat.Issues) == 0 {
			continue
		}
		sb.WriteString(cat.Name + ":\n")
		for _, issue := range cat.Issues {
			sb.WriteString(fmt.Sprintf("  • %s\n", issue))
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("No issues found\n")
	}

	p.printBox("Issues", sb.String())
}

// PrintGroupedSkills outputs a grouped skill classification.
func (p *Printer) PrintGroupedSkills(grouped *types.GroupedSkills) {
	if grouped == nil {
		return
	}

	var sb strings.Builder
	for _, group := range grouped.Groups {
		sb.WriteString(fmt.Sprintf("%s (%d):\n", group.Category, len(group.Skills)))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(group.Skills, ", ")))
	}
	if len(grouped.Ungrouped) > 0 {
		sb.WriteString(fmt.Sprintf("Ungrouped (%d):\n", len(grouped.Ungrouped)))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(grouped.Ungrouped, ", ")))
	}

	p.printBox("Skill Groups", sb.String())
}

// PrintTemplateRecommendations outputs ranked template recommendations.
func (p *Printer) PrintTemplateRecommendations(recs []types.TemplateRecommendation) {
	var sb strings.Builder
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("%d. %s (score %d)\n", i+1, rec.Template.Name, rec.MatchScore))
		sb.WriteString(fmt.Sprintf("   %s\n", rec.Reason))
	}
	if sb.Len() == 0 {
		sb.WriteString("No templates available\n")
	}

	p.printBox("Template Recommendations", sb.String())
}
