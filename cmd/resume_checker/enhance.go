package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-checker/internal/enhancer"
	"github.com/spf13/cobra"
)

var (
	enhanceFile    string
	enhanceBullets bool
	enhanceJSON    bool
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance [text]",
	Short: "Suggest stronger action verbs for resume text",
	Long:  `Scan resume text for weak verbs ("was responsible for", "helped with") and propose stronger replacements with a 0-100 strength score.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEnhance,
}

func init() {
	enhanceCmd.Flags().StringVar(&enhanceFile, "file", "", "Read the text from this file instead of the argument")
	enhanceCmd.Flags().BoolVar(&enhanceBullets, "bullets", false, "Treat the text as multi-bullet and enhance each line")
	enhanceCmd.Flags().BoolVar(&enhanceJSON, "json", false, "Print the full result as JSON")
	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(_ *cobra.Command, args []string) error {
	var text string
	switch {
	case enhanceFile != "":
		data, err := os.ReadFile(enhanceFile)
		if err != nil {
			return fmt.Errorf("failed to read text file %s: %w", enhanceFile, err)
		}
		text = string(data)
	case len(args) == 1:
		text = args[0]
	default:
		return fmt.Errorf("provide the text as an argument or via --file")
	}

	result := enhancer.AnalyzeActionVerbs(text)
	if enhanceBullets {
		result = enhancer.EnhanceExperienceDescription(text)
	}

	if enhanceJSON {
		data, err := marshalIndent(result)
		if err != nil {
			return err
		}
		return writeOutput("", data)
	}

	fmt.Printf("Strength score: %d/100\n", result.Score)
	if len(result.Replacements) == 0 {
		fmt.Println("No weak verbs found.")
		return nil
	}
	fmt.Printf("Weak verbs found: %d\n\n", len(result.Replacements))
	for _, r := range result.Replacements {
		fmt.Printf("  %q (%s) → %s\n", r.Original, r.Category, strings.Join(r.Suggestions, ", "))
	}
	fmt.Printf("\nEnhanced:\n%s\n", result.EnhancedText)
	return nil
}
