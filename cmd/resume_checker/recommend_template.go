package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-checker/internal/observability"
	"github.com/jonathan/resume-checker/internal/templates"
	"github.com/spf13/cobra"
)

var (
	recommendResume string
	recommendJSON   bool
)

var recommendTemplateCmd = &cobra.Command{
	Use:   "recommend-template",
	Short: "Rank resume templates by industry match",
	Long:  `Score a resume against the industry keyword profiles and rank the available templates, best match first.`,
	RunE:  runRecommendTemplate,
}

func init() {
	recommendTemplateCmd.Flags().StringVar(&recommendResume, "resume", "", "Path to a resume JSON file")
	recommendTemplateCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print the recommendations as JSON")
	rootCmd.AddCommand(recommendTemplateCmd)
}

func runRecommendTemplate(_ *cobra.Command, _ []string) error {
	if recommendResume == "" {
		return fmt.Errorf("--resume is required")
	}

	rec, err := loadResumeRecord(recommendResume)
	if err != nil {
		return err
	}

	recommendations := templates.RecommendTemplates(rec)

	if recommendJSON {
		data, err := marshalIndent(recommendations)
		if err != nil {
			return err
		}
		return writeOutput("", data)
	}

	observability.NewPrinter(os.Stdout).PrintTemplateRecommendations(recommendations)
	return nil
}
