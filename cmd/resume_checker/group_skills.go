package main

import (
	"os"

	"github.com/jonathan/resume-checker/internal/grouping"
	"github.com/jonathan/resume-checker/internal/observability"
	"github.com/spf13/cobra"
)

var groupJSON bool

var groupSkillsCmd = &cobra.Command{
	Use:   "group-skills [skill]...",
	Short: "Classify skills into standard categories",
	Long:  `Group a list of skills into the standard skill categories (programming languages, databases, soft skills, ...); unrecognized skills are reported separately.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGroupSkills,
}

func init() {
	groupSkillsCmd.Flags().BoolVar(&groupJSON, "json", false, "Print the grouping as JSON")
	rootCmd.AddCommand(groupSkillsCmd)
}

func runGroupSkills(_ *cobra.Command, args []string) error {
	grouped := grouping.GroupSkills(args)

	if groupJSON {
		data, err := marshalIndent(grouped)
		if err != nil {
			return err
		}
		return writeOutput("", data)
	}

	observability.NewPrinter(os.Stdout).PrintGroupedSkills(&grouped)
	return nil
}
