// Package main provides the entry point for the resume checker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_checker",
	Short: "ATS resume compatibility checker",
	Long:  "Resume Checker scores structured resumes against ATS heuristics, suggests stronger action verbs, groups skills, and recommends templates by industry match.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
