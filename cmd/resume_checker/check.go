package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/resume-checker/internal/checker"
	"github.com/jonathan/resume-checker/internal/config"
	"github.com/jonathan/resume-checker/internal/observability"
	"github.com/jonathan/resume-checker/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	checkResume  string
	checkDir     string
	checkConfig  string
	checkOutput  string
	checkFormat  string
	checkVerbose bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Score a resume for ATS compatibility",
	Long:  `Run the full ATS compatibility check on a resume JSON file (or a directory of them) and print the weighted report.`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkResume, "resume", "", "Path to a resume JSON file")
	checkCmd.Flags().StringVar(&checkDir, "dir", "", "Directory of resume JSON files to check in batch")
	checkCmd.Flags().StringVar(&checkConfig, "config", "", "Path to a JSON config file")
	checkCmd.Flags().StringVar(&checkOutput, "output", "", "Write the report to this file instead of stdout")
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "Output format: json or text")
	checkCmd.Flags().BoolVar(&checkVerbose, "verbose", false, "Print per-category issues")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:  checkResume,
		Dir:     checkDir,
		Output:  checkOutput,
		Format:  checkFormat,
		Verbose: checkVerbose,
	}
	if checkConfig != "" {
		fileCfg, err := config.LoadConfig(checkConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	switch {
	case cfg.Dir != "":
		return runBatchCheck(cfg)
	case cfg.Resume != "":
		return runSingleCheck(cfg)
	default:
		return fmt.Errorf("either --resume or --dir is required")
	}
}

func runSingleCheck(cfg config.Config) error {
	rec, err := loadResumeRecord(cfg.Resume)
	if err != nil {
		return err
	}

	report, err := checker.CheckATSCompatibility(rec)
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		data, err := marshalIndent(report)
		if err != nil {
			return err
		}
		return writeOutput(cfg.Output, data)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintCheckReport(report)
	if cfg.Verbose {
		printer.PrintCategoryIssues(report)
	}
	return nil
}

// batchResult pairs a file with its report for the summary table.
type batchResult struct {
	Path   string             `json:"path"`
	Report *types.CheckReport `json:"report"`
}

// runBatchCheck scores every *.json resume in the directory concurrently.
// The engine is pure, so the only coordination needed is around the shared
// results slice.
func runBatchCheck(cfg config.Config) error {
	entries, err := filepath.Glob(filepath.Join(cfg.Dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list resume directory %s: %w", cfg.Dir, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no resume JSON files found in %s", cfg.Dir)
	}

	var mu sync.Mutex
	results := make([]batchResult, 0, len(entries))

	g := new(errgroup.Group)
	g.SetLimit(8)
	for _, path := range entries {
		path := path
		g.Go(func() error {
			rec, err := loadResumeRecord(path)
			if err != nil {
				return err
			}
			report, err := checker.CheckATSCompatibility(rec)
			if err != nil {
				return fmt.Errorf("check failed for %s: %w", path, err)
			}
			mu.Lock()
			results = append(results, batchResult{Path: path, Report: report})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Highest score first; path breaks ties for stable output.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Report.OverallScore != results[j].Report.OverallScore {
			return results[i].Report.OverallScore > results[j].Report.OverallScore
		}
		return results[i].Path < results[j].Path
	})

	if cfg.Format == "json" {
		data, err := marshalIndent(results)
		if err != nil {
			return err
		}
		return writeOutput(cfg.Output, data)
	}

	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%3d  %-9s %s\n",
			r.Report.OverallScore, r.Report.PassStatus, filepath.Base(r.Path)))
	}
	return writeOutput(cfg.Output, []byte(strings.TrimRight(sb.String(), "\n")))
}
