package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"doclint/internal/diag"
	"doclint/internal/diagfmt"
	"doclint/internal/driver"
	"doclint/internal/observ"
	"doclint/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path...",
	Short: "Check doc comment line layout in files or directories",
	Long:  `Check reports doc comment lines that overflow the limit and lines that wrap although the next word would still have fit`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif|short)")
	checkCmd.Flags().Int("line-limit", 0, "maximum doc comment line width (0 uses doclint.toml or the default)")
	checkCmd.Flags().Int("jobs", 0, "number of files checked concurrently (0 uses GOMAXPROCS)")
	checkCmd.Flags().StringSlice("ext", nil, "file extensions to check in directories (default from doclint.toml or built-in list)")
	checkCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
}

func knownFormat(format string) bool {
	switch format {
	case "pretty", "json", "sarif", "short":
		return true
	}
	return false
}

func runCheck(cmd *cobra.Command, args []string) error {
	manifest, haveManifest, err := loadProjectManifest(".")
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if !cmd.Flags().Changed("format") && haveManifest && manifest.Config.Output.Format != "" {
		format = manifest.Config.Output.Format
	}
	if !knownFormat(format) {
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, err := buildOptions(cmd, manifest, haveManifest)
	if err != nil {
		return err
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	timer := observ.NewTimer()

	collectPhase := timer.Begin("collect")
	files, err := driver.CollectFiles(args, opts.Extensions)
	timer.End(collectPhase, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stderr, "no matching files")
		}
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	checkPhase := timer.Begin("check")
	var result *driver.DirResult
	if shouldUseTUI(mode) && format == "pretty" {
		result, err = runCheckWithUI(ctx, "checking doc comments", files, opts)
	} else {
		result, err = driver.CheckFiles(ctx, files, opts)
	}
	if err != nil {
		return err
	}
	timer.End(checkPhase, fmt.Sprintf("%d violations", result.Violations()))

	bag := result.MergedBag(opts.MaxDiagnostics)
	if err := renderDiagnostics(cmd, format, bag, result); err != nil {
		return err
	}

	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if !quiet && format == "pretty" {
		fmt.Fprintf(os.Stderr, "checked %d files, %d violations\n", len(result.Results), result.Violations())
	}

	if bag.Len() > 0 {
		os.Exit(1)
	}
	return nil
}

func buildOptions(cmd *cobra.Command, manifest *projectManifest, haveManifest bool) (driver.Options, error) {
	var opts driver.Options

	limit, err := cmd.Flags().GetInt("line-limit")
	if err != nil {
		return opts, fmt.Errorf("failed to get line-limit flag: %w", err)
	}
	if limit < 0 {
		return opts, fmt.Errorf("line limit must be positive, got %d", limit)
	}
	if limit == 0 && haveManifest {
		limit = manifest.Config.Check.LineLimit
	}
	opts.Limit = limit

	exts, err := cmd.Flags().GetStringSlice("ext")
	if err != nil {
		return opts, fmt.Errorf("failed to get ext flag: %w", err)
	}
	if len(exts) == 0 && haveManifest {
		exts = manifest.Config.Check.Extensions
	}
	if len(exts) == 0 {
		exts = driver.DefaultExtensions
	}
	opts.Extensions = exts

	opts.Jobs, err = cmd.Flags().GetInt("jobs")
	if err != nil {
		return opts, fmt.Errorf("failed to get jobs flag: %w", err)
	}

	opts.MaxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return opts, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if !noCache {
		cache, cacheErr := driver.OpenDefaultDiskCache()
		if cacheErr == nil {
			opts.Cache = cache
		}
	}

	return opts, nil
}

func renderDiagnostics(cmd *cobra.Command, format string, bag *diag.Bag, result *driver.DirResult) error {
	switch format {
	case "pretty":
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
		diagfmt.Pretty(os.Stdout, bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   useColor,
			Context: 1,
		})
		return nil
	case "json":
		return diagfmt.JSON(os.Stdout, bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
		})
	case "sarif":
		return diagfmt.Sarif(os.Stdout, bag, result.FileSet, diagfmt.SarifRunMeta{
			ToolName:       "doclint",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	case "short":
		fmt.Fprint(os.Stdout, diag.FormatShortDiagnostics(bag.Items(), result.FileSet, true))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
