package app

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/keysort/keysort/internal/config"
	"github.com/keysort/keysort/internal/fileutil"
	"github.com/keysort/keysort/internal/lint"
	"github.com/keysort/keysort/internal/rule/sortkeys"
)

type options struct {
	check           bool
	fix             bool
	order           string
	caseInsensitive bool
	natural         bool
	minKeys         int
	extensions      []string
	workers         int
}

// NewRootCmd builds the keysort command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "keysort [flags] <path>...",
		Short:        "Lint and fix object literal key order in JavaScript/TypeScript sources",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.check, "check", false, "exit non-zero when violations are found")
	f.BoolVar(&opts.fix, "fix", false, "rewrite files with sorted keys")
	f.StringVar(&opts.order, "order", string(config.Asc), "sort direction: asc or desc")
	f.BoolVar(&opts.caseInsensitive, "case-insensitive", false, "compare keys ignoring letter case")
	f.BoolVar(&opts.natural, "natural", false, "compare embedded digit runs numerically")
	f.IntVar(&opts.minKeys, "min-keys", 2, "minimum keys before an object is checked")
	f.StringSliceVar(&opts.extensions, "ext", nil, "file extensions to lint")
	f.IntVar(&opts.workers, "workers", 0, "parallel file workers (0 = number of CPUs)")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	mergeFlags(cmd, opts, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	files, err := fileutil.Find(args, fileutil.Normalize(cfg.Extensions))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No files to lint")
		return nil
	}

	runner := lint.NewRunner(sortkeys.New(cfg.Rule))
	results := processParallel(cmd.Context(), runner, files, opts)

	return report(cmd, results, opts)
}

func mergeFlags(cmd *cobra.Command, opts *options, cfg *config.File) {
	f := cmd.Flags()
	if f.Changed("order") {
		cfg.Order = config.Order(opts.order)
	}
	if f.Changed("case-insensitive") {
		cfg.CaseSensitive = !opts.caseInsensitive
	}
	if f.Changed("natural") {
		cfg.Natural = opts.natural
	}
	if f.Changed("min-keys") {
		cfg.MinKeys = opts.minKeys
	}
	if f.Changed("ext") {
		cfg.Extensions = opts.extensions
	}
}

type fileResult struct {
	path       string
	violations []lint.Violation
	fixed      bool
	err        error
}

func processParallel(ctx context.Context, runner *lint.Runner, files []string, opts *options) []fileResult {
	workers := opts.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]fileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = processFile(ctx, runner, path, opts.fix)
			return nil
		})
	}
	_ = g.Wait() // per-file errors are carried in the results

	return results
}

func processFile(ctx context.Context, runner *lint.Runner, path string, fix bool) fileResult {
	res := fileResult{path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		res.err = fmt.Errorf("reading file: %w", err)
		return res
	}

	if !fix {
		res.violations, res.err = runner.Lint(ctx, path, content)
		return res
	}

	fixed, remaining, passes, err := runner.Fix(ctx, path, content)
	if err != nil {
		res.err = err
		return res
	}
	res.violations = remaining
	if passes > 0 {
		res.fixed = true
		if err := os.WriteFile(path, fixed, 0o600); err != nil {
			res.err = fmt.Errorf("writing file: %w", err)
		}
	}
	return res
}

func report(cmd *cobra.Command, results []fileResult, opts *options) error {
	out := cmd.OutOrStdout()
	pathColor := color.New(color.Bold)
	ruleColor := color.New(color.Faint)
	errColor := color.New(color.FgRed)

	totalViolations := 0
	filesWithViolations := 0
	filesFixed := 0
	errorFiles := 0
	var firstErr error

	for _, res := range results {
		if res.err != nil {
			errorFiles++
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", res.path, res.err)
			}
			errColor.Fprintf(cmd.ErrOrStderr(), "Error processing %s: %v\n", res.path, res.err)
			continue
		}
		if res.fixed {
			filesFixed++
			fmt.Fprintf(out, "Fixed %s\n", res.path)
		}
		if len(res.violations) > 0 {
			filesWithViolations++
			totalViolations += len(res.violations)
			for _, v := range res.violations {
				fmt.Fprintf(out, "%s:%d:%d  %s  %s\n",
					pathColor.Sprint(v.Path), v.Line, v.Col, v.Message, ruleColor.Sprintf("(%s)", v.Rule))
			}
		}
	}

	if len(results) > 1 {
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Files", "With Violations", "Violations", "Fixed", "Errors"})
		table.Append([]string{
			strconv.Itoa(len(results)),
			strconv.Itoa(filesWithViolations),
			strconv.Itoa(totalViolations),
			strconv.Itoa(filesFixed),
			strconv.Itoa(errorFiles),
		})
		table.Render()
	}

	if firstErr != nil {
		return firstErr
	}
	if opts.check && totalViolations > 0 {
		return fmt.Errorf("found %d violation(s)", totalViolations)
	}
	return nil
}
