package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/prelint/internal/cache"
	"github.com/dshills/prelint/internal/checker"
	"github.com/dshills/prelint/internal/config"
	"github.com/dshills/prelint/internal/gitfiles"
	"github.com/dshills/prelint/internal/ignore"
	"github.com/dshills/prelint/internal/lint"
	"github.com/dshills/prelint/internal/logging"
	"github.com/dshills/prelint/internal/report"
)

// Shared check flags
var (
	flagChecker    string
	flagExt        string
	flagStrict     bool
	flagLintConfig string
	flagJobs       int
	flagTimeout    int
	flagReport     string
	flagOut        string
	flagNoCache    bool
	flagVerbose    bool
)

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagChecker, "checker", "", "Checker executable name (default: swiftlint)")
	cmd.Flags().StringVar(&flagExt, "ext", "", "File extension to lint (default: swift)")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "Pass --strict to the checker")
	cmd.Flags().StringVar(&flagLintConfig, "lint-config", "", "Checker config file, passed as --config")
	cmd.Flags().IntVar(&flagJobs, "jobs", 0, "Maximum concurrent checker invocations (0 = unbounded)")
	cmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Run timeout in seconds (0 = none)")
	cmd.Flags().StringVar(&flagReport, "report", "", "Report format (text, json, markdown)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Report file path (default: stdout)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the result cache for this run")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagChecker != "" {
		m["checker"] = flagChecker
	}
	if flagExt != "" {
		m["extension"] = flagExt
	}
	if flagStrict {
		m["strict"] = "true"
	}
	if flagLintConfig != "" {
		m["lintConfig"] = flagLintConfig
	}
	if flagJobs > 0 {
		m["jobs"] = fmt.Sprintf("%d", flagJobs)
	}
	if flagTimeout > 0 {
		m["timeoutSeconds"] = fmt.Sprintf("%d", flagTimeout)
	}
	if flagReport != "" {
		m["format"] = flagReport
	}
	if flagVerbose {
		m["logLevel"] = "debug"
	}
	return m
}

func listOptions(cfg config.Config, globs []string) gitfiles.Options {
	return gitfiles.Options{
		Extension: cfg.Extension,
		Globs:     globs,
	}
}

// runContext returns the context for one check run, with a deadline when the
// config asks for one. A hung checker otherwise hangs the run.
func runContext(cfg config.Config) (context.Context, context.CancelFunc) {
	if cfg.TimeoutSeconds > 0 {
		return context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSeconds)*time.Second)
	}
	return context.Background(), func() {}
}

func checkerArgs(cfg config.Config) []string {
	return append(append([]string(nil), cfg.Args...), cfg.ExtraArgs()...)
}

func runCheck(ctx context.Context, files []string, prefix string, cfg config.Config) {
	log := logging.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	checker.EnsureSearchPath()
	tool := checker.New(cfg.Checker, log)

	var statusCache lint.StatusCache
	if cfg.Cache.Enabled && !flagNoCache {
		c, err := cache.New(true, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
		if err != nil {
			log.Warn("result cache unavailable", zap.Error(err))
		} else {
			statusCache = c
		}
	}

	runner := &lint.Runner{
		Checker:   tool,
		Filter:    ignore.New(cfg.Ignore),
		Available: tool.Available(),
		Jobs:      cfg.Jobs,
		Cache:     statusCache,
		Log:       log,
	}

	spec := lint.Spec{
		Args:   checkerArgs(cfg),
		Prefix: prefix,
	}

	res := runner.Run(ctx, files, spec)

	out := flagOut
	if out == "" {
		out = cfg.Report.Out
	}
	if err := report.WriteResult(res, cfg.Report.Format, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if res.Status != 0 {
		exitCode = res.Status
	}
}

type listFunc func(context.Context, gitfiles.Options) ([]string, error)

// checkChangeSet lists one class of changed files and lints them. Paths come
// back repo-relative, so the repo root becomes the invocation prefix and the
// run works from any subdirectory.
func checkChangeSet(list listFunc, globs []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	ctx, cancel := runContext(cfg)
	defer cancel()

	files, err := list(ctx, listOptions(cfg, globs))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitGitError
		return nil
	}
	root, err := gitfiles.Root(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitGitError
		return nil
	}
	runCheck(ctx, files, root, cfg)
	return nil
}

// changedFiles is the pre-commit set: what is staged plus what is new.
func changedFiles(ctx context.Context, opts gitfiles.Options) ([]string, error) {
	staged, err := gitfiles.Staged(ctx, opts)
	if err != nil {
		return nil, err
	}
	untracked, err := gitfiles.Untracked(ctx, opts)
	if err != nil {
		return nil, err
	}
	return append(staged, untracked...), nil
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint changed files",
	Long:  "Lint changed files with the configured checker. Use subcommands to choose which change set to lint.",
}

var checkStagedCmd = &cobra.Command{
	Use:   "staged [glob...]",
	Short: "Lint staged files (index vs HEAD)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkChangeSet(gitfiles.Staged, args)
	},
}

var checkUnstagedCmd = &cobra.Command{
	Use:   "unstaged [glob...]",
	Short: "Lint files with unstaged changes (working tree vs index)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkChangeSet(gitfiles.Unstaged, args)
	},
}

var checkUntrackedCmd = &cobra.Command{
	Use:   "untracked [glob...]",
	Short: "Lint untracked files (new files not yet added)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkChangeSet(gitfiles.Untracked, args)
	},
}

var checkChangedCmd = &cobra.Command{
	Use:   "changed [glob...]",
	Short: "Lint staged plus untracked files (the pre-commit set)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkChangeSet(changedFiles, args)
	},
}

var checkFilesCmd = &cobra.Command{
	Use:   "files <path>...",
	Short: "Lint an explicit list of files (no git query)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		ctx, cancel := runContext(cfg)
		defer cancel()
		runCheck(ctx, args, "", cfg)
		return nil
	},
}

func init() {
	// Add check subcommands
	checkCmd.AddCommand(checkStagedCmd)
	checkCmd.AddCommand(checkUnstagedCmd)
	checkCmd.AddCommand(checkUntrackedCmd)
	checkCmd.AddCommand(checkChangedCmd)
	checkCmd.AddCommand(checkFilesCmd)

	// Add shared flags to all check subcommands
	for _, cmd := range []*cobra.Command{
		checkStagedCmd,
		checkUnstagedCmd,
		checkUntrackedCmd,
		checkChangedCmd,
		checkFilesCmd,
	} {
		addCheckFlags(cmd)
	}
}
