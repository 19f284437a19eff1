package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/prelint/internal/checker"
	"github.com/dshills/prelint/internal/config"
	"github.com/dshills/prelint/internal/gitfiles"
	"github.com/dshills/prelint/internal/logging"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Verify the checker and repository are usable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		log := logging.New(cfg.Log.Level, cfg.Log.Format)
		defer func() { _ = log.Sync() }()

		checker.EnsureSearchPath()
		tool := checker.New(cfg.Checker, log)

		fmt.Fprintf(os.Stdout, "Checking %s...\n", tool.Name())

		if !tool.Available() {
			fmt.Fprintf(os.Stderr, "FAIL: %s not found on PATH\n", tool.Name())
			exitCode = ExitRuntimeError
			return nil
		}

		path, err := tool.Path()
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintf(os.Stdout, "OK: %s at %s\n", tool.Name(), path)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		ver, err := tool.Version(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: version probe: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintf(os.Stdout, "OK: version %s\n", ver)

		root, err := gitfiles.Root(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARN: %v\n", err)
			return nil
		}
		fmt.Fprintf(os.Stdout, "OK: repository root %s\n", root)
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVar(&flagChecker, "checker", "", "Checker to verify")
}
