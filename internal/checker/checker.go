package checker

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/prelint/internal/proc"
)

// homebrewBin is where Homebrew installs binaries on Apple Silicon. Hook
// environments often lack it in PATH even when the checker lives there.
const homebrewBin = "/opt/homebrew/bin"

// launchFailureStatus stands in for a checker process that never started.
// It counts as a lint failure so a broken install cannot pass silently.
const launchFailureStatus = 1

// Tool wraps one external lint executable.
type Tool struct {
	name string
	log  *zap.Logger
}

// New creates a Tool for the named executable. A nil logger is replaced
// with a no-op one.
func New(name string, log *zap.Logger) Tool {
	if log == nil {
		log = zap.NewNop()
	}
	return Tool{name: name, log: log}
}

// Name returns the executable name the Tool was created with.
func (t Tool) Name() string { return t.name }

// Available reports whether the executable can be resolved on PATH.
func (t Tool) Available() bool {
	_, err := exec.LookPath(t.name)
	return err == nil
}

// Path resolves the executable's location on PATH.
func (t Tool) Path() (string, error) {
	return exec.LookPath(t.name)
}

// Check runs the checker with the given arguments, streaming its output to
// this process's stdout and stderr, and returns the exit status. A process
// that cannot be started is reported as a failure status rather than an
// error so one broken invocation does not abort sibling checks.
func (t Tool) Check(ctx context.Context, args []string) int {
	res, err := proc.Run(ctx, t.name, args, false)
	if err != nil {
		t.log.Warn("checker failed to start",
			zap.String("checker", t.name),
			zap.Error(err))
		return launchFailureStatus
	}
	return res.Status
}

// Version asks the checker for its version string.
func (t Tool) Version(ctx context.Context) (string, error) {
	res, err := proc.Run(ctx, t.name, []string{"version"}, true)
	if err != nil {
		return "", fmt.Errorf("running %s version: %w", t.name, err)
	}
	if res.Status != 0 {
		return "", fmt.Errorf("%s version exited with status %d", t.name, res.Status)
	}
	return strings.TrimSpace(string(res.Output)), nil
}

var pathOnce sync.Once

// EnsureSearchPath widens PATH once per process so the checker can be found
// in the default Homebrew location on Apple Silicon. Other platforms are
// left untouched.
func EnsureSearchPath() {
	pathOnce.Do(func() {
		if p := searchPathPrefix(runtime.GOOS, runtime.GOARCH, os.Getenv("PATH")); p != "" {
			os.Setenv("PATH", p)
		}
	})
}

// searchPathPrefix returns the amended PATH value, or "" when no change is
// needed.
func searchPathPrefix(goos, goarch, path string) string {
	if goos != "darwin" || goarch != "arm64" {
		return ""
	}
	for _, dir := range filepath.SplitList(path) {
		if dir == homebrewBin {
			return ""
		}
	}
	return homebrewBin + string(os.PathListSeparator) + path
}
