package gitfiles

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/prelint/internal/proc"
)

// Options restricts a change-set query.
type Options struct {
	// Extension filters the query to "*.<Extension>" paths. Empty means no
	// extension filter.
	Extension string
	// Globs are extra git pathspec patterns appended after the extension
	// pattern.
	Globs []string
}

// Staged returns the repo-relative paths of files staged in the index,
// excluding deletions.
func Staged(ctx context.Context, opts Options) ([]string, error) {
	out, err := gitOutput(ctx, diffArgs(true, opts)...)
	if err != nil {
		return nil, fmt.Errorf("git diff --cached: %w", err)
	}
	return splitLines(out), nil
}

// Unstaged returns the repo-relative paths of files modified in the working
// tree but not staged, excluding deletions.
func Unstaged(ctx context.Context, opts Options) ([]string, error) {
	out, err := gitOutput(ctx, diffArgs(false, opts)...)
	if err != nil {
		return nil, fmt.Errorf("git diff: %w", err)
	}
	return splitLines(out), nil
}

// Untracked returns the repo-relative paths of files git does not track yet,
// honoring the standard ignore rules.
func Untracked(ctx context.Context, opts Options) ([]string, error) {
	args := []string{"ls-files", "--others", "--exclude-standard", "--full-name"}
	args = appendPathspecs(args, opts)
	out, err := gitOutput(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("git ls-files: %w", err)
	}
	return splitLines(out), nil
}

// Root returns the absolute path of the repository's top-level directory.
func Root(ctx context.Context) (string, error) {
	out, err := gitOutput(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	root := strings.TrimSpace(out)
	if root == "" {
		return "", fmt.Errorf("not a git repository")
	}
	return root, nil
}

// diffArgs builds the name-only diff query. The staged variant differs only
// by the --cached flag, inserted right after the subcommand.
func diffArgs(staged bool, opts Options) []string {
	args := []string{"diff"}
	if staged {
		args = append(args, "--cached")
	}
	args = append(args, "--diff-filter=d", "--name-only")
	return appendPathspecs(args, opts)
}

func appendPathspecs(args []string, opts Options) []string {
	var specs []string
	if opts.Extension != "" {
		specs = append(specs, "*."+opts.Extension)
	}
	for _, g := range opts.Globs {
		if g != "" {
			specs = append(specs, g)
		}
	}
	if len(specs) == 0 {
		return args
	}
	return append(append(args, "--"), specs...)
}

// splitLines breaks command output into paths, dropping empty lines.
func splitLines(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files
}

// gitOutput runs one git query and returns its stdout. A query that git
// refuses with a non-zero exit still yields its output — diff-style commands
// use non-zero informationally — so only a failure to start git is an error.
func gitOutput(ctx context.Context, args ...string) (string, error) {
	res, err := proc.Run(ctx, "git", args, true)
	if err != nil {
		return "", err
	}
	return string(res.Output), nil
}
