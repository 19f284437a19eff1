package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/prelint/internal/lint"
)

// TextWriter outputs a human-readable text summary.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, res *lint.Result) error {
	ew := &errWriter{w: w}

	ew.printf("Prelint — %s\n", res.Checker)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Checked: %d files", len(res.Files))
	if n := cachedCount(res); n > 0 {
		ew.printf(" (%d cached)", n)
	}
	ew.println("")
	if len(res.Skipped) > 0 {
		ew.printf("Skipped: %d generated\n", len(res.Skipped))
	}
	ew.println(strings.Repeat("─", 60))

	fails := failures(res)
	switch {
	case len(res.Files) == 0:
		ew.println("\nNo files to check.")
	case len(fails) == 0:
		ew.println("\nAll checked files are clean.")
	default:
		ew.printf("\nFAILING (%d)\n", len(fails))
		ew.println(strings.Repeat("─", 40))
		for _, f := range fails {
			ew.printf("  %s  (status %d)\n", f.Path, f.Status)
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("Completed in %dms\n", res.Timing.TotalMs)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
