package report

import (
	"fmt"
	"io"

	"github.com/dshills/prelint/internal/lint"
)

// MarkdownWriter outputs a CI-summary-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, res *lint.Result) error {
	fails := failures(res)

	fmt.Fprintf(w, "## Prelint — %s\n\n", res.Checker)

	fmt.Fprintf(w, "| Result | Count |\n")
	fmt.Fprintf(w, "|---------|-------|\n")
	fmt.Fprintf(w, "| Checked | %d |\n", len(res.Files))
	fmt.Fprintf(w, "| Failing | %d |\n", len(fails))
	fmt.Fprintf(w, "| Skipped | %d |\n\n", len(res.Skipped))

	if len(fails) == 0 {
		fmt.Fprintln(w, "All checked files are clean. :white_check_mark:")
	} else {
		fmt.Fprintf(w, "<details>\n<summary>:red_circle: Failing files (%d)</summary>\n\n", len(fails))
		for _, f := range fails {
			fmt.Fprintf(w, "- `%s` (status %d)\n", f.Path, f.Status)
		}
		fmt.Fprintf(w, "\n</details>\n")
	}

	fmt.Fprintf(w, "\n*Completed in %dms*\n", res.Timing.TotalMs)
	return nil
}
