package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dshills/prelint/internal/lint"
)

// Writer writes a run result in a specific format.
type Writer interface {
	Write(w io.Writer, res *lint.Result) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteResult writes the result to the specified output (file path or stdout).
func WriteResult(res *lint.Result, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, res)
}

// failures returns the file results with non-zero statuses, sorted by path.
func failures(res *lint.Result) []lint.FileResult {
	var fails []lint.FileResult
	for _, f := range res.Files {
		if f.Status != 0 {
			fails = append(fails, f)
		}
	}
	sort.Slice(fails, func(i, j int) bool {
		return fails[i].Path < fails[j].Path
	})
	return fails
}

func cachedCount(res *lint.Result) int {
	n := 0
	for _, f := range res.Files {
		if f.Cached {
			n++
		}
	}
	return n
}
