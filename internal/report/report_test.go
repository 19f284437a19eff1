package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/prelint/internal/lint"
)

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"text", "json", "markdown", "md"} {
		if _, err := GetWriter(format); err != nil {
			t.Errorf("GetWriter(%q) error: %v", format, err)
		}
	}
}

func TestGetWriter_Unknown(t *testing.T) {
	if _, err := GetWriter("sarif"); err == nil {
		t.Error("GetWriter should reject unknown formats")
	}
}

func TestWriteResult_ToFile(t *testing.T) {
	res := &lint.Result{RunID: "run-1", Checker: "swiftlint"}
	out := filepath.Join(t.TempDir(), "report.json")

	if err := WriteResult(res, "json", out); err != nil {
		t.Fatalf("WriteResult error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading report file: %v", err)
	}
	if !strings.Contains(string(data), "run-1") {
		t.Error("report file should contain the run ID")
	}
}

func TestWriteResult_BadFormat(t *testing.T) {
	if err := WriteResult(&lint.Result{}, "yaml", ""); err == nil {
		t.Error("WriteResult should reject unknown formats")
	}
}
