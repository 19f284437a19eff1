// Package report formats lint run results for display or machine consumption.
//
// Three formats are supported:
//   - text     — human-readable terminal output (default)
//   - json     — full structured JSON result
//   - markdown — CI-job-summary-friendly with a collapsible failing-file list
//
// The checker's own diagnostics stream through to the terminal as each file
// is checked; a report is the run-level summary printed after the join. Use
// [GetWriter] to obtain a [Writer] for a given format string, or
// [WriteResult] to handle destination selection as well.
package report
