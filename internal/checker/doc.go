// Package checker adapts an external lint executable, SwiftLint by default,
// for per-file invocation.
//
// The checker's own output is the user-facing report, so Check streams it
// straight through instead of capturing it. Exit statuses are the only
// signal read back: zero is clean, anything else is a finding or a failure.
package checker
