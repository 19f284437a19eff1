// Package lint runs an external checker against a set of changed files
// concurrently and folds the per-file exit statuses into one outcome.
//
// Every non-ignored file gets its own invocation, all dispatched at once
// unless a job cap is set. The run joins on every invocation before it
// returns: a failing file never cancels its siblings, it only makes the
// final status non-zero.
package lint
