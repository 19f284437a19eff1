// Package cache provides a file-based cache for per-file checker outcomes.
//
// Cache entries are keyed by a SHA-256 hash of the checker name, its
// arguments, the file path, and a hash of the file's content, so any edit to
// a file invalidates its entry without bookkeeping. Each entry stores the
// exit status along with a creation timestamp and a TTL (in seconds).
// Expired entries are skipped on read and removed during cache-clear
// operations.
//
// The default cache directory is $XDG_CACHE_HOME/prelint (or the
// OS-appropriate equivalent). Caching is off unless enabled in config: a
// checker upgrade or rule change is invisible to the key, so the TTL is the
// only guard against stale verdicts.
package cache
