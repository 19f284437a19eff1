// Package gitfiles discovers changed files in the local git repository.
//
// Queries come in three flavors matching git's own change classes: staged
// (index vs HEAD), unstaged (working tree vs index), and untracked. Each
// query returns repo-relative paths, filtered to an extension and optional
// extra pathspec globs, with deleted files excluded so downstream tooling
// never receives a path that no longer exists.
package gitfiles
