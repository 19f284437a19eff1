// Prelint runs a lint checker over the files changed in a git working copy.
//
// It lists staged, unstaged, or untracked files, filters out generated code,
// launches one checker process per file concurrently, and exits with the
// aggregated status so git hooks and CI gates can act on a single code.
//
// Usage:
//
//	prelint check staged              # lint staged files
//	prelint check unstaged            # lint working tree changes
//	prelint check untracked           # lint new files
//	prelint check changed             # lint the pre-commit set (staged + untracked)
//	prelint check files <path>...     # lint an explicit list
//	prelint hook install              # wire prelint into .git/hooks/pre-commit
//	prelint doctor                    # verify the checker is installed
//
// See https://github.com/dshills/prelint for full documentation.
package main
