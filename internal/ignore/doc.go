// Package ignore filters generated source files out of lint runs.
//
// The filter is a pure predicate over the filename: a file is ignored iff its
// name contains one of a small set of substring markers left behind by code
// generators (SwiftGen catalogs, R.generated resource files, GraphQL schema
// output). Configuration may append project-specific markers; it cannot
// remove the built-ins.
package ignore
