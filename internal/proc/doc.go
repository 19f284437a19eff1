// Package proc runs a single external command to completion.
//
// It is the one place prelint touches os/exec. Both consumers share it: the
// git query layer captures stdout for parsing, and the checker adapter lets
// the child write straight to prelint's own streams. The asymmetric
// launch-failure policy (queries abort, checker invocations degrade to a
// sentinel status) belongs to those callers, not to this package — Run
// reports a launch failure as an error and leaves the policy decision up.
package proc
