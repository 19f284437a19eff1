package proc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// Result holds the outcome of one completed external process.
type Result struct {
	Status int
	Output []byte
}

// Run starts the named command and waits for it to terminate. The calling
// goroutine is parked for the duration of the wait; the Go scheduler keeps
// sibling goroutines running.
//
// With capture set, everything the process writes to stdout is drained to
// completion and returned in Result.Output; the exec package copies the pipe
// concurrently with the wait, so a chatty child cannot deadlock on a full
// pipe buffer. Without capture, the child inherits prelint's own stdout.
// Stderr always passes through so diagnostics stay visible.
//
// A non-nil error means the command never started (not found, permission
// denied). A process that started and exited non-zero is a normal Result
// with a non-zero Status, not an error.
func Run(ctx context.Context, name string, args []string, capture bool) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	if capture {
		cmd.Stdout = &out
	} else {
		cmd.Stdout = os.Stdout
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Status: exitErr.ExitCode(), Output: out.Bytes()}, nil
		}
		return Result{}, err
	}
	return Result{Status: 0, Output: out.Bytes()}, nil
}
