package lint

import "sync"

// ExitStatus folds exit codes from concurrent checker invocations into one
// final status. Zero means every invocation was clean. Once a non-zero code
// arrives the status stays non-zero; when several non-zero codes race, any
// one of them may be the one retained.
type ExitStatus struct {
	mu     sync.Mutex
	status int
}

// Update folds one invocation's exit code into the aggregate. Zero is a
// no-op.
func (e *ExitStatus) Update(status int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if status != 0 {
		e.status = status
	}
}

// Read returns the aggregate status. Callers must not race Read against
// Update; the run's join point provides that ordering.
func (e *ExitStatus) Read() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}
