package lint

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/prelint/internal/ignore"
)

// Checker is one external lint tool invocation surface.
type Checker interface {
	Check(ctx context.Context, args []string) int
	Name() string
}

// StatusCache remembers exit statuses for unchanged files between runs.
type StatusCache interface {
	Get(tool string, args []string, path string) (int, bool)
	Put(tool string, args []string, path string, status int)
}

// Spec is the invocation shape shared by every file in one run: the base
// arguments plus a prefix joined onto each file's repo-relative path.
type Spec struct {
	Args   []string
	Prefix string
}

func (s Spec) pathFor(file string) string {
	if s.Prefix == "" {
		return file
	}
	return filepath.Join(s.Prefix, file)
}

func (s Spec) argsFor(file string) []string {
	args := make([]string, 0, len(s.Args)+1)
	args = append(args, s.Args...)
	return append(args, s.pathFor(file))
}

// FileResult records the outcome for one file.
type FileResult struct {
	Path   string `json:"path"`
	Status int    `json:"status"`
	Cached bool   `json:"cached,omitempty"`
}

// Timing captures run durations in milliseconds.
type Timing struct {
	TotalMs int64 `json:"totalMs"`
}

// Result is the outcome of one lint run.
type Result struct {
	RunID   string       `json:"runId"`
	Checker string       `json:"checker"`
	Status  int          `json:"status"`
	Files   []FileResult `json:"files"`
	Skipped []string     `json:"skipped,omitempty"`
	Timing  Timing       `json:"timing"`
}

// Runner dispatches one checker invocation per file and aggregates the exit
// statuses.
type Runner struct {
	Checker   Checker
	Filter    ignore.Filter
	Available bool
	// Jobs caps concurrent invocations. Zero or negative means no cap: every
	// file is dispatched at once.
	Jobs  int
	Cache StatusCache
	Log   *zap.Logger
}

// Run checks every non-ignored file in files concurrently and returns once
// all invocations have finished. A file that fails to check does not stop
// its siblings; the worst outcome is reflected in the result's Status.
func (r *Runner) Run(ctx context.Context, files []string, spec Spec) *Result {
	start := time.Now()
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}

	res := &Result{
		RunID:   uuid.NewString(),
		Checker: r.Checker.Name(),
	}

	if !r.Available {
		log.Warn("checker not installed, skipping checks",
			zap.String("checker", r.Checker.Name()))
		res.Timing.TotalMs = time.Since(start).Milliseconds()
		return res
	}

	// Dedup so a path appearing in more than one change class is checked
	// once, and drop generated files up front.
	seen := make(map[string]bool, len(files))
	var targets []string
	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true
		if r.Filter.Ignored(f) {
			res.Skipped = append(res.Skipped, f)
			continue
		}
		targets = append(targets, f)
	}

	if len(targets) == 0 {
		res.Timing.TotalMs = time.Since(start).Milliseconds()
		return res
	}

	results := make([]FileResult, len(targets))
	var agg ExitStatus
	var wg sync.WaitGroup
	var sem chan struct{}
	if r.Jobs > 0 {
		sem = make(chan struct{}, r.Jobs)
	}

	for i, file := range targets {
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}        // acquire
				defer func() { <-sem }() // release
			}

			fr := r.checkOne(ctx, file, spec, log)
			agg.Update(fr.Status)
			results[i] = fr
		}(i, file)
	}

	wg.Wait()

	res.Files = results
	res.Status = agg.Read()
	res.Timing.TotalMs = time.Since(start).Milliseconds()
	return res
}

func (r *Runner) checkOne(ctx context.Context, file string, spec Spec, log *zap.Logger) FileResult {
	path := spec.pathFor(file)

	if r.Cache != nil {
		if status, ok := r.Cache.Get(r.Checker.Name(), spec.Args, path); ok {
			log.Debug("cache hit", zap.String("path", file), zap.Int("status", status))
			return FileResult{Path: file, Status: status, Cached: true}
		}
	}

	log.Debug("checking", zap.String("path", file))
	status := r.Checker.Check(ctx, spec.argsFor(file))

	if r.Cache != nil {
		r.Cache.Put(r.Checker.Name(), spec.Args, path, status)
	}
	return FileResult{Path: file, Status: status}
}
