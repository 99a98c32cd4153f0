// Package finder compares every image under a directory against a single
// reference image and collects the accepted matches.
package finder

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"assetdedup/internal/match"
	"assetdedup/internal/models"
	"assetdedup/internal/phash"
	"assetdedup/internal/scan"
)

// ReferenceDecodeError reports that the reference image itself could not be
// processed. It always aborts the run.
type ReferenceDecodeError struct {
	Path string
	Err  error
}

func (e *ReferenceDecodeError) Error() string {
	return fmt.Sprintf("reference image %s: %v", e.Path, e.Err)
}

func (e *ReferenceDecodeError) Unwrap() error { return e.Err }

// progressInterval is how many candidates are processed between progress
// reports. A final report always fires at completion.
const progressInterval = 10

// Finder runs the reference-vs-directory duplicate search.
type Finder struct {
	hasher     *phash.Hasher
	matcher    *match.Matcher
	workers    int
	timeout    time.Duration
	progressFn func(processed, total int)
}

// Option configures a Finder.
type Option func(*Finder)

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(f *Finder) {
		if n > 0 {
			f.workers = n
		}
	}
}

// WithTimeout sets a per-image deadline for fingerprint computation.
func WithTimeout(d time.Duration) Option {
	return func(f *Finder) {
		f.timeout = d
	}
}

// WithProgress sets a progress callback.
func WithProgress(fn func(processed, total int)) Option {
	return func(f *Finder) {
		f.progressFn = fn
	}
}

// New creates a Finder with the given fingerprint parameters and distance
// threshold.
func New(cfg phash.Config, threshold int, opts ...Option) *Finder {
	f := &Finder{
		hasher:  phash.NewHasher(cfg),
		matcher: match.NewMatcher(threshold),
		workers: 8,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// outcome is the per-candidate result slot. At most one field is set; an
// empty outcome is a candidate that was skipped or did not match.
type outcome struct {
	match   *models.MatchRecord
	failure *models.Failure
	err     error
}

// Run fingerprints the reference image and scans folder for duplicates of it.
// A reference that cannot be processed aborts with *ReferenceDecodeError;
// per-candidate decode failures are recorded in the report and never stop the
// scan. Matches keep the traversal order of the walk regardless of worker
// count.
func (f *Finder) Run(refPath, folder string) (*models.Report, error) {
	refAbs, err := filepath.Abs(refPath)
	if err != nil {
		return nil, &ReferenceDecodeError{Path: refPath, Err: err}
	}
	refFp, err := f.hasher.HashFile(refAbs)
	if err != nil {
		return nil, &ReferenceDecodeError{Path: refPath, Err: err}
	}

	paths, err := scan.ListImages(folder)
	if err != nil {
		return nil, err
	}

	total := len(paths)
	results := make([]outcome, total)

	work := make(chan int, total)
	for i := range paths {
		work <- i
	}
	close(work)

	var (
		wg        sync.WaitGroup
		processed int64
	)
	for w := 0; w < f.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i] = f.process(refAbs, refFp, paths[i])
				n := int(atomic.AddInt64(&processed, 1))
				if f.progressFn != nil && (n%progressInterval == 0 || n == total) {
					f.progressFn(n, total)
				}
			}
		}()
	}
	wg.Wait()

	report := &models.Report{
		ReferencePath: refAbs,
		Scanned:       total,
		Matches:       []models.MatchRecord{},
		Failures:      []models.Failure{},
	}
	for _, r := range results {
		switch {
		case r.err != nil:
			// Length mismatches indicate a configuration bug, never a bad
			// candidate. Fatal.
			return nil, r.err
		case r.failure != nil:
			report.Failures = append(report.Failures, *r.failure)
		case r.match != nil:
			report.Matches = append(report.Matches, *r.match)
		}
	}
	return report, nil
}

func (f *Finder) process(refAbs string, refFp *phash.Fingerprint, path string) outcome {
	abs, err := filepath.Abs(path)
	if err != nil {
		return outcome{failure: &models.Failure{Path: path, Reason: err.Error()}}
	}
	// Never report the reference image as its own duplicate.
	if abs == refAbs {
		return outcome{}
	}

	fp, err := f.hashCandidate(abs)
	if err != nil {
		return outcome{failure: &models.Failure{Path: abs, Reason: err.Error()}}
	}

	dist, dup, err := f.matcher.IsDuplicate(refFp, fp)
	if err != nil {
		return outcome{err: err}
	}
	if !dup {
		return outcome{}
	}
	rec := models.NewMatchRecord(abs, dist)
	return outcome{match: &rec}
}

// hashCandidate fingerprints one candidate, honoring the per-image timeout
// when one is configured.
func (f *Finder) hashCandidate(path string) (*phash.Fingerprint, error) {
	if f.timeout <= 0 {
		return f.hasher.HashFile(path)
	}

	done := make(chan struct{})
	var fp *phash.Fingerprint
	var err error
	go func() {
		fp, err = f.hasher.HashFile(path)
		close(done)
	}()

	select {
	case <-done:
		return fp, err
	case <-time.After(f.timeout):
		return nil, fmt.Errorf("timeout hashing image: %s", path)
	}
}
