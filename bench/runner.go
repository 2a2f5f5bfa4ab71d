// Package bench is the orchestration layer for the sorting algorithms: it
// generates random fixtures, times each configured sorter against them,
// and verifies that every output is sorted and still holds the input's
// elements. Trials run concurrently on a worker pool; each individual
// sorter execution stays single-threaded.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/amp-labs/amp-sort/order"
	"github.com/amp-labs/amp-sort/randarr"
	"github.com/amp-labs/amp-sort/sorts"
	"github.com/amp-labs/amp-sort/verify"
)

// Result is the measurement of one sorter execution on one fixture.
type Result struct {
	Algorithm   string
	Trial       int
	Elapsed     time.Duration
	Comparisons int64
	// Sorted is whether the output passed sorts.IsSorted.
	Sorted bool
	// ElementsKept is whether the output's multiset fingerprint matches
	// the fixture's, i.e. no elements were lost, invented, or altered.
	ElementsKept bool
}

// OK reports whether the execution produced a correct sort.
func (r Result) OK() bool {
	return r.Sorted && r.ElementsKept
}

// Runner executes a benchmark run described by a Config.
type Runner struct {
	cfg *Config
	log *slog.Logger
}

// NewRunner returns a Runner for the given configuration. If log is nil,
// slog.Default() is used.
func NewRunner(cfg *Config, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}

	return &Runner{
		cfg: cfg,
		log: log,
	}
}

// Run validates the configuration, executes all trials on a worker pool,
// and returns the collected report. Trials are independent (each gets its
// own derived seed and its own fixture), so running them concurrently
// doesn't change what any single sorter observes.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	r.log.InfoContext(ctx, "Starting benchmark run",
		"size", r.cfg.Size,
		"trials", r.cfg.Trials,
		"workers", r.cfg.Workers,
		"algorithms", r.cfg.Algorithms)

	pool := pond.NewPool(r.cfg.Workers, pond.WithContext(ctx))
	group := pool.NewGroup()

	// One slot per trial; each task writes only its own slot, so no
	// locking is needed.
	perTrial := make([][]Result, r.cfg.Trials)

	for trial := range r.cfg.Trials {
		group.SubmitErr(func() error {
			results, err := r.runTrial(trial)
			if err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}

			perTrial[trial] = results

			return nil
		})
	}

	err := group.Wait()

	pool.StopAndWait()

	if err != nil {
		return nil, err
	}

	return newReport(slices.Concat(perTrial...)), nil
}

// runTrial generates one fixture and times every configured algorithm
// against it.
func (r *Runner) runTrial(trial int) ([]Result, error) {
	gen := randarr.New(r.cfg.Seed + uint64(trial)) //nolint:gosec // trial is non-negative

	fixture, err := gen.Ints(r.cfg.Size, r.cfg.Min, r.cfg.Max)
	if err != nil {
		return nil, err
	}

	want := verify.Fingerprint(fixture)

	results := make([]Result, 0, len(r.cfg.Algorithms))

	for _, name := range r.cfg.Algorithms {
		less, count := order.Counting(order.Ordered[int]())

		var (
			out     []int
			elapsed time.Duration
		)

		switch name {
		case AlgorithmInsertion:
			out = slices.Clone(fixture)
			start := time.Now()
			sorts.InsertionFunc(out, less)
			elapsed = time.Since(start)
		case AlgorithmQuick:
			out = slices.Clone(fixture)
			start := time.Now()
			sorts.QuickFunc(out, less)
			elapsed = time.Since(start)
		case AlgorithmMerge:
			// Merge sort doesn't mutate its input, so it sorts the
			// fixture directly.
			start := time.Now()
			out = sorts.MergeFunc(fixture, less)
			elapsed = time.Since(start)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}

		res := Result{
			Algorithm:    name,
			Trial:        trial,
			Elapsed:      elapsed,
			Comparisons:  count.Load(),
			Sorted:       sorts.IsSorted(out),
			ElementsKept: verify.Fingerprint(out) == want,
		}

		observeTrial(res.Algorithm, res.Elapsed, res.Comparisons, res.OK())

		results = append(results, res)
	}

	return results, nil
}
