package bench

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Report is the outcome of a full benchmark run.
type Report struct {
	// RunID uniquely identifies this run, so its log lines can be
	// correlated when several runs land in the same output.
	RunID   uuid.UUID
	Results []Result
}

func newReport(results []Result) *Report {
	return &Report{
		RunID:   uuid.New(),
		Results: results,
	}
}

// OK reports whether every sorter execution in the run was correct.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}

	return true
}

// summary is the per-algorithm aggregate logged by Log.
type summary struct {
	trials      int
	totalTime   time.Duration
	comparisons int64
	failures    int
	reportOrder int
}

// Log writes one line per execution plus a per-algorithm summary to the
// given logger.
func (r *Report) Log(log *slog.Logger) {
	log = log.With("run_id", r.RunID.String())

	summaries := map[string]*summary{}

	for _, res := range r.Results {
		log.Debug("Sorter execution",
			"algorithm", res.Algorithm,
			"trial", res.Trial,
			"elapsed", res.Elapsed,
			"comparisons", res.Comparisons,
			"sorted", res.Sorted,
			"elements_kept", res.ElementsKept)

		s, ok := summaries[res.Algorithm]
		if !ok {
			s = &summary{reportOrder: len(summaries)}
			summaries[res.Algorithm] = s
		}

		s.trials++
		s.totalTime += res.Elapsed
		s.comparisons += res.Comparisons

		if !res.OK() {
			s.failures++
		}
	}

	for _, algorithm := range algorithmsInOrder(summaries) {
		s := summaries[algorithm]

		avg := time.Duration(0)
		if s.trials > 0 {
			avg = s.totalTime / time.Duration(s.trials)
		}

		log.Info("Algorithm summary",
			"algorithm", algorithm,
			"trials", s.trials,
			"avg_elapsed", avg,
			"total_comparisons", s.comparisons,
			"failures", s.failures)
	}

	if r.OK() {
		log.Info("All sorter outputs verified", "executions", len(r.Results))
	} else {
		log.Error("Some sorter outputs failed verification")
	}
}

// algorithmsInOrder returns the algorithm names in first-seen order, so
// summary lines come out in the order the algorithms ran.
func algorithmsInOrder(summaries map[string]*summary) []string {
	names := make([]string, len(summaries))
	for name, s := range summaries {
		names[s.reportOrder] = name
	}

	return names
}
