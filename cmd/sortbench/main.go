// Command sortbench generates a random fixture array, times each sorting
// algorithm against it, and reports elapsed durations plus sortedness and
// element-preservation verdicts.
//
// Usage:
//
//	sortbench [-config bench.yaml] [-json] [-v]
//
// Without -config a built-in default configuration is used (1000 values,
// five trials, all three algorithms). Exits non-zero if the run fails or
// any sorter output fails verification.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/amp-labs/amp-sort/bench"
	"github.com/amp-labs/amp-sort/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML benchmark configuration")
	jsonLogs := flag.Bool("json", false, "emit logs as JSON")
	verbose := flag.Bool("v", false, "log every sorter execution, not just summaries")
	flag.Parse()

	minLevel := slog.LevelInfo
	if *verbose {
		minLevel = slog.LevelDebug
	}

	log := logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: "sortbench",
		JSON:      *jsonLogs,
		MinLevel:  minLevel,
	})

	cfg := bench.DefaultConfig()

	if *configPath != "" {
		var err error

		cfg, err = bench.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("Failed to load benchmark config", "error", err)
		}
	}

	report, err := bench.NewRunner(cfg, log).Run(context.Background())
	if err != nil {
		logger.Fatal("Benchmark run failed", "error", err)
	}

	report.Log(log)

	if !report.OK() {
		os.Exit(1)
	}
}
