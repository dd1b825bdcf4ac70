// Command bch_analysis enumerates a binary BCH code, dumps its codewords and
// low-weight syndromes, and prints the pairwise distance histogram.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	gologging "github.com/op/go-logging"

	"github.com/observe-l/bchcode/analysis"
	"github.com/observe-l/bchcode/bch"
	"github.com/observe-l/bchcode/internal/config"
	"github.com/observe-l/bchcode/internal/logging"
	"github.com/observe-l/bchcode/internal/report"
)

var log = gologging.MustGetLogger("bch/main")

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatalf("%v", err)
	}
	if err := logging.Setup(os.Stderr, cfg.LogLevel); err != nil {
		fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	codec, err := bch.NewCodec(cfg.Params)
	if err != nil {
		return err
	}

	codesPath := cfg.Path(cfg.CodesFile)
	syndromesPath := cfg.Path(cfg.SyndromesFile)
	opts := analysis.Options{
		Workers: cfg.WorkerCount(),
		OnCodebook: func(cb *analysis.Codebook) error {
			if err := report.WriteFile(codesPath, func(w io.Writer) error {
				return report.WriteCodewords(w, cb)
			}); err != nil {
				return err
			}
			log.Infof("wrote %d codewords to %s", cb.Len(), codesPath)
			return nil
		},
		OnSyndromes: func(t analysis.SyndromeTable) error {
			if err := report.WriteFile(syndromesPath, func(w io.Writer) error {
				return report.WriteSyndromes(w, t)
			}); err != nil {
				return err
			}
			log.Infof("wrote %d syndromes to %s", len(t.Entries), syndromesPath)
			return nil
		},
	}
	if cfg.Progress {
		opts.Progress = stderr
	}
	if cfg.MetricsFile != "" {
		opts.Metrics = analysis.NewMetrics()
	}

	res, err := analysis.Run(ctx, codec, opts)
	if err != nil {
		return err
	}

	if p := cfg.Path(cfg.SummaryFile); p != "" {
		s := report.NewSummary(res, opts.Workers, time.Now())
		if err := report.WriteFile(p, func(w io.Writer) error { return report.WriteSummary(w, s) }); err != nil {
			return err
		}
	}
	if p := cfg.Path(cfg.NPYFile); p != "" {
		if err := report.WriteFile(p, func(w io.Writer) error { return report.WriteNPY(w, res.Histogram) }); err != nil {
			return err
		}
	}
	if p := cfg.Path(cfg.MetricsFile); p != "" {
		if err := report.WriteMetrics(p, opts.Metrics); err != nil {
			return err
		}
	}

	return report.WriteHistogram(stdout, res.Histogram)
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}
