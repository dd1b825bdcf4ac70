package analysis

import (
	"context"
	"io"
	"time"

	"github.com/op/go-logging"
	"github.com/schollz/progressbar/v3"

	"github.com/observe-l/bchcode/bch"
)

var log = logging.MustGetLogger("bch/analysis")

type Options struct {
	Workers int
	// Progress receives a progress bar for the pairwise pass; nil disables it.
	Progress io.Writer
	// Metrics, if set, is updated after a successful run.
	Metrics *Metrics
	// OnCodebook and OnSyndromes, if set, receive each result as soon as
	// it is built. An error from either stops the run.
	OnCodebook  func(*Codebook) error
	OnSyndromes func(SyndromeTable) error
}

// Phase is the wall time spent in one step of Run.
type Phase struct {
	Name    string
	Elapsed time.Duration
}

type Result struct {
	Params    bch.Params
	Codebook  *Codebook
	Histogram *Histogram
	Syndromes SyndromeTable
	Phases    []Phase
}

// Capability derives the guarantees of the code from its histogram.
func (r *Result) Capability() Capability {
	d, _ := r.Histogram.MinDistance()
	return CapabilityOf(d)
}

// Run builds the codebook, its pairwise distance histogram and the
// low-weight syndrome table, in that order. It stops at the first error,
// so a codebook failing its self-check never reaches OnCodebook.
func Run(ctx context.Context, c Coder, opts Options) (*Result, error) {
	res := &Result{Params: c.Params()}
	phase := func(name string, start time.Time) {
		elapsed := time.Since(start)
		res.Phases = append(res.Phases, Phase{Name: name, Elapsed: elapsed})
		opts.Metrics.observePhase(name, elapsed)
		log.Debugf("%s took %s", name, elapsed)
	}

	start := time.Now()
	cb, err := BuildCodebook(c)
	if err != nil {
		return nil, err
	}
	res.Codebook = cb
	phase("codebook", start)
	log.Infof("%s: %d codewords verified", res.Params, cb.Len())
	if opts.OnCodebook != nil {
		if err := opts.OnCodebook(cb); err != nil {
			return nil, err
		}
	}

	start = time.Now()
	hopts := HistogramOptions{Workers: opts.Workers}
	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(cb.Len(),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("pairwise distances"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowCount(),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionClearOnFinish(),
		)
		hopts.OnRow = func() { _ = bar.Add(1) }
	}
	hist, err := DistanceHistogram(ctx, cb.Codewords, hopts)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return nil, err
	}
	res.Histogram = hist
	phase("histogram", start)
	if d, ok := hist.MinDistance(); ok {
		log.Infof("%d pairs compared, minimum distance %d", hist.Total(), d)
	}

	start = time.Now()
	res.Syndromes = BuildSyndromeTable(c)
	phase("syndromes", start)
	if !res.Syndromes.Correctable() {
		log.Warningf("syndromes of weight <= %d patterns are not distinct", res.Params.Errors)
	}
	log.Infof("%d low-weight patterns tabulated", len(res.Syndromes.Entries))
	if opts.OnSyndromes != nil {
		if err := opts.OnSyndromes(res.Syndromes); err != nil {
			return nil, err
		}
	}

	opts.Metrics.Observe(res)
	return res, nil
}
