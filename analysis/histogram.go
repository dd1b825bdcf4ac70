package analysis

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/observe-l/bchcode/bch"
)

// MaxCodebook bounds DistanceHistogram input. The pairwise pass is O(n^2)
// in the number of codewords: 2^15 codewords already mean about 2^29
// comparisons.
const MaxCodebook = 1 << 15

var ErrCodebookTooLarge = errors.New("analysis: codebook too large for pairwise distances")

// Histogram counts codeword pairs by Hamming distance. Distances range over
// 0..16 since bch.HammingDist looks at all 16 bit positions.
type Histogram struct {
	counts [17]uint64
}

// Bin is one populated histogram entry.
type Bin struct {
	Distance int
	Count    uint64
}

type HistogramOptions struct {
	// Workers splits rows of the pair triangle across goroutines. Values
	// below 2 run the pass on the calling goroutine.
	Workers int
	// OnRow is called after each row i has been compared with every j > i.
	// It must be safe for concurrent use when Workers > 1.
	OnRow func()
}

// DistanceHistogram computes the distance of every unordered pair (i < j)
// of codes.
func DistanceHistogram(ctx context.Context, codes []uint16, opts HistogramOptions) (*Histogram, error) {
	if len(codes) > MaxCodebook {
		return nil, fmt.Errorf("%w: %d > %d", ErrCodebookTooLarge, len(codes), MaxCodebook)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(codes) {
		workers = max(len(codes), 1)
	}

	// Rows are dealt round-robin so long and short rows spread evenly.
	rows := func(ctx context.Context, h *Histogram, first int) error {
		for i := first; i < len(codes); i += workers {
			if err := ctx.Err(); err != nil {
				return err
			}
			for j := i + 1; j < len(codes); j++ {
				h.counts[bch.HammingDist(codes[i], codes[j])]++
			}
			if opts.OnRow != nil {
				opts.OnRow()
			}
		}
		return nil
	}

	if workers == 1 {
		h := &Histogram{}
		if err := rows(ctx, h, 0); err != nil {
			return nil, err
		}
		return h, nil
	}

	partial := make([]Histogram, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error { return rows(gctx, &partial[w], w) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	h := &Histogram{}
	for i := range partial {
		h.merge(&partial[i])
	}
	return h, nil
}

func (h *Histogram) merge(o *Histogram) {
	for d, n := range o.counts {
		h.counts[d] += n
	}
}

// Count returns the number of pairs at distance d.
func (h *Histogram) Count(d int) uint64 {
	if d < 0 || d >= len(h.counts) {
		return 0
	}
	return h.counts[d]
}

// Bins returns the populated distances in ascending order.
func (h *Histogram) Bins() []Bin {
	var out []Bin
	for d, n := range h.counts {
		if n > 0 {
			out = append(out, Bin{Distance: d, Count: n})
		}
	}
	return out
}

// Dense returns counts indexed by distance, up to the largest populated one.
func (h *Histogram) Dense() []int64 {
	last := -1
	for d, n := range h.counts {
		if n > 0 {
			last = d
		}
	}
	out := make([]int64, last+1)
	for d := range out {
		out[d] = int64(h.counts[d])
	}
	return out
}

func (h *Histogram) Total() uint64 {
	var t uint64
	for _, n := range h.counts {
		t += n
	}
	return t
}

// MinDistance is the smallest non-zero distance with a non-zero count.
// ok is false when every pair sits at distance zero or there are no pairs.
func (h *Histogram) MinDistance() (int, bool) {
	for d := 1; d < len(h.counts); d++ {
		if h.counts[d] > 0 {
			return d, true
		}
	}
	return 0, false
}

// Capability is what a code of a given minimum distance guarantees.
type Capability struct {
	MinDistance int
	Detect      int
	Correct     int
}

func CapabilityOf(minDistance int) Capability {
	if minDistance < 1 {
		return Capability{}
	}
	return Capability{
		MinDistance: minDistance,
		Detect:      minDistance - 1,
		Correct:     (minDistance - 1) / 2,
	}
}
