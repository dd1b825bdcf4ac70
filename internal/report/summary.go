package report

import (
	"io"
	"time"

	"github.com/francoispqt/gojay"
	"github.com/klauspost/cpuid/v2"

	"github.com/observe-l/bchcode/analysis"
	"github.com/observe-l/bchcode/bch"
)

// Summary is the JSON snapshot of one analysis run.
type Summary struct {
	Timestamp   string
	Code        string
	Params      bch.Params
	Codewords   int
	Digest      string
	Pairs       uint64
	MinDistance int
	Detect      int
	Correct     int
	Correctable bool
	Distances   bins
	Weights     counts
	Phases      phases
	CPU         string
	Workers     int
}

func NewSummary(res *analysis.Result, workers int, now time.Time) *Summary {
	capa := res.Capability()
	return &Summary{
		Timestamp:   now.Format(time.RFC3339),
		Code:        res.Params.String(),
		Params:      res.Params,
		Codewords:   res.Codebook.Len(),
		Digest:      res.Codebook.Digest(),
		Pairs:       res.Histogram.Total(),
		MinDistance: capa.MinDistance,
		Detect:      capa.Detect,
		Correct:     capa.Correct,
		Correctable: res.Syndromes.Correctable(),
		Distances:   bins(res.Histogram.Bins()),
		Weights:     counts(res.Codebook.Weights()),
		Phases:      phases(res.Phases),
		CPU:         cpuid.CPU.BrandName,
		Workers:     workers,
	}
}

func (s *Summary) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("timestamp", s.Timestamp)
	enc.StringKey("code", s.Code)
	enc.ObjectKey("params", params(s.Params))
	enc.IntKey("codewords", s.Codewords)
	enc.StringKey("sha3_256", s.Digest)
	enc.Uint64Key("pairs", s.Pairs)
	enc.IntKey("min_distance", s.MinDistance)
	enc.IntKey("detect", s.Detect)
	enc.IntKey("correct", s.Correct)
	enc.BoolKey("syndromes_distinct", s.Correctable)
	enc.ArrayKey("distances", s.Distances)
	enc.ArrayKey("weights", s.Weights)
	enc.ArrayKey("phases", s.Phases)
	enc.StringKey("cpu", s.CPU)
	enc.IntKey("workers", s.Workers)
}

func (s *Summary) IsNil() bool { return s == nil }

// WriteSummary encodes s as a single JSON object followed by a newline.
func WriteSummary(w io.Writer, s *Summary) error {
	enc := gojay.BorrowEncoder(w)
	defer enc.Release()
	if err := enc.EncodeObject(s); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

type params bch.Params

func (p params) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("generator", int(p.Generator))
	enc.IntKey("gen_len", p.GenLen)
	enc.IntKey("code_len", p.CodeLen)
	enc.IntKey("data_len", bch.Params(p).DataLen())
	enc.IntKey("errors", p.Errors)
}

func (p params) IsNil() bool { return false }

type bin analysis.Bin

func (b bin) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("distance", b.Distance)
	enc.Uint64Key("count", b.Count)
}

func (b bin) IsNil() bool { return false }

type bins []analysis.Bin

func (bs bins) MarshalJSONArray(enc *gojay.Encoder) {
	for _, b := range bs {
		enc.Object(bin(b))
	}
}

func (bs bins) IsNil() bool { return len(bs) == 0 }

type counts []uint64

func (cs counts) MarshalJSONArray(enc *gojay.Encoder) {
	for _, c := range cs {
		enc.Uint64(c)
	}
}

func (cs counts) IsNil() bool { return len(cs) == 0 }

type phase analysis.Phase

func (p phase) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", p.Name)
	enc.FloatKey("seconds", p.Elapsed.Seconds())
}

func (p phase) IsNil() bool { return false }

type phases []analysis.Phase

func (ps phases) MarshalJSONArray(enc *gojay.Encoder) {
	for _, p := range ps {
		enc.Object(phase(p))
	}
}

func (ps phases) IsNil() bool { return len(ps) == 0 }
