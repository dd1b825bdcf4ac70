package analysis

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/observe-l/bchcode/bch"
)

// Codebook holds every codeword of a code, indexed by information word.
type Codebook struct {
	Params    bch.Params
	Codewords []uint16
}

// BuildCodebook encodes every information word in ascending order and checks
// that each codeword has a zero syndrome.
func BuildCodebook(c Coder) (*Codebook, error) {
	p := c.Params()
	cb := &Codebook{Params: p, Codewords: make([]uint16, 0, p.Words())}
	for w := 0; w < p.Words(); w++ {
		word := uint16(w)
		cw, err := c.Encode(word)
		if err != nil {
			return nil, fmt.Errorf("encode word %d: %w", w, err)
		}
		if s := c.Syndrome(cw); s != 0 {
			return nil, &ConsistencyError{Word: word, Codeword: cw, Syndrome: s, Params: p}
		}
		cb.Codewords = append(cb.Codewords, cw)
	}
	return cb, nil
}

func (cb *Codebook) Len() int { return len(cb.Codewords) }

// Weights returns the weight distribution: Weights()[k] is the number of
// codewords with exactly k set bits.
func (cb *Codebook) Weights() []uint64 {
	out := make([]uint64, cb.Params.CodeLen+1)
	for _, cw := range cb.Codewords {
		out[bch.Weight(cw)]++
	}
	return out
}

// Digest is the hex SHA3-256 of the codebook in its text form, one
// zero-padded CodeLen-bit string per line.
func (cb *Codebook) Digest() string {
	h := sha3.New256()
	for _, cw := range cb.Codewords {
		_, _ = h.Write([]byte(bch.BitString(cw, cb.Params.CodeLen)))
		_, _ = h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
