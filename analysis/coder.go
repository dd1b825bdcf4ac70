// Package analysis enumerates a BCH code exhaustively and measures its
// distance profile and single-error syndromes.
package analysis

import (
	"errors"
	"fmt"

	"github.com/observe-l/bchcode/bch"
)

//go:generate mockgen -source=coder.go -destination=mock_coder_test.go -package=analysis

// Coder is the part of *bch.Codec the analysis needs.
type Coder interface {
	Params() bch.Params
	Encode(word uint16) (uint16, error)
	Syndrome(received uint16) uint16
}

// ErrInconsistent is matched by every *ConsistencyError.
var ErrInconsistent = errors.New("analysis: encoder produced a word with non-zero syndrome")

// ConsistencyError means the encoder and the syndrome computation disagree
// about a freshly encoded word. It indicates a broken codec, never bad input.
type ConsistencyError struct {
	Word     uint16
	Codeword uint16
	Syndrome uint16
	Params   bch.Params
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("analysis: word %s encoded to %s with syndrome %s",
		bch.BitString(e.Word, e.Params.DataLen()),
		bch.BitString(e.Codeword, e.Params.CodeLen),
		bch.BitString(e.Syndrome, e.Params.CheckLen()))
}

func (e *ConsistencyError) Unwrap() error { return ErrInconsistent }
