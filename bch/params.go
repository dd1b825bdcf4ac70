// Package bch implements systematic binary BCH codes of length up to 16 bits
// using GF(2) polynomial division by a fixed generator.
package bch

import (
	"errors"
	"fmt"
	"math/bits"
)

var ErrInvalidParams = errors.New("bch: invalid parameters")

// Params describes a binary cyclic code by its generator polynomial.
// GenLen is the bit length of Generator including the leading coefficient.
type Params struct {
	Generator uint16 `yaml:"generator" json:"generator"`
	GenLen    int    `yaml:"gen_len" json:"gen_len"`
	CodeLen   int    `yaml:"code_len" json:"code_len"`
	Errors    int    `yaml:"errors" json:"errors"`
}

// Standard is BCH(15,11) with g(x) = x^4 + x + 1, correcting one error.
var Standard = Params{
	Generator: 0b10011,
	GenLen:    5,
	CodeLen:   15,
	Errors:    1,
}

// DataLen is the number of information bits per codeword.
func (p Params) DataLen() int { return p.CodeLen - p.GenLen + 1 }

// CheckLen is the number of parity bits, which is also the syndrome width.
func (p Params) CheckLen() int { return p.GenLen - 1 }

// Words is the number of distinct information words, 2^DataLen.
func (p Params) Words() int { return 1 << p.DataLen() }

// Patterns is the number of distinct received words, 2^CodeLen.
func (p Params) Patterns() int { return 1 << p.CodeLen }

func (p Params) String() string {
	return fmt.Sprintf("BCH(%d,%d) g=%s t=%d", p.CodeLen, p.DataLen(), BitString(p.Generator, p.GenLen), p.Errors)
}

func (p Params) Validate() error {
	switch {
	case p.GenLen < 2 || p.GenLen > 16:
		return fmt.Errorf("%w: gen_len %d out of range [2,16]", ErrInvalidParams, p.GenLen)
	case p.CodeLen > 16 || p.CodeLen < p.GenLen:
		return fmt.Errorf("%w: code_len %d out of range [%d,16]", ErrInvalidParams, p.CodeLen, p.GenLen)
	case bits.Len16(p.Generator) != p.GenLen:
		return fmt.Errorf("%w: generator %#b is not %d bits long", ErrInvalidParams, p.Generator, p.GenLen)
	case p.Generator&1 == 0:
		return fmt.Errorf("%w: generator %#b has no constant term", ErrInvalidParams, p.Generator)
	case p.Errors < 0 || p.Errors > p.CodeLen:
		return fmt.Errorf("%w: errors %d out of range [0,%d]", ErrInvalidParams, p.Errors, p.CodeLen)
	}
	return nil
}
