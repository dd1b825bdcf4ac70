package bch

import (
	"errors"
	"fmt"
)

var (
	ErrWordTooWide     = errors.New("bch: information word exceeds data length")
	ErrReceivedTooWide = errors.New("bch: received word exceeds code length")
)

// Codec encodes and checks words of one systematic code. The information
// word occupies the high DataLen bits of a codeword and the parity the low
// CheckLen bits.
type Codec struct {
	p Params
}

func NewCodec(p Params) (*Codec, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Codec{p: p}, nil
}

func (c *Codec) Params() Params { return c.p }

// Encode returns the codeword for word. Words wider than DataLen bits are
// rejected with ErrWordTooWide since their high bits would overlap the
// parity field.
func (c *Codec) Encode(word uint16) (uint16, error) {
	if word&^Mask(c.p.DataLen()) != 0 {
		return 0, fmt.Errorf("%w: %#x has more than %d bits", ErrWordTooWide, word, c.p.DataLen())
	}
	shifted := word << c.p.CheckLen()
	return shifted ^ Mod(shifted, c.p.Generator, c.p.GenLen), nil
}

// Syndrome returns the remainder of received modulo the generator. Zero
// means no error was detected, not that none occurred.
func (c *Codec) Syndrome(received uint16) uint16 {
	return Mod(received, c.p.Generator, c.p.GenLen)
}

// Check reports whether received fits in CodeLen bits.
func (c *Codec) Check(received uint16) error {
	if received&^Mask(c.p.CodeLen) != 0 {
		return fmt.Errorf("%w: %#x has more than %d bits", ErrReceivedTooWide, received, c.p.CodeLen)
	}
	return nil
}

// Info returns the information word carried by codeword.
func (c *Codec) Info(codeword uint16) uint16 {
	return (codeword >> c.p.CheckLen()) & Mask(c.p.DataLen())
}
