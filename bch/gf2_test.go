package bch

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	tests := []struct {
		n    int
		want uint16
	}{
		{-1, 0},
		{0, 0},
		{1, 0b1},
		{4, 0b1111},
		{11, 0x7ff},
		{15, 0x7fff},
		{16, 0xffff},
		{20, 0xffff},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Mask(tt.n), "Mask(%d)", tt.n)
	}
}

func TestModByHand(t *testing.T) {
	// x^4 mod (x^4 + x + 1) = x + 1
	require.Equal(t, uint16(0b0011), Mod(1<<4, 0b10011, 5))
	// x^5 = x * x^4 = x^2 + x
	require.Equal(t, uint16(0b0110), Mod(1<<5, 0b10011, 5))
	// the generator itself divides evenly
	require.Equal(t, uint16(0), Mod(0b10011, 0b10011, 5))
	// x^15 + 1 is a multiple of a primitive degree-4 polynomial
	require.Equal(t, uint16(0), Mod(0x8001, 0b10011, 5))
	// values below the divisor degree are their own remainder
	require.Equal(t, uint16(0b1011), Mod(0b1011, 0b10011, 5))
}

func TestModRemainderWidth(t *testing.T) {
	divisors := []struct {
		g      uint16
		digits int
	}{
		{0b10011, 5},
		{0b11001, 5},
		{0b1011, 4},
		{0x769, 11},
		{0b11, 2},
		{0b1, 1},
	}
	for _, d := range divisors {
		for a := 0; a <= 0xffff; a++ {
			r := Mod(uint16(a), d.g, d.digits)
			if r&^Mask(d.digits-1) != 0 {
				t.Fatalf("Mod(%#x, %#b, %d) = %#b has bits at or above %d", a, d.g, d.digits, r, d.digits-1)
			}
		}
	}
}

func TestModLinear(t *testing.T) {
	for a := uint16(0); a < 1<<9; a++ {
		for _, b := range []uint16{0x1, 0x80, 0x7fff, 0xa5a5} {
			lhs := Mod(a^b, 0b10011, 5)
			rhs := Mod(a, 0b10011, 5) ^ Mod(b, 0b10011, 5)
			require.Equal(t, rhs, lhs)
		}
	}
}

func TestModDegenerateDigits(t *testing.T) {
	assert.Equal(t, uint16(0), Mod(0xffff, 0b10011, 0))
	assert.Equal(t, uint16(0), Mod(0xffff, 0b1, 1))
}

func TestShiftRegisterMatchesDivision(t *testing.T) {
	c, err := NewCodec(Standard)
	require.NoError(t, err)
	for r := 0; r < Standard.Patterns(); r++ {
		got := ShiftRegisterSyndrome(Standard, uint16(r))
		want := c.Syndrome(uint16(r))
		if got != want {
			t.Fatalf("received %015b: register syndrome %04b, division syndrome %04b", r, got, want)
		}
	}
}

func TestShiftRegisterOtherGenerator(t *testing.T) {
	// Hamming(7,4) with g(x) = x^3 + x + 1
	p := Params{Generator: 0b1011, GenLen: 4, CodeLen: 7, Errors: 1}
	require.NoError(t, p.Validate())
	for r := uint16(0); r < 1<<7; r++ {
		require.Equal(t, Mod(r, p.Generator, p.GenLen), ShiftRegisterSyndrome(p, r))
	}
}

func TestShiftRegisterSingleErrorsNonZero(t *testing.T) {
	for i := 0; i < Standard.CodeLen; i++ {
		s := ShiftRegisterSyndrome(Standard, 1<<i)
		assert.NotZero(t, s, "bit %d", i)
		assert.LessOrEqual(t, bits.Len16(s), Standard.CheckLen())
	}
}
