package bch

// Polynomial arithmetic over GF(2) on values of at most 16 bits.
// Addition and subtraction are both XOR.

const wordBits = 16

// Mask returns a value with the lowest n bits set. n <= 0 gives 0 and
// n >= 16 gives 0xffff.
func Mask(n int) uint16 {
	if n <= 0 {
		return 0
	}
	if n >= wordBits {
		return 0xffff
	}
	return uint16(1)<<n - 1
}

// Mod returns the remainder of dividend divided by divisor, where digits is
// the bit length of divisor including its leading 1. The result always fits
// in digits-1 bits.
func Mod(dividend, divisor uint16, digits int) uint16 {
	if digits < 1 {
		return 0
	}
	if digits > wordBits {
		digits = wordBits
	}
	window := Mask(digits)
	divisor &= window
	for i := wordBits - 1; i >= digits-1; i-- {
		if dividend&(1<<i) == 0 {
			continue
		}
		shift := i - (digits - 1)
		part := (dividend >> shift) & window
		dividend &^= window << shift
		dividend |= (part ^ divisor) << shift
	}
	return dividend & Mask(digits-1)
}

// ShiftRegisterSyndrome computes the syndrome of received the way a
// division circuit does: one register stage per check bit, fed MSB first,
// with feedback taps at the generator's non-leading coefficients. The
// register contents are packed with OR into a CheckLen-bit value.
func ShiftRegisterSyndrome(p Params, received uint16) uint16 {
	stages := p.CheckLen()
	if stages <= 0 {
		return 0
	}
	taps := p.Generator & Mask(stages)
	top := uint16(1) << (stages - 1)

	var reg uint16
	for i := p.CodeLen - 1; i >= 0; i-- {
		in := (received >> i) & 1
		feedback := reg&top != 0
		reg = (reg<<1 | in) & Mask(stages)
		if feedback {
			reg ^= taps
		}
	}
	return reg
}
