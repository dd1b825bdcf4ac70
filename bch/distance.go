package bch

import "strings"

// HammingDist counts the bit positions in which a and b differ, over all 16
// positions.
func HammingDist(a, b uint16) int {
	d := 0
	for i := 0; i < wordBits; i++ {
		mask := uint16(1) << i
		if a&mask != b&mask {
			d++
		}
	}
	return d
}

// Weight is the distance of v from the all-zero word.
func Weight(v uint16) int { return HammingDist(v, 0) }

// BitString formats the low width bits of v as a zero-padded binary string,
// most significant bit first.
func BitString(v uint16, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(width)
	for i := width - 1; i >= 0; i-- {
		if i < wordBits && v&(1<<i) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
