package analysis

import "github.com/observe-l/bchcode/bch"

type SyndromeEntry struct {
	Pattern  uint16
	Syndrome uint16
}

// SyndromeTable lists the syndrome of every received pattern within
// Params.Errors bit flips of the all-zero word, in ascending pattern order.
type SyndromeTable struct {
	Params  bch.Params
	Entries []SyndromeEntry
}

func BuildSyndromeTable(c Coder) SyndromeTable {
	p := c.Params()
	t := SyndromeTable{Params: p}
	for v := 0; v < p.Patterns(); v++ {
		pattern := uint16(v)
		if bch.Weight(pattern) > p.Errors {
			continue
		}
		t.Entries = append(t.Entries, SyndromeEntry{Pattern: pattern, Syndrome: c.Syndrome(pattern)})
	}
	return t
}

// Correctable reports whether every non-zero pattern in the table has its
// own non-zero syndrome, which is what decoding by table lookup requires.
func (t SyndromeTable) Correctable() bool {
	seen := make(map[uint16]bool, len(t.Entries))
	for _, e := range t.Entries {
		if e.Pattern == 0 {
			continue
		}
		if e.Syndrome == 0 || seen[e.Syndrome] {
			return false
		}
		seen[e.Syndrome] = true
	}
	return true
}
