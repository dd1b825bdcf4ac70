package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/observe-l/bchcode/analysis"
	"github.com/observe-l/bchcode/bch"
)

// WriteFile creates path (truncating any existing file) and hands a buffered
// writer to fn. Any create, write, flush or close failure is returned with
// the path attached; a partially written file is left in place.
func WriteFile(path string, fn func(w io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// WriteCodewords writes one CodeLen-bit binary string per codeword in
// information-word order.
func WriteCodewords(w io.Writer, cb *analysis.Codebook) error {
	for _, cw := range cb.Codewords {
		if _, err := fmt.Fprintln(w, bch.BitString(cw, cb.Params.CodeLen)); err != nil {
			return err
		}
	}
	return nil
}

// WriteSyndromes writes "<pattern> : <syndrome>" per table entry.
func WriteSyndromes(w io.Writer, t analysis.SyndromeTable) error {
	for _, e := range t.Entries {
		_, err := fmt.Fprintf(w, "%s : %s\n",
			bch.BitString(e.Pattern, t.Params.CodeLen),
			bch.BitString(e.Syndrome, t.Params.CheckLen()))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteHistogram writes "<distance> : <count>" per populated distance,
// ascending.
func WriteHistogram(w io.Writer, h *analysis.Histogram) error {
	for _, b := range h.Bins() {
		if _, err := fmt.Fprintf(w, "%d : %d\n", b.Distance, b.Count); err != nil {
			return err
		}
	}
	return nil
}
