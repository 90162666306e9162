// Package word implements the fixed-length small-alphabet word type
// shared by the hint, query, and search layers.
package word

import (
	"strings"

	"github.com/pkg/errors"
)

// Word is a fixed-length tuple of small integers in [0, Alphabet),
// immutable after construction. Equality and ordering are lexicographic
// over the byte slice.
type Word []byte

// Alphabet is the alphabet size every Word in this process is built
// against. The spec allows it to vary per configuration; the default
// matches the classic English 26-letter board.
const Alphabet = 26

// Parse converts a raw string into a Word of the given length. It
// rejects strings of the wrong length or containing non-alphabetic
// bytes, and normalises to uppercase before computing character
// indices (A=0 .. Z=25).
func Parse(raw string, length int) (Word, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) != length {
		return nil, errors.Errorf("word %q: want length %d, got %d", raw, length, len(trimmed))
	}
	upper := strings.ToUpper(trimmed)
	out := make(Word, length)
	for i := 0; i < length; i++ {
		b := upper[i]
		if b < 'A' || b > 'Z' {
			return nil, errors.Errorf("word %q: byte %q at position %d is not alphabetic", raw, upper[i], i)
		}
		out[i] = b - 'A'
	}
	return out, nil
}

// MustParse is Parse but panics on error; useful in tests and constants.
func MustParse(raw string, length int) Word {
	w, err := Parse(raw, length)
	if err != nil {
		panic(err)
	}
	return w
}

// CountChr returns how many positions hold the given character index.
func (w Word) CountChr(chr byte) int {
	count := 0
	for _, c := range w {
		if c == chr {
			count++
		}
	}
	return count
}

// String renders the word back to uppercase text.
func (w Word) String() string {
	out := make([]byte, len(w))
	for i, c := range w {
		out[i] = 'A' + c
	}
	return string(out)
}

// Equal reports whether two words hold identical character sequences.
func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}
	return true
}

// Less gives the lexicographic order used for deterministic tie-breaks.
func (w Word) Less(other Word) bool {
	for i := 0; i < len(w) && i < len(other); i++ {
		if w[i] != other[i] {
			return w[i] < other[i]
		}
	}
	return len(w) < len(other)
}
