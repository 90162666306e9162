// Package hint implements the ternary feedback alphabet (Correct /
// Misplaced / Absent), the guess-to-answer hint derivation rule, and
// the canonical base-3 hint id encoding used to index the hint matrix.
package hint

import (
	"golang.org/x/exp/slices"

	"github.com/bent101/wordlecore/internal/word"
)

// CharHint is the per-position feedback symbol.
type CharHint uint8

const (
	// Correct means the guessed character is in the right position.
	Correct CharHint = iota
	// Misplaced means the guessed character is in the answer, elsewhere.
	Misplaced
	// Absent means the guessed character does not appear (enough times) in the answer.
	Absent
)

// String renders the hint as the 3-symbol glyph alphabet: √ for
// Correct, ~ for Misplaced, X for Absent.
func (h CharHint) String() string {
	switch h {
	case Correct:
		return "√"
	case Misplaced:
		return "~"
	default:
		return "X"
	}
}

// WordHint is the full per-position feedback sequence for one guess.
type WordHint []CharHint

// Derive computes the canonical hint sequence for guess played against
// answer, under the standard two-pass Wordle tie-breaking rule:
// correct positions are marked first and removed from further
// matching, then remaining guess positions are scanned left to right
// and marked Misplaced against the still-unmatched answer characters.
func Derive(guess, answer word.Word) WordHint {
	n := len(guess)
	out := make(WordHint, n)
	for i := range out {
		out[i] = Absent
	}

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			out[i] = Correct
		}
	}

	// Characters of answer at positions the guess didn't land on,
	// consumed left-to-right as the guess claims Misplaced matches.
	var unmatched []byte
	for i := 0; i < n; i++ {
		if out[i] != Correct {
			unmatched = append(unmatched, answer[i])
		}
	}

	for i := 0; i < n; i++ {
		if out[i] == Correct {
			continue
		}
		if j := slices.Index(unmatched, guess[i]); j >= 0 {
			out[i] = Misplaced
			unmatched = slices.Remove(unmatched, j, j+1)
		}
	}

	return out
}

// ID encodes the hint as a base-3 little-endian integer: digit 0 =
// Correct, 1 = Misplaced, 2 = Absent. The all-zero id is the win state.
func (h WordHint) ID() int {
	id := 0
	mult := 1
	for _, c := range h {
		id += int(c) * mult
		mult *= 3
	}
	return id
}

// FromID decodes a base-3 little-endian hint id of the given word size.
func FromID(id, wordSize int) WordHint {
	out := make(WordHint, wordSize)
	for i := 0; i < wordSize; i++ {
		out[i] = CharHint(id % 3)
		id /= 3
	}
	return out
}

// All enumerates every one of the 3^wordSize hints, in ID order.
func All(wordSize int) []WordHint {
	total := 1
	for i := 0; i < wordSize; i++ {
		total *= 3
	}
	out := make([]WordHint, total)
	for id := 0; id < total; id++ {
		out[id] = FromID(id, wordSize)
	}
	return out
}

// String renders the hint using the 3-symbol glyph alphabet.
func (h WordHint) String() string {
	bs := make([]byte, 0, len(h)*3)
	for _, c := range h {
		bs = append(bs, []byte(c.String())...)
	}
	return string(bs)
}

// Possible reports false for a hint that claims a character is
// Misplaced at some position after an earlier position already claimed
// the same character is Absent: the derivation rule always resolves
// Misplaced assignments before running out of "missed" occurrences, so
// such a hint could never have been produced. That ordering rule is the
// only check made. A hint that passes it can still be unreachable for
// other reasons (for guess ABCDE, √√√√~ passes, yet no answer yields
// it), so a true result does not guarantee that some answer exists.
func Possible(guess word.Word, h WordHint) bool {
	seenAbsent := map[byte]bool{}
	for i, c := range h {
		chr := guess[i]
		switch c {
		case Absent:
			seenAbsent[chr] = true
		case Misplaced:
			if seenAbsent[chr] {
				return false
			}
		}
	}
	return true
}
