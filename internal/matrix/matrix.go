// Package matrix materialises the dense hint matrix H[g][a] so the
// solver never recomputes a guess/answer hint during search.
package matrix

import (
	"github.com/bent101/wordlecore/internal/hint"
	"github.com/bent101/wordlecore/internal/query"
	"github.com/bent101/wordlecore/internal/search"
	"github.com/bent101/wordlecore/internal/word"
)

// Matrix is the dense |guesses| x |answers| hint-id table.
type Matrix struct {
	rows     [][]uint8
	wordSize int
}

// Row returns the hint ids for one guess against every answer.
func (m *Matrix) Row(guessInd int) []uint8 { return m.rows[guessInd] }

// Get returns H[guessInd][answerInd].
func (m *Matrix) Get(guessInd, answerInd int) uint8 { return m.rows[guessInd][answerInd] }

// NumGuesses returns |guesses|.
func (m *Matrix) NumGuesses() int { return len(m.rows) }

// WordSize returns the fixed word length the matrix's hints were
// derived from.
func (m *Matrix) WordSize() int { return m.wordSize }

// ProgressFunc is called once per guess processed, for CLI progress
// reporting; it may be nil.
type ProgressFunc func(done, total int)

// Build computes H[g][a] for every guess in guesses against every
// answer in the searchable answers table: for each guess, enumerate
// the 3^W candidate hints, skip unreachable ones, compile each to a
// query, and evaluate it against the answer table to find every
// answer producing that hint.
func Build(guesses []word.Word, answers *search.Table, onProgress ProgressFunc) *Matrix {
	wordSize := answers.WordSize()
	m := &Matrix{rows: make([][]uint8, len(guesses)), wordSize: wordSize}

	allHints := hint.All(wordSize)

	for gi, guess := range guesses {
		row := make([]uint8, answers.Len())
		for _, h := range allHints {
			if !hint.Possible(guess, h) {
				continue
			}
			mask := answers.Eval(query.CompileClue(guess, h))
			if mask.CountTrue() == 0 {
				continue
			}
			id := uint8(h.ID())
			for _, answerInd := range mask.TrueIndices() {
				row[answerInd] = id
			}
		}
		m.rows[gi] = row
		if onProgress != nil {
			onProgress(gi+1, len(guesses))
		}
	}

	return m
}
