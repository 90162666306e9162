// Package search implements the searchable word table: precomputed
// positional, exact-count, and at-least-count columns over a word set,
// and a Query evaluator that folds them into a row mask.
package search

import (
	"github.com/bent101/wordlecore/internal/bitset"
	"github.com/bent101/wordlecore/internal/query"
	"github.com/bent101/wordlecore/internal/word"
)

// Table owns a word vector and the column block built over it: for
// each character, WordSize positional columns, WordSize+1 exact-count
// columns, and WordSize-1 at-least-count columns for thresholds
// 1..WordSize-1 (thresholds 0 and WordSize are answered without a
// stored column).
type Table struct {
	words     []word.Word
	wordSize  int
	alphabet  int
	columns   []bitset.Column // flat, blockSize per character
	blockSize int
}

// Build constructs a Table from a word set. All words must share the
// same length; that length becomes the table's WordSize.
func Build(words []word.Word, alphabet int) *Table {
	wordSize := 0
	if len(words) > 0 {
		wordSize = len(words[0])
	}
	blockSize := wordSize * 3 // W match + (W+1) exact + (W-1) at-least columns per character
	t := &Table{
		words:     words,
		wordSize:  wordSize,
		alphabet:  alphabet,
		blockSize: blockSize,
		columns:   make([]bitset.Column, 0, alphabet*blockSize),
	}

	for chr := 0; chr < alphabet; chr++ {
		// Positional match columns.
		for pos := 0; pos < wordSize; pos++ {
			bs := make([]bool, len(words))
			for i, w := range words {
				bs[i] = w[pos] == byte(chr)
			}
			t.columns = append(t.columns, bitset.FromBools(bs))
		}

		// Per-word counts of this character, computed once.
		counts := make([]int, len(words))
		for i, w := range words {
			counts[i] = w.CountChr(byte(chr))
		}

		// Exact-count one-hot columns, 0..WordSize inclusive.
		exactCols := bitset.OneHot(counts, wordSize+1)
		t.columns = append(t.columns, exactCols...)

		// At-least-count columns, thresholds 1..WordSize-1.
		for threshold := 1; threshold < wordSize; threshold++ {
			bs := make([]bool, len(words))
			for i, c := range counts {
				bs[i] = c >= threshold
			}
			t.columns = append(t.columns, bitset.FromBools(bs))
		}
	}

	return t
}

func (t *Table) matchCol(pos int, chr byte) bitset.Column {
	start := int(chr) * t.blockSize
	return t.columns[start+pos]
}

func (t *Table) exactCol(count int, chr byte) bitset.Column {
	start := int(chr)*t.blockSize + t.wordSize
	return t.columns[start+count]
}

func (t *Table) atLeastCol(count int, chr byte) bitset.Column {
	start := int(chr)*t.blockSize + t.wordSize*2 + 1
	return t.columns[start+count-1]
}

// Eval evaluates a query against the table, returning a row mask.
func (t *Table) Eval(q query.Query) bitset.Column {
	switch q.Kind {
	case query.Match:
		return t.matchCol(q.Pos, q.Chr).Clone()
	case query.CountExact:
		return t.exactCol(q.Count, q.Chr).Clone()
	case query.CountAtLeast:
		switch {
		case q.Count == 0:
			return bitset.AllTrue(len(t.words))
		case q.Count == t.wordSize:
			return t.exactCol(q.Count, q.Chr).Clone()
		default:
			return t.atLeastCol(q.Count, q.Chr).Clone()
		}
	case query.Not:
		return t.Eval(*q.Child).Not()
	case query.And:
		acc := bitset.AllTrue(len(t.words))
		for _, child := range q.Children {
			acc.And(t.Eval(child))
		}
		return acc
	case query.Or:
		acc := bitset.AllFalse(len(t.words))
		for _, child := range q.Children {
			acc.Or(t.Eval(child))
		}
		return acc
	default:
		panic("search: unknown query kind")
	}
}

// FilterWords returns the words surviving the given mask.
func (t *Table) FilterWords(mask bitset.Column) []word.Word {
	inds := mask.TrueIndices()
	out := make([]word.Word, len(inds))
	for i, ind := range inds {
		out[i] = t.words[ind]
	}
	return out
}

// Filter builds a new table carrying only the rows selected by mask,
// with every column filtered down to match.
func (t *Table) Filter(mask bitset.Column) *Table {
	inds := mask.TrueIndices()
	out := &Table{
		wordSize:  t.wordSize,
		alphabet:  t.alphabet,
		blockSize: t.blockSize,
		words:     make([]word.Word, len(inds)),
		columns:   make([]bitset.Column, len(t.columns)),
	}
	for i, ind := range inds {
		out.words[i] = t.words[ind]
	}
	for i, col := range t.columns {
		out.columns[i] = col.Filter(inds)
	}
	return out
}

// Words returns the words held by the table.
func (t *Table) Words() []word.Word { return t.words }

// Len returns the number of words in the table.
func (t *Table) Len() int { return len(t.words) }

// WordSize returns the fixed word length this table was built over.
func (t *Table) WordSize() int { return t.wordSize }
