// Package query implements the predicate language over words
// (positional match, exact/at-least character counts, and boolean
// combinators) and the compiler from a (guess, hint) pair into it.
package query

import (
	"github.com/bent101/wordlecore/internal/hint"
	"github.com/bent101/wordlecore/internal/word"
)

// Kind tags which variant a Query node is.
type Kind int

const (
	// Match filters for words holding Chr at position Pos.
	Match Kind = iota
	// CountExact filters for words containing exactly Count instances of Chr.
	CountExact
	// CountAtLeast filters for words containing at least Count instances of Chr.
	CountAtLeast
	// Not filters for words that do not satisfy Child.
	Not
	// And filters for words that satisfy every query in Children.
	And
	// Or filters for words that satisfy any query in Children.
	Or
)

// Query is a predicate over words, as a tagged variant tree.
type Query struct {
	Kind     Kind
	Pos      int
	Chr      byte
	Count    int
	Child    *Query
	Children []Query
}

func NewMatch(pos int, chr byte) Query        { return Query{Kind: Match, Pos: pos, Chr: chr} }
func NewCountExact(count int, chr byte) Query { return Query{Kind: CountExact, Count: count, Chr: chr} }
func NewCountAtLeast(count int, chr byte) Query {
	return Query{Kind: CountAtLeast, Count: count, Chr: chr}
}
func NewNot(child Query) Query   { return Query{Kind: Not, Child: &child} }
func NewAnd(qs []Query) Query    { return Query{Kind: And, Children: qs} }
func NewOr(qs []Query) Query     { return Query{Kind: Or, Children: qs} }

// charCounts tallies, for one character across a guess, how many
// positions the guess assigned each hint symbol to.
type charCounts struct {
	correct, misplaced, absent int
}

// CompileClue translates a (guess, hint) pair into the query that
// selects exactly the answers consistent with observing that hint for
// that guess.
func CompileClue(guess word.Word, h hint.WordHint) Query {
	var subQueries []Query
	counts := map[byte]*charCounts{}

	touch := func(chr byte) *charCounts {
		c, ok := counts[chr]
		if !ok {
			c = &charCounts{}
			counts[chr] = c
		}
		return c
	}

	for i, c := range h {
		chr := guess[i]
		switch c {
		case hint.Correct:
			touch(chr).correct++
			subQueries = append(subQueries, NewMatch(i, chr))
		case hint.Misplaced:
			touch(chr).misplaced++
			subQueries = append(subQueries, NewNot(NewMatch(i, chr)))
		default: // hint.Absent
			touch(chr).absent++
			subQueries = append(subQueries, NewNot(NewMatch(i, chr)))
		}
	}

	// Order characters deterministically so repeated compiles of the
	// same (guess, hint) always produce byte-identical query trees.
	chars := make([]byte, 0, len(counts))
	for chr := range counts {
		chars = append(chars, chr)
	}
	sortBytes(chars)

	for _, chr := range chars {
		c := counts[chr]
		if c.misplaced == 0 && c.absent == 0 {
			// Every occurrence of this char landed Correct; no extra fact to add.
			continue
		}
		if c.absent > 0 {
			subQueries = append(subQueries, NewCountExact(c.correct+c.misplaced, chr))
		} else {
			subQueries = append(subQueries, NewCountAtLeast(c.correct+c.misplaced, chr))
		}
	}

	return NewAnd(subQueries)
}

func sortBytes(bs []byte) {
	for i := 1; i < len(bs); i++ {
		for j := i; j > 0 && bs[j-1] > bs[j]; j-- {
			bs[j-1], bs[j] = bs[j], bs[j-1]
		}
	}
}
