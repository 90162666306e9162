package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordlecore/internal/query"
	"github.com/bent101/wordlecore/internal/word"
)

const alphabet = 26

func wordsFromStrs(t *testing.T, raws []string) []word.Word {
	t.Helper()
	out := make([]word.Word, len(raws))
	for i, raw := range raws {
		out[i] = word.MustParse(raw, len(raw))
	}
	return out
}

func assertQueryResult(t *testing.T, words []string, q query.Query, expected []string) {
	t.Helper()
	table := Build(wordsFromStrs(t, words), alphabet)
	mask := table.Eval(q)
	result := table.FilterWords(mask)
	want := wordsFromStrs(t, expected)
	require.Len(t, result, len(want))
	for i := range want {
		assert.True(t, result[i].Equal(want[i]), "got %s want %s", result[i], want[i])
	}
}

func setSubtract(a, b []string) []string {
	bSet := map[string]bool{}
	for _, x := range b {
		bSet[x] = true
	}
	var out []string
	for _, x := range a {
		if !bSet[x] {
			out = append(out, x)
		}
	}
	return out
}

func assertQueryResultAndInverse(t *testing.T, words []string, q query.Query, expected []string) {
	t.Helper()
	assertQueryResult(t, words, q, expected)
	assertQueryResult(t, words, query.NewNot(q), setSubtract(words, expected))
}

func TestQueryMatch(t *testing.T) {
	assertQueryResultAndInverse(t,
		[]string{"foo", "bar", "baz"},
		query.NewMatch(1, 0),
		[]string{"bar", "baz"},
	)
}

func TestQueryCountExact(t *testing.T) {
	words := []string{"bbc", "cbc", "abc", "bca", "baa", "aac", "aaa"}
	assertQueryResultAndInverse(t, words, query.NewCountExact(0, 0), []string{"bbc", "cbc"})
	assertQueryResultAndInverse(t, words, query.NewCountExact(1, 0), []string{"abc", "bca"})
	assertQueryResultAndInverse(t, words, query.NewCountExact(2, 0), []string{"baa", "aac"})
	assertQueryResultAndInverse(t, words, query.NewCountExact(3, 0), []string{"aaa"})
}

func TestQueryCountAtLeast(t *testing.T) {
	words := []string{"bbc", "cbc", "abc", "bca", "baa", "aac", "aaa"}
	assertQueryResultAndInverse(t, words, query.NewCountAtLeast(0, 0), words)
	assertQueryResultAndInverse(t, words, query.NewCountAtLeast(1, 0), []string{"abc", "bca", "baa", "aac", "aaa"})
	assertQueryResultAndInverse(t, words, query.NewCountAtLeast(2, 0), []string{"baa", "aac", "aaa"})
	assertQueryResultAndInverse(t, words, query.NewCountAtLeast(3, 0), []string{"aaa"})
}

func TestQueryAndGroup(t *testing.T) {
	assertQueryResultAndInverse(t,
		[]string{"foo", "bar", "baz", "biz", "buz"},
		query.NewAnd([]query.Query{query.NewMatch(1, 0), query.NewCountAtLeast(1, 25)}),
		[]string{"baz"},
	)
}

func TestQueryOrGroup(t *testing.T) {
	assertQueryResultAndInverse(t,
		[]string{"foo", "bar", "baz", "biz", "buz"},
		query.NewOr([]query.Query{query.NewMatch(1, 0), query.NewCountAtLeast(1, 25)}),
		[]string{"bar", "baz", "biz", "buz"},
	)
}

// Guess BOARD against answer BREAD yields √X~~√; a hand-written query
// expressing that hint's facts, evaluated against the 30-word set,
// returns exactly {bread}.
func TestQueryRealisticBoardBread(t *testing.T) {
	words := []string{
		"badly", "basic", "basis", "beach", "begin", "being", "below", "bench", "bible",
		"birth", "black", "blade", "blame", "blind", "block", "blood", "board", "brain",
		"brand", "bread", "break", "brick", "brief", "bring", "broad", "brown", "brush",
		"build", "bunch", "buyer",
	}
	q := query.NewAnd([]query.Query{
		query.NewMatch(0, 1),                  // B correct
		query.NewMatch(4, 3),                  // D correct
		query.NewNot(query.NewCountAtLeast(1, 14)), // no O
		query.NewAnd([]query.Query{ // A elsewhere
			query.NewCountAtLeast(1, 0),
			query.NewNot(query.NewMatch(2, 0)),
		}),
		query.NewOr([]query.Query{ // R elsewhere (alternate representation)
			query.NewMatch(1, 17),
			query.NewMatch(2, 17),
		}),
	})
	assertQueryResultAndInverse(t, words, q, []string{"bread"})
}

func TestFilterPreservesInvariants(t *testing.T) {
	table := Build(wordsFromStrs(t, []string{"bbc", "cbc", "abc", "bca", "baa", "aac", "aaa"}), alphabet)
	mask := table.Eval(query.NewCountAtLeast(1, 0))
	sub := table.Filter(mask)
	require.Equal(t, 5, sub.Len())
	all := sub.Eval(query.NewCountAtLeast(1, 0))
	assert.Equal(t, sub.Len(), all.CountTrue())
}

func TestPositionalMatchExclusivity(t *testing.T) {
	table := Build(wordsFromStrs(t, []string{"foo", "bar", "baz"}), alphabet)
	for pos := 0; pos < 3; pos++ {
		acc := 0
		for chr := 0; chr < alphabet; chr++ {
			acc += table.Eval(query.NewMatch(pos, byte(chr))).CountTrue()
		}
		assert.Equal(t, 3, acc, "exactly one char column should be set per row at position %d", pos)
	}
}
