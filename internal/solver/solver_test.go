package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordlecore/internal/hint"
	"github.com/bent101/wordlecore/internal/matrix"
	"github.com/bent101/wordlecore/internal/search"
	"github.com/bent101/wordlecore/internal/word"
)

func mustWords(t *testing.T, raws []string) []word.Word {
	t.Helper()
	out := make([]word.Word, len(raws))
	for i, raw := range raws {
		out[i] = word.MustParse(raw, len(raw))
	}
	return out
}

func buildSolver(t *testing.T, guesses, answers []string) *Solver {
	t.Helper()
	guessWords := mustWords(t, guesses)
	answerWords := mustWords(t, answers)
	table := search.Build(answerWords, word.Alphabet)
	m := matrix.Build(guessWords, table, nil)
	return New(m, guessWords, answerWords)
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// S4: a single remaining candidate always shortcuts to a one-guess leaf.
func TestSingleCandidateShortcut(t *testing.T) {
	s := buildSolver(t, []string{"bread", "crane", "adieu"}, []string{"bread"})
	node, ok := s.Solve([]int{0}, 0, 6, 10, nil)
	require.True(t, ok)
	assert.Equal(t, FromAnswerList, node.Guess.Origin)
	assert.Equal(t, 0, node.Guess.Index)
	assert.Equal(t, 1.0, node.EstCost)
	assert.Empty(t, node.Next)
}

// S3: two remaining candidates always shortcut to a 1.5-cost two-step
// node whose single child leaf names the other candidate under the
// hint that guessing the first produces against it.
func TestTwoCandidateShortcut(t *testing.T) {
	answers := []string{"bread", "break"}
	s := buildSolver(t, []string{"bread", "break", "crane"}, answers)
	node, ok := s.Solve([]int{0, 1}, 0, 6, 10, nil)
	require.True(t, ok)
	assert.Equal(t, FromAnswerList, node.Guess.Origin)
	assert.Equal(t, 0, node.Guess.Index)
	assert.Equal(t, 1.5, node.EstCost)
	require.Len(t, node.Next, 1)

	wantHint := hint.Derive(word.MustParse("bread", 5), word.MustParse("break", 5)).ID()
	child, ok := node.Next[uint8(wantHint)]
	require.True(t, ok, "expected a child keyed by the hint BREAD would produce against BREAK")
	assert.Equal(t, FromAnswerList, child.Guess.Origin)
	assert.Equal(t, 1, child.Guess.Index)
	assert.Equal(t, 1.0, child.EstCost)
}

// depth == max_depth always fails, regardless of candidate count.
func TestFailsAtMaxDepth(t *testing.T) {
	s := buildSolver(t, []string{"bread", "break"}, []string{"bread", "break"})
	_, ok := s.Solve([]int{0, 1}, 2, 2, 10, nil)
	assert.False(t, ok)
}

// max_cost below the admissible floor for the candidate count always fails.
func TestFailsWhenMaxCostTooLow(t *testing.T) {
	s := buildSolver(t, []string{"bread", "break"}, []string{"bread", "break"})
	_, ok := s.Solve([]int{0, 1}, 0, 6, 1.0, nil) // 2 candidates need at least 1.5
	assert.False(t, ok)
}

// A guess whose partition collapses every candidate into one hint
// class can never distinguish them and must never be selected as the
// root of a multi-candidate tree.
func TestUselessGuessNeverSelected(t *testing.T) {
	answers := []string{"aabbb", "aabbc", "aabbd"}
	// "zzzzz" shares no letters with any answer: every candidate yields
	// the identical all-absent hint, so it is useless and must be
	// skipped by the outer ranking loop.
	guesses := append([]string{"zzzzz"}, answers...)
	s := buildSolver(t, guesses, answers)

	node, ok := s.Solve(indices(3), 0, 6, 10, nil)
	require.True(t, ok)
	assert.NotEqual(t, "ZZZZZ", s.Word(node.Guess).String())
}

// Running the same problem twice must yield byte-identical decisions:
// same chosen guess at the root, same set of hint keys at every level.
func TestDeterministic(t *testing.T) {
	answers := []string{"bread", "break", "brick", "adieu", "crane"}
	guesses := append([]string{"board", "stare"}, answers...)
	s := buildSolver(t, guesses, answers)

	a, okA := s.Solve(indices(len(answers)), 0, 6, 10, nil)
	b, okB := s.Solve(indices(len(answers)), 0, 6, 10, nil)
	require.True(t, okA)
	require.True(t, okB)
	assertTreesEqual(t, a, b)
}

func assertTreesEqual(t *testing.T, a, b *TreeNode) {
	t.Helper()
	require.Equal(t, a.Guess, b.Guess)
	require.Equal(t, a.EstCost, b.EstCost)
	require.Equal(t, len(a.Next), len(b.Next))
	for hintID, childA := range a.Next {
		childB, ok := b.Next[hintID]
		require.True(t, ok)
		assertTreesEqual(t, childA, childB)
	}
}

// Every root-to-leaf path, replayed against the hint matrix, must
// terminate at a leaf naming the answer that induced those hints.
func TestTreeReplayReachesNamedAnswer(t *testing.T) {
	answers := []string{"bread", "break", "brick", "adieu", "crane"}
	guesses := append([]string{"board", "stare"}, answers...)
	s := buildSolver(t, guesses, answers)

	root, ok := s.Solve(indices(len(answers)), 0, 6, 10, nil)
	require.True(t, ok)

	for ai := range answers {
		node := root
		depth := 0
		for {
			depth++
			require.LessOrEqual(t, depth, 6, "path for answer %s exceeded max depth", answers[ai])
			guessInd := s.resolveToGuessIndex(node.Guess)
			h := s.Hints.Get(guessInd, ai)
			if node.Guess.Origin == FromAnswerList && node.Guess.Index == ai {
				break // this node's own guess is the answer: identified
			}
			child, ok := node.Next[h]
			require.True(t, ok, "no child for hint %d on answer %s", h, answers[ai])
			node = child
		}
	}
}

func (s *Solver) resolveToGuessIndex(ref GuessRef) int {
	if ref.Origin == FromAnswerList {
		return s.answerToGuess[ref.Index]
	}
	return ref.Index
}

// Tightening max_cost can only ever reject a strategy that a looser
// budget accepted; it must never allow a cheaper tree to appear out of
// a stricter budget than a looser one already found.
func TestCostMonotonicity(t *testing.T) {
	answers := []string{"bread", "break", "brick", "adieu", "crane"}
	guesses := append([]string{"board", "stare"}, answers...)
	s := buildSolver(t, guesses, answers)

	loose, okLoose := s.Solve(indices(len(answers)), 0, 6, 10, nil)
	require.True(t, okLoose)

	tight, okTight := s.Solve(indices(len(answers)), 0, 6, loose.EstCost, nil)
	if okTight {
		assert.LessOrEqual(t, tight.EstCost, loose.EstCost)
	}

	_, okImpossible := s.Solve(indices(len(answers)), 0, 6, loose.EstCost-0.2, nil)
	assert.False(t, okImpossible, "a budget tighter than the best known cost must not suddenly succeed")
}
