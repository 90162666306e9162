// Package solver implements a branch-and-bound decision tree builder:
// given a dense hint matrix and a set of remaining candidate answers,
// find a minimum expected-cost guessing strategy that identifies the
// answer within a depth and cost budget.
package solver

import (
	"sort"

	"golang.org/x/exp/slices"

	"github.com/bent101/wordlecore/internal/matrix"
	"github.com/bent101/wordlecore/internal/word"
)

// Origin tags whether a TreeNode's guess was drawn from the full
// allowed-guess list or selected directly out of the remaining answer
// candidates, mirroring the two index spaces the original solver kept
// separate (decision_tree_general.rs's GuessFrom enum).
type Origin int

const (
	FromGuessList Origin = iota
	FromAnswerList
)

// GuessRef names a guess by origin and index into that origin's list.
type GuessRef struct {
	Origin Origin
	Index  int
}

// TreeNode is one node of a decision tree: the guess to play here, the
// expected number of guesses from this state onward (including this
// one), and the subtree reached for each hint the guess can produce.
type TreeNode struct {
	Guess   GuessRef
	EstCost float64
	Next    map[uint8]*TreeNode
}

// Solver closes over the precomputed hint matrix and the guess/answer
// word lists needed to resolve a GuessRef back to text, and to know
// when a guess drawn from the full guess list also happens to be a
// member of the answer list (used only to break exact cost ties).
type Solver struct {
	Hints         *matrix.Matrix
	GuessWords    []word.Word
	AnswerWords   []word.Word
	isAnswerWord  []bool
	answerToGuess []int
}

// New builds a Solver. guessWords and answerWords must be the same
// lists the hint matrix was built from: guessWords indexes Hints'
// guess axis, answerWords indexes its answer axis. Every answer word
// is expected to also appear somewhere in guessWords (the word-list
// loading step guarantees this by appending any missing ones).
func New(hints *matrix.Matrix, guessWords, answerWords []word.Word) *Solver {
	s := &Solver{
		Hints:         hints,
		GuessWords:    guessWords,
		AnswerWords:   answerWords,
		isAnswerWord:  make([]bool, len(guessWords)),
		answerToGuess: make([]int, len(answerWords)),
	}

	guessIndexOf := make(map[string]int, len(guessWords))
	for gi, w := range guessWords {
		guessIndexOf[w.String()] = gi
	}
	for ai, w := range answerWords {
		gi, ok := guessIndexOf[w.String()]
		if !ok {
			panic("solver: answer word not present in guess list: " + w.String())
		}
		s.isAnswerWord[gi] = true
		s.answerToGuess[ai] = gi
	}

	return s
}

// partitionClass is one hint class within a guess's partition of the
// current candidate set.
type partitionClass struct {
	hintID  uint8
	members []int // answer indices
}

func (s *Solver) partition(guessInd int, candidates []int) []partitionClass {
	byHint := map[uint8][]int{}
	for _, a := range candidates {
		id := s.Hints.Get(guessInd, a)
		byHint[id] = append(byHint[id], a)
	}
	out := make([]partitionClass, 0, len(byHint))
	for id, members := range byHint {
		out = append(out, partitionClass{hintID: id, members: members})
	}
	return out
}

func largestClassSize(classes []partitionClass) int {
	largest := 0
	for _, c := range classes {
		if len(c.members) > largest {
			largest = len(c.members)
		}
	}
	return largest
}

// Solve builds a decision tree over candidates, returning (node, true)
// on success, or (nil, false) if no strategy respects maxDepth and
// maxCost. depth is the number of guesses already played on the path
// leading here; maxDepth bounds total guesses; maxCost bounds the
// returned node's own EstCost. printer may be nil.
func (s *Solver) Solve(candidates []int, depth, maxDepth int, maxCost float64, printer Printer) (*TreeNode, bool) {
	if printer != nil && !printer.ShouldPrintAtDepth(depth) {
		printer = nil
	}

	cands := append([]int(nil), candidates...)
	slices.Sort(cands)

	// Terminal shortcuts, applied strictly in this order.
	if depth == maxDepth {
		return nil, false
	}
	if maxCost < 1 {
		return nil, false
	}
	if len(cands) == 1 {
		return &TreeNode{Guess: GuessRef{FromAnswerList, cands[0]}, EstCost: 1}, true
	}
	if depth == maxDepth-1 && len(cands) > 1 {
		return nil, false
	}
	if maxCost < 1.5 {
		return nil, false
	}
	if len(cands) == 2 {
		first, second := cands[0], cands[1]
		guessInd := s.answerToGuess[first]
		hintID := s.Hints.Get(guessInd, second)
		if printer != nil {
			printer.Printf("two-candidate shortcut: %s vs %s", s.FmtAnswer(first), s.FmtAnswer(second))
		}
		return &TreeNode{
			Guess:   GuessRef{FromAnswerList, first},
			EstCost: 1.5,
			Next: map[uint8]*TreeNode{
				hintID: {Guess: GuessRef{FromAnswerList, second}, EstCost: 1},
			},
		}, true
	}

	p := len(cands)
	type rankedGuess struct {
		guessInd int
		classes  []partitionClass
		largest  int
	}
	ranked := make([]rankedGuess, 0, len(s.GuessWords))
	for g := 0; g < len(s.GuessWords); g++ {
		classes := s.partition(g, cands)
		largest := largestClassSize(classes)
		if largest == p {
			continue // useless: every candidate yields the same hint
		}
		ranked = append(ranked, rankedGuess{guessInd: g, classes: classes, largest: largest})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.largest != b.largest {
			return a.largest < b.largest
		}
		return a.guessInd < b.guessInd
	})

	guessMaxEstCost := maxCost
	var best *TreeNode
	bestIsAnswer := false

	for _, rg := range ranked {
		// Every class except the all-correct one (hint id 0) contributes
		// (2*size-1)/p to the lower bound. The win class is identified by
		// playing this guess, so it adds no cost; it still gets a leaf
		// child below so a replayed all-correct hint has somewhere to land.
		lowerBoundExtra := 0.0
		for _, c := range rg.classes {
			if c.hintID == 0 {
				continue
			}
			lowerBoundExtra += (2*float64(len(c.members)) - 1) / float64(p)
		}
		guessLowerBound := 1 + lowerBoundExtra
		if guessLowerBound >= guessMaxEstCost {
			continue // admissible bound already meets the best cost found; no partition here can beat it
		}

		ordered := append([]partitionClass(nil), rg.classes...)
		sort.Slice(ordered, func(i, j int) bool {
			a, b := ordered[i], ordered[j]
			if len(a.members) != len(b.members) {
				return len(a.members) > len(b.members) // largest classes first
			}
			return a.hintID < b.hintID
		})

		childPrinter := printer
		if printer != nil {
			childPrinter = printer.WithPrefix(printer.FmtGuess(rg.guessInd) + " ")
		}

		runningExcess := 0.0
		abandoned := false
		newChildren := map[uint8]*TreeNode{}
		for _, c := range ordered {
			if c.hintID == 0 {
				newChildren[0] = &TreeNode{Guess: GuessRef{FromAnswerList, c.members[0]}, EstCost: 1}
				continue
			}
			size := len(c.members)
			likelihood := float64(size) / float64(p)
			classFloorChild := (2*float64(size) - 1) / float64(size)

			optimisticTotalSoFar := 1 + lowerBoundExtra + runningExcess
			if optimisticTotalSoFar >= guessMaxEstCost {
				abandoned = true
				break
			}
			slack := guessMaxEstCost - optimisticTotalSoFar
			childMax := classFloorChild + slack/likelihood

			var clsPrinter Printer
			if childPrinter != nil {
				clsPrinter = childPrinter.WithPrefix(childPrinter.FmtHint(c.hintID) + " ")
			}
			child, ok := s.Solve(c.members, depth+1, maxDepth, childMax, clsPrinter)
			if !ok {
				abandoned = true
				break
			}
			runningExcess += (child.EstCost - classFloorChild) * likelihood
			newChildren[c.hintID] = child

			if 1+lowerBoundExtra+runningExcess >= guessMaxEstCost {
				abandoned = true
				break
			}
		}
		if abandoned {
			continue
		}

		finalEstCost := 1 + lowerBoundExtra + runningExcess
		isAnswer := s.isAnswerWord[rg.guessInd]
		improves := finalEstCost < guessMaxEstCost ||
			(finalEstCost == guessMaxEstCost && isAnswer && !bestIsAnswer)
		if improves {
			guessMaxEstCost = finalEstCost
			best = &TreeNode{
				Guess:   GuessRef{FromGuessList, rg.guessInd},
				EstCost: finalEstCost,
				Next:    newChildren,
			}
			bestIsAnswer = isAnswer
			if printer != nil {
				printer.Printf("new best: %s at %.4f", printer.FmtGuess(rg.guessInd), finalEstCost)
			}
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}

// FmtAnswer renders an answer-list word for tracing, independent of
// any Printer implementation.
func (s *Solver) FmtAnswer(answerInd int) string { return s.AnswerWords[answerInd].String() }

// FmtGuess renders a guess-list word for tracing.
func (s *Solver) FmtGuess(guessInd int) string { return s.GuessWords[guessInd].String() }

// Word resolves a GuessRef back to the word it names.
func (s *Solver) Word(ref GuessRef) word.Word {
	switch ref.Origin {
	case FromAnswerList:
		return s.AnswerWords[ref.Index]
	default:
		return s.GuessWords[ref.Index]
	}
}
