package solver

import (
	"encoding/json"

	"github.com/bent101/wordlecore/internal/hint"
)

// readableNode mirrors the original ReadableTreeNode: a guess rendered
// as text, its expected cost, and a hint-glyph-keyed map of subtrees,
// omitted entirely at leaves.
type readableNode struct {
	ShouldGuess string                   `json:"should_guess"`
	EstCost     float64                  `json:"est_cost"`
	Next        map[string]*readableNode `json:"next,omitempty"`
}

func (s *Solver) toReadable(n *TreeNode) *readableNode {
	r := &readableNode{
		ShouldGuess: s.Word(n.Guess).String(),
		EstCost:     n.EstCost,
	}
	if len(n.Next) > 0 {
		r.Next = make(map[string]*readableNode, len(n.Next))
		for hintID, child := range n.Next {
			key := hint.FromID(int(hintID), s.Hints.WordSize()).String()
			r.Next[key] = s.toReadable(child)
		}
	}
	return r
}

// MarshalTree renders a tree as canonical, human-readable JSON: guesses
// as text, hint keys as the 3-symbol glyph alphabet.
func (s *Solver) MarshalTree(n *TreeNode, indent bool) ([]byte, error) {
	r := s.toReadable(n)
	if indent {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
