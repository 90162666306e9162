package solver

import (
	"fmt"

	"github.com/bent101/wordlecore/internal/hint"
)

// Printer is the depth-gated tracing capability the solver calls into:
// given a depth, the solver asks whether to print, and if so emits
// progress lines prefixed by the current guess / clue path. A nil
// Printer means tracing is off entirely; a Printer
// whose ShouldPrintAtDepth always returns false is a distinct "silent
// but present" state used by callers that want to keep the capability
// wired for later reuse.
type Printer interface {
	FmtGuess(guessInd int) string
	FmtAnswer(answerInd int) string
	FmtHint(hintID uint8) string
	FmtClue(hintID uint8, guessInd int) string
	ShouldPrintAtDepth(depth int) bool
	WithPrefix(prefix string) Printer
	GetPrefix() string
	Printf(format string, args ...any)
}

// FmtPrinter is a plain fmt.Printf-based Printer, the Go analogue of
// the teacher's do_print-gated tracing in decision_tree.rs /
// api/wordle.go. It never forces a logging dependency on library
// callers. It is the only Printer implementation in this module;
// cmd/wordlecore calls Solve with a nil Printer.
type FmtPrinter struct {
	GuessWords  func(int) string
	AnswerWords func(int) string
	WordSize    int
	MaxDepth    int // prints only at depth <= MaxDepth; negative means unlimited
	Prefix      string
}

func (p *FmtPrinter) FmtGuess(guessInd int) string  { return p.GuessWords(guessInd) }
func (p *FmtPrinter) FmtAnswer(answerInd int) string { return p.AnswerWords(answerInd) }

func (p *FmtPrinter) FmtHint(hintID uint8) string {
	return hint.FromID(int(hintID), p.WordSize).String()
}

func (p *FmtPrinter) FmtClue(hintID uint8, guessInd int) string {
	return p.FmtGuess(guessInd) + " " + p.FmtHint(hintID)
}

func (p *FmtPrinter) ShouldPrintAtDepth(depth int) bool {
	return p.MaxDepth < 0 || depth <= p.MaxDepth
}

func (p *FmtPrinter) WithPrefix(prefix string) Printer {
	return &FmtPrinter{
		GuessWords:  p.GuessWords,
		AnswerWords: p.AnswerWords,
		WordSize:    p.WordSize,
		MaxDepth:    p.MaxDepth,
		Prefix:      p.Prefix + prefix,
	}
}

func (p *FmtPrinter) GetPrefix() string { return p.Prefix }

func (p *FmtPrinter) Printf(format string, args ...any) {
	fmt.Printf(p.Prefix+format+"\n", args...)
}
