package script

import (
	"iter"

	"github.com/maxhell/maxhell/maxwell"
)

// Line is one instruction emitted by a script.
type Line struct {
	LineNo int                 // Script line of the emitting call.
	Insn   maxwell.Instruction // Nil for raw words.
	Word   uint64
}

// Program is the instruction list produced by a script.
type Program struct {
	Lines []Line
}

// Words returns the encoded words, in emission order.
func (prog *Program) Words() (words []uint64) {
	for _, word := range prog.Codes() {
		words = append(words, word)
	}
	return
}

// Codes returns an iterator over the words keyed by script line.
func (prog *Program) Codes() iter.Seq2[int, uint64] {
	return func(yield func(lineno int, word uint64) bool) {
		for _, line := range prog.Lines {
			if !yield(line.LineNo, line.Word) {
				return
			}
		}
	}
}

// Append encodes an instruction and adds it to the program.
func (prog *Program) Append(lineno int, insn maxwell.Instruction) (word uint64, err error) {
	word, err = maxwell.Encode(insn)
	if err != nil {
		return
	}

	prog.Lines = append(prog.Lines, Line{LineNo: lineno, Insn: insn, Word: word})
	return
}

// Emit adds a raw word to the program.
func (prog *Program) Emit(lineno int, word uint64) {
	prog.Lines = append(prog.Lines, Line{LineNo: lineno, Word: word})
}
