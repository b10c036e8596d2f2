// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script loads shader instruction lists written in Starlark.
//
// Every instruction kind is a builtin named after its mnemonic (NOP, RET,
// ATOMS_CAS, ...). A call encodes the instruction, appends it to the
// program, and returns the encoded word. Keyword arguments are named after
// the instruction fields; pred defaults to PT and cc to CC_T.
//
//	RET(cc=CC_T)
//	ATOMS(dst=4, addr=1, src=2, offset=0x14, type=ATOMS_TYPE_S32, op=ATOMS_OP_EXCH)
//	emit(0x50b0000000070f00)
package script

import (
	_ "embed"
	"errors"
	"log"
	"maps"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/maxhell/maxhell/internal"
	"github.com/maxhell/maxhell/maxwell"
)

//go:embed demo.star
var demoScript string

const programKey = "program"

// Loader executes shader scripts.
type Loader struct {
	Verbose bool // If set, logs every emitted instruction.

	predefine starlark.StringDict
}

// Predefine defines a new integer constant, or redefines an existing one.
func (ld *Loader) Predefine(name string, value int) {
	if ld.predefine == nil {
		ld.predefine = starlark.StringDict{}
	}
	ld.predefine[name] = starlark.MakeInt(value)
}

func constName(prefix, name string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(name, ".", "_"))
}

func constants[T interface {
	~int
	Valid() bool
	String() string
}](prefix string, last T) (dict starlark.StringDict) {
	dict = starlark.StringDict{}
	for value := T(0); value <= last; value++ {
		name := value.String()
		if strings.Contains(name, "(") {
			// Unnamed raw value.
			continue
		}
		dict[constName(prefix, name)] = starlark.MakeInt(int(value))
	}
	return
}

// Predeclared constants of every script.
var sysConstants = starlark.StringDict{
	"PT": starlark.MakeInt(maxwell.PT),
	"RZ": starlark.MakeInt(maxwell.RZ),
}

func (ld *Loader) predeclared() starlark.StringDict {
	builtins := starlark.StringDict{
		"emit": starlark.NewBuiltin("emit", emit),
	}
	for name, fn := range kinds {
		builtins[name] = starlark.NewBuiltin(name, ld.instruction(fn))
	}

	return starlark.StringDict(maps.Collect(internal.IterSeq2Concat(
		maps.All(sysConstants),
		maps.All(constants("CC_", maxwell.CC_T)),
		maps.All(constants("ATTR_M", maxwell.ATTR_M128)),
		maps.All(constants("ATOM_TYPE_", maxwell.ATOM_TYPE_S64)),
		maps.All(constants("ATOM_OP_", maxwell.ATOM_OP_SAFEADD)),
		maps.All(constants("ATOMS_TYPE_", maxwell.ATOMS_TYPE_S64)),
		maps.All(constants("ATOMS_OP_", maxwell.ATOMS_OP_EXCH)),
		maps.All(constants("CAS_TYPE_", maxwell.CAS_TYPE_U64)),
		maps.All(constants("ATOMS_CAS_OP_", maxwell.ATOMS_CAS_OP_CAST_SPIN)),
		maps.All(constants("B2R_OP_", maxwell.B2R_OP_WARP)),
		maps.All(ld.predefine),
		maps.All(builtins),
	)))
}

func callerLine(thread *starlark.Thread) int {
	if thread.CallStackDepth() < 2 {
		return 0
	}
	return int(thread.CallFrame(1).Pos.Line)
}

func programOf(thread *starlark.Thread) *Program {
	prog, _ := thread.Local(programKey).(*Program)
	return prog
}

// instruction wraps an instruction kind as a Starlark builtin.
func (ld *Loader) instruction(fn kind) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		lineno := callerLine(thread)

		insn, err := fn(b.Name(), args, kwargs)
		if err != nil {
			return nil, ErrScript{File: thread.Name, Line: lineno, Err: err}
		}

		word, err := programOf(thread).Append(lineno, insn)
		if err != nil {
			return nil, ErrScript{File: thread.Name, Line: lineno, Err: err}
		}

		if ld.Verbose {
			log.Printf("%v:%d: %v", thread.Name, lineno, maxwell.Listing(word))
		}

		return starlark.MakeUint64(word), nil
	}
}

func emit(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	lineno := callerLine(thread)

	var value starlark.Value
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &value)
	if err != nil {
		return nil, ErrScript{File: thread.Name, Line: lineno, Err: err}
	}

	num, ok := value.(starlark.Int)
	if !ok {
		return nil, ErrScript{File: thread.Name, Line: lineno, Err: ErrWordInvalid}
	}
	word, ok := num.Uint64()
	if !ok {
		return nil, ErrScript{File: thread.Name, Line: lineno, Err: ErrWordInvalid}
	}

	programOf(thread).Emit(lineno, word)
	return num, nil
}

// Load executes a script and returns the program it emitted. src may be
// nil to read filename, or a string, []byte or io.Reader.
func (ld *Loader) Load(filename string, src any) (prog *Program, err error) {
	prog = &Program{}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(thread *starlark.Thread, msg string) {
			log.Printf("%v: %v", thread.Name, msg)
		},
	}
	thread.SetLocal(programKey, prog)

	opts := syntax.FileOptions{}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, ld.predeclared())
	if err != nil {
		var es ErrScript
		if errors.As(err, &es) {
			err = es
		} else {
			err = ErrScript{File: filename, Err: err}
		}
		prog = nil
		return
	}

	return
}

// Load executes a script with a default Loader.
func Load(filename string, src any) (*Program, error) {
	ld := &Loader{}
	return ld.Load(filename, src)
}

// Demo executes the built-in demonstration program, one instance of every
// instruction kind.
func (ld *Loader) Demo() (*Program, error) {
	return ld.Load("demo.star", demoScript)
}

// Demo returns the built-in demonstration program.
func Demo() (*Program, error) {
	ld := &Loader{}
	return ld.Demo()
}
