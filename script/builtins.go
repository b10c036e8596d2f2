package script

import (
	"math"

	"go.starlark.net/starlark"

	"github.com/maxhell/maxhell/maxwell"
)

// operands converts Starlark integers into operand fields. The first error
// wins.
type operands struct {
	err error
}

func (ops *operands) check(name string, value, lo, hi int) {
	if ops.err == nil && (value < lo || value > hi) {
		ops.err = ErrArgument{Name: name, Value: value}
	}
}

func (ops *operands) reg(name string, value int) uint8 {
	ops.check(name, value, 0, math.MaxUint8)
	return uint8(value)
}

func (ops *operands) u16(name string, value int) uint16 {
	ops.check(name, value, 0, math.MaxUint16)
	return uint16(value)
}

func (ops *operands) i16(name string, value int) int16 {
	ops.check(name, value, math.MinInt16, math.MaxInt16)
	return int16(value)
}

func (ops *operands) i32(name string, value int) int32 {
	ops.check(name, value, math.MinInt32, math.MaxInt32)
	return int32(value)
}

// predicate holds the arguments shared by predicated kinds.
type predicate struct {
	pred int
	inv  bool
}

func newPredicate() *predicate {
	return &predicate{pred: maxwell.PT}
}

func (pa *predicate) params(more ...any) []any {
	return append([]any{"pred?", &pa.pred, "inv?", &pa.inv}, more...)
}

func (pa *predicate) value(ops *operands) maxwell.Predicate {
	return maxwell.Predicate{Reg: ops.reg("pred", pa.pred), Invert: pa.inv}
}

// kind builds an instruction from builtin arguments.
type kind func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error)

// Builtins by name. Keywords are named after the instruction fields.
var kinds = map[string]kind{
	"NOP": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		var trigger bool
		var imm int
		cc := int(maxwell.CC_T)
		err := starlark.UnpackArgs(name, args, kwargs, pa.params("trigger?", &trigger, "imm?", &imm, "cc?", &cc)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.Nop{
			Predicate: pa.value(ops),
			Trigger:   trigger,
			Imm:       ops.u16("imm", imm),
			CC:        maxwell.ControlCode(cc),
		}
		return insn, ops.err
	},
	"SAM": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		return maxwell.Sam{}, starlark.UnpackArgs(name, args, kwargs)
	},
	"RAM": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		return maxwell.Ram{}, starlark.UnpackArgs(name, args, kwargs)
	},
	"RET": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		cc := int(maxwell.CC_T)
		err := starlark.UnpackArgs(name, args, kwargs, pa.params("cc?", &cc)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.Ret{Predicate: pa.value(ops), CC: maxwell.ControlCode(cc)}
		return insn, ops.err
	},
	"EXIT": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		cc := int(maxwell.CC_T)
		var keep bool
		err := starlark.UnpackArgs(name, args, kwargs, pa.params("cc?", &cc, "keeprefcount?", &keep)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.Exit{Predicate: pa.value(ops), CC: maxwell.ControlCode(cc), KeepRefCount: keep}
		return insn, ops.err
	},
	"GETLMEMBASE": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		var dst int
		err := starlark.UnpackArgs(name, args, kwargs, "dst", &dst)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.GetLmemBase{Dst: ops.reg("dst", dst)}
		return insn, ops.err
	},
	"SETLMEMBASE": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		var src int
		err := starlark.UnpackArgs(name, args, kwargs, "src", &src)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.SetLmemBase{Src: ops.reg("src", src)}
		return insn, ops.err
	},
	"IDE": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		var imm int
		var disable bool
		err := starlark.UnpackArgs(name, args, kwargs, "imm?", &imm, "disable?", &disable)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.Ide{Imm: ops.u16("imm", imm), Disable: disable}
		return insn, ops.err
	},
	"KIL": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		cc := int(maxwell.CC_T)
		err := starlark.UnpackArgs(name, args, kwargs, pa.params("cc?", &cc)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.Kil{Predicate: pa.value(ops), CC: maxwell.ControlCode(cc)}
		return insn, ops.err
	},
	"AL2P": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		predout := maxwell.PT
		var dst, src, mode, offset int
		var output bool
		err := starlark.UnpackArgs(name, args, kwargs, pa.params(
			"dst", &dst, "src", &src, "predout?", &predout, "output?", &output,
			"mode?", &mode, "offset?", &offset)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.Al2p{
			Predicate: pa.value(ops),
			PredOut:   ops.reg("predout", predout),
			Dst:       ops.reg("dst", dst),
			Src:       ops.reg("src", src),
			Output:    output,
			Mode:      maxwell.AttributeLoadMode(mode),
			Offset:    ops.i16("offset", offset),
		}
		return insn, ops.err
	},
	"ALD": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		var dst, index, offset, mode, vertex int
		var patch, output bool
		err := starlark.UnpackArgs(name, args, kwargs, pa.params(
			"dst", &dst, "index?", &index, "offset?", &offset, "patch?", &patch,
			"output?", &output, "mode?", &mode, "vertex?", &vertex)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.Ald{
			Predicate: pa.value(ops),
			Dst:       ops.reg("dst", dst),
			Index:     ops.reg("index", index),
			Offset:    ops.u16("offset", offset),
			Patch:     patch,
			Output:    output,
			Mode:      maxwell.AttributeLoadMode(mode),
			Vertex:    ops.reg("vertex", vertex),
		}
		return insn, ops.err
	},
	"AST": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		var src, index, offset, mode, vertex int
		var patch bool
		err := starlark.UnpackArgs(name, args, kwargs, pa.params(
			"src", &src, "index?", &index, "offset?", &offset, "patch?", &patch,
			"mode?", &mode, "vertex?", &vertex)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.Ast{
			Predicate: pa.value(ops),
			Src:       ops.reg("src", src),
			Index:     ops.reg("index", index),
			Offset:    ops.u16("offset", offset),
			Patch:     patch,
			Mode:      maxwell.AttributeLoadMode(mode),
			Vertex:    ops.reg("vertex", vertex),
		}
		return insn, ops.err
	},
	"ATOM": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		var dst, addr, src, offset, typ, op int
		var e bool
		err := starlark.UnpackArgs(name, args, kwargs, pa.params(
			"dst", &dst, "addr", &addr, "src", &src, "offset?", &offset,
			"type?", &typ, "op?", &op, "e?", &e)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.Atom{
			Predicate: pa.value(ops),
			Dst:       ops.reg("dst", dst),
			Addr:      ops.reg("addr", addr),
			Src:       ops.reg("src", src),
			Offset:    ops.i32("offset", offset),
			Type:      maxwell.AtomPrimitiveType(typ),
			Op:        maxwell.AtomOperation(op),
			Extended:  e,
		}
		return insn, ops.err
	},
	"ATOMS": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		var dst, addr, src, offset, typ, op int
		err := starlark.UnpackArgs(name, args, kwargs, pa.params(
			"dst", &dst, "addr", &addr, "src", &src, "offset?", &offset,
			"type?", &typ, "op?", &op)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.Atoms{
			Predicate: pa.value(ops),
			Dst:       ops.reg("dst", dst),
			Addr:      ops.reg("addr", addr),
			Src:       ops.reg("src", src),
			Offset:    ops.i32("offset", offset),
			Type:      maxwell.AtomsPrimitiveType(typ),
			Op:        maxwell.AtomsOperation(op),
		}
		return insn, ops.err
	},
	"ATOM_CAS": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		var dst, addr, src, offset, typ int
		var e bool
		err := starlark.UnpackArgs(name, args, kwargs, pa.params(
			"dst", &dst, "addr", &addr, "src", &src, "offset?", &offset,
			"type?", &typ, "e?", &e)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.AtomCas{
			Predicate: pa.value(ops),
			Dst:       ops.reg("dst", dst),
			Addr:      ops.reg("addr", addr),
			Src:       ops.reg("src", src),
			Offset:    ops.i32("offset", offset),
			Type:      maxwell.AtomicCasPrimitiveType(typ),
			Extended:  e,
		}
		return insn, ops.err
	},
	"ATOMS_CAS": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		var dst, addr, src, offset, typ, op int
		err := starlark.UnpackArgs(name, args, kwargs, pa.params(
			"dst", &dst, "addr", &addr, "src", &src, "offset?", &offset,
			"type?", &typ, "op?", &op)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.AtomsCas{
			Predicate: pa.value(ops),
			Dst:       ops.reg("dst", dst),
			Addr:      ops.reg("addr", addr),
			Src:       ops.reg("src", src),
			Offset:    ops.i32("offset", offset),
			Type:      maxwell.AtomicCasPrimitiveType(typ),
			Op:        maxwell.AtomsCasOperation(op),
		}
		return insn, ops.err
	},
	"B2R": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (maxwell.Instruction, error) {
		pa := newPredicate()
		predout := maxwell.PT
		var dst, op, barrier int
		err := starlark.UnpackArgs(name, args, kwargs, pa.params(
			"dst", &dst, "predout?", &predout, "op?", &op, "barrier?", &barrier)...)
		if err != nil {
			return nil, err
		}
		ops := &operands{}
		insn := maxwell.B2r{
			Predicate: pa.value(ops),
			Dst:       ops.reg("dst", dst),
			PredOut:   ops.reg("predout", predout),
			Op:        maxwell.B2ROperation(op),
			Barrier:   ops.reg("barrier", barrier),
		}
		return insn, ops.err
	},
}
