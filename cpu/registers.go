package cpu

import (
	"bw8/isa"
	"bw8/mask"
)

// RegisterFile holds the four general-purpose 8-bit registers (A-D), the two
// 16-bit index registers (X, Y) and the stack pointer. AB and CD are not
// stored separately; they are always the concatenation of their halves.
type RegisterFile struct {
	A, B, C, D byte
	X, Y       uint16
	SP         uint16
}

func (r *RegisterFile) Get8(reg isa.Register8) byte {
	switch reg {
	case isa.RegA:
		return r.A
	case isa.RegB:
		return r.B
	case isa.RegC:
		return r.C
	default:
		return r.D
	}
}

func (r *RegisterFile) Set8(reg isa.Register8, v byte) {
	switch reg {
	case isa.RegA:
		r.A = v
	case isa.RegB:
		r.B = v
	case isa.RegC:
		r.C = v
	default:
		r.D = v
	}
}

func (r *RegisterFile) Get16(reg isa.Register16) uint16 {
	if reg == isa.RegX {
		return r.X
	}
	return r.Y
}

func (r *RegisterFile) Set16(reg isa.Register16, v uint16) {
	if reg == isa.RegX {
		r.X = v
	} else {
		r.Y = v
	}
}

// Ptr16 reads X, Y or SP through the unified Pointer selector used by
// addressing modes.
func (r *RegisterFile) Ptr16(p isa.Pointer) uint16 {
	switch p {
	case isa.PtrX:
		return r.X
	case isa.PtrY:
		return r.Y
	default:
		return r.SP
	}
}

// SetPtr16 writes X, Y or SP through the unified Pointer selector used by
// Lea, the only instruction that can target SP as a computed value rather
// than through WriteStackPointer.
func (r *RegisterFile) SetPtr16(p isa.Pointer, v uint16) {
	switch p {
	case isa.PtrX:
		r.X = v
	case isa.PtrY:
		r.Y = v
	default:
		r.SP = v
	}
}

// GetPair returns the computed 16-bit view over a register pair: AB =
// concat(A, B), CD = concat(C, D).
func (r *RegisterFile) GetPair(p isa.RegisterPair) uint16 {
	if p == isa.PairAB {
		return mask.Word(r.A, r.B)
	}
	return mask.Word(r.C, r.D)
}

// SetPair writes v back through its two 8-bit halves.
func (r *RegisterFile) SetPair(p isa.RegisterPair, v uint16) {
	hi, lo := mask.SplitWord(v)
	if p == isa.PairAB {
		r.A, r.B = hi, lo
	} else {
		r.C, r.D = hi, lo
	}
}
