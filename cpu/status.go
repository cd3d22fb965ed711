package cpu

import (
	"bw8/bus"
	"bw8/isa"
)

// Status is the CPU's flag byte, kept unpacked for readable field access.
// Bit layout, LSB to MSB: carry, zero, overflow, negative, irq_enable,
// bank_enable, privilege (0=Kernel, 1=User), nmi_active.
type Status struct {
	Carry      bool
	Zero       bool
	Overflow   bool
	Negative   bool
	IRQEnable  bool
	BankEnable bool
	Privilege  bus.Privilege
	NMIActive  bool
}

func (s Status) ToByte() byte {
	var b byte
	if s.Carry {
		b |= 1 << 0
	}
	if s.Zero {
		b |= 1 << 1
	}
	if s.Overflow {
		b |= 1 << 2
	}
	if s.Negative {
		b |= 1 << 3
	}
	if s.IRQEnable {
		b |= 1 << 4
	}
	if s.BankEnable {
		b |= 1 << 5
	}
	if s.Privilege == bus.User {
		b |= 1 << 6
	}
	if s.NMIActive {
		b |= 1 << 7
	}
	return b
}

func StatusFromByte(b byte) Status {
	s := Status{
		Carry:      b&(1<<0) != 0,
		Zero:       b&(1<<1) != 0,
		Overflow:   b&(1<<2) != 0,
		Negative:   b&(1<<3) != 0,
		IRQEnable:  b&(1<<4) != 0,
		BankEnable: b&(1<<5) != 0,
		Privilege:  bus.Kernel,
		NMIActive:  b&(1<<7) != 0,
	}
	if b&(1<<6) != 0 {
		s.Privilege = bus.User
	}
	return s
}

// setFromResult8 applies the common zero/negative pair computed from an
// 8-bit ALU result. Carry and overflow are set separately by each operation.
func (s *Status) setFromResult8(result byte) {
	s.Zero = result == 0
	s.Negative = result&0x80 != 0
}

// evalCondition decides whether a branch/jump with cond should be taken.
// Unsigned comparisons read off carry (set by Cmp/Subb when lhs >= rhs) and
// zero; signed comparisons read off negative XOR overflow, the standard
// two's-complement "less than" test.
func evalCondition(cond isa.Condition, s Status) bool {
	nv := s.Negative != s.Overflow
	switch cond {
	case isa.CondAlways:
		return true
	case isa.CondEqual:
		return s.Zero
	case isa.CondNotEqual:
		return !s.Zero
	case isa.CondLessThan:
		return !s.Carry
	case isa.CondGreaterThan:
		return s.Carry && !s.Zero
	case isa.CondLessEqual:
		return !s.Carry || s.Zero
	case isa.CondGreaterEqual:
		return s.Carry
	case isa.CondLessThanSigned:
		return nv
	case isa.CondGreaterThanSigned:
		return !nv && !s.Zero
	case isa.CondLessEqualSigned:
		return nv || s.Zero
	case isa.CondGreaterEqualSigned:
		return !nv
	default:
		return false
	}
}
