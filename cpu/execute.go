package cpu

import (
	"bw8/bus"
	"bw8/isa"
)

// resolveMem8 turns a Memory8Mode into the physical address it denotes.
func (c *CPU) resolveMem8(m isa.Memory8Mode) bus.PhysicalAddress {
	switch m.Kind {
	case isa.MemAbsolute:
		return c.effectiveAddress(bus.Data, m.Addr)
	case isa.MemConstantOffset:
		base := c.Reg.Ptr16(m.Ptr)
		return c.effectiveAddress(bus.Data, addSignedOffset(base, m.Imm))
	default: // MemRegisterOffset
		base := c.Reg.Ptr16(m.Ptr)
		off := c.Reg.Get8(m.Reg)
		return c.effectiveAddress(bus.Data, addSignedOffset(base, off))
	}
}

func (c *CPU) resolveMem16(m isa.Memory16Mode) bus.PhysicalAddress {
	if m.Kind == isa.MemAbsolute {
		return c.effectiveAddress(bus.Data, m.Addr)
	}
	base := c.Reg.Ptr16(m.Ptr)
	return c.effectiveAddress(bus.Data, addSignedOffset(base, m.Imm))
}

func (c *CPU) resolveIO(m isa.IOMode) bus.PhysicalAddress {
	switch m.Kind {
	case isa.IOPort:
		return c.effectiveAddress(bus.Data, uint16(m.Port))
	case isa.IOConstantOffset:
		base := c.Reg.Get16(m.Reg16)
		return c.effectiveAddress(bus.Data, addSignedOffset(base, m.Imm))
	default: // IORegisterOffset
		base := c.Reg.Get16(m.Reg16)
		off := c.Reg.Get8(m.Reg8)
		return c.effectiveAddress(bus.Data, addSignedOffset(base, off))
	}
}

// resolveLea computes the new pointer value Lea writes back into Ptr: the
// pointer's current value plus a signed-widened register or immediate
// offset. Lea never dereferences memory; it only computes an address.
func (c *CPU) resolveLea(base uint16, m isa.LeaMode) uint16 {
	if m.Kind == isa.LeaRegister {
		return addSignedOffset(base, c.Reg.Get8(m.Reg))
	}
	return addSignedOffset(base, m.Imm)
}

// jumpTarget resolves a JumpMode to the absolute address it transfers
// control to. Relative is relative to the already-advanced PC, matching
// how every other PC-relative addressing mode in this architecture reads.
func (c *CPU) jumpTarget(b bus.Bus, j isa.JumpMode) uint16 {
	switch j.Kind {
	case isa.JumpRelative:
		return addSignedOffset(c.PC, j.Imm)
	case isa.JumpAbsolute:
		return j.Addr
	default: // JumpIndirect
		return addSignedOffset(c.Reg.Get16(j.Reg16), j.Imm)
	}
}

func addOverflow(lhs, rhs, result byte) bool {
	return (lhs^result)&(rhs^result)&0x80 != 0
}

func subOverflow(lhs, rhs, result byte) bool {
	return (lhs^rhs)&(lhs^result)&0x80 != 0
}

// execute performs inst's effect on c and b. It returns an EnvironmentAction
// escape for an In/Out that produced one; hasAction is false for every other
// instruction, meaning the caller should simply retire it.
func (c *CPU) execute(b bus.Bus, inst isa.Instruction) (bus.EnvironmentAction, bool) {
	switch inst.Kind {
	case isa.Nop:
		// no-op

	case isa.SetCarry:
		c.Status.Carry = true
	case isa.ClearCarry:
		c.Status.Carry = false
	case isa.SetInterruptEnable:
		c.Status.IRQEnable = true
	case isa.ClearInterruptEnable:
		c.Status.IRQEnable = false
	case isa.SetBankEnable:
		c.Status.BankEnable = true
	case isa.ClearBankEnable:
		c.Status.BankEnable = false
	case isa.ReadBankRegister:
		c.Reg.Set8(isa.RegA, c.BR.Byte())
	case isa.WriteBankRegister:
		c.BR = isa.NewNibble(c.Reg.Get8(isa.RegA))

	case isa.Move8:
		c.Reg.Set8(inst.Reg8, c.Reg.Get8(inst.Reg8b))

	case isa.Load8Immediate:
		c.Reg.Set8(inst.Reg8, inst.Imm8)

	case isa.Load8:
		addr := c.resolveMem8(inst.Mem8)
		c.Reg.Set8(inst.Reg8, b.MemoryRead(c.Status.Privilege, bus.Data, addr))

	case isa.Store8:
		addr := c.resolveMem8(inst.Mem8)
		b.MemoryWrite(c.Status.Privilege, bus.Data, addr, c.Reg.Get8(inst.Reg8))

	case isa.In:
		addr := c.resolveIO(inst.IO)
		res := b.IORead(c.Status.Privilege, addr)
		if !res.Ok {
			return res.Action, true
		}
		c.Reg.Set8(inst.Reg8, res.Value)

	case isa.Out:
		addr := c.resolveIO(inst.IO)
		res := b.IOWrite(c.Status.Privilege, addr, c.Reg.Get8(inst.Reg8))
		if !res.Ok {
			return res.Action, true
		}

	case isa.ReadStackPointer:
		c.Reg.Set16(inst.Reg16, c.Reg.SP)
	case isa.WriteStackPointer:
		c.Reg.SP = c.Reg.Get16(inst.Reg16)

	case isa.Move16:
		c.Reg.Set16(inst.Reg16, c.Reg.Get16(inst.Reg16b))
	case isa.Move16FromPair:
		c.Reg.Set16(inst.Reg16, c.Reg.GetPair(inst.Pair))
	case isa.Move16ToPair:
		c.Reg.SetPair(inst.Pair, c.Reg.Get16(inst.Reg16))

	case isa.Load16Immediate:
		c.Reg.Set16(inst.Reg16, inst.Imm16)

	case isa.Load16:
		addr := c.resolveMem16(inst.Mem16)
		hi := b.MemoryRead(c.Status.Privilege, bus.Data, addr)
		addr.Base++
		lo := b.MemoryRead(c.Status.Privilege, bus.Data, addr)
		c.Reg.Set16(inst.Reg16, uint16(hi)<<8|uint16(lo))

	case isa.Store16:
		addr := c.resolveMem16(inst.Mem16)
		w := c.Reg.Get16(inst.Reg16)
		b.MemoryWrite(c.Status.Privilege, bus.Data, addr, byte(w>>8))
		addr.Base++
		b.MemoryWrite(c.Status.Privilege, bus.Data, addr, byte(w))

	case isa.Lea:
		base := c.Reg.Ptr16(inst.Ptr)
		c.Reg.SetPtr16(inst.Ptr, c.resolveLea(base, inst.Lea))

	case isa.Inc16:
		c.Reg.Set16(inst.Reg16, c.Reg.Get16(inst.Reg16)+1)
	case isa.Dec16:
		c.Reg.Set16(inst.Reg16, c.Reg.Get16(inst.Reg16)-1)

	case isa.Alu2:
		c.execAlu2(inst)
	case isa.Alu1:
		c.execAlu1(inst)

	case isa.Push8:
		c.pushByte(b, c.Reg.Get8(inst.Reg8))
	case isa.Push16:
		c.pushWord(b, c.Reg.Get16(inst.Reg16))
	case isa.Pop8:
		c.Reg.Set8(inst.Reg8, c.popByte(b))
	case isa.Pop16:
		c.Reg.Set16(inst.Reg16, c.popWord(b))

	case isa.Call:
		target := c.jumpTarget(b, inst.Jump)
		c.pushWord(b, c.PC)
		c.PC = target
	case isa.Ret:
		c.PC = c.popWord(b)
	case isa.Swi:
		c.serviceInterrupt(b, vectorSWI, false)
	case isa.Reti:
		// Privilege drops to User before the Status pop, so the pop itself
		// resolves its bank at User privilege; the popped byte then
		// supplies the real restored privilege for the PC pop that follows.
		c.Status.Privilege = bus.User
		c.Status = StatusFromByte(c.popByte(b))
		c.PC = c.popWord(b)

	case isa.Jmp:
		if evalCondition(inst.Cond, c.Status) {
			c.PC = c.jumpTarget(b, inst.Jump)
		}
	}
	return bus.EnvironmentAction{}, false
}

func (c *CPU) execAlu2(inst isa.Instruction) {
	lhs := c.Reg.Get8(inst.Reg8)
	var rhs byte
	if inst.AluBinMode.Kind == isa.AluRegister {
		rhs = c.Reg.Get8(inst.AluBinMode.Reg)
	} else {
		rhs = inst.AluBinMode.Imm
	}

	var result byte
	switch inst.AluBin {
	case isa.Alu2Addc:
		carryIn := 0
		if c.Status.Carry {
			carryIn = 1
		}
		sum := int(lhs) + int(rhs) + carryIn
		result = byte(sum)
		c.Status.Carry = sum > 0xFF
		c.Status.Overflow = addOverflow(lhs, rhs, result)
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu2Subb:
		borrowIn := 0
		if !c.Status.Carry {
			borrowIn = 1
		}
		diff := int(lhs) - int(rhs) - borrowIn
		result = byte(diff)
		c.Status.Carry = diff >= 0
		c.Status.Overflow = subOverflow(lhs, rhs, result)
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu2And:
		result = lhs & rhs
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu2Or:
		result = lhs | rhs
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu2Xor:
		result = lhs ^ rhs
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu2Cmp:
		diff := int(lhs) - int(rhs)
		result = byte(diff)
		c.Status.Carry = lhs >= rhs
		c.Status.Overflow = subOverflow(lhs, rhs, result)
		c.Status.setFromResult8(result)
		// no writeback: Cmp only sets flags
	}
}

func (c *CPU) execAlu1(inst isa.Instruction) {
	v := c.Reg.Get8(inst.Reg8)
	var result byte

	switch inst.AluUn {
	case isa.Alu1Shl:
		result = v << 1
		c.Status.Carry = v&0x80 != 0
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu1Shr:
		result = v >> 1 // logical: zero-fills the top bit
		c.Status.Carry = v&0x01 != 0
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu1Asr:
		result = byte(int8(v) >> 1) // arithmetic: sign-extends the top bit
		c.Status.Carry = v&0x01 != 0
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu1Not:
		result = ^v
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu1Neg:
		result = byte(-int8(v))
		c.Status.Carry = v == 0
		c.Status.Overflow = v == 0x80
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu1Inc:
		result = v + 1
		c.Status.Overflow = v == 0x7F
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu1Dec:
		result = v - 1
		c.Status.Overflow = v == 0x80
		c.Status.setFromResult8(result)
		c.Reg.Set8(inst.Reg8, result)

	case isa.Alu1Test:
		c.Status.setFromResult8(v)
		// no writeback
	}
}
