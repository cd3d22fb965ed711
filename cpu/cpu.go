// Package cpu implements the BW8 execution engine: register file, status
// flags, stack protocol, bank muxing, interrupt servicing and the
// reset/NMI/IRQ/stall/instruction cycle state machine.
package cpu

import (
	"log"
	"os"

	"bw8/bus"
	"bw8/isa"
	"bw8/mask"
	"bw8/trace"
)

// logger reports the state transitions the teacher repo would otherwise
// only note in a comment: a nested-NMI fault, a breakpoint hit, an illegal
// decode. No pack library covers this (see DESIGN.md), so it's the
// standard log package, same as every other part of this module that falls
// back to stdlib only where nothing in the pack has a better answer.
var logger = log.New(os.Stderr, "bw8: ", log.LstdFlags)

const (
	vectorNMI = 0x0004
	vectorIRQ = 0x0008
	vectorSWI = 0x000C
)

// CPU is the BW8 processor state. It holds no reference to a Bus; every
// method that touches memory or I/O takes one explicitly, so the same CPU
// value can be driven against different environments (a flat test bus, a
// memory-mapped device bus) without modification.
type CPU struct {
	Reg    RegisterFile
	PC     uint16
	BR     isa.Nibble
	Status Status
}

// New returns a CPU in its post-reset state: all registers, PC and status
// zeroed, which also means Kernel privilege and every flag clear.
func New() *CPU {
	return &CPU{}
}

// Reset reinitializes the CPU to its power-on state. It does not touch the
// bus; callers that also need bus-owned peripheral state reset do so
// themselves (Run calls b.Reset() alongside this on a nested-NMI fault).
func (c *CPU) Reset() {
	*c = CPU{}
}

// effectiveBank computes which of the 16 physical banks an access lands in.
// User-privilege accesses, of either kind, always use BR. Kernel-privilege
// code fetches always land in bank 0. Kernel-privilege data accesses land in
// bank 0 unless bank_enable is set, in which case they use BR too.
func (c *CPU) effectiveBank(kind bus.AccessKind) isa.Nibble {
	if c.Status.Privilege == bus.User {
		return c.BR
	}
	if kind == bus.Code {
		return 0
	}
	if !c.Status.BankEnable {
		return 0
	}
	return c.BR
}

func (c *CPU) effectiveAddress(kind bus.AccessKind, base uint16) bus.PhysicalAddress {
	return bus.PhysicalAddress{Bank: c.effectiveBank(kind).Byte(), Base: base}
}

// addSignedOffset adds a signed 8-bit displacement to a 16-bit base,
// wrapping on overflow/underflow.
func addSignedOffset(base uint16, offset byte) uint16 {
	return uint16(int32(base) + int32(int8(offset)))
}

// pushByte writes v at [SP], then decrements SP.
func (c *CPU) pushByte(b bus.Bus, v byte) {
	addr := c.effectiveAddress(bus.Data, c.Reg.SP)
	b.MemoryWrite(c.Status.Privilege, bus.Data, addr, v)
	c.Reg.SP--
}

// popByte increments SP, then reads [SP]. The exact inverse of pushByte.
func (c *CPU) popByte(b bus.Bus) byte {
	c.Reg.SP++
	addr := c.effectiveAddress(bus.Data, c.Reg.SP)
	return b.MemoryRead(c.Status.Privilege, bus.Data, addr)
}

// pushWord pushes the high byte, then the low byte.
func (c *CPU) pushWord(b bus.Bus, w uint16) {
	hi, lo := mask.SplitWord(w)
	c.pushByte(b, hi)
	c.pushByte(b, lo)
}

// popWord pops the low byte, then the high byte: the exact inverse of
// pushWord regardless of which privilege is in effect at each half.
func (c *CPU) popWord(b bus.Bus) uint16 {
	lo := c.popByte(b)
	hi := c.popByte(b)
	return mask.Word(hi, lo)
}

// serviceInterrupt pushes PC then Status, clears irq_enable, raises
// privilege to Kernel, latches nmi_active for an NMI, and jumps to vector.
func (c *CPU) serviceInterrupt(b bus.Bus, vector uint16, isNMI bool) {
	c.pushWord(b, c.PC)
	c.pushByte(b, c.Status.ToByte())
	c.Status.IRQEnable = false
	c.Status.Privilege = bus.Kernel
	if isNMI {
		c.Status.NMIActive = true
	}
	c.PC = vector
}

// fetch reads up to 4 bytes starting at PC, the longest possible encoding,
// and decodes the instruction at the front. Every opcode slot decodes from
// a full 4-byte window, so ok is effectively always true here; fetch never
// hands the decoder a truncated stream.
func (c *CPU) fetch(b bus.Bus) (isa.Instruction, int) {
	var buf [4]byte
	for i := range buf {
		addr := c.effectiveAddress(bus.Code, c.PC+uint16(i))
		buf[i] = b.MemoryRead(c.Status.Privilege, bus.Code, addr)
	}
	inst, n, ok := isa.Decode(buf[:])
	if !ok {
		logger.Printf("illegal decode at PC=%#04x: treating as NOP", c.PC)
		return isa.Instruction{Kind: isa.Nop}, 1
	}
	return inst, n
}

// step fetches, advances PC and executes exactly one instruction.
func (c *CPU) step(b bus.Bus) (isa.Instruction, bus.EnvironmentAction, bool) {
	inst, n := c.fetch(b)
	c.PC += uint16(n)
	action, hasAction := c.execute(b, inst)
	return inst, action, hasAction
}

// Run drives the CPU for up to cycles ticks of the reset/NMI/IRQ/stall/
// instruction state machine and returns the retired-instruction histogram
// along with whether the run ended on a breakpoint. A halt or an exhausted
// cycle budget both return ReachedBreakpoint(false); only an ActionBreak
// escape returns true.
func (c *CPU) Run(b bus.Bus, cycles int) (trace.Trace, trace.ReachedBreakpoint) {
	tr := trace.New()
	for i := 0; i < cycles; i++ {
		if b.IsResetActive() {
			c.Reset()
			continue
		}
		if b.IsNMIActive() {
			if c.Status.NMIActive {
				// The handler never cleared nmi_active before a second NMI
				// edge arrived. Reset the whole system, CPU and bus alike.
				logger.Printf("nested NMI fault at PC=%#04x: resetting CPU and bus", c.PC)
				c.Reset()
				b.Reset()
			} else {
				c.serviceInterrupt(b, vectorNMI, true)
			}
			continue
		}
		if b.IsIRQActive() {
			if c.Status.IRQEnable {
				c.serviceInterrupt(b, vectorIRQ, false)
				continue
			}
			// IRQ active but disabled falls through to an instruction
			// cycle; it must not also be treated as a stall even if REQ
			// happens to be active too.
		} else if b.IsREQActive() {
			continue
		}

		inst, action, hasAction := c.step(b)
		tr.Retire(inst)
		if hasAction {
			switch action.Kind {
			case bus.ActionHalt:
				return tr, trace.DidNot
			case bus.ActionBreak:
				logger.Printf("breakpoint hit at PC=%#04x", c.PC)
				return tr, trace.Did
			case bus.ActionWriteByte:
				// Delivered to the environment by the bus itself; the CPU
				// just keeps running.
			}
		}
	}
	return tr, trace.DidNot
}
