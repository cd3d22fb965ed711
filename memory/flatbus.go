// Package memory provides FlatBus, a bus.Bus implementation backed by a
// flat 16-bank x 64KiB array plus a small port-addressed I/O space. It is
// meant for tests and the CLI tools, not as a model of any real peripheral
// layout.
package memory

import "bw8/bus"

// BreakpointPort is the I/O port S4 calls "the breakpoint port": writing to
// it escapes the current instruction with an ActionBreak.
const BreakpointPort = 0x03

// HaltPort escapes with ActionHalt.
const HaltPort = 0x00

// FlatBus is a bus.Bus backed by plain arrays. Reset, IRQ and REQ are
// level lines the caller sets and clears directly; NMI is modeled as an
// edge latch consumed by IsNMIActive, matching the interface's contract.
type FlatBus struct {
	Banks [16][65536]byte
	IO    [256]byte

	resetLine bool
	irqLine   bool
	reqLine   bool
	nmiLatch  bool
}

// NewFlatBus returns a FlatBus with image loaded into bank 0 starting at
// address 0.
func NewFlatBus(image []byte) *FlatBus {
	fb := &FlatBus{}
	copy(fb.Banks[0][:], image)
	return fb
}

func (fb *FlatBus) MemoryRead(_ bus.Privilege, _ bus.AccessKind, addr bus.PhysicalAddress) byte {
	return fb.Banks[addr.Bank&0x0F][addr.Base]
}

func (fb *FlatBus) MemoryWrite(_ bus.Privilege, _ bus.AccessKind, addr bus.PhysicalAddress, v byte) {
	fb.Banks[addr.Bank&0x0F][addr.Base] = v
}

// IORead and IOWrite address the port space by Base alone, ignoring bank:
// ports are a separate 256-entry space shared across banks.
func (fb *FlatBus) IORead(_ bus.Privilege, addr bus.PhysicalAddress) bus.IOResult {
	port := byte(addr.Base)
	if port == HaltPort {
		return bus.Action(bus.EnvironmentAction{Kind: bus.ActionHalt})
	}
	return bus.DataResult(fb.IO[port])
}

func (fb *FlatBus) IOWrite(_ bus.Privilege, addr bus.PhysicalAddress, v byte) bus.IOResult {
	port := byte(addr.Base)
	fb.IO[port] = v
	switch port {
	case BreakpointPort:
		return bus.Action(bus.EnvironmentAction{Kind: bus.ActionBreak})
	case HaltPort:
		return bus.Action(bus.EnvironmentAction{Kind: bus.ActionHalt})
	default:
		return bus.DataResult(v)
	}
}

func (fb *FlatBus) IsResetActive() bool { return fb.resetLine }
func (fb *FlatBus) IsIRQActive() bool   { return fb.irqLine }
func (fb *FlatBus) IsREQActive() bool   { return fb.reqLine }

// IsNMIActive consumes the latch: the second call in a row, with no
// intervening RaiseNMI, returns false.
func (fb *FlatBus) IsNMIActive() bool {
	v := fb.nmiLatch
	fb.nmiLatch = false
	return v
}

// SetReset, SetIRQ and SetREQ drive the level lines directly.
func (fb *FlatBus) SetReset(v bool) { fb.resetLine = v }
func (fb *FlatBus) SetIRQ(v bool)   { fb.irqLine = v }
func (fb *FlatBus) SetREQ(v bool)   { fb.reqLine = v }

// RaiseNMI latches an NMI edge, to be consumed by the next IsNMIActive call.
func (fb *FlatBus) RaiseNMI() { fb.nmiLatch = true }

// Reset clears every line and latch and zeroes the I/O port space. It does
// not clear memory: a bus reset is a peripheral reset, not a memory wipe.
func (fb *FlatBus) Reset() {
	fb.resetLine = false
	fb.irqLine = false
	fb.reqLine = false
	fb.nmiLatch = false
	fb.IO = [256]byte{}
}
