package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bw8/bus"
)

func TestFlatBusMemoryRoundTrip(t *testing.T) {
	fb := NewFlatBus([]byte{0xDE, 0xAD})
	assert.Equal(t, byte(0xDE), fb.MemoryRead(bus.Kernel, bus.Code, bus.PhysicalAddress{Base: 0}))
	assert.Equal(t, byte(0xAD), fb.MemoryRead(bus.Kernel, bus.Code, bus.PhysicalAddress{Base: 1}))

	fb.MemoryWrite(bus.Kernel, bus.Data, bus.PhysicalAddress{Bank: 3, Base: 0x1234}, 0x7A)
	assert.Equal(t, byte(0x7A), fb.MemoryRead(bus.Kernel, bus.Data, bus.PhysicalAddress{Bank: 3, Base: 0x1234}))
	assert.Equal(t, byte(0), fb.Banks[0][0x1234], "write to bank 3 must not bleed into bank 0")
}

func TestFlatBusIOBreakAndHalt(t *testing.T) {
	fb := NewFlatBus(nil)

	res := fb.IOWrite(bus.Kernel, bus.PhysicalAddress{Base: BreakpointPort}, 0x01)
	assert.False(t, res.Ok)
	assert.Equal(t, bus.ActionBreak, res.Action.Kind)

	res = fb.IOWrite(bus.Kernel, bus.PhysicalAddress{Base: HaltPort}, 0x01)
	assert.False(t, res.Ok)
	assert.Equal(t, bus.ActionHalt, res.Action.Kind)

	res = fb.IORead(bus.Kernel, bus.PhysicalAddress{Base: HaltPort})
	assert.False(t, res.Ok)
	assert.Equal(t, bus.ActionHalt, res.Action.Kind)

	res = fb.IOWrite(bus.Kernel, bus.PhysicalAddress{Base: 0x05}, 0x99)
	assert.True(t, res.Ok)
	assert.Equal(t, byte(0x99), fb.IORead(bus.Kernel, bus.PhysicalAddress{Base: 0x05}).Value)
}

func TestFlatBusNMIIsEdgeNotLevel(t *testing.T) {
	fb := NewFlatBus(nil)
	assert.False(t, fb.IsNMIActive())

	fb.RaiseNMI()
	assert.True(t, fb.IsNMIActive())
	assert.False(t, fb.IsNMIActive(), "latch must clear after one read")
}

func TestFlatBusResetLeavesMemoryIntact(t *testing.T) {
	fb := NewFlatBus([]byte{0x11, 0x22})
	fb.IO[7] = 0xFF
	fb.SetIRQ(true)
	fb.RaiseNMI()

	fb.Reset()
	assert.False(t, fb.IsIRQActive())
	assert.False(t, fb.IsNMIActive())
	assert.Equal(t, byte(0), fb.IO[7])
	assert.Equal(t, byte(0x11), fb.Banks[0][0], "Reset is a peripheral reset, not a memory wipe")
}
