package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// every opcode slot decodes, and re-encoding the result reproduces exactly
// the bytes that were consumed. This pins properties 1 and 2 from the
// testable-properties section: the codec is a total, bijective map over all
// 512 opcode slots.
func TestCodecRoundTripPrimary(t *testing.T) {
	for op := 0; op < 256; op++ {
		if byte(op) == OpEXT {
			continue
		}
		buf := []byte{byte(op), 0x11, 0x22, 0x33}
		inst, n, ok := Decode(buf)
		require.True(t, ok, "opcode 0x%02x failed to decode", op)
		require.Less(t, 0, n)

		re := Encode(inst)
		assert.Equal(t, buf[:n], re, "opcode 0x%02x: encode(decode(x)) != x", op)
	}
}

func TestCodecRoundTripExtended(t *testing.T) {
	for op := 0; op < 256; op++ {
		buf := []byte{OpEXT, byte(op), 0x11, 0x22, 0x33}
		inst, n, ok := Decode(buf)
		require.True(t, ok, "extended opcode 0x%02x failed to decode", op)

		re := Encode(inst)
		assert.Equal(t, buf[:n], re, "extended opcode 0x%02x: encode(decode(x)) != x", op)
	}
}

// TestCodecTruncatedStream exercises the "None on stream exhaustion"
// contract: every instruction with operand bytes must fail to decode when
// fed only its opcode byte(s).
func TestCodecTruncatedStream(t *testing.T) {
	_, _, ok := Decode([]byte{OpLD_A_IMM})
	assert.False(t, ok)

	_, _, ok = Decode([]byte{OpLD_A_ABS}) // needs a 2-byte address
	assert.False(t, ok)

	_, _, ok = Decode([]byte{OpEXT})
	assert.False(t, ok)

	_, _, ok = Decode(nil)
	assert.False(t, ok)

	_, _, ok = Decode([]byte{OpEXT, OpExtLD_X_IMM, 0x01}) // needs 2 operand bytes, has 1
	assert.False(t, ok)
}

func TestDecodeSpecificInstructions(t *testing.T) {
	inst, n, ok := Decode([]byte{OpLD_A_IMM, 0x42})
	require.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, Instruction{Kind: Load8Immediate, Reg8: RegA, Imm8: 0x42}, inst)

	inst, n, ok = Decode([]byte{OpST_ABS_A, 0x00, 0x80})
	require.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, Instruction{Kind: Store8, Reg8: RegA, Mem8: Memory8Mode{Kind: MemAbsolute, Addr: 0x8000}}, inst)

	inst, _, ok = Decode([]byte{OpEXT, OpExtSWI})
	require.True(t, ok)
	assert.Equal(t, Instruction{Kind: Swi}, inst)

	inst, _, ok = Decode([]byte{OpEXT, OpExtADDC_A_A})
	require.True(t, ok)
	assert.Equal(t, Instruction{Kind: Alu2, Reg8: RegA, AluBin: Alu2Addc, AluBinMode: Alu2OpMode{Kind: AluRegister, Reg: RegA}}, inst)
}
