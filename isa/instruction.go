package isa

// Kind discriminates the Instruction union. Every BW8 opcode decodes to
// exactly one Kind plus whatever operand fields that Kind uses; unused
// fields on Instruction are left zero.
type Kind uint8

const (
	Nop Kind = iota
	SetCarry
	ClearCarry
	SetInterruptEnable
	ClearInterruptEnable
	SetBankEnable
	ClearBankEnable
	ReadBankRegister
	WriteBankRegister
	Move8
	Load8Immediate
	Load8
	Store8
	In
	Out
	ReadStackPointer
	WriteStackPointer
	Move16
	Move16FromPair
	Move16ToPair
	Load16Immediate
	Load16
	Store16
	Lea
	Inc16
	Dec16
	Alu2
	Alu1
	Push8
	Push16
	Pop8
	Pop16
	Call
	Ret
	Swi
	Reti
	Jmp
)

// Instruction is the closed sum type of every BW8 operation. Go has no
// tagged union, so this is a flat struct: Kind says which fields are live.
// All fields are comparable, so Instruction itself is comparable and usable
// as a map key (the trace histogram relies on this).
type Instruction struct {
	Kind Kind

	Reg8  Register8 // primary 8-bit register operand (dest, or sole subject)
	Reg8b Register8 // secondary 8-bit register operand (Move8 src)
	Reg16 Register16
	Reg16b Register16
	Ptr   Pointer
	Pair  RegisterPair

	Mem8  Memory8Mode
	Mem16 Memory16Mode
	IO    IOMode
	Lea   LeaMode
	Jump  JumpMode

	AluBin     Alu2Op
	AluBinMode Alu2OpMode
	AluUn      Alu1Op

	Cond Condition

	Imm8  Byte
	Imm16 Word
}
