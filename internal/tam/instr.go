package tam

// instr.go implements the instruction decoder (§4.E): it extracts the
// (op, r, n, d) fields from a 32-bit code word.

import "fmt"

// Instruction is a single decoded TAM instruction.
type Instruction struct {
	Op Opcode
	R  RegIdx
	N  uint8
	D  int16
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s(%d) %d[%s]", i.Op, i.N, i.D, i.R)
}

// decode extracts the (op, r, n, d) fields from a code word per §4.E:
//
//	op = (word >> 28) & 0xF
//	r  = (word >> 24) & 0xF
//	n  = (word >> 16) & 0xFF
//	d  =  word        & 0xFFFF, interpreted as signed 16-bit
func decode(word CodeWord) Instruction {
	return Instruction{
		Op: Opcode((word >> 28) & 0xf),
		R:  RegIdx((word >> 24) & 0xf),
		N:  uint8((word >> 16) & 0xff),
		D:  int16(word & 0xffff),
	}
}

// Fetch loads the instruction addressed by CP and advances CP, per §4.E.
// It fails with CodeAccessViolation if the pre-increment CP is at or past
// CT.
func (emu *Emulator) Fetch() (Instruction, *Error) {
	cp := emu.Reg[CP]

	if cp >= emu.Reg[CT] {
		return Instruction{}, Fault(CodeAccessViolation, cp)
	}

	word := emu.code[cp]
	emu.Reg[CP] = cp + 1

	return decode(word), nil
}
