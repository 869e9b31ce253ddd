package tam

// loader.go implements LoadProgram (§4.I): installing a decoded program
// image into the code store and setting up the code-segment registers.

// LoadProgram installs words into the code store starting at address 0
// and sets CT, PB, and PT per §4.I. It fails with IoError if the program
// is larger than the code store can hold. A program of exactly MemSize
// words is also rejected: CT (an Addr, 16 bits wide) would wrap to 0, so
// every fetch would fault with CodeAccessViolation. Other registers and the
// data store are left at their constructor defaults.
func (emu *Emulator) LoadProgram(words []CodeWord) *Error {
	if len(words) >= MemSize {
		return FaultIO("program file too large")
	}

	for i := range emu.code {
		emu.code[i] = 0
	}

	copy(emu.code[:], words)

	n := Addr(len(words))
	emu.Reg[CT] = n
	emu.Reg[PB] = n
	emu.Reg[PT] = n + 29

	return nil
}
