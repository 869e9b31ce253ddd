package tam

// mem.go implements the data store: the stack discipline (§4.B/C) and the
// bounds-check rule shared by every instruction that addresses the data
// store directly.

// push writes v to data[ST] and advances ST, failing with StackOverflow if
// the stack would grow into the heap.
func (emu *Emulator) push(v DataWord) *Error {
	if emu.Reg[ST] >= emu.Reg[HT] {
		return Fault(StackOverflow, emu.faultAddr())
	}

	emu.data[emu.Reg[ST]] = v
	emu.Reg[ST]++

	return nil
}

// pop retreats ST and returns the word that was there. The popped cell is
// not erased: getSnapshot only ever reads [0, ST), so leaving it alone is
// both correct and cheaper than zeroing it.
func (emu *Emulator) pop() (DataWord, *Error) {
	if emu.Reg[ST] == 0 {
		return 0, Fault(StackUnderflow, emu.faultAddr())
	}

	emu.Reg[ST]--

	return emu.data[emu.Reg[ST]], nil
}

// inGap reports whether addr falls in the unused span between the stack
// and the heap: accessing it is always a data access violation.
func (emu *Emulator) inGap(addr Addr) bool {
	return addr >= emu.Reg[ST] && addr <= emu.Reg[HT]
}

// loadData reads data[addr], bounds-checked against the gap rule.
func (emu *Emulator) loadData(addr Addr) (DataWord, *Error) {
	if emu.inGap(addr) {
		return 0, Fault(DataAccessViolation, emu.faultAddr())
	}

	return emu.data[addr], nil
}

// storeData writes v to data[addr], bounds-checked against the gap rule.
func (emu *Emulator) storeData(addr Addr, v DataWord) *Error {
	if emu.inGap(addr) {
		return Fault(DataAccessViolation, emu.faultAddr())
	}

	emu.data[addr] = v

	return nil
}

// faultAddr is the code address to attribute a fault to: per §4.A, CP has
// already been advanced past the faulting instruction by fetch, so the
// faulting address is CP-1.
func (emu *Emulator) faultAddr() Addr {
	return emu.Reg[CP] - 1
}
