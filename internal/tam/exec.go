package tam

// exec.go implements the instruction executor (§4.F): the fetch-decode-
// execute cycle and the semantics of all fifteen opcodes, including the
// CALL/RETURN calling convention.

// Step fetches, decodes, and executes a single instruction. It returns the
// instruction that ran, so a host running in trace mode can pass it to
// GetSnapshot, and halted=true when a HALT instruction was executed; the
// host's run loop should stop calling Step once halted is true or err is
// non-nil.
func (emu *Emulator) Step() (ins Instruction, halted bool, err *Error) {
	ins, ferr := emu.Fetch()
	if ferr != nil {
		return Instruction{}, false, ferr
	}

	emu.log.Debug("fetched", "instr", ins, "cp", emu.Reg[CP])

	halted, err = emu.execute(ins)

	return ins, halted, err
}

// Run drives the fetch-decode-execute cycle until the program halts or a
// fault occurs.
func (emu *Emulator) Run() *Error {
	for {
		_, halted, err := emu.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

func (emu *Emulator) execute(ins Instruction) (halted bool, err *Error) {
	switch ins.Op {
	case OpLoad:
		return false, emu.execLoad(ins)
	case OpLoadA:
		return false, emu.execLoadA(ins)
	case OpLoadI:
		return false, emu.execLoadI(ins)
	case OpLoadL:
		return false, emu.execLoadL(ins)
	case OpStore:
		return false, emu.execStore(ins)
	case OpStoreI:
		return false, emu.execStoreI(ins)
	case OpCall:
		return false, emu.execCall(ins)
	case OpCallI:
		return false, emu.execCallI(ins)
	case OpReturn:
		return false, emu.execReturn(ins)
	case OpPush:
		return false, emu.execPush(ins)
	case OpPop:
		return false, emu.execPop(ins)
	case OpJump:
		return false, emu.execJump(ins)
	case OpJumpI:
		return false, emu.execJumpI(ins)
	case OpJumpIf:
		return false, emu.execJumpIf(ins)
	case OpHalt:
		return true, nil
	default:
		return false, Fault(UnknownOpcode, emu.faultAddr())
	}
}

// addrOf computes reg[r] + d + i, the address form used by LOAD, LOADA,
// STORE, JUMP, JUMPIF, and CALL.
func addrOf(base Addr, d int16, i int) Addr {
	return Addr(int32(base) + int32(d) + int32(i))
}

// popN pops n words and returns them in original push order: the result's
// last element is the current top of stack, and its first element is the
// deepest of the n. This is the "LIFO becomes FIFO" rule used by STORE,
// STOREI, RETURN, and POP.
func (emu *Emulator) popN(n int) ([]DataWord, *Error) {
	buf := make([]DataWord, n)

	for k := 0; k < n; k++ {
		v, err := emu.pop()
		if err != nil {
			return nil, err
		}

		buf[n-1-k] = v
	}

	return buf, nil
}

// pushN pushes vals in order, recreating the original stack arrangement
// that popN would have read back out of.
func (emu *Emulator) pushN(vals []DataWord) *Error {
	for _, v := range vals {
		if err := emu.push(v); err != nil {
			return err
		}
	}

	return nil
}

func (emu *Emulator) execLoad(ins Instruction) *Error {
	base := emu.Reg[ins.R]

	for i := 0; i < int(ins.N); i++ {
		v, err := emu.loadData(addrOf(base, ins.D, i))
		if err != nil {
			return err
		}

		if err := emu.push(v); err != nil {
			return err
		}
	}

	return nil
}

func (emu *Emulator) execLoadA(ins Instruction) *Error {
	return emu.push(DataWord(addrOf(emu.Reg[ins.R], ins.D, 0)))
}

func (emu *Emulator) execLoadI(ins Instruction) *Error {
	base, err := emu.pop()
	if err != nil {
		return err
	}

	a := Addr(base)

	for i := 0; i < int(ins.N); i++ {
		v, err := emu.loadData(a + Addr(i))
		if err != nil {
			return err
		}

		if err := emu.push(v); err != nil {
			return err
		}
	}

	return nil
}

func (emu *Emulator) execLoadL(ins Instruction) *Error {
	return emu.push(DataWord(ins.D))
}

func (emu *Emulator) execStore(ins Instruction) *Error {
	vals, err := emu.popN(int(ins.N))
	if err != nil {
		return err
	}

	base := emu.Reg[ins.R]

	for i, v := range vals {
		if err := emu.storeData(addrOf(base, ins.D, i), v); err != nil {
			return err
		}
	}

	return nil
}

func (emu *Emulator) execStoreI(ins Instruction) *Error {
	base, err := emu.pop()
	if err != nil {
		return err
	}

	vals, err := emu.popN(int(ins.N))
	if err != nil {
		return err
	}

	a := Addr(base)

	for i, v := range vals {
		if err := emu.storeData(a+Addr(i), v); err != nil {
			return err
		}
	}

	return nil
}

func (emu *Emulator) execCall(ins Instruction) *Error {
	if ins.R == PB && ins.D >= 1 && ins.D <= NumPrimitives {
		return emu.callPrimitive(int(ins.D))
	}

	target := addrOf(emu.Reg[ins.R], ins.D, 0)
	if target >= emu.Reg[CT] {
		return Fault(CodeAccessViolation, emu.faultAddr())
	}

	return emu.pushFrame(emu.Reg[ins.N], target)
}

func (emu *Emulator) execCallI(ins Instruction) *Error {
	target, err := emu.pop()
	if err != nil {
		return err
	}

	staticLink, err := emu.pop()
	if err != nil {
		return err
	}

	t := Addr(target)
	if t >= emu.Reg[CT] {
		return Fault(CodeAccessViolation, emu.faultAddr())
	}

	return emu.pushFrame(Addr(staticLink), t)
}

// pushFrame pushes the three-word stack frame header (static link, dynamic
// link, return address) and transfers control to target.
func (emu *Emulator) pushFrame(staticLink, target Addr) *Error {
	if err := emu.push(DataWord(staticLink)); err != nil {
		return err
	}

	if err := emu.push(DataWord(emu.Reg[LB])); err != nil {
		return err
	}

	if err := emu.push(DataWord(emu.Reg[CP])); err != nil {
		return err
	}

	emu.Reg[LB] = emu.Reg[ST] - 3
	emu.Reg[CP] = target

	return nil
}

func (emu *Emulator) execReturn(ins Instruction) *Error {
	results, err := emu.popN(int(ins.N))
	if err != nil {
		return err
	}

	lb := emu.Reg[LB]

	dl, err := emu.loadData(lb + 1)
	if err != nil {
		return err
	}

	ra, err := emu.loadData(lb + 2)
	if err != nil {
		return err
	}

	if Addr(ra) >= emu.Reg[CT] {
		return Fault(CodeAccessViolation, emu.faultAddr())
	}

	emu.Reg[ST] = lb

	if emu.Reg[ST] < Addr(ins.D) {
		return Fault(StackUnderflow, emu.faultAddr())
	}

	emu.Reg[ST] -= Addr(ins.D)

	if err := emu.pushN(results); err != nil {
		return err
	}

	emu.Reg[LB] = Addr(dl)
	emu.Reg[CP] = Addr(ra)

	return nil
}

func (emu *Emulator) execPush(ins Instruction) *Error {
	newST := emu.Reg[ST] + Addr(ins.D)

	if newST >= emu.Reg[HT] {
		return Fault(StackOverflow, emu.faultAddr())
	}

	emu.Reg[ST] = newST

	return nil
}

func (emu *Emulator) execPop(ins Instruction) *Error {
	top, err := emu.popN(int(ins.N))
	if err != nil {
		return err
	}

	if emu.Reg[ST] < Addr(ins.D) {
		return Fault(StackUnderflow, emu.faultAddr())
	}

	emu.Reg[ST] -= Addr(ins.D)

	return emu.pushN(top)
}

func (emu *Emulator) execJump(ins Instruction) *Error {
	target := addrOf(emu.Reg[ins.R], ins.D, 0)
	if target >= emu.Reg[CT] {
		return Fault(CodeAccessViolation, emu.faultAddr())
	}

	emu.Reg[CP] = target

	return nil
}

func (emu *Emulator) execJumpI(ins Instruction) *Error {
	target, err := emu.pop()
	if err != nil {
		return err
	}

	t := Addr(target)
	if t >= emu.Reg[CT] {
		return Fault(CodeAccessViolation, emu.faultAddr())
	}

	emu.Reg[CP] = t

	return nil
}

func (emu *Emulator) execJumpIf(ins Instruction) *Error {
	v, err := emu.pop()
	if err != nil {
		return err
	}

	if int16(v) != int16(ins.N) {
		return nil
	}

	target := addrOf(emu.Reg[ins.R], ins.D, 0)
	if target >= emu.Reg[CT] {
		return Fault(CodeAccessViolation, emu.faultAddr())
	}

	emu.Reg[CP] = target

	return nil
}
