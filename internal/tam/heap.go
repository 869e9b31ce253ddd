package tam

// heap.go implements the first-fit heap allocator described in §4.D. The
// heap grows down from HB; allocated and free blocks are tracked in two
// ordered maps keyed by block address, iterated in ascending order so
// first-fit visits candidates in address order.

// Allocate reserves n words from the heap and returns their address. An
// allocation of size 0 returns the sentinel address 0 without touching heap
// state.
func (emu *Emulator) Allocate(n int) (Addr, *Error) {
	if n == 0 {
		return 0, nil
	}

	var (
		foundAddr Addr
		foundSize int
		found     bool
	)

	emu.free.Range(func(addr Addr, size int) bool {
		if size >= n {
			foundAddr, foundSize, found = addr, size, true
			return false
		}

		return true
	})

	if found {
		emu.allocated.Set(foundAddr, n)
		emu.free.Delete(foundAddr)

		if foundSize > n {
			emu.free.Set(foundAddr+Addr(n), foundSize-n)
		}

		return foundAddr, nil
	}

	newHT := emu.Reg[HT] - Addr(n)

	if newHT <= emu.Reg[ST] || newHT > emu.Reg[HT] {
		return 0, Fault(HeapOverflow, emu.faultAddr())
	}

	emu.Reg[HT] = newHT
	addr := emu.Reg[HT] + 1
	emu.allocated.Set(addr, n)

	return addr, nil
}

// Free releases a block previously returned by Allocate. addr and size must
// match exactly what Allocate returned and was asked for; a mismatch is a
// data access violation, per §4.D.
func (emu *Emulator) Free(addr Addr, size int) *Error {
	if addr == 0 {
		if size != 0 {
			return Fault(DataAccessViolation, emu.faultAddr())
		}

		return nil
	}

	if addr <= emu.Reg[HT] {
		return Fault(DataAccessViolation, emu.faultAddr())
	}

	got, ok := emu.allocated.Get(addr)
	if !ok || got != size {
		return Fault(DataAccessViolation, emu.faultAddr())
	}

	emu.allocated.Delete(addr)

	if addr == emu.Reg[HT]+1 {
		emu.Reg[HT] += Addr(size)
	} else {
		emu.free.Set(addr, size)
	}

	return nil
}
