package tam

// regs.go defines the machine's register file.

import (
	"fmt"
	"strings"
)

// RegIdx identifies one of the sixteen machine registers by its 4-bit
// index.
type RegIdx uint8

// Named register indices, per §3 of the specification.
const (
	CB RegIdx = iota
	CT
	PB
	PT
	SB
	ST
	HB
	HT
	LB
	L1
	L2
	L3
	L4
	L5
	L6
	CP

	NumRegs = 16
)

var regNames = [NumRegs]string{
	"CB", "CT", "PB", "PT", "SB", "ST", "HB", "HT",
	"LB", "L1", "L2", "L3", "L4", "L5", "L6", "CP",
}

func (r RegIdx) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}

	return fmt.Sprintf("R%d", uint8(r))
}

// Registers is the file of sixteen addressable machine registers.
type Registers [NumRegs]Addr

func (rf Registers) String() string {
	var b strings.Builder

	for i, name := range regNames {
		fmt.Fprintf(&b, "%s: %s  ", name, rf[i])

		if i%4 == 3 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
