package tam

// snapshot.go implements getSnapshot (§4.H): a deterministic text dump of
// the machine used by trace and step modes. It never mutates the machine.

import (
	"fmt"
	"strings"
)

var primitiveNames = [NumPrimitives + 1]string{
	"", // index 0 is never a valid primitive
	"id", "not", "and", "or", "succ", "pred", "neg", "add", "sub", "mult",
	"div", "mod", "lt", "le", "ge", "gt", "eq", "ne", "eol", "eof", "get",
	"put", "geteol", "puteol", "getint", "putint", "new", "dispose",
}

// mnemonic formats ins per the rules in §4.H.
func mnemonic(ins Instruction) string {
	switch ins.Op {
	case OpCall:
		if ins.R == PB && ins.D >= 1 && int(ins.D) <= NumPrimitives {
			return fmt.Sprintf("CALL %s", primitiveNames[ins.D])
		}

		return fmt.Sprintf("CALL(%d) %d[%s]", ins.N, ins.D, ins.R)
	case OpLoad:
		return fmt.Sprintf("LOAD(%d) %d[%s]", ins.N, ins.D, ins.R)
	case OpStore:
		return fmt.Sprintf("STORE(%d) %d[%s]", ins.N, ins.D, ins.R)
	case OpJumpIf:
		return fmt.Sprintf("JUMPIF(%d) %d[%s]", ins.N, ins.D, ins.R)
	case OpLoadA:
		return fmt.Sprintf("LOADA %d[%s]", ins.D, ins.R)
	case OpJump:
		return fmt.Sprintf("JUMP %d[%s]", ins.D, ins.R)
	case OpReturn:
		return fmt.Sprintf("RETURN(%d) %d", ins.N, ins.D)
	case OpPop:
		return fmt.Sprintf("POP(%d) %d", ins.N, ins.D)
	case OpLoadI:
		return fmt.Sprintf("LOADI %d", ins.N)
	case OpStoreI:
		return fmt.Sprintf("STOREI %d", ins.N)
	case OpLoadL:
		return fmt.Sprintf("LOADL %d", ins.D)
	case OpPush:
		return fmt.Sprintf("PUSH %d", ins.D)
	case OpCallI:
		return "CALLI"
	case OpJumpI:
		return "JUMPI"
	case OpHalt:
		return "HALT"
	default:
		return ins.Op.String()
	}
}

// GetSnapshot returns the deterministic trace line for ins together with
// the current stack and heap contents, formatted per §4.H. ins is the
// instruction that was just fetched and executed; the code address it was
// fetched from is CP-1.
func (emu *Emulator) GetSnapshot(ins Instruction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%d: %s\n", int(emu.faultAddr()), mnemonic(ins))

	b.WriteString("stack\n")
	writeWords(&b, emu.data[:emu.Reg[ST]])

	emu.allocated.Range(func(addr Addr, size int) bool {
		fmt.Fprintf(&b, "heap %s\n", addr)
		writeWords(&b, emu.data[addr:int(addr)+size])

		return true
	})

	return b.String()
}

// writeWords formats words eight per line as 4-digit hex, per §4.H.
func writeWords(b *strings.Builder, words []DataWord) {
	for i, w := range words {
		if i > 0 {
			if i%8 == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}

		fmt.Fprintf(b, "%s", w)
	}

	b.WriteByte('\n')
}
