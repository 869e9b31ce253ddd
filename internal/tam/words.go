package tam

// words.go defines the basic data types the machine operates on.

import "fmt"

// CodeWord is a single instruction as stored in the code store: a 32-bit
// value encoding an opcode and its three operands.
type CodeWord uint32

func (w CodeWord) String() string {
	return fmt.Sprintf("%08x", uint32(w))
}

// DataWord is a single cell of the data store: a signed, two's-complement
// 16-bit value. Arithmetic on DataWord wraps modulo 2^16, matching the
// semantics of the primitive routines in §4.G of the specification.
type DataWord int16

func (w DataWord) String() string {
	return fmt.Sprintf("%04x", uint16(w))
}

// Addr indexes both the code store and the data store.
type Addr uint16

func (a Addr) String() string {
	return fmt.Sprintf("%04x", uint16(a))
}

// MaxAddr is the largest representable address; it is also the initial
// value of HB, the heap base.
const MaxAddr Addr = 0xffff

// MemSize is the number of addressable words in each store.
const MemSize = int(MaxAddr) + 1

// NumPrimitives is the count of valid primitive routine indices; primitive
// indices 1..NumPrimitives are valid operands to CALL r=PB.
const NumPrimitives = 28
