/*
Package tam implements the Triangle Abstract Machine (TAM), a stack-based
virtual machine used to execute compiled Triangle programs.

The emulator loads a binary program image into a fixed-size code store, then
repeatedly fetches, decodes, and executes instructions against a data store
shared between an evaluation stack and a heap, and a file of sixteen
addressable registers.

# Memory #

Both stores are exactly 65,536 elements, indexed by a 16-bit address. The
code store holds the program text, written once by the loader and read-only
thereafter. The data store is split into two regions that grow toward each
other: the evaluation stack grows up from address 0, and the heap grows down
from the top of the address space.

	+========+========+=================+
	| 0xffff |   HB   |  Heap (initial)  |
	|        |        |  blocks grow down|
	|        |  ...   |                  |
	|        |   HT   |------------------|
	|        |        |       gap        |   Addresses in [ST, HT] are
	|        |        |                  |   neither stack nor heap; any
	|        |   ST   |------------------|   access to them is a data
	|        |        |  Evaluation      |   access violation.
	|        |  ...   |  stack, grows up |
	|        |   SB   |                  |
	+========+========+=================+
	| 0xffff |   CT   |  (unused code)   |
	|        |  ...   |                  |
	|        |   CB   |   Program text   |
	+========+========+=================+

Registers CB, CT, PB, and PT describe the code store and the primitive
routine range; SB, ST, HB, and HT describe the data store; LB and L1..L6
track the current and enclosing stack frames; CP is the code pointer.

# Instruction cycle #

Each cycle fetches one 32-bit code word addressed by CP, decodes it into an
opcode, register operand, count operand, and displacement, and dispatches to
the opcode's handler. Handlers mutate the stack, heap, registers, or CP
directly; a primitive call (CALL with register operand PB) instead invokes
one of the 28 fixed built-in routines.

Every fallible operation returns an *Error carrying the kind of fault and
the code address at which it occurred, rather than panicking; the host
drives the cycle and is responsible for reporting the error and halting.
*/
package tam
