package tam

// tam.go assembles the machine from its smaller parts: stores, registers,
// heap bookkeeping, and I/O streams.

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/trianglelang/tam/internal/log"
)

// Emulator is the Triangle Abstract Machine simulated in software.
type Emulator struct {
	Reg Registers

	code [MemSize]CodeWord
	data [MemSize]DataWord

	allocated *orderedMap
	free      *orderedMap

	in  *bufio.Reader
	out io.Writer

	log *log.Logger
}

// OptionFn configures an Emulator during New.
type OptionFn func(*Emulator)

// New creates and initializes a machine. By default it reads primitive
// input from os.Stdin and writes primitive output to os.Stdout; use
// WithStreams to supply different streams, e.g. for testing.
func New(opts ...OptionFn) *Emulator {
	emu := &Emulator{
		allocated: newOrderedMap(),
		free:      newOrderedMap(),
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		log:       log.DefaultLogger(),
	}

	emu.initializeRegisters()

	for _, opt := range opts {
		opt(emu)
	}

	return emu
}

// initializeRegisters sets the default register values described in §3:
// SB and CB are always zero; HB and HT start at the top of the address
// space, since the heap is initially empty.
func (emu *Emulator) initializeRegisters() {
	emu.Reg[CB] = 0
	emu.Reg[SB] = 0
	emu.Reg[HB] = MaxAddr
	emu.Reg[HT] = MaxAddr
}

// WithLogger configures the machine's logger.
func WithLogger(logger *log.Logger) OptionFn {
	return func(emu *Emulator) {
		emu.log = logger
	}
}

// WithStreams configures the machine's primitive I/O streams. It is the
// caller's responsibility to close streams it owns; the machine never
// closes streams it did not open itself.
func WithStreams(in io.Reader, out io.Writer) OptionFn {
	return func(emu *Emulator) {
		emu.in = bufio.NewReader(in)
		emu.out = out
	}
}

// NewWithFiles creates a machine that reads and writes the given open
// files, closing them when the returned closeFn is called. Use this form when the host
// owns file lifecycle and wants the machine to participate in it.
func NewWithFiles(in, out *os.File, opts ...OptionFn) (emu *Emulator, closeFn func() error) {
	emu = New(append([]OptionFn{WithStreams(in, out)}, opts...)...)

	return emu, func() error {
		inErr := in.Close()
		outErr := out.Close()

		if inErr != nil {
			return inErr
		}

		return outErr
	}
}

func (emu *Emulator) String() string {
	return fmt.Sprintf("ST: %s HT: %s LB: %s CP: %s\n%s",
		emu.Reg[ST], emu.Reg[HT], emu.Reg[LB], emu.Reg[CP], emu.Reg)
}

func (emu *Emulator) LogValue() log.Value {
	return log.GroupValue(
		log.String("CP", emu.Reg[CP].String()),
		log.String("ST", emu.Reg[ST].String()),
		log.String("HT", emu.Reg[HT].String()),
		log.String("LB", emu.Reg[LB].String()),
	)
}
