package tam

import (
	"bytes"
	"strings"
	"testing"

	"github.com/trianglelang/tam/internal/log"
)

// testHarness builds machines wired to in-memory I/O so tests can both
// drive input deterministically and inspect output afterward.
type testHarness struct {
	*testing.T

	in  *strings.Reader
	out *bytes.Buffer
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	return &testHarness{T: t, in: strings.NewReader(""), out: &bytes.Buffer{}}
}

func (h *testHarness) withInput(s string) *testHarness {
	h.in = strings.NewReader(s)

	return h
}

func (h *testHarness) make(opts ...OptionFn) *Emulator {
	all := append([]OptionFn{WithStreams(h.in, h.out), WithLogger(log.DefaultLogger())}, opts...)

	return New(all...)
}

func encode(op Opcode, r RegIdx, n uint8, d int16) CodeWord {
	return CodeWord(uint32(op)<<28 | uint32(r)<<24 | uint32(n)<<16 | uint32(uint16(d)))
}
