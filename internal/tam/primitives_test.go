package tam

import (
	"errors"
	"testing"
)

func TestArithmeticPrimitives(tt *testing.T) {
	tt.Parallel()

	tcs := []struct {
		name string
		prim int
		a, b DataWord
		want DataWord
	}{
		{"add", 8, 2, 3, 5},
		{"sub", 9, 5, 3, 2},
		{"mult", 10, 4, 3, 12},
		{"div", 11, 7, 2, 3},
		{"mod", 12, 7, 2, 1},
		{"lt true", 13, 2, 3, 1},
		{"lt false", 13, 3, 2, 0},
		{"le", 14, 3, 3, 1},
		{"ge", 15, 3, 2, 1},
		{"gt", 16, 4, 3, 1},
	}

	for _, tc := range tcs {
		tc := tc

		tt.Run(tc.name, func(tt *testing.T) {
			tt.Parallel()

			h := newTestHarness(tt)
			emu := h.make()

			if err := emu.push(tc.a); err != nil {
				tt.Fatalf("push a: %v", err)
			}

			if err := emu.push(tc.b); err != nil {
				tt.Fatalf("push b: %v", err)
			}

			if err := emu.callPrimitive(tc.prim); err != nil {
				tt.Fatalf("callPrimitive(%d): %v", tc.prim, err)
			}

			got, err := emu.pop()
			if err != nil {
				tt.Fatalf("pop: %v", err)
			}

			if got != tc.want {
				tt.Errorf("%s(%d,%d) want: %d, got: %d", tc.name, tc.a, tc.b, tc.want, got)
			}
		})
	}
}

func TestDivByZeroIsDataAccessViolation(tt *testing.T) {
	tt.Parallel()

	h := newTestHarness(tt)
	emu := h.make()

	if err := emu.push(7); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.push(0); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(11); !errors.Is(err, ErrDataAccessViolation) {
		tt.Errorf("div by zero err want: DataAccessViolation, got: %v", err)
	}
}

func TestModByZeroIsDataAccessViolation(tt *testing.T) {
	tt.Parallel()

	h := newTestHarness(tt)
	emu := h.make()

	if err := emu.push(7); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.push(0); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(12); !errors.Is(err, ErrDataAccessViolation) {
		tt.Errorf("mod by zero err want: DataAccessViolation, got: %v", err)
	}
}

func TestNotAndOr(tt *testing.T) {
	tt.Parallel()

	h := newTestHarness(tt)
	emu := h.make()

	if err := emu.push(0); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(2); err != nil { // not
		tt.Fatalf("not: %v", err)
	}

	got, err := emu.pop()
	if err != nil {
		tt.Fatalf("pop: %v", err)
	}

	if got != 1 {
		tt.Errorf("not(0) want: 1, got: %d", got)
	}

	if err := emu.push(3); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.push(0); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(3); err != nil { // and
		tt.Fatalf("and: %v", err)
	}

	got, err = emu.pop()
	if err != nil {
		tt.Fatalf("pop: %v", err)
	}

	if got != 0 {
		tt.Errorf("and(3,0) want: 0, got: %d", got)
	}

	if err := emu.push(0); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.push(0); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(4); err != nil { // or
		tt.Fatalf("or: %v", err)
	}

	got, err = emu.pop()
	if err != nil {
		tt.Fatalf("pop: %v", err)
	}

	if got != 0 {
		tt.Errorf("or(0,0) want: 0, got: %d", got)
	}
}

func TestEqNeTuples(tt *testing.T) {
	tt.Parallel()

	h := newTestHarness(tt)
	emu := h.make()

	// Push tuple1 = (1,2), tuple2 = (1,2), width 2.
	for _, v := range []DataWord{1, 2, 1, 2, 2} {
		if err := emu.push(v); err != nil {
			tt.Fatalf("push: %v", err)
		}
	}

	if err := emu.callPrimitive(17); err != nil { // eq
		tt.Fatalf("eq: %v", err)
	}

	got, err := emu.pop()
	if err != nil {
		tt.Fatalf("pop: %v", err)
	}

	if got != 1 {
		tt.Errorf("eq of equal tuples want: 1, got: %d", got)
	}

	for _, v := range []DataWord{1, 2, 1, 3, 2} {
		if err := emu.push(v); err != nil {
			tt.Fatalf("push: %v", err)
		}
	}

	if err := emu.callPrimitive(18); err != nil { // ne
		tt.Fatalf("ne: %v", err)
	}

	got, err = emu.pop()
	if err != nil {
		tt.Fatalf("pop: %v", err)
	}

	if got != 1 {
		tt.Errorf("ne of unequal tuples want: 1, got: %d", got)
	}
}

func TestGetPut(tt *testing.T) {
	tt.Parallel()

	h := newTestHarness(tt).withInput("A")
	emu := h.make()

	if err := emu.push(0); err != nil { // destination address
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(21); err != nil { // get
		tt.Fatalf("get: %v", err)
	}

	if emu.data[0] != 'A' {
		tt.Errorf("data[0] want: 'A', got: %d", emu.data[0])
	}

	if err := emu.push(DataWord('Z')); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(22); err != nil { // put
		tt.Fatalf("put: %v", err)
	}

	if got := h.out.String(); got != "Z" {
		tt.Errorf("output want: %q, got: %q", "Z", got)
	}
}

func TestGetintPutint(tt *testing.T) {
	tt.Parallel()

	h := newTestHarness(tt).withInput("42\n")
	emu := h.make()

	if err := emu.push(0); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(25); err != nil { // getint
		tt.Fatalf("getint: %v", err)
	}

	if emu.data[0] != 42 {
		tt.Errorf("data[0] want: 42, got: %d", emu.data[0])
	}

	if err := emu.push(-7); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(26); err != nil { // putint
		tt.Fatalf("putint: %v", err)
	}

	if got := h.out.String(); got != "-7" {
		tt.Errorf("output want: %q, got: %q", "-7", got)
	}
}

func TestGetintMalformedIsIoError(tt *testing.T) {
	tt.Parallel()

	h := newTestHarness(tt).withInput("not-a-number\n")
	emu := h.make()

	if err := emu.push(0); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(25); !errors.Is(err, ErrIO) {
		tt.Errorf("err want: IoError, got: %v", err)
	}
}

func TestNewDispose(tt *testing.T) {
	tt.Parallel()

	h := newTestHarness(tt)
	emu := h.make()

	if err := emu.push(4); err != nil {
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(27); err != nil { // new
		tt.Fatalf("new: %v", err)
	}

	addr, err := emu.pop()
	if err != nil {
		tt.Fatalf("pop: %v", err)
	}

	if want := MaxAddr - 3; Addr(addr) != want {
		tt.Errorf("new(4) want: %d, got: %d", want, addr)
	}

	if err := emu.push(4); err != nil { // size
		tt.Fatalf("push: %v", err)
	}

	if err := emu.push(addr); err != nil { // address
		tt.Fatalf("push: %v", err)
	}

	if err := emu.callPrimitive(28); err != nil { // dispose
		tt.Fatalf("dispose: %v", err)
	}

	if emu.Reg[HT] != MaxAddr {
		tt.Errorf("HT want: %s, got: %s", MaxAddr, emu.Reg[HT])
	}
}
