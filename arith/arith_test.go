package arith_test

import (
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/db47h/nandgate/arith"
	"github.com/db47h/nandgate/logic"
)

func TestHalfAdder(t *testing.T) {
	td := []struct {
		a, b logic.Bit
		out  logic.Bits2
	}{
		{logic.Zero, logic.Zero, logic.Bits2{logic.Zero, logic.Zero}},
		{logic.One, logic.Zero, logic.Bits2{logic.One, logic.Zero}},
		{logic.Zero, logic.One, logic.Bits2{logic.One, logic.Zero}},
		{logic.One, logic.One, logic.Bits2{logic.Zero, logic.One}},
	}
	for _, d := range td {
		require.Equal(t, d.out, arith.HalfAdder(d.a, d.b), "HalfAdder(%v, %v)", d.a, d.b)
	}
}

func TestFullAdder(t *testing.T) {
	for i := 0; i < 8; i++ {
		a, b, c := logic.Bit(i&1 != 0), logic.Bit(i&2 != 0), logic.Bit(i&4 != 0)
		n := i&1 + i>>1&1 + i>>2&1
		want := logic.Bits2{n&1 != 0, n&2 != 0}
		require.Equal(t, want, arith.FullAdder(a, b, c), "FullAdder(%v, %v, %v)", a, b, c)
	}
}

func TestAdd16(t *testing.T) {
	td := []struct {
		a, b, sum uint16
	}{
		{0, 0, 0},
		{1, 1, 2},
		{0, 2, 2},
		{3, 2, 5},
		{0x8000, 0x8000, 0},
		{0xffff, 0xffff, 0xfffe},
		{0x00ff, 0xff01, 0},
		{12345, 54321, 1130},
	}
	for _, d := range td {
		out := arith.Add16(logic.FromUint16(d.a), logic.FromUint16(d.b))
		if diff := cmp.Diff(logic.FromUint16(d.sum), out); diff != "" {
			t.Errorf("%#04x + %#04x (-want +got):\n%s", d.a, d.b, diff)
		}
	}
}

func TestAdd16_laws(t *testing.T) {
	td := []struct {
		name string
		law  interface{}
	}{
		{"wraps", func(u, v uint16) bool {
			return arith.Add16(logic.FromUint16(u), logic.FromUint16(v)).Uint16() == u+v
		}},
		{"zero_identity", func(a logic.Bits16) bool {
			return arith.Add16(a, logic.Bits16{}) == a
		}},
		{"commutes", func(a, b logic.Bits16) bool {
			return arith.Add16(a, b) == arith.Add16(b, a)
		}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			require.NoError(t, quick.Check(d.law, &quick.Config{MaxCount: 1000}))
		})
	}
}

func TestInc16(t *testing.T) {
	for _, v := range []uint16{0, 1, 2, 3, 0x7fff, 0xffff} {
		require.Equal(t, v+1, arith.Inc16(logic.FromUint16(v)).Uint16(), "Inc16(%#04x)", v)
	}
	require.Equal(t, logic.Bits16{}, arith.Inc16(logic.FromUint16(0xffff)))
}

func TestInc16_exhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive test in short mode")
	}
	for u := 0; u < 1<<16; u++ {
		v := uint16(u)
		if got := arith.Inc16(logic.FromUint16(v)).Uint16(); got != v+1 {
			t.Fatalf("Inc16(%#04x) = %#04x, expected %#04x", v, got, v+1)
		}
	}
}
