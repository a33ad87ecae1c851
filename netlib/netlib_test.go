// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlib_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/nandgate"
	"github.com/db47h/nandgate/arith"
	"github.com/db47h/nandgate/hwtest"
	"github.com/db47h/nandgate/logic"
	"github.com/db47h/nandgate/netlib"
)

func bits16(in []logic.Bit, n int) logic.Bits16 { return hwtest.Bits16(in[n*16:]) }

var chips = []struct {
	name  string
	part  nandgate.NewPartFn
	gates int
	f     hwtest.Func
}{
	{"NOT", netlib.Not, 1, func(in []logic.Bit) []logic.Bit {
		return []logic.Bit{logic.Not(in[0])}
	}},
	{"AND", netlib.And, 2, func(in []logic.Bit) []logic.Bit {
		return []logic.Bit{logic.And(in[0], in[1])}
	}},
	{"OR", netlib.Or, 3, func(in []logic.Bit) []logic.Bit {
		return []logic.Bit{logic.Or(in[0], in[1])}
	}},
	{"NOR", netlib.Nor, 4, func(in []logic.Bit) []logic.Bit {
		return []logic.Bit{logic.Nor(in[0], in[1])}
	}},
	{"XOR", netlib.Xor, 6, func(in []logic.Bit) []logic.Bit {
		return []logic.Bit{logic.Xor(in[0], in[1])}
	}},
	{"MUX", netlib.Mux, 8, func(in []logic.Bit) []logic.Bit {
		return []logic.Bit{logic.Mux(in[0], in[1], in[2])}
	}},
	{"DMUX", netlib.DMux, 5, func(in []logic.Bit) []logic.Bit {
		out := logic.DMux(in[0], in[1])
		return out[:]
	}},
	{"NOT16", netlib.Not16, 16, func(in []logic.Bit) []logic.Bit {
		return hwtest.Pins(logic.Not16(bits16(in, 0)))
	}},
	{"AND16", netlib.And16, 32, func(in []logic.Bit) []logic.Bit {
		return hwtest.Pins(logic.And16(bits16(in, 0), bits16(in, 1)))
	}},
	{"OR16", netlib.Or16, 48, func(in []logic.Bit) []logic.Bit {
		return hwtest.Pins(logic.Or16(bits16(in, 0), bits16(in, 1)))
	}},
	{"MUX16", netlib.Mux16, 128, func(in []logic.Bit) []logic.Bit {
		return hwtest.Pins(logic.Mux16(bits16(in, 0), bits16(in, 1), in[32]))
	}},
	{"OR8WAY", netlib.Or8Way, 21, func(in []logic.Bit) []logic.Bit {
		var b logic.Bits8
		copy(b[:], in)
		return []logic.Bit{logic.Or8Way(b)}
	}},
	{"MUX4WAY16", netlib.Mux4Way16, 384, func(in []logic.Bit) []logic.Bit {
		return hwtest.Pins(logic.Mux4Way16(
			bits16(in, 0), bits16(in, 1), bits16(in, 2), bits16(in, 3),
			logic.Bits2{in[64], in[65]}))
	}},
	{"MUX8WAY16", netlib.Mux8Way16, 896, func(in []logic.Bit) []logic.Bit {
		return hwtest.Pins(logic.Mux8Way16(
			bits16(in, 0), bits16(in, 1), bits16(in, 2), bits16(in, 3),
			bits16(in, 4), bits16(in, 5), bits16(in, 6), bits16(in, 7),
			logic.Bits3{in[128], in[129], in[130]}))
	}},
	{"DMUX4WAY", netlib.DMux4Way, 15, func(in []logic.Bit) []logic.Bit {
		out := logic.DMux4Way(in[0], logic.Bits2{in[1], in[2]})
		return out[:]
	}},
	{"DMUX8WAY", netlib.DMux8Way, 35, func(in []logic.Bit) []logic.Bit {
		out := logic.DMux8Way(in[0], logic.Bits3{in[1], in[2], in[3]})
		return out[:]
	}},
	{"HALFADDER", netlib.HalfAdder, 8, func(in []logic.Bit) []logic.Bit {
		out := arith.HalfAdder(in[0], in[1])
		return out[:]
	}},
	{"FULLADDER", netlib.FullAdder, 24, func(in []logic.Bit) []logic.Bit {
		out := arith.FullAdder(in[0], in[1], in[2])
		return out[:]
	}},
	{"ADD16", netlib.Add16, 384, func(in []logic.Bit) []logic.Bit {
		return hwtest.Pins(arith.Add16(bits16(in, 0), bits16(in, 1)))
	}},
	{"INC16", netlib.Inc16, 384, func(in []logic.Bit) []logic.Bit {
		return hwtest.Pins(arith.Inc16(bits16(in, 0)))
	}},
}

func TestChips(t *testing.T) {
	for _, c := range chips {
		t.Run(c.name, func(t *testing.T) {
			p := c.part("")
			assert.Equal(t, c.name, p.Name)
			assert.Equal(t, c.gates, p.Gates)
			hwtest.CompareFunc(t, c.part, c.f)
		})
	}
}

func TestChips_list(t *testing.T) {
	names := make(map[string]bool)
	for _, fn := range netlib.Chips() {
		names[fn("").Name] = true
	}
	assert.Len(t, names, len(chips)+1)
	assert.True(t, names["NAND"])
	for _, c := range chips {
		assert.True(t, names[c.name], c.name)
	}
}

func TestFlatten_constants(t *testing.T) {
	nl, err := nandgate.Flatten(netlib.Inc16)
	require.NoError(t, err)
	assert.Equal(t, 384, len(nl.Gates))
	var reads [2]int
	for _, g := range nl.Gates {
		for _, w := range []int{g.A, g.B} {
			if w == nandgate.WireFalse || w == nandgate.WireTrue {
				reads[w]++
			}
		}
	}
	assert.NotZero(t, reads[nandgate.WireFalse], "false reads")
	assert.NotZero(t, reads[nandgate.WireTrue], "true reads")
}

func TestCircuit_add16(t *testing.T) {
	var a, b, sum logic.Bits16
	c, err := nandgate.NewCircuit(nandgate.Parts{
		netlib.Input16(func() logic.Bits16 { return a })("out[0..15]=a[0..15]"),
		netlib.Input16(func() logic.Bits16 { return b })("out[0..15]=b[0..15]"),
		netlib.Add16("a[0..15]=a[0..15], b[0..15]=b[0..15], out[0..15]=sum[0..15]"),
		netlib.Output16(func(v logic.Bits16) { sum = v })("in[0..15]=sum[0..15]"),
	})
	require.NoError(t, err)

	td := []struct{ a, b, sum uint16 }{
		{0, 0, 0},
		{2, 3, 5},
		{0xffff, 1, 0},
		{0x8000, 0x8000, 0},
		{12345, 54321, 1130},
		{0x7fff, 1, 0x8000},
	}
	for _, d := range td {
		a, b = logic.FromUint16(d.a), logic.FromUint16(d.b)
		_, err := c.Settle()
		require.NoError(t, err)
		assert.Equal(t, d.sum, sum.Uint16(), "%d + %d", d.a, d.b)
	}
}

func TestCircuit_probes(t *testing.T) {
	var in, out logic.Bit
	c, err := nandgate.NewCircuit(nandgate.Parts{
		netlib.Input(func() logic.Bit { return in })("out=x"),
		netlib.Not("in=x, out=notX"),
		netlib.Output(func(v logic.Bit) { out = v })("in=notX"),
	})
	require.NoError(t, err)
	for _, v := range []logic.Bit{logic.Zero, logic.One, logic.Zero} {
		in = v
		_, err := c.Settle()
		require.NoError(t, err)
		assert.Equal(t, !v, out, "NOT %v", v)
	}
}

func TestWriteProfile(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, netlib.WriteProfile(&b))
	s := b.String()
	t.Log("\n" + s)
	for _, n := range []string{"CHIP", "NANDS", "NAND", "ADD16", "MUX8WAY16", "896"} {
		assert.Contains(t, s, n)
	}
}
