// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandgate_test

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/nandgate"
	"github.com/db47h/nandgate/logic"
	"github.com/db47h/nandgate/netlib"
)

type mux16Model struct {
	A   [16]int `hw:"in"`
	B   [16]int `hw:"in"`
	S   int     `hw:"in,sel"`
	Out [16]int `hw:"out"`
}

func (m *mux16Model) Update(c *nandgate.Circuit) {
	src := m.A
	if c.Get(m.S) {
		src = m.B
	}
	for i, w := range src {
		c.Set(m.Out[i], c.Get(w))
	}
}

func TestMakePart(t *testing.T) {
	spec := nandgate.MakePart((*mux16Model)(nil))
	assert.Equal(t, "mux16Model", spec.Name)
	assert.Len(t, spec.Inputs, 33)
	assert.Equal(t, "sel", spec.Inputs[32])
	assert.Len(t, spec.Outputs, 16)

	var a, b, model, chip logic.Bits16
	var sel logic.Bit
	c, err := nandgate.NewCircuit(nandgate.Parts{
		netlib.Input16(func() logic.Bits16 { return a })("out[0..15]=a[0..15]"),
		netlib.Input16(func() logic.Bits16 { return b })("out[0..15]=b[0..15]"),
		netlib.Input(func() logic.Bit { return sel })("out=sel"),
		spec.NewPart("a[0..15]=a[0..15], b[0..15]=b[0..15], sel=sel, out[0..15]=model[0..15]"),
		netlib.Mux16("a[0..15]=a[0..15], b[0..15]=b[0..15], sel=sel, out[0..15]=chip[0..15]"),
		netlib.Output16(func(v logic.Bits16) { model = v })("in[0..15]=model[0..15]"),
		netlib.Output16(func(v logic.Bits16) { chip = v })("in[0..15]=chip[0..15]"),
	})
	require.NoError(t, err)

	f := func(x, y uint16, s bool) bool {
		a, b, sel = logic.FromUint16(x), logic.FromUint16(y), logic.Bit(s)
		if _, err := c.Settle(); err != nil {
			t.Fatal(err)
		}
		return model == chip && model == logic.Mux16(a, b, sel)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestMakePart_flatten(t *testing.T) {
	_, err := nandgate.Flatten(nandgate.MakePart((*mux16Model)(nil)).NewPart)
	assert.EqualError(t, err, "mux16Model: cannot flatten a part with 1 probes")
}

type badTag struct {
	X int `hw:"inout"`
}

func (*badTag) Update(*nandgate.Circuit) {}

type badType struct {
	X bool `hw:"in"`
}

func (*badType) Update(*nandgate.Circuit) {}

type notStruct int

func (notStruct) Update(*nandgate.Circuit) {}

func TestMakePart_panics(t *testing.T) {
	assert.Panics(t, func() { nandgate.MakePart((*badTag)(nil)) })
	assert.Panics(t, func() { nandgate.MakePart((*badType)(nil)) })
	assert.Panics(t, func() { nandgate.MakePart(notStruct(0)) })
}

type buffer struct {
	In  int `hw:"in"`
	Out int `hw:"out"`
}

func (b *buffer) Update(c *nandgate.Circuit) { c.Set(b.Out, c.Get(b.In)) }

func TestCircuit_settle_behavioral_chain(t *testing.T) {
	buf := nandgate.MakePart((*buffer)(nil)).NewPart
	var in, out logic.Bit
	c, err := nandgate.NewCircuit(nandgate.Parts{
		netlib.Input(func() logic.Bit { return in })("out=w0"),
		buf("in=w0, out=w1"),
		buf("in=w1, out=w2"),
		buf("in=w2, out=w3"),
		netlib.Output(func(v logic.Bit) { out = v })("in=w3"),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, c.Size())

	for _, v := range []logic.Bit{logic.One, logic.Zero, logic.One} {
		in = v
		steps, err := c.Settle()
		require.NoError(t, err)
		assert.Equal(t, v, out)
		assert.True(t, steps <= c.Size()+1, "settled in %d steps", steps)
	}
}
