// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
package hwtest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/nandgate"
	"github.com/db47h/nandgate/logic"
)

// Parts with more inputs than this are tested on random vectors only.
const maxExhaustive = 12

// RandomVectors is the number of random input vectors CompareFunc tries on
// parts with more than 12 inputs.
var RandomVectors = 4096

// A Func computes the expected outputs of a part, in Outputs order, from its
// inputs, in Inputs order.
type Func func(in []logic.Bit) []logic.Bit

// CompareFunc flattens part and compares its outputs with those of f.
//
// Parts with up to 12 input pins are tested exhaustively. Larger parts are
// tested with all inputs at 0, all inputs at 1 and RandomVectors random input
// vectors.
func CompareFunc(t testing.TB, part nandgate.NewPartFn, f Func) {
	t.Helper()

	nl, err := nandgate.Flatten(part)
	if err != nil {
		t.Fatal(err)
	}

	in := make([]logic.Bit, len(nl.Inputs))
	maxSteps := 0
	check := func() {
		t.Helper()
		got, steps, err := nl.Eval(in)
		if err != nil {
			t.Fatal(err)
		}
		if steps > maxSteps {
			maxSteps = steps
		}
		ex := f(in)
		if len(ex) != len(got) {
			t.Fatalf("%s: reference returned %d values for %d outputs", nl.Name, len(ex), len(got))
		}
		for o := range got {
			if got[o] != ex[o] {
				t.Fatalf("%s: %s\nExpected %s=%v, got %v", nl.Name, pinValues(nl.Inputs, in), nl.Outputs[o], ex[o], got[o])
			}
		}
	}

	start := time.Now()
	if len(in) <= maxExhaustive {
		for i := 0; i < 1<<uint(len(in)); i++ {
			for bit := range in {
				in[bit] = i&(1<<uint(bit)) != 0
			}
			check()
		}
	} else {
		check()
		for i := range in {
			in[i] = logic.One
		}
		check()
		seed := time.Now().UnixNano()
		rnd := rand.New(rand.NewSource(seed))
		t.Logf("%s: random seed %d", nl.Name, seed)
		for n := 0; n < RandomVectors; n++ {
			for i := range in {
				in[i] = rnd.Int63()&1 != 0
			}
			check()
		}
	}
	t.Logf("%s: %d gates, settled in at most %d steps, %v", nl.Name, len(nl.Gates), maxSteps, time.Since(start))
}

func pinValues(pins []string, in []logic.Bit) string {
	var b strings.Builder
	for i, n := range pins {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(in[i].String())
	}
	return b.String()
}

// Bits16 returns the 16 bits value of in[0] to in[15].
func Bits16(in []logic.Bit) logic.Bits16 {
	var b logic.Bits16
	copy(b[:], in)
	return b
}

// Pins returns the concatenated bits of the given values, suitable as the
// return value of a Func.
func Pins(bs ...logic.Bits16) []logic.Bit {
	out := make([]logic.Bit, 0, len(bs)*16)
	for _, b := range bs {
		out = append(out, b[:]...)
	}
	return out
}
