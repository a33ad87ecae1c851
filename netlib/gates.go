// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlib provides the logic and arith gates as chips built from NAND
// gates only. Every chip can be flattened to a netlist with nandgate.Flatten or
// mounted in a circuit together with the probes in this package.
package netlib

import (
	"strconv"

	"github.com/db47h/nandgate"
)

func must(fn nandgate.NewPartFn, err error) nandgate.NewPartFn {
	if err != nil {
		panic(err)
	}
	return fn
}

// each returns n parts built by f, where f is called with the lane index as a
// string.
func each(n int, f func(i string) nandgate.Part) []nandgate.Part {
	ps := make([]nandgate.Part, n)
	for i := range ps {
		ps[i] = f(strconv.Itoa(i))
	}
	return ps
}

var (
	nand = nandgate.Nand

	not = must(nandgate.Chip("NOT", "in", "out",
		nand("a=in, b=in, out=out"),
	))
	and = must(nandgate.Chip("AND", "a, b", "out",
		nand("a=a, b=b, out=nandAB"),
		not("in=nandAB, out=out"),
	))
	or = must(nandgate.Chip("OR", "a, b", "out",
		not("in=a, out=notA"),
		not("in=b, out=notB"),
		nand("a=notA, b=notB, out=out"),
	))
	nor = must(nandgate.Chip("NOR", "a, b", "out",
		or("a=a, b=b, out=orAB"),
		not("in=orAB, out=out"),
	))
	xor = must(nandgate.Chip("XOR", "a, b", "out",
		nand("a=a, b=b, out=nandAB"),
		or("a=a, b=b, out=orAB"),
		and("a=nandAB, b=orAB, out=out"),
	))
	mux = must(nandgate.Chip("MUX", "a, b, sel", "out",
		not("in=sel, out=notSel"),
		and("a=notSel, b=a, out=selA"),
		and("a=sel, b=b, out=selB"),
		or("a=selA, b=selB, out=out"),
	))
	dmux = must(nandgate.Chip("DMUX", "in, sel", "a, b",
		not("in=sel, out=notSel"),
		and("a=notSel, b=in, out=a"),
		and("a=sel, b=in, out=b"),
	))
)

// Not returns a NOT chip.
//
//	Inputs: in
//	Outputs: out
//	Function: out = NAND(in, in)
func Not(c string) nandgate.Part { return not(c) }

// And returns an AND chip.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = NOT(NAND(a, b))
func And(c string) nandgate.Part { return and(c) }

// Or returns an OR chip.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = NAND(NOT(a), NOT(b))
func Or(c string) nandgate.Part { return or(c) }

// Nor returns a NOR chip.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = NOT(OR(a, b))
func Nor(c string) nandgate.Part { return nor(c) }

// Xor returns a XOR chip.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = AND(NAND(a, b), OR(a, b))
func Xor(c string) nandgate.Part { return xor(c) }

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: out = a if sel == 0, b otherwise
func Mux(c string) nandgate.Part { return mux(c) }

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: a = in if sel == 0, b = in otherwise. The unselected output is 0.
func DMux(c string) nandgate.Part { return dmux(c) }
