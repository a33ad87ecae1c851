// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandgate

import (
	"github.com/pkg/errors"

	"github.com/db47h/nandgate/logic"
)

// A Netlist is a part flattened to a list of NAND gates.
//
// Wire numbers WireFalse and WireTrue are the constant pins. Pins maps every
// input and output pin name of the part to its wire. Outputs that are not
// driven by any gate are mapped to WireFalse.
type Netlist struct {
	Name    string
	Inputs  []string
	Outputs []string
	Pins    map[string]int
	Gates   []Gate
	Wires   int
}

// Flatten mounts the part returned by newPart into a netlist. Parts containing
// probes cannot be flattened.
func Flatten(newPart NewPartFn) (*Netlist, error) {
	spec := newPart("").PartSpec
	b := newBuilder()
	s := newSocket(b)
	for _, n := range spec.Inputs {
		s.m[n] = b.allocPin()
	}
	for _, n := range spec.Outputs {
		s.m[n] = b.allocPin()
	}
	if cs := spec.Mount(s); len(cs) > 0 {
		return nil, errors.Errorf("%s: cannot flatten a part with %d probes", spec.Name, len(cs))
	}

	root := b.roots()
	driven := make([]bool, b.wires)
	nl := &Netlist{
		Name:    spec.Name,
		Inputs:  spec.Inputs,
		Outputs: spec.Outputs,
		Pins:    make(map[string]int, len(spec.Inputs)+len(spec.Outputs)),
		Gates:   make([]Gate, len(b.gates)),
		Wires:   b.wires,
	}
	for i, g := range b.gates {
		g = Gate{root[g.A], root[g.B], root[g.Out]}
		if driven[g.Out] {
			return nil, errors.Errorf("%s: wire %d driven by more than one gate", spec.Name, g.Out)
		}
		driven[g.Out] = true
		nl.Gates[i] = g
	}
	for _, n := range spec.Inputs {
		nl.Pins[n] = root[s.m[n]]
	}
	for _, n := range spec.Outputs {
		w := root[s.m[n]]
		if !driven[w] {
			w = WireFalse
		}
		nl.Pins[n] = w
	}
	return nl, nil
}

// Eval settles the netlist with the given input values, in nl.Inputs order,
// and returns the output values in nl.Outputs order together with the number
// of steps the circuit took to settle.
func (nl *Netlist) Eval(in []logic.Bit) ([]logic.Bit, int, error) {
	if len(in) != len(nl.Inputs) {
		return nil, 0, errors.Errorf("%s: got %d input values, expected %d", nl.Name, len(in), len(nl.Inputs))
	}
	root := make([]int, nl.Wires)
	for i := range root {
		root[i] = i
	}
	c := newCircuit(nl.Wires, nl.Gates, nil, root)
	for i, n := range nl.Inputs {
		c.s0[nl.Pins[n]] = in[i]
	}
	steps, err := c.Settle()
	if err != nil {
		return nil, steps, errors.Wrap(err, nl.Name)
	}
	out := make([]logic.Bit, len(nl.Outputs))
	for i, n := range nl.Outputs {
		out[i] = c.Get(nl.Pins[n])
	}
	return out, steps, nil
}
