// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlib

import (
	"github.com/db47h/nandgate"
	"github.com/db47h/nandgate/logic"
)

// Get16 returns the state of the 16 given wires. Pin 0 is lsb.
func Get16(c *nandgate.Circuit, pins []int) logic.Bits16 {
	var out logic.Bits16
	for bit := range out {
		out[bit] = c.Get(pins[bit])
	}
	return out
}

// Set16 sets the 16 given wires to v.
func Set16(c *nandgate.Circuit, pins []int, v logic.Bits16) {
	for bit := range v {
		c.Set(pins[bit], v[bit])
	}
}

// Input creates a function based input.
//
//	Outputs: out
//	Function: out = f()
func Input(f func() logic.Bit) nandgate.NewPartFn {
	p := &nandgate.PartSpec{
		Name:    "INPUT",
		Outputs: []string{"out"},
		Mount: func(s *nandgate.Socket) []nandgate.Component {
			pin := s.Pin("out")
			return []nandgate.Component{
				func(c *nandgate.Circuit) { c.Set(pin, f()) },
			}
		},
	}
	return p.NewPart
}

// Output creates an output or probe. The f function is called with the state
// of the in pin on every simulation step.
//
//	Inputs: in
//	Function: f(in)
func Output(f func(logic.Bit)) nandgate.NewPartFn {
	p := &nandgate.PartSpec{
		Name:   "OUTPUT",
		Inputs: []string{"in"},
		Mount: func(s *nandgate.Socket) []nandgate.Component {
			in := s.Pin("in")
			return []nandgate.Component{
				func(c *nandgate.Circuit) { f(c.Get(in)) },
			}
		},
	}
	return p.NewPart
}

// Input16 creates a 16 bits input bus.
//
//	Outputs: out[16]
//	Function: out = f()
func Input16(f func() logic.Bits16) nandgate.NewPartFn {
	return (&nandgate.PartSpec{
		Name:    "INPUT16",
		Outputs: busPins("out", 16),
		Mount: func(s *nandgate.Socket) []nandgate.Component {
			pins := s.Bus("out", 16)
			return []nandgate.Component{
				func(c *nandgate.Circuit) { Set16(c, pins, f()) },
			}
		}}).NewPart
}

// Output16 creates a 16 bits output bus.
//
//	Inputs: in[16]
//	Function: f(in)
func Output16(f func(logic.Bits16)) nandgate.NewPartFn {
	return (&nandgate.PartSpec{
		Name:   "OUTPUT16",
		Inputs: busPins("in", 16),
		Mount: func(s *nandgate.Socket) []nandgate.Component {
			pins := s.Bus("in", 16)
			return []nandgate.Component{
				func(c *nandgate.Circuit) { f(Get16(c, pins)) },
			}
		}}).NewPart
}

func busPins(name string, size int) []string {
	b := make([]string, size)
	for i := range b {
		b[i] = nandgate.BusPinName(name, i)
	}
	return b
}
