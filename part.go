// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandgate

// A Component is a probe in a circuit that reads or drives wires on every
// simulation step.
type Component func(c *Circuit)

// A MountFn mounts a part into socket s. MountFn's should query the socket for
// assigned pin numbers, then either register NAND gates with s.Nand or return
// closures around these pin numbers.
//
// For example, a probe that reports the state of its "in" pin is mounted
// like this:
//
//	func (s *Socket) []Component {
//		in := s.Pin("in")
//		return []Component{
//			func(c *Circuit) { report(c.Get(in)) },
//		}
//	}
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct pin names.
	// Use ParseIOSpec to expand an input description like "a, b, bus[2]" to
	// []string{"a", "b", "bus[0]", "bus[1]"}.
	Inputs []string
	// Output pin names. Must be distinct pin names.
	Outputs []string
	// Mount function (see MountFn).
	Mount MountFn
	// Number of NAND gates the part flattens to.
	Gates int
}

// NewPart is a NewPartFn that wraps p with the given connections into a Part.
// It panics if the connection string cannot be parsed.
func (p *PartSpec) NewPart(connections string) Part {
	conns, err := ParseConnections(connections)
	if err != nil {
		panic(err)
	}
	return Part{p, conns}
}

func (p *PartSpec) isInput(name string) bool  { return contains(p.Inputs, name) }
func (p *PartSpec) isOutput(name string) bool { return contains(p.Outputs, name) }

func contains(l []string, s string) bool {
	for _, n := range l {
		if n == s {
			return true
		}
	}
	return false
}

// A NewPartFn is a function that takes a connection configuration and returns a
// new Part. See ParseConnections for the syntax of the connection configuration
// string.
type NewPartFn func(c string) Part

// A Part wraps a part specification together with its connections within a host
// chip.
type Part struct {
	*PartSpec
	Conns []Connection
}

// inputWire returns the chip wire connected to input pin pp, if any.
func (p *Part) inputWire(pp string) (string, bool) {
	for _, c := range p.Conns {
		if c.PP == pp {
			return c.CP, true
		}
	}
	return "", false
}

// outputWires returns all chip wires driven by output pin pp.
func (p *Part) outputWires(pp string) []string {
	var ws []string
	for _, c := range p.Conns {
		if c.PP == pp {
			ws = append(ws, c.CP)
		}
	}
	return ws
}

// Parts is a convenience wrapper for []Part.
type Parts []Part
