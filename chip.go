// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandgate

import (
	"github.com/pkg/errors"
)

type chip struct {
	PartSpec        // PartSpec for this chip
	parts    []Part // sub parts
}

func (c *chip) mount(s *Socket) []Component {
	var cs []Component

	for _, p := range c.parts {
		// make a sub-socket
		sub := newSocket(s.b)
		for _, in := range p.Inputs {
			if w, ok := p.inputWire(in); ok {
				sub.m[in] = s.PinOrNew(w)
			} else {
				// wire unknown pins to False.
				// Chip() makes sure that unknown pins can only be inputs.
				sub.m[in] = WireFalse
			}
		}
		for _, o := range p.Outputs {
			ws := p.outputWires(o)
			if len(ws) == 0 {
				sub.m[o] = s.b.allocPin()
				continue
			}
			n := s.PinOrNew(ws[0])
			for _, w := range ws[1:] {
				if m, ok := s.m[w]; ok {
					s.b.union(n, m)
				} else {
					s.m[w] = n
				}
			}
			sub.m[o] = n
		}
		cs = append(cs, p.Mount(sub)...)
	}
	return cs
}

// Chip composes existing parts into a new part packaged into a chip.
// The pin names specified as inputs and outputs will be the inputs
// and outputs of the chip.
//
// A Xor gate could be created like this:
//
//	xor, err := Chip("XOR", "a, b", "out",
//		Nand("a=a, b=b, out=nandAB"),
//		Nand("a=a, b=nandAB, out=w0"),
//		Nand("a=b, b=nandAB, out=w1"),
//		Nand("a=w0, b=w1, out=out"),
//	)
//
// The returned value is a function of type NewPartFn that can be used to
// compose the new part with others into other chips:
//
//	xnor, err := Chip("XNOR", "a, b", "out",
//		xor("a=a, b=b, out=xorAB"),
//		Nand("a=xorAB, b=xorAB, out=out"),
//	)
//
// Part inputs that are not connected are wired to false. Chip returns an error
// if a part pin does not exist, if an output drives a constant, a chip input
// or a wire that already has a driver, or if a wire is read but never driven,
// or driven but never read.
func Chip(name string, inputs, outputs string, parts ...Part) (NewPartFn, error) {
	ins, err := ParseIOSpec(inputs)
	if err != nil {
		return nil, errors.Wrap(err, "chip "+name+" inputs")
	}
	outs, err := ParseIOSpec(outputs)
	if err != nil {
		return nil, errors.Wrap(err, "chip "+name+" outputs")
	}
	all := append(append(make([]string, 0, len(ins)+len(outs)), ins...), outs...)
	if err = checkDuplicates(all); err != nil {
		return nil, errors.Wrap(err, "chip "+name)
	}
	for _, n := range all {
		if n == True || n == False {
			return nil, errors.New("chip " + name + ": reserved pin name " + n)
		}
	}
	if err = checkWiring(ins, outs, parts); err != nil {
		return nil, err
	}

	c := &chip{
		PartSpec{
			Name:    name,
			Inputs:  ins,
			Outputs: outs,
		},
		append(Parts(nil), parts...),
	}
	for _, p := range parts {
		c.Gates += p.Gates
	}
	c.PartSpec.Mount = c.mount
	return c.PartSpec.NewPart, nil
}

func checkWiring(ins, outs []string, parts []Part) error {
	var (
		drivers = make(map[string]string)
		readers = make(map[string]string)
		seen    = make(map[string]bool)
		order   []string // wires in order of appearance
	)
	note := func(w string) {
		if !seen[w] {
			seen[w] = true
			order = append(order, w)
		}
	}

	for _, p := range parts {
		inSeen := make(map[string]bool)
		for _, cn := range p.Conns {
			pn := p.Name + "." + cn.PP
			switch {
			case p.isInput(cn.PP):
				if inSeen[cn.PP] {
					return errors.New(p.Name + " input pin " + cn.PP + " connected to more than one wire")
				}
				inSeen[cn.PP] = true
				note(cn.CP)
				if readers[cn.CP] == "" {
					readers[cn.CP] = pn
				}
			case p.isOutput(cn.PP):
				var err error
				switch {
				case cn.CP == True || cn.CP == False:
					err = errors.New("output pin connected to constant " + cn.CP + " input")
				case contains(ins, cn.CP):
					err = errors.New("chip input pin used as output")
				case drivers[cn.CP] != "":
					err = errors.New("output pin already used as output")
				}
				if err != nil {
					return errors.Wrap(err, pn+":"+cn.CP)
				}
				note(cn.CP)
				drivers[cn.CP] = pn
			default:
				return errors.New("invalid pin name " + cn.PP + " for part " + p.Name)
			}
		}
	}

	for _, w := range order {
		switch {
		case drivers[w] == "" && w != True && w != False && !contains(ins, w):
			return errors.New("pin " + w + " not connected to any output")
		case drivers[w] != "" && readers[w] == "" && !contains(outs, w):
			return errors.New("pin " + w + " not connected to any input")
		}
	}
	return nil
}
