// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandgate

var nandSpec = &PartSpec{
	Name:    "NAND",
	Inputs:  []string{"a", "b"},
	Outputs: []string{"out"},
	Mount: func(s *Socket) []Component {
		s.Nand(s.Pin("a"), s.Pin("b"), s.Pin("out"))
		return nil
	},
	Gates: 1,
}

// Nand returns a NAND gate, the only built-in part. Every other chip is a
// composition of NAND gates.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
func Nand(c string) Part {
	return nandSpec.NewPart(c)
}
